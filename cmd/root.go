// Copyright 2024
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/penny-vault/ciqdata/db"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ciqdata",
	Short: "ciqdata queries a Capital IQ Xpressfeed database",
	Long: `ciqdata is a command line utility and Go library for reading company
fundamentals, prices, consensus estimates and earnings call transcripts from a
S&P Capital IQ Xpressfeed database hosted on PostgreSQL.

Each sub-command runs a single parameterized query and prints the reshaped
result as a table, CSV or JSON:

	* marketcap        companies above a USD market cap threshold
	* security         primary security for a ticker
	* transcripts      earnings call transcripts of a company
	* transcript       content of one or more transcripts
	* estimates        consensus estimates still in effect
	* keyfundamentals  revenue and EPS estimates pivoted by period
	* fundamentals     reported fundamentals
	* prices           dividend adjusted daily prices
	* dataitems        the data item catalog`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.ciqdata.toml)")

	rootCmd.PersistentFlags().String("db-url", "", "database connection string")
	if err := viper.BindPFlag("db.url", rootCmd.PersistentFlags().Lookup("db-url")); err != nil {
		log.Panic().Err(err).Msg("BindPFlag for db-url failed")
	}

	rootCmd.PersistentFlags().String("log-level", "info", "log level (trace, debug, info, warn, error)")
	if err := viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level")); err != nil {
		log.Panic().Err(err).Msg("BindPFlag for log-level failed")
	}

	rootCmd.PersistentFlags().StringP("format", "f", "table", "output format (table, csv, json)")
	if err := viper.BindPFlag("output.format", rootCmd.PersistentFlags().Lookup("format")); err != nil {
		log.Panic().Err(err).Msg("BindPFlag for format failed")
	}
}

// initConfig reads in config file, .env and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".ciqdata" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("toml")
		viper.SetConfigName(".ciqdata")
	}

	// a missing .env file is not an error
	if err := godotenv.Load(); err == nil {
		log.Debug().Msg("loaded environment from .env")
	}

	viper.AutomaticEnv() // read in environment variables that match
	if err := db.BindEnv(); err != nil {
		log.Panic().Err(err).Msg("binding database environment variables failed")
	}

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		log.Info().Str("ConfigFN", viper.ConfigFileUsed()).Msg("Using config file")
	}

	level, err := zerolog.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.Warn().Str("Level", viper.GetString("log.level")).Msg("unknown log level, using info")
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
}
