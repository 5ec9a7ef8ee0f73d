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
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/jackc/pgx/v5"
	"github.com/pelletier/go-toml/v2"
	"github.com/penny-vault/ciqdata/db"
	"github.com/penny-vault/ciqdata/query"
	"github.com/penny-vault/ciqdata/repository"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type configFile struct {
	DB db.Config `toml:"db"`
}

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Gather database configuration and verify the connection",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		conf := db.ConfigFromViper()
		port := strconv.Itoa(conf.Port)
		if conf.TranscriptSchema == "" {
			conf.TranscriptSchema = query.DefaultTranscriptSchema
		}

		form := huh.NewForm(
			// Where the database lives
			huh.NewGroup(
				huh.NewInput().
					Title("Database host").
					Value(&conf.Host),

				huh.NewInput().
					Title("Database port").
					Value(&port).
					Validate(func(s string) error {
						if _, err := strconv.Atoi(s); err != nil {
							return errors.New("port must be a number")
						}
						return nil
					}),

				huh.NewInput().
					Title("Database name").
					Value(&conf.Name),
			),

			// Credentials
			huh.NewGroup(
				huh.NewInput().
					Title("User").
					Value(&conf.User),

				huh.NewInput().
					Title("Password").
					Password(true).
					Value(&conf.Password),

				huh.NewInput().
					Title("Schema that contains the transcript tables").
					Value(&conf.TranscriptSchema),
			),
		)

		if err := form.Run(); err != nil {
			log.Fatal().Err(err).Msg("error gathering database settings")
		}

		conf.Port, _ = strconv.Atoi(port)
		conf.URL = ""

		if _, err := pgx.ParseConfig(conf.ConnString()); err != nil {
			log.Fatal().Err(err).Msg("database settings do not form a valid connection string")
		}

		log.Info().Str("Database", conf.Redacted()).Msg("testing database connection")

		database, err := db.Connect(ctx, conf.ConnString())
		if err != nil {
			log.Fatal().Err(err).Msg("could not connect to database")
		}
		defer database.Close()

		repo := repository.New(database, repository.WithBuilder(query.NewBuilder(query.WithTranscriptSchema(conf.TranscriptSchema))))
		companies, err := repo.TestConnection(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("connection test query failed")
		}

		// save database settings to config file
		home, err := os.UserHomeDir()
		if err != nil {
			log.Fatal().Err(err).Msg("could not determine user home directory")
		}

		configFN := filepath.Join(home, ".ciqdata.toml")
		log.Info().Str("ConfigFile", configFN).Msg("Saving database connection info to config file")
		configData, err := toml.Marshal(configFile{DB: conf})
		if err != nil {
			log.Fatal().Err(err).Msg("could not marshal configuration data")
		}

		err = os.WriteFile(configFN, configData, 0600)
		if err != nil {
			log.Fatal().Err(err).Str("FileName", configFN).Msg("could not save configuration to file")
		}

		highlight := lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
		fmt.Println(highlight.Render(fmt.Sprintf("Connected to %s, %d sample companies read", conf.Redacted(), len(companies))))
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
