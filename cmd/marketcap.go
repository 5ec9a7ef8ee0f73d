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
	"time"

	"github.com/penny-vault/ciqdata/repository"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	marketCapDate    string
	marketCapMin     float64
	marketCapCountry string
	marketCapFuzzy   bool
)

var marketCapCmd = &cobra.Command{
	Use:   "marketcap",
	Short: "List companies whose USD market cap is above a threshold",
	Long: `marketcap screens the primary listings of public operating companies
by their market cap converted to USD on the given date. The threshold is in
millions of USD. Use --country Global to include every country.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		repo, closeDB := openRepository(ctx)
		defer closeDB()

		start := time.Now()
		rows, err := repo.MarketCapScreen(ctx, marketCapDate, marketCapMin, marketCapCountry, marketCapFuzzy)
		if err != nil {
			log.Fatal().Err(err).Str("AsOf", marketCapDate).Msg("market cap screen failed")
		}
		logRunTime("marketcap", start, len(rows))

		printRows(rows)
	},
}

func init() {
	rootCmd.AddCommand(marketCapCmd)

	marketCapCmd.Flags().StringVar(&marketCapDate, "date", time.Now().Format("2006-01-02"), "as-of date (YYYY-MM-DD)")
	marketCapCmd.Flags().Float64Var(&marketCapMin, "min", 1000, "minimum market cap in millions of USD")
	marketCapCmd.Flags().StringVar(&marketCapCountry, "country", repository.DefaultCountry, "ISO country code or Global")
	marketCapCmd.Flags().BoolVar(&marketCapFuzzy, "fuzzy", false, "include the three days before the as-of date")
}
