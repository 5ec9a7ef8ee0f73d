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

	"github.com/penny-vault/ciqdata/data"
	"github.com/penny-vault/ciqdata/repository"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	securityCountry string
	securityAll     bool
)

var securityCmd = &cobra.Command{
	Use:   "security <ticker>",
	Short: "Look up the primary security and company for a ticker",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		repo, closeDB := openRepository(ctx)
		defer closeDB()

		ticker := args[0]
		if securityAll {
			rows, err := repo.SecurityInfo(ctx, ticker, securityCountry)
			if err != nil {
				log.Fatal().Err(err).Str("Ticker", ticker).Msg("security lookup failed")
			}
			printRows(rows)
			return
		}

		security, err := repo.LookupSecurity(ctx, ticker, securityCountry)
		if err != nil {
			var lookupErr *repository.LookupError
			if errors.As(err, &lookupErr) {
				log.Fatal().Int("Matches", lookupErr.Count).Str("Ticker", ticker).Str("Country", securityCountry).
					Msg("ticker does not identify exactly one security, use --all to list matches")
			}
			log.Fatal().Err(err).Str("Ticker", ticker).Msg("security lookup failed")
		}

		printRows([]*data.Security{security})
	},
}

func init() {
	rootCmd.AddCommand(securityCmd)

	securityCmd.Flags().StringVar(&securityCountry, "country", repository.DefaultCountry, "ISO country code of the company")
	securityCmd.Flags().BoolVar(&securityAll, "all", false, "list every match instead of requiring exactly one")
}
