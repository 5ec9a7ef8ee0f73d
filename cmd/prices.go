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

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	pricesYears     int
	pricesCloseOnly bool
)

var pricesCmd = &cobra.Command{
	Use:   "prices <company-id>",
	Short: "List dividend adjusted daily prices of a company",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		companyID, err := singleID(args)
		if err != nil {
			log.Fatal().Err(err).Strs("Args", args).Msg("prices takes exactly one company id")
		}

		ctx := context.Background()

		repo, closeDB := openRepository(ctx)
		defer closeDB()

		start := time.Now()
		if pricesCloseOnly {
			rows, err := repo.PriceCloseHistory(ctx, companyID, pricesYears)
			if err != nil {
				log.Fatal().Err(err).Int64("CompanyID", companyID).Msg("price query failed")
			}
			logRunTime("prices", start, len(rows))
			printRows(rows)
			return
		}

		rows, err := repo.PriceHistory(ctx, companyID, pricesYears)
		if err != nil {
			log.Fatal().Err(err).Int64("CompanyID", companyID).Msg("price query failed")
		}
		logRunTime("prices", start, len(rows))
		printRows(rows)
	},
}

func init() {
	rootCmd.AddCommand(pricesCmd)

	pricesCmd.Flags().IntVar(&pricesYears, "years", 5, "trailing years of prices")
	pricesCmd.Flags().BoolVar(&pricesCloseOnly, "close-only", false, "only print the date and close")
}
