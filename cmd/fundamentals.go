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
	"strconv"
	"time"

	"github.com/penny-vault/ciqdata/data"
	"github.com/penny-vault/ciqdata/repository"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	fundamentalCompanies   []int64
	fundamentalDataItems   []int64
	fundamentalPeriodTypes []int64
	fundamentalStartYear   int
	fundamentalPivot       string

	estimateSince string
	estimateYears int
)

var estimatesCmd = &cobra.Command{
	Use:   "estimates",
	Short: "List quarterly consensus estimates that are still in effect",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		repo, closeDB := openRepository(ctx)
		defer closeDB()

		since := parseDateFlag("since", estimateSince)

		start := time.Now()
		rows, err := repo.Estimates(ctx, fundamentalCompanies, fundamentalDataItems, since)
		if err != nil {
			log.Fatal().Err(err).Msg("estimate query failed")
		}
		logRunTime("estimates", start, len(rows))

		printRows(rows)
	},
}

var keyFundamentalsCmd = &cobra.Command{
	Use:   "keyfundamentals",
	Short: "Pivot revenue and EPS estimates into one row per fiscal period",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		repo, closeDB := openRepository(ctx)
		defer closeDB()

		var dataItems []int64
		if len(fundamentalDataItems) > 0 {
			dataItems = fundamentalDataItems
		}

		start := time.Now()
		pivot, err := repo.KeyFundamentals(ctx, fundamentalCompanies, dataItems, estimateYears)
		if err != nil {
			log.Fatal().Err(err).Msg("key fundamentals query failed")
		}
		logRunTime("keyfundamentals", start, len(pivot.Rows))

		printPivot(pivot, []string{"companyid", "periodenddate"}, func(key data.PeriodKey) []string {
			return []string{strconv.FormatInt(key.CompanyID, 10), data.FormatDate(key.PeriodEndDate)}
		})
	},
}

var fundamentalsCmd = &cobra.Command{
	Use:   "fundamentals",
	Short: "List reported fundamentals, optionally pivoted by data item",
	Long: `fundamentals lists reported data item values. With --pivot annual or
--pivot quarterly the values of that period type are deduplicated to the first
reported instance and pivoted into one row per calendar period.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		repo, closeDB := openRepository(ctx)
		defer closeDB()

		req := repository.FundamentalRequest{
			CompanyIDs:  fundamentalCompanies,
			DataItemIDs: fundamentalDataItems,
			PeriodTypes: fundamentalPeriodTypes,
			StartYear:   fundamentalStartYear,
		}

		start := time.Now()
		switch fundamentalPivot {
		case "":
			rows, err := repo.HistoricalFundamentals(ctx, req)
			if err != nil {
				log.Fatal().Err(err).Msg("fundamentals query failed")
			}
			logRunTime("fundamentals", start, len(rows))
			printRows(rows)
		case "annual", "quarterly":
			periodType := int64(data.PeriodAnnual)
			if fundamentalPivot == "quarterly" {
				periodType = data.PeriodQuarterly
			}

			pivot, err := repo.FundamentalTable(ctx, req, periodType)
			if err != nil {
				log.Fatal().Err(err).Msg("fundamentals query failed")
			}
			logRunTime("fundamentals", start, len(pivot.Rows))

			printPivot(pivot, []string{"companyid", "calendaryear", "calendarquarter"}, func(key data.CalendarKey) []string {
				return []string{
					strconv.FormatInt(key.CompanyID, 10),
					strconv.Itoa(key.CalendarYear),
					strconv.Itoa(key.CalendarQuarter),
				}
			})
		default:
			log.Fatal().Str("Pivot", fundamentalPivot).Msg("pivot must be annual or quarterly")
		}
	},
}

func init() {
	rootCmd.AddCommand(estimatesCmd)
	rootCmd.AddCommand(keyFundamentalsCmd)
	rootCmd.AddCommand(fundamentalsCmd)

	for _, cmd := range []*cobra.Command{estimatesCmd, keyFundamentalsCmd, fundamentalsCmd} {
		cmd.Flags().Int64SliceVar(&fundamentalCompanies, "company", nil, "company ids")
		cmd.Flags().Int64SliceVar(&fundamentalDataItems, "item", nil, "data item ids")
		if err := cmd.MarkFlagRequired("company"); err != nil {
			log.Panic().Err(err).Msg("MarkFlagRequired for company failed")
		}
	}

	estimatesCmd.Flags().StringVar(&estimateSince, "since", time.Now().AddDate(-5, 0, 0).Format("2006-01-02"), "only periods ending after this date")
	keyFundamentalsCmd.Flags().IntVar(&estimateYears, "years", 5, "trailing years of periods to include")

	fundamentalsCmd.Flags().Int64SliceVar(&fundamentalPeriodTypes, "period-type", nil, "period types (1 annual, 2 quarterly)")
	fundamentalsCmd.Flags().IntVar(&fundamentalStartYear, "start-year", repository.DefaultStartYear, "first calendar year")
	fundamentalsCmd.Flags().StringVar(&fundamentalPivot, "pivot", "", "pivot by data item for annual or quarterly periods")
}
