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
	"time"

	"github.com/penny-vault/ciqdata/backblaze"
	"github.com/penny-vault/ciqdata/export"
	"github.com/penny-vault/ciqdata/healthcheck"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	exportDir    string
	exportYears  int
	exportUpload string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Save query results to files",
	Long: `export writes query results to files in --dir. When backblaze
credentials are configured and --upload is set the files are copied to the
bucket under that directory. A configured healthchecks.ping_url is notified
when the export starts, succeeds or fails.`,
}

var exportPricesCmd = &cobra.Command{
	Use:   "prices <company-id...>",
	Short: "Export dividend adjusted price histories as parquet",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		companyIDs := parseIDs("company-id", args)

		runExport("prices", func(ctx context.Context) ([]string, error) {
			repo, closeDB := openRepository(ctx)
			defer closeDB()

			files := make([]string, 0, len(companyIDs))
			for _, companyID := range companyIDs {
				bars, err := repo.PriceHistory(ctx, companyID, exportYears)
				if err != nil {
					return files, err
				}

				fn := filepath.Join(exportDir, fmt.Sprintf("prices-%d.parquet", companyID))
				if err := export.WritePrices(fn, companyID, bars); err != nil {
					return files, err
				}

				log.Info().Int64("CompanyID", companyID).Int("NumRows", len(bars)).Str("FileName", fn).Msg("wrote price history")
				files = append(files, fn)
			}

			return files, nil
		})
	},
}

var exportDataItemsCmd = &cobra.Command{
	Use:   "dataitems",
	Short: "Export the data item catalog as CSV",
	Run: func(cmd *cobra.Command, args []string) {
		runExport("dataitems", func(ctx context.Context) ([]string, error) {
			repo, closeDB := openRepository(ctx)
			defer closeDB()

			items, err := repo.AllDataItems(ctx)
			if err != nil {
				return nil, err
			}

			fn := filepath.Join(exportDir, "dataitems.csv")
			fh, err := os.Create(fn)
			if err != nil {
				return nil, err
			}
			defer fh.Close()

			if err := export.WriteCSV(fh, items); err != nil {
				return nil, err
			}

			log.Info().Int("NumRows", len(items)).Str("FileName", fn).Msg("wrote data item catalog")
			return []string{fn}, nil
		})
	},
}

// runExport wraps an export job with healthcheck pings and the optional
// backblaze upload of the files it wrote
func runExport(name string, job func(ctx context.Context) ([]string, error)) {
	ctx := context.Background()
	check := healthcheck.FromViper()

	if err := check.Start(); err != nil {
		log.Warn().Err(err).Msg("healthcheck start ping failed")
	}

	if err := os.MkdirAll(exportDir, 0o755); err != nil {
		failExport(check, name, err)
	}

	start := time.Now()
	files, err := job(ctx)
	if err != nil {
		failExport(check, name, err)
	}

	if exportUpload != "" {
		conf := backblaze.ConfigFromViper()
		if !conf.Enabled() {
			failExport(check, name, errors.New("--upload requires backblaze.application_id, backblaze.application_key and backblaze.bucket"))
		}

		for _, fn := range files {
			if err := backblaze.Upload(conf, fn, exportUpload); err != nil {
				failExport(check, name, err)
			}
		}
	}

	logRunTime(name, start, len(files))

	if err := check.Success(fmt.Sprintf("%s: wrote %d files", name, len(files))); err != nil {
		log.Warn().Err(err).Msg("healthcheck success ping failed")
	}
}

func failExport(check *healthcheck.Check, name string, cause error) {
	if err := check.Fail(cause); err != nil {
		log.Warn().Err(err).Msg("healthcheck fail ping failed")
	}
	log.Fatal().Err(cause).Str("Export", name).Msg("export failed")
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.AddCommand(exportPricesCmd)
	exportCmd.AddCommand(exportDataItemsCmd)

	exportCmd.PersistentFlags().StringVar(&exportDir, "dir", ".", "output directory")
	exportCmd.PersistentFlags().StringVar(&exportUpload, "upload", "", "upload files to this directory of the backblaze bucket")
	exportPricesCmd.Flags().IntVar(&exportYears, "years", 5, "trailing years of prices")
}
