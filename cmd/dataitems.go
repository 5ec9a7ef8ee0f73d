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

var dataItemsCmd = &cobra.Command{
	Use:   "dataitems [data-item-id...]",
	Short: "List the data item catalog",
	Long: `dataitems prints the names and descriptions of data items. Without
arguments the whole catalog is listed.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		repo, closeDB := openRepository(ctx)
		defer closeDB()

		start := time.Now()
		var err error
		var items interface{}
		var count int
		if len(args) == 0 {
			all, allErr := repo.AllDataItems(ctx)
			items, count, err = all, len(all), allErr
		} else {
			some, someErr := repo.DataItems(ctx, parseIDs("data-item-id", args))
			items, count, err = some, len(some), someErr
		}
		if err != nil {
			log.Fatal().Err(err).Msg("data item query failed")
		}
		logRunTime("dataitems", start, count)

		printRows(items)
	},
}

func init() {
	rootCmd.AddCommand(dataItemsCmd)
}
