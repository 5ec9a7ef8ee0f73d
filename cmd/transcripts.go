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
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/penny-vault/ciqdata/data"
	"github.com/penny-vault/ciqdata/export"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	transcriptsCompany int64
	transcriptsSince   string
	transcriptsLatest  bool
)

var transcriptsCmd = &cobra.Command{
	Use:   "transcripts",
	Short: "List the earnings call transcripts of a company",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		repo, closeDB := openRepository(ctx)
		defer closeDB()

		if transcriptsLatest {
			transcriptID, err := repo.LatestTranscriptID(ctx, transcriptsCompany)
			if err != nil {
				log.Fatal().Err(err).Int64("CompanyID", transcriptsCompany).Msg("could not find latest transcript")
			}
			fmt.Println(transcriptID)
			return
		}

		since := parseDateFlag("since", transcriptsSince)

		start := time.Now()
		rows, err := repo.CompanyTranscripts(ctx, transcriptsCompany, since)
		if err != nil {
			log.Fatal().Err(err).Int64("CompanyID", transcriptsCompany).Msg("transcript discovery failed")
		}
		logRunTime("transcripts", start, len(rows))

		printRows(rows)
	},
}

var transcriptCmd = &cobra.Command{
	Use:   "transcript <transcript-id...>",
	Short: "Print the content of earnings call transcripts",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		repo, closeDB := openRepository(ctx)
		defer closeDB()

		ids := parseIDs("transcript-id", args)

		start := time.Now()
		components, err := repo.TranscriptComponents(ctx, ids)
		if err != nil {
			log.Fatal().Err(err).Msg("could not load transcript")
		}
		logRunTime("transcript", start, len(components))

		if outputFormat() != export.FormatTable {
			printRows(components)
			return
		}

		r, _ := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(100),
		)

		out, err := r.Render(transcriptMarkdown(components))
		if err != nil {
			log.Fatal().Err(err).Msg("could not render transcript")
		}

		fmt.Print(out)
	},
}

func transcriptMarkdown(components []*data.TranscriptComponent) string {
	builder := strings.Builder{}
	currentID := int64(-1)

	for _, component := range components {
		if component.TranscriptID != currentID {
			currentID = component.TranscriptID
			builder.WriteString(fmt.Sprintf("# Transcript %d\n\n", currentID))
		}

		builder.WriteString(fmt.Sprintf("**%s**\n\n", component.Speaker()))
		builder.WriteString(component.ComponentText)
		builder.WriteString("\n\n")
	}

	return builder.String()
}

func init() {
	rootCmd.AddCommand(transcriptsCmd)
	rootCmd.AddCommand(transcriptCmd)

	transcriptsCmd.Flags().Int64Var(&transcriptsCompany, "company", 0, "company id")
	transcriptsCmd.Flags().StringVar(&transcriptsSince, "since", time.Now().AddDate(-1, 0, 0).Format("2006-01-02"), "only transcripts created after this date")
	transcriptsCmd.Flags().BoolVar(&transcriptsLatest, "latest", false, "print only the id of the latest transcript of the past year")
	if err := transcriptsCmd.MarkFlagRequired("company"); err != nil {
		log.Panic().Err(err).Msg("MarkFlagRequired for company failed")
	}
}
