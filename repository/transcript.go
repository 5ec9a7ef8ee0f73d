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
package repository

import (
	"cmp"
	"context"
	"slices"
	"strconv"
	"time"

	"github.com/penny-vault/ciqdata/data"
	"github.com/penny-vault/ciqdata/shape"
	"github.com/rs/zerolog/log"
)

// CompanyTranscripts lists the earnings call transcripts of companyID created
// after createdAfter. When a key development has several transcripts only
// the most recently created one is returned; equal creation timestamps are
// resolved in favor of the higher transcript id. Rows are ordered by
// earnings call date.
func (repo *Repository) CompanyTranscripts(ctx context.Context, companyID int64, createdAfter time.Time) ([]*data.Transcript, error) {
	q, err := repo.builder.TranscriptDiscovery(companyID, createdAfter)
	if err != nil {
		return nil, err
	}

	rows, err := selectRows[data.Transcript](ctx, repo, q)
	if err != nil {
		return nil, err
	}

	latest := latestTranscripts(rows)
	if dropped := len(rows) - len(latest); dropped > 0 {
		log.Debug().Int64("CompanyID", companyID).Int("Dropped", dropped).Msg("dropped superseded transcripts")
	}

	return latest, nil
}

func latestTranscripts(rows []*data.Transcript) []*data.Transcript {
	latest := shape.KeepLatest(rows,
		func(t *data.Transcript) int64 { return t.KeyDevID },
		func(a, b *data.Transcript) int {
			if c := a.TranscriptCreationDateUTC.Compare(b.TranscriptCreationDateUTC); c != 0 {
				return c
			}
			return cmp.Compare(a.TranscriptID, b.TranscriptID)
		})

	slices.SortStableFunc(latest, func(a, b *data.Transcript) int {
		if c := a.EarningsCallDateUTC.Compare(b.EarningsCallDateUTC); c != 0 {
			return c
		}
		return cmp.Compare(a.TranscriptID, b.TranscriptID)
	})

	return latest
}

// LatestTranscriptID returns the transcript of the most recent earnings call
// of companyID within the last year
func (repo *Repository) LatestTranscriptID(ctx context.Context, companyID int64) (int64, error) {
	cutoff := repo.today().AddDate(0, 0, -365)

	transcripts, err := repo.CompanyTranscripts(ctx, companyID, cutoff)
	if err != nil {
		return 0, err
	}

	if len(transcripts) == 0 {
		return 0, &LookupError{
			What:  "earnings call transcript",
			Key:   "company " + strconv.FormatInt(companyID, 10),
			Count: 0,
		}
	}

	return transcripts[len(transcripts)-1].TranscriptID, nil
}

// TranscriptComponents returns the components of the requested transcripts
// ordered by transcript id and component order
func (repo *Repository) TranscriptComponents(ctx context.Context, transcriptIDs []int64) ([]*data.TranscriptComponent, error) {
	if err := requireIDs("transcript ids", transcriptIDs); err != nil {
		return nil, err
	}

	q, err := repo.builder.TranscriptContent(transcriptIDs)
	if err != nil {
		return nil, err
	}

	rows, err := selectRows[data.TranscriptComponent](ctx, repo, q)
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(rows, func(a, b *data.TranscriptComponent) int {
		if c := cmp.Compare(a.TranscriptID, b.TranscriptID); c != 0 {
			return c
		}
		return cmp.Compare(a.ComponentOrder, b.ComponentOrder)
	})

	return rows, nil
}
