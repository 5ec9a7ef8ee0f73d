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
	"strconv"
	"strings"
	"time"

	"github.com/hako/durafmt"
	"github.com/penny-vault/ciqdata/data"
	"github.com/penny-vault/ciqdata/db"
	"github.com/penny-vault/ciqdata/query"
	"github.com/penny-vault/ciqdata/repository"
	"github.com/rs/zerolog/log"
)

// openRepository connects to the configured database. The returned function
// closes the connection pool.
func openRepository(ctx context.Context) (*repository.Repository, func()) {
	conf := db.ConfigFromViper()

	database, err := db.Connect(ctx, conf.ConnString())
	if err != nil {
		log.Fatal().Err(err).Str("Database", conf.Redacted()).Msg("could not connect to database")
	}

	builder := query.NewBuilder(query.WithTranscriptSchema(conf.TranscriptSchema))
	return repository.New(database, repository.WithBuilder(builder)), database.Close
}

var ErrIdentifierCount = errors.New("wrong number of identifiers")

// splitIDs parses comma separated or repeated integer identifiers
func splitIDs(values []string) ([]int64, error) {
	var ids []int64
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}

			id, err := strconv.ParseInt(part, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("identifier %q is not an integer: %w", part, err)
			}
			ids = append(ids, id)
		}
	}

	return ids, nil
}

// singleID parses exactly one identifier
func singleID(values []string) (int64, error) {
	ids, err := splitIDs(values)
	if err != nil {
		return 0, err
	}

	if len(ids) != 1 {
		return 0, fmt.Errorf("%w: expected 1, got %d", ErrIdentifierCount, len(ids))
	}

	return ids[0], nil
}

func parseIDs(field string, values []string) []int64 {
	ids, err := splitIDs(values)
	if err != nil {
		log.Fatal().Err(err).Str("Field", field).Msg("invalid identifier")
	}
	if len(ids) == 0 {
		log.Fatal().Str("Field", field).Msg("no identifiers given")
	}
	return ids
}

func parseDateFlag(field, value string) time.Time {
	date, err := data.ParseDate(value)
	if err != nil {
		log.Fatal().Err(err).Str("Field", field).Msg("invalid date")
	}
	return date
}

func logRunTime(name string, start time.Time, numRows int) {
	log.Info().
		Str("Query", name).
		Str("RunTime", durafmt.Parse(time.Since(start)).LimitFirstN(2).String()).
		Int("NumRows", numRows).
		Msg("query complete")
}
