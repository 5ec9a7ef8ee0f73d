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

// Package repository is the public surface of ciqdata. Every method renders
// one query, runs it through the database gateway and reshapes the result.
// A Repository holds no state besides its collaborators and issues exactly one
// query per call.
package repository

import (
	"context"
	"strconv"
	"time"

	"github.com/penny-vault/ciqdata/data"
	"github.com/penny-vault/ciqdata/db"
	"github.com/penny-vault/ciqdata/query"
	"github.com/rs/zerolog/log"
)

type Repository struct {
	database db.Database
	builder  *query.Builder
	now      func() time.Time
}

type Option func(*Repository)

// WithBuilder replaces the default query builder
func WithBuilder(builder *query.Builder) Option {
	return func(repo *Repository) {
		repo.builder = builder
	}
}

// WithClock sets the function used to determine today's date for trailing windows
func WithClock(now func() time.Time) Option {
	return func(repo *Repository) {
		repo.now = now
	}
}

func New(database db.Database, opts ...Option) *Repository {
	repo := &Repository{
		database: database,
		builder:  query.NewBuilder(),
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(repo)
	}

	return repo
}

func (repo *Repository) today() time.Time {
	return data.Date(repo.now())
}

// trailingWindow returns [today - 365*years days, today]
func (repo *Repository) trailingWindow(years int) (time.Time, time.Time, error) {
	if years <= 0 {
		return time.Time{}, time.Time{}, &ValidationError{
			Field:  "trailing years",
			Value:  strconv.Itoa(years),
			Reason: "must be positive",
		}
	}

	end := repo.today()
	return end.AddDate(0, 0, -365*years), end, nil
}

func selectRows[T any](ctx context.Context, repo *Repository, q *query.Query) ([]*T, error) {
	start := time.Now()

	var rows []*T
	if err := repo.database.Select(ctx, &rows, q.SQL, q.Args); err != nil {
		log.Error().Err(err).Str("Query", q.Name).Msg("query failed")
		return nil, err
	}

	log.Debug().Str("Query", q.Name).Int("NumRows", len(rows)).Dur("Elapsed", time.Since(start)).Msg("query finished")
	return rows, nil
}

func requireIDs(field string, ids []int64) error {
	if len(ids) == 0 {
		return &ValidationError{Field: field, Value: "[]", Reason: "must not be empty"}
	}
	return nil
}
