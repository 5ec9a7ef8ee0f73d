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
package db

import (
	"context"
	"reflect"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// Database runs a query and scans every returned row into dst, which must be
// a pointer to a slice of structs (or struct pointers) tagged with column names
type Database interface {
	Select(ctx context.Context, dst interface{}, sql string, args ...interface{}) error
}

// Postgres is a Database backed by a pgx connection pool
type Postgres struct {
	Pool *pgxpool.Pool

	url string
}

// Connect opens a connection pool for the database at dbURL
func Connect(ctx context.Context, dbURL string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		return nil, err
	}

	return &Postgres{
		Pool: pool,
		url:  dbURL,
	}, nil
}

// Close the database pool
func (pg *Postgres) Close() {
	pg.Pool.Close()
}

// Ping verifies that a connection can be acquired and used
func (pg *Postgres) Ping(ctx context.Context) error {
	return pg.Pool.Ping(ctx)
}

// Select executes sql and scans the result into dst. Errors from the driver
// are returned unmodified.
func (pg *Postgres) Select(ctx context.Context, dst interface{}, sql string, args ...interface{}) error {
	start := time.Now()

	if err := pgxscan.Select(ctx, pg.Pool, dst, sql, args...); err != nil {
		log.Error().Err(err).Str("SQL", sql).Msg("query failed")
		return err
	}

	log.Debug().Int("NumRows", numRows(dst)).Dur("Elapsed", time.Since(start)).Msg("query finished")
	return nil
}

func numRows(dst interface{}) int {
	val := reflect.ValueOf(dst)
	if val.Kind() == reflect.Pointer {
		val = val.Elem()
	}

	if val.Kind() != reflect.Slice {
		return 0
	}

	return val.Len()
}
