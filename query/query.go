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

// Package query renders the SQL for every repository operation from a set
// of named templates. Caller supplied values are never written into the SQL
// text; they are carried in Query.Args and bound by the driver.
package query

import (
	"embed"
	"errors"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/jackc/pgx/v5"
)

//go:embed sql/*.sql
var sqlFS embed.FS

var templates = template.Must(template.New("queries").ParseFS(sqlFS, "sql/*.sql"))

var (
	ErrEmptyList = errors.New("identifier list is empty")
)

const (
	DefaultTranscriptSchema = "targetskma"

	// EarningsCallEventTypeID is the key development event type of earnings calls
	EarningsCallEventTypeID = 48
)

// OpenEstimateDate is the validity sentinel for consensus estimates; rows whose
// toDate lies after it are still in effect
var OpenEstimateDate = time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

// PublicCompanyTypeIDs restricts the market cap screen to public operating companies
var PublicCompanyTypeIDs = []int32{4, 5}

// Query is a rendered SQL statement together with its named arguments
type Query struct {
	Name string
	SQL  string
	Args pgx.NamedArgs
}

// Builder renders queries against the Capital IQ Xpressfeed schema
type Builder struct {
	transcriptSchema string
}

type Option func(*Builder)

// WithTranscriptSchema sets the schema that contains the transcript and event tables
func WithTranscriptSchema(schema string) Option {
	return func(builder *Builder) {
		if schema != "" {
			builder.transcriptSchema = schema
		}
	}
}

func NewBuilder(opts ...Option) *Builder {
	builder := &Builder{
		transcriptSchema: DefaultTranscriptSchema,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder
}

// TranscriptSchema returns the quoted schema name used for transcript tables
func (builder *Builder) TranscriptSchema() string {
	return pgx.Identifier{builder.transcriptSchema}.Sanitize()
}

func (builder *Builder) render(name string, params any, args pgx.NamedArgs) (*Query, error) {
	var sql strings.Builder
	if err := templates.ExecuteTemplate(&sql, name+".sql", params); err != nil {
		return nil, fmt.Errorf("render %s query: %w", name, err)
	}

	return &Query{
		Name: name,
		SQL:  sql.String(),
		Args: args,
	}, nil
}

func requireIDs(field string, ids []int64) error {
	if len(ids) == 0 {
		return fmt.Errorf("%w: %s", ErrEmptyList, field)
	}
	return nil
}
