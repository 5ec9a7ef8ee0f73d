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
	"context"
	"errors"

	"github.com/penny-vault/ciqdata/data"
)

const sampleSize = 10

var errNoSummary = errors.New("database summary query returned no rows")

// TestConnection returns the first companies of the company table. It is used
// to verify connectivity and schema access.
func (repo *Repository) TestConnection(ctx context.Context) ([]*data.Company, error) {
	q, err := repo.builder.CompanySample(sampleSize)
	if err != nil {
		return nil, err
	}

	return selectRows[data.Company](ctx, repo, q)
}

// Summary returns server and catalog statistics of the connected database
func (repo *Repository) Summary(ctx context.Context) (*data.Summary, error) {
	q, err := repo.builder.DatabaseSummary()
	if err != nil {
		return nil, err
	}

	rows, err := selectRows[data.Summary](ctx, repo, q)
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, errNoSummary
	}

	return rows[0], nil
}
