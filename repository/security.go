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
	"fmt"
	"strings"

	"github.com/penny-vault/ciqdata/data"
	"github.com/rs/zerolog/log"
)

// SecurityInfo returns every primary trading item that matches ticker in
// country. Callers that need a single security should use LookupSecurity.
func (repo *Repository) SecurityInfo(ctx context.Context, ticker, country string) ([]*data.Security, error) {
	if strings.TrimSpace(ticker) == "" {
		return nil, &ValidationError{Field: "ticker", Value: ticker, Reason: "must not be empty"}
	}

	if country == "" {
		country = DefaultCountry
	}

	q, err := repo.builder.Security(ticker, country)
	if err != nil {
		return nil, err
	}

	return selectRows[data.Security](ctx, repo, q)
}

// LookupSecurity returns the single primary security for ticker in country.
// A *LookupError is returned when the pair matches zero or several rows.
func (repo *Repository) LookupSecurity(ctx context.Context, ticker, country string) (*data.Security, error) {
	rows, err := repo.SecurityInfo(ctx, ticker, country)
	if err != nil {
		return nil, err
	}

	if country == "" {
		country = DefaultCountry
	}

	if len(rows) != 1 {
		log.Warn().Str("Ticker", ticker).Str("Country", strings.ToUpper(country)).Int("Matches", len(rows)).Msg("security lookup is not unique")
		return nil, &LookupError{
			What:  "security",
			Key:   fmt.Sprintf("%s/%s", ticker, strings.ToUpper(country)),
			Count: len(rows),
		}
	}

	return rows[0], nil
}

// CompanyID resolves ticker in country to its company id
func (repo *Repository) CompanyID(ctx context.Context, ticker, country string) (int64, error) {
	security, err := repo.LookupSecurity(ctx, ticker, country)
	if err != nil {
		return 0, err
	}

	return security.CompanyID, nil
}
