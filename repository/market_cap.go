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
	"strings"

	"github.com/penny-vault/ciqdata/data"
	"github.com/penny-vault/ciqdata/query"
	"github.com/penny-vault/ciqdata/shape"
)

const DefaultCountry = "US"

// MarketCapScreen returns the primary listings of public companies whose USD
// market cap on asOf is at least minUSDMarketCap (in millions). Country is an
// ISO alpha-2 code or "Global" for every country. With fuzzy set the three
// days preceding asOf are included. Rows are ordered by pricing date
// descending, then USD market cap descending.
func (repo *Repository) MarketCapScreen(ctx context.Context, asOf string, minUSDMarketCap float64, country string, fuzzy bool) ([]*data.MarketCap, error) {
	asOfDate, err := data.ParseDate(asOf)
	if err != nil {
		return nil, &ValidationError{Field: "as-of date", Value: asOf, Reason: "is not a date"}
	}

	if country == "" {
		country = DefaultCountry
	}
	if country != query.AllCountries {
		country = strings.ToUpper(country)
	}

	q, err := repo.builder.MarketCap(query.MarketCapParams{
		AsOf:            asOfDate,
		MinUSDMarketCap: minUSDMarketCap,
		Country:         country,
		Fuzzy:           fuzzy,
	})
	if err != nil {
		return nil, err
	}

	rows, err := selectRows[data.MarketCap](ctx, repo, q)
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		row.PricingDate = data.Date(row.PricingDate)
		row.USDMarketCap = shape.Round(row.USDMarketCap, shape.PricePlaces)
	}

	slices.SortStableFunc(rows, func(a, b *data.MarketCap) int {
		if c := b.PricingDate.Compare(a.PricingDate); c != 0 {
			return c
		}
		if c := cmp.Compare(b.USDMarketCap, a.USDMarketCap); c != 0 {
			return c
		}
		return cmp.Compare(a.CompanyID, b.CompanyID)
	})

	return rows, nil
}
