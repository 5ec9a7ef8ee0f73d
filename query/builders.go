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
package query

import (
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/penny-vault/ciqdata/data"
)

// AllCountries disables the country predicate of the market cap screen
const AllCountries = "Global"

type MarketCapParams struct {
	AsOf time.Time

	// MinUSDMarketCap is the inclusive threshold in millions of USD
	MinUSDMarketCap float64

	// Country is an ISO 3166 alpha-2 code or AllCountries
	Country string

	// Fuzzy widens the date predicate to the three days before AsOf
	Fuzzy bool
}

type HistoricalFundamentalParams struct {
	CompanyIDs  []int64
	DataItemIDs []int64
	PeriodTypes []int64
	StartYear   int
}

// CompanySample lists the first companies of the company table
func (builder *Builder) CompanySample(limit int) (*Query, error) {
	return builder.render("company_sample", nil, pgx.NamedArgs{
		"limit": limit,
	})
}

// DatabaseSummary collects server and catalog statistics
func (builder *Builder) DatabaseSummary() (*Query, error) {
	return builder.render("database_summary", nil, pgx.NamedArgs{})
}

// MarketCap screens primary listings of public companies by USD market cap
func (builder *Builder) MarketCap(params MarketCapParams) (*Query, error) {
	allCountries := params.Country == AllCountries
	args := pgx.NamedArgs{
		"as_of_date":         params.AsOf,
		"min_usd_market_cap": params.MinUSDMarketCap,
		"company_type_ids":   PublicCompanyTypeIDs,
	}

	if !allCountries {
		args["country"] = params.Country
	}

	return builder.render("market_cap", struct {
		Fuzzy        bool
		AllCountries bool
	}{params.Fuzzy, allCountries}, args)
}

// Security finds the primary trading item for a ticker listed by a company
// in the given country
func (builder *Builder) Security(ticker, country string) (*Query, error) {
	return builder.render("security", nil, pgx.NamedArgs{
		"ticker":  ticker,
		"country": strings.ToUpper(country),
	})
}

// TranscriptDiscovery lists earnings call transcripts of a company created
// after the cutoff
func (builder *Builder) TranscriptDiscovery(companyID int64, createdAfter time.Time) (*Query, error) {
	return builder.render("transcript_discovery", builder.schemaParams(), pgx.NamedArgs{
		"event_type_id": EarningsCallEventTypeID,
		"company_id":    companyID,
		"created_after": createdAfter,
	})
}

// TranscriptContent returns the ordered components of the given transcripts
func (builder *Builder) TranscriptContent(transcriptIDs []int64) (*Query, error) {
	if err := requireIDs("transcript ids", transcriptIDs); err != nil {
		return nil, err
	}

	return builder.render("transcript_content", builder.schemaParams(), pgx.NamedArgs{
		"transcript_ids": transcriptIDs,
	})
}

// Estimates returns quarterly consensus values that are still in effect for
// periods ending after the given date
func (builder *Builder) Estimates(companyIDs, dataItemIDs []int64, periodEndAfter time.Time) (*Query, error) {
	if err := requireIDs("company ids", companyIDs); err != nil {
		return nil, err
	}
	if err := requireIDs("data item ids", dataItemIDs); err != nil {
		return nil, err
	}

	return builder.render("estimate", nil, pgx.NamedArgs{
		"company_ids":      companyIDs,
		"period_type_id":   data.PeriodQuarterly,
		"data_item_ids":    dataItemIDs,
		"period_end_after": periodEndAfter,
		"open_after":       OpenEstimateDate,
	})
}

// HistoricalFundamentals returns reported values from the financials collection
func (builder *Builder) HistoricalFundamentals(params HistoricalFundamentalParams) (*Query, error) {
	if err := requireIDs("company ids", params.CompanyIDs); err != nil {
		return nil, err
	}
	if err := requireIDs("data item ids", params.DataItemIDs); err != nil {
		return nil, err
	}
	if err := requireIDs("period types", params.PeriodTypes); err != nil {
		return nil, err
	}

	return builder.render("fundamental", nil, pgx.NamedArgs{
		"data_item_ids":   params.DataItemIDs,
		"company_ids":     params.CompanyIDs,
		"start_year":      params.StartYear,
		"period_type_ids": params.PeriodTypes,
		"start_date":      time.Date(params.StartYear, time.January, 1, 0, 0, 0, 0, time.UTC),
	})
}

// Prices returns adjusted daily prices of the company's primary trading item
// between start and end inclusive
func (builder *Builder) Prices(companyID int64, start, end time.Time) (*Query, error) {
	return builder.render("price", nil, pgx.NamedArgs{
		"company_id": companyID,
		"start_date": start,
		"end_date":   end,
	})
}

// DataItems returns the catalog entries for ids, or the whole catalog when ids is nil
func (builder *Builder) DataItems(ids []int64) (*Query, error) {
	all := ids == nil
	args := pgx.NamedArgs{}
	if !all {
		if err := requireIDs("data item ids", ids); err != nil {
			return nil, err
		}
		args["data_item_ids"] = ids
	}

	return builder.render("data_item", struct{ All bool }{all}, args)
}

func (builder *Builder) schemaParams() any {
	return struct{ Schema string }{builder.TranscriptSchema()}
}
