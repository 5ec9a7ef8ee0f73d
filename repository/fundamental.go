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
	"github.com/penny-vault/ciqdata/query"
	"github.com/penny-vault/ciqdata/shape"
	"github.com/rs/zerolog/log"
)

// DefaultKeyDataItems are the headline data items pivoted by KeyFundamentals
var DefaultKeyDataItems = []int64{data.DataItemRevenue, data.DataItemEPS, data.DataItemNormalizedEPS}

// FundamentalRequest selects reported fundamentals
type FundamentalRequest struct {
	CompanyIDs  []int64
	DataItemIDs []int64

	// PeriodTypes defaults to annual and quarterly
	PeriodTypes []int64

	// StartYear is the first calendar year returned; defaults to 2007
	StartYear int
}

const DefaultStartYear = 2007

// Estimates returns the quarterly consensus values of the requested data
// items that are still in effect, for periods ending after periodEndAfter
func (repo *Repository) Estimates(ctx context.Context, companyIDs, dataItemIDs []int64, periodEndAfter time.Time) ([]*data.Estimate, error) {
	if err := requireIDs("company ids", companyIDs); err != nil {
		return nil, err
	}
	if err := requireIDs("data item ids", dataItemIDs); err != nil {
		return nil, err
	}

	q, err := repo.builder.Estimates(companyIDs, dataItemIDs, periodEndAfter)
	if err != nil {
		return nil, err
	}

	rows, err := selectRows[data.Estimate](ctx, repo, q)
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		row.PeriodEndDate = data.Date(row.PeriodEndDate)
	}

	return rows, nil
}

// KeyFundamentals pivots the estimates of the trailing years into one row per
// (company, period end date) and one column per data item. Headline items are
// named Revenue, EPS and Normalized EPS; other items keep their numeric id as
// column name. Values are rounded to three decimals. A nil dataItemIDs selects
// DefaultKeyDataItems.
func (repo *Repository) KeyFundamentals(ctx context.Context, companyIDs, dataItemIDs []int64, trailingYears int) (*shape.Table[data.PeriodKey], error) {
	if dataItemIDs == nil {
		dataItemIDs = DefaultKeyDataItems
	}

	start, _, err := repo.trailingWindow(trailingYears)
	if err != nil {
		return nil, err
	}

	estimates, err := repo.Estimates(ctx, companyIDs, dataItemIDs, start)
	if err != nil {
		return nil, err
	}

	cells := make([]shape.Cell[data.PeriodKey], len(estimates))
	for idx, estimate := range estimates {
		cells[idx] = shape.Cell[data.PeriodKey]{
			Key:    data.PeriodKey{CompanyID: estimate.CompanyID, PeriodEndDate: estimate.PeriodEndDate},
			Column: strconv.FormatInt(estimate.DataItemID, 10),
			Value:  estimate.DataItemValue,
		}
	}

	sortedIDs := slices.Clone(dataItemIDs)
	slices.Sort(sortedIDs)
	order := make([]string, len(sortedIDs))
	for idx, id := range sortedIDs {
		order[idx] = strconv.FormatInt(id, 10)
	}

	table, err := shape.Pivot(cells, comparePeriodKey, order)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(data.HeadlineNames))
	for id, name := range data.HeadlineNames {
		names[strconv.FormatInt(id, 10)] = name
	}

	table.Rename(names)
	table.Round(shape.KeyFundamentalPlaces)

	return table, nil
}

// HistoricalFundamentals returns reported data item values with values rounded
// to two decimals
func (repo *Repository) HistoricalFundamentals(ctx context.Context, req FundamentalRequest) ([]*data.Fundamental, error) {
	if err := requireIDs("company ids", req.CompanyIDs); err != nil {
		return nil, err
	}
	if err := requireIDs("data item ids", req.DataItemIDs); err != nil {
		return nil, err
	}

	params := query.HistoricalFundamentalParams{
		CompanyIDs:  req.CompanyIDs,
		DataItemIDs: req.DataItemIDs,
		PeriodTypes: req.PeriodTypes,
		StartYear:   req.StartYear,
	}

	if len(params.PeriodTypes) == 0 {
		params.PeriodTypes = []int64{data.PeriodAnnual, data.PeriodQuarterly}
	}
	if params.StartYear == 0 {
		params.StartYear = DefaultStartYear
	}

	q, err := repo.builder.HistoricalFundamentals(params)
	if err != nil {
		return nil, err
	}

	rows, err := selectRows[data.Fundamental](ctx, repo, q)
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		row.PeriodEndDate = data.Date(row.PeriodEndDate)
		row.DataItemValue = shape.Round(row.DataItemValue, shape.FundamentalPlaces)
	}

	return rows, nil
}

// FundamentalTable returns the reported fundamentals of a single period type
// pivoted into one row per (company, calendar year, calendar quarter) and one
// column per data item name. Restated values are dropped: for each data item
// and calendar period only the value of the earliest filing instance is kept.
func (repo *Repository) FundamentalTable(ctx context.Context, req FundamentalRequest, periodType int64) (*shape.Table[data.CalendarKey], error) {
	req.PeriodTypes = []int64{periodType}

	rows, err := repo.HistoricalFundamentals(ctx, req)
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(rows, func(a, b *data.Fundamental) int {
		if c := compareCalendarKey(calendarKey(a), calendarKey(b)); c != 0 {
			return c
		}
		return a.InstanceDate.Compare(b.InstanceDate)
	})

	type itemPeriod struct {
		key        data.CalendarKey
		dataItemID int64
	}

	first := shape.KeepEarliest(rows,
		func(row *data.Fundamental) itemPeriod {
			return itemPeriod{key: calendarKey(row), dataItemID: row.DataItemID}
		},
		func(a, b *data.Fundamental) int {
			return a.InstanceDate.Compare(b.InstanceDate)
		})

	if dropped := len(rows) - len(first); dropped > 0 {
		log.Debug().Int64("PeriodType", periodType).Int("Dropped", dropped).Msg("dropped restated fundamentals")
	}

	cells := make([]shape.Cell[data.CalendarKey], len(first))
	for idx, row := range first {
		cells[idx] = shape.Cell[data.CalendarKey]{
			Key:    calendarKey(row),
			Column: row.DataItemName,
			Value:  row.DataItemValue,
		}
	}

	return shape.Pivot(cells, compareCalendarKey, nil)
}

func calendarKey(row *data.Fundamental) data.CalendarKey {
	return data.CalendarKey{
		CompanyID:       row.CompanyID,
		CalendarYear:    row.CalendarYear,
		CalendarQuarter: row.CalendarQuarter,
	}
}

func comparePeriodKey(a, b data.PeriodKey) int {
	if c := cmp.Compare(a.CompanyID, b.CompanyID); c != 0 {
		return c
	}
	return a.PeriodEndDate.Compare(b.PeriodEndDate)
}

func compareCalendarKey(a, b data.CalendarKey) int {
	if c := cmp.Compare(a.CompanyID, b.CompanyID); c != 0 {
		return c
	}
	if c := cmp.Compare(a.CalendarYear, b.CalendarYear); c != 0 {
		return c
	}
	return cmp.Compare(a.CalendarQuarter, b.CalendarQuarter)
}
