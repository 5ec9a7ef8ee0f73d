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
	"slices"

	"github.com/penny-vault/ciqdata/data"
	"github.com/penny-vault/ciqdata/shape"
)

// PriceHistory returns the daily prices of the company's primary trading item
// over the trailing years, oldest first. Prices and VWAP are rounded to two
// decimals and the dividend adjustment factor to four. The adjusted close is
// the close multiplied by the factor in effect on the price date, or the
// close itself when no factor applies.
func (repo *Repository) PriceHistory(ctx context.Context, companyID int64, trailingYears int) ([]*data.PriceBar, error) {
	start, end, err := repo.trailingWindow(trailingYears)
	if err != nil {
		return nil, err
	}

	q, err := repo.builder.Prices(companyID, start, end)
	if err != nil {
		return nil, err
	}

	rows, err := selectRows[data.PriceRow](ctx, repo, q)
	if err != nil {
		return nil, err
	}

	bars := make([]*data.PriceBar, len(rows))
	for idx, row := range rows {
		bars[idx] = priceBar(row)
	}

	slices.SortStableFunc(bars, func(a, b *data.PriceBar) int {
		return a.PriceDate.Compare(b.PriceDate)
	})

	return bars, nil
}

// PriceCloseHistory returns the (date, close) series of PriceHistory
func (repo *Repository) PriceCloseHistory(ctx context.Context, companyID int64, trailingYears int) ([]*data.PriceClose, error) {
	bars, err := repo.PriceHistory(ctx, companyID, trailingYears)
	if err != nil {
		return nil, err
	}

	closes := make([]*data.PriceClose, len(bars))
	for idx, bar := range bars {
		closes[idx] = &data.PriceClose{
			PriceDate:  bar.PriceDate,
			PriceClose: bar.PriceClose,
		}
	}

	return closes, nil
}

func priceBar(row *data.PriceRow) *data.PriceBar {
	return &data.PriceBar{
		PriceDate:    data.Date(row.PriceDate),
		PriceClose:   shape.Round(row.PriceClose, shape.PricePlaces),
		PriceOpen:    shape.RoundPtr(row.PriceOpen, shape.PricePlaces),
		PriceHigh:    shape.RoundPtr(row.PriceHigh, shape.PricePlaces),
		PriceLow:     shape.RoundPtr(row.PriceLow, shape.PricePlaces),
		Volume:       shape.RoundPtr(row.Volume, shape.PricePlaces),
		VWAP:         shape.RoundPtr(row.VWAP, shape.PricePlaces),
		DivAdjClose:  shape.Round(row.DivAdjClose, shape.PricePlaces),
		DivAdjFactor: shape.Round(row.DivAdjFactor, shape.AdjustmentPlaces),
	}
}
