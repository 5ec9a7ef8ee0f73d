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

// Package shape holds the reshaping steps applied to query results: fixed
// precision rounding, deduplication and long to wide pivots.
package shape

import (
	"math"

	"github.com/shopspring/decimal"
)

// Decimal places kept for each kind of value
const (
	PricePlaces          int32 = 2
	AdjustmentPlaces     int32 = 4
	FundamentalPlaces    int32 = 2
	KeyFundamentalPlaces int32 = 3
)

// Round rounds v half away from zero to places decimal places. NaN and
// infinities are returned unchanged.
func Round(v float64, places int32) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}

	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}

// RoundPtr rounds the value pointed to by v; a nil pointer stays nil
func RoundPtr(v *float64, places int32) *float64 {
	if v == nil {
		return nil
	}

	rounded := Round(*v, places)
	return &rounded
}
