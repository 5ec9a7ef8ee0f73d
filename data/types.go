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
package data

import "time"

// Period types used by the fundamentals and estimates tables
const (
	PeriodAnnual    = 1
	PeriodQuarterly = 2
)

// Headline data item identifiers in the data item catalog
const (
	DataItemRevenue       int64 = 100186
	DataItemEPS           int64 = 100284
	DataItemNormalizedEPS int64 = 100179
)

// HeadlineNames maps the headline data items to the column names used in
// pivoted fundamentals
var HeadlineNames = map[int64]string{
	DataItemRevenue:       "Revenue",
	DataItemEPS:           "EPS",
	DataItemNormalizedEPS: "Normalized EPS",
}

// PeriodKey identifies one row of a pivot keyed by fiscal period end date
type PeriodKey struct {
	CompanyID     int64
	PeriodEndDate time.Time
}

// CalendarKey identifies one row of a pivot keyed by calendar year and
// quarter. Annual periods have quarter 0.
type CalendarKey struct {
	CompanyID       int64
	CalendarYear    int
	CalendarQuarter int
}
