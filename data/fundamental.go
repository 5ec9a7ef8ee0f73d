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

// Estimate is one consensus estimate value for a quarterly estimate period
type Estimate struct {
	CompanyID       int64     `db:"companyid" json:"companyId" csv:"companyid"`
	PeriodTypeID    int       `db:"periodtypeid" json:"periodTypeId" csv:"periodtypeid"`
	PeriodEndDate   time.Time `db:"periodenddate" json:"periodEndDate" csv:"periodenddate"`
	FiscalYear      int       `db:"fiscalyear" json:"fiscalYear" csv:"fiscalyear"`
	FiscalQuarter   int       `db:"fiscalquarter" json:"fiscalQuarter" csv:"fiscalquarter"`
	DataItemID      int64     `db:"dataitemid" json:"dataItemId" csv:"dataitemid"`
	CurrencyID      *int64    `db:"currencyid" json:"currencyId" csv:"currencyid"`
	DataItemValue   float64   `db:"dataitemvalue" json:"dataItemValue" csv:"dataitemvalue"`
	EffectiveDate   time.Time `db:"effectivedate" json:"effectiveDate" csv:"effectivedate"`
	ToDate          time.Time `db:"todate" json:"toDate" csv:"todate"`
	EstimateScaleID *int64    `db:"estimatescaleid" json:"estimateScaleId" csv:"estimatescaleid"`
	DataItemName    string    `db:"dataitemname" json:"dataItemName" csv:"dataitemname"`
}

// Fundamental is one reported financial data item value of a filing instance
type Fundamental struct {
	CompanyID       int64      `db:"companyid" json:"companyId" csv:"companyid"`
	PeriodEndDate   time.Time  `db:"periodenddate" json:"periodEndDate" csv:"periodenddate"`
	FilingDate      *time.Time `db:"filingdate" json:"filingDate" csv:"filingdate"`
	FormType        *string    `db:"formtype" json:"formType" csv:"formtype"`
	CurrencyID      *int64     `db:"currencyid" json:"currencyId" csv:"currencyid"`
	PeriodTypeID    int        `db:"periodtypeid" json:"periodTypeId" csv:"periodtypeid"`
	CalendarQuarter int        `db:"calendarquarter" json:"calendarQuarter" csv:"calendarquarter"`
	CalendarYear    int        `db:"calendaryear" json:"calendarYear" csv:"calendaryear"`
	DataItemID      int64      `db:"dataitemid" json:"dataItemId" csv:"dataitemid"`
	DataItemValue   float64    `db:"dataitemvalue" json:"dataItemValue" csv:"dataitemvalue"`
	InstanceDate    time.Time  `db:"instancedate" json:"instanceDate" csv:"instancedate"`
	DataItemName    string     `db:"dataitemname" json:"dataItemName" csv:"dataitemname"`
}
