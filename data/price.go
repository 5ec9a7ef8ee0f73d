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

// PriceRow is a raw row of the adjusted price query
type PriceRow struct {
	CompanyID     int64     `db:"companyid"`
	TradingItemID int64     `db:"tradingitemid"`
	CurrencyID    int64     `db:"currencyid"`
	PriceDate     time.Time `db:"pricedate"`
	PriceClose    float64   `db:"priceclose"`
	PriceOpen     *float64  `db:"priceopen"`
	PriceHigh     *float64  `db:"pricehigh"`
	PriceLow      *float64  `db:"pricelow"`
	Volume        *float64  `db:"volume"`
	VWAP          *float64  `db:"vwap"`
	DivAdjClose   float64   `db:"divadjclose"`
	DivAdjFactor  float64   `db:"divadjfactor"`
}

// PriceBar is one daily observation of the price history, with the close
// adjusted for dividends
type PriceBar struct {
	PriceDate    time.Time `json:"priceDate" csv:"pricedate"`
	PriceClose   float64   `json:"priceClose" csv:"priceclose"`
	PriceOpen    *float64  `json:"priceOpen" csv:"priceopen"`
	PriceHigh    *float64  `json:"priceHigh" csv:"pricehigh"`
	PriceLow     *float64  `json:"priceLow" csv:"pricelow"`
	Volume       *float64  `json:"volume" csv:"volume"`
	VWAP         *float64  `json:"vwap" csv:"vwap"`
	DivAdjClose  float64   `json:"divAdjClose" csv:"divadjclose"`
	DivAdjFactor float64   `json:"divAdjFactor" csv:"divadjfactor"`
}

// PriceClose is the (date, close) projection of a price bar
type PriceClose struct {
	PriceDate  time.Time `json:"priceDate" csv:"pricedate"`
	PriceClose float64   `json:"priceClose" csv:"priceclose"`
}

// PriceBarColumns lists the columns of a price bar in output order
var PriceBarColumns = []string{
	"pricedate",
	"priceclose",
	"priceopen",
	"pricehigh",
	"pricelow",
	"volume",
	"vwap",
	"divadjclose",
	"divadjfactor",
}
