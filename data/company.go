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

// Company is a row of the connection test query
type Company struct {
	CompanyID   int64  `db:"companyid" json:"companyId" csv:"companyid"`
	CompanyName string `db:"companyname" json:"companyName" csv:"companyname"`
}

// MarketCap is one company's market capitalization on a pricing date, with
// the USD-normalized value computed from the latest exchange rate snapshot
type MarketCap struct {
	CompanyID    int64     `db:"companyid" json:"companyId" csv:"companyid"`
	MarketCap    float64   `db:"marketcap" json:"marketCap" csv:"marketcap"`
	PricingDate  time.Time `db:"pricingdate" json:"pricingDate" csv:"pricingdate"`
	USDMarketCap float64   `db:"usdmarketcap" json:"usdMarketCap" csv:"usdmarketcap"`
	CompanyName  string    `db:"companyname" json:"companyName" csv:"companyname"`
	TickerSymbol string    `db:"tickersymbol" json:"tickerSymbol" csv:"tickersymbol"`
	Currency     string    `db:"currency" json:"currency" csv:"currency"`
	Exchange     string    `db:"exchange" json:"exchange" csv:"exchange"`
	Country      string    `db:"country" json:"country" csv:"country"`
}

// Security joins the primary trading item, primary security and company
// records for a ticker
type Security struct {
	TradingItemID int64  `db:"tradingitemid" json:"tradingItemId" csv:"tradingitemid"`
	TickerSymbol  string `db:"tickersymbol" json:"tickerSymbol" csv:"tickersymbol"`
	ExchangeID    int64  `db:"exchangeid" json:"exchangeId" csv:"exchangeid"`
	CurrencyID    int64  `db:"currencyid" json:"currencyId" csv:"currencyid"`
	SecurityID    int64  `db:"securityid" json:"securityId" csv:"securityid"`
	SecurityName  string `db:"securityname" json:"securityName" csv:"securityname"`
	CompanyID     int64  `db:"companyid" json:"companyId" csv:"companyid"`
	CompanyName   string `db:"companyname" json:"companyName" csv:"companyname"`
	CompanyTypeID int64  `db:"companytypeid" json:"companyTypeId" csv:"companytypeid"`
	CountryCode   string `db:"countrycode" json:"countryCode" csv:"countrycode"`
}

// DataItem is an entry of the data item catalog
type DataItem struct {
	DataItemID          int64   `db:"dataitemid" json:"dataItemId" csv:"dataitemid"`
	DataItemName        string  `db:"dataitemname" json:"dataItemName" csv:"dataitemname"`
	DataItemDescription *string `db:"dataitemdescription" json:"dataItemDescription" csv:"dataitemdescription"`
}

// Summary describes the database a repository is connected to
type Summary struct {
	ServerVersion     string     `db:"serverversion"`
	DataItemCount     int64      `db:"dataitemcount"`
	CompanyCount      int64      `db:"companycount"`
	LatestPricingDate *time.Time `db:"latestpricingdate"`
}
