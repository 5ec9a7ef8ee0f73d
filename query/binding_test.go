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
package query_test

import (
	"context"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/penny-vault/ciqdata/query"
)

var _ = Describe("Placeholder binding", func() {
	asOf := time.Date(2024, 6, 28, 0, 0, 0, 0, time.UTC)
	builder := query.NewBuilder()

	build := func(q *query.Query, err error) *query.Query {
		Expect(err).NotTo(HaveOccurred())
		return q
	}

	DescribeTable("binds every placeholder to a supplied argument",
		func(q func() *query.Query) {
			rendered := q()
			Expect(rendered.SQL).NotTo(ContainSubstring("{{"), rendered.Name)

			sql, args, err := rendered.Args.RewriteQuery(context.Background(), nil, rendered.SQL, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(strings.Contains(sql, "@")).To(BeFalse(), rendered.Name)

			// every argument is referenced and none is left unbound
			Expect(args).To(HaveLen(len(rendered.Args)), rendered.Name)
			for idx, arg := range args {
				Expect(arg).NotTo(BeNil(), "%s argument $%d", rendered.Name, idx+1)
			}
		},
		Entry("company sample", func() *query.Query { return build(builder.CompanySample(10)) }),
		Entry("database summary", func() *query.Query { return build(builder.DatabaseSummary()) }),
		Entry("market cap", func() *query.Query {
			return build(builder.MarketCap(query.MarketCapParams{AsOf: asOf, MinUSDMarketCap: 1000, Country: "US"}))
		}),
		Entry("market cap fuzzy global", func() *query.Query {
			return build(builder.MarketCap(query.MarketCapParams{AsOf: asOf, MinUSDMarketCap: 1000, Country: query.AllCountries, Fuzzy: true}))
		}),
		Entry("security", func() *query.Query { return build(builder.Security("AAPL", "US")) }),
		Entry("transcript discovery", func() *query.Query { return build(builder.TranscriptDiscovery(24937, asOf)) }),
		Entry("transcript content", func() *query.Query { return build(builder.TranscriptContent([]int64{1, 2})) }),
		Entry("estimates", func() *query.Query {
			return build(builder.Estimates([]int64{24937}, []int64{100186}, asOf))
		}),
		Entry("historical fundamentals", func() *query.Query {
			return build(builder.HistoricalFundamentals(query.HistoricalFundamentalParams{
				CompanyIDs:  []int64{24937},
				DataItemIDs: []int64{28},
				PeriodTypes: []int64{1, 2},
				StartYear:   2007,
			}))
		}),
		Entry("prices", func() *query.Query { return build(builder.Prices(24937, asOf.AddDate(-1, 0, 0), asOf)) }),
		Entry("all data items", func() *query.Query { return build(builder.DataItems(nil)) }),
		Entry("some data items", func() *query.Query { return build(builder.DataItems([]int64{28})) }),
	)

	It("keeps null values out of scanned numeric columns", func() {
		fundamentals := build(builder.HistoricalFundamentals(query.HistoricalFundamentalParams{
			CompanyIDs:  []int64{1},
			DataItemIDs: []int64{28},
			PeriodTypes: []int64{1},
		}))
		Expect(fundamentals.SQL).To(ContainSubstring("COALESCE(fp.calendarquarter, 0) AS calendarquarter"))
		Expect(fundamentals.SQL).To(ContainSubstring("fd.dataitemvalue IS NOT NULL"))

		estimates := build(builder.Estimates([]int64{1}, []int64{28}, asOf))
		Expect(estimates.SQL).To(ContainSubstring("ed.dataitemvalue IS NOT NULL"))

		prices := build(builder.Prices(1, asOf, asOf))
		Expect(prices.SQL).To(ContainSubstring("mi.priceclose IS NOT NULL"))
	})
})
