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
	"errors"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/penny-vault/ciqdata/query"
)

var _ = Describe("Builder", func() {
	var (
		builder *query.Builder
		asOf    time.Time
	)

	BeforeEach(func() {
		builder = query.NewBuilder()
		asOf = time.Date(2024, 6, 28, 0, 0, 0, 0, time.UTC)
	})

	Context("market cap screen", func() {
		It("uses an exact date and a country predicate by default", func() {
			q, err := builder.MarketCap(query.MarketCapParams{
				AsOf:            asOf,
				MinUSDMarketCap: 1000,
				Country:         "US",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(q.SQL).To(ContainSubstring("mc.pricingdate = @as_of_date::date"))
			Expect(q.SQL).NotTo(ContainSubstring("INTERVAL '3 days'"))
			Expect(q.SQL).To(ContainSubstring("cg.isocountry2 = @country"))
			Expect(q.SQL).To(ContainSubstring(">= @min_usd_market_cap"))
			Expect(q.SQL).To(ContainSubstring("er.pricedate = mc.pricingdate"))
			Expect(q.Args).To(HaveKeyWithValue("country", "US"))
			Expect(q.Args).To(HaveKeyWithValue("as_of_date", asOf))
			Expect(q.Args).To(HaveKeyWithValue("min_usd_market_cap", 1000.0))
			Expect(q.Args).To(HaveKeyWithValue("company_type_ids", []int32{4, 5}))
		})

		It("widens the date to the three preceding days when fuzzy", func() {
			q, err := builder.MarketCap(query.MarketCapParams{AsOf: asOf, Country: "US", Fuzzy: true})
			Expect(err).NotTo(HaveOccurred())
			Expect(q.SQL).To(ContainSubstring("BETWEEN @as_of_date::date - INTERVAL '3 days' AND @as_of_date::date"))
			Expect(q.SQL).NotTo(ContainSubstring("mc.pricingdate = @as_of_date"))
		})

		It("omits the country predicate for Global", func() {
			q, err := builder.MarketCap(query.MarketCapParams{AsOf: asOf, Country: query.AllCountries})
			Expect(err).NotTo(HaveOccurred())
			Expect(q.SQL).NotTo(ContainSubstring("@country"))
			Expect(q.Args).NotTo(HaveKey("country"))
		})

		It("orders by pricing date and USD market cap descending", func() {
			q, err := builder.MarketCap(query.MarketCapParams{AsOf: asOf, Country: "US"})
			Expect(err).NotTo(HaveOccurred())
			Expect(q.SQL).To(ContainSubstring("ORDER BY mc.pricingdate DESC, usdmarketcap DESC"))
		})
	})

	Context("security lookup", func() {
		It("binds the ticker and upper cases the country", func() {
			q, err := builder.Security("AAPL", "us")
			Expect(err).NotTo(HaveOccurred())
			Expect(q.Args).To(HaveKeyWithValue("ticker", "AAPL"))
			Expect(q.Args).To(HaveKeyWithValue("country", "US"))
			Expect(q.SQL).NotTo(ContainSubstring("AAPL"))
		})

		It("keeps hostile input out of the SQL text", func() {
			ticker := "X'; DROP TABLE ciqcompany; --"
			q, err := builder.Security(ticker, "US")
			Expect(err).NotTo(HaveOccurred())
			Expect(q.SQL).NotTo(ContainSubstring("DROP TABLE"))
			Expect(q.Args).To(HaveKeyWithValue("ticker", ticker))
		})
	})

	Context("transcripts", func() {
		It("qualifies transcript tables with the default schema", func() {
			q, err := builder.TranscriptDiscovery(24937, asOf)
			Expect(err).NotTo(HaveOccurred())
			Expect(q.SQL).To(ContainSubstring(`"targetskma".ciqtranscript t`))
			Expect(q.Args).To(HaveKeyWithValue("event_type_id", query.EarningsCallEventTypeID))
			Expect(q.Args).To(HaveKeyWithValue("company_id", int64(24937)))
			Expect(q.Args).To(HaveKeyWithValue("created_after", asOf))
		})

		It("quotes a configured schema", func() {
			custom := query.NewBuilder(query.WithTranscriptSchema(`bad"schema`))
			Expect(custom.TranscriptSchema()).To(Equal(`"bad""schema"`))

			q, err := custom.TranscriptContent([]int64{1})
			Expect(err).NotTo(HaveOccurred())
			Expect(q.SQL).To(ContainSubstring(`"bad""schema".ciqtranscriptcomponent`))
		})

		It("ignores an empty schema", func() {
			custom := query.NewBuilder(query.WithTranscriptSchema(""))
			Expect(custom.TranscriptSchema()).To(Equal(`"targetskma"`))
		})

		It("binds transcript ids as an array", func() {
			q, err := builder.TranscriptContent([]int64{10, 20})
			Expect(err).NotTo(HaveOccurred())
			Expect(q.SQL).To(ContainSubstring("tc.transcriptid = ANY(@transcript_ids)"))
			Expect(q.SQL).To(ContainSubstring("ORDER BY tc.transcriptid, tc.componentorder"))
			Expect(q.Args).To(HaveKeyWithValue("transcript_ids", []int64{10, 20}))
		})

		It("rejects an empty transcript list", func() {
			_, err := builder.TranscriptContent(nil)
			Expect(errors.Is(err, query.ErrEmptyList)).To(BeTrue())
		})
	})

	Context("estimates", func() {
		It("restricts to quarterly periods that are still in effect", func() {
			q, err := builder.Estimates([]int64{1, 2}, []int64{100186}, asOf)
			Expect(err).NotTo(HaveOccurred())
			Expect(q.Args).To(HaveKeyWithValue("period_type_id", 2))
			Expect(q.Args).To(HaveKeyWithValue("open_after", query.OpenEstimateDate))
			Expect(q.Args).To(HaveKeyWithValue("period_end_after", asOf))
			Expect(q.SQL).To(ContainSubstring("ep.companyid = ANY(@company_ids)"))
			Expect(q.SQL).To(ContainSubstring("ORDER BY ep.companyid, ep.periodenddate, ed.dataitemid"))
		})

		It("rejects empty id lists", func() {
			_, err := builder.Estimates(nil, []int64{1}, asOf)
			Expect(err).To(MatchError(query.ErrEmptyList))

			_, err = builder.Estimates([]int64{1}, []int64{}, asOf)
			Expect(err).To(MatchError(query.ErrEmptyList))
		})
	})

	Context("historical fundamentals", func() {
		It("binds ids, period types and the start year", func() {
			q, err := builder.HistoricalFundamentals(query.HistoricalFundamentalParams{
				CompanyIDs:  []int64{24937},
				DataItemIDs: []int64{28, 29},
				PeriodTypes: []int64{1},
				StartYear:   2010,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(q.Args).To(HaveKeyWithValue("start_year", 2010))
			Expect(q.Args).To(HaveKeyWithValue("start_date", time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC)))
			Expect(q.Args).To(HaveKeyWithValue("period_type_ids", []int64{1}))
			Expect(q.SQL).To(ContainSubstring("fp.calendaryear >= @start_year"))
		})

		It("rejects a missing period type list", func() {
			_, err := builder.HistoricalFundamentals(query.HistoricalFundamentalParams{
				CompanyIDs:  []int64{1},
				DataItemIDs: []int64{1},
			})
			Expect(err).To(MatchError(query.ErrEmptyList))
		})
	})

	Context("prices", func() {
		It("binds the company and an inclusive window", func() {
			start := asOf.AddDate(0, 0, -365)
			q, err := builder.Prices(24937, start, asOf)
			Expect(err).NotTo(HaveOccurred())
			Expect(q.SQL).To(ContainSubstring("mi.pricedate >= @start_date"))
			Expect(q.SQL).To(ContainSubstring("mi.pricedate <= @end_date"))
			Expect(q.SQL).To(ContainSubstring("COALESCE(daf.divadjfactor, 1)"))
			Expect(q.Args).To(HaveKeyWithValue("start_date", start))
			Expect(q.Args).To(HaveKeyWithValue("end_date", asOf))
		})
	})

	Context("data items", func() {
		It("lists the whole catalog for nil ids", func() {
			q, err := builder.DataItems(nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(q.SQL).NotTo(ContainSubstring("WHERE"))
			Expect(q.Args).To(BeEmpty())
		})

		It("filters by ids", func() {
			q, err := builder.DataItems([]int64{100186})
			Expect(err).NotTo(HaveOccurred())
			Expect(q.SQL).To(ContainSubstring("di.dataitemid = ANY(@data_item_ids)"))
		})

		It("rejects an empty but non-nil list", func() {
			_, err := builder.DataItems([]int64{})
			Expect(err).To(MatchError(query.ErrEmptyList))
		})
	})

	It("renders every query without template residue", func() {
		queries := []func() (*query.Query, error){
			func() (*query.Query, error) { return builder.CompanySample(10) },
			builder.DatabaseSummary,
			func() (*query.Query, error) { return builder.Prices(1, asOf, asOf) },
			func() (*query.Query, error) { return builder.TranscriptDiscovery(1, asOf) },
		}

		for _, build := range queries {
			q, err := build()
			Expect(err).NotTo(HaveOccurred())
			Expect(strings.Contains(q.SQL, "{{")).To(BeFalse(), q.Name)
			Expect(q.SQL).To(HavePrefix("SELECT"))
		}
	})
})
