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
package repository_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/penny-vault/ciqdata/data"
	"github.com/penny-vault/ciqdata/repository"
	"github.com/penny-vault/ciqdata/shape"
)

var _ = Describe("Fundamentals", func() {
	var (
		ctx   context.Context
		fake  *fakeDatabase
		repo  *repository.Repository
		today time.Time
	)

	q1 := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	q2 := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

	BeforeEach(func() {
		ctx = context.Background()
		fake = &fakeDatabase{}
		today = time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC)
		repo = repository.New(fake, repository.WithClock(func() time.Time { return today }))
	})

	Context("estimates", func() {
		It("rejects empty id lists", func() {
			_, err := repo.Estimates(ctx, nil, []int64{data.DataItemEPS}, q1)
			Expect(err).To(MatchError(repository.ErrInvalidInput))

			_, err = repo.Estimates(ctx, []int64{24937}, nil, q1)
			Expect(err).To(MatchError(repository.ErrInvalidInput))
			Expect(fake.calls).To(BeEmpty())
		})

		It("normalizes period end dates", func() {
			fake.rows = []*data.Estimate{
				{CompanyID: 1, PeriodEndDate: q1.Add(5 * time.Hour), DataItemID: data.DataItemEPS},
			}

			rows, err := repo.Estimates(ctx, []int64{1}, []int64{data.DataItemEPS}, q1)
			Expect(err).NotTo(HaveOccurred())
			Expect(rows[0].PeriodEndDate).To(Equal(q1))
		})
	})

	Context("key fundamentals", func() {
		It("pivots headline items into named columns", func() {
			fake.rows = []*data.Estimate{
				{CompanyID: 24937, PeriodEndDate: q2, DataItemID: data.DataItemEPS, DataItemValue: 1.34567},
				{CompanyID: 24937, PeriodEndDate: q1, DataItemID: data.DataItemRevenue, DataItemValue: 90753.4444},
				{CompanyID: 24937, PeriodEndDate: q1, DataItemID: data.DataItemEPS, DataItemValue: 1.5251},
				{CompanyID: 24937, PeriodEndDate: q2, DataItemID: data.DataItemRevenue, DataItemValue: 84532.1},
				{CompanyID: 24937, PeriodEndDate: q1, DataItemID: data.DataItemNormalizedEPS, DataItemValue: 1.53},
			}

			table, err := repo.KeyFundamentals(ctx, []int64{24937}, nil, 5)
			Expect(err).NotTo(HaveOccurred())
			Expect(table.Columns).To(Equal([]string{"Normalized EPS", "Revenue", "EPS"}))
			Expect(table.Rows).To(HaveLen(2))

			Expect(table.Rows[0].Key).To(Equal(data.PeriodKey{CompanyID: 24937, PeriodEndDate: q1}))
			Expect(table.Rows[0].Values).To(Equal(map[string]float64{
				"Revenue":        90753.444,
				"EPS":            1.525,
				"Normalized EPS": 1.53,
			}))

			_, ok := table.Rows[1].Value("Normalized EPS")
			Expect(ok).To(BeFalse())
			Expect(table.Rows[1].Values["EPS"]).To(Equal(1.346))
		})

		It("queries the default items over the trailing window", func() {
			_, err := repo.KeyFundamentals(ctx, []int64{24937}, nil, 2)
			Expect(err).NotTo(HaveOccurred())

			call := fake.lastCall()
			Expect(call.Args).To(HaveKeyWithValue("data_item_ids", repository.DefaultKeyDataItems))
			Expect(call.Args).To(HaveKeyWithValue("period_end_after", today.AddDate(0, 0, -730)))
		})

		It("keeps numeric names for other data items", func() {
			fake.rows = []*data.Estimate{
				{CompanyID: 1, PeriodEndDate: q1, DataItemID: 21634, DataItemValue: 7},
			}

			table, err := repo.KeyFundamentals(ctx, []int64{1}, []int64{21634}, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(table.Columns).To(Equal([]string{"21634"}))
		})

		It("fails on duplicate estimates for a period", func() {
			fake.rows = []*data.Estimate{
				{CompanyID: 1, PeriodEndDate: q1, DataItemID: data.DataItemEPS, DataItemValue: 1},
				{CompanyID: 1, PeriodEndDate: q1, DataItemID: data.DataItemEPS, DataItemValue: 2},
			}

			_, err := repo.KeyFundamentals(ctx, []int64{1}, nil, 1)
			Expect(err).To(MatchError(shape.ErrDuplicateKey))
		})
	})

	Context("historical fundamentals", func() {
		It("applies default period types and start year", func() {
			_, err := repo.HistoricalFundamentals(ctx, repository.FundamentalRequest{
				CompanyIDs:  []int64{24937},
				DataItemIDs: []int64{28},
			})
			Expect(err).NotTo(HaveOccurred())

			call := fake.lastCall()
			Expect(call.Args).To(HaveKeyWithValue("period_type_ids", []int64{data.PeriodAnnual, data.PeriodQuarterly}))
			Expect(call.Args).To(HaveKeyWithValue("start_year", repository.DefaultStartYear))
		})

		It("rounds values to two decimals", func() {
			fake.rows = []*data.Fundamental{
				{CompanyID: 1, PeriodEndDate: q1, DataItemID: 28, DataItemValue: 94836.0049},
			}

			rows, err := repo.HistoricalFundamentals(ctx, repository.FundamentalRequest{
				CompanyIDs:  []int64{1},
				DataItemIDs: []int64{28},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(rows[0].DataItemValue).To(Equal(94836.0))
		})
	})

	Context("fundamental table", func() {
		It("keeps the first reported value per calendar period and pivots by name", func() {
			filed := time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC)
			restated := time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC)

			fake.rows = []*data.Fundamental{
				{CompanyID: 1, CalendarYear: 2024, CalendarQuarter: 1, DataItemID: 28, DataItemName: "Total Revenue", DataItemValue: 101, InstanceDate: restated},
				{CompanyID: 1, CalendarYear: 2024, CalendarQuarter: 1, DataItemID: 28, DataItemName: "Total Revenue", DataItemValue: 100, InstanceDate: filed},
				{CompanyID: 1, CalendarYear: 2024, CalendarQuarter: 1, DataItemID: 15, DataItemName: "Net Income", DataItemValue: 20, InstanceDate: filed},
				{CompanyID: 1, CalendarYear: 2023, CalendarQuarter: 4, DataItemID: 28, DataItemName: "Total Revenue", DataItemValue: 90, InstanceDate: filed},
			}

			table, err := repo.FundamentalTable(ctx, repository.FundamentalRequest{
				CompanyIDs:  []int64{1},
				DataItemIDs: []int64{15, 28},
			}, data.PeriodQuarterly)
			Expect(err).NotTo(HaveOccurred())

			Expect(fake.lastCall().Args).To(HaveKeyWithValue("period_type_ids", []int64{data.PeriodQuarterly}))
			Expect(table.Columns).To(Equal([]string{"Net Income", "Total Revenue"}))
			Expect(table.Rows).To(HaveLen(2))
			Expect(table.Rows[0].Key).To(Equal(data.CalendarKey{CompanyID: 1, CalendarYear: 2023, CalendarQuarter: 4}))
			Expect(table.Rows[1].Values).To(Equal(map[string]float64{"Net Income": 20, "Total Revenue": 100}))
		})
	})
})
