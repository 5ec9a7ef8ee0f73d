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
)

var _ = Describe("Prices", func() {
	var (
		ctx   context.Context
		fake  *fakeDatabase
		repo  *repository.Repository
		today time.Time
	)

	BeforeEach(func() {
		ctx = context.Background()
		fake = &fakeDatabase{}
		today = time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC)
		repo = repository.New(fake, repository.WithClock(func() time.Time {
			return today.Add(9 * time.Hour)
		}))
	})

	It("queries the trailing window ending today", func() {
		_, err := repo.PriceHistory(ctx, 24937, 2)
		Expect(err).NotTo(HaveOccurred())

		call := fake.lastCall()
		Expect(call.Args).To(HaveKeyWithValue("company_id", int64(24937)))
		Expect(call.Args).To(HaveKeyWithValue("start_date", today.AddDate(0, 0, -730)))
		Expect(call.Args).To(HaveKeyWithValue("end_date", today))
	})

	DescribeTable("rejects non-positive windows",
		func(years int) {
			_, err := repo.PriceHistory(ctx, 24937, years)
			Expect(err).To(MatchError(repository.ErrInvalidInput))
			Expect(fake.calls).To(BeEmpty())
		},
		Entry("zero", 0),
		Entry("negative", -1),
	)

	It("rounds, sorts and keeps the adjusted close", func() {
		fake.rows = []*data.PriceRow{
			{
				PriceDate:    time.Date(2024, 7, 12, 0, 0, 0, 0, time.UTC),
				PriceClose:   230.545,
				PriceOpen:    floatPtr(228.914),
				Volume:       floatPtr(53046528),
				DivAdjClose:  230.545,
				DivAdjFactor: 1,
			},
			{
				PriceDate:    time.Date(2024, 7, 11, 0, 0, 0, 0, time.UTC),
				PriceClose:   227.57,
				DivAdjClose:  113.785,
				DivAdjFactor: 0.499999,
			},
		}

		bars, err := repo.PriceHistory(ctx, 24937, 1)
		Expect(err).NotTo(HaveOccurred())
		Expect(bars).To(HaveLen(2))

		Expect(bars[0].PriceDate).To(Equal(time.Date(2024, 7, 11, 0, 0, 0, 0, time.UTC)))
		Expect(bars[0].DivAdjClose).To(Equal(113.79))
		Expect(bars[0].DivAdjFactor).To(Equal(0.5))
		Expect(bars[0].PriceOpen).To(BeNil())

		Expect(bars[1].PriceClose).To(Equal(230.55))
		Expect(*bars[1].PriceOpen).To(Equal(228.91))
		Expect(*bars[1].Volume).To(Equal(53046528.0))
		Expect(bars[1].DivAdjClose).To(Equal(bars[1].PriceClose))
	})

	It("projects the close series", func() {
		fake.rows = []*data.PriceRow{
			{PriceDate: time.Date(2024, 7, 12, 0, 0, 0, 0, time.UTC), PriceClose: 230.541, DivAdjFactor: 1},
		}

		closes, err := repo.PriceCloseHistory(ctx, 24937, 1)
		Expect(err).NotTo(HaveOccurred())
		Expect(closes).To(HaveLen(1))
		Expect(closes[0].PriceClose).To(Equal(230.54))
		Expect(closes[0].PriceDate).To(Equal(time.Date(2024, 7, 12, 0, 0, 0, 0, time.UTC)))
	})
})
