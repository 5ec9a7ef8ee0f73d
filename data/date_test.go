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
package data_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/penny-vault/ciqdata/data"
)

var _ = Describe("Dates", func() {
	expected := time.Date(2024, 6, 28, 0, 0, 0, 0, time.UTC)

	DescribeTable("parses accepted layouts to midnight UTC",
		func(input string) {
			date, err := data.ParseDate(input)
			Expect(err).NotTo(HaveOccurred())
			Expect(date).To(Equal(expected))
		},
		Entry("iso date", "2024-06-28"),
		Entry("surrounding whitespace", " 2024-06-28 "),
		Entry("rfc3339", "2024-06-28T15:04:05Z"),
		Entry("timestamp", "2024-06-28 23:59:59"),
		Entry("slashes", "2024/06/28"),
		Entry("compact", "20240628"),
	)

	DescribeTable("rejects invalid dates",
		func(input string) {
			_, err := data.ParseDate(input)
			Expect(err).To(MatchError(data.ErrInvalidDate))
		},
		Entry("empty", ""),
		Entry("text", "yesterday"),
		Entry("out of range", "2024-02-30"),
		Entry("us order", "06/28/2024"),
	)

	It("truncates to the calendar day of the time's location", func() {
		est := time.FixedZone("EST", -5*60*60)
		t := time.Date(2024, 6, 28, 22, 30, 0, 0, est)
		Expect(data.Date(t)).To(Equal(expected))
	})

	It("formats dates for the command line", func() {
		Expect(data.FormatDate(expected)).To(Equal("2024-06-28"))
	})
})
