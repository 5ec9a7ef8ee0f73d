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

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/penny-vault/ciqdata/data"
	"github.com/penny-vault/ciqdata/repository"
)

var _ = Describe("Data items", func() {
	var (
		ctx  context.Context
		fake *fakeDatabase
		repo *repository.Repository
	)

	BeforeEach(func() {
		ctx = context.Background()
		fake = &fakeDatabase{}
		repo = repository.New(fake)
	})

	It("lists the complete catalog", func() {
		fake.rows = []*data.DataItem{{DataItemID: 28, DataItemName: "Total Revenue"}}

		items, err := repo.AllDataItems(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(items).To(HaveLen(1))
		Expect(fake.lastCall().SQL).NotTo(ContainSubstring("WHERE"))
	})

	It("filters by id", func() {
		_, err := repo.DataItems(ctx, []int64{28, 15})
		Expect(err).NotTo(HaveOccurred())
		Expect(fake.lastCall().Args).To(HaveKeyWithValue("data_item_ids", []int64{28, 15}))
	})

	It("rejects an empty id list", func() {
		_, err := repo.DataItems(ctx, []int64{})
		Expect(err).To(MatchError(repository.ErrInvalidInput))
		Expect(fake.calls).To(BeEmpty())
	})
})
