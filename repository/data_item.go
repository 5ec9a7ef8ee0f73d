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
package repository

import (
	"context"

	"github.com/penny-vault/ciqdata/data"
)

// DataItems returns the catalog entries for the requested ids
func (repo *Repository) DataItems(ctx context.Context, ids []int64) ([]*data.DataItem, error) {
	if err := requireIDs("data item ids", ids); err != nil {
		return nil, err
	}

	return repo.dataItems(ctx, ids)
}

// AllDataItems returns the complete data item catalog
func (repo *Repository) AllDataItems(ctx context.Context) ([]*data.DataItem, error) {
	return repo.dataItems(ctx, nil)
}

func (repo *Repository) dataItems(ctx context.Context, ids []int64) ([]*data.DataItem, error) {
	q, err := repo.builder.DataItems(ids)
	if err != nil {
		return nil, err
	}

	return selectRows[data.DataItem](ctx, repo, q)
}
