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
package shape

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrDuplicateKey = errors.New("duplicate pivot entry")
)

// DuplicateKeyError reports a (row, column) pair that occurs more than once
// in the long-form input of a pivot
type DuplicateKeyError struct {
	Key    any
	Column string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("%s: row %+v column %q", ErrDuplicateKey, e.Key, e.Column)
}

func (e *DuplicateKeyError) Unwrap() error {
	return ErrDuplicateKey
}

// Cell is one value of long-form data
type Cell[K comparable] struct {
	Key    K
	Column string
	Value  float64
}

// Row is one row of wide-form data; columns absent from Values had no
// observation for the key
type Row[K comparable] struct {
	Key    K
	Values map[string]float64
}

// Value returns the value of column and whether it was observed
func (row *Row[K]) Value(column string) (float64, bool) {
	v, ok := row.Values[column]
	return v, ok
}

// Table is wide-form data with one row per key
type Table[K comparable] struct {
	Columns []string
	Rows    []*Row[K]
}

// Pivot converts long-form cells into a table with one row per key and one
// column per distinct column name. Rows are sorted with compare. Columns named
// in order come first, in that order; the rest follow in ascending order.
// A repeated (key, column) pair is reported as a *DuplicateKeyError.
func Pivot[K comparable](cells []Cell[K], compare func(a, b K) int, order []string) (*Table[K], error) {
	rows := make(map[K]*Row[K])
	seen := make(map[string]bool)
	table := &Table[K]{}

	for _, cell := range cells {
		row, ok := rows[cell.Key]
		if !ok {
			row = &Row[K]{Key: cell.Key, Values: make(map[string]float64)}
			rows[cell.Key] = row
			table.Rows = append(table.Rows, row)
		}

		if _, dup := row.Values[cell.Column]; dup {
			return nil, &DuplicateKeyError{Key: cell.Key, Column: cell.Column}
		}

		row.Values[cell.Column] = cell.Value
		seen[cell.Column] = true
	}

	for _, column := range order {
		if seen[column] {
			table.Columns = append(table.Columns, column)
			delete(seen, column)
		}
	}

	rest := make([]string, 0, len(seen))
	for column := range seen {
		rest = append(rest, column)
	}
	slices.Sort(rest)
	table.Columns = append(table.Columns, rest...)

	slices.SortStableFunc(table.Rows, func(a, b *Row[K]) int {
		return compare(a.Key, b.Key)
	})

	return table, nil
}

// Rename changes column names according to names; unknown columns keep their name
func (table *Table[K]) Rename(names map[string]string) {
	for idx, column := range table.Columns {
		if name, ok := names[column]; ok {
			table.Columns[idx] = name
		}
	}

	for _, row := range table.Rows {
		renamed := make(map[string]float64, len(row.Values))
		for column, v := range row.Values {
			if name, ok := names[column]; ok {
				column = name
			}
			renamed[column] = v
		}
		row.Values = renamed
	}
}

// Round rounds every value in the table to places decimal places
func (table *Table[K]) Round(places int32) {
	for _, row := range table.Rows {
		for column, v := range row.Values {
			row.Values[column] = Round(v, places)
		}
	}
}
