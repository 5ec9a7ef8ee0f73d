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

// Dedup keeps one row per key. When two rows share a key the candidate
// replaces the kept row if prefer(candidate, kept) is true. Keys appear in
// the output in the order they were first seen.
func Dedup[T any, K comparable](rows []T, key func(T) K, prefer func(candidate, kept T) bool) []T {
	index := make(map[K]int, len(rows))
	out := make([]T, 0, len(rows))

	for _, row := range rows {
		k := key(row)
		if idx, ok := index[k]; ok {
			if prefer(row, out[idx]) {
				out[idx] = row
			}
			continue
		}

		index[k] = len(out)
		out = append(out, row)
	}

	return out
}

// KeepLatest keeps the greatest row per key as ordered by cmp
func KeepLatest[T any, K comparable](rows []T, key func(T) K, cmp func(a, b T) int) []T {
	return Dedup(rows, key, func(candidate, kept T) bool {
		return cmp(candidate, kept) > 0
	})
}

// KeepEarliest keeps the least row per key as ordered by cmp
func KeepEarliest[T any, K comparable](rows []T, key func(T) K, cmp func(a, b T) int) []T {
	return Dedup(rows, key, func(candidate, kept T) bool {
		return cmp(candidate, kept) < 0
	})
}
