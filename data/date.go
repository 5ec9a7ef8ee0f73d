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

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidDate = errors.New("invalid date")

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006/01/02",
	"20060102",
}

// ParseDate parses a calendar date in one of the accepted layouts and returns
// midnight UTC of that day
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Date(t), nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// Date truncates t to midnight UTC of its calendar day
func Date(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// FormatDate renders t the way dates are passed on the command line
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}
