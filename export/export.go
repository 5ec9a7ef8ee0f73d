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

// Package export writes query results to files for downstream analytics.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/goccy/go-json"
)

type Format string

const (
	FormatTable   Format = "table"
	FormatCSV     Format = "csv"
	FormatJSON    Format = "json"
	FormatParquet Format = "parquet"
)

// ParseFormat validates a format name given on the command line
func ParseFormat(name string) (Format, error) {
	switch format := Format(strings.ToLower(name)); format {
	case FormatTable, FormatCSV, FormatJSON, FormatParquet:
		return format, nil
	default:
		return "", fmt.Errorf("unknown output format %q", name)
	}
}

// WriteCSV writes rows, a slice of csv-tagged structs, with a header line
func WriteCSV(w io.Writer, rows interface{}) error {
	return gocsv.Marshal(rows, w)
}

// WriteJSON writes rows as an indented JSON array
func WriteJSON(w io.Writer, rows interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(rows)
}

// WriteRecords writes a header and string records as CSV. It is used for
// tables whose columns are only known at runtime.
func WriteRecords(w io.Writer, header []string, records [][]string) error {
	csvWriter := gocsv.DefaultCSVWriter(w)
	if err := csvWriter.Write(header); err != nil {
		return err
	}

	for _, record := range records {
		if err := csvWriter.Write(record); err != nil {
			return err
		}
	}

	csvWriter.Flush()
	return csvWriter.Error()
}
