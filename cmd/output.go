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
package cmd

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/penny-vault/ciqdata/export"
	"github.com/penny-vault/ciqdata/shape"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func outputFormat() export.Format {
	format, err := export.ParseFormat(viper.GetString("output.format"))
	if err != nil {
		log.Fatal().Err(err).Msg("invalid output format")
	}

	if format == export.FormatParquet {
		log.Fatal().Msg("parquet output is only available through the export command")
	}

	return format
}

// printRows writes a slice of csv-tagged structs to stdout in the selected format
func printRows(rows interface{}) {
	var err error

	switch outputFormat() {
	case export.FormatCSV:
		err = export.WriteCSV(os.Stdout, rows)
	case export.FormatJSON:
		err = export.WriteJSON(os.Stdout, rows)
	default:
		var header []string
		var records [][]string
		header, records, err = structRecords(rows)
		if err == nil {
			renderTable(os.Stdout, header, records)
		}
	}

	if err != nil {
		log.Fatal().Err(err).Msg("could not write output")
	}
}

// printPivot writes a wide table to stdout in the selected format
func printPivot[K comparable](pivot *shape.Table[K], keyHeader []string, keyValues func(K) []string) {
	header := append(append([]string{}, keyHeader...), pivot.Columns...)
	records := make([][]string, 0, len(pivot.Rows))
	for _, row := range pivot.Rows {
		record := keyValues(row.Key)
		for _, column := range pivot.Columns {
			value := ""
			if v, ok := row.Value(column); ok {
				value = strconv.FormatFloat(v, 'f', -1, 64)
			}
			record = append(record, value)
		}
		records = append(records, record)
	}

	var err error
	switch outputFormat() {
	case export.FormatCSV:
		err = export.WriteRecords(os.Stdout, header, records)
	case export.FormatJSON:
		err = export.WriteJSON(os.Stdout, pivot)
	default:
		renderTable(os.Stdout, header, records)
	}

	if err != nil {
		log.Fatal().Err(err).Msg("could not write output")
	}
}

// structRecords flattens csv-tagged structs into a header and string records
func structRecords(rows interface{}) ([]string, [][]string, error) {
	csvText, err := gocsv.MarshalString(rows)
	if err != nil {
		return nil, nil, err
	}

	all, err := csv.NewReader(strings.NewReader(csvText)).ReadAll()
	if err != nil || len(all) == 0 {
		return nil, nil, err
	}

	return all[0], all[1:], nil
}

func renderTable(w io.Writer, header []string, records [][]string) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)

	hdr := make(table.Row, len(header))
	for idx, column := range header {
		hdr[idx] = column
	}
	tw.AppendHeader(hdr)

	for _, record := range records {
		row := make(table.Row, len(record))
		for idx, value := range record {
			row[idx] = strings.TrimSuffix(value, "T00:00:00Z")
		}
		tw.AppendRow(row)
	}

	tw.Render()
}
