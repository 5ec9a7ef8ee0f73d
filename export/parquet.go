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
package export

import (
	"time"

	"github.com/penny-vault/ciqdata/data"
	"github.com/rs/zerolog/log"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"
)

type priceRecord struct {
	CompanyID    int64    `parquet:"name=companyid, type=INT64"`
	PriceDate    int32    `parquet:"name=pricedate, type=INT32, convertedtype=DATE"`
	PriceClose   float64  `parquet:"name=priceclose, type=DOUBLE"`
	PriceOpen    *float64 `parquet:"name=priceopen, type=DOUBLE, repetitiontype=OPTIONAL"`
	PriceHigh    *float64 `parquet:"name=pricehigh, type=DOUBLE, repetitiontype=OPTIONAL"`
	PriceLow     *float64 `parquet:"name=pricelow, type=DOUBLE, repetitiontype=OPTIONAL"`
	Volume       *float64 `parquet:"name=volume, type=DOUBLE, repetitiontype=OPTIONAL"`
	VWAP         *float64 `parquet:"name=vwap, type=DOUBLE, repetitiontype=OPTIONAL"`
	DivAdjClose  float64  `parquet:"name=divadjclose, type=DOUBLE"`
	DivAdjFactor float64  `parquet:"name=divadjfactor, type=DOUBLE"`
}

// daysSinceEpoch converts a calendar date to the parquet DATE representation
func daysSinceEpoch(t time.Time) int32 {
	return int32(data.Date(t).Unix() / 86400)
}

// WritePrices saves a company's price history as a ZSTD compressed parquet file
func WritePrices(fn string, companyID int64, bars []*data.PriceBar) error {
	fh, err := local.NewLocalFileWriter(fn)
	if err != nil {
		log.Error().Err(err).Str("FileName", fn).Msg("cannot create local file")
		return err
	}
	defer fh.Close()

	pw, err := writer.NewParquetWriter(fh, new(priceRecord), 4)
	if err != nil {
		log.Error().Err(err).Msg("parquet writer creation failed")
		return err
	}

	pw.RowGroupSize = 128 * 1024 * 1024 // 128M
	pw.PageSize = 8 * 1024              // 8k
	pw.CompressionType = parquet.CompressionCodec_ZSTD

	for _, bar := range bars {
		record := &priceRecord{
			CompanyID:    companyID,
			PriceDate:    daysSinceEpoch(bar.PriceDate),
			PriceClose:   bar.PriceClose,
			PriceOpen:    bar.PriceOpen,
			PriceHigh:    bar.PriceHigh,
			PriceLow:     bar.PriceLow,
			Volume:       bar.Volume,
			VWAP:         bar.VWAP,
			DivAdjClose:  bar.DivAdjClose,
			DivAdjFactor: bar.DivAdjFactor,
		}

		if err = pw.Write(record); err != nil {
			log.Error().Err(err).Time("PriceDate", bar.PriceDate).Msg("parquet write failed for record")
			return err
		}
	}

	if err = pw.WriteStop(); err != nil {
		log.Error().Err(err).Msg("parquet write failed")
		return err
	}

	log.Info().Int("NumRecords", len(bars)).Str("FileName", fn).Msg("parquet write finished")
	return nil
}
