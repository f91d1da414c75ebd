// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package sample

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/parquet-go/parquet-go"
)

// A parquetRow is the columnar layout
// of a sample.
type parquetRow struct {
	Name    string  `parquet:"name,snappy"`
	DecYear float64 `parquet:"decyear,snappy"`
	Date    string  `parquet:"date,snappy"`
	Year    int32   `parquet:"year,snappy"`
	Month   int32   `parquet:"month,snappy"`
}

// WriteParquet writes a set of samples
// as a Parquet file.
func WriteParquet(w io.Writer, samples []Sample) error {
	rows := make([]parquetRow, 0, len(samples))
	for _, s := range samples {
		rows = append(rows, parquetRow{
			Name:    s.Name,
			DecYear: s.DecYear,
			Date:    s.Date.Format(time.DateOnly),
			Year:    int32(s.Year()),
			Month:   int32(s.Date.Month()),
		})
	}

	pw := parquet.NewGenericWriter[parquetRow](w)
	if _, err := pw.Write(rows); err != nil {
		pw.Close()
		return fmt.Errorf("when writing data: %v", err)
	}
	if err := pw.Close(); err != nil {
		return fmt.Errorf("when writing data: %v", err)
	}
	return nil
}

// ReadParquet reads a set of samples
// from a Parquet file.
func ReadParquet(r io.ReaderAt) ([]Sample, error) {
	pr := parquet.NewGenericReader[parquetRow](r)
	defer pr.Close()

	rows := make([]parquetRow, pr.NumRows())
	n, err := pr.Read(rows)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("when reading data: %v", err)
	}

	samples := make([]Sample, 0, n)
	for _, row := range rows[:n] {
		d, err := time.Parse(time.DateOnly, row.Date)
		if err != nil {
			return nil, fmt.Errorf("sample %q: %v", row.Name, err)
		}
		samples = append(samples, Sample{
			Name:    row.Name,
			DecYear: row.DecYear,
			Date:    d,
		})
	}
	return samples, nil
}
