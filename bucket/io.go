// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package bucket

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// Field names of bucket tables.
const (
	yearField       = "year"
	monthField      = "year_month"
	countField      = "variant_count"
	cumulativeField = "cumulative_count"
)

// WriteCSV writes a set of buckets
// as a comma-delimited table.
//
// The first column is the year
// (with the header "year"),
// or if monthly is true,
// the month in the form YYYY-MM
// (with the header "year_month"),
// followed by the columns "variant_count"
// and "cumulative_count".
//
// The output only depends on the buckets,
// so the same buckets always produce the same table.
func WriteCSV(w io.Writer, bs []Bucket, monthly bool) error {
	tab := csv.NewWriter(w)

	first := yearField
	if monthly {
		first = monthField
	}
	if err := tab.Write([]string{first, countField, cumulativeField}); err != nil {
		return fmt.Errorf("unable to write header: %v", err)
	}

	for _, b := range bs {
		if monthly != (b.Month != 0) {
			return fmt.Errorf("bucket %s: invalid bucket for a %s table", b.Label(), first)
		}
		row := []string{
			b.Label(),
			strconv.Itoa(b.Count),
			strconv.Itoa(b.Cumulative),
		}
		if err := tab.Write(row); err != nil {
			return fmt.Errorf("when writing data: %v", err)
		}
	}

	tab.Flush()
	if err := tab.Error(); err != nil {
		return fmt.Errorf("when writing data: %v", err)
	}
	return nil
}

// ReadCSV reads a set of buckets
// from a comma-delimited table.
// It returns true
// if the table is a table of monthly buckets.
//
// Here is an example of a yearly table:
//
//	year,variant_count,cumulative_count
//	2019,12,12
//	2020,1530,1542
//	2021,988,2530
//
// And a monthly table:
//
//	year_month,variant_count,cumulative_count
//	2019-12,12,12
//	2020-01,93,105
//	2020-03,411,516
func ReadCSV(r io.Reader) (bs []Bucket, monthly bool, err error) {
	tab := csv.NewReader(r)
	tab.Comment = '#'

	head, err := tab.Read()
	if err != nil {
		return nil, false, fmt.Errorf("while reading header: %v", err)
	}
	fields := make(map[string]int, len(head))
	for i, h := range head {
		h = strings.ToLower(strings.TrimSpace(h))
		fields[h] = i
	}
	if _, ok := fields[monthField]; ok {
		monthly = true
	} else if _, ok := fields[yearField]; !ok {
		return nil, false, fmt.Errorf("expecting field %q or %q", yearField, monthField)
	}
	for _, h := range []string{countField, cumulativeField} {
		if _, ok := fields[h]; !ok {
			return nil, false, fmt.Errorf("expecting field %q", h)
		}
	}

	for {
		row, err := tab.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tab.FieldPos(0)
		if err != nil {
			return nil, false, fmt.Errorf("on row %d: %v", ln, err)
		}

		var b Bucket
		if monthly {
			f := monthField
			m, err := time.Parse("2006-01", strings.TrimSpace(row[fields[f]]))
			if err != nil {
				return nil, false, fmt.Errorf("on row %d: field %q: %v", ln, f, err)
			}
			b.Year = m.Year()
			b.Month = m.Month()
		} else {
			f := yearField
			y, err := strconv.Atoi(strings.TrimSpace(row[fields[f]]))
			if err != nil {
				return nil, false, fmt.Errorf("on row %d: field %q: %v", ln, f, err)
			}
			b.Year = y
		}

		f := countField
		c, err := strconv.Atoi(strings.TrimSpace(row[fields[f]]))
		if err != nil {
			return nil, false, fmt.Errorf("on row %d: field %q: %v", ln, f, err)
		}
		b.Count = c

		f = cumulativeField
		c, err = strconv.Atoi(strings.TrimSpace(row[fields[f]]))
		if err != nil {
			return nil, false, fmt.Errorf("on row %d: field %q: %v", ln, f, err)
		}
		b.Cumulative = c

		bs = append(bs, b)
	}
	return bs, monthly, nil
}
