// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package sample

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

var header = []string{
	"name",
	"decyear",
	"date",
	"year",
	"month",
}

// ReadTSV reads a set of dated samples
// from a TSV file.
//
// The TSV file must contain the following fields:
//
//   - name, the name of the sample
//   - decyear, the date of the sample as a decimal year
//   - date, the date of the sample, in the form YYYY-MM-DD
//
// Other fields will be ignored.
//
// Here is an example file:
//
//	# dated samples
//	name	decyear	date	year	month
//	hCoV-19/China/WH-09/2020	2019.986301	2019-12-27	2019	2019-12
//	hCoV-19/USA/CA-1/2020	2020.112022	2020-02-10	2020	2020-02
func ReadTSV(r io.Reader) ([]Sample, error) {
	tsv := csv.NewReader(r)
	tsv.Comma = '\t'
	tsv.Comment = '#'

	head, err := tsv.Read()
	if err != nil {
		return nil, fmt.Errorf("while reading header: %v", err)
	}
	fields := make(map[string]int, len(head))
	for i, h := range head {
		h = strings.ToLower(h)
		fields[h] = i
	}
	for _, h := range []string{"name", "decyear", "date"} {
		if _, ok := fields[h]; !ok {
			return nil, fmt.Errorf("expecting field %q", h)
		}
	}

	var samples []Sample
	for {
		row, err := tsv.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tsv.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		f := "name"
		name := strings.TrimSpace(row[fields[f]])
		if name == "" {
			continue
		}

		f = "decyear"
		dy, err := strconv.ParseFloat(row[fields[f]], 64)
		if err != nil {
			return nil, fmt.Errorf("on row %d: field %q: %v", ln, f, err)
		}

		f = "date"
		d, err := time.Parse(time.DateOnly, row[fields[f]])
		if err != nil {
			return nil, fmt.Errorf("on row %d: field %q: %v", ln, f, err)
		}

		samples = append(samples, Sample{
			Name:    name,
			DecYear: dy,
			Date:    d,
		})
	}
	return samples, nil
}

// WriteTSV writes a set of samples
// as a TSV file.
func WriteTSV(w io.Writer, samples []Sample) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# dated samples\n")
	fmt.Fprintf(bw, "# data save on: %s\n", time.Now().Format(time.RFC3339))

	tsv := csv.NewWriter(bw)
	tsv.Comma = '\t'
	tsv.UseCRLF = true

	if err := tsv.Write(header); err != nil {
		return fmt.Errorf("unable to write header: %v", err)
	}
	for _, s := range samples {
		row := []string{
			s.Name,
			strconv.FormatFloat(s.DecYear, 'f', 6, 64),
			s.Date.Format(time.DateOnly),
			strconv.Itoa(s.Year()),
			s.Month().String(),
		}
		if err := tsv.Write(row); err != nil {
			return fmt.Errorf("when writing data: %v", err)
		}
	}

	tsv.Flush()
	if err := tsv.Error(); err != nil {
		return fmt.Errorf("when writing data: %v", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("when writing data: %v", err)
	}
	return nil
}
