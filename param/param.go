// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package param implements reading and writing
// of the PhyDate parameters used to date samples.
package param

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/js-arias/phydate/decyear"
	"github.com/js-arias/phydate/sample"
)

// Param is a keyword to identify
// a parameter in a parameter file.
type Param string

// Valid parameters
const (
	// Root is the date of the root of the tree
	// as a decimal year.
	Root Param = "root"

	// MinYear is the oldest plausible year
	// of a sample name.
	MinYear Param = "min-year"

	// MaxYear is the youngest plausible year
	// of a sample name.
	MaxYear Param = "max-year"
)

// P represents a collection of dating parameters.
type P struct {
	name string // file name

	root    float64
	hasRoot bool

	w sample.Window
}

// New creates a new parameter collection.
// The root date is undefined.
func New(name string) *P {
	return &P{
		name: name,
		w:    sample.DefaultWindow,
	}
}

var header = []string{
	"parameter",
	"value",
}

// Read reads a parameter file from a TSV file.
//
// The TSV must contains the following fields:
//
//   - parameter, the name of the parameter
//   - value, the value of the parameter
//
// Here is an example file:
//
//	# phydate parameters
//	parameter	value
//	root	2019.95
//	min-year	2019
//	max-year	2025
func Read(name string) (*P, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	p, err := read(f)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	p.name = name
	return p, nil
}

func read(r io.Reader) (*P, error) {
	tsv := csv.NewReader(r)
	tsv.Comma = '\t'
	tsv.Comment = '#'

	head, err := tsv.Read()
	if err != nil {
		return nil, fmt.Errorf("header: %v", err)
	}
	fields := make(map[string]int, len(head))
	for i, h := range head {
		h = strings.ToLower(h)
		fields[h] = i
	}
	for _, h := range header {
		if _, ok := fields[h]; !ok {
			return nil, fmt.Errorf("expecting field %q", h)
		}
	}

	p := New("")
	for {
		row, err := tsv.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tsv.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		f := "parameter"
		pm := Param(strings.ToLower(strings.TrimSpace(row[fields[f]])))

		f = "value"
		v := strings.TrimSpace(row[fields[f]])
		switch pm {
		case Root:
			if err := p.SetRoot(v); err != nil {
				return nil, fmt.Errorf("on row %d, field %q: %v", ln, f, err)
			}
		case MinYear:
			y, err := strconv.Atoi(v)
			if err != nil {
				return nil, fmt.Errorf("on row %d, field %q: %v", ln, f, err)
			}
			p.w.Min = y
		case MaxYear:
			y, err := strconv.Atoi(v)
			if err != nil {
				return nil, fmt.Errorf("on row %d, field %q: %v", ln, f, err)
			}
			p.w.Max = y
		}
	}
	if p.w.Min > p.w.Max {
		return nil, fmt.Errorf("invalid year window [%d, %d]", p.w.Min, p.w.Max)
	}
	return p, nil
}

// Name returns the file name
// of the parameter collection.
func (p *P) Name() string {
	return p.name
}

// Root returns the date of the root of the tree
// as a decimal year.
// It returns false if the root date is undefined.
func (p *P) Root() (float64, bool) {
	return p.root, p.hasRoot
}

// Window returns the range of plausible years
// for the years read from sample names.
func (p *P) Window() sample.Window {
	return p.w
}

// SetName sets the name of a parameter collection.
func (p *P) SetName(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	p.name = name
}

// SetRoot sets the date of the root
// from a decimal year,
// or from a date in the form YYYY-MM-DD.
// If the value is empty,
// the root date will be undefined.
func (p *P) SetRoot(v string) error {
	v = strings.TrimSpace(v)
	if v == "" {
		p.root = 0
		p.hasRoot = false
		return nil
	}
	r, err := strconv.ParseFloat(v, 64)
	if err != nil {
		d, dErr := time.Parse(time.DateOnly, v)
		if dErr != nil {
			return fmt.Errorf("invalid root date %q: %v", v, err)
		}
		r = decyear.FromDate(d)
	}
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return fmt.Errorf("invalid root date %q", v)
	}
	p.root = r
	p.hasRoot = true
	return nil
}

// SetWindow sets the range of plausible years.
func (p *P) SetWindow(w sample.Window) error {
	if w.Min > w.Max {
		return fmt.Errorf("invalid year window [%d, %d]", w.Min, w.Max)
	}
	p.w = w
	return nil
}

// Write writes a parameter collection into a file.
func (p *P) Write() (err error) {
	f, err := os.Create(p.name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if err := p.write(f); err != nil {
		return fmt.Errorf("on file %q: %v", p.name, err)
	}
	return nil
}

func (p *P) write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# phydate parameters\n")
	fmt.Fprintf(bw, "# data save on: %s\n", time.Now().Format(time.RFC3339))
	tsv := csv.NewWriter(bw)
	tsv.Comma = '\t'
	tsv.UseCRLF = true

	if err := tsv.Write(header); err != nil {
		return fmt.Errorf("while writing header: %v", err)
	}

	var rows [][]string
	if p.hasRoot {
		rows = append(rows, []string{
			string(Root),
			strconv.FormatFloat(p.root, 'f', -1, 64),
		})
	}
	rows = append(rows, []string{
		string(MinYear),
		strconv.Itoa(p.w.Min),
	})
	rows = append(rows, []string{
		string(MaxYear),
		strconv.Itoa(p.w.Max),
	})
	for _, row := range rows {
		if err := tsv.Write(row); err != nil {
			return err
		}
	}

	tsv.Flush()
	if err := tsv.Error(); err != nil {
		return fmt.Errorf("while writing data: %v", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("while writing data: %v", err)
	}
	return nil
}
