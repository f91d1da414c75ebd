// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package project implements reading and writing
// of PhyDate project files.
//
// A PhyDate project keeps together the timetree
// of a set of samples,
// the parameters used to date them,
// and the tables derived from the dated samples
// (the sample table and the tables of samples by year and by month).
// It is a tab-delimited file (TSV)
// with the path of each one of these files.
package project

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"
)

// Dataset is a keyword to identify
// the type of a dataset file in a project.
type Dataset string

// Valid dataset types.
const (
	// Tree is the timetree,
	// in Newick format,
	// with branch lengths in years.
	Tree Dataset = "tree"

	// Params is the file of dating parameters.
	Params Dataset = "params"

	// Samples is the table of dated samples,
	// as a TSV or a Parquet file.
	Samples Dataset = "samples"

	// Years is the table of samples by year.
	Years Dataset = "years"

	// Months is the table of samples by month.
	Months Dataset = "months"
)

var datasets = []Dataset{
	Months,
	Params,
	Samples,
	Tree,
	Years,
}

// A Project is the set of files
// used to date and count the samples of a timetree.
type Project struct {
	name  string
	paths map[Dataset]string
}

// New creates a new project without files.
func New() *Project {
	return &Project{
		paths: make(map[Dataset]string),
	}
}

var header = []string{
	"dataset",
	"path",
}

// Read reads a PhyDate project file.
//
// The file is a TSV with the fields:
//
//   - dataset, one of "tree", "params", "samples",
//     "years", or "months"
//   - path, the path of the dataset file
//
// Here is an example file:
//
//	# phydate project files
//	dataset	path
//	tree	timetree.nwk
//	params	params.tab
//	samples	samples.tab
//	years	years.csv
//	months	months.csv
//
// An unknown dataset is an error.
func Read(name string) (*Project, error) {
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

func read(r io.Reader) (*Project, error) {
	tsv := csv.NewReader(r)
	tsv.Comma = '\t'
	tsv.Comment = '#'

	head, err := tsv.Read()
	if err != nil {
		return nil, fmt.Errorf("header: %v", err)
	}
	fields := make(map[string]int, len(head))
	for i, h := range head {
		h = strings.ToLower(strings.TrimSpace(h))
		fields[h] = i
	}
	for _, h := range header {
		if _, ok := fields[h]; !ok {
			return nil, fmt.Errorf("expecting field %q", h)
		}
	}

	p := New()
	for {
		row, err := tsv.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tsv.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		f := "dataset"
		set := Dataset(strings.ToLower(strings.TrimSpace(row[fields[f]])))
		if !slices.Contains(datasets, set) {
			return nil, fmt.Errorf("on row %d: field %q: unknown dataset %q", ln, f, set)
		}

		f = "path"
		path := strings.TrimSpace(row[fields[f]])
		if path == "" {
			continue
		}
		p.paths[set] = path
	}
	return p, nil
}

// Add sets the path of a dataset,
// and returns the previous path.
// An empty path removes the dataset
// from the project.
func (p *Project) Add(set Dataset, path string) string {
	prev := p.paths[set]
	if path == "" {
		delete(p.paths, set)
		return prev
	}

	p.paths[set] = path
	return prev
}

// Path returns the path of a dataset.
// It returns an empty string
// if the dataset is not defined.
func (p *Project) Path(set Dataset) string {
	return p.paths[set]
}

// Sets returns the datasets defined in the project,
// sorted by name.
func (p *Project) Sets() []Dataset {
	sets := make([]Dataset, 0, len(p.paths))
	for s := range p.paths {
		sets = append(sets, s)
	}
	slices.Sort(sets)
	return sets
}

// Name returns the name of the project file.
func (p *Project) Name() string {
	return p.name
}

// SetName sets the name of the project file.
func (p *Project) SetName(name string) {
	p.name = name
}

// Write writes the project
// into the project file.
func (p *Project) Write() (err error) {
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

func (p *Project) write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# phydate project files\n")
	fmt.Fprintf(bw, "# data save on: %s\n", time.Now().Format(time.RFC3339))
	tsv := csv.NewWriter(bw)
	tsv.Comma = '\t'
	tsv.UseCRLF = true

	if err := tsv.Write(header); err != nil {
		return fmt.Errorf("while writing header: %v", err)
	}
	for _, s := range p.Sets() {
		if err := tsv.Write([]string{string(s), p.paths[s]}); err != nil {
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
