// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/js-arias/phydate/bucket"
	"github.com/js-arias/phydate/newick"
	"github.com/js-arias/phydate/param"
	"github.com/js-arias/phydate/sample"
)

// DefaultParams is the name of the parameter file
// used when a project does not define one.
const DefaultParams = "params.tab"

// Buckets reads a bucket table
// as defined in a project.
// The set must be Years or Months.
func (p *Project) Buckets(set Dataset) ([]bucket.Bucket, error) {
	if set != Years && set != Months {
		return nil, fmt.Errorf("dataset %q is not a bucket table", set)
	}
	name := p.Path(set)
	if name == "" {
		return nil, fmt.Errorf("%s not defined in project %q", set, p.name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	bs, monthly, err := bucket.ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	if monthly != (set == Months) {
		return nil, fmt.Errorf("on file %q: expecting %s table", name, set)
	}
	return bs, nil
}

// Params reads the dating parameters
// as defined in a project.
// If no parameter file is defined,
// it returns a new parameter collection
// using the default file name.
func (p *Project) Params() (*param.P, error) {
	name := p.Path(Params)
	if name == "" {
		return param.New(DefaultParams), nil
	}
	return param.Read(name)
}

// Samples reads the dated samples
// as defined in a project.
// Files with the extension ".parquet"
// are read as Parquet files,
// any other file is read as a TSV file.
func (p *Project) Samples() ([]sample.Sample, error) {
	name := p.Path(Samples)
	if name == "" {
		return nil, fmt.Errorf("samples not defined in project %q", p.name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var ss []sample.Sample
	if strings.EqualFold(filepath.Ext(name), ".parquet") {
		ss, err = sample.ReadParquet(f)
	} else {
		ss, err = sample.ReadTSV(f)
	}
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return ss, nil
}

// Tree reads the timetree
// as defined in a project.
func (p *Project) Tree() (*newick.Tree, error) {
	name := p.Path(Tree)
	if name == "" {
		return nil, fmt.Errorf("tree not defined in project %q", p.name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := newick.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %w", name, err)
	}
	return t, nil
}
