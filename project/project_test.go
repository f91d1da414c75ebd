// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package project_test

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"strings"
	"testing"

	"github.com/js-arias/phydate/bucket"
	"github.com/js-arias/phydate/newick"
	"github.com/js-arias/phydate/project"
	"github.com/js-arias/phydate/sample"
)

type setPath struct {
	set  project.Dataset
	path string
}

func TestProject(t *testing.T) {
	p := project.New()

	sets := []setPath{
		{project.Tree, "timetree.nwk"},
		{project.Params, "params.tab"},
		{project.Samples, "samples.tab"},
		{project.Years, "years.csv"},
		{project.Months, "months.csv"},
	}

	for _, s := range sets {
		p.Add(s.set, s.path)
	}
	testProject(t, p, sets)

	name := filepath.Join(t.TempDir(), "project.tab")
	p.SetName(name)
	if err := p.Write(); err != nil {
		t.Fatalf("error when writing data: %v", err)
	}

	np, err := project.Read(name)
	if err != nil {
		t.Fatalf("error when reading data: %v", err)
	}
	if np.Name() != name {
		t.Errorf("name: got %q, want %q", np.Name(), name)
	}
	testProject(t, np, sets)

	if prev := np.Add(project.Samples, ""); prev != "samples.tab" {
		t.Errorf("remove: got previous path %q, want %q", prev, "samples.tab")
	}
	if path := np.Path(project.Samples); path != "" {
		t.Errorf("remove: got path %q", path)
	}
}

func TestUnknownDataset(t *testing.T) {
	name := filepath.Join(t.TempDir(), "project.tab")
	data := "# phydate project files\ndataset\tpath\ntree\ttimetree.nwk\nlandscape\tlandscape.tab\n"
	if err := os.WriteFile(name, []byte(data), 0644); err != nil {
		t.Fatalf("unable to write project: %v", err)
	}
	if _, err := project.Read(name); err == nil {
		t.Errorf("expecting error for an unknown dataset")
	}
}

func TestDatasets(t *testing.T) {
	dir := t.TempDir()
	treeFile := filepath.Join(dir, "timetree.nwk")
	if err := os.WriteFile(treeFile, []byte("(A:0.1,(B:0.2,C:0.3):0.1);\n"), 0644); err != nil {
		t.Fatalf("unable to write tree: %v", err)
	}
	yearsFile := filepath.Join(dir, "years.csv")
	years := "year,variant_count,cumulative_count\n2020,3,3\n"
	if err := os.WriteFile(yearsFile, []byte(years), 0644); err != nil {
		t.Fatalf("unable to write buckets: %v", err)
	}

	p := project.New()
	p.SetName(filepath.Join(dir, "project.tab"))
	p.Add(project.Tree, treeFile)
	p.Add(project.Years, yearsFile)

	tr, err := p.Tree()
	if err != nil {
		t.Fatalf("unable to read tree: %v", err)
	}
	if terms := tr.Terms(); !reflect.DeepEqual(terms, []string{"A", "B", "C"}) {
		t.Errorf("tree: got terms %v", terms)
	}

	bs, err := p.Buckets(project.Years)
	if err != nil {
		t.Fatalf("unable to read buckets: %v", err)
	}
	want := []bucket.Bucket{{Year: 2020, Count: 3, Cumulative: 3}}
	if !reflect.DeepEqual(bs, want) {
		t.Errorf("buckets: got %v, want %v", bs, want)
	}

	// the years file is not a monthly table
	p.Add(project.Months, yearsFile)
	if _, err := p.Buckets(project.Months); err == nil {
		t.Errorf("months: expecting error")
	}

	prm, err := p.Params()
	if err != nil {
		t.Fatalf("unable to read parameters: %v", err)
	}
	if prm.Name() != project.DefaultParams {
		t.Errorf("params: got name %q, want %q", prm.Name(), project.DefaultParams)
	}
	if _, ok := prm.Root(); ok {
		t.Errorf("params: root should be undefined")
	}
}

func TestSamples(t *testing.T) {
	dir := t.TempDir()
	tr, err := newick.Parse(strings.NewReader("(A:0.1,(B:0.2,C:0.3):0.1);"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	samples := sample.FromLeaves(tr.Leaves(), 2020)

	files := map[string]func(io.Writer, []sample.Sample) error{
		"samples.tab":     sample.WriteTSV,
		"samples.parquet": sample.WriteParquet,
	}
	for file, write := range files {
		name := filepath.Join(dir, file)
		var buf bytes.Buffer
		if err := write(&buf, samples); err != nil {
			t.Fatalf("%s: unable to write samples: %v", file, err)
		}
		if err := os.WriteFile(name, buf.Bytes(), 0644); err != nil {
			t.Fatalf("%s: unable to write samples: %v", file, err)
		}

		p := project.New()
		p.Add(project.Samples, name)
		got, err := p.Samples()
		if err != nil {
			t.Errorf("%s: unable to read samples: %v", file, err)
			continue
		}
		if len(got) != len(samples) {
			t.Errorf("%s: got %d samples, want %d", file, len(got), len(samples))
			continue
		}
		for i, s := range got {
			if s.Name != samples[i].Name || !s.Date.Equal(samples[i].Date) {
				t.Errorf("%s: sample %d: got %s %v, want %s %v", file, i, s.Name, s.Date, samples[i].Name, samples[i].Date)
			}
		}
	}
}

func TestTreeError(t *testing.T) {
	dir := t.TempDir()
	treeFile := filepath.Join(dir, "timetree.nwk")
	if err := os.WriteFile(treeFile, []byte("(A:0.1,(B:0.2,C:x);"), 0644); err != nil {
		t.Fatalf("unable to write tree: %v", err)
	}

	p := project.New()
	p.Add(project.Tree, treeFile)
	_, err := p.Tree()
	var pe *newick.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("got error %v, want a *newick.ParseError", err)
	}
	if pe.Pos != 16 {
		t.Errorf("got position %d, want %d", pe.Pos, 16)
	}
}

func testProject(t testing.TB, p *project.Project, sets []setPath) {
	t.Helper()

	for _, s := range sets {
		if path := p.Path(s.set); path != s.path {
			t.Errorf("set %s: got path %q, want %q", s.set, path, s.path)
		}
	}
	datasets := make([]project.Dataset, 0, len(sets))
	for _, v := range sets {
		datasets = append(datasets, v.set)
	}
	slices.Sort(datasets)

	if ls := p.Sets(); !reflect.DeepEqual(ls, datasets) {
		t.Errorf("sets: got %v, want %v", ls, datasets)
	}
}
