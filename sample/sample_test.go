// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package sample_test

import (
	"bytes"
	"math"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/js-arias/phydate/decyear"
	"github.com/js-arias/phydate/newick"
	"github.com/js-arias/phydate/sample"
)

func TestFromLeaves(t *testing.T) {
	tr, err := newick.Parse(strings.NewReader("(A:0.1,(B:0.2,C:0.3):0.1,:0.2);"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := sample.FromLeaves(tr.Leaves(), 2020.0)
	want := []sample.Sample{
		{Name: "A", DecYear: 2020.1, Date: date(2020, time.February, 6)},
		{Name: "B", DecYear: 2020.3, Date: date(2020, time.April, 19)},
		{Name: "C", DecYear: 2020.4, Date: date(2020, time.May, 26)},
	}
	testSamples(t, "leaves", got, want)

	for i, l := range tr.Leaves() {
		if d := decyear.Sample(l.Dist, 2020.0); !got[i].Date.Equal(d) {
			t.Errorf("leaf %q: got date %v, want %v", l.Name, got[i].Date, d)
		}
	}

	if m := got[0].Month(); m.String() != "2020-02" {
		t.Errorf("month: got %q, want %q", m.String(), "2020-02")
	}
	if y := got[2].Year(); y != 2020 {
		t.Errorf("year: got %d, want %d", y, 2020)
	}
}

func TestYearFromName(t *testing.T) {
	tests := map[string]struct {
		year int
		ok   bool
	}{
		"hCoV-19/England/MILK-9E05B3/2020": {2020, true},
		"hCoV-19/USA/CA-CDC-QDX/2021":      {2021, true},
		"hCoV-19/Japan/TKYE6182_1B/2019":   {2019, true},
		"hCoV-19/Wuhan/WH01":               {0, false},
		"hCoV-19/Brazil/RJ-314/20":         {0, false},
		"hCoV-19/Brazil/RJ-314/2020 ":      {0, false},
		"2020":                             {0, false},
		"Wuhan/2020/x":                     {0, false},
	}

	for name, test := range tests {
		y, ok := sample.YearFromName(name)
		if ok != test.ok || y != test.year {
			t.Errorf("%q: got %d (%v), want %d (%v)", name, y, ok, test.year, test.ok)
		}
	}
}

func TestNameYears(t *testing.T) {
	names := []string{
		"hCoV-19/China/WH-09/2019",
		"hCoV-19/USA/CA-1/2020",
		"hCoV-19/USA/CA-2/2020",
		"hCoV-19/Chile/ST-1/2018",
		"hCoV-19/Peru/LIM-3",
		"hCoV-19/India/MH-11/2026",
		"hCoV-19/Kenya/KE-8/2025",
	}

	years, skipped := sample.NameYears(names, sample.DefaultWindow)
	if want := []int{2019, 2020, 2020, 2025}; !reflect.DeepEqual(years, want) {
		t.Errorf("years: got %v, want %v", years, want)
	}
	if skipped != 3 {
		t.Errorf("skipped: got %d, want %d", skipped, 3)
	}
	if len(years)+skipped != len(names) {
		t.Errorf("samples: got %d, want %d", len(years)+skipped, len(names))
	}
}

func TestParsePolicy(t *testing.T) {
	tests := map[string]sample.Policy{
		"":         sample.ByDistance,
		"distance": sample.ByDistance,
		" Name ":   sample.ByName,
		"name":     sample.ByName,
	}
	for in, want := range tests {
		p, err := sample.ParsePolicy(in)
		if err != nil {
			t.Errorf("%q: unexpected error: %v", in, err)
			continue
		}
		if p != want {
			t.Errorf("%q: got %v, want %v", in, p, want)
		}
	}

	if _, err := sample.ParsePolicy("regex"); err == nil {
		t.Errorf("regex: expecting error")
	}
}

func TestTSV(t *testing.T) {
	samples := newSamples()

	var w bytes.Buffer
	if err := sample.WriteTSV(&w, samples); err != nil {
		t.Fatalf("unable to write TSV data: %v", err)
	}
	t.Logf("output:\n%s\n", w.String())

	got, err := sample.ReadTSV(strings.NewReader(w.String()))
	if err != nil {
		t.Fatalf("unable to read TSV data: %v", err)
	}
	testSamples(t, "tsv", got, samples)
}

func TestParquet(t *testing.T) {
	samples := newSamples()

	var w bytes.Buffer
	if err := sample.WriteParquet(&w, samples); err != nil {
		t.Fatalf("unable to write parquet data: %v", err)
	}

	got, err := sample.ReadParquet(bytes.NewReader(w.Bytes()))
	if err != nil {
		t.Fatalf("unable to read parquet data: %v", err)
	}
	testSamples(t, "parquet", got, samples)
}

func newSamples() []sample.Sample {
	leaves := []newick.Leaf{
		{Name: "hCoV-19/China/WH-09/2020", Dist: 0.036},
		{Name: "hCoV-19/USA/CA-1/2020", Dist: 0.162},
		{Name: "hCoV-19/England/MILK-9E05B3/2020", Dist: 0.901},
		{Name: "hCoV-19/USA/CA-CDC-QDX/2021", Dist: 1.5},
	}
	return sample.FromLeaves(leaves, 2019.95)
}

func testSamples(t testing.TB, name string, got, want []sample.Sample) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("%s: got %d samples, want %d", name, len(got), len(want))
	}
	for i, s := range got {
		w := want[i]
		if s.Name != w.Name {
			t.Errorf("%s: sample %d: got name %q, want %q", name, i, s.Name, w.Name)
		}
		if math.Abs(s.DecYear-w.DecYear) > 1e-6 {
			t.Errorf("%s: sample %q: got decimal year %.6f, want %.6f", name, s.Name, s.DecYear, w.DecYear)
		}
		if !s.Date.Equal(w.Date) {
			t.Errorf("%s: sample %q: got date %s, want %s", name, s.Name, s.Date.Format(time.DateOnly), w.Date.Format(time.DateOnly))
		}
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
