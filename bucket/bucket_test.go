// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package bucket_test

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/js-arias/phydate/bucket"
	"github.com/js-arias/phydate/newick"
	"github.com/js-arias/phydate/sample"
)

func TestYearly(t *testing.T) {
	dates := newDates()

	got := bucket.Yearly(dates)
	want := []bucket.Bucket{
		{Year: 2019, Count: 1, Cumulative: 1},
		{Year: 2020, Count: 4, Cumulative: 5},
		{Year: 2022, Count: 2, Cumulative: 7},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("yearly: got %v, want %v", got, want)
	}
	testBuckets(t, "yearly", got, len(dates))
}

func TestMonthly(t *testing.T) {
	dates := newDates()

	got := bucket.Monthly(dates)
	want := []bucket.Bucket{
		{Year: 2019, Month: time.December, Count: 1, Cumulative: 1},
		{Year: 2020, Month: time.January, Count: 2, Cumulative: 3},
		{Year: 2020, Month: time.March, Count: 1, Cumulative: 4},
		{Year: 2020, Month: time.December, Count: 1, Cumulative: 5},
		{Year: 2022, Month: time.June, Count: 2, Cumulative: 7},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("monthly: got %v, want %v", got, want)
	}
	testBuckets(t, "monthly", got, len(dates))

	labels := []string{"2019-12", "2020-01", "2020-03", "2020-12", "2022-06"}
	for i, b := range got {
		if b.Label() != labels[i] {
			t.Errorf("monthly: bucket %d: got label %q, want %q", i, b.Label(), labels[i])
		}
	}
}

func TestYears(t *testing.T) {
	years := []int{2021, 2019, 2021, 2020, 2021, 2023}

	got := bucket.Years(years)
	want := []bucket.Bucket{
		{Year: 2019, Count: 1, Cumulative: 1},
		{Year: 2020, Count: 1, Cumulative: 2},
		{Year: 2021, Count: 3, Cumulative: 5},
		{Year: 2023, Count: 1, Cumulative: 6},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("years: got %v, want %v", got, want)
	}
	testBuckets(t, "years", got, len(years))
}

func TestEmpty(t *testing.T) {
	if bs := bucket.Yearly(nil); len(bs) != 0 {
		t.Errorf("yearly: got %v, want no buckets", bs)
	}
	if bs := bucket.Monthly(nil); len(bs) != 0 {
		t.Errorf("monthly: got %v, want no buckets", bs)
	}
}

func TestTree(t *testing.T) {
	in := "(A:0.1,(B:0.2,C:0.3):0.1,(D:0.95,:0.1):0.1);"
	tr, err := newick.Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	samples := sample.FromLeaves(tr.Leaves(), 2020.0)
	dates := sample.Dates(samples)

	yearly := bucket.Yearly(dates)
	wantY := []bucket.Bucket{
		{Year: 2020, Count: 3, Cumulative: 3},
		{Year: 2021, Count: 1, Cumulative: 4},
	}
	if !reflect.DeepEqual(yearly, wantY) {
		t.Errorf("yearly: got %v, want %v", yearly, wantY)
	}

	monthly := bucket.Monthly(dates)
	wantM := []bucket.Bucket{
		{Year: 2020, Month: time.February, Count: 1, Cumulative: 1},
		{Year: 2020, Month: time.April, Count: 1, Cumulative: 2},
		{Year: 2020, Month: time.May, Count: 1, Cumulative: 3},
		{Year: 2021, Month: time.January, Count: 1, Cumulative: 4},
	}
	if !reflect.DeepEqual(monthly, wantM) {
		t.Errorf("monthly: got %v, want %v", monthly, wantM)
	}
}

func TestCSV(t *testing.T) {
	dates := newDates()

	tests := map[string]struct {
		bs      []bucket.Bucket
		monthly bool
		want    string
	}{
		"yearly": {
			bs: bucket.Yearly(dates),
			want: `year,variant_count,cumulative_count
2019,1,1
2020,4,5
2022,2,7
`,
		},
		"monthly": {
			bs:      bucket.Monthly(dates),
			monthly: true,
			want: `year_month,variant_count,cumulative_count
2019-12,1,1
2020-01,2,3
2020-03,1,4
2020-12,1,5
2022-06,2,7
`,
		},
	}

	for name, test := range tests {
		var w bytes.Buffer
		if err := bucket.WriteCSV(&w, test.bs, test.monthly); err != nil {
			t.Errorf("%s: unable to write data: %v", name, err)
			continue
		}
		if w.String() != test.want {
			t.Errorf("%s: got table:\n%s\nwant:\n%s", name, w.String(), test.want)
		}

		// same buckets produce the same table
		var again bytes.Buffer
		if err := bucket.WriteCSV(&again, test.bs, test.monthly); err != nil {
			t.Errorf("%s: unable to write data: %v", name, err)
			continue
		}
		if !bytes.Equal(w.Bytes(), again.Bytes()) {
			t.Errorf("%s: tables are different", name)
		}

		bs, monthly, err := bucket.ReadCSV(strings.NewReader(w.String()))
		if err != nil {
			t.Errorf("%s: unable to read data: %v", name, err)
			continue
		}
		if monthly != test.monthly {
			t.Errorf("%s: got monthly %v, want %v", name, monthly, test.monthly)
		}
		if !reflect.DeepEqual(bs, test.bs) {
			t.Errorf("%s: got %v, want %v", name, bs, test.bs)
		}
	}
}

func TestWriteCSVMixed(t *testing.T) {
	bs := bucket.Monthly(newDates())

	var w bytes.Buffer
	if err := bucket.WriteCSV(&w, bs, false); err == nil {
		t.Errorf("expecting error when writing monthly buckets as a yearly table")
	}
}

func TestIdempotent(t *testing.T) {
	in := "((A:0.1,B:0.5):0.2,(C:1.1,(D:0.7,E:2.3):0.4):0.05);"

	run := func() string {
		tr, err := newick.Parse(strings.NewReader(in))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		dates := sample.Dates(sample.FromLeaves(tr.Leaves(), 2019.95))

		var w bytes.Buffer
		if err := bucket.WriteCSV(&w, bucket.Yearly(dates), false); err != nil {
			t.Fatalf("unable to write data: %v", err)
		}
		if err := bucket.WriteCSV(&w, bucket.Monthly(dates), true); err != nil {
			t.Fatalf("unable to write data: %v", err)
		}
		return w.String()
	}

	first := run()
	if second := run(); first != second {
		t.Errorf("got different tables:\n%s\n%s", first, second)
	}
}

func newDates() []time.Time {
	return []time.Time{
		date(2020, time.January, 20),
		date(2019, time.December, 30),
		date(2020, time.March, 1),
		date(2022, time.June, 10),
		date(2020, time.January, 1),
		date(2020, time.December, 31),
		date(2022, time.June, 30),
	}
}

func testBuckets(t testing.TB, name string, bs []bucket.Bucket, total int) {
	t.Helper()

	prev := 0
	for i, b := range bs {
		if b.Count < 1 {
			t.Errorf("%s: bucket %s: count %d", name, b.Label(), b.Count)
		}
		if b.Cumulative < prev || b.Cumulative < b.Count {
			t.Errorf("%s: bucket %s: cumulative %d, previous %d", name, b.Label(), b.Cumulative, prev)
		}
		if i > 0 && b.Label() <= bs[i-1].Label() {
			t.Errorf("%s: bucket %s after %s", name, b.Label(), bs[i-1].Label())
		}
		prev = b.Cumulative
	}
	if prev != total {
		t.Errorf("%s: last cumulative %d, want %d", name, prev, total)
	}
	if s := bucket.Total(bs); s != total {
		t.Errorf("%s: total %d, want %d", name, s, total)
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
