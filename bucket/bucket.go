// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package bucket implements the aggregation
// of dated samples by year,
// or by month,
// with running cumulative counts.
package bucket

import (
	"cmp"
	"fmt"
	"time"

	"golang.org/x/exp/slices"
)

// A Bucket is the number of samples
// observed in a year,
// or in a month of a year.
type Bucket struct {
	Year int

	// Month of the bucket.
	// It is 0 for yearly buckets.
	Month time.Month

	// Count is the number of samples in the bucket.
	Count int

	// Cumulative is the number of samples
	// in the bucket,
	// and all the previous buckets.
	Cumulative int
}

// Label returns the label of the bucket,
// as YYYY for years,
// or YYYY-MM for months.
func (b Bucket) Label() string {
	if b.Month == 0 {
		return fmt.Sprintf("%04d", b.Year)
	}
	return fmt.Sprintf("%04d-%02d", b.Year, int(b.Month))
}

type key struct {
	year  int
	month time.Month
}

// Yearly returns the yearly buckets
// of a set of dates,
// sorted by year.
//
// Only years with samples are returned.
func Yearly(dates []time.Time) []Bucket {
	count := make(map[key]int)
	for _, d := range dates {
		count[key{year: d.Year()}]++
	}
	return buckets(count)
}

// Monthly returns the monthly buckets
// of a set of dates,
// sorted by year and month.
//
// Only months with samples are returned.
func Monthly(dates []time.Time) []Bucket {
	count := make(map[key]int)
	for _, d := range dates {
		count[key{year: d.Year(), month: d.Month()}]++
	}
	return buckets(count)
}

// Years returns the yearly buckets
// of a set of years.
func Years(years []int) []Bucket {
	count := make(map[key]int)
	for _, y := range years {
		count[key{year: y}]++
	}
	return buckets(count)
}

func buckets(count map[key]int) []Bucket {
	keys := make([]key, 0, len(count))
	for k := range count {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b key) int {
		if c := cmp.Compare(a.year, b.year); c != 0 {
			return c
		}
		return cmp.Compare(a.month, b.month)
	})

	bs := make([]Bucket, 0, len(keys))
	var cum int
	for _, k := range keys {
		cum += count[k]
		bs = append(bs, Bucket{
			Year:       k.year,
			Month:      k.month,
			Count:      count[k],
			Cumulative: cum,
		})
	}
	return bs
}

// Total returns the total number of samples
// in a set of buckets.
func Total(bs []Bucket) int {
	var sum int
	for _, b := range bs {
		sum += b.Count
	}
	return sum
}
