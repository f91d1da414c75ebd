// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package sample implements the dating of variant samples
// from the terminals of a timetree.
//
// There are two dating policies.
// In the distance policy,
// the date of each sample is derived from the distance
// of the terminal from the root of the tree,
// and the decimal year assigned to the root.
// In the name policy,
// only the year is used,
// and it is read from the suffix of the terminal name
// (e.g., "hCoV-19/USA/CA-1/2021").
// The policies are kept apart
// as they might not agree on particular samples.
package sample

import (
	"fmt"
	"strings"
	"time"

	"github.com/js-arias/phydate/decyear"
	"github.com/js-arias/phydate/newick"
)

// A Sample is a dated variant sample.
type Sample struct {
	Name string

	// DecYear is the date of the sample
	// as a decimal year.
	DecYear float64

	// Date is the calendar date of the sample.
	Date time.Time
}

// Year returns the year of the sample.
func (s Sample) Year() int {
	return s.Date.Year()
}

// Month returns the year and month of the sample.
func (s Sample) Month() YearMonth {
	return YearMonth{
		Year:  s.Date.Year(),
		Month: s.Date.Month(),
	}
}

// A YearMonth is a month of a particular year.
type YearMonth struct {
	Year  int
	Month time.Month
}

func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month))
}

// FromLeaves returns the samples
// of a set of tree terminals,
// using the decimal year of the root
// of the tree.
//
// Every terminal produces a sample.
func FromLeaves(leaves []newick.Leaf, root float64) []Sample {
	samples := make([]Sample, 0, len(leaves))
	for _, l := range leaves {
		samples = append(samples, Sample{
			Name:    l.Name,
			DecYear: root + l.Dist,
			Date:    decyear.Sample(l.Dist, root),
		})
	}
	return samples
}

// Dates returns the dates of a set of samples.
func Dates(samples []Sample) []time.Time {
	dates := make([]time.Time, 0, len(samples))
	for _, s := range samples {
		dates = append(dates, s.Date)
	}
	return dates
}

// Policy is a dating policy.
type Policy int

// Valid dating policies.
const (
	// ByDistance dates the samples
	// using the distance from the root.
	ByDistance Policy = iota

	// ByName uses the year suffix
	// of the sample name.
	ByName
)

// ParsePolicy returns a policy from its name.
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "distance":
		return ByDistance, nil
	case "name":
		return ByName, nil
	}
	return ByDistance, fmt.Errorf("unknown dating policy %q", name)
}

func (p Policy) String() string {
	switch p {
	case ByDistance:
		return "distance"
	case ByName:
		return "name"
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}
