// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package sample

import (
	"regexp"
	"strconv"
)

var yearSuffix = regexp.MustCompile(`/(\d{4})$`)

// YearFromName returns the year
// in the suffix of a sample name.
// The year must be the last element of the name,
// as in "hCoV-19/England/MILK-9E05B3/2020".
func YearFromName(name string) (int, bool) {
	m := yearSuffix.FindStringSubmatch(name)
	if m == nil {
		return 0, false
	}
	y, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return y, true
}

// A Window is an inclusive range of plausible years.
type Window struct {
	Min int
	Max int
}

// DefaultWindow is the default range of plausible years.
var DefaultWindow = Window{Min: 2019, Max: 2025}

// In returns true if the year is inside the window.
func (w Window) In(year int) bool {
	return year >= w.Min && year <= w.Max
}

// NameYears returns the years read from a set of sample names.
// Names without a year suffix,
// or with a year outside the window,
// are skipped,
// and the number of skipped names is returned.
func NameYears(names []string, w Window) (years []int, skipped int) {
	years = make([]int, 0, len(names))
	for _, n := range names {
		y, ok := YearFromName(n)
		if !ok || !w.In(y) {
			skipped++
			continue
		}
		years = append(years, y)
	}
	return years, skipped
}
