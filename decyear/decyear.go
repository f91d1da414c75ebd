// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package decyear implements the conversion
// between decimal years
// (a year plus the elapsed fraction of the year, e.g., 2020.5)
// and calendar dates.
//
// Dates are civil dates,
// returned as the midnight of the day in UTC.
package decyear

import (
	"math"
	"time"
)

// IsLeap returns true if year is a leap year
// in the Gregorian calendar.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// Days returns the number of days of a year.
func Days(year int) int {
	if IsLeap(year) {
		return 366
	}
	return 365
}

// Date returns the calendar date of a decimal year.
//
// The day is the integer part
// of the fraction of the year times the days of the year,
// counted from January 1.
// The day never goes beyond December 31
// of the year.
func Date(dy float64) time.Time {
	y := math.Floor(dy)
	year := int(y)
	days := Days(year)

	day := int(math.Floor((dy - y) * float64(days)))
	if day >= days {
		day = days - 1
	}
	if day < 0 {
		day = 0
	}
	return time.Date(year, time.January, 1+day, 0, 0, 0, 0, time.UTC)
}

// Sample returns the date of a sample
// from its distance to the root of a timetree
// and the decimal year of the root.
func Sample(dist, root float64) time.Time {
	return Date(root + dist)
}

// FromDate returns the decimal year
// at the middle of the day of a date,
// so Date(FromDate(t)) is always the same day as t.
func FromDate(t time.Time) float64 {
	year := t.Year()
	return float64(year) + (float64(t.YearDay()-1)+0.5)/float64(Days(year))
}
