// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package distance demonstrates unit tagged values built by plain
// conversion functions. Every [Distance] is stored in kilometres.
package distance

import (
	"strconv"
)

// KmPerMile is the number of kilometres in one international mile.
const KmPerMile = 1.609344

// DefaultPrecision matches the significant digits a default
// formatted floating point value is printed with.
const DefaultPrecision = 6

// Distance is a length in kilometres.
type Distance float64

// Kilometers tags v as a distance in kilometres.
func Kilometers(v float64) Distance {
	return Distance(v)
}

// MilesToKm converts v miles into kilometres.
func MilesToKm(v float64) Distance {
	return Distance(v * KmPerMile)
}

// Km returns d as a plain number of kilometres.
func (d Distance) Km() float64 {
	return float64(d)
}

// Format renders d with at most prec significant digits,
// dropping trailing zeros, e.g. 2.609344 becomes "2.60934".
// A non-positive prec falls back to [DefaultPrecision].
func (d Distance) Format(prec int) string {
	if prec <= 0 {
		prec = DefaultPrecision
	}
	return strconv.FormatFloat(float64(d), 'g', prec, 64)
}

// String implements the fmt.Stringer interface.
func (d Distance) String() string {
	return d.Format(DefaultPrecision) + " km"
}
