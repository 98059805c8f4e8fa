// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package traverse

import (
	"fmt"
	"iter"
)

// IndexOutOfRangeError occurs when a bounds checked access falls outside a sequence.
type IndexOutOfRangeError struct {
	Index int
	Len   int
}

// Error implements the error interface.
func (e IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range for length %d", e.Index, e.Len)
}

// ElementAt returns s[i] or an [IndexOutOfRangeError] instead of panicking.
func ElementAt[T any](s []T, i int) (T, error) {
	if i < 0 || i >= len(s) {
		var zero T
		return zero, IndexOutOfRangeError{Index: i, Len: len(s)}
	}
	return s[i], nil
}

// AdvanceBy starts a fresh cursor over seq, moves it n positions
// forward and returns the element it lands on. The bool is false
// if seq holds n or fewer elements.
func AdvanceBy[T any](seq iter.Seq[T], n int) (T, bool) {
	var zero T
	if n < 0 {
		return zero, false
	}

	next, stop := iter.Pull(seq)
	defer stop()

	for range n {
		if _, ok := next(); !ok {
			return zero, false
		}
	}
	return next()
}

// Each applies f to every element of seq.
func Each[T any](seq iter.Seq[T], f func(T)) {
	for v := range seq {
		f(v)
	}
}
