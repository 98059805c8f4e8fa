// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package traverse

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect[T any](t *testing.T, m Mechanism[T], s []T) []T {
	t.Helper()

	var got []T
	err := m.Walk(s, func(v T) {
		got = append(got, v)
	})
	require.NoError(t, err)
	return got
}

func TestMechanisms(t *testing.T) {
	t.Run("will be returned in canonical order", func(t *testing.T) {
		ms := Mechanisms[int]()

		names := make([]string, 0, len(ms))
		for _, m := range ms {
			names = append(names, m.Name)
		}
		if !assert.Equal(t, Names(), names) {
			return
		}
		if !assert.Len(t, names, 7) {
			return
		}
	})

	for _, m := range Mechanisms[int]() {
		t.Run(m.Name, func(t *testing.T) {
			t.Run("will yield every value in order", func(t *testing.T) {
				values := []int{1, 2, 3}

				got := collect(t, m, values)
				require.Equal(t, []int{1, 2, 3}, got)
				require.Equal(t, []int{1, 2, 3}, values)
			})

			t.Run("will yield nothing for an empty sequence", func(t *testing.T) {
				got := collect(t, m, []int{})
				require.Empty(t, got)
			})

			t.Run("will yield nothing for a nil sequence", func(t *testing.T) {
				got := collect(t, m, nil)
				require.Empty(t, got)
			})
		})
	}

	t.Run("will work for non-int element types", func(t *testing.T) {
		type point struct {
			X, Y int64
			Tag  string
		}
		values := []point{{1, 2, "a"}, {3, 4, "b"}, {5, 6, "c"}}

		for _, m := range Mechanisms[point]() {
			got := collect(t, m, values)
			if !assert.Equal(t, values, got, m.Name) {
				return
			}
		}
	})

	t.Run("will only read the visible part of a re-sliced sequence", func(t *testing.T) {
		backing := []int{0, 1, 2, 3, 4}
		window := backing[1:4]

		for _, m := range Mechanisms[int]() {
			got := collect(t, m, window)
			if !assert.Equal(t, []int{1, 2, 3}, got, m.Name) {
				return
			}
		}
	})
}

func TestLookup(t *testing.T) {
	t.Run("will return the named mechanism", func(t *testing.T) {
		for _, name := range Names() {
			m, err := Lookup[int](name)
			if !assert.Nil(t, err) {
				return
			}
			if !assert.Equal(t, name, m.Name) {
				return
			}
		}
	})

	t.Run("will return an error", func(t *testing.T) {
		t.Run("if the name is unknown", func(t *testing.T) {
			_, err := Lookup[int]("reverse")

			var ierr UnknownMechanismError
			if !assert.ErrorAs(t, err, &ierr) {
				return
			}
			if !assert.Equal(t, "reverse", ierr.Name) {
				return
			}
			if !assert.NotEmpty(t, ierr.Error()) {
				return
			}
		})
	})
}

func TestElementAt(t *testing.T) {
	values := []int{1, 2, 3}

	t.Run("will return the element", func(t *testing.T) {
		for i, want := range values {
			got, err := ElementAt(values, i)
			if !assert.Nil(t, err) {
				return
			}
			if !assert.Equal(t, want, got) {
				return
			}
		}
	})

	t.Run("will return an IndexOutOfRangeError", func(t *testing.T) {
		for _, i := range []int{-1, 3, 100} {
			_, err := ElementAt(values, i)

			var ierr IndexOutOfRangeError
			if !assert.ErrorAs(t, err, &ierr) {
				return
			}
			if !assert.Equal(t, i, ierr.Index) {
				return
			}
			if !assert.Equal(t, 3, ierr.Len) {
				return
			}
			if !assert.NotEmpty(t, ierr.Error()) {
				return
			}
		}
	})
}

func TestAdvanceBy(t *testing.T) {
	testCases := []struct {
		name   string
		n      int
		wantV  int
		wantOk bool
	}{
		{name: "zero steps", n: 0, wantV: 1, wantOk: true},
		{name: "last element", n: 2, wantV: 3, wantOk: true},
		{name: "past the end", n: 3, wantV: 0, wantOk: false},
		{name: "negative steps", n: -1, wantV: 0, wantOk: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v, ok := AdvanceBy(slices.Values([]int{1, 2, 3}), tc.n)
			require.Equal(t, tc.wantOk, ok)
			require.Equal(t, tc.wantV, v)
		})
	}
}

func TestEach(t *testing.T) {
	var sum int
	Each(slices.Values([]int{1, 2, 3}), func(v int) {
		sum += v
	})
	require.Equal(t, 6, sum)
}
