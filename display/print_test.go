// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package display

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failWriter struct {
	err error
}

func (w failWriter) Write(b []byte) (int, error) {
	return 0, w.err
}

func TestPrint(t *testing.T) {
	testCases := []struct {
		name     string
		print    func(*bytes.Buffer) error
		expected string
	}{
		{
			name: "vector of duplicates",
			print: func(w *bytes.Buffer) error {
				return Print(w, NewVector(10, 1))
			},
			expected: "1 1 1 1 1 1 1 1 1 1 \n",
		},
		{
			name: "linked list of duplicates",
			print: func(w *bytes.Buffer) error {
				return Print(w, NewList(10, 2))
			},
			expected: "2 2 2 2 2 2 2 2 2 2 \n",
		},
		{
			name: "set prints unique values in ascending order",
			print: func(w *bytes.Buffer) error {
				return Print(w, NewSet(6, 3, 9, 1, 5, 3))
			},
			expected: "1 3 5 6 9 \n",
		},
		{
			name: "string uses its own layout",
			print: func(w *bytes.Buffer) error {
				return Print(w, String("ab"))
			},
			expected: "ab\n",
		},
		{
			name: "ordered map uses its own layout",
			print: func(w *bytes.Buffer) error {
				return Print(w, OrderedMap[int, string]{9: "nine", 1: "one", 2: "two"})
			},
			expected: "1:one 2:two 9:nine \n",
		},
		{
			name: "string held as an Iterable keeps its own layout",
			print: func(w *bytes.Buffer) error {
				var it Iterable[rune] = String("ab")
				return Print(w, it)
			},
			expected: "ab\n",
		},
		{
			name: "ordered map held as an Iterable keeps its own layout",
			print: func(w *bytes.Buffer) error {
				var it Iterable[Entry[int, string]] = OrderedMap[int, string]{9: "nine", 1: "one"}
				return Print(w, it)
			},
			expected: "1:one 9:nine \n",
		},
		{
			name: "string walked element by element",
			print: func(w *bytes.Buffer) error {
				return PrintElements(w, String("ab").All())
			},
			expected: "a b \n",
		},
		{
			name: "empty vector",
			print: func(w *bytes.Buffer) error {
				return Print(w, Vector[int]{})
			},
			expected: "\n",
		},
		{
			name: "vector of strings",
			print: func(w *bytes.Buffer) error {
				return Print(w, Vector[string]{"a", "b"})
			},
			expected: "a b \n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := tc.print(&buf)
			require.NoError(t, err)
			require.Equal(t, tc.expected, buf.String())
		})
	}
}

func TestPrintElements(t *testing.T) {
	t.Run("will space separate characters", func(t *testing.T) {
		t.Run("if a string is printed element by element", func(t *testing.T) {
			var buf bytes.Buffer
			err := PrintElements(&buf, Vector[string]{"a", "b"}.All())
			if !assert.Nil(t, err) {
				return
			}
			if !assert.Equal(t, "a b \n", buf.String()) {
				return
			}
		})
	})
}

func TestPrintString(t *testing.T) {
	testCases := []struct {
		name     string
		s        String
		expected string
	}{
		{name: "no interior spaces", s: "ab", expected: "ab\n"},
		{name: "keeps existing spaces", s: "string test", expected: "string test\n"},
		{name: "multi byte characters", s: "héllo", expected: "héllo\n"},
		{name: "empty", s: "", expected: "\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := PrintString(&buf, tc.s)
			require.NoError(t, err)
			require.Equal(t, tc.expected, buf.String())
		})
	}
}

func TestPrintMap(t *testing.T) {
	t.Run("will print entries in ascending key order", func(t *testing.T) {
		var buf bytes.Buffer
		err := PrintMap(&buf, OrderedMap[int, string]{1: "one", 2: "two", 9: "nine"})
		if !assert.Nil(t, err) {
			return
		}
		if !assert.Equal(t, "1:one 2:two 9:nine \n", buf.String()) {
			return
		}
	})

	t.Run("will accept any key and value types", func(t *testing.T) {
		var buf bytes.Buffer
		err := PrintMap(&buf, OrderedMap[string, float64]{"b": 2.5, "a": 1})
		if !assert.Nil(t, err) {
			return
		}
		if !assert.Equal(t, "a:1 b:2.5 \n", buf.String()) {
			return
		}
	})

	t.Run("will return an error", func(t *testing.T) {
		t.Run("if the writer fails", func(t *testing.T) {
			writeErr := errors.New("closed")
			err := PrintMap(failWriter{err: writeErr}, OrderedMap[int, string]{1: "one"})
			if !assert.ErrorIs(t, err, writeErr) {
				return
			}
		})
	})
}
