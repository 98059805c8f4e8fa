// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package display

import (
	"cmp"
	"fmt"
	"io"
	"iter"
	"strings"
)

// Printer is implemented by containers whose layout differs from the
// default one element followed by one space. [Print] always prefers it.
type Printer interface {
	PrintTo(w io.Writer) error
}

// Print writes every element of c followed by a single space and
// then a newline. Containers implementing [Printer] are printed
// with their own layout instead. The check is made on the dynamic
// type of c, so the layout doesn't depend on how c was declared.
func Print[T any](w io.Writer, c Iterable[T]) error {
	if p, ok := c.(Printer); ok {
		return p.PrintTo(w)
	}
	return PrintElements(w, c.All())
}

// PrintElements writes every element of seq followed by a single space and then a newline.
func PrintElements[T any](w io.Writer, seq iter.Seq[T]) error {
	var sb strings.Builder
	for v := range seq {
		fmt.Fprint(&sb, v)
		sb.WriteByte(' ')
	}
	sb.WriteByte('\n')

	_, err := io.WriteString(w, sb.String())
	return err
}

// PrintString writes the characters of s with nothing between them and then a newline.
func PrintString(w io.Writer, s String) error {
	var sb strings.Builder
	for r := range s.All() {
		sb.WriteRune(r)
	}
	sb.WriteByte('\n')

	_, err := io.WriteString(w, sb.String())
	return err
}

// PrintTo implements the [Printer] interface.
func (s String) PrintTo(w io.Writer) error {
	return PrintString(w, s)
}

// PrintMap writes every entry of m as key:value followed by a single
// space, in ascending key order, and then a newline.
func PrintMap[K cmp.Ordered, V any](w io.Writer, m OrderedMap[K, V]) error {
	var sb strings.Builder
	for k, v := range m.Sorted() {
		fmt.Fprintf(&sb, "%v:%v ", k, v)
	}
	sb.WriteByte('\n')

	_, err := io.WriteString(w, sb.String())
	return err
}

// PrintTo implements the [Printer] interface.
func (m OrderedMap[K, V]) PrintTo(w io.Writer) error {
	return PrintMap(w, m)
}
