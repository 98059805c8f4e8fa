// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package traverse

import (
	"fmt"
	"iter"
	"slices"
	"unsafe"
)

// Walk visits every element of s, in order, passing each to yield.
type Walk[T any] func(s []T, yield func(T)) error

// Mechanism is a named way of walking a slice.
type Mechanism[T any] struct {
	Name string
	Walk Walk[T]
}

// Mechanism names, in the order [Mechanisms] returns them.
const (
	Pointer  = "pointer"
	Iterator = "iterator"
	Advance  = "advance"
	Range    = "range"
	Index    = "index"
	At       = "at"
	ForEach  = "for_each"
)

// Names returns every mechanism name in canonical order.
func Names() []string {
	return []string{Pointer, Iterator, Advance, Range, Index, At, ForEach}
}

// Mechanisms returns every mechanism in canonical order.
func Mechanisms[T any]() []Mechanism[T] {
	return []Mechanism[T]{
		{Name: Pointer, Walk: walkPointer[T]},
		{Name: Iterator, Walk: walkIterator[T]},
		{Name: Advance, Walk: walkAdvance[T]},
		{Name: Range, Walk: walkRange[T]},
		{Name: Index, Walk: walkIndex[T]},
		{Name: At, Walk: walkAt[T]},
		{Name: ForEach, Walk: walkForEach[T]},
	}
}

// UnknownMechanismError
type UnknownMechanismError struct {
	Name string
}

// Error implements the error interface.
func (e UnknownMechanismError) Error() string {
	return fmt.Sprintf("unknown traversal mechanism: %q", e.Name)
}

// Lookup returns the mechanism with the given name.
func Lookup[T any](name string) (Mechanism[T], error) {
	for _, m := range Mechanisms[T]() {
		if m.Name == name {
			return m, nil
		}
	}
	return Mechanism[T]{}, UnknownMechanismError{Name: name}
}

// walkPointer reads each element straight out of the backing
// array using the address of the first element plus an offset.
func walkPointer[T any](s []T, yield func(T)) error {
	if len(s) == 0 {
		return nil
	}

	base := unsafe.Pointer(unsafe.SliceData(s))
	size := unsafe.Sizeof(s[0])
	for i := range len(s) {
		yield(*(*T)(unsafe.Add(base, uintptr(i)*size)))
	}
	return nil
}

func walkIterator[T any](s []T, yield func(T)) error {
	next, stop := iter.Pull(slices.Values(s))
	defer stop()

	for v, ok := next(); ok; v, ok = next() {
		yield(v)
	}
	return nil
}

func walkAdvance[T any](s []T, yield func(T)) error {
	for i := range len(s) {
		v, ok := AdvanceBy(slices.Values(s), i)
		if !ok {
			return IndexOutOfRangeError{Index: i, Len: len(s)}
		}
		yield(v)
	}
	return nil
}

func walkRange[T any](s []T, yield func(T)) error {
	for _, v := range s {
		yield(v)
	}
	return nil
}

func walkIndex[T any](s []T, yield func(T)) error {
	for i := 0; i < len(s); i++ {
		yield(s[i])
	}
	return nil
}

func walkAt[T any](s []T, yield func(T)) error {
	for i := range len(s) {
		v, err := ElementAt(s, i)
		if err != nil {
			return err
		}
		yield(v)
	}
	return nil
}

func walkForEach[T any](s []T, yield func(T)) error {
	Each(slices.Values(s), yield)
	return nil
}
