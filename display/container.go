// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package display

import (
	"cmp"
	"container/list"
	"iter"
	"maps"
	"slices"
)

// Iterable is any container which can be walked front to back.
type Iterable[T any] interface {
	All() iter.Seq[T]
}

// Vector is an ordered sequence which permits duplicates.
type Vector[T any] []T

// NewVector returns a Vector holding n copies of v.
func NewVector[T any](n int, v T) Vector[T] {
	if n < 0 {
		n = 0
	}
	vec := make(Vector[T], n)
	for i := range vec {
		vec[i] = v
	}
	return vec
}

// All implements the [Iterable] interface.
func (v Vector[T]) All() iter.Seq[T] {
	return slices.Values(v)
}

// List is a linked sequence which permits duplicates.
type List[T any] struct {
	l *list.List
}

// NewList returns a List holding n copies of v.
func NewList[T any](n int, v T) *List[T] {
	l := &List[T]{l: list.New()}
	for range n {
		l.PushBack(v)
	}
	return l
}

// PushBack appends v to the end of the list.
func (l *List[T]) PushBack(v T) {
	if l.l == nil {
		l.l = list.New()
	}
	l.l.PushBack(v)
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	if l.l == nil {
		return 0
	}
	return l.l.Len()
}

// All implements the [Iterable] interface.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l.l == nil {
			return
		}
		for e := l.l.Front(); e != nil; e = e.Next() {
			if !yield(e.Value.(T)) {
				return
			}
		}
	}
}

// Set holds unique values and iterates them in ascending order.
type Set[T cmp.Ordered] map[T]struct{}

// NewSet returns a Set of the given values with duplicates dropped.
func NewSet[T cmp.Ordered](vs ...T) Set[T] {
	s := make(Set[T], len(vs))
	for _, v := range vs {
		s[v] = struct{}{}
	}
	return s
}

// All implements the [Iterable] interface.
func (s Set[T]) All() iter.Seq[T] {
	return slices.Values(slices.Sorted(maps.Keys(s)))
}

// String is a sequence of characters.
type String string

// All implements the [Iterable] interface.
func (s String) All() iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for _, r := range s {
			if !yield(r) {
				return
			}
		}
	}
}

// Entry is a single key value pair of an [OrderedMap].
type Entry[K cmp.Ordered, V any] struct {
	Key   K
	Value V
}

// OrderedMap maps unique keys to values and iterates in ascending key order.
type OrderedMap[K cmp.Ordered, V any] map[K]V

// All implements the [Iterable] interface.
func (m OrderedMap[K, V]) All() iter.Seq[Entry[K, V]] {
	return func(yield func(Entry[K, V]) bool) {
		for k, v := range m.Sorted() {
			if !yield(Entry[K, V]{Key: k, Value: v}) {
				return
			}
		}
	}
}

// Sorted walks the map in ascending key order.
func (m OrderedMap[K, V]) Sorted() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range slices.Sorted(maps.Keys(m)) {
			if !yield(k, m[k]) {
				return
			}
		}
	}
}
