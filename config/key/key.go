// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package key provides types for strongly typed keys in key value pairs.
package key

import (
	"strings"
)

// Separator joins the names of a [Chain], e.g. "vector.size".
const Separator = '.'

// Keyer is a common interface all value key types must implement.
type Keyer interface {
	Key() string
}

// Name is a single key, e.g. "labels".
type Name string

// Key implements the [Keyer] interface.
func (k Name) Key() string {
	return string(k)
}

// Chain is a path of nested keys.
type Chain []Keyer

// Key implements the [Keyer] interface.
func (c Chain) Key() string {
	var sb strings.Builder
	for i, k := range c {
		if i > 0 {
			sb.WriteByte(Separator)
		}
		sb.WriteString(k.Key())
	}
	return sb.String()
}

// Parse turns a path like "logging.level" into a [Chain] of [Name]s.
// Blank names are skipped, so " .vector..fill" parses to vector.fill.
func Parse(path string) Chain {
	fields := strings.FieldsFunc(path, func(r rune) bool {
		return r == Separator
	})

	chain := make(Chain, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			chain = append(chain, Name(f))
		}
	}
	return chain
}
