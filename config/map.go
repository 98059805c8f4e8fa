// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"fmt"
	"slices"

	"github.com/z5labs/tour/config/key"
)

// Map is an ordinary map[string]any which is both a [Source]
// and the in-memory [Store] used by [Read].
type Map map[string]any

// Apply implements the [Source] interface. Every leaf value is set on
// store under the [key.Chain] leading to it, so nested maps merge key
// by key while lists replace each other whole.
func (m Map) Apply(store Store) error {
	return walk(store, nil, m)
}

func walk(store Store, chain key.Chain, v any) error {
	sub, ok := asMap(v)
	if !ok {
		return store.Set(chain, v)
	}

	for k, child := range sub {
		// clip so sibling keys never share a backing array
		err := walk(store, append(slices.Clip(chain), key.Name(k)), child)
		if err != nil {
			return err
		}
	}
	return nil
}

func asMap(v any) (map[string]any, bool) {
	switch x := v.(type) {
	case Map:
		return x, true
	case map[string]any:
		return x, true
	case map[any]any:
		// YAML mappings with non-string keys, e.g. names: {1: one}
		sm := make(map[string]any, len(x))
		for k, v := range x {
			sm[fmt.Sprint(k)] = v
		}
		return sm, true
	default:
		return nil, false
	}
}
