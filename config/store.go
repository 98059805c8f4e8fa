// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"fmt"
	"strings"

	"github.com/z5labs/tour/config/key"
)

// UnknownKeyerError occurs when a [key.Keyer] is neither a [key.Name]
// nor a [key.Chain].
type UnknownKeyerError struct {
	Key string
}

// Error implements the error interface.
func (e UnknownKeyerError) Error() string {
	return fmt.Sprintf("unsupported key type for %q", e.Key)
}

// EmptyKeyChainError occurs when a value is set with a [key.Chain]
// holding no names.
type EmptyKeyChainError struct {
	Value any
}

// Error implements the error interface.
func (e EmptyKeyChainError) Error() string {
	return fmt.Sprintf("no key given for value: %v", e.Value)
}

// UnexpectedKeyValueTypeError occurs when a nested key is set below
// a key which already holds a non-map value.
type UnexpectedKeyValueTypeError struct {
	Key   string
	Value any
}

// Error implements the error interface.
func (e UnexpectedKeyValueTypeError) Error() string {
	return fmt.Sprintf("can not nest keys below %s since it holds %T", e.Key, e.Value)
}

// Set implements the [Store] interface. Setting a [key.Chain]
// creates any missing intermediate maps.
func (m Map) Set(k key.Keyer, v any) error {
	path, err := names(nil, k)
	if err != nil {
		return err
	}
	if len(path) == 0 {
		return EmptyKeyChainError{Value: v}
	}

	parent := map[string]any(m)
	for i, name := range path[:len(path)-1] {
		child, ok := parent[name]
		if !ok {
			child = make(map[string]any)
			parent[name] = child
		}

		switch x := child.(type) {
		case map[string]any:
			parent = x
		case Map:
			parent = x
		default:
			return UnexpectedKeyValueTypeError{
				Key:   strings.Join(path[:i+1], "."),
				Value: child,
			}
		}
	}
	parent[path[len(path)-1]] = v
	return nil
}

// names flattens k, which may nest chains, onto path.
func names(path []string, k key.Keyer) ([]string, error) {
	switch x := k.(type) {
	case key.Name:
		return append(path, string(x)), nil
	case key.Chain:
		var err error
		for _, sub := range x {
			path, err = names(path, sub)
			if err != nil {
				return nil, err
			}
		}
		return path, nil
	default:
		return nil, UnknownKeyerError{Key: k.Key()}
	}
}
