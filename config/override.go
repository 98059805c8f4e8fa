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

// Overrides is a Source made of "path=value" pairs where
// path is a dot separated key, e.g. "vector.size=3".
type Overrides []string

// InvalidOverrideError occurs when an override is not of the form "path=value".
type InvalidOverrideError struct {
	Override string
}

// Error implements the error interface.
func (e InvalidOverrideError) Error() string {
	return fmt.Sprintf("config override must be of the form path=value: %q", e.Override)
}

// Apply implements the Source interface.
func (o Overrides) Apply(store Store) error {
	for _, kv := range o {
		path, value, ok := strings.Cut(kv, "=")
		chain := key.Parse(path)
		if !ok || len(chain) == 0 {
			return InvalidOverrideError{Override: kv}
		}

		err := store.Set(chain, value)
		if err != nil {
			return err
		}
	}
	return nil
}
