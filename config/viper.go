// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"github.com/z5labs/tour/config/key"

	"github.com/spf13/viper"
)

// Viper represents a Source backed by a [viper.Viper] instance.
type Viper struct {
	v *viper.Viper
}

// FromViper returns a Source which applies every key the given
// [viper.Viper] considers explicitly set. Bound flags which were
// never changed on the command line are skipped, so they don't
// shadow values from earlier sources with their defaults.
func FromViper(v *viper.Viper) Viper {
	return Viper{v: v}
}

// Apply implements the Source interface.
func (src Viper) Apply(store Store) error {
	for _, k := range src.v.AllKeys() {
		if !src.v.IsSet(k) {
			continue
		}

		err := store.Set(key.Parse(k), src.v.Get(k))
		if err != nil {
			return err
		}
	}
	return nil
}
