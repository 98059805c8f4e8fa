// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"encoding"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/z5labs/tour/config/key"

	"github.com/go-viper/mapstructure/v2"
)

// Store represents a general key value structure.
type Store interface {
	Set(key.Keyer, any) error
}

// Source defines valid config sources as those who can
// serialize themselves into a key value like structure.
type Source interface {
	Apply(Store) error
}

// Manager holds the merged result of one or more [Source]s.
type Manager struct {
	store Map
}

// Read applies srcs, in order, to a fresh [Map].
// Subsequent sources override previous sources.
func Read(srcs ...Source) (*Manager, error) {
	store := make(Map)
	for _, src := range srcs {
		if err := src.Apply(store); err != nil {
			return nil, err
		}
	}
	return &Manager{store: store}, nil
}

// Unmarshal decodes the merged config into v, which must be a pointer.
// Struct fields are matched using the `config` tag and string values
// are weakly converted to the field type.
func (m *Manager) Unmarshal(v any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "config",
		Result:           v,
		WeaklyTypedInput: true,
		DecodeHook:       coercions.hook(),
	})
	if err != nil {
		return err
	}
	return dec.Decode(m.store)
}

// TypeCoercionError occurs when a config value can not be converted
// into the type of the field it is decoded into.
type TypeCoercionError struct {
	From  reflect.Type
	To    reflect.Type
	Cause error
}

// Error implements the error interface.
func (e TypeCoercionError) Error() string {
	return fmt.Sprintf("failed to coerce value from %s to %s: %s", e.From, e.To, e.Cause)
}

// Unwrap implements the implicit interface for usage with errors.Is and errors.As.
func (e TypeCoercionError) Unwrap() error {
	return e.Cause
}

// coercion converts a config value into a field type it applies to.
type coercion struct {
	applies func(from, to reflect.Type) bool
	convert func(data any, to reflect.Type) (any, error)
}

type coercionTable []coercion

// coercions are tried in order and the first applicable one wins.
var coercions = coercionTable{
	{applies: isTextUnmarshaler, convert: unmarshalText},
	{applies: isStringTo(durationType), convert: parseDuration},
	{applies: isIntTo(durationType), convert: intToDuration},
	{applies: isStringToSlice, convert: splitList(",")},
}

func (ct coercionTable) hook() mapstructure.DecodeHookFuncType {
	return func(from, to reflect.Type, data any) (any, error) {
		for _, c := range ct {
			if !c.applies(from, to) {
				continue
			}

			v, err := c.convert(data, to)
			if err != nil {
				return nil, TypeCoercionError{From: from, To: to, Cause: err}
			}
			return v, nil
		}
		return data, nil
	}
}

var (
	durationType        = reflect.TypeOf(time.Duration(0))
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
)

func isTextUnmarshaler(from, to reflect.Type) bool {
	return from.Kind() == reflect.String && reflect.PointerTo(to).Implements(textUnmarshalerType)
}

func unmarshalText(data any, to reflect.Type) (any, error) {
	ptr := reflect.New(to)
	err := ptr.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(reflect.ValueOf(data).String()))
	if err != nil {
		return nil, err
	}
	return ptr.Elem().Interface(), nil
}

func isStringTo(t reflect.Type) func(from, to reflect.Type) bool {
	return func(from, to reflect.Type) bool {
		return from.Kind() == reflect.String && to == t
	}
}

func isIntTo(t reflect.Type) func(from, to reflect.Type) bool {
	return func(from, to reflect.Type) bool {
		return from.Kind() == reflect.Int && to == t
	}
}

func parseDuration(data any, _ reflect.Type) (any, error) {
	return time.ParseDuration(reflect.ValueOf(data).String())
}

func intToDuration(data any, _ reflect.Type) (any, error) {
	return time.Duration(reflect.ValueOf(data).Int()), nil
}

func isStringToSlice(from, to reflect.Type) bool {
	return from.Kind() == reflect.String && to.Kind() == reflect.Slice
}

// splitList lets list valued fields be set from a single string,
// e.g. an environment variable or a --set flag.
func splitList(sep string) func(any, reflect.Type) (any, error) {
	return func(data any, _ reflect.Type) (any, error) {
		s := strings.TrimSpace(reflect.ValueOf(data).String())
		if s == "" {
			return []string{}, nil
		}

		parts := strings.Split(s, sep)
		for i, p := range parts {
			parts[i] = strings.TrimSpace(p)
		}
		return parts, nil
	}
}
