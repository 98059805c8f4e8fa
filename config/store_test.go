// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"testing"

	"github.com/z5labs/tour/config/key"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type myKeyer string

func (k myKeyer) Key() string {
	return string(k)
}

func TestMap_Set(t *testing.T) {
	t.Run("will store values", func(t *testing.T) {
		testCases := []struct {
			Name     string
			Initial  Map
			Key      key.Keyer
			Value    any
			Expected Map
		}{
			{
				Name:     "top level name",
				Initial:  Map{},
				Key:      key.Name("labels"),
				Value:    true,
				Expected: Map{"labels": true},
			},
			{
				Name:    "chain on an empty store",
				Initial: Map{},
				Key:     key.Parse("logging.level"),
				Value:   "debug",
				Expected: Map{
					"logging": map[string]any{"level": "debug"},
				},
			},
			{
				Name: "chain merging into an existing map",
				Initial: Map{
					"vector": map[string]any{"size": 10},
				},
				Key:   key.Parse("vector.fill"),
				Value: 7,
				Expected: Map{
					"vector": map[string]any{"size": 10, "fill": 7},
				},
			},
			{
				Name: "chain merging into a nested Map",
				Initial: Map{
					"list": Map{"size": 10},
				},
				Key:   key.Parse("list.size"),
				Value: 3,
				Expected: Map{
					"list": Map{"size": 3},
				},
			},
			{
				Name:    "chain holding chains",
				Initial: Map{},
				Key:     key.Chain{key.Parse("otel"), key.Name("enabled")},
				Value:   true,
				Expected: Map{
					"otel": map[string]any{"enabled": true},
				},
			},
			{
				Name:     "value replacing a map",
				Initial:  Map{"set": map[string]any{"a": 1}},
				Key:      key.Name("set"),
				Value:    []int{1, 2},
				Expected: Map{"set": []int{1, 2}},
			},
		}

		for _, testCase := range testCases {
			t.Run(testCase.Name, func(t *testing.T) {
				err := testCase.Initial.Set(testCase.Key, testCase.Value)
				require.Nil(t, err)
				require.Equal(t, testCase.Expected, testCase.Initial)
			})
		}
	})

	t.Run("will return an error", func(t *testing.T) {
		t.Run("if an unknown key.Keyer is used", func(t *testing.T) {
			err := make(Map).Set(myKeyer("hello"), "world")

			var ierr UnknownKeyerError
			if !assert.ErrorAs(t, err, &ierr) {
				return
			}
			if !assert.Equal(t, "hello", ierr.Key) {
				return
			}
		})

		t.Run("if an unknown key.Keyer is nested in a key.Chain", func(t *testing.T) {
			err := make(Map).Set(key.Chain{key.Name("a"), myKeyer("b")}, 1)

			var ierr UnknownKeyerError
			if !assert.ErrorAs(t, err, &ierr) {
				return
			}
		})

		t.Run("if an empty key.Chain is used", func(t *testing.T) {
			err := make(Map).Set(key.Chain{}, "world")

			var ierr EmptyKeyChainError
			if !assert.ErrorAs(t, err, &ierr) {
				return
			}
			if !assert.Equal(t, "world", ierr.Value) {
				return
			}
		})

		t.Run("if a nested key is set below a key holding a non-map value", func(t *testing.T) {
			store := Map{
				"display": map[string]any{"text": "hello"},
			}

			err := store.Set(key.Parse("display.text.size"), 3)

			var ierr UnexpectedKeyValueTypeError
			if !assert.ErrorAs(t, err, &ierr) {
				return
			}
			if !assert.Equal(t, "display.text", ierr.Key) {
				return
			}
			if !assert.Equal(t, "hello", ierr.Value) {
				return
			}
			if !assert.Contains(t, ierr.Error(), "string") {
				return
			}
		})
	})
}
