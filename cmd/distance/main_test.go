// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"bytes"
	"testing"

	"github.com/z5labs/tour/cli"
	"github.com/z5labs/tour/distance"

	"github.com/stretchr/testify/assert"
)

const defaultOutput = "Sum of dist: 2.60934 km\n"

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cmd := cli.New(name, distance.Builder, options()...)

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	// cobra falls back to os.Args when given nil.
	cmd.SetArgs(append([]string{}, args...))

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCommand(t *testing.T) {
	t.Run("will print the default output", func(t *testing.T) {
		t.Run("if no arguments are given", func(t *testing.T) {
			stdout, stderr, err := run(t)
			if !assert.Nil(t, err) {
				return
			}
			if !assert.Equal(t, defaultOutput, stdout) {
				return
			}
			if !assert.Empty(t, stderr) {
				return
			}
		})

		t.Run("if tracing is enabled", func(t *testing.T) {
			stdout, stderr, err := run(t, "--otel")
			if !assert.Nil(t, err) {
				return
			}
			if !assert.Equal(t, defaultOutput, stdout) {
				return
			}
			if !assert.Contains(t, stderr, "App.Run") {
				return
			}
		})
	})

	t.Run("will print the configured output", func(t *testing.T) {
		t.Run("if the example config file is given", func(t *testing.T) {
			stdout, _, err := run(t, "-c", "config.toml")
			if !assert.Nil(t, err) {
				return
			}
			expected := "Sum of dist: 43.195068 km\n"
			if !assert.Equal(t, expected, stdout) {
				return
			}
		})
	})
}
