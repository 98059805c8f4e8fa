// Copyright (c) 2023 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package tour

import (
	"context"
	"slices"

	"github.com/z5labs/tour/config"
)

// App is a single program run.
type App interface {
	Run(context.Context) error
}

// AppFunc is a func variant of the [App] interface.
type AppFunc func(context.Context) error

// Run implements the [App] interface.
func (f AppFunc) Run(ctx context.Context) error {
	return f(ctx)
}

// AppBuilder turns a decoded program config into an [App].
type AppBuilder[T any] interface {
	Build(ctx context.Context, cfg T) (App, error)
}

// AppBuilderFunc is a func variant of the [AppBuilder] interface.
type AppBuilderFunc[T any] func(context.Context, T) (App, error)

// Build implements the [AppBuilder] interface.
func (f AppBuilderFunc[T]) Build(ctx context.Context, cfg T) (App, error) {
	return f(ctx, cfg)
}

// Sources layers the config of a program run. Every layer overrides
// the layers before it: Defaults, File, Environment and then Overrides.
// Nil layers are skipped.
type Sources struct {
	// Defaults are applied in order and reproduce the program's
	// behaviour when nothing else is configured.
	Defaults []config.Source

	// File is the config file given on the command line.
	File config.Source

	// Environment holds values from changed flags and environment variables.
	Environment config.Source

	// Overrides are single key=value pairs which always win.
	Overrides config.Source
}

// Apply implements the [config.Source] interface.
func (s Sources) Apply(store config.Store) error {
	for _, src := range s.layers() {
		err := src.Apply(store)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s Sources) layers() []config.Source {
	layers := slices.Clone(s.Defaults)
	for _, src := range []config.Source{s.File, s.Environment, s.Overrides} {
		if src != nil {
			layers = append(layers, src)
		}
	}
	return layers
}

// Load merges srcs, later ones overriding earlier ones, and decodes
// the result into a T.
func Load[T any](srcs ...config.Source) (T, error) {
	var cfg T

	m, err := config.Read(srcs...)
	if err != nil {
		return cfg, ConfigReadError{Cause: err}
	}

	err = m.Unmarshal(&cfg)
	if err != nil {
		return cfg, ConfigUnmarshalError{Cause: err}
	}
	return cfg, nil
}

// Run loads a T from srcs, builds the [App] and runs it.
// Each step wraps its failure in its own error type.
func Run[T any](ctx context.Context, builder AppBuilder[T], srcs ...config.Source) error {
	cfg, err := Load[T](srcs...)
	if err != nil {
		return err
	}

	app, err := builder.Build(ctx, cfg)
	if err != nil {
		return AppBuildError{Cause: err}
	}

	err = app.Run(ctx)
	if err != nil {
		return AppRunError{Cause: err}
	}
	return nil
}

// ConfigReadError occurs when a config source can't be applied.
type ConfigReadError struct {
	Cause error
}

func (e ConfigReadError) Error() string {
	return "tour: reading config: " + e.Cause.Error()
}

func (e ConfigReadError) Unwrap() error {
	return e.Cause
}

// ConfigUnmarshalError occurs when the merged config doesn't decode
// into the program config type.
type ConfigUnmarshalError struct {
	Cause error
}

func (e ConfigUnmarshalError) Error() string {
	return "tour: decoding config: " + e.Cause.Error()
}

func (e ConfigUnmarshalError) Unwrap() error {
	return e.Cause
}

// AppBuildError
type AppBuildError struct {
	Cause error
}

func (e AppBuildError) Error() string {
	return "tour: building app: " + e.Cause.Error()
}

func (e AppBuildError) Unwrap() error {
	return e.Cause
}

// AppRunError
type AppRunError struct {
	Cause error
}

func (e AppRunError) Error() string {
	return "tour: running app: " + e.Cause.Error()
}

func (e AppRunError) Unwrap() error {
	return e.Cause
}
