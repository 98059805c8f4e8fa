// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package lifecycle provides helpers for defining actions to execute once a [tour.App] has run.
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
)

// Hook represents functionality that needs to be performed
// at a specific "time" relative to the execution of [tour.App.Run].
type Hook interface {
	Run(context.Context) error
}

// HookFunc is a func variant of the [Hook] interface.
type HookFunc func(context.Context) error

// Run implements the [Hook] interface.
func (f HookFunc) Run(ctx context.Context) error {
	return f(ctx)
}

// HookError reports the name of a failed [Hook].
type HookError struct {
	Name  string
	Cause error
}

// Error implements the error interface.
func (e HookError) Error() string {
	return fmt.Sprintf("%s hook failed: %s", e.Name, e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e HookError) Unwrap() error {
	return e.Cause
}

// Named labels the failures of h with name, e.g. "tracer shutdown".
func Named(name string, h Hook) Hook {
	return HookFunc(func(ctx context.Context) error {
		err := h.Run(ctx)
		if err != nil {
			return HookError{Name: name, Cause: err}
		}
		return nil
	})
}

// MultiHook returns a [Hook] running hooks in order. Every hook runs,
// even after an earlier one fails, and all failures are joined.
func MultiHook(hooks ...Hook) Hook {
	return HookFunc(func(ctx context.Context) error {
		var errs []error
		for _, h := range hooks {
			if err := h.Run(ctx); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	})
}

// Context collects the hooks a program wants run after its
// [tour.App] returns. It is safe for concurrent use.
type Context struct {
	mu       sync.Mutex
	postRuns []Hook
}

// OnPostRun registers hooks to run once the [tour.App] returns.
// Hooks unwind like deferred calls: the last one registered runs first.
func (c *Context) OnPostRun(hooks ...Hook) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.postRuns = append(c.postRuns, hooks...)
}

// PostRun returns a [MultiHook] of the hooks registered so far,
// in unwinding order.
func (c *Context) PostRun() Hook {
	c.mu.Lock()
	defer c.mu.Unlock()

	hooks := slices.Clone(c.postRuns)
	slices.Reverse(hooks)
	return MultiHook(hooks...)
}

type contextKey struct{}

// NewContext returns a copy of parent carrying c.
func NewContext(parent context.Context, c *Context) context.Context {
	return context.WithValue(parent, contextKey{}, c)
}

// FromContext returns the [Context] carried by ctx, if any.
func FromContext(ctx context.Context) (*Context, bool) {
	lc, ok := ctx.Value(contextKey{}).(*Context)
	return lc, ok
}
