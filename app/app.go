// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package app provides middleware for common [tour.App] wrapping patterns.
package app

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/z5labs/tour"
	"github.com/z5labs/tour/internal/try"
	"github.com/z5labs/tour/lifecycle"
)

// Recover turns a panic in app into a returned [try.PanicError],
// which unwraps to the panic value when that value is an error.
func Recover(app tour.App) tour.App {
	return tour.AppFunc(func(ctx context.Context) (err error) {
		defer try.Recover(&err)

		return app.Run(ctx)
	})
}

// WithSignalNotifications cancels the context given to app
// once the process receives one of signals.
func WithSignalNotifications(app tour.App, signals ...os.Signal) tour.App {
	return tour.AppFunc(func(ctx context.Context) error {
		ctx, stop := signal.NotifyContext(ctx, signals...)
		defer stop()

		return app.Run(ctx)
	})
}

// Lifecycle holds the hooks run around a [tour.App].
type Lifecycle struct {
	// PostRun runs once app returns, also when it fails or panics.
	// Its context is never cancelled, so a program interrupted by a
	// signal still flushes its logs and spans.
	PostRun lifecycle.Hook
}

// WithLifecycleHooks runs the hooks of lc around app. Hook failures
// are joined with the error returned by app. A panic in app still
// propagates once the hooks have run; wrap the result with [Recover]
// to turn it into an error.
func WithLifecycleHooks(app tour.App, lc Lifecycle) tour.App {
	if lc.PostRun == nil {
		return app
	}

	return tour.AppFunc(func(ctx context.Context) (err error) {
		defer func() {
			hookErr := lc.PostRun.Run(context.WithoutCancel(ctx))
			if hookErr != nil {
				err = errors.Join(err, hookErr)
			}
		}()

		return app.Run(ctx)
	})
}
