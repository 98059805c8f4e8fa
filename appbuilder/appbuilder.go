// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package appbuilder provides middleware for common [tour.AppBuilder] wrapping patterns.
package appbuilder

import (
	"context"
	"errors"

	"github.com/z5labs/tour"
	"github.com/z5labs/tour/app"
	"github.com/z5labs/tour/internal/try"
	"github.com/z5labs/tour/lifecycle"
)

// Recover will wrap the given [tour.AppBuilder] with panic recovery.
// A recovered panic is returned as a [try.PanicError].
func Recover[T any](builder tour.AppBuilder[T]) tour.AppBuilder[T] {
	return tour.AppBuilderFunc[T](func(ctx context.Context, cfg T) (_ tour.App, err error) {
		defer try.Recover(&err)

		return builder.Build(ctx, cfg)
	})
}

// LifecycleContext gives the wrapped [tour.AppBuilder] a [lifecycle.Context]
// to register hooks with. The hooks are run once the built [tour.App] returns.
// If the wrapped builder fails, the post run hooks registered so far are run
// immediately and their errors are joined with the build error.
func LifecycleContext[T any](builder tour.AppBuilder[T]) tour.AppBuilder[T] {
	return tour.AppBuilderFunc[T](func(ctx context.Context, cfg T) (tour.App, error) {
		lc := &lifecycle.Context{}
		ctx = lifecycle.NewContext(ctx, lc)

		base, err := builder.Build(ctx, cfg)
		if err != nil {
			return nil, joinHookErr(err, lc.PostRun().Run(ctx))
		}

		base = app.WithLifecycleHooks(base, app.Lifecycle{
			PostRun: lc.PostRun(),
		})
		return base, nil
	})
}

// onPostRun registers hook with the lifecycle.Context in ctx. Without one,
// the hook wraps the built App directly.
func onPostRun(ctx context.Context, base tour.App, hook lifecycle.Hook) tour.App {
	lc, ok := lifecycle.FromContext(ctx)
	if ok {
		lc.OnPostRun(hook)
		return base
	}
	return app.WithLifecycleHooks(base, app.Lifecycle{
		PostRun: hook,
	})
}

func joinHookErr(err, hookErr error) error {
	if hookErr == nil {
		return err
	}
	return errors.Join(err, hookErr)
}
