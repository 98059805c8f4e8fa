// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package appbuilder

import (
	"context"
	"io"

	"github.com/z5labs/tour"
	"github.com/z5labs/tour/internal/telemetry"

	"go.opentelemetry.io/otel"
)

// OTelConfigurer is implemented by configs which describe how tracing
// should be set up.
type OTelConfigurer interface {
	OTelConfig() telemetry.Config
}

// OTel is a [tour.AppBuilder] middleware which installs the global
// tracer provider before building. Spans are written to w.
// The provider is shut down once the built [tour.App] stops running.
func OTel[T OTelConfigurer](w io.Writer, builder tour.AppBuilder[T]) tour.AppBuilder[T] {
	return tour.AppBuilderFunc[T](func(ctx context.Context, cfg T) (tour.App, error) {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		tp, shutdown, err := telemetry.NewTracerProvider(cfg.OTelConfig(), w)
		if err != nil {
			return nil, err
		}
		otel.SetTracerProvider(tp)

		base, err := builder.Build(ctx, cfg)
		if err != nil {
			return nil, joinHookErr(err, shutdown.Run(ctx))
		}
		return onPostRun(ctx, base, shutdown), nil
	})
}
