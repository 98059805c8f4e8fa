// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package distance

import (
	"context"
	"fmt"
	"io"

	"github.com/z5labs/tour"
	"github.com/z5labs/tour/cli"
	"github.com/z5labs/tour/config"
	"github.com/z5labs/tour/internal/logging"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const tracerName = "github.com/z5labs/tour/distance"

// Config
type Config struct {
	cli.Config `config:",squash"`

	Kilometers float64 `config:"kilometers"`
	Miles      float64 `config:"miles"`
	Precision  int     `config:"precision"`
}

// Defaults adds one kilometre to one mile.
func Defaults() config.Map {
	return config.Map{
		"kilometers": 1.0,
		"miles":      1.0,
		"precision":  DefaultPrecision,
	}
}

// App prints the sum of a kilometre and a mile valued distance.
type App struct {
	out    io.Writer
	log    *zap.Logger
	tracer trace.Tracer
	km     Distance
	mi     Distance
	prec   int
}

// Builder returns a [tour.AppBuilder] for an [App] writing to out.
func Builder(out io.Writer) tour.AppBuilder[Config] {
	return tour.AppBuilderFunc[Config](func(ctx context.Context, cfg Config) (tour.App, error) {
		app := &App{
			out:    out,
			log:    logging.FromContext(ctx),
			tracer: otel.Tracer(tracerName),
			km:     Kilometers(cfg.Kilometers),
			mi:     MilesToKm(cfg.Miles),
			prec:   cfg.Precision,
		}
		return app, nil
	})
}

// Run implements the [tour.App] interface.
func (a *App) Run(ctx context.Context) error {
	_, span := a.tracer.Start(ctx, "App.Run")
	defer span.End()

	sum := a.km + a.mi
	span.SetAttributes(
		attribute.Float64("distance.kilometers", a.km.Km()),
		attribute.Float64("distance.miles_in_km", a.mi.Km()),
		attribute.Float64("distance.sum_km", sum.Km()),
	)
	a.log.Debug(
		"summed distances",
		zap.Float64("kilometers", a.km.Km()),
		zap.Float64("miles_in_km", a.mi.Km()),
		zap.Float64("sum_km", sum.Km()),
	)

	_, err := fmt.Fprintf(a.out, "Sum of dist: %s km\n", sum.Format(a.prec))
	return err
}
