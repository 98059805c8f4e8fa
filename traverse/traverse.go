// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package traverse demonstrates seven equivalent ways of walking a sequence.
// Every mechanism produces the same values in the same order and none of
// them mutate the sequence.
package traverse

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/z5labs/tour"
	"github.com/z5labs/tour/cli"
	"github.com/z5labs/tour/config"
	"github.com/z5labs/tour/internal/logging"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const tracerName = "github.com/z5labs/tour/traverse"

// Config
type Config struct {
	cli.Config `config:",squash"`

	Values     []int    `config:"values"`
	Mechanisms []string `config:"mechanisms"`
	Labels     bool     `config:"labels"`
}

// Defaults walks [1, 2, 3] with every mechanism, unlabelled.
func Defaults() config.Map {
	return config.Map{
		"values":     []int{1, 2, 3},
		"mechanisms": Names(),
		"labels":     false,
	}
}

// App prints the configured values once per mechanism, one value per line.
type App struct {
	out        io.Writer
	log        *zap.Logger
	tracer     trace.Tracer
	values     []int
	mechanisms []Mechanism[int]
	labels     bool
}

// Builder returns a [tour.AppBuilder] for an [App] writing to out.
func Builder(out io.Writer) tour.AppBuilder[Config] {
	return tour.AppBuilderFunc[Config](func(ctx context.Context, cfg Config) (tour.App, error) {
		mechanisms := make([]Mechanism[int], 0, len(cfg.Mechanisms))
		for _, name := range cfg.Mechanisms {
			m, err := Lookup[int](name)
			if err != nil {
				return nil, err
			}
			mechanisms = append(mechanisms, m)
		}

		app := &App{
			out:        out,
			log:        logging.FromContext(ctx),
			tracer:     otel.Tracer(tracerName),
			values:     slices.Clone(cfg.Values),
			mechanisms: mechanisms,
			labels:     cfg.Labels,
		}
		return app, nil
	})
}

// Run implements the [tour.App] interface.
func (a *App) Run(ctx context.Context) error {
	ctx, span := a.tracer.Start(ctx, "App.Run", trace.WithAttributes(
		attribute.IntSlice("traverse.values", a.values),
	))
	defer span.End()

	for _, m := range a.mechanisms {
		err := a.walk(ctx, m)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "walk failed")
			return err
		}
	}
	return nil
}

func (a *App) walk(ctx context.Context, m Mechanism[int]) error {
	_, span := a.tracer.Start(ctx, "App.walk", trace.WithAttributes(
		attribute.String("traverse.mechanism", m.Name),
	))
	defer span.End()

	var buf bytes.Buffer
	if a.labels {
		fmt.Fprintf(&buf, "# %s\n", m.Name)
	}

	var n int
	err := m.Walk(a.values, func(v int) {
		n++
		fmt.Fprintln(&buf, v)
	})
	if err != nil {
		a.log.Error("failed to walk values", zap.String("mechanism", m.Name), zap.Error(err))
		return err
	}

	_, err = buf.WriteTo(a.out)
	if err != nil {
		return err
	}

	a.log.Debug("walked values", zap.String("mechanism", m.Name), zap.Int("visited", n))
	return nil
}
