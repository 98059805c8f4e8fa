// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package display demonstrates a single generic print operation with
// more specific layouts for strings and key ordered maps.
//
// [Print] handles any [Iterable]. [String] and [OrderedMap] both implement
// [Printer] so printing them through [Print] gives the same result as
// calling [PrintString] or [PrintMap] directly.
//
// The layout is picked by the dynamic type of the container, not by the
// static type of the argument: a [String] held in an Iterable[rune]
// variable is still printed without separators.
package display

import (
	"bytes"
	"context"
	"io"

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

const tracerName = "github.com/z5labs/tour/display"

// FillConfig describes a container holding Size copies of Fill.
type FillConfig struct {
	Size int `config:"size"`
	Fill int `config:"fill"`
}

// Config
type Config struct {
	cli.Config `config:",squash"`

	Vector FillConfig     `config:"vector"`
	List   FillConfig     `config:"list"`
	Set    []int          `config:"set"`
	Text   string         `config:"text"`
	Names  map[int]string `config:"names"`
}

// Defaults returns the containers printed when nothing is configured.
// Entries under names are merged with any configured ones.
func Defaults() config.Map {
	return config.Map{
		"vector": map[string]any{
			"size": 10,
			"fill": 1,
		},
		"list": map[string]any{
			"size": 10,
			"fill": 2,
		},
		"set":  []int{6, 3, 9, 1, 5},
		"text": "string test",
		"names": map[string]any{
			"1": "one",
			"2": "two",
			"9": "nine",
		},
	}
}

type section struct {
	name  string
	print func(io.Writer) error
}

func printSection[T any](name string, c Iterable[T]) section {
	return section{
		name: name,
		print: func(w io.Writer) error {
			return Print(w, c)
		},
	}
}

// App prints a vector, a list, a set, a string and a map, one per line.
type App struct {
	out      io.Writer
	log      *zap.Logger
	tracer   trace.Tracer
	sections []section
}

// Builder returns a [tour.AppBuilder] for an [App] writing to out.
func Builder(out io.Writer) tour.AppBuilder[Config] {
	return tour.AppBuilderFunc[Config](func(ctx context.Context, cfg Config) (tour.App, error) {
		vec := NewVector(cfg.Vector.Size, cfg.Vector.Fill)
		lst := NewList(cfg.List.Size, cfg.List.Fill)
		set := NewSet(cfg.Set...)
		text := String(cfg.Text)
		names := OrderedMap[int, string](cfg.Names)

		app := &App{
			out:    out,
			log:    logging.FromContext(ctx),
			tracer: otel.Tracer(tracerName),
			sections: []section{
				printSection("vector", vec),
				printSection("list", lst),
				printSection("set", set),
				printSection("string", text),
				printSection("map", names),
			},
		}
		return app, nil
	})
}

// Run implements the [tour.App] interface.
func (a *App) Run(ctx context.Context) error {
	ctx, span := a.tracer.Start(ctx, "App.Run")
	defer span.End()

	var buf bytes.Buffer
	for _, s := range a.sections {
		err := a.print(ctx, &buf, s)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "print failed")
			return err
		}
	}

	_, err := buf.WriteTo(a.out)
	return err
}

func (a *App) print(ctx context.Context, w *bytes.Buffer, s section) error {
	_, span := a.tracer.Start(ctx, "App.print", trace.WithAttributes(
		attribute.String("display.container", s.name),
	))
	defer span.End()

	before := w.Len()
	err := s.print(w)
	if err != nil {
		return err
	}

	a.log.Debug("printed container", zap.String("container", s.name), zap.Int("bytes", w.Len()-before))
	return nil
}
