// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package telemetry builds the OpenTelemetry tracer provider used by every program.
package telemetry

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/z5labs/tour/lifecycle"

	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Config
type Config struct {
	Enabled         bool          `config:"enabled"`
	ServiceName     string        `config:"service_name"`
	ShutdownTimeout time.Duration `config:"shutdown_timeout"`
}

// ExporterError occurs when the span exporter can't be created.
type ExporterError struct {
	Cause error
}

// Error implements the error interface.
func (e ExporterError) Error() string {
	return fmt.Sprintf("failed to create span exporter: %s", e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e ExporterError) Unwrap() error {
	return e.Cause
}

// NewTracerProvider returns a no-op provider unless tracing is enabled,
// in which case spans are written synchronously to w as JSON. The
// returned hook shuts the provider down and must be run once the
// program is done.
func NewTracerProvider(cfg Config, w io.Writer) (trace.TracerProvider, lifecycle.Hook, error) {
	if !cfg.Enabled {
		return noop.NewTracerProvider(), lifecycle.MultiHook(), nil
	}

	exp, err := stdouttrace.New(
		stdouttrace.WithWriter(w),
		stdouttrace.WithPrettyPrint(),
	)
	if err != nil {
		return nil, nil, ExporterError{Cause: err}
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exp),
		sdktrace.WithResource(resource.NewSchemaless(
			semconv.ServiceName(cfg.ServiceName),
		)),
	)

	shutdown := lifecycle.HookFunc(func(ctx context.Context) error {
		if cfg.ShutdownTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, cfg.ShutdownTimeout)
			defer cancel()
		}
		return tp.Shutdown(ctx)
	})
	return tp, lifecycle.Named("tracer shutdown", shutdown), nil
}
