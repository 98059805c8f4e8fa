// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package lifecycle

import (
	"bytes"
	"context"
	"fmt"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func ExampleContext() {
	var logs bytes.Buffer
	log := zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(zapcore.EncoderConfig{MessageKey: "msg"}),
		zapcore.AddSync(&logs),
		zapcore.InfoLevel,
	))

	spans := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(spans))

	var lc Context
	lc.OnPostRun(Named("logger sync", HookFunc(func(ctx context.Context) error {
		fmt.Println("syncing logger")
		return log.Sync()
	})))
	lc.OnPostRun(Named("tracer shutdown", HookFunc(func(ctx context.Context) error {
		fmt.Println("shutting down tracer")
		return tp.Shutdown(ctx)
	})))

	ctx := NewContext(context.Background(), &lc)
	tracer := tp.Tracer("lifecycle_example")

	_, span := tracer.Start(ctx, "traverse")
	log.Info("traversed vector")
	span.End()

	c, ok := FromContext(ctx)
	if !ok {
		fmt.Println("missing lifecycle context")
		return
	}

	err := c.PostRun().Run(ctx)
	if err != nil {
		fmt.Println(err)
		return
	}

	_, late := tp.Tracer("lifecycle_example").Start(ctx, "late")
	fmt.Print(logs.String())
	fmt.Println(len(spans.Ended()), late.IsRecording())

	// Output: shutting down tracer
	// syncing logger
	// traversed vector
	// 1 false
}

func ExampleMultiHook() {
	var logs bytes.Buffer
	log := zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(zapcore.EncoderConfig{MessageKey: "msg"}),
		zapcore.AddSync(&logs),
		zapcore.DebugLevel,
	))
	tp := sdktrace.NewTracerProvider()

	hook := MultiHook(
		Named("tracer shutdown", HookFunc(tp.Shutdown)),
		Named("logger sync", HookFunc(func(context.Context) error {
			log.Debug("flushing")
			return log.Sync()
		})),
	)

	err := hook.Run(context.Background())
	fmt.Println(err, logs.String())

	// Output: <nil> flushing
}
