// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package logging builds the zap loggers used by every program.
package logging

import (
	"context"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config
type Config struct {
	Level zapcore.Level `config:"level"`
}

// New returns a console formatted logger writing to w. Programs pass
// stderr here since stdout carries their actual output.
func New(cfg Config, w io.Writer, fields ...zap.Field) *zap.Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(w),
		cfg.Level,
	)
	return zap.New(core).With(fields...)
}

type contextKey struct{}

// NewContext returns a copy of ctx carrying log.
func NewContext(ctx context.Context, log *zap.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, log)
}

// FromContext returns the logger stored by [NewContext] or a no-op logger.
func FromContext(ctx context.Context) *zap.Logger {
	log, ok := ctx.Value(contextKey{}).(*zap.Logger)
	if !ok || log == nil {
		return zap.NewNop()
	}
	return log
}
