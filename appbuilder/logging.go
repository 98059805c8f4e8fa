// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package appbuilder

import (
	"context"
	"io"

	"github.com/z5labs/tour"
	"github.com/z5labs/tour/internal/logging"
	"github.com/z5labs/tour/lifecycle"

	"go.uber.org/zap"
)

// LoggingConfigurer is implemented by configs which describe logging.
type LoggingConfigurer interface {
	LoggingConfig() logging.Config
}

// Logging is a [tour.AppBuilder] middleware which creates a logger writing
// to w and makes it available to the wrapped builder through
// [logging.FromContext].
func Logging[T LoggingConfigurer](w io.Writer, builder tour.AppBuilder[T], fields ...zap.Field) tour.AppBuilder[T] {
	return tour.AppBuilderFunc[T](func(ctx context.Context, cfg T) (tour.App, error) {
		log := logging.New(cfg.LoggingConfig(), w, fields...)
		ctx = logging.NewContext(ctx, log)

		base, err := builder.Build(ctx, cfg)
		if err != nil {
			log.Error("failed to build app", zap.Error(err))
			_ = log.Sync()
			return nil, err
		}
		log.Debug("built app")

		return onPostRun(ctx, base, syncLogger(log)), nil
	})
}

func syncLogger(log *zap.Logger) lifecycle.Hook {
	return lifecycle.Named("logger sync", lifecycle.HookFunc(func(ctx context.Context) error {
		// Sync fails on terminals and pipes, neither of which buffer.
		_ = log.Sync()
		return nil
	}))
}
