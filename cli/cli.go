// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package cli turns a [tour.AppBuilder] into a cobra command.
//
// Every command accepts the same flags:
//
//	-c, --config PATH    YAML, JSON or TOML file applied over the program defaults
//	    --log-level LVL  minimum level of the logs written to stderr
//	    --otel           write trace spans to stderr
//	    --set KEY=VALUE  override a single config value, may be repeated
//
// The log level and tracing switch can also be given through the
// environment as <PROGRAM>_LOGGING_LEVEL and <PROGRAM>_OTEL_ENABLED.
//
// Config files are rendered as text/templates first. Besides env they
// may use default, which replaces an empty value:
//
//	fill: {{ env "DISPLAY_FILL" | default "7" }}
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/z5labs/tour"
	"github.com/z5labs/tour/app"
	"github.com/z5labs/tour/appbuilder"
	"github.com/z5labs/tour/config"
	"github.com/z5labs/tour/internal/logging"
	"github.com/z5labs/tour/internal/telemetry"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Config holds the settings shared by every program. Program configs
// embed it with `config:",squash"`.
type Config struct {
	Logging logging.Config   `config:"logging"`
	OTel    telemetry.Config `config:"otel"`
}

// LoggingConfig implements the [appbuilder.LoggingConfigurer] interface.
func (c Config) LoggingConfig() logging.Config {
	return c.Logging
}

// OTelConfig implements the [appbuilder.OTelConfigurer] interface.
func (c Config) OTelConfig() telemetry.Config {
	return c.OTel
}

// Configurer is implemented by any config embedding [Config].
type Configurer interface {
	appbuilder.LoggingConfigurer
	appbuilder.OTelConfigurer
}

// UnsupportedConfigFormatError occurs when the --config file extension
// is not one of .yaml, .yml, .json or .toml.
type UnsupportedConfigFormatError struct {
	Path string
}

// Error implements the error interface.
func (e UnsupportedConfigFormatError) Error() string {
	return fmt.Sprintf("unsupported config file format: %s", e.Path)
}

type options struct {
	short    string
	defaults []config.Source
}

// Option configures the command returned by [New].
type Option func(*options)

// Short sets the one line description shown in the command help.
func Short(s string) Option {
	return func(o *options) {
		o.short = s
	}
}

// Defaults adds program defaults. They are applied after the shared
// defaults and before any user provided source.
func Defaults(srcs ...config.Source) Option {
	return func(o *options) {
		o.defaults = append(o.defaults, srcs...)
	}
}

func commonDefaults(name string) config.Map {
	return config.Map{
		"logging": map[string]any{
			"level": "warn",
		},
		"otel": map[string]any{
			"enabled":          false,
			"service_name":     name,
			"shutdown_timeout": "5s",
		},
	}
}

// New returns a cobra command which reads the config sources, builds the
// app returned by build and runs it. The app writes its output to the
// command's stdout while logs and traces go to the command's stderr.
func New[T Configurer](name string, build func(io.Writer) tour.AppBuilder[T], opts ...Option) *cobra.Command {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	v := viper.New()
	v.SetEnvPrefix(strings.ToUpper(name))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	var (
		cfgPath   string
		overrides []string
	)

	cmd := &cobra.Command{
		Use:          name,
		Short:        o.short,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			srcs := tour.Sources{
				Defaults:    append([]config.Source{commonDefaults(name)}, o.defaults...),
				Environment: config.FromViper(v),
				Overrides:   config.Overrides(overrides),
			}
			if cfgPath != "" {
				src, err := fileSource(cfgPath)
				if err != nil {
					return err
				}
				srcs.File = src
			}

			builder := withRuntime(name, build(cmd.OutOrStdout()), cmd.ErrOrStderr())
			return tour.Run(cmd.Context(), builder, srcs)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfgPath, "config", "c", "", "YAML, JSON or TOML config file")
	flags.StringArrayVar(&overrides, "set", nil, "override a config value, e.g. --set labels=true")
	flags.String("log-level", "warn", "minimum level of the logs written to stderr")
	flags.Bool("otel", false, "write trace spans to stderr")

	// Lookup can't return nil here since the flags were just defined.
	_ = v.BindPFlag("logging.level", flags.Lookup("log-level"))
	_ = v.BindPFlag("otel.enabled", flags.Lookup("otel"))

	return cmd
}

// Main executes the command returned by [New] and exits the process
// with a non-zero status if it fails.
func Main[T Configurer](name string, build func(io.Writer) tour.AppBuilder[T], opts ...Option) {
	err := New(name, build, opts...).Execute()
	if err != nil {
		os.Exit(1)
	}
}

func fileSource(path string) (config.Source, error) {
	format, ok := config.FormatOf(path)
	if !ok {
		return nil, UnsupportedConfigFormatError{Path: path}
	}

	r := config.RenderTextTemplate(
		config.NewFileReader(os.DirFS(filepath.Dir(path)), filepath.Base(path)),
		config.TemplateFunc("default", orDefault),
	)
	return config.Decode(format, r), nil
}

// orDefault backs the "default" template func, e.g.
// {{ env "DISPLAY_FILL" | default "7" }}.
func orDefault(def, v string) string {
	if v == "" {
		return def
	}
	return v
}

func withRuntime[T Configurer](name string, builder tour.AppBuilder[T], stderr io.Writer) tour.AppBuilder[T] {
	builder = appbuilder.OTel(stderr, builder)
	builder = appbuilder.Logging(
		stderr,
		builder,
		zap.String("program", name),
		zap.String("run_id", uuid.NewString()),
	)
	builder = appbuilder.LifecycleContext(builder)
	builder = appbuilder.Recover(builder)

	return tour.AppBuilderFunc[T](func(ctx context.Context, cfg T) (tour.App, error) {
		a, err := builder.Build(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return app.Recover(app.WithSignalNotifications(a, os.Interrupt)), nil
	})
}
