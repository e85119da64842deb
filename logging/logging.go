// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"fmt"

	"github.com/spf13/viper"
	"github.com/xmidt-org/sallust"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

const (
	// LoggingKey is the Viper subkey under which logging should be stored.
	// FromViper *does not* assume this key.
	LoggingKey = "log"

	JSONEncoding    = "json"
	ConsoleEncoding = "console"
)

// Options stores the configuration of a zap Logger
type Options struct {
	// Level is the minimum level to output: debug, info, warn, error.  The empty string means info.
	Level string `json:"level"`

	// Development switches to zap's development defaults, which include stack traces on warnings.
	Development bool `json:"development"`

	// Encoding is either "json" or "console".  If unset, the encoding follows Development.
	Encoding string `json:"encoding"`

	// OutputPaths are zap sink URLs or file paths.  If unset, logs go to stderr.
	OutputPaths []string `json:"outputPaths"`
}

// New creates a zap Logger from a set of options.  The options object can be nil,
// in which case sallust's default logger is returned.
func New(o *Options) (*zap.Logger, error) {
	if o == nil {
		return sallust.Default(), nil
	}

	config := zap.NewProductionConfig()
	if o.Development {
		config = zap.NewDevelopmentConfig()
	}

	if len(o.Level) > 0 {
		level, err := zap.ParseAtomicLevel(o.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", o.Level, err)
		}

		config.Level = level
	}

	switch o.Encoding {
	case "":
	case JSONEncoding, ConsoleEncoding:
		config.Encoding = o.Encoding
	default:
		return nil, fmt.Errorf("unsupported log encoding %q", o.Encoding)
	}

	if len(o.OutputPaths) > 0 {
		config.OutputPaths = append([]string{}, o.OutputPaths...)
	}

	return config.Build()
}

// Sub returns the standard child Viper, using LoggingKey, for this package.
// If passed nil, this function returns nil.
func Sub(v *viper.Viper) *viper.Viper {
	if v != nil {
		return v.Sub(LoggingKey)
	}

	return nil
}

// FromViper produces an Options from a (possibly nil) Viper instance.
// Callers should use FromViper(Sub(v)) if the standard subkey is desired.
func FromViper(v *viper.Viper) (*Options, error) {
	o := new(Options)
	if v != nil {
		if err := v.Unmarshal(o); err != nil {
			return nil, err
		}
	}

	return o, nil
}

// LoggerIn is the set of optional dependencies for an fx-provided logger
type LoggerIn struct {
	fx.In

	Viper *viper.Viper `optional:"true"`
}

// NewLoggerIn builds the application logger from the LoggingKey subtree of the injected Viper.
func NewLoggerIn(in LoggerIn) (*zap.Logger, error) {
	o, err := FromViper(Sub(in.Viper))
	if err != nil {
		return nil, err
	}

	return New(o)
}

// Provide supplies a *zap.Logger and routes fx's own events through it
func Provide() fx.Option {
	return fx.Options(
		fx.Provide(NewLoggerIn),
		fx.WithLogger(func(l *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: l}
		}),
	)
}
