// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/xmidt-org/eventgate/clock"
	"github.com/xmidt-org/eventgate/events"
	"github.com/xmidt-org/eventgate/logging"
	"github.com/xmidt-org/eventgate/xviper"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	applicationName = "brushdemo"

	intervalFlag       = "interval"
	durationFlag       = "duration"
	stepFlag           = "step"
	delayFlag          = "delay"
	metricsAddressFlag = "metrics-address"

	startTimeout = 15 * time.Second
	stopTimeout  = 15 * time.Second
)

// Config is the drag simulation configuration
type Config struct {
	Interval       time.Duration
	Duration       time.Duration
	Step           float64
	MetricsAddress string
}

func newConfig(v *viper.Viper) (Config, error) {
	c := Config{
		Interval:       v.GetDuration(intervalFlag),
		Duration:       v.GetDuration(durationFlag),
		Step:           v.GetFloat64(stepFlag),
		MetricsAddress: v.GetString(metricsAddressFlag),
	}

	if c.Interval <= 0 || c.Duration <= 0 {
		return Config{}, errInvalidDrag
	}

	return c, nil
}

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet(applicationName, pflag.ContinueOnError)
	fs.StringP(xviper.DefaultFileFlag, "f", "", "the configuration file to use instead of searching for one")
	fs.Duration(intervalFlag, 5*time.Millisecond, "the time between brush movements")
	fs.Duration(durationFlag, 2*time.Second, "how long the brush is dragged")
	fs.Float64(stepFlag, 1.0, "how far the brush moves each interval")
	fs.Duration(delayFlag, 0, "the throttle window for renders, overriding events.delay")
	fs.String(metricsAddressFlag, "", "the address to serve prometheus metrics on, if any")
	return fs
}

func newViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v, err := xviper.New(
		xviper.ApplyDefaults(xviper.Defaults{
			"log.level":    "info",
			"log.encoding": logging.ConsoleEncoding,
		}),
		xviper.StdOptions(applicationName, fs),
		xviper.BindConfigFile(fs, xviper.DefaultFileFlag),
	)

	if err != nil {
		return nil, err
	}

	explicit := fs.Changed(xviper.DefaultFileFlag)
	if err := xviper.ReadInConfig(v, explicit); err != nil {
		return nil, err
	}

	// the flag wins over configuration
	if fs.Changed(delayFlag) {
		d, _ := fs.GetDuration(delayFlag)
		v.Set(events.EventsKey+"."+delayFlag, d)
	}

	return v, nil
}

func newDrag(g *events.Gate, c clock.Interface, l *zap.Logger, cfg Config, r *renderer) *Drag {
	return &Drag{
		gate:     g,
		clock:    c,
		logger:   l,
		interval: cfg.Interval,
		duration: cfg.Duration,
		quiet:    2 * g.Delay(),
		step:     cfg.Step,
		render:   r.Render,
	}
}

func newRenderer(l *zap.Logger) *renderer {
	return &renderer{logger: l}
}

func newMeasures(r *prometheus.Registry) (*events.Measures, error) {
	m, err := events.NewPrometheusMeasures(r, applicationName, "gate")
	if err != nil {
		return nil, err
	}

	return &m, nil
}

type runDragIn struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *zap.Logger
	Drag       *Drag
	Renderer   *renderer
}

// runDrag starts the drag when the application starts, and shuts the application down once
// the drag completes.
func runDrag(in runDragIn) {
	var (
		ctx, cancel = context.WithCancel(context.Background())
		done        = make(chan struct{})
	)

	in.Lifecycle.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer close(done)
				moves, err := in.Drag.Run(ctx)
				if err != nil && !errors.Is(err, context.Canceled) {
					in.Logger.Error("drag failed", zap.Error(err))
				}

				renders, last := in.Renderer.Rendered()
				in.Logger.Info(
					"drag summary",
					zap.Int("moves", moves),
					zap.Int("renders", renders),
					zap.Float64("lo", last.Lo),
					zap.Float64("hi", last.Hi),
				)

				if err := in.Shutdowner.Shutdown(); err != nil {
					in.Logger.Error("unable to shut down", zap.Error(err))
				}
			}()

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})
}

func brushdemo(arguments []string) int {
	fs := newFlagSet()
	if err := fs.Parse(arguments); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}

		fmt.Fprintf(os.Stderr, "Unable to parse command line: %s\n", err)
		return 1
	}

	v, err := newViper(fs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to load configuration: %s\n", err)
		return 1
	}

	app := fx.New(
		fx.Supply(v),
		logging.Provide(),
		events.Provide(),
		fx.Provide(
			newConfig,
			clock.System,
			newRegistry,
			newMeasures,
			newRenderer,
			newDrag,
		),
		fx.Invoke(
			runMetricsServer,
			runDrag,
		),
	)

	if err := app.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Unable to initialize %s: %s\n", applicationName, err)
		return 1
	}

	startCtx, cancel := context.WithTimeout(context.Background(), startTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Unable to start %s: %s\n", applicationName, err)
		return 1
	}

	<-app.Done()

	stopCtx, cancel := context.WithTimeout(context.Background(), stopTimeout)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Unable to stop %s: %s\n", applicationName, err)
		return 1
	}

	return 0
}

func main() {
	os.Exit(brushdemo(os.Args[1:]))
}
