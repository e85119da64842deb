// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/justinas/alice"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const metricsPath = "/metrics"

// newRegistry creates the registry for this process, including the standard runtime collectors
func newRegistry() *prometheus.Registry {
	r := prometheus.NewRegistry()
	r.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return r
}

func instrument(operation string) alice.Constructor {
	return func(next http.Handler) http.Handler {
		return otelhttp.NewHandler(next, operation)
	}
}

// newMetricsHandler exposes the registry at metricsPath
func newMetricsHandler(g prometheus.Gatherer) http.Handler {
	router := mux.NewRouter()
	router.Handle(
		metricsPath,
		alice.New(instrument("metrics")).Then(promhttp.HandlerFor(g, promhttp.HandlerOpts{})),
	).Methods(http.MethodGet)

	return router
}

type metricsServerIn struct {
	fx.In

	Lifecycle fx.Lifecycle
	Logger    *zap.Logger
	Registry  *prometheus.Registry
	Config    Config
}

// runMetricsServer serves metrics for the lifetime of the application.  Nothing is served
// unless a metrics address is configured.
func runMetricsServer(in metricsServerIn) {
	if len(in.Config.MetricsAddress) == 0 {
		return
	}

	server := &http.Server{
		Addr:    in.Config.MetricsAddress,
		Handler: newMetricsHandler(in.Registry),
	}

	in.Lifecycle.Append(fx.Hook{
		OnStart: func(context.Context) error {
			l, err := net.Listen("tcp", server.Addr)
			if err != nil {
				return err
			}

			in.Logger.Info("serving metrics", zap.Stringer("address", l.Addr()), zap.String("path", metricsPath))
			go func() {
				if err := server.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
					in.Logger.Error("metrics server failed", zap.Error(err))
				}
			}()

			return nil
		},
		OnStop: server.Shutdown,
	})
}
