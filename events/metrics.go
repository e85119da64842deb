// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package events

import (
	"fmt"

	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"
	gokitprometheus "github.com/go-kit/kit/metrics/prometheus"
	"github.com/go-kit/kit/metrics/provider"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	ImmediateCounter  = "event_immediate_count"
	ScheduledCounter  = "event_scheduled_count"
	FiredCounter      = "event_fired_count"
	SupersededCounter = "event_superseded_count"
	OutstandingTimers = "event_outstanding_timers"
)

const (
	CounterType = "counter"
	GaugeType   = "gauge"
)

// Metric describes a single metric exposed by a Gate
type Metric struct {
	Name string
	Type string
	Help string
}

// Metrics returns the metrics a Gate reports
func Metrics() []Metric {
	return []Metric{
		{
			Name: ImmediateCounter,
			Type: CounterType,
			Help: "Count of triggered events executed without delay",
		},
		{
			Name: ScheduledCounter,
			Type: CounterType,
			Help: "Count of triggered events scheduled to run after a delay",
		},
		{
			Name: FiredCounter,
			Type: CounterType,
			Help: "Count of scheduled events that ran",
		},
		{
			Name: SupersededCounter,
			Type: CounterType,
			Help: "Count of scheduled events discarded because a later event replaced them",
		},
		{
			Name: OutstandingTimers,
			Type: GaugeType,
			Help: "The number of scheduled events whose timers have not fired yet",
		},
	}
}

// Measures holds the runtime metric objects for a Gate
type Measures struct {
	Immediate   metrics.Counter
	Scheduled   metrics.Counter
	Fired       metrics.Counter
	Superseded  metrics.Counter
	Outstanding metrics.Gauge
}

// NewMeasures constructs a Measures given a go-kit metrics Provider
func NewMeasures(p provider.Provider) Measures {
	return Measures{
		Immediate:   p.NewCounter(ImmediateCounter),
		Scheduled:   p.NewCounter(ScheduledCounter),
		Fired:       p.NewCounter(FiredCounter),
		Superseded:  p.NewCounter(SupersededCounter),
		Outstanding: p.NewGauge(OutstandingTimers),
	}
}

// NewPrometheusMeasures registers every metric from Metrics with the given registerer and
// returns go-kit wrappers around them.
func NewPrometheusMeasures(r prometheus.Registerer, namespace, subsystem string) (Measures, error) {
	var (
		counters = make(map[string]metrics.Counter)
		gauges   = make(map[string]metrics.Gauge)
	)

	for _, m := range Metrics() {
		switch m.Type {
		case CounterType:
			cv := prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      m.Name,
				Help:      m.Help,
			}, []string{})

			if err := r.Register(cv); err != nil {
				return Measures{}, fmt.Errorf("unable to register %s: %w", m.Name, err)
			}

			counters[m.Name] = gokitprometheus.NewCounter(cv)

		case GaugeType:
			gv := prometheus.NewGaugeVec(prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      m.Name,
				Help:      m.Help,
			}, []string{})

			if err := r.Register(gv); err != nil {
				return Measures{}, fmt.Errorf("unable to register %s: %w", m.Name, err)
			}

			gauges[m.Name] = gokitprometheus.NewGauge(gv)

		default:
			return Measures{}, fmt.Errorf("unsupported metric type %q for %s", m.Type, m.Name)
		}
	}

	return Measures{
		Immediate:   counters[ImmediateCounter],
		Scheduled:   counters[ScheduledCounter],
		Fired:       counters[FiredCounter],
		Superseded:  counters[SupersededCounter],
		Outstanding: gauges[OutstandingTimers],
	}, nil
}

// orDiscard fills in any missing instrument with a discarding one
func (m Measures) orDiscard() Measures {
	if m.Immediate == nil {
		m.Immediate = discard.NewCounter()
	}

	if m.Scheduled == nil {
		m.Scheduled = discard.NewCounter()
	}

	if m.Fired == nil {
		m.Fired = discard.NewCounter()
	}

	if m.Superseded == nil {
		m.Superseded = discard.NewCounter()
	}

	if m.Outstanding == nil {
		m.Outstanding = discard.NewGauge()
	}

	return m
}
