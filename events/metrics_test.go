// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package events

import (
	"testing"
	"time"

	"github.com/go-kit/kit/metrics/provider"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xmidt-org/eventgate/clock/clocktest"
)

func TestMetrics(t *testing.T) {
	var (
		assert = assert.New(t)
		names  []string
	)

	for _, m := range Metrics() {
		assert.NotEmpty(m.Help)
		assert.Contains([]string{CounterType, GaugeType}, m.Type)
		names = append(names, m.Name)
	}

	assert.ElementsMatch(
		[]string{ImmediateCounter, ScheduledCounter, FiredCounter, SupersededCounter, OutstandingTimers},
		names,
	)
}

func TestNewMeasures(t *testing.T) {
	var (
		assert = assert.New(t)
		m      = NewMeasures(provider.NewDiscardProvider())
	)

	assert.NotNil(m.Immediate)
	assert.NotNil(m.Scheduled)
	assert.NotNil(m.Fired)
	assert.NotNil(m.Superseded)
	assert.NotNil(m.Outstanding)
}

// gathered returns the unlabeled value of each metric in the registry, keyed by fully qualified name
func gathered(t *testing.T, g prometheus.Gatherer) map[string]float64 {
	families, err := g.Gather()
	require.NoError(t, err)

	values := make(map[string]float64)
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				values[mf.GetName()] = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				values[mf.GetName()] = m.GetGauge().GetValue()
			}
		}
	}

	return values
}

func testNewPrometheusMeasuresSuccess(t *testing.T) {
	var (
		assert   = assert.New(t)
		require  = require.New(t)
		registry = prometheus.NewPedanticRegistry()
		fake     = clocktest.NewFake(epoch)
	)

	m, err := NewPrometheusMeasures(registry, "brush", "gate")
	require.NoError(err)

	g := New(WithClock(fake), WithMeasures(m))
	g.Trigger(func() {}, 0)
	g.Trigger(func() {}, 10*time.Millisecond)
	g.Trigger(func() {}, 10*time.Millisecond)
	g.Trigger(func() {}, 10*time.Millisecond)

	values := gathered(t, registry)
	assert.Equal(3.0, values["brush_gate_event_outstanding_timers"])

	fake.Add(time.Second)
	values = gathered(t, registry)
	assert.Equal(1.0, values["brush_gate_event_immediate_count"])
	assert.Equal(3.0, values["brush_gate_event_scheduled_count"])
	assert.Equal(1.0, values["brush_gate_event_fired_count"])
	assert.Equal(2.0, values["brush_gate_event_superseded_count"])
	assert.Equal(0.0, values["brush_gate_event_outstanding_timers"])
}

func testNewPrometheusMeasuresDuplicate(t *testing.T) {
	var (
		assert   = assert.New(t)
		require  = require.New(t)
		registry = prometheus.NewRegistry()
	)

	_, err := NewPrometheusMeasures(registry, "brush", "gate")
	require.NoError(err)

	_, err = NewPrometheusMeasures(registry, "brush", "gate")
	assert.Error(err)
}

func TestNewPrometheusMeasures(t *testing.T) {
	t.Run("Success", testNewPrometheusMeasuresSuccess)
	t.Run("Duplicate", testNewPrometheusMeasuresDuplicate)
}
