// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package events

import (
	"testing"
	"time"

	"github.com/go-kit/kit/metrics/discard"
	"github.com/go-kit/kit/metrics/generic"
	"github.com/stretchr/testify/assert"
	"github.com/xmidt-org/eventgate/clock"
	"github.com/xmidt-org/eventgate/clock/clocktest"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	var (
		assert = assert.New(t)
		g      = New()
	)

	assert.Equal(DefaultDelay, g.Delay())
	assert.Equal(clock.System(), g.c)
	assert.NotNil(g.logger)
	assert.NotNil(g.measures.Immediate)
	assert.NotNil(g.measures.Outstanding)
	assert.Nil(g.Current())
}

func testWithDelayDefault(t *testing.T) {
	var (
		assert = assert.New(t)
		g      = new(Gate)
	)

	WithDelay(0)(g)
	assert.Equal(DefaultDelay, g.delay)

	WithDelay(-time.Second)(g)
	assert.Equal(DefaultDelay, g.delay)
}

func testWithDelayCustom(t *testing.T) {
	var (
		assert = assert.New(t)
		g      = new(Gate)
	)

	WithDelay(31 * time.Minute)(g)
	assert.Equal(31*time.Minute, g.delay)
}

func TestWithDelay(t *testing.T) {
	t.Run("Default", testWithDelayDefault)
	t.Run("Custom", testWithDelayCustom)
}

func testWithClockDefault(t *testing.T) {
	var (
		assert = assert.New(t)
		g      = new(Gate)
	)

	WithClock(nil)(g)
	assert.NotNil(g.c)
}

func testWithClockCustom(t *testing.T) {
	var (
		assert = assert.New(t)
		cl     = new(clocktest.Mock)
		g      = new(Gate)
	)

	WithClock(cl)(g)
	assert.Equal(cl, g.c)
}

func TestWithClock(t *testing.T) {
	t.Run("Default", testWithClockDefault)
	t.Run("Custom", testWithClockCustom)
}

func TestWithClockMock(t *testing.T) {
	var (
		assert = assert.New(t)
		cl     = new(clocktest.Mock)
		timer  = new(clocktest.MockTimer)
		g      = New(WithClock(cl))
	)

	cl.OnAfterFunc(15*time.Millisecond, timer).Once()
	g.Trigger(func() {}, 15*time.Millisecond)

	assert.NotNil(g.Current())
	cl.AssertExpectations(t)
	timer.AssertExpectations(t)
}

func testWithLoggerDefault(t *testing.T) {
	var (
		assert = assert.New(t)
		g      = new(Gate)
	)

	WithLogger(nil)(g)
	assert.NotNil(g.logger)
}

func testWithLoggerCustom(t *testing.T) {
	var (
		assert = assert.New(t)
		l      = zap.NewNop()
		g      = new(Gate)
	)

	WithLogger(l)(g)
	assert.Equal(l, g.logger)
}

func TestWithLogger(t *testing.T) {
	t.Run("Default", testWithLoggerDefault)
	t.Run("Custom", testWithLoggerCustom)
}

func TestWithMeasures(t *testing.T) {
	var (
		assert = assert.New(t)
		fired  = generic.NewCounter(FiredCounter)
		g      = new(Gate)
	)

	WithMeasures(Measures{Fired: fired})(g)
	assert.Equal(fired, g.measures.Fired)
	assert.Equal(discard.NewCounter(), g.measures.Immediate)
	assert.Equal(discard.NewCounter(), g.measures.Scheduled)
	assert.Equal(discard.NewCounter(), g.measures.Superseded)
	assert.Equal(discard.NewGauge(), g.measures.Outstanding)
}
