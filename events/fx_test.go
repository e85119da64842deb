// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package events

import (
	"strings"
	"testing"
	"time"

	"github.com/go-kit/kit/metrics/provider"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xmidt-org/eventgate/clock"
	"github.com/xmidt-org/eventgate/clock/clocktest"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"
)

func testProvideDefaults(t *testing.T) {
	var (
		assert = assert.New(t)
		g      *Gate
		i      Interface
	)

	app := fxtest.New(t,
		Provide(),
		fx.Populate(&g, &i),
	)

	app.RequireStart()
	defer app.RequireStop()

	assert.NotNil(g)
	assert.Equal(g, i)
	assert.Equal(DefaultDelay, g.Delay())
}

func testProvideConfigured(t *testing.T) {
	var (
		assert = assert.New(t)
		fake   = clocktest.NewFake(epoch)
		tm     = newTestMeasures()
		m      = tm.Measures()
		v      = newViper(t, "events:\n  delay: 20\n")
		ran    bool
		g      *Gate
	)

	app := fxtest.New(t,
		fx.Supply(v, &m, zap.NewNop()),
		fx.Provide(func() clock.Interface { return fake }),
		Provide(),
		fx.Populate(&g),
	)

	app.RequireStart()
	defer app.RequireStop()

	assert.Equal(20*time.Millisecond, g.Delay())

	g.Throttle(func() { ran = true })
	fake.Add(20 * time.Millisecond)
	assert.True(ran)
	assert.Equal(1.0, tm.fired.Value())
}

func testProvideProvider(t *testing.T) {
	var (
		require = require.New(t)
		g       *Gate
	)

	app := fxtest.New(t,
		fx.Provide(func() provider.Provider { return provider.NewDiscardProvider() }),
		Provide(),
		fx.Populate(&g),
	)

	app.RequireStart()
	defer app.RequireStop()

	require.NotNil(g)
	require.NotNil(g.measures.Fired)
}

func testProvideInvalid(t *testing.T) {
	var (
		assert = assert.New(t)
		v      = viper.New()
		g      *Gate
	)

	v.Set("events.delay", "soon")
	app := fx.New(
		fx.NopLogger,
		fx.Supply(v),
		Provide(),
		fx.Populate(&g),
	)

	assert.Error(app.Err())
}

func testProvideEnvironment(t *testing.T) {
	var (
		assert = assert.New(t)
		v      = viper.New()
		g      *Gate
	)

	t.Setenv("GATETEST_EVENTS_DELAY", "12")
	v.SetEnvPrefix("gatetest")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	app := fxtest.New(t,
		fx.Supply(v),
		Provide(),
		fx.Populate(&g),
	)

	app.RequireStart()
	defer app.RequireStop()

	assert.Equal(12*time.Millisecond, g.Delay())
}

func TestProvide(t *testing.T) {
	t.Run("Defaults", testProvideDefaults)
	t.Run("Configured", testProvideConfigured)
	t.Run("Provider", testProvideProvider)
	t.Run("Environment", testProvideEnvironment)
	t.Run("Invalid", testProvideInvalid)
}
