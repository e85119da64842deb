// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package events

import (
	"github.com/go-kit/kit/metrics/provider"
	"github.com/spf13/viper"
	"github.com/xmidt-org/eventgate/clock"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// GateIn holds the optional dependencies of a Gate built by uber/fx
type GateIn struct {
	fx.In

	Logger *zap.Logger     `optional:"true"`
	Clock  clock.Interface `optional:"true"`
	Viper  *viper.Viper    `optional:"true"`

	// Measures takes precedence over Provider when both are supplied
	Measures *Measures         `optional:"true"`
	Provider provider.Provider `optional:"true"`
}

// NewGateIn builds a Gate from injected dependencies, reading configuration from
// the EventsKey subtree of the injected Viper with FromRoot.
func NewGateIn(in GateIn) (*Gate, error) {
	o, err := FromRoot(in.Viper)
	if err != nil {
		return nil, err
	}

	options := []Option{
		WithLogger(in.Logger),
		WithClock(in.Clock),
	}

	switch {
	case in.Measures != nil:
		options = append(options, WithMeasures(*in.Measures))

	case in.Provider != nil:
		options = append(options, WithMeasures(NewMeasures(in.Provider)))
	}

	return o.NewGate(options...), nil
}

// Provide supplies both a *Gate and its Interface to an fx application
func Provide() fx.Option {
	return fx.Provide(
		NewGateIn,
		func(g *Gate) Interface {
			return g
		},
	)
}
