// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package events

import (
	"time"

	"github.com/xmidt-org/eventgate/clock"
	"github.com/xmidt-org/sallust"
	"go.uber.org/zap"
)

// Option is a configuration option for a Gate
type Option func(*Gate)

// WithDelay sets the delay used by Throttle.  A nonpositive value sets DefaultDelay.
func WithDelay(d time.Duration) Option {
	return func(g *Gate) {
		if d > 0 {
			g.delay = d
		} else {
			g.delay = DefaultDelay
		}
	}
}

// WithClock sets the clock used to schedule pending actions.  If nil, the system clock is used.
func WithClock(c clock.Interface) Option {
	return func(g *Gate) {
		if c != nil {
			g.c = c
		} else {
			g.c = clock.System()
		}
	}
}

// WithLogger sets the zap logger for the gate.  If nil, sallust.Default() is used.
func WithLogger(l *zap.Logger) Option {
	return func(g *Gate) {
		if l != nil {
			g.logger = l
		} else {
			g.logger = sallust.Default()
		}
	}
}

// WithMeasures sets the metrics for the gate.  Any unset instrument discards its values.
func WithMeasures(m Measures) Option {
	return func(g *Gate) {
		g.measures = m.orDiscard()
	}
}
