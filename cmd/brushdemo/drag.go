// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/xmidt-org/eventgate/clock"
	"github.com/xmidt-org/eventgate/events"
	"go.uber.org/zap"
)

const brushWidth = 10.0

var errInvalidDrag = errors.New("the drag interval and duration must be positive")

// Range is the extent selected by a brush
type Range struct {
	Lo float64
	Hi float64
}

// Drag simulates a user dragging a brush across a chart.  Every tick moves the brush by one
// step and requests a render through the gate.
type Drag struct {
	gate     events.Interface
	clock    clock.Interface
	logger   *zap.Logger
	interval time.Duration
	duration time.Duration
	quiet    time.Duration
	step     float64
	render   func(Range)
}

// Move requests a render of the brush at position i
func (d *Drag) Move(i int) {
	lo := float64(i) * d.step
	r := Range{Lo: lo, Hi: lo + brushWidth}
	d.gate.Throttle(func() {
		d.render(r)
	})
}

// Run drags the brush until the duration elapses or ctx is canceled, then waits out the quiet
// period so that the final position renders.  It returns the number of moves made.
func (d *Drag) Run(ctx context.Context) (int, error) {
	var (
		ticker = d.clock.NewTicker(d.interval)
		stop   = d.clock.NewTimer(d.duration)
		start  = d.clock.Now()
		moves  int
	)

	defer ticker.Stop()
	defer stop.Stop()

	for {
		select {
		case <-ctx.Done():
			return moves, ctx.Err()

		case <-ticker.C():
			d.Move(moves)
			moves++

		case <-stop.C():
			d.clock.Sleep(d.quiet)
			d.logger.Info(
				"drag finished",
				zap.Int("moves", moves),
				zap.Duration("elapsed", d.clock.Now().Sub(start)),
			)

			return moves, nil
		}
	}
}

// renderer stands in for a chart.  It records what it drew.
type renderer struct {
	logger *zap.Logger

	lock  sync.Mutex
	count int
	last  Range
}

func (r *renderer) Render(rg Range) {
	r.lock.Lock()
	r.count++
	r.last = rg
	r.lock.Unlock()

	r.logger.Info("render", zap.Float64("lo", rg.Lo), zap.Float64("hi", rg.Hi))
}

// Rendered returns the number of renders and the most recent range drawn
func (r *renderer) Rendered() (int, Range) {
	r.lock.Lock()
	defer r.lock.Unlock()

	return r.count, r.last
}
