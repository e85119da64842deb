// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package events

import (
	"sync"
	"time"

	"github.com/segmentio/ksuid"
	"github.com/xmidt-org/eventgate/clock"
	"github.com/xmidt-org/sallust"
	"go.uber.org/zap"
)

// DefaultDelay is the throttle window used by Throttle when no other delay has been configured.
const DefaultDelay = 40 * time.Millisecond

// Interface is the behavior of a throttle gate.
type Interface interface {
	// Trigger runs action immediately when delay is zero.  Otherwise, action becomes the pending
	// action and is run after delay elapses, but only if no later call to Trigger has replaced it.
	// A nil action is ignored.
	Trigger(action func(), delay time.Duration)

	// Throttle is Trigger using the gate's configured delay.
	Throttle(action func())

	// Current returns the most recently scheduled action, or nil if nothing has been scheduled.
	// The pending action is not cleared once it runs.
	Current() func()
}

// pending is the value held in a Gate's slot.  A new pending is allocated for every scheduled
// call, and supersession is decided by pointer identity.
type pending struct {
	id     ksuid.KSUID
	action func()
}

// Gate is the Interface implementation.  The zero value is not usable; use New.
type Gate struct {
	lock    sync.Mutex
	current *pending

	delay    time.Duration
	c        clock.Interface
	logger   *zap.Logger
	measures Measures
}

var _ Interface = (*Gate)(nil)

// New constructs a Gate.  With no options, the gate uses the system clock, DefaultDelay,
// sallust's default logger, and discards all metrics.
func New(options ...Option) *Gate {
	g := &Gate{
		delay:    DefaultDelay,
		c:        clock.System(),
		logger:   sallust.Default(),
		measures: Measures{}.orDiscard(),
	}

	for _, o := range options {
		o(g)
	}

	return g
}

// Delay returns the delay that Throttle uses
func (g *Gate) Delay() time.Duration {
	return g.delay
}

func (g *Gate) Trigger(action func(), delay time.Duration) {
	if action == nil {
		return
	}

	if delay == 0 {
		g.measures.Immediate.Add(1.0)
		action()
		return
	}

	p := &pending{
		id:     ksuid.New(),
		action: action,
	}

	g.lock.Lock()
	g.current = p
	g.lock.Unlock()

	g.measures.Scheduled.Add(1.0)
	g.measures.Outstanding.Add(1.0)
	g.logger.Debug("scheduled event", zap.Stringer("event", p.id), zap.Duration("delay", delay))
	g.c.AfterFunc(delay, func() {
		g.fire(p)
	})
}

func (g *Gate) Throttle(action func()) {
	g.Trigger(action, g.delay)
}

func (g *Gate) Current() func() {
	g.lock.Lock()
	defer g.lock.Unlock()

	if g.current != nil {
		return g.current.action
	}

	return nil
}

// fire is invoked by the clock when p's delay has elapsed.  The action runs outside the lock,
// so it may itself call Trigger.  A Trigger racing in between the identity check and the call
// does not stop this action; it only supersedes it for any later fire.
func (g *Gate) fire(p *pending) {
	g.measures.Outstanding.Add(-1.0)

	g.lock.Lock()
	latest := g.current == p
	g.lock.Unlock()

	if !latest {
		g.measures.Superseded.Add(1.0)
		g.logger.Debug("discarding superseded event", zap.Stringer("event", p.id))
		return
	}

	g.measures.Fired.Add(1.0)
	g.logger.Debug("firing event", zap.Stringer("event", p.id))
	p.action()
}
