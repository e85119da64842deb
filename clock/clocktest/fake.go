// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package clocktest

import (
	"sync"
	"time"

	"github.com/xmidt-org/eventgate/clock"
)

// Fake is a manually driven clock.Interface.  Time only moves when Add (or Sleep) is called,
// at which point every timer, ticker, and AfterFunc whose deadline has been reached fires
// in deadline order.  Ties are broken by creation order.
//
// Unlike the system clock, AfterFunc callbacks run synchronously on the goroutine that
// called Add.  This keeps tests free of sleeps and races.
type Fake struct {
	lock    sync.Mutex
	now     time.Time
	seq     uint64
	pending []*fakeTimer
}

var _ clock.Interface = (*Fake)(nil)

// NewFake creates a Fake clock whose current time is start.
func NewFake(start time.Time) *Fake {
	return &Fake{now: start}
}

type fakeTimer struct {
	fake   *Fake
	when   time.Time
	seq    uint64
	period time.Duration
	f      func()
	c      chan time.Time
}

func (ft *fakeTimer) C() <-chan time.Time {
	return ft.c
}

func (ft *fakeTimer) Reset(d time.Duration) bool {
	ft.fake.lock.Lock()
	defer ft.fake.lock.Unlock()

	active := ft.fake.remove(ft)
	ft.when = ft.fake.now.Add(d)
	ft.fake.schedule(ft)
	return active
}

func (ft *fakeTimer) Stop() bool {
	ft.fake.lock.Lock()
	defer ft.fake.lock.Unlock()

	return ft.fake.remove(ft)
}

// fakeTicker adapts a periodic fakeTimer to the clock.Ticker interface
type fakeTicker struct {
	*fakeTimer
}

func (ft fakeTicker) Stop() {
	ft.fakeTimer.Stop()
}

func (f *Fake) Now() time.Time {
	f.lock.Lock()
	defer f.lock.Unlock()

	return f.now
}

// Sleep advances this clock by d, exactly as Add does.
func (f *Fake) Sleep(d time.Duration) {
	f.Add(d)
}

func (f *Fake) NewTimer(d time.Duration) clock.Timer {
	ft := &fakeTimer{
		fake: f,
		c:    make(chan time.Time, 1),
	}

	f.lock.Lock()
	ft.when = f.now.Add(d)
	f.schedule(ft)
	f.lock.Unlock()

	return ft
}

// NewTicker panics if d is not positive, matching time.NewTicker.
func (f *Fake) NewTicker(d time.Duration) clock.Ticker {
	if d <= 0 {
		panic("non-positive interval for NewTicker")
	}

	ft := &fakeTimer{
		fake:   f,
		period: d,
		c:      make(chan time.Time, 1),
	}

	f.lock.Lock()
	ft.when = f.now.Add(d)
	f.schedule(ft)
	f.lock.Unlock()

	return fakeTicker{ft}
}

func (f *Fake) AfterFunc(d time.Duration, fn func()) clock.Timer {
	ft := &fakeTimer{
		fake: f,
		f:    fn,
	}

	f.lock.Lock()
	ft.when = f.now.Add(d)
	f.schedule(ft)
	f.lock.Unlock()

	return ft
}

// Pending returns the number of timers and tickers that have not yet fired or been stopped.
func (f *Fake) Pending() int {
	f.lock.Lock()
	defer f.lock.Unlock()

	return len(f.pending)
}

// Add advances this clock by d, firing everything that comes due along the way.  Callbacks
// are invoked without holding any lock, so they may freely schedule more timers.  Timers
// scheduled by a callback fire during the same Add if their deadline is within range.
func (f *Fake) Add(d time.Duration) {
	f.lock.Lock()
	target := f.now.Add(d)
	f.lock.Unlock()

	for {
		f.lock.Lock()
		next := f.next(target)
		if next == nil {
			if target.After(f.now) {
				f.now = target
			}

			f.lock.Unlock()
			return
		}

		if next.when.After(f.now) {
			f.now = next.when
		}

		fired := f.now
		f.remove(next)
		if next.period > 0 {
			next.when = next.when.Add(next.period)
			f.schedule(next)
		}

		f.lock.Unlock()

		if next.f != nil {
			next.f()
		} else {
			select {
			case next.c <- fired:
			default:
				// like the stdlib, a ticker drops ticks for slow receivers
			}
		}
	}
}

// next returns the earliest pending timer due at or before target.  Must be called under the lock.
func (f *Fake) next(target time.Time) *fakeTimer {
	var earliest *fakeTimer
	for _, ft := range f.pending {
		if ft.when.After(target) {
			continue
		}

		if earliest == nil || ft.when.Before(earliest.when) || (ft.when.Equal(earliest.when) && ft.seq < earliest.seq) {
			earliest = ft
		}
	}

	return earliest
}

// schedule must be called under the lock
func (f *Fake) schedule(ft *fakeTimer) {
	f.seq++
	ft.seq = f.seq
	f.pending = append(f.pending, ft)
}

// remove must be called under the lock.  It returns true if ft was pending.
func (f *Fake) remove(ft *fakeTimer) bool {
	for i, candidate := range f.pending {
		if candidate == ft {
			f.pending = append(f.pending[:i], f.pending[i+1:]...)
			return true
		}
	}

	return false
}
