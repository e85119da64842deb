// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package events throttles bursts of event callbacks so that only the most recent one runs.

Interactive sources such as brush dragging can produce far more events than a renderer can keep
up with.  Wrapping each render in a Gate's Trigger coalesces the burst:  every call with a delay
replaces the pending action, and when a timer fires its action runs only if no newer call has
replaced it in the meantime.  Of N calls issued inside one delay window, only the last one runs.

	gate := events.New()
	chart.OnFilter(func(f Filter) {
		gate.Trigger(func() { other.Focus(f) }, 40*time.Millisecond)
	})

A zero delay bypasses the gate entirely and runs the action before Trigger returns.
*/
package events
