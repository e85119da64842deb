// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package events

import "time"

// defaultGate backs the package-level functions.  Prefer a Gate owned by the caller.
var defaultGate = New()

// Default returns the process-wide gate used by the package-level functions
func Default() *Gate {
	return defaultGate
}

// Trigger invokes Trigger on the default gate
func Trigger(action func(), delay time.Duration) {
	defaultGate.Trigger(action, delay)
}

// Throttle invokes Throttle on the default gate
func Throttle(action func()) {
	defaultGate.Throttle(action)
}

// Current returns the pending action of the default gate
func Current() func() {
	return defaultGate.Current()
}
