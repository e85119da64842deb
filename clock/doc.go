// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package clock abstracts the passage of time.  Production code uses System(), while
tests use the clocktest package to control exactly when timers fire.
*/
package clock
