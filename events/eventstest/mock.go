// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package eventstest

import (
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/xmidt-org/eventgate/events"
)

// Mock is a stretchr mock for events.Interface.  Since funcs cannot be compared, expectations
// match any action; use Run on the returned call to invoke or inspect it.
type Mock struct {
	mock.Mock
}

var _ events.Interface = (*Mock)(nil)

func (m *Mock) Trigger(action func(), delay time.Duration) {
	m.Called(action, delay)
}

func (m *Mock) OnTrigger(delay time.Duration) *mock.Call {
	return m.On("Trigger", mock.Anything, delay)
}

func (m *Mock) Throttle(action func()) {
	m.Called(action)
}

func (m *Mock) OnThrottle() *mock.Call {
	return m.On("Throttle", mock.Anything)
}

func (m *Mock) Current() func() {
	f, _ := m.Called().Get(0).(func())
	return f
}

func (m *Mock) OnCurrent(f func()) *mock.Call {
	return m.On("Current").Return(f)
}
