// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
		r       = new(recorder)
	)

	require.NotNil(Default())
	assert.Equal(DefaultDelay, Default().Delay())

	Trigger(r.push("x"), 0)
	assert.Equal([]string{"x"}, r.values())

	Trigger(r.push("a"), 10*time.Millisecond)
	Throttle(r.push("b"))
	require.NotNil(Current())

	assert.Eventually(func() bool {
		return len(r.values()) > 1
	}, 5*time.Second, 5*time.Millisecond)

	time.Sleep(2 * DefaultDelay)
	assert.Equal([]string{"x", "b"}, r.values())
}
