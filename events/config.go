// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package events

import (
	"fmt"
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

const (
	// EventsKey is the Viper subkey under which gate configuration is stored.
	// FromViper *does not* assume this key.
	EventsKey = "events"

	delayKey = "delay"
)

// Options is the configurable form of a Gate
type Options struct {
	// Delay is the window used by Throttle.  When read from configuration, a bare number is
	// a count of milliseconds and a string may be any time.ParseDuration value.
	Delay time.Duration `json:"delay"`
}

// NewGate creates a Gate from these options.  The extra options are applied afterward, so
// they take precedence.  A nil Options produces a default Gate.
func (o *Options) NewGate(extra ...Option) *Gate {
	var options []Option
	if o != nil {
		options = append(options, WithDelay(o.Delay))
	}

	return New(append(options, extra...)...)
}

// Sub returns the standard child Viper, using EventsKey, for this package.
// If passed nil, this function returns nil.
func Sub(v *viper.Viper) *viper.Viper {
	if v != nil {
		return v.Sub(EventsKey)
	}

	return nil
}

// FromViper produces an Options from a (possibly nil) Viper instance.
// Callers should use FromViper(Sub(v)) if the standard subkey is desired.
func FromViper(v *viper.Viper) (*Options, error) {
	return load(v, delayKey)
}

// FromRoot produces an Options from the EventsKey subtree of a (possibly nil) root Viper.
// Unlike FromViper(Sub(v)), the keys are looked up on the root, so environment variables
// and flag overrides for events.delay apply even when no events section was configured.
func FromRoot(v *viper.Viper) (*Options, error) {
	return load(v, EventsKey+"."+delayKey)
}

func load(v *viper.Viper, key string) (*Options, error) {
	o := new(Options)
	if v == nil || !v.IsSet(key) {
		return o, nil
	}

	d, err := parseDelay(v.Get(key))
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", key, err)
	}

	o.Delay = d
	return o, nil
}

// parseDelay interprets numbers, including numeric strings from the environment, as milliseconds.
// Anything else must be a duration.
func parseDelay(raw interface{}) (time.Duration, error) {
	switch v := raw.(type) {
	case time.Duration:
		return v, nil

	case string:
		if ms, err := cast.ToFloat64E(v); err == nil {
			return milliseconds(ms), nil
		}

		return cast.ToDurationE(v)

	default:
		ms, err := cast.ToFloat64E(v)
		if err != nil {
			return 0, err
		}

		return milliseconds(ms), nil
	}
}

func milliseconds(ms float64) time.Duration {
	return time.Duration(ms * float64(time.Millisecond))
}
