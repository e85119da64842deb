// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xviper

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultFileFlag = "file"
)

// Option is a configuration step applied to a Viper instance
type Option func(*viper.Viper) error

// Defaults maps configuration keys onto their default values
type Defaults map[string]interface{}

// ApplyDefaults sets each of the given defaults
func ApplyDefaults(d Defaults) Option {
	return func(v *viper.Viper) error {
		for key, value := range d {
			v.SetDefault(key, value)
		}

		return nil
	}
}

// AddConfigPaths adds directories that are searched for the configuration file
func AddConfigPaths(paths ...string) Option {
	return func(v *viper.Viper) error {
		for _, p := range paths {
			v.AddConfigPath(p)
		}

		return nil
	}
}

// BindPFlags binds every flag in the set, so that parsed flags override configuration
func BindPFlags(fs *pflag.FlagSet) Option {
	return func(v *viper.Viper) error {
		return v.BindPFlags(fs)
	}
}

// BindConfigFile uses the value of the given flag, if set, as the exact configuration file
func BindConfigFile(fs *pflag.FlagSet, flag string) Option {
	return func(v *viper.Viper) error {
		if f := fs.Lookup(flag); f != nil {
			if configFile := f.Value.String(); len(configFile) > 0 {
				v.SetConfigFile(configFile)
			}
		}

		return nil
	}
}

// StdOptions applies the usual setup for an application:  the *nix configuration search path,
// an environment prefix derived from the application name, a configuration file named after
// the application, and flag bindings.  Nested keys such as events.delay map to environment
// variables such as APP_EVENTS_DELAY.
func StdOptions(applicationName string, fs *pflag.FlagSet) Option {
	return func(v *viper.Viper) error {
		v.SetConfigName(applicationName)
		v.SetEnvPrefix(applicationName)
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
		v.AutomaticEnv()

		return Configure(v,
			AddConfigPaths(
				fmt.Sprintf("/etc/%s", applicationName),
				fmt.Sprintf("$HOME/.%s", applicationName),
				".",
			),
			BindPFlags(fs),
		)
	}
}

// New creates a Viper and applies each option in order
func New(o ...Option) (*viper.Viper, error) {
	v := viper.New()
	if err := Configure(v, o...); err != nil {
		return nil, err
	}

	return v, nil
}

// Configure applies options to an existing Viper, stopping at the first error
func Configure(v *viper.Viper, o ...Option) error {
	for _, f := range o {
		if err := f(v); err != nil {
			return err
		}
	}

	return nil
}

// ReadInConfig reads the configuration file.  A missing file is not an error unless required
// is true, since every setting has a default or a flag.
func ReadInConfig(v *viper.Viper, required bool) error {
	err := v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) && !required {
		return nil
	}

	return err
}
