// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xviper

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultNameFlag = "name"
	DefaultFileFlag = "file"
)

// Option is a configuration step applied to a Viper instance.
type Option func(*viper.Viper) error

func SetEnvPrefix(prefix string) Option {
	return func(v *viper.Viper) error {
		v.SetEnvPrefix(prefix)
		return nil
	}
}

func SetConfigName(name string) Option {
	return func(v *viper.Viper) error {
		v.SetConfigName(name)
		return nil
	}
}

func AddStandardPaths(applicationName string) Option {
	return func(v *viper.Viper) error {
		AddStandardConfigPaths(v, applicationName)
		return nil
	}
}

func AutomaticEnv(v *viper.Viper) error {
	v.AutomaticEnv()
	return nil
}

func BindPFlags(fs *pflag.FlagSet) Option {
	return func(v *viper.Viper) error {
		return v.BindPFlags(fs)
	}
}

// ConfigureFlagSet defines the DefaultFileFlag and DefaultNameFlag flags on a flagset.
// The name flag defaults to empty, so that leaving it off means the default search.
func ConfigureFlagSet(fs *pflag.FlagSet) {
	fs.StringP(DefaultFileFlag, "f", "", "the fully-qualified path of the configuration file")
	fs.StringP(DefaultNameFlag, "n", "", "the base name of the configuration file")
}

// StdOptions applies the standard search paths, environment handling, and flag bindings for an application.
// It does not read any configuration.  Follow it with ReadFlaggedConfig for that.
func StdOptions(applicationName string, fs *pflag.FlagSet) Option {
	return Compose(
		AddStandardPaths(applicationName),
		SetEnvPrefix(applicationName),
		AutomaticEnv,
		SetConfigName(applicationName),
		BindPFlags(fs),
	)
}

// Compose joins several options into one, stopping at the first error.
func Compose(o ...Option) Option {
	return func(v *viper.Viper) error {
		_, err := Configure(v, o...)
		return err
	}
}

func New(o ...Option) (*viper.Viper, error) {
	return Configure(viper.New(), o...)
}

func Configure(v *viper.Viper, o ...Option) (*viper.Viper, error) {
	if v != nil {
		for _, f := range o {
			if err := f(v); err != nil {
				return nil, err
			}
		}
	}

	return v, nil
}
