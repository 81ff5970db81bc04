// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xviper

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Configer is the subset of Viper behavior dealing with configuration paths and locations
type Configer interface {
	AddConfigPath(string)
	SetConfigName(string)
	SetConfigFile(string)
}

// FlagLookup is the behavior expected of a pflag.FlagSet to lookup individual flags by longhand name.
type FlagLookup interface {
	Lookup(string) *pflag.Flag
}

// Source describes how the location of a configuration file was determined.
type Source int

const (
	// SearchPaths means no flag was given, and the default name is looked for in the standard paths.
	SearchPaths Source = iota

	// ExplicitName means a flag supplied the base name of the file, which is looked for in the standard paths.
	ExplicitName

	// ExplicitFile means a flag supplied the full path of the file.
	ExplicitFile
)

func (s Source) String() string {
	switch s {
	case ExplicitName:
		return "name"
	case ExplicitFile:
		return "file"
	default:
		return "search"
	}
}

// Required reports whether a configuration file from this source must exist.  Only the default
// search may come up empty.
func (s Source) Required() bool {
	return s != SearchPaths
}

// AddStandardConfigPaths adds the standard *nix-style configuration paths for an application,
// in order of precedence: /etc/<app>, $HOME/.<app>, and the working directory.
func AddStandardConfigPaths(c Configer, applicationName string) {
	c.AddConfigPath(fmt.Sprintf("/etc/%s", applicationName))
	c.AddConfigPath(fmt.Sprintf("$HOME/.%s", applicationName))
	c.AddConfigPath(".")
}

// flagValue returns the value of a flag when it is both defined and nonempty.
func flagValue(fl FlagLookup, flag string) (string, bool) {
	if f := fl.Lookup(flag); f != nil {
		if value := f.Value.String(); len(value) > 0 {
			return value, true
		}
	}

	return "", false
}

// BindConfigName passes the value of the given flag, if set, to c.SetConfigName.
func BindConfigName(c Configer, fl FlagLookup, flag string) bool {
	configName, ok := flagValue(fl, flag)
	if ok {
		c.SetConfigName(configName)
	}

	return ok
}

// BindConfigFile passes the value of the given flag, if set, to c.SetConfigFile.
func BindConfigFile(c Configer, fl FlagLookup, flag string) bool {
	configFile, ok := flagValue(fl, flag)
	if ok {
		c.SetConfigFile(configFile)
	}

	return ok
}

// BindConfig binds the configuration location from a flagset.  A file flag takes precedence
// over a name flag.  The returned Source tells which, if either, was used.
func BindConfig(c Configer, fl FlagLookup, fileFlag, nameFlag string) Source {
	switch {
	case BindConfigFile(c, fl, fileFlag):
		return ExplicitFile

	case BindConfigName(c, fl, nameFlag):
		return ExplicitName

	default:
		return SearchPaths
	}
}

// ReadFlaggedConfig binds the configuration location from the DefaultFileFlag and DefaultNameFlag
// flags and reads it.  When neither flag is given, a configuration file that cannot be found is
// not an error, and the Viper instance is left with only its defaults, environment, and flags.
func ReadFlaggedConfig(fl FlagLookup) Option {
	return func(v *viper.Viper) error {
		source := BindConfig(v, fl, DefaultFileFlag, DefaultNameFlag)
		err := v.ReadInConfig()

		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) && !source.Required() {
			return nil
		}

		if err != nil {
			return fmt.Errorf("unable to read configuration by %s: %w", source, err)
		}

		return nil
	}
}
