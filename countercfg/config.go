// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package countercfg

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/xmidt-org/counter/logging"
	"github.com/xmidt-org/counter/xviper"
	"go.uber.org/zap"
)

// LogKey is the viper key under which logging.Options live
const LogKey = "log"

// ConfigureFlagSet defines every flag an application needs to configure a counter: the
// configuration file location flags and the counter's own flags.
func ConfigureFlagSet(fs *pflag.FlagSet) {
	xviper.ConfigureFlagSet(fs)
	Configure(fs)
}

// NewViper creates the Viper instance for an application from an already parsed flagset.
// The configuration file is located by the flags, falling back to a search of the standard
// paths for <applicationName>.*, and the counter flags override what the file says.
func NewViper(applicationName string, fs *pflag.FlagSet) (*viper.Viper, error) {
	v, err := xviper.New(
		xviper.StdOptions(applicationName, fs),
		xviper.ReadFlaggedConfig(fs),
	)

	if err != nil {
		return nil, err
	}

	if err := BindFlags(v, fs, Key); err != nil {
		return nil, err
	}

	return v, nil
}

// NewLogger builds a zap Logger from the LogKey subtree.  If that subtree is missing,
// the logging package defaults apply.
func NewLogger(v *viper.Viper) (*zap.Logger, error) {
	o := new(logging.Options)
	if _, err := xviper.UnmarshalKey(v, LogKey, o); err != nil {
		return nil, err
	}

	return logging.New(o), nil
}
