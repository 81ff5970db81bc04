// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package countercfg

import (
	"fmt"

	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/xmidt-org/counter/xviper"
)

const (
	// Key is the default viper key under which counter configuration lives
	Key = "counter"

	// InitialFlag is the command line flag which overrides the configured initial value
	InitialFlag = "initial"
)

// Options contains the configuration for a single counter.
type Options struct {
	// Initial is the value the counter holds when constructed.  Defaults to 0.
	Initial int `json:"initial"`

	// Instrument indicates whether the counter records metrics.
	Instrument bool `json:"instrument"`

	// Log indicates whether each mutation of the counter is logged at debug level.
	Log bool `json:"log"`
}

func (o *Options) initial() int {
	if o != nil {
		return o.Initial
	}

	return 0
}

func (o *Options) instrument() bool {
	if o != nil {
		return o.Instrument
	}

	return false
}

func (o *Options) log() bool {
	if o != nil {
		return o.Log
	}

	return false
}

// Configure defines the counter command line flags on a flagset.
func Configure(fs *pflag.FlagSet) {
	fs.Int(InitialFlag, 0, "the initial value of the counter")
}

// BindFlags binds the flags defined by Configure to the subkeys of key, so that
// a flag given on the command line overrides the configuration file.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet, key string) error {
	if f := fs.Lookup(InitialFlag); f != nil {
		return v.BindPFlag(key+"."+InitialFlag, f)
	}

	return nil
}

// Load reads the counter Options stored under key.  Missing values take their defaults.
// Values that cannot be converted to the expected types without loss result in an error.
func Load(v *viper.Viper, key string) (*Options, error) {
	xviper.ApplyDefaults(v, xviper.Defaults{
		key + ".initial":    0,
		key + ".instrument": false,
		key + ".log":        false,
	})

	var (
		o   = new(Options)
		err error
	)

	if o.Initial, err = toInt(v.Get(key + ".initial")); err != nil {
		return nil, fmt.Errorf("invalid %s.initial: %s", key, err)
	}

	if o.Instrument, err = cast.ToBoolE(v.Get(key + ".instrument")); err != nil {
		return nil, fmt.Errorf("invalid %s.instrument: %s", key, err)
	}

	if o.Log, err = cast.ToBoolE(v.Get(key + ".log")); err != nil {
		return nil, fmt.Errorf("invalid %s.log: %s", key, err)
	}

	return o, nil
}
