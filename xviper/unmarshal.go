// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xviper

import (
	"fmt"

	"github.com/spf13/viper"
)

// KeyUnmarshaler is the behavior of anything that can decode a configuration subtree, e.g. a Viper.
type KeyUnmarshaler interface {
	IsSet(string) bool
	UnmarshalKey(string, interface{}, ...viper.DecoderConfigOption) error
}

// UnmarshalKey decodes the subtree at key into each value in turn, stopping at the first error.
// A key that is not set leaves the values untouched and returns false.
func UnmarshalKey(u KeyUnmarshaler, key string, v ...interface{}) (bool, error) {
	if !u.IsSet(key) {
		return false, nil
	}

	for _, e := range v {
		if err := u.UnmarshalKey(key, e); err != nil {
			return true, fmt.Errorf("unable to decode %s: %w", key, err)
		}
	}

	return true, nil
}

type defaulter interface {
	SetDefault(string, interface{})
}

// Defaults maps configuration keys onto default values.
type Defaults map[string]interface{}

func ApplyDefaults(d defaulter, v Defaults) {
	for key, value := range v {
		d.SetDefault(key, value)
	}
}
