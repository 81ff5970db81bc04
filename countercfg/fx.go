// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package countercfg

import (
	"github.com/go-kit/kit/metrics/provider"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/xmidt-org/counter/counter"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// In is the set of dependencies for an fx-built counter.
type In struct {
	fx.In

	Viper    *viper.Viper
	Provider provider.Provider `optional:"true"`
	Logger   *zap.Logger       `optional:"true"`
}

// Provide produces an fx option that provides a counter.Interface configured from the Key subtree.
func Provide() fx.Option {
	return fx.Provide(
		func(in In) (counter.Interface, error) {
			o, err := Load(in.Viper, Key)
			if err != nil {
				return nil, err
			}

			if in.Logger != nil {
				in.Logger.Info("constructing counter", zap.Int("initial", o.Initial), zap.Bool("instrument", o.Instrument), zap.Bool("log", o.Log))
			}

			return New(o, in.Provider, in.Logger), nil
		},
	)
}

// ProvideConfig produces an fx option that parses the command line arguments and provides the
// resulting *pflag.FlagSet, the *viper.Viper built by NewViper, and the *zap.Logger built by NewLogger.
// Together with Provide, this is everything an application needs to obtain a counter.
func ProvideConfig(applicationName string, arguments []string) fx.Option {
	return fx.Provide(
		func() (*pflag.FlagSet, error) {
			fs := pflag.NewFlagSet(applicationName, pflag.ContinueOnError)
			ConfigureFlagSet(fs)
			if err := fs.Parse(arguments); err != nil {
				return nil, err
			}

			return fs, nil
		},
		func(fs *pflag.FlagSet) (*viper.Viper, error) {
			return NewViper(applicationName, fs)
		},
		NewLogger,
	)
}
