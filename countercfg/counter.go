// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package countercfg

import (
	"github.com/go-kit/kit/metrics/provider"
	"github.com/xmidt-org/counter/counter"
	"go.uber.org/zap"
)

// New builds a counter from its Options.  The provider is only consulted when instrumentation
// is enabled, and a nil provider leaves the counter uninstrumented.  A nil logger falls back to
// the default logger when logging is enabled.
func New(o *Options, p provider.Provider, logger *zap.Logger) counter.Interface {
	var c counter.Interface = counter.New(o.initial())

	if o.instrument() && p != nil {
		c = counter.Instrument(c, counter.NewMeasures(p).Options()...)
	}

	if o.log() {
		c = counter.Log(c, logger)
	}

	return c
}
