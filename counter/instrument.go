// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package counter

import (
	"github.com/go-kit/kit/metrics/discard"
	"github.com/xmidt-org/counter/xmetrics"
)

// InstrumentOption represents a configurable option for instrumenting a counter
type InstrumentOption func(*instrumentedCounter)

// WithIncrements establishes a metric that tracks how many times a counter was incremented.
// If a nil metric is supplied, increments are discarded.
func WithIncrements(a xmetrics.Adder) InstrumentOption {
	return func(ic *instrumentedCounter) {
		if a != nil {
			ic.increments = a
		} else {
			ic.increments = discard.NewCounter()
		}
	}
}

// WithDecrements establishes a metric that tracks how many times a counter was decremented.
// If a nil metric is supplied, decrements are discarded.
func WithDecrements(a xmetrics.Adder) InstrumentOption {
	return func(ic *instrumentedCounter) {
		if a != nil {
			ic.decrements = a
		} else {
			ic.decrements = discard.NewCounter()
		}
	}
}

// WithValue establishes a metric that mirrors the current value of a counter.
// If a nil metric is supplied, values are discarded.
func WithValue(s xmetrics.Setter) InstrumentOption {
	return func(ic *instrumentedCounter) {
		if s != nil {
			ic.value = s
		} else {
			ic.value = discard.NewGauge()
		}
	}
}

// Instrument decorates an existing counter with a set of options.  The value metric, if any,
// is set to the counter's current value before this function returns.
func Instrument(c Interface, o ...InstrumentOption) Interface {
	if isNil(c) {
		panic("A counter is required")
	}

	ic := &instrumentedCounter{
		Interface:  c,
		increments: discard.NewCounter(),
		decrements: discard.NewCounter(),
		value:      discard.NewGauge(),
	}

	for _, f := range o {
		f(ic)
	}

	ic.value.Set(float64(c.Value()))
	return ic
}

type instrumentedCounter struct {
	Interface
	increments xmetrics.Adder
	decrements xmetrics.Adder
	value      xmetrics.Setter
}

func (ic *instrumentedCounter) Increment() int {
	previous := ic.Interface.Increment()
	ic.increments.Add(1.0)
	ic.value.Set(float64(ic.Interface.Value()))
	return previous
}

func (ic *instrumentedCounter) Decrement() int {
	previous := ic.Interface.Decrement()
	ic.decrements.Add(1.0)
	ic.value.Set(float64(ic.Interface.Value()))
	return previous
}
