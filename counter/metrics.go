// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package counter

import (
	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/provider"
	"github.com/xmidt-org/counter/xmetrics"
)

// Names for our metrics
const (
	IncrementCount = "increments_total"
	DecrementCount = "decrements_total"
	CurrentValue   = "value"
)

// Metrics is the xmetrics module function for counters.  Pass it to xmetrics.NewRegistry
// so that the metrics exist before NewMeasures is called.
func Metrics() []xmetrics.Metric {
	return []xmetrics.Metric{
		{
			Name: IncrementCount,
			Type: xmetrics.CounterType,
			Help: "The total number of times the counter was incremented",
		},
		{
			Name: DecrementCount,
			Type: xmetrics.CounterType,
			Help: "The total number of times the counter was decremented",
		},
		{
			Name: CurrentValue,
			Type: xmetrics.GaugeType,
			Help: "The current value of the counter",
		},
	}
}

// Measures is the set of metrics recorded for a counter.
type Measures struct {
	Increments metrics.Counter
	Decrements metrics.Counter
	Value      metrics.Gauge
}

// NewMeasures produces the counter Measures from a go-kit provider.
func NewMeasures(p provider.Provider) *Measures {
	return &Measures{
		Increments: p.NewCounter(IncrementCount),
		Decrements: p.NewCounter(DecrementCount),
		Value:      p.NewGauge(CurrentValue),
	}
}

// Options returns the InstrumentOptions that record into these measures.  A nil Measures
// yields no options.
func (m *Measures) Options() []InstrumentOption {
	if m == nil {
		return nil
	}

	return []InstrumentOption{
		WithIncrements(m.Increments),
		WithDecrements(m.Decrements),
		WithValue(m.Value),
	}
}
