// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xmetrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func gatherFamily(t *testing.T, g prometheus.Gatherer, fqn string) *dto.MetricFamily {
	families, err := g.Gather()
	require.NoError(t, err)

	for _, mf := range families {
		if mf.GetName() == fqn {
			return mf
		}
	}

	return nil
}

func testRegistryAsGoKitProvider(t *testing.T) {
	var (
		require = require.New(t)

		o = &Options{
			Logger:                  zaptest.NewLogger(t),
			Namespace:               "test",
			Subsystem:               "basic",
			DisableGoCollector:      true,
			DisableProcessCollector: true,
			Metrics: []Metric{
				{Name: "counter", Type: CounterType, Help: "a test counter"},
				{Name: "gauge", Type: GaugeType, Help: "a test gauge"},
			},
		}
	)

	r, err := NewRegistry(o)
	require.NoError(err)
	require.NotNil(r)

	t.Run("NewCounter", func(t *testing.T) {
		assert := assert.New(t)
		preregistered := r.NewCounter("counter")
		assert.NotNil(preregistered)
		assert.Equal(preregistered, r.NewCounter("counter"))

		adHoc := r.NewCounter("new_counter")
		assert.NotNil(adHoc)
		assert.NotEqual(preregistered, adHoc)
		assert.Equal(adHoc, r.NewCounter("new_counter"))

		assert.Panics(func() { r.NewCounter("gauge") })

		preregistered.Add(2.0)
		mf := gatherFamily(t, r, "test_basic_counter")
		if assert.NotNil(mf) && assert.Len(mf.GetMetric(), 1) {
			assert.Equal(2.0, mf.GetMetric()[0].GetCounter().GetValue())
		}
	})

	t.Run("NewGauge", func(t *testing.T) {
		assert := assert.New(t)
		preregistered := r.NewGauge("gauge")
		assert.NotNil(preregistered)
		assert.Equal(preregistered, r.NewGauge("gauge"))

		adHoc := r.NewGauge("new_gauge")
		assert.NotNil(adHoc)
		assert.NotEqual(preregistered, adHoc)
		assert.Equal(adHoc, r.NewGauge("new_gauge"))

		assert.Panics(func() { r.NewGauge("counter") })

		preregistered.Set(-5.0)
		mf := gatherFamily(t, r, "test_basic_gauge")
		if assert.NotNil(mf) && assert.Len(mf.GetMetric(), 1) {
			assert.Equal(-5.0, mf.GetMetric()[0].GetGauge().GetValue())
		}
	})

	t.Run("NewHistogram", func(t *testing.T) {
		assert := assert.New(t)
		h := r.NewHistogram("histogram", 12)
		assert.NotNil(h)
		h.Observe(1.0)
		assert.Nil(gatherFamily(t, r, "test_basic_histogram"))
	})

	r.Stop()
}

func testRegistryModules(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)

		r, err = NewRegistry(
			&Options{DisableGoCollector: true, DisableProcessCollector: true},
			func() []Metric {
				return []Metric{{Name: "from_module", Type: CounterType}}
			},
		)
	)

	require.NoError(err)
	require.NotNil(r)

	r.NewCounter("from_module").Add(1.0)
	assert.NotNil(gatherFamily(t, r, "xmidt_counter_from_module"))
}

func testRegistryDuplicateMetric(t *testing.T) {
	var (
		assert = assert.New(t)
		r, err = NewRegistry(
			&Options{
				Metrics: []Metric{{Name: "dupe", Type: CounterType}},
			},
			func() []Metric {
				return []Metric{{Name: "dupe", Type: CounterType}}
			},
		)
	)

	assert.Nil(r)
	assert.Error(err)
}

func testRegistryReusedName(t *testing.T) {
	var (
		assert = assert.New(t)
		r, err = NewRegistry(&Options{
			Metrics: []Metric{
				{Name: "name", Type: CounterType, Namespace: "one"},
				{Name: "name", Type: CounterType, Namespace: "two"},
			},
		})
	)

	assert.Nil(r)
	assert.Error(err)
}

func testRegistryEmptyMetricName(t *testing.T) {
	var (
		assert = assert.New(t)
		r, err = NewRegistry(&Options{
			Metrics: []Metric{{Type: CounterType}},
		})
	)

	assert.Nil(r)
	assert.Error(err)
}

func testRegistryInvalidType(t *testing.T) {
	var (
		assert = assert.New(t)
		r, err = NewRegistry(&Options{
			Metrics: []Metric{{Name: "bad", Type: "huh?"}},
		})
	)

	assert.Nil(r)
	assert.Error(err)
}

func TestRegistry(t *testing.T) {
	t.Run("AsGoKitProvider", testRegistryAsGoKitProvider)
	t.Run("Modules", testRegistryModules)
	t.Run("DuplicateMetric", testRegistryDuplicateMetric)
	t.Run("ReusedName", testRegistryReusedName)
	t.Run("EmptyMetricName", testRegistryEmptyMetricName)
	t.Run("InvalidType", testRegistryInvalidType)
}
