// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xmetrics

import (
	"fmt"
	"sync"

	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"
	gokitprometheus "github.com/go-kit/kit/metrics/prometheus"
	"github.com/go-kit/kit/metrics/provider"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Registry is the core abstraction for this package.  It is a Prometheus registry and a go-kit metrics.Provider all in one.
//
// The Provider implementation works slightly differently than the go-kit implementation.  For any metric that is already defined
// the provider returns a new go-kit wrapper for that metric.  Additionally, new metrics (including ad hoc metrics) are cached
// and returned by subsequent calls to the Provider methods.
type Registry interface {
	provider.Provider
	prometheus.Gatherer
	prometheus.Registerer
}

// registry is the internal Registry implementation
type registry struct {
	*prometheus.Registry

	namespace string
	subsystem string
	logger    *zap.Logger

	lock  sync.Mutex
	cache map[string]prometheus.Collector
}

// adHoc registers a metric that was not preregistered.  The caller must hold the lock.
func (r *registry) adHoc(name, metricType string) prometheus.Collector {
	c, err := NewCollector(Metric{
		Name:      name,
		Type:      metricType,
		Namespace: r.namespace,
		Subsystem: r.subsystem,
	})

	if err != nil {
		panic(err)
	}

	if err := r.Registry.Register(c); err != nil {
		if already, ok := err.(prometheus.AlreadyRegisteredError); ok {
			c = already.ExistingCollector
		} else {
			panic(err)
		}
	}

	r.logger.Debug("registered ad hoc metric", zap.String("name", name), zap.String("type", metricType))
	r.cache[name] = c
	return c
}

func (r *registry) NewCounter(name string) metrics.Counter {
	r.lock.Lock()
	defer r.lock.Unlock()

	existing, ok := r.cache[name]
	if !ok {
		existing = r.adHoc(name, CounterType)
	}

	counterVec, ok := existing.(*prometheus.CounterVec)
	if !ok {
		panic(fmt.Errorf("the metric %s is not a counter", name))
	}

	return gokitprometheus.NewCounter(counterVec)
}

func (r *registry) NewGauge(name string) metrics.Gauge {
	r.lock.Lock()
	defer r.lock.Unlock()

	existing, ok := r.cache[name]
	if !ok {
		existing = r.adHoc(name, GaugeType)
	}

	gaugeVec, ok := existing.(*prometheus.GaugeVec)
	if !ok {
		panic(fmt.Errorf("the metric %s is not a gauge", name))
	}

	return gokitprometheus.NewGauge(gaugeVec)
}

// NewHistogram always returns a discarding histogram.  Counters have nothing to observe.
func (r *registry) NewHistogram(name string, _ int) metrics.Histogram {
	return discard.NewHistogram()
}

func (r *registry) Stop() {
}

// NewRegistry creates a Registry from a set of options and any number of modules.  Every metric
// from the options and the modules is preregistered.  Duplicate metrics, as determined by their
// fully-qualified names, result in an error.
func NewRegistry(o *Options, modules ...Module) (Registry, error) {
	merger := NewMerger(o.namespace(), o.subsystem()).
		AddModules(false, append([]Module{o.Module}, modules...)...)

	if err := merger.Err(); err != nil {
		return nil, err
	}

	r := &registry{
		Registry:  o.registry(),
		namespace: o.namespace(),
		subsystem: o.subsystem(),
		logger:    o.logger(),
		cache:     make(map[string]prometheus.Collector),
	}

	for fqn, m := range merger.Merged() {
		if _, ok := r.cache[m.Name]; ok {
			return nil, fmt.Errorf("metric %s reuses the name %s", fqn, m.Name)
		}

		c, err := NewCollector(m)
		if err != nil {
			return nil, err
		}

		if err := r.Registry.Register(c); err != nil {
			return nil, fmt.Errorf("error while preregistering metric %s: %s", fqn, err)
		}

		r.logger.Debug("preregistered metric", zap.String("name", fqn), zap.String("type", m.Type))
		r.cache[m.Name] = c
	}

	return r, nil
}
