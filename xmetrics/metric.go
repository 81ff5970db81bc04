// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xmetrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	CounterType = "counter"
	GaugeType   = "gauge"
)

// Module is a function type that returns prebuilt metrics.
type Module func() []Metric

// Metric describes a single metric that will be preregistered.  This type loosely
// corresponds with Prometheus' Opts struct.
type Metric struct {
	// Name is the required name of this metric.
	Name string

	// Type is the required type of metric.  This value must be either CounterType or GaugeType.
	Type string

	// Namespace is the namespace of this metric.  This value is optional.  The enclosing Options' Namespace
	// field is used if this is not supplied.
	Namespace string

	// Subsystem is the subsystem of this metric.  This value is optional.  The enclosing Options' Subsystem
	// field is used if this is not supplied.
	Subsystem string

	// Help is the help string for this metric.  If not supplied, the metric's name is used
	Help string

	// ConstLabels are the Prometheus ConstLabels for this metric.  This field is optional.
	ConstLabels map[string]string
}

// NewCollector creates a Prometheus metric from a Metric descriptor.  The name must not be empty.
// If not supplied in the metric, namespace, subsystem, and help all take on defaults.
func NewCollector(m Metric) (prometheus.Collector, error) {
	if len(m.Name) == 0 {
		return nil, errors.New("a name is required for a metric")
	}

	var (
		namespace = m.Namespace
		subsystem = m.Subsystem
		help      = m.Help
	)

	if len(namespace) == 0 {
		namespace = DefaultNamespace
	}

	if len(subsystem) == 0 {
		subsystem = DefaultSubsystem
	}

	if len(help) == 0 {
		help = m.Name
	}

	switch m.Type {
	case CounterType:
		return prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   subsystem,
			Name:        m.Name,
			Help:        help,
			ConstLabels: prometheus.Labels(m.ConstLabels),
		}, []string{}), nil

	case GaugeType:
		return prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   namespace,
			Subsystem:   subsystem,
			Name:        m.Name,
			Help:        help,
			ConstLabels: prometheus.Labels(m.ConstLabels),
		}, []string{}), nil

	default:
		return nil, fmt.Errorf("unsupported metric type: %s", m.Type)
	}
}

// Merger collects metrics from several sources, filling in default namespaces and subsystems
// and rejecting duplicates.
type Merger struct {
	defaultNamespace string
	defaultSubsystem string
	merged           map[string]Metric
	err              error
}

func NewMerger(defaultNamespace, defaultSubsystem string) *Merger {
	if len(defaultNamespace) == 0 {
		defaultNamespace = DefaultNamespace
	}

	if len(defaultSubsystem) == 0 {
		defaultSubsystem = DefaultSubsystem
	}

	return &Merger{
		defaultNamespace: defaultNamespace,
		defaultSubsystem: defaultSubsystem,
		merged:           make(map[string]Metric),
	}
}

// Merged returns the built map of metrics from all sources, keyed by fully-qualified name
func (mr *Merger) Merged() map[string]Metric {
	return mr.merged
}

// Err returns any error that occurred during merging.  When this method returns non-nil,
// no further additions will be accepted.
func (mr *Merger) Err() error {
	return mr.err
}

func (mr *Merger) tryAdd(allowOverride bool, m Metric) bool {
	if mr.err != nil {
		return false
	}

	if len(m.Name) == 0 {
		mr.err = errors.New("names are required for metrics")
		return false
	}

	if len(m.Namespace) == 0 {
		m.Namespace = mr.defaultNamespace
	}

	if len(m.Subsystem) == 0 {
		m.Subsystem = mr.defaultSubsystem
	}

	fqn := prometheus.BuildFQName(m.Namespace, m.Subsystem, m.Name)
	if existing, ok := mr.merged[fqn]; ok {
		if !allowOverride {
			mr.err = fmt.Errorf("duplicate metric with name: %s", fqn)
			return false
		}

		// we never allow a metric to override one of a different type
		if existing.Type != m.Type {
			mr.err = fmt.Errorf("metric %s was expected to be of type %s, but was of type %s", fqn, existing.Type, m.Type)
			return false
		}
	}

	mr.merged[fqn] = m
	return true
}

func (mr *Merger) AddMetrics(allowOverride bool, m []Metric) *Merger {
	for _, e := range m {
		if !mr.tryAdd(allowOverride, e) {
			break
		}
	}

	return mr
}

func (mr *Merger) AddModules(allowOverride bool, m ...Module) *Merger {
	for _, mf := range m {
		for _, e := range mf() {
			if !mr.tryAdd(allowOverride, e) {
				return mr
			}
		}
	}

	return mr
}
