// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"io"

	"github.com/go-kit/kit/metrics"
	gokitprometheus "github.com/go-kit/kit/metrics/prometheus"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/xmidt-org/asyncevent/event"
)

var help = map[string]string{
	event.InvocationCount: "the number of fan-outs of a bound event",
	event.SubscriberCount: "the number of subscribers started",
	event.FailureCount:    "the number of failed subscriber results",
	event.InFlight:        "the number of fan-outs awaiting subscriber results",
}

// registry is both a private Prometheus registry and a go-kit provider.Provider whose
// metrics are registered with it.
type registry struct {
	*prometheus.Registry

	namespace string
	subsystem string
}

func newRegistry(namespace, subsystem string) *registry {
	return &registry{
		Registry:  prometheus.NewPedanticRegistry(),
		namespace: namespace,
		subsystem: subsystem,
	}
}

func (r *registry) NewCounter(name string) metrics.Counter {
	counterVec := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: r.namespace,
			Subsystem: r.subsystem,
			Name:      name,
			Help:      help[name],
		},
		nil,
	)

	r.MustRegister(counterVec)
	return gokitprometheus.NewCounter(counterVec)
}

func (r *registry) NewGauge(name string) metrics.Gauge {
	gaugeVec := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: r.namespace,
			Subsystem: r.subsystem,
			Name:      name,
			Help:      help[name],
		},
		nil,
	)

	r.MustRegister(gaugeVec)
	return gokitprometheus.NewGauge(gaugeVec)
}

func (r *registry) NewHistogram(name string, _ int) metrics.Histogram {
	histogramVec := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: r.namespace,
			Subsystem: r.subsystem,
			Name:      name,
			Help:      help[name],
			Buckets:   prometheus.DefBuckets,
		},
		nil,
	)

	r.MustRegister(histogramVec)
	return gokitprometheus.NewHistogram(histogramVec)
}

func (r *registry) Stop() {}

// writeText writes every gathered metric family in the Prometheus text exposition format
func (r *registry) writeText(w io.Writer) error {
	families, err := r.Gather()
	if err != nil {
		return err
	}

	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}

	return nil
}
