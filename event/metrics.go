// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package event

import (
	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"
	"github.com/go-kit/kit/metrics/provider"
)

const (
	InvocationCount = "event_invocation_count"
	SubscriberCount = "event_subscriber_count"
	FailureCount    = "event_failure_count"
	InFlight        = "event_inflight"
)

// Measures is the set of metrics an instrumented Invoker updates.  Any nil field is discarded.
type Measures struct {
	// Invocations is incremented for every fan-out of a bound handle
	Invocations metrics.Counter

	// Subscribers is incremented by the number of subscribers started by each fan-out
	Subscribers metrics.Counter

	// Failures is incremented by the number of subscriber failures in each completed fan-out
	Failures metrics.Counter

	// InFlight tracks the fan-outs whose results have yet to complete
	InFlight metrics.Gauge
}

// NewMeasures creates the event Measures from a go-kit provider.  If p is nil, discarding metrics are used.
func NewMeasures(p provider.Provider) Measures {
	if p == nil {
		return Measures{}.withDefaults()
	}

	return Measures{
		Invocations: p.NewCounter(InvocationCount),
		Subscribers: p.NewCounter(SubscriberCount),
		Failures:    p.NewCounter(FailureCount),
		InFlight:    p.NewGauge(InFlight),
	}
}

func (m Measures) withDefaults() Measures {
	if m.Invocations == nil {
		m.Invocations = discard.NewCounter()
	}

	if m.Subscribers == nil {
		m.Subscribers = discard.NewCounter()
	}

	if m.Failures == nil {
		m.Failures = discard.NewCounter()
	}

	if m.InFlight == nil {
		m.InFlight = discard.NewGauge()
	}

	return m
}
