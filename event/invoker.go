// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package event

import (
	"sync"

	"github.com/go-kit/kit/metrics/provider"
	"github.com/segmentio/ksuid"
	"github.com/xmidt-org/asyncevent/async"
	"github.com/xmidt-org/sallust"
	"go.uber.org/zap"
)

// Option represents a configuration option for an Invoker
type Option func(*Invoker)

// WithLogger sets the zap Logger used to report fan-outs and their outcomes.  If nil,
// sallust.Default() is used and the logger does not, by itself, instrument the Invoker.
// A later WithLogger(nil) undoes an earlier WithLogger, but not any configured metrics.
func WithLogger(l *zap.Logger) Option {
	return func(inv *Invoker) {
		if l == nil {
			inv.logger = sallust.Default()
			inv.logged = false
		} else {
			inv.logger = l
			inv.logged = true
		}
	}
}

// WithMeasures establishes the metrics updated by the Invoker.  Nil fields are discarded.
func WithMeasures(m Measures) Option {
	return func(inv *Invoker) {
		inv.measures = m.withDefaults()
		inv.measured = true
	}
}

// WithProvider creates the Invoker's metrics from a go-kit provider.  A nil provider does nothing.
func WithProvider(p provider.Provider) Option {
	return func(inv *Invoker) {
		if p != nil {
			WithMeasures(NewMeasures(p))(inv)
		}
	}
}

// Invoker performs fan-outs of Handlers and Signals.  An Invoker configured with a logger or
// metrics watches each joined result from a separate goroutine in order to report its outcome.
// The joined result itself is never wrapped or delayed by this.
//
// An Invoker is safe for concurrent use and must not be copied.  A nil *Invoker behaves as DefaultInvoker().
type Invoker struct {
	logger   *zap.Logger
	measures Measures
	logged   bool
	measured bool

	observers sync.WaitGroup
}

// NewInvoker creates an Invoker from a set of options.  With no options, the returned Invoker
// is uninstrumented and equivalent to DefaultInvoker().
func NewInvoker(options ...Option) *Invoker {
	inv := &Invoker{
		logger:   sallust.Default(),
		measures: Measures{}.withDefaults(),
	}

	for _, o := range options {
		o(inv)
	}

	return inv
}

var defaultInvoker = NewInvoker()

func (inv *Invoker) instrumented() bool {
	return inv != nil && (inv.logged || inv.measured)
}

// Wait blocks until the outcome of every fan-out this Invoker has started is logged and counted.
// An uninstrumented Invoker never has anything to wait on.  Wait is meant to be called once no
// more fan-outs are being started, e.g. before flushing logs or gathering metrics at shutdown.
func (inv *Invoker) Wait() {
	if inv != nil {
		inv.observers.Wait()
	}
}

// DefaultInvoker returns the uninstrumented Invoker used by InvokeIfDefined and InvokeSignalIfDefined.
func DefaultInvoker() *Invoker {
	return defaultInvoker
}

// Invoke starts every subscriber of h with arg, in registration order, and returns the join of
// their results.  A nil h yields async.Completed() without doing anything else.
//
// The subscriber list is read exactly once.  Subscriptions made or canceled while this function
// runs do not affect this fan-out.  If a subscriber panics, the panic propagates to the caller.
// Subscribers started before it are not affected.
func Invoke[T any](inv *Invoker, h *Handler[T], arg T) *async.Result {
	if h == nil {
		return async.Completed()
	}

	subscribers := h.subscribers.snapshot()
	result := fanOut(subscribers, func(fn Func[T]) *async.Result {
		return fn(arg)
	})

	if inv.instrumented() {
		inv.observe(h.name, len(subscribers), result)
	}

	return result
}

// InvokeSignal is the parameterless analog of Invoke.
func (inv *Invoker) InvokeSignal(s *Signal) *async.Result {
	if s == nil {
		return async.Completed()
	}

	subscribers := s.subscribers.snapshot()
	result := fanOut(subscribers, func(fn SignalFunc) *async.Result {
		return fn()
	})

	if inv.instrumented() {
		inv.observe(s.name, len(subscribers), result)
	}

	return result
}

// fanOut starts each subscriber in order and joins their results.  A single subscriber's result
// is returned as is, and two results are joined without any intermediate buffer.
func fanOut[F any](subscribers []F, start func(F) *async.Result) *async.Result {
	switch len(subscribers) {
	case 0:
		return async.Completed()

	case 1:
		if r := start(subscribers[0]); r != nil {
			return r
		}

		return async.Completed()

	case 2:
		first := start(subscribers[0])
		return async.Join2(first, start(subscribers[1]))
	}

	buffer := async.NewBuffer(len(subscribers))
	defer buffer.Release()

	for _, s := range subscribers {
		buffer.Add(start(s))
	}

	return buffer.Join()
}

func (inv *Invoker) observe(name string, subscriberCount int, result *async.Result) {
	inv.measures.Invocations.Add(1.0)
	if subscriberCount == 0 {
		return
	}

	inv.measures.Subscribers.Add(float64(subscriberCount))

	logger := inv.logger.With(
		zap.String(EventKey(), name),
		zap.String(InvocationIDKey(), ksuid.New().String()),
		zap.Int(SubscriberCountKey(), subscriberCount),
	)

	logger.Debug("fan-out started")
	if result.IsDone() {
		inv.completed(logger, result.Err())
		return
	}

	inv.measures.InFlight.Add(1.0)
	inv.observers.Add(1)
	go func() {
		defer inv.observers.Done()
		<-result.Done()
		inv.measures.InFlight.Add(-1.0)
		inv.completed(logger, result.Err())
	}()
}

func (inv *Invoker) completed(logger *zap.Logger, err error) {
	if err == nil {
		logger.Debug("fan-out completed")
		return
	}

	errs := async.Errors(err)
	inv.measures.Failures.Add(float64(len(errs)))
	logger.Error("fan-out failed", zap.Int("failureCount", len(errs)), zap.Errors("errors", errs))
}
