// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package event

import "github.com/xmidt-org/asyncevent/async"

// Func is a subscriber that accepts a single argument.  A Func should start its work and return
// promptly, reporting the outcome through the returned Result.  A nil Result is treated as success.
type Func[T any] func(T) *async.Result

// Handler is an ordered, concurrency-safe list of Func subscribers.  The zero value is an unnamed,
// empty Handler ready to use.  A Handler must not be copied after first use.
type Handler[T any] struct {
	name        string
	subscribers registry[Func[T]]
}

// NewHandler creates an empty Handler.  The name is used only to identify the handler in logging
// and need not be unique.
func NewHandler[T any](name string) *Handler[T] {
	return &Handler[T]{name: name}
}

// Combine creates a new Handler with the current subscribers of each given handler, in argument
// order.  Nil handlers are skipped.  Later changes to the given handlers do not affect the result.
func Combine[T any](name string, handlers ...*Handler[T]) *Handler[T] {
	combined := NewHandler[T](name)
	for _, h := range handlers {
		if h != nil {
			combined.subscribers.addAll(h.subscribers.snapshot())
		}
	}

	return combined
}

// Name returns the name this Handler was created with.
func (h *Handler[T]) Name() string {
	if h == nil {
		return ""
	}

	return h.name
}

// Subscribe appends a subscriber to this Handler.  The returned closure removes exactly this
// subscription and may be called any number of times.  Subscribing a nil fn does nothing.
//
// The same function may be subscribed more than once, in which case it is invoked once per subscription.
// Subscribe requires a bound Handler.  Calling it on a nil *Handler panics.
func (h *Handler[T]) Subscribe(fn Func[T]) (cancel func()) {
	if fn == nil {
		return func() {}
	}

	return h.subscribers.add(fn)
}

// Len returns the current number of subscribers.
func (h *Handler[T]) Len() int {
	if h == nil {
		return 0
	}

	return h.subscribers.len()
}

// Subscribers returns a copy of the current subscribers, in registration order.
func (h *Handler[T]) Subscribers() []Func[T] {
	if h == nil {
		return nil
	}

	return append([]Func[T](nil), h.subscribers.snapshot()...)
}

// Clear removes all subscribers.  Cancel closures for removed subscriptions become no-ops.
// Clearing a nil Handler does nothing.
func (h *Handler[T]) Clear() {
	if h != nil {
		h.subscribers.clear()
	}
}
