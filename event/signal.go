// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package event

import "github.com/xmidt-org/asyncevent/async"

// SignalFunc is a parameterless subscriber.  As with Func, a nil Result is treated as success.
type SignalFunc func() *async.Result

// Signal is the parameterless analog of Handler.
type Signal struct {
	name        string
	subscribers registry[SignalFunc]
}

// NewSignal creates an empty, named Signal.
func NewSignal(name string) *Signal {
	return &Signal{name: name}
}

// CombineSignals creates a new Signal with the current subscribers of each given signal, in argument order.
func CombineSignals(name string, signals ...*Signal) *Signal {
	combined := NewSignal(name)
	for _, s := range signals {
		if s != nil {
			combined.subscribers.addAll(s.subscribers.snapshot())
		}
	}

	return combined
}

// Name returns the name this Signal was created with.  See Handler.Name.
func (s *Signal) Name() string {
	if s == nil {
		return ""
	}

	return s.name
}

// Subscribe appends a subscriber.  See Handler.Subscribe.  Calling it on a nil *Signal panics.
func (s *Signal) Subscribe(fn SignalFunc) (cancel func()) {
	if fn == nil {
		return func() {}
	}

	return s.subscribers.add(fn)
}

// Len returns the current number of subscribers.  See Handler.Len.
func (s *Signal) Len() int {
	if s == nil {
		return 0
	}

	return s.subscribers.len()
}

// Subscribers returns a copy of the current subscribers.  See Handler.Subscribers.
func (s *Signal) Subscribers() []SignalFunc {
	if s == nil {
		return nil
	}

	return append([]SignalFunc(nil), s.subscribers.snapshot()...)
}

// Clear removes all subscribers and does nothing on a nil Signal.  See Handler.Clear.
func (s *Signal) Clear() {
	if s != nil {
		s.subscribers.clear()
	}
}
