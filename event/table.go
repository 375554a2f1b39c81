// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package event

import "github.com/xmidt-org/asyncevent/async"

// Table maps event names onto Handlers.  Most often, names are event types, but any string
// that is meaningful to an application may be used.  A Table is not safe for concurrent
// modification, though the Handlers it holds are.
type Table[T any] map[string]*Handler[T]

// Add subscribes one or more functions to the named Handler.  If fns is empty, this method does nothing.
// If the named Handler doesn't exist, it is created.
func (t Table[T]) Add(name string, fns ...Func[T]) {
	if len(fns) == 0 {
		return
	}

	h, ok := t[name]
	if !ok {
		h = NewHandler[T](name)
		t[name] = h
	}

	for _, fn := range fns {
		h.Subscribe(fn)
	}
}

// Set changes the given name so that it maps to h.  If h is nil, this method deletes the name.
func (t Table[T]) Set(name string, h *Handler[T]) {
	if h == nil {
		delete(t, name)
		return
	}

	t[name] = h
}

// Get returns the Handler associated with the given name.  The fallback names, if supplied, are used
// if no Handler is present for name.  The fallback is useful for defaults, e.g. t.Get("IOT", "default").
func (t Table[T]) Get(name string, fallback ...string) (*Handler[T], bool) {
	h, ok := t[name]
	for i := 0; i < len(fallback) && !ok; i++ {
		h, ok = t[fallback[i]]
	}

	return h, ok
}

// Invoke looks up a Handler as with Get and fans arg out to it using the given Invoker.  A name
// that isn't found, including via the fallbacks, is an unbound handle and yields an already
// completed Result.
func (t Table[T]) Invoke(inv *Invoker, name string, arg T, fallback ...string) *async.Result {
	h, _ := t.Get(name, fallback...)
	return Invoke(inv, h, arg)
}
