// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package event provides multicast subscriber lists whose subscribers do asynchronous work, together
with the fan-out invocation that starts every subscriber and joins their results.

A Handler[T] holds subscribers that accept a single argument, while a Signal holds parameterless
subscribers.  A nil *Handler[T] or *Signal is an unbound handle: invoking it does nothing and
yields an already completed result.

	h := event.NewHandler[string]("deviceConnected")
	cancel := h.Subscribe(func(id string) *async.Result {
	    return async.Go(func() error { return notify(id) })
	})

	defer cancel()
	err := event.InvokeIfDefined(h, "mac:112233445566").Wait(ctx)

Subscribers are always started in registration order, one after another.  Their results may
complete in any order.  The joined result fails if any subscriber's result fails, and carries
every such failure.  A subscriber that panics while being started propagates that panic to the
caller of the invocation.
*/
package event
