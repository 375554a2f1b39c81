// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package event

import "github.com/xmidt-org/asyncevent/async"

// InvokeIfDefined starts every subscriber of h with arg and returns a Result that completes once
// all of their results have completed.  If h is nil, an already completed Result is returned.
//
// The returned Result fails if one or more subscriber results fail, and async.Errors enumerates
// every one of those failures.  See Invoke for the full semantics.
func InvokeIfDefined[T any](h *Handler[T], arg T) *async.Result {
	return Invoke(defaultInvoker, h, arg)
}

// InvokeSignalIfDefined is the parameterless analog of InvokeIfDefined.
func InvokeSignalIfDefined(s *Signal) *async.Result {
	return defaultInvoker.InvokeSignal(s)
}
