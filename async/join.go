// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package async

import "go.uber.org/multierr"

// Join2 joins exactly two results.  The returned Result completes once both a and b have completed.
// Its error is nil when both succeed, otherwise it is the combination of each failure.
func Join2(a, b *Result) *Result {
	if a.IsDone() && b.IsDone() {
		return Failed(multierr.Append(a.Err(), b.Err()))
	}

	p := NewPromise()
	go func() {
		<-a.Done()
		<-b.Done()
		p.Complete(multierr.Append(a.Err(), b.Err()))
	}()

	return p.Result()
}

// Join returns a Result that completes only after every one of the given results has completed.
// With no results, Completed() is returned.  With exactly one, that result is returned as is.
//
// The joined error is nil if and only if every input succeeded.  Otherwise, it carries every
// failure in input order, which can be enumerated with Errors.  The results slice is copied, so
// callers are free to reuse it once Join returns.
func Join(results ...*Result) *Result {
	switch len(results) {
	case 0:
		return Completed()

	case 1:
		if results[0] == nil {
			return Completed()
		}

		return results[0]

	case 2:
		return Join2(results[0], results[1])
	}

	var (
		err     error
		pending []*Result
	)

	for i, r := range results {
		if !r.IsDone() {
			// remaining results are waited on in order, so failures stay in input order
			pending = append(make([]*Result, 0, len(results)-i), results[i:]...)
			break
		}

		err = multierr.Append(err, r.Err())
	}

	if len(pending) == 0 {
		return Failed(err)
	}

	p := NewPromise()
	go func() {
		for i, r := range pending {
			<-r.Done()
			err = multierr.Append(err, r.Err())

			// drop each reference as soon as it is no longer needed
			pending[i] = nil
		}

		p.Complete(err)
	}()

	return p.Result()
}
