// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package async

import (
	"context"
	"runtime/debug"
	"sync"
	"time"
)

var completed = newCompleted(nil)

// Result is the write-once outcome of an asynchronous operation.  Instances are created
// via Completed, Failed, Go, NewPromise or one of the join functions.  The zero value is not usable.
type Result struct {
	done chan struct{}
	err  error
}

func newCompleted(err error) *Result {
	r := &Result{
		done: make(chan struct{}),
		err:  err,
	}

	close(r.done)
	return r
}

// Completed returns the shared, already completed successful Result.  This function
// does not allocate.
func Completed() *Result {
	return completed
}

// Failed returns an already completed Result carrying the given error.  If err is nil,
// Completed() is returned.
func Failed(err error) *Result {
	if err == nil {
		return completed
	}

	return newCompleted(err)
}

// Done returns a channel that is closed once this Result has completed.  Semantics are
// equivalent to context.Context.Done().
func (r *Result) Done() <-chan struct{} {
	if r == nil {
		return completed.done
	}

	return r.done
}

// IsDone tests if this Result has completed, without blocking.
func (r *Result) IsDone() bool {
	select {
	case <-r.Done():
		return true
	default:
		return false
	}
}

// Err returns the error this Result completed with.  Until this Result completes, Err returns nil.
func (r *Result) Err() error {
	if r == nil {
		return nil
	}

	select {
	case <-r.done:
		return r.err
	default:
		return nil
	}
}

// Wait blocks until either this Result completes or the context is done.  In the former case,
// the Result's error is returned.  In the latter case, ctx.Err() is returned.  Waiting never
// affects the underlying operation.
func (r *Result) Wait(ctx context.Context) error {
	if r.IsDone() {
		return r.Err()
	}

	select {
	case <-r.Done():
		return r.Err()
	case <-ctx.Done():
		return ctx.Err()
	}
}

// WaitTimeout waits on this Result until either it completes or the timeout elapses.  This method
// returns true if the Result completed within the timeout, false if the timeout elapsed.
func (r *Result) WaitTimeout(timeout time.Duration) bool {
	if r.IsDone() {
		return true
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-r.Done():
		return true
	case <-timer.C:
		return false
	}
}

// Promise is the producer side of a Result.
type Promise struct {
	result *Result
	once   sync.Once
}

// NewPromise creates a Promise whose Result is incomplete.
func NewPromise() *Promise {
	return &Promise{
		result: &Result{done: make(chan struct{})},
	}
}

// Result returns the consumer side of this Promise.  The same instance is returned on every call.
func (p *Promise) Result() *Result {
	return p.result
}

// Complete completes this Promise's Result with the given error, which is nil for success.
// Only the first call has any effect.  This method returns true if this call completed the Result.
func (p *Promise) Complete(err error) (completedNow bool) {
	p.once.Do(func() {
		p.result.err = err
		close(p.result.done)
		completedNow = true
	})

	return
}

// Go runs fn on a new goroutine and returns a Result that completes when fn returns.  A panic
// within fn is recovered and completes the Result with a *PanicError.
func Go(fn func() error) *Result {
	p := NewPromise()
	go func() {
		var err error
		defer func() {
			if r := recover(); r != nil {
				err = &PanicError{
					Value: r,
					Stack: debug.Stack(),
				}
			}

			p.Complete(err)
		}()

		err = fn()
	}()

	return p.Result()
}
