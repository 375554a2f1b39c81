// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package event

import (
	"sync"
	"sync/atomic"
)

// subscribers is an immutable, ordered list of subscriptions.  A new list is built
// for every change, so a list obtained by a fan-out never changes underneath it.
type subscribers[F any] struct {
	ids []uint64
	fns []F
}

func (s *subscribers[F]) len() int {
	if s == nil {
		return 0
	}

	return len(s.fns)
}

func (s *subscribers[F]) with(id uint64, fn F) *subscribers[F] {
	n := s.len()
	next := &subscribers[F]{
		ids: make([]uint64, n, n+1),
		fns: make([]F, n, n+1),
	}

	if s != nil {
		copy(next.ids, s.ids)
		copy(next.fns, s.fns)
	}

	next.ids = append(next.ids, id)
	next.fns = append(next.fns, fn)
	return next
}

func (s *subscribers[F]) without(id uint64) (*subscribers[F], bool) {
	for i := 0; i < s.len(); i++ {
		if s.ids[i] != id {
			continue
		}

		next := &subscribers[F]{
			ids: make([]uint64, 0, len(s.ids)-1),
			fns: make([]F, 0, len(s.fns)-1),
		}

		next.ids = append(append(next.ids, s.ids[:i]...), s.ids[i+1:]...)
		next.fns = append(append(next.fns, s.fns[:i]...), s.fns[i+1:]...)
		return next, true
	}

	return s, false
}

// registry is the concurrency-safe, copy-on-write subscriber list shared by Handler and Signal.
// Reads never block.  Writes are serialized.
type registry[F any] struct {
	lock    sync.Mutex
	lastID  uint64
	current atomic.Pointer[subscribers[F]]
}

// snapshot returns the current subscriber functions in registration order.  The returned
// slice must not be modified.
func (r *registry[F]) snapshot() []F {
	if s := r.current.Load(); s != nil {
		return s.fns
	}

	return nil
}

func (r *registry[F]) len() int {
	return r.current.Load().len()
}

// add appends fn and returns the idempotent closure that removes it.
func (r *registry[F]) add(fn F) func() {
	r.lock.Lock()
	r.lastID++
	id := r.lastID
	r.current.Store(r.current.Load().with(id, fn))
	r.lock.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			r.remove(id)
		})
	}
}

func (r *registry[F]) addAll(fns []F) {
	r.lock.Lock()
	defer r.lock.Unlock()

	s := r.current.Load()
	for _, fn := range fns {
		r.lastID++
		s = s.with(r.lastID, fn)
	}

	r.current.Store(s)
}

func (r *registry[F]) remove(id uint64) {
	r.lock.Lock()
	defer r.lock.Unlock()

	if next, ok := r.current.Load().without(id); ok {
		r.current.Store(next)
	}
}

func (r *registry[F]) clear() {
	r.lock.Lock()
	r.current.Store(nil)
	r.lock.Unlock()
}
