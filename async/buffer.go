// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package async

import "sync"

// maxPooledCapacity bounds the size of buffers returned to the pool, so that one very large
// fan-out doesn't pin a large backing array indefinitely.
const maxPooledCapacity = 1024

var buffers = sync.Pool{
	New: func() interface{} {
		return new(Buffer)
	},
}

// Buffer is a transient, pooled collection of in-flight results belonging to exactly one fan-out.
// A Buffer is not safe for concurrent use, but distinct Buffers may be used concurrently.
//
// Typical usage:
//
//	b := async.NewBuffer(len(tasks))
//	defer b.Release()
//	for _, t := range tasks {
//	    b.Add(t())
//	}
//
//	return b.Join()
type Buffer struct {
	results []*Result
}

// NewBuffer rents an empty Buffer with room for at least size results.
func NewBuffer(size int) *Buffer {
	b := buffers.Get().(*Buffer)
	if cap(b.results) < size {
		b.results = make([]*Result, 0, size)
	}

	return b
}

// Add appends a result to this Buffer.
func (b *Buffer) Add(r *Result) {
	b.results = append(b.results, r)
}

// Len returns the count of results added so far.
func (b *Buffer) Len() int {
	return len(b.results)
}

// Join joins every result in this Buffer.  The returned Result holds no reference to this
// Buffer, which may be released immediately afterward.
func (b *Buffer) Join() *Result {
	return Join(b.results...)
}

// Release clears this Buffer and returns it to the pool.  No reference to any result survives
// a release.  A Buffer must not be used after it is released.
func (b *Buffer) Release() {
	clear(b.results[:cap(b.results)])
	b.results = b.results[:0]
	if cap(b.results) <= maxPooledCapacity {
		buffers.Put(b)
	}
}
