// Copyright (c) 2025 obtree authors
// SPDX-License-Identifier: MIT

// Package obtree implements an in-memory ordered set as a classical
// B-tree with a fanout fixed at construction time. See [Tree].
package obtree

import "fmt"

// Option configures a Tree at construction time.
type Option[T any] func(*Tree[T])

// WithPool toggles node pooling. Pooling is on by default: nodes freed
// by merges and root shrinks are recycled by a sync.Pool-backed
// allocator instead of left for the garbage collector. Passing false
// disables the pool, which is mostly useful for tests and for
// comparing allocation profiles.
func WithPool[T any](enabled bool) Option[T] {
	return func(t *Tree[T]) {
		if enabled {
			t.alloc.pool = newNodePool[T](t.alloc.m)
		} else {
			t.alloc.pool = nil
		}
	}
}

// Tree is an ordered set of T, implemented as a B-tree of fanout m.
// The zero value is not usable; construct one with [New].
type Tree[T any] struct {
	m     int
	cmp   func(T, T) int
	alloc allocator[T]

	depth int // 0 means no root; otherwise root is non-nil (possibly an empty leaf after draining) and height = depth-1
	root  *node[T]
	size  int
}

// New constructs an empty Tree with fanout m (which must be even and
// greater than 1) ordered by cmp, applying any opts in order.
func New[T any](m int, cmp func(T, T) int, opts ...Option[T]) *Tree[T] {
	if m <= 1 || m%2 != 0 {
		panic(fmt.Sprintf("obtree: fanout m must be even and > 1, got %d", m))
	}
	t := &Tree[T]{
		m:     m,
		cmp:   cmp,
		alloc: allocator[T]{m: m, pool: newNodePool[T](m)},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Len returns the number of elements currently stored.
func (t *Tree[T]) Len() int { return t.size }

// PoolStats reports the node allocator's live and total-ever-allocated
// node counts. If pooling is disabled (see [WithPool]), both are 0.
func (t *Tree[T]) PoolStats() (live, total int64) {
	return t.alloc.pool.stats()
}

// Insert adds v to the set, replacing any existing element equal to v
// under the tree's comparator.
func (t *Tree[T]) Insert(v T) {
	if t.root == nil {
		t.root = t.alloc.alloc()
		t.root.pivots.Push(0, v)
		t.root.length = 1
		t.depth = 1
		t.size = 1
		return
	}

	median, right, split, added := t.root.insert(&t.alloc, t.depth-1, t.cmp, v)
	if !split {
		if added {
			t.size++
		}
		return
	}

	newRoot := t.alloc.alloc()
	newRoot.pivots.Push(0, median)
	newRoot.length = 1
	newRoot.head = t.root
	newRoot.tail.Push(0, right)
	t.root = newRoot
	t.depth++
	t.size++
}

// Get returns the element matching p, if any.
func (t *Tree[T]) Get(p Probe[T]) (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	return t.root.search(t.depth-1, p)
}

// GetKey returns the element equal to key, if any.
func (t *Tree[T]) GetKey(key T) (T, bool) {
	return t.Get(Key[T](key, t.cmp))
}

// First returns the minimum element, if the set is non-empty.
func (t *Tree[T]) First() (T, bool) {
	return t.Get(First[T]())
}

// Last returns the maximum element, if the set is non-empty.
func (t *Tree[T]) Last() (T, bool) {
	return t.Get(Last[T]())
}

// Remove deletes the element matching p, if any, and returns it.
func (t *Tree[T]) Remove(p Probe[T]) (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}

	removed, found, underflow := t.root.remove(&t.alloc, t.depth-1, p)
	if !found {
		var zero T
		return zero, false
	}
	t.size--

	if underflow && t.root.length == 0 {
		if t.depth > 1 {
			old := t.root
			t.root = old.head
			t.depth--
			old.head = nil
			t.alloc.free(old)
		} else {
			// Depth 1 with an empty leaf root: keep the empty root
			// rather than dropping the tree to a nil root. Both are
			// externally indistinguishable (subsequent Get/First/Last
			// all correctly report absent against a length-0 leaf);
			// keeping it avoids re-allocating a root node on the next
			// Insert.
		}
	}

	return removed, true
}

// RemoveKey deletes the element equal to key, if any, and returns it.
func (t *Tree[T]) RemoveKey(key T) (T, bool) {
	return t.Remove(Key[T](key, t.cmp))
}

// RemoveFirst deletes and returns the minimum element, if any.
func (t *Tree[T]) RemoveFirst() (T, bool) {
	return t.Remove(First[T]())
}

// RemoveLast deletes and returns the maximum element, if any.
func (t *Tree[T]) RemoveLast() (T, bool) {
	return t.Remove(Last[T]())
}
