// Copyright (c) 2025 obtree authors
// SPDX-License-Identifier: MIT

package obtree

import (
	"sync"
	"sync/atomic"
)

// nodePool is a type-safe wrapper around sync.Pool, specialized for
// *node[T] instances of a fixed fanout m. It is grounded on the
// retrieved route-table package's own node pool: a sync.Pool plus
// atomic live/total counters for diagnostics, adapted here from
// pooling trie nodes to pooling B-tree nodes of fixed fanout m (the
// routing package's nodes are all uniformly sized regardless of
// level, so unlike there we must close over m in New rather than use
// a bare zero-value constructor).
//
// Pooling is an internal allocator optimization a Tree always uses
// unless built with WithPool(false); it is not a customization point
// exposed to callers, so it does not reintroduce the allocator
// customization this package otherwise declines to support.
type nodePool[T any] struct {
	sync.Pool

	totalAllocated atomic.Int64
	currentLive    atomic.Int64
}

func newNodePool[T any](m int) *nodePool[T] {
	p := &nodePool[T]{}
	p.New = func() any {
		p.totalAllocated.Add(1)
		return newNode[T](m)
	}
	return p
}

// alloc returns a *node[T] from the pool. Callers reach this only
// through allocator.alloc, which already guards against a nil pool;
// the nil check here just matches the nil-receiver safety the rest of
// this type's methods offer.
func (p *nodePool[T]) alloc() *node[T] {
	if p == nil {
		return nil
	}
	p.currentLive.Add(1)
	return p.Get().(*node[T])
}

// free returns n to the pool after resetting its contents. If the
// pool is nil, n is simply discarded (left for the garbage collector).
func (p *nodePool[T]) free(n *node[T]) {
	if p == nil {
		return
	}
	p.currentLive.Add(-1)
	n.reset()
	p.Put(n)
}

// stats reports the number of currently live (checked-out) nodes and
// the total number of *node[T] ever allocated by this pool.
func (p *nodePool[T]) stats() (live, total int64) {
	if p == nil {
		return 0, 0
	}
	return p.currentLive.Load(), p.totalAllocated.Load()
}

// allocator bundles a fixed fanout with the pool that allocates and
// frees nodes of that fanout, so the node engine's recursive
// operations only need to thread one value for both concerns.
type allocator[T any] struct {
	m    int
	pool *nodePool[T]
}

func (a *allocator[T]) half() int {
	return a.m / 2
}

func (a *allocator[T]) alloc() *node[T] {
	if a.pool != nil {
		return a.pool.alloc()
	}
	return newNode[T](a.m)
}

func (a *allocator[T]) free(n *node[T]) {
	if a.pool != nil {
		a.pool.free(n)
		return
	}
	n.reset()
}
