// Copyright (c) 2025 obtree authors
// SPDX-License-Identifier: MIT

// Package slot implements the fixed-capacity, externally-lengthed slot
// array that backs every B-tree node's pivot and child storage.
//
// An Array[T] of capacity M holds up to M values of T. The logical
// length is never stored by the array itself, in any build; every
// operation takes it as an argument, and the caller (the node) is the
// single source of truth for how many of the M slots are live. This
// mirrors the shape of [sparse.Array] in the retrieved bart package,
// simplified from a popcount-compressed, bitset-addressed array to a
// plain positional one, since a node already knows its own length and
// never needs to address a slot by a sparse key.
package slot

import "github.com/conradludgate/obtree/internal/assert"

// Array is a fixed-capacity container of up to Cap() slots of
// T. The zero value is not usable; construct one with New.
type Array[T any] struct {
	vals []T // len(vals) == capacity, always; logical length lives elsewhere
}

// New returns an empty array with capacity m. No element is allocated
// beyond the backing slice itself.
func New[T any](m int) Array[T] {
	return Array[T]{vals: make([]T, m)}
}

// Cap returns the array's fixed capacity.
func (a *Array[T]) Cap() int {
	return len(a.vals)
}

// Push writes v at index len. Precondition: len < Cap().
func (a *Array[T]) Push(length int, v T) {
	assert.Truef(length < a.Cap(), "slot: Push at len=%d cap=%d", length, a.Cap())
	a.vals[length] = v
}

// Pop reads and returns the element at len-1. Precondition: len > 0.
// The vacated slot is zeroed so it does not keep a stale reference
// alive past the logical length.
func (a *Array[T]) Pop(length int) T {
	assert.Truef(length > 0, "slot: Pop at len=%d", length)
	v := a.vals[length-1]
	var zero T
	a.vals[length-1] = zero
	return v
}

// InsertAt shifts [i, len) right by one and writes v at i.
// Precondition: i <= len < Cap().
func (a *Array[T]) InsertAt(length, i int, v T) {
	assert.Truef(i <= length && length < a.Cap(), "slot: InsertAt i=%d len=%d cap=%d", i, length, a.Cap())
	copy(a.vals[i+1:length+1], a.vals[i:length])
	a.vals[i] = v
}

// RemoveAt reads the element at i, shifts (i, len) left by one, and
// returns the read element. Precondition: i < len <= Cap().
func (a *Array[T]) RemoveAt(length, i int) T {
	assert.Truef(i < length && length <= a.Cap(), "slot: RemoveAt i=%d len=%d cap=%d", i, length, a.Cap())
	v := a.vals[i]
	copy(a.vals[i:length-1], a.vals[i+1:length])
	var zero T
	a.vals[length-1] = zero
	return v
}

// SplitOff allocates a new array of the same capacity and moves slots
// [at, len) into it starting at index 0. The caller tracks the two
// resulting lengths (at for self, len-at for the returned array).
func (a *Array[T]) SplitOff(length, at int) Array[T] {
	assert.Truef(at <= length, "slot: SplitOff at=%d len=%d", at, length)
	right := New[T](a.Cap())
	n := copy(right.vals, a.vals[at:length])
	var zero T
	for i := at; i < length; i++ {
		a.vals[i] = zero
	}
	_ = n
	return right
}

// Truncate destroys elements [newLen, oldLen). No-op if newLen >= oldLen.
func (a *Array[T]) Truncate(oldLen, newLen int) {
	if newLen >= oldLen {
		return
	}
	var zero T
	for i := newLen; i < oldLen; i++ {
		a.vals[i] = zero
	}
}

// Clear destroys every element in [0, length).
func (a *Array[T]) Clear(length int) {
	a.Truncate(length, 0)
}

// AsSlice views the initialized prefix as an ordered slice of T. The
// returned slice aliases the array's storage; callers must not retain
// it across a mutating call.
func (a *Array[T]) AsSlice(length int) []T {
	return a.vals[:length:length]
}

// Take returns the array's current backing storage as an independent
// Array and resets the receiver to an empty array of the same
// capacity. Unlike the other operations, Take does not take a length:
// the caller is responsible for tracking that the receiver's logical
// length is now 0.
func (a *Array[T]) Take() Array[T] {
	taken := Array[T]{vals: a.vals}
	a.vals = make([]T, len(taken.vals))
	return taken
}
