// Copyright (c) 2025 obtree authors
// SPDX-License-Identifier: MIT

package obtree_test

import "testing"

func TestEqualSameContentDifferentShape(t *testing.T) {
	t.Parallel()

	a := newIntTree(2)
	b := newIntTree(8)
	for _, v := range []int{5, 3, 8, 1, 4, 9, 2, 7, 6, 10} {
		a.Insert(v)
	}
	for _, v := range []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10} {
		b.Insert(v)
	}

	if !a.Equal(b) {
		t.Fatalf("Equal() = false for trees of different fanout but identical content")
	}
	if !a.Equal(a) {
		t.Fatalf("Equal() = false comparing a tree against itself")
	}
}

func TestEqualDifferentSize(t *testing.T) {
	t.Parallel()

	a := newIntTree(4)
	b := newIntTree(4)
	a.Insert(1)
	a.Insert(2)
	b.Insert(1)

	if a.Equal(b) {
		t.Fatalf("Equal() = true for trees of different size")
	}
}

func TestEqualDifferentContentSameSize(t *testing.T) {
	t.Parallel()

	a := newIntTree(4)
	b := newIntTree(4)
	a.Insert(1)
	a.Insert(2)
	b.Insert(1)
	b.Insert(3)

	if a.Equal(b) {
		t.Fatalf("Equal() = true for trees with differing elements")
	}
}

func TestEqualBothEmpty(t *testing.T) {
	t.Parallel()

	a := newIntTree(4)
	b := newIntTree(8)
	if !a.Equal(b) {
		t.Fatalf("Equal() = false for two empty trees")
	}
}

func TestEqualDrainedRootAgainstNeverPopulated(t *testing.T) {
	t.Parallel()

	// a keeps its empty leaf root after draining (see DESIGN.md); b
	// never allocated a root at all. Both represent the empty set.
	a := newIntTree(4)
	a.Insert(1)
	a.RemoveKey(1)

	b := newIntTree(4)

	if !a.Equal(b) {
		t.Fatalf("Equal() = false for a drained empty-root tree vs. a never-populated tree")
	}
	if !b.Equal(a) {
		t.Fatalf("Equal() = false (reversed) for a drained empty-root tree vs. a never-populated tree")
	}
}
