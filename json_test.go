// Copyright (c) 2025 obtree authors
// SPDX-License-Identifier: MIT

package obtree_test

import (
	"cmp"
	"testing"

	"github.com/conradludgate/obtree"
)

func TestJSONRoundTrip(t *testing.T) {
	t.Parallel()

	tr := newIntTree(4)
	for _, v := range []int{5, 3, 8, 1, 9} {
		tr.Insert(v)
	}

	buf, err := tr.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}

	got := obtree.New[int](4, cmp.Compare[int])
	if err := got.UnmarshalJSON(buf); err != nil {
		t.Fatalf("UnmarshalJSON: %v", err)
	}

	if !tr.Equal(got) {
		t.Fatalf("round-tripped tree %v not equal to original %v", got, tr)
	}
}

func TestJSONEmptyTree(t *testing.T) {
	t.Parallel()

	tr := newIntTree(4)
	buf, err := tr.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}

	got := obtree.New[int](4, cmp.Compare[int])
	if err := got.UnmarshalJSON(buf); err != nil {
		t.Fatalf("UnmarshalJSON: %v", err)
	}
	if got.Len() != 0 {
		t.Fatalf("Len() = %d after round-tripping an empty tree, want 0", got.Len())
	}
}

func TestJSONUnmarshalRejectsGarbage(t *testing.T) {
	t.Parallel()

	got := obtree.New[int](4, cmp.Compare[int])
	if err := got.UnmarshalJSON([]byte("not json")); err == nil {
		t.Fatalf("UnmarshalJSON accepted invalid JSON")
	}
}
