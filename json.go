// Copyright (c) 2025 obtree authors
// SPDX-License-Identifier: MIT

package obtree

import "github.com/conradludgate/obtree/internal/jsonset"

// MarshalJSON encodes the tree's elements, in ascending order, as a
// JSON array wrapped in an envelope object.
func (t *Tree[T]) MarshalJSON() ([]byte, error) {
	return jsonset.Encode(t.inorder())
}

// UnmarshalJSON replaces the tree's contents with the elements decoded
// from data, inserted through Insert so the comparator re-establishes
// ordering; a duplicate in the wire data replaces the earlier equal
// element, so the tree keeps one element per key.
//
// The tree must already be constructed with [New] (so it has a
// fanout and comparator); UnmarshalJSON only resets its contents.
func (t *Tree[T]) UnmarshalJSON(data []byte) error {
	elements, err := jsonset.Decode[T](data)
	if err != nil {
		return err
	}

	t.root = nil
	t.depth = 0
	t.size = 0
	for _, v := range elements {
		t.Insert(v)
	}
	return nil
}
