// Copyright (c) 2025 obtree authors
// SPDX-License-Identifier: MIT

// Package jsonset implements the JSON encoding shared by Tree's
// MarshalJSON/UnmarshalJSON pair: a set is serialized as a single
// sorted array, not a map, because order matters and because a plain
// array is the smallest faithful encoding of an ordered set.
package jsonset

import "encoding/json"

// envelope is the wire shape: a JSON object whose "elements" field
// holds the ordered array of elements. It is
// named (rather than marshaling a slice directly) so future fields
// can be added to the envelope without breaking the wire format, the
// same reasoning the retrieved routing package's own MarshalJSON
// result struct follows.
type envelope[T any] struct {
	Elements []T `json:"elements"`
}

// Encode marshals elements, which must already be in the set's
// canonical order, as a JSON envelope.
func Encode[T any](elements []T) ([]byte, error) {
	return json.Marshal(envelope[T]{Elements: elements})
}

// Decode parses data produced by Encode back into an ordered slice of
// elements. It does not itself verify ordering or uniqueness; the
// caller re-inserts each element through the tree's own Insert, which
// re-establishes both.
func Decode[T any](data []byte) ([]T, error) {
	var e envelope[T]
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, err
	}
	return e.Elements, nil
}
