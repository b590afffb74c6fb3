// Copyright (c) 2025 obtree authors
// SPDX-License-Identifier: MIT

package obtree

// Equal reports whether t and o contain the same elements under t's
// comparator, regardless of each tree's internal shape (fanout,
// height, or node boundaries need not match). It checks size first,
// then falls back to an in-order structural walk of both trees.
func (t *Tree[T]) Equal(o *Tree[T]) bool {
	if o == nil || t.size != o.size {
		return false
	}
	if t == o || t.size == 0 {
		// Both trees already have equal size (checked above), so
		// t.size == 0 means o is empty too — regardless of whether
		// either root is nil or a drained empty-leaf root (see
		// DESIGN.md's "keep the empty root" resolution).
		return true
	}

	as, bs := t.inorder(), o.inorder()
	for i := range as {
		if t.cmp(as[i], bs[i]) != 0 {
			return false
		}
	}
	return true
}

// inorder returns every element of the tree in ascending order.
func (t *Tree[T]) inorder() []T {
	out := make([]T, 0, t.size)
	if t.root != nil {
		out = appendInorder(out, t.root, t.depth-1)
	}
	return out
}

func appendInorder[T any](out []T, n *node[T], height int) []T {
	pivots := n.pivots.AsSlice(n.length)
	for i, p := range pivots {
		if height > 0 {
			out = appendInorder(out, n.childAt(i), height-1)
		}
		out = append(out, p)
	}
	if height > 0 {
		out = appendInorder(out, n.childAt(len(pivots)), height-1)
	}
	return out
}
