// Copyright (c) 2025 obtree authors
// SPDX-License-Identifier: MIT

package obtree

import (
	"slices"

	"github.com/conradludgate/obtree/internal/slot"
)

// node is a single level of the B-tree, of fanout m. A node never
// stores its own height or its tree's fanout: both are threaded
// through every call by the caller, the same "externally lengthed"
// discipline the slot array itself follows (see internal/slot). This
// keeps every node the same fixed size regardless of where it sits in
// the tree.
//
// Children are stored as (head, tail[0..length)), matching the shape
// described for the pivot array: head is the leftmost child and
// tail[k] is the child to the right of pivots[k]. head is nil exactly
// when the node is a leaf.
type node[T any] struct {
	length int
	pivots slot.Array[T]
	head   *node[T]
	tail   slot.Array[*node[T]]
}

func newNode[T any](m int) *node[T] {
	return &node[T]{
		pivots: slot.New[T](m),
		tail:   slot.New[*node[T]](m),
	}
}

// reset clears a node's contents so it can be returned to the pool
// without keeping any stored element or child reachable.
func (n *node[T]) reset() {
	n.pivots.Clear(n.length)
	if n.head != nil {
		n.tail.Clear(n.length)
	}
	n.head = nil
	n.length = 0
}

// childAt returns the child at logical position i, 0 <= i <= length:
// 0 is head, k>=1 is tail[k-1].
func (n *node[T]) childAt(i int) *node[T] {
	if i == 0 {
		return n.head
	}
	return n.tail.AsSlice(n.length)[i-1]
}

func (n *node[T]) pivotAt(i int) T {
	return n.pivots.AsSlice(n.length)[i]
}

func (n *node[T]) setPivotAt(i int, v T) {
	n.pivots.AsSlice(n.length)[i] = v
}

// removeChildSlotAt removes the logical child slot j, shifting every
// later slot left by one. Must be called while n.length still
// reflects the slot count prior to removal (the caller decrements
// n.length itself afterwards).
func (n *node[T]) removeChildSlotAt(j int) {
	if j == 0 {
		n.head = n.tail.RemoveAt(n.length, 0)
		return
	}
	n.tail.RemoveAt(n.length, j-1)
}

// search walks the subtree rooted at n (at the given height) for p's
// target, returning the matching pivot and true on an exact hit.
func (n *node[T]) search(height int, p probe[T]) (T, bool) {
	pivots := n.pivots.AsSlice(n.length)
	i, exact := p.find(pivots, height == 0)
	if exact {
		return pivots[i], true
	}
	if height == 0 {
		var zero T
		return zero, false
	}
	return n.childAt(i).search(height-1, p)
}

// insert adds v into the subtree rooted at n, replacing an equal
// element in place. If n overflows as a result, insert returns the
// median pivot and new right sibling to be inserted into n's parent,
// with split = true. n itself always remains the left sibling. added
// reports whether v was a genuinely new element (false when it
// overwrote an existing equal element, at this level or at any level
// below), so the caller can maintain an accurate element count.
func (n *node[T]) insert(a *allocator[T], height int, cmp func(T, T) int, v T) (median T, right *node[T], split bool, added bool) {
	pivots := n.pivots.AsSlice(n.length)
	i, exact := slices.BinarySearchFunc(pivots, v, cmp)
	if exact {
		pivots[i] = v
		return median, nil, false, false
	}

	var newChild *node[T]
	if height > 0 {
		childMedian, childRight, childSplit, childAdded := n.childAt(i).insert(a, height-1, cmp, v)
		if !childSplit {
			return median, nil, false, childAdded
		}
		v = childMedian
		newChild = childRight
	}

	if n.length < a.m {
		n.pivots.InsertAt(n.length, i, v)
		if newChild != nil {
			n.tail.InsertAt(n.length, i, newChild)
		}
		n.length++
		return median, nil, false, true
	}

	median, right, split = n.split(a, i, v, newChild)
	return median, right, split, true
}

// split is invoked only when n is full (length == m). It conceptually
// inserts v (and, for an internal node, newChild as the right child of
// v) into the overfull node, then divides the result into two nodes of
// exactly m/2 pivots each plus the median. The three cases in the node
// engine's design (i == m/2, i < m/2, i > m/2) all fall out of the
// same positional math below rather than three separate code paths.
func (n *node[T]) split(a *allocator[T], i int, v T, newChild *node[T]) (median T, right *node[T], split bool) {
	half := a.half()
	oldLen := n.length
	internal := n.head != nil || newChild != nil

	oldPivots := append(make([]T, 0, oldLen), n.pivots.AsSlice(oldLen)...)

	var oldChildren []*node[T]
	if internal {
		oldChildren = make([]*node[T], 0, oldLen+1)
		for k := 0; k <= oldLen; k++ {
			oldChildren = append(oldChildren, n.childAt(k))
		}
	}

	pivots := make([]T, 0, oldLen+1)
	pivots = append(pivots, oldPivots[:i]...)
	pivots = append(pivots, v)
	pivots = append(pivots, oldPivots[i:]...)

	var children []*node[T]
	if internal {
		children = make([]*node[T], 0, oldLen+2)
		children = append(children, oldChildren[:i+1]...)
		children = append(children, newChild)
		children = append(children, oldChildren[i+1:]...)
	}

	median = pivots[half]

	n.pivots.Clear(oldLen)
	if internal {
		n.tail.Clear(oldLen)
	}
	n.head = nil
	n.length = 0

	right = a.alloc()

	for _, pv := range pivots[:half] {
		n.pivots.Push(n.length, pv)
		n.length++
	}
	for _, pv := range pivots[half+1:] {
		right.pivots.Push(right.length, pv)
		right.length++
	}

	if internal {
		n.head = children[0]
		for k, c := range children[1 : half+1] {
			n.tail.Push(k, c)
		}
		right.head = children[half+1]
		for k, c := range children[half+2:] {
			right.tail.Push(k, c)
		}
	}

	return median, right, true
}

// remove deletes p's target from the subtree rooted at n. found
// reports whether a matching element existed; underflow reports that
// n's pivot count has dropped below m/2 and its parent must repair it
// (or, if n is the root, that the tree may need to shrink).
func (n *node[T]) remove(a *allocator[T], height int, p probe[T]) (removed T, found bool, underflow bool) {
	half := a.half()
	atLeaf := height == 0
	pivots := n.pivots.AsSlice(n.length)
	i, exact := p.find(pivots, atLeaf)

	if atLeaf {
		if !exact {
			var zero T
			return zero, false, false
		}
		v := n.pivots.RemoveAt(n.length, i)
		n.length--
		return v, true, n.length < half
	}

	childIsInternal := height > 1

	if exact {
		// The in-order predecessor of pivots[i] is the maximum of the
		// left subtree, extracted by descending rightmost into it.
		// The value that comes back replaces pivots[i]; the pivot it
		// displaces is the element the caller actually asked to
		// remove.
		predecessor, _, childUnderflow := n.childAt(i).remove(a, height-1, rightmostProbe[T]{})
		removed = n.pivotAt(i)
		n.setPivotAt(i, predecessor)
		if childUnderflow {
			n.repair(a, half, i, childIsInternal)
		}
		return removed, true, n.length < half
	}

	childRemoved, childFound, childUnderflow := n.childAt(i).remove(a, height-1, p)
	if !childFound {
		var zero T
		return zero, false, false
	}
	if childUnderflow {
		n.repair(a, half, i, childIsInternal)
	}
	return childRemoved, true, n.length < half
}

// repair restores the B-tree invariants for the child at logical
// position i after it underflowed, by rotating an element from a
// neighbor that can spare one, or merging with a neighbor otherwise.
// The right neighbor is preferred throughout, per the tie-break rule:
// borrow from the right neighbor (rotateLeft), then from the left
// neighbor (rotateRight), then merge right if a right neighbor exists,
// else merge left.
func (n *node[T]) repair(a *allocator[T], half, i int, childIsInternal bool) {
	hasRight := i+1 <= n.length
	hasLeft := i-1 >= 0

	if hasRight && n.childAt(i+1).length > half {
		n.rotateLeft(i, childIsInternal)
		return
	}
	if hasLeft && n.childAt(i-1).length > half {
		n.rotateRight(i, childIsInternal)
		return
	}
	if hasRight {
		n.mergeChildren(a, i, childIsInternal)
		return
	}
	n.mergeChildren(a, i-1, childIsInternal)
}

// rotateLeft moves one element from childAt(i+1) into childAt(i)
// through the separating pivot at i.
func (n *node[T]) rotateLeft(i int, childIsInternal bool) {
	left := n.childAt(i)
	right := n.childAt(i + 1)

	leftOldLen := left.length
	rightOldLen := right.length

	sep := n.pivotAt(i)
	left.pivots.Push(leftOldLen, sep)

	newSep := right.pivots.RemoveAt(rightOldLen, 0)
	n.setPivotAt(i, newSep)

	if childIsInternal {
		moved := right.head
		left.tail.Push(leftOldLen, moved)
		right.head = right.tail.RemoveAt(rightOldLen, 0)
	}

	left.length = leftOldLen + 1
	right.length = rightOldLen - 1
}

// rotateRight moves one element from childAt(i-1) into childAt(i)
// through the separating pivot at i-1.
func (n *node[T]) rotateRight(i int, childIsInternal bool) {
	left := n.childAt(i - 1)
	right := n.childAt(i)

	leftOldLen := left.length
	rightOldLen := right.length

	sep := n.pivotAt(i - 1)
	right.pivots.InsertAt(rightOldLen, 0, sep)

	newSep := left.pivots.Pop(leftOldLen)
	n.setPivotAt(i-1, newSep)

	if childIsInternal {
		moved := left.tail.Pop(leftOldLen)
		oldRightHead := right.head
		right.tail.InsertAt(rightOldLen, 0, oldRightHead)
		right.head = moved
	}

	left.length = leftOldLen - 1
	right.length = rightOldLen + 1
}

// mergeChildren folds childAt(i+1) into childAt(i) through the
// separating pivot at i, then removes the now-redundant pivot and
// child slot from n and returns the absorbed node to the allocator.
// childAt(i) survives as the merged node.
func (n *node[T]) mergeChildren(a *allocator[T], i int, childIsInternal bool) {
	left := n.childAt(i)
	right := n.childAt(i + 1)

	pivLen := left.length
	tailLen := left.length

	left.pivots.Push(pivLen, n.pivotAt(i))
	pivLen++

	for _, pv := range right.pivots.AsSlice(right.length) {
		left.pivots.Push(pivLen, pv)
		pivLen++
	}

	if childIsInternal {
		left.tail.Push(tailLen, right.head)
		tailLen++
		for _, c := range right.tail.AsSlice(right.length) {
			left.tail.Push(tailLen, c)
			tailLen++
		}
	}

	left.length = pivLen

	n.pivots.RemoveAt(n.length, i)
	n.removeChildSlotAt(i + 1)
	n.length--

	a.free(right)
}
