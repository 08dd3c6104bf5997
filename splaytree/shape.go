// Package splaytree implements a self-adjusting binary search tree —
// a splay tree — and the two containers built on top of it: an
// ordered set of comparable keys, and an indexed sequence of booleans
// supporting O(log n) amortized range reversal.
//
// The tree, the zipper that focuses a location inside it, and the
// splay algorithm that rotates a focused node to the root are all
// written once, against a small Ops interface, and instantiated twice:
// once for the plain keyed node behind Set, once for the
// size-and-lazy-reversal-augmented node behind Sequence.
package splaytree

// Shape is the single-layer view of a binary tree: either empty, or a
// branch holding a value and two child placeholders of type N. It is
// the common vocabulary the zipper, splay, find, and find_index
// algorithms use to build and take apart nodes without caring which
// node variant (PlainNode or BitNode) they're actually working with.
type Shape[V any, N any] struct {
	IsBranch bool
	Val      V
	Left     N
	Right    N
}

// BranchShape builds a branch shape out of a value and two children.
func BranchShape[V any, N any](val V, left, right N) Shape[V, N] {
	return Shape[V, N]{IsBranch: true, Val: val, Left: left, Right: right}
}
