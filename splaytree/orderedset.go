package splaytree

import "github.com/zyedidia/generic"

// Set is a splay-tree-backed ordered set of keys. It is not safe for
// concurrent use: every operation may restructure the whole tree, and
// the zero value is not usable — construct with NewSet.
type Set[K any] struct {
	root *PlainNode[K]
	less generic.LessFn[K]
	size int
}

// NewSet returns an empty Set ordered by less.
func NewSet[K any](less generic.LessFn[K]) *Set[K] {
	return &Set[K]{less: less}
}

// Insert adds key to the set if it is not already present, then
// splays the node holding key (whether newly inserted or already
// there) to the root. Reports whether key was newly inserted.
func (s *Set[K]) Insert(key K) bool {
	ops := plainOps[K]{}
	z := Find(ops, s.root, key, s.less)

	if z.IsBranch() {
		s.root = Splay(ops, z)
		return false
	}

	z.Focus = ops.Combine(BranchShape(key, ops.Empty(), ops.Empty()))
	s.root = Splay(ops, z)
	s.size++
	return true
}

// Contains reports whether key is in the set, splaying the node
// examined last (found or not) to the root the way spec.md's
// splay-on-every-lookup contract requires.
func (s *Set[K]) Contains(key K) bool {
	ops := plainOps[K]{}
	z := Find(ops, s.root, key, s.less)
	found := z.IsBranch()
	s.root = Splay(ops, z)
	return found
}

// SplayToRoot splays key's node to the root if present, or the last
// node examined on the search path otherwise. It reports nothing: the
// point is the resulting tree shape, not a found/not-found answer —
// use Contains for that.
func (s *Set[K]) SplayToRoot(key K) {
	ops := plainOps[K]{}
	z := Find(ops, s.root, key, s.less)
	s.root = Splay(ops, z)
}

// Len returns the number of keys in the set.
func (s *Set[K]) Len() int { return s.size }

// Keys returns every key in ascending order. Iterative, so it
// tolerates a tree grown arbitrarily tall by a run of sorted inserts.
func (s *Set[K]) Keys() []K {
	keys := make([]K, 0, s.size)

	var stack []*PlainNode[K]
	cur := s.root
	for cur != nil || len(stack) > 0 {
		for cur != nil {
			stack = append(stack, cur)
			cur = cur.left
		}
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		keys = append(keys, cur.key)
		cur = cur.right
	}
	return keys
}
