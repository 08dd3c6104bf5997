package splaytree

// Sequence is a splay-tree-backed indexed sequence of bits supporting
// point get/set and whole-range-reversal in amortized O(log n). Not
// safe for concurrent use. The zero value is an empty sequence; use
// NewSequence to start with n zero bits.
type Sequence struct {
	root *BitNode
}

// NewSequence returns a sequence of n bits, all initially false, built
// as a balanced tree (recursive, but bounded by log2(n) since the
// initial build is balanced by construction — the adversarial-height
// concern only applies once splaying starts reshaping the tree).
func NewSequence(n int) *Sequence {
	return &Sequence{root: buildBalanced(n)}
}

func buildBalanced(n int) *BitNode {
	if n <= 0 {
		return nil
	}
	mid := n / 2
	left := buildBalanced(mid)
	right := buildBalanced(n - mid - 1)
	return (bitOps{}).Combine(BranchShape(false, left, right))
}

// Len returns the number of bits in the sequence.
func (s *Sequence) Len() int { return bitSize(s.root) }

// Get returns the bit at position i and splays that position to the
// root. Reports false, false if i is out of range and leaves the tree
// untouched.
func (s *Sequence) Get(i int) (bool, bool) {
	if i < 0 || i >= s.Len() {
		return false, false
	}
	ops := bitOps{}
	z := FindIndex(ops, bitSize, s.root, i)
	val := z.Focus.value
	s.root = Splay(ops, z)
	return val, true
}

// Set assigns the bit at position i and splays that position to the
// root. Out-of-range i is a silent no-op, matching Get's bounds
// handling.
func (s *Sequence) Set(i int, b bool) {
	if i < 0 || i >= s.Len() {
		return
	}
	ops := bitOps{}
	z := FindIndex(ops, bitSize, s.root, i)
	cur := z.Focus
	z.Focus = ops.Combine(BranchShape(b, cur.left, cur.right))
	s.root = Splay(ops, z)
}

// ReverseRange reverses the bits at positions [i, j] inclusive. Bounds
// are clamped into range; an empty or inverted range (i > j after
// clamping) is a no-op.
func (s *Sequence) ReverseRange(i, j int) {
	n := s.Len()
	if n == 0 {
		return
	}
	if i < 0 {
		i = 0
	}
	if j > n-1 {
		j = n - 1
	}
	if i > j {
		return
	}

	z := s.isolateInterval(i, j)
	z.Focus = toggleReversed(z.Focus)
	s.root = ZipTree(z)
}

// isolateInterval returns a zipper focused on exactly the subtree
// holding positions [i, j] (0 <= i <= j <= Len()-1), with a path that
// reconstructs the full sequence when zipped back up. It is the
// classic double-splay trick: splay the element just outside each
// bound to the root so the target range falls out as a clean subtree,
// then descend to it.
//
// When i is 0, there is no position i-1 to splay; splaying j+1 (the
// element just past the range) to the root and descending left gives
// exactly positions 0..j, since everything left of the root in a BST
// is everything ordered before it. The symmetric argument handles j
// at the last position. When both bounds are interior, the two splays
// compose: splay i-1 to the root, then — within its now-isolated
// right subtree, positions i..Len()-1 — splay the *local* index of
// j+1 to that subtree's root and descend left, landing on exactly
// i..j.
func (s *Sequence) isolateInterval(i, j int) *Zipper[bool, *BitNode] {
	ops := bitOps{}
	n := s.Len()

	if i <= 0 && j >= n-1 {
		return RootZipper[bool, *BitNode](ops, s.root)
	}

	if i <= 0 {
		z := FindIndex(ops, bitSize, s.root, j+1)
		root := Splay(ops, z)
		return RootZipper[bool, *BitNode](ops, root).Left()
	}

	if j >= n-1 {
		z := FindIndex(ops, bitSize, s.root, i-1)
		root := Splay(ops, z)
		return RootZipper[bool, *BitNode](ops, root).Right()
	}

	z := FindIndex(ops, bitSize, s.root, i-1)
	root := Splay(ops, z)
	outer := RootZipper[bool, *BitNode](ops, root).Right()

	localIdx := j - i + 1
	localZ := FindIndex(ops, bitSize, outer.Focus, localIdx)
	outer.Focus = Splay(ops, localZ)

	return outer.Left()
}

// Bits returns every bit in order, without disturbing the tree's
// shape. Unlike Get/Set/ReverseRange it never splays: it's a pure
// snapshot read, so it tracks pending reversed flags as it descends
// instead of pushing them down into the stored nodes.
func (s *Sequence) Bits() []bool {
	bits := make([]bool, 0, s.Len())

	type frame struct {
		n   *BitNode
		rev bool
	}
	var stack []frame

	n, rev := s.root, false
	for n != nil || len(stack) > 0 {
		for n != nil {
			left, _, effRev := orderedChildren(n, rev)
			stack = append(stack, frame{n, rev})
			n, rev = left, effRev
		}
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		bits = append(bits, top.n.value)
		_, right, effRev := orderedChildren(top.n, top.rev)
		n, rev = right, effRev
	}
	return bits
}

// orderedChildren returns n's children in logical (in-order) order
// given that an incoming rev context already applies above n, along
// with the effective rev context that applies to each of those
// children in turn.
func orderedChildren(n *BitNode, rev bool) (left, right *BitNode, effRev bool) {
	effRev = rev != n.reversed
	if effRev {
		return n.right, n.left, effRev
	}
	return n.left, n.right, effRev
}
