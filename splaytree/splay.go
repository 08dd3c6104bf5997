package splaytree

// Splay rotates the node currently in focus all the way to the root
// of the tree, preserving in-order content, and returns the resulting
// root. It consumes z; z must not be used again afterward.
//
// Each step handles one or two levels of the zipper's path at once:
// a lone parent (zig) is a single rotation; a parent and grandparent
// on the same side (zig-zig) or opposite sides (zig-zag) are rebuilt
// directly from their three separated values, which is what gives
// splaying its amortized logarithmic bound — naively repeating single
// rotations one level at a time does not.
func Splay[V any, N any](ops Ops[V, N], z *Zipper[V, N]) N {
	if !ops.IsBranch(z.Focus) && len(z.path) > 0 {
		// The search fell off the tree (a miss). Step up once so the
		// splay operates on the last Branch actually examined, not on
		// the Empty child beyond it.
		z = ParentZipper(z)
	}
	for len(z.path) > 0 {
		z = splayStep(z)
	}
	return z.Focus
}

func splayStep[V any, N any](z *Zipper[V, N]) *Zipper[V, N] {
	n := len(z.path)
	if n == 1 {
		return z.Rotate()
	}

	s := z.ops.Separate(z.Focus)
	parent := z.path[n-1]
	grand := z.path[n-2]
	v, l, r := s.Val, s.Left, s.Right
	p, sib := parent.ParentVal, parent.Sibling
	g, unc := grand.ParentVal, grand.Sibling

	var newFocus N
	switch {
	case parent.Dir == Left && grand.Dir == Left:
		// zig-zig, left-left.
		newFocus = z.ops.Combine(BranchShape(v, l,
			z.ops.Combine(BranchShape(p, r,
				z.ops.Combine(BranchShape(g, sib, unc))))))
	case parent.Dir == Right && grand.Dir == Right:
		// zig-zig, right-right.
		newFocus = z.ops.Combine(BranchShape(v,
			z.ops.Combine(BranchShape(p,
				z.ops.Combine(BranchShape(g, unc, sib)), l)), r))
	case parent.Dir == Right && grand.Dir == Left:
		// zig-zag, left-right.
		newFocus = z.ops.Combine(BranchShape(v,
			z.ops.Combine(BranchShape(p, sib, l)),
			z.ops.Combine(BranchShape(g, r, unc))))
	default:
		// zig-zag, right-left.
		newFocus = z.ops.Combine(BranchShape(v,
			z.ops.Combine(BranchShape(g, unc, l)),
			z.ops.Combine(BranchShape(p, r, sib))))
	}

	return &Zipper[V, N]{ops: z.ops, path: z.path[:n-2], Focus: newFocus}
}
