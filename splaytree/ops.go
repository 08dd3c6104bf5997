package splaytree

// Ops is the pair of dual operations every node variant supplies:
// Combine wraps a Shape into a new node, recomputing any augmentation
// (subtree size, for BitNode); Separate unwraps a node into a Shape,
// pushing any pending lazy state down one level first. Separate is
// the only sanctioned read path into a node's children — every
// algorithm in this package goes through it, which is what guarantees
// a lazy reversal flag gets pushed exactly when something is about to
// inspect the children underneath it.
//
// Once Separate has been called on a node, that node is spent: nothing
// downstream of it should keep reading its raw fields directly, only
// the Shape it returned (rebuilding via Combine if a fresh Node handle
// is needed). That discipline is what keeps a stale, not-yet-pushed-down
// reversed flag from ever leaking back out.
type Ops[V any, N any] interface {
	Empty() N
	IsBranch(n N) bool
	Combine(s Shape[V, N]) N
	Separate(n N) Shape[V, N]
}
