package ast

// A Visitor's Visit method is invoked for each node encountered by Walk.
// If the result is non-nil, Walk visits each child of the node with that
// visitor; a nil result prunes the subtree.
type Visitor interface {
	Visit(n Node) (w Visitor)
}

// Walk traverses the tree rooted at node in depth-first pre-order. Absent
// children are skipped, so a visitor only ever sees real nodes; positional
// reasoning belongs to Children, not to Walk.
//
// Children returns a fresh snapshot per call, so a Replace performed from
// inside Visit does not invalidate the traversal of the snapshot already
// taken. A pass that splices into a list it is still iterating through its
// own copy of must collect targets first and replace after the walk.
func Walk(v Visitor, node Node) {
	if v = v.Visit(node); v == nil {
		return
	}
	for _, c := range node.Children() {
		if c == nil {
			continue
		}
		Walk(v, c)
	}
}

type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Inspect traverses the tree rooted at node, calling f for each node. If f
// returns false the children of that node are skipped.
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}
