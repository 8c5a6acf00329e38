// Package ast declares the syntax tree for an ECMAScript-style source
// program: a closed set of node kinds connected into a single rooted tree,
// a uniform ordered-children traversal contract, and a generic in-place
// replacement primitive (see Replace).
//
// Trees are built bottom-up by an external parser: children are fully
// constructed before the parent that owns them, and every constructor adopts
// its children by back-filling their parent link. The parent link is a
// non-owning reference; ownership flows strictly parent to child, so the
// forward edges always form a tree.
package ast

// Node is the base interface implemented by every syntax tree node.
//
// Children returns the node's logical children in source left-to-right
// order. The returned slice is freshly allocated on every call, so it is a
// stable snapshot: mutating the tree (e.g. via Replace) does not invalidate
// a slice obtained earlier. Entries may be nil where a syntactically
// optional child is absent (an if with no else); absent entries keep their
// positional slot so that, for example, the alternative of an If is always
// index 2 whether or not it is present.
type Node interface {
	// Line returns the 1-based source line the node was constructed with.
	Line() int
	// Parent returns the node owning this node, or nil for the root.
	Parent() Node
	// Children returns the ordered child snapshot described above.
	Children() []Node
	// String returns a compact debug rendering. It is not the ECMA
	// serializer; regenerating source text is a consumer concern.
	String() string

	setParent(Node)
	// replaceChild overwrites every slot currently holding old (matched by
	// identity) with replacement and reports how many slots changed. A
	// replacement that cannot occupy a matched typed slot is an error.
	replaceChild(old, replacement Node) (int, error)
}

// Expression is implemented by all expression nodes.
type Expression interface {
	Node
	expressionNode()
}

// Statement is implemented by all statement nodes.
type Statement interface {
	Node
	statementNode()
}

// base carries the identity and position fields shared by every variant.
// Embedding it (by pointer receiver) satisfies Line/Parent/setParent.
type base struct {
	line   int
	parent Node
}

func (b *base) Line() int       { return b.line }
func (b *base) Parent() Node    { return b.parent }
func (b *base) setParent(n Node) { b.parent = n }

// adopt back-fills the parent link on each non-nil child. Called exactly
// once per child, from the constructor of the variant that owns it.
func adopt(parent Node, children ...Node) {
	for _, c := range children {
		if c != nil {
			c.setParent(parent)
		}
	}
}

func adoptExprs(parent Node, children []Expression) {
	for _, c := range children {
		if c != nil {
			c.setParent(parent)
		}
	}
}

func adoptStmts(parent Node, children []Statement) {
	for _, c := range children {
		if c != nil {
			c.setParent(parent)
		}
	}
}

// exprNode returns e as a Node, mapping a nil interface to a nil Node so
// Children snapshots carry proper absent entries.
func exprNode(e Expression) Node {
	if e == nil {
		return nil
	}
	return e
}

func stmtNode(s Statement) Node {
	if s == nil {
		return nil
	}
	return s
}

// identNode avoids boxing a nil *Identifier into a non-nil interface.
func identNode(id *Identifier) Node {
	if id == nil {
		return nil
	}
	return id
}

func appendExprs(dst []Node, list []Expression) []Node {
	for _, e := range list {
		dst = append(dst, exprNode(e))
	}
	return dst
}

func appendStmts(dst []Node, list []Statement) []Node {
	for _, s := range list {
		dst = append(dst, stmtNode(s))
	}
	return dst
}
