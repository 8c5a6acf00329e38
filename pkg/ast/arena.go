package ast

import "golang.org/x/text/unicode/norm"

// miniArena is a typed bump allocator: nodes are appended to a backing
// slice and handed out by pointer. Reset keeps the backing memory so a
// parser can reuse one arena across parses.
//
// A chunk never relocates once allocated, so pointers stay valid: when the
// backing slice is full a new chunk is started instead of growing in place.
type miniArena[T any] struct {
	chunks [][]T
	cap    int
}

func (a *miniArena[T]) alloc() *T {
	n := len(a.chunks)
	if n == 0 || len(a.chunks[n-1]) == cap(a.chunks[n-1]) {
		if a.cap == 0 {
			a.cap = 32
		}
		a.chunks = append(a.chunks, make([]T, 0, a.cap))
		n++
	}
	c := &a.chunks[n-1]
	var zero T
	*c = append(*c, zero)
	return &(*c)[len(*c)-1]
}

func (a *miniArena[T]) reset() {
	// keep only the first chunk's memory
	if len(a.chunks) > 0 {
		a.chunks = a.chunks[:1]
		a.chunks[0] = a.chunks[0][:0]
	}
}

// Arena provides arena-style allocation for the node kinds a parser
// allocates most often, reducing GC pressure during bulk construction.
// Each method allocates and initializes a node in a single call, with the
// same signature and semantics (parent adoption, binding marks, name
// normalization) as the package-level constructor of the same name.
//
// Nodes handed out by an Arena are valid until Reset is called; the whole
// tree and its arena are discarded together.
type Arena struct {
	identifiers    miniArena[Identifier]
	numbers        miniArena[Number]
	strings        miniArena[String]
	booleans       miniArena[Boolean]
	binOps         miniArena[BinOp]
	unaryOps       miniArena[UnaryOp]
	assigns        miniArena[Assign]
	functionCalls  miniArena[FunctionCall]
	dotAccessors   miniArena[DotAccessor]
	exprStatements miniArena[ExprStatement]
	blocks         miniArena[Block]
	ifStatements   miniArena[If]
	returns        miniArena[Return]
	varDecls       miniArena[VarDecl]
	varStatements  miniArena[VarStatement]
	programs       miniArena[Program]
}

// NewArena creates an arena with pre-sized chunks for typical source files.
func NewArena() *Arena {
	a := &Arena{}
	a.identifiers.cap = 256
	a.numbers.cap = 64
	a.strings.cap = 64
	a.booleans.cap = 32
	a.binOps.cap = 128
	a.unaryOps.cap = 32
	a.assigns.cap = 64
	a.functionCalls.cap = 128
	a.dotAccessors.cap = 128
	a.exprStatements.cap = 128
	a.blocks.cap = 64
	a.ifStatements.cap = 64
	a.returns.cap = 64
	a.varDecls.cap = 64
	a.varStatements.cap = 32
	a.programs.cap = 1
	return a
}

// Reset clears the arena for reuse, keeping backing memory allocated. Every
// node previously handed out becomes invalid.
func (a *Arena) Reset() {
	a.identifiers.reset()
	a.numbers.reset()
	a.strings.reset()
	a.booleans.reset()
	a.binOps.reset()
	a.unaryOps.reset()
	a.assigns.reset()
	a.functionCalls.reset()
	a.dotAccessors.reset()
	a.exprStatements.reset()
	a.blocks.reset()
	a.ifStatements.reset()
	a.returns.reset()
	a.varDecls.reset()
	a.varStatements.reset()
	a.programs.reset()
}

func (a *Arena) NewIdentifier(name string, line int) *Identifier {
	id := a.identifiers.alloc()
	id.base = base{line: line}
	id.Name = norm.NFC.String(name)
	return id
}

func (a *Arena) NewNumber(value float64, line int) *Number {
	n := a.numbers.alloc()
	n.base = base{line: line}
	n.Value = value
	return n
}

func (a *Arena) NewString(value string, line int) *String {
	s := a.strings.alloc()
	s.base = base{line: line}
	s.Value = value
	return s
}

func (a *Arena) NewBoolean(value bool, line int) *Boolean {
	b := a.booleans.alloc()
	b.base = base{line: line}
	b.Value = value
	return b
}

func (a *Arena) NewBinOp(op string, left, right Expression, line int) *BinOp {
	b := a.binOps.alloc()
	b.base = base{line: line}
	b.Op, b.Left, b.Right = op, left, right
	adopt(b, exprNode(left), exprNode(right))
	return b
}

func (a *Arena) NewUnaryOp(op string, operand Expression, postfix bool, line int) *UnaryOp {
	u := a.unaryOps.alloc()
	u.base = base{line: line}
	u.Op, u.Operand, u.Postfix = op, operand, postfix
	adopt(u, exprNode(operand))
	return u
}

func (a *Arena) NewAssign(op string, left, right Expression, line int) *Assign {
	as := a.assigns.alloc()
	as.base = base{line: line}
	as.Op, as.Left, as.Right = op, left, right
	adopt(as, exprNode(left), exprNode(right))
	return as
}

func (a *Arena) NewFunctionCall(callee Expression, args []Expression, line int) *FunctionCall {
	fc := a.functionCalls.alloc()
	fc.base = base{line: line}
	fc.Callee, fc.Args = callee, args
	adopt(fc, exprNode(callee))
	adoptExprs(fc, args)
	return fc
}

func (a *Arena) NewDotAccessor(target Expression, property *Identifier, line int) *DotAccessor {
	da := a.dotAccessors.alloc()
	da.base = base{line: line}
	da.Target, da.Property = target, property
	adopt(da, exprNode(target), identNode(property))
	return da
}

func (a *Arena) NewExprStatement(expr Expression, line int) *ExprStatement {
	es := a.exprStatements.alloc()
	es.base = base{line: line}
	es.Expr = expr
	adopt(es, exprNode(expr))
	return es
}

func (a *Arena) NewBlock(statements []Statement, line int) *Block {
	b := a.blocks.alloc()
	b.base = base{line: line}
	b.Statements = statements
	adoptStmts(b, statements)
	return b
}

func (a *Arena) NewIf(predicate Expression, consequent, alternative Statement, line int) *If {
	i := a.ifStatements.alloc()
	i.base = base{line: line}
	i.Predicate, i.Consequent, i.Alternative = predicate, consequent, alternative
	adopt(i, exprNode(predicate), stmtNode(consequent), stmtNode(alternative))
	return i
}

func (a *Arena) NewReturn(value Expression, line int) *Return {
	r := a.returns.alloc()
	r.base = base{line: line}
	r.Value = value
	adopt(r, exprNode(value))
	return r
}

func (a *Arena) NewVarDecl(name *Identifier, init Expression, line int) *VarDecl {
	if name != nil {
		name.RenameCandidate = true
	}
	vd := a.varDecls.alloc()
	vd.base = base{line: line}
	vd.Name, vd.Init = name, init
	adopt(vd, identNode(name), exprNode(init))
	return vd
}

func (a *Arena) NewVarStatement(decls []*VarDecl, line int) *VarStatement {
	vs := a.varStatements.alloc()
	vs.base = base{line: line}
	vs.Decls = decls
	for _, d := range decls {
		if d != nil {
			d.setParent(vs)
		}
	}
	return vs
}

func (a *Arena) NewProgram(body []Statement, line int) *Program {
	p := a.programs.alloc()
	p.base = base{line: line}
	p.Body = body
	adoptStmts(p, body)
	return p
}
