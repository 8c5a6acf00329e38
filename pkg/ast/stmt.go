package ast

import (
	"bytes"
)

// Program is the root of a parsed source tree.
type Program struct {
	base
	Body []Statement
}

func NewProgram(body []Statement, line int) *Program {
	p := &Program{base: base{line: line}, Body: body}
	adoptStmts(p, body)
	return p
}

func (p *Program) Children() []Node {
	return appendStmts(make([]Node, 0, len(p.Body)), p.Body)
}
func (p *Program) String() string { return joinStmts(p.Body) }
func (p *Program) replaceChild(old, replacement Node) (int, error) {
	r := replacer{old: old, replacement: replacement}
	list(&r, p.Body)
	return r.done()
}

// Block represents a brace-enclosed statement list.
type Block struct {
	base
	Statements []Statement
}

func NewBlock(statements []Statement, line int) *Block {
	b := &Block{base: base{line: line}, Statements: statements}
	adoptStmts(b, statements)
	return b
}

func (b *Block) statementNode() {}
func (b *Block) Children() []Node {
	return appendStmts(make([]Node, 0, len(b.Statements)), b.Statements)
}
func (b *Block) String() string { return "{" + joinStmts(b.Statements) + "}" }
func (b *Block) replaceChild(old, replacement Node) (int, error) {
	r := replacer{old: old, replacement: replacement}
	list(&r, b.Statements)
	return r.done()
}

// ExprStatement wraps an expression used as a statement.
type ExprStatement struct {
	base
	Expr Expression
}

func NewExprStatement(expr Expression, line int) *ExprStatement {
	es := &ExprStatement{base: base{line: line}, Expr: expr}
	adopt(es, exprNode(expr))
	return es
}

func (es *ExprStatement) statementNode()   {}
func (es *ExprStatement) Children() []Node { return []Node{exprNode(es.Expr)} }
func (es *ExprStatement) String() string   { return exprString(es.Expr) + ";" }
func (es *ExprStatement) replaceChild(old, replacement Node) (int, error) {
	r := replacer{old: old, replacement: replacement}
	slot(&r, &es.Expr)
	return r.done()
}

// EmptyStatement represents a bare semicolon.
type EmptyStatement struct {
	base
}

func NewEmptyStatement(line int) *EmptyStatement {
	return &EmptyStatement{base: base{line: line}}
}

func (es *EmptyStatement) statementNode()   {}
func (es *EmptyStatement) Children() []Node { return nil }
func (es *EmptyStatement) String() string   { return ";" }
func (es *EmptyStatement) replaceChild(old, replacement Node) (int, error) { return 0, nil }

// Debugger represents a `debugger` statement.
type Debugger struct {
	base
}

func NewDebugger(line int) *Debugger { return &Debugger{base: base{line: line}} }

func (d *Debugger) statementNode()   {}
func (d *Debugger) Children() []Node { return nil }
func (d *Debugger) String() string   { return "debugger;" }
func (d *Debugger) replaceChild(old, replacement Node) (int, error) { return 0, nil }

// --- Declarations ---

// VarDecl represents a single declarator, name = init, inside a var
// statement or a for-loop head. The declared name introduces a binding and
// is marked as a rename candidate.
type VarDecl struct {
	base
	Name *Identifier
	Init Expression // nil when the declarator has no initializer
}

func NewVarDecl(name *Identifier, init Expression, line int) *VarDecl {
	if name != nil {
		name.RenameCandidate = true
	}
	vd := &VarDecl{base: base{line: line}, Name: name, Init: init}
	adopt(vd, identNode(name), exprNode(init))
	return vd
}

func (vd *VarDecl) Children() []Node {
	return []Node{identNode(vd.Name), exprNode(vd.Init)}
}
func (vd *VarDecl) String() string {
	if vd.Init == nil {
		return identString(vd.Name)
	}
	return identString(vd.Name) + "=" + exprString(vd.Init)
}
func (vd *VarDecl) replaceChild(old, replacement Node) (int, error) {
	r := replacer{old: old, replacement: replacement}
	slot(&r, &vd.Name)
	slot(&r, &vd.Init)
	return r.done()
}

// VarStatement represents `var` followed by one or more declarators.
type VarStatement struct {
	base
	Decls []*VarDecl
}

func NewVarStatement(decls []*VarDecl, line int) *VarStatement {
	vs := &VarStatement{base: base{line: line}, Decls: decls}
	for _, d := range decls {
		if d != nil {
			d.setParent(vs)
		}
	}
	return vs
}

func (vs *VarStatement) statementNode() {}
func (vs *VarStatement) Children() []Node {
	out := make([]Node, 0, len(vs.Decls))
	for _, d := range vs.Decls {
		if d == nil {
			out = append(out, nil)
			continue
		}
		out = append(out, d)
	}
	return out
}
func (vs *VarStatement) String() string {
	var out bytes.Buffer
	out.WriteString("var ")
	for i, d := range vs.Decls {
		if i > 0 {
			out.WriteString(",")
		}
		if d != nil {
			out.WriteString(d.String())
		}
	}
	out.WriteString(";")
	return out.String()
}
func (vs *VarStatement) replaceChild(old, replacement Node) (int, error) {
	r := replacer{old: old, replacement: replacement}
	list(&r, vs.Decls)
	return r.done()
}

// FuncDecl represents a function declaration statement. The name and every
// parameter introduce bindings and are marked as rename candidates.
type FuncDecl struct {
	base
	Name   *Identifier
	Params []*Identifier
	Body   []Statement
}

func NewFuncDecl(name *Identifier, params []*Identifier, body []Statement, line int) *FuncDecl {
	fd := &FuncDecl{base: base{line: line}, Name: name, Params: params, Body: body}
	markBindings(name, params)
	adopt(fd, identNode(name))
	adoptIdents(fd, params)
	adoptStmts(fd, body)
	return fd
}

func (fd *FuncDecl) statementNode() {}
func (fd *FuncDecl) Children() []Node {
	return funcChildren(fd.Name, fd.Params, fd.Body)
}
func (fd *FuncDecl) String() string {
	return funcString(fd.Name, fd.Params, fd.Body)
}
func (fd *FuncDecl) replaceChild(old, replacement Node) (int, error) {
	r := replacer{old: old, replacement: replacement}
	slot(&r, &fd.Name)
	list(&r, fd.Params)
	list(&r, fd.Body)
	return r.done()
}

// --- Control flow ---

// If represents if (predicate) consequent else alternative. The alternative
// is nil when there is no else branch, but it keeps its positional slot in
// Children.
type If struct {
	base
	Predicate   Expression
	Consequent  Statement
	Alternative Statement // nil when there is no else branch
}

func NewIf(predicate Expression, consequent, alternative Statement, line int) *If {
	i := &If{
		base:        base{line: line},
		Predicate:   predicate,
		Consequent:  consequent,
		Alternative: alternative,
	}
	adopt(i, exprNode(predicate), stmtNode(consequent), stmtNode(alternative))
	return i
}

func (i *If) statementNode() {}
func (i *If) Children() []Node {
	return []Node{exprNode(i.Predicate), stmtNode(i.Consequent), stmtNode(i.Alternative)}
}
func (i *If) String() string {
	s := "if(" + exprString(i.Predicate) + ")" + stmtString(i.Consequent)
	if i.Alternative != nil {
		s += "else " + i.Alternative.String()
	}
	return s
}
func (i *If) replaceChild(old, replacement Node) (int, error) {
	r := replacer{old: old, replacement: replacement}
	slot(&r, &i.Predicate)
	slot(&r, &i.Consequent)
	slot(&r, &i.Alternative)
	return r.done()
}

// While represents while (predicate) body.
type While struct {
	base
	Predicate Expression
	Body      Statement
}

func NewWhile(predicate Expression, body Statement, line int) *While {
	w := &While{base: base{line: line}, Predicate: predicate, Body: body}
	adopt(w, exprNode(predicate), stmtNode(body))
	return w
}

func (w *While) statementNode() {}
func (w *While) Children() []Node {
	return []Node{exprNode(w.Predicate), stmtNode(w.Body)}
}
func (w *While) String() string {
	return "while(" + exprString(w.Predicate) + ")" + stmtString(w.Body)
}
func (w *While) replaceChild(old, replacement Node) (int, error) {
	r := replacer{old: old, replacement: replacement}
	slot(&r, &w.Predicate)
	slot(&r, &w.Body)
	return r.done()
}

// DoWhile represents do body while (predicate).
type DoWhile struct {
	base
	Predicate Expression
	Body      Statement
}

func NewDoWhile(predicate Expression, body Statement, line int) *DoWhile {
	dw := &DoWhile{base: base{line: line}, Predicate: predicate, Body: body}
	adopt(dw, exprNode(predicate), stmtNode(body))
	return dw
}

func (dw *DoWhile) statementNode() {}
func (dw *DoWhile) Children() []Node {
	return []Node{exprNode(dw.Predicate), stmtNode(dw.Body)}
}
func (dw *DoWhile) String() string {
	return "do " + stmtString(dw.Body) + "while(" + exprString(dw.Predicate) + ");"
}
func (dw *DoWhile) replaceChild(old, replacement Node) (int, error) {
	r := replacer{old: old, replacement: replacement}
	slot(&r, &dw.Predicate)
	slot(&r, &dw.Body)
	return r.done()
}

// For represents for (init; cond; update) body. Init is a VarStatement or
// an expression; all three head slots may be nil, and each keeps its
// positional slot in Children.
type For struct {
	base
	Init   Node // *VarStatement or Expression, nil when omitted
	Cond   Expression
	Update Expression
	Body   Statement
}

func NewFor(init Node, cond, update Expression, body Statement, line int) *For {
	f := &For{base: base{line: line}, Init: init, Cond: cond, Update: update, Body: body}
	adopt(f, init, exprNode(cond), exprNode(update), stmtNode(body))
	return f
}

func (f *For) statementNode() {}
func (f *For) Children() []Node {
	return []Node{f.Init, exprNode(f.Cond), exprNode(f.Update), stmtNode(f.Body)}
}
func (f *For) String() string {
	var out bytes.Buffer
	out.WriteString("for(")
	if f.Init != nil {
		out.WriteString(f.Init.String())
	}
	if _, isVar := f.Init.(*VarStatement); !isVar {
		// a var-statement init already carries its semicolon
		out.WriteString(";")
	}
	out.WriteString(exprString(f.Cond))
	out.WriteString(";")
	out.WriteString(exprString(f.Update))
	out.WriteString(")")
	out.WriteString(stmtString(f.Body))
	return out.String()
}
func (f *For) replaceChild(old, replacement Node) (int, error) {
	r := replacer{old: old, replacement: replacement}
	slot(&r, &f.Init)
	slot(&r, &f.Cond)
	slot(&r, &f.Update)
	slot(&r, &f.Body)
	return r.done()
}

// ForIn represents for (item in iterable) body. Item is a VarDecl or an
// expression.
type ForIn struct {
	base
	Item     Node // *VarDecl or Expression
	Iterable Expression
	Body     Statement
}

func NewForIn(item Node, iterable Expression, body Statement, line int) *ForIn {
	fi := &ForIn{base: base{line: line}, Item: item, Iterable: iterable, Body: body}
	adopt(fi, item, exprNode(iterable), stmtNode(body))
	return fi
}

func (fi *ForIn) statementNode() {}
func (fi *ForIn) Children() []Node {
	return []Node{fi.Item, exprNode(fi.Iterable), stmtNode(fi.Body)}
}
func (fi *ForIn) String() string {
	return "for(" + nodeString(fi.Item) + " in " + exprString(fi.Iterable) + ")" + stmtString(fi.Body)
}
func (fi *ForIn) replaceChild(old, replacement Node) (int, error) {
	r := replacer{old: old, replacement: replacement}
	slot(&r, &fi.Item)
	slot(&r, &fi.Iterable)
	slot(&r, &fi.Body)
	return r.done()
}

// Switch represents switch (discriminant) { cases... default }.
type Switch struct {
	base
	Discriminant Expression
	Cases        []*Case
	Default      *Default // nil when there is no default clause
}

func NewSwitch(discriminant Expression, cases []*Case, def *Default, line int) *Switch {
	sw := &Switch{base: base{line: line}, Discriminant: discriminant, Cases: cases, Default: def}
	adopt(sw, exprNode(discriminant))
	for _, c := range cases {
		if c != nil {
			c.setParent(sw)
		}
	}
	if def != nil {
		def.setParent(sw)
	}
	return sw
}

func (sw *Switch) statementNode() {}
func (sw *Switch) Children() []Node {
	out := make([]Node, 0, 2+len(sw.Cases))
	out = append(out, exprNode(sw.Discriminant))
	for _, c := range sw.Cases {
		if c == nil {
			out = append(out, nil)
			continue
		}
		out = append(out, c)
	}
	if sw.Default == nil {
		return append(out, nil)
	}
	return append(out, sw.Default)
}
func (sw *Switch) String() string {
	var out bytes.Buffer
	out.WriteString("switch(")
	out.WriteString(exprString(sw.Discriminant))
	out.WriteString("){")
	for _, c := range sw.Cases {
		if c != nil {
			out.WriteString(c.String())
		}
	}
	if sw.Default != nil {
		out.WriteString(sw.Default.String())
	}
	out.WriteString("}")
	return out.String()
}
func (sw *Switch) replaceChild(old, replacement Node) (int, error) {
	r := replacer{old: old, replacement: replacement}
	slot(&r, &sw.Discriminant)
	list(&r, sw.Cases)
	slot(&r, &sw.Default)
	return r.done()
}

// Case represents one case clause of a switch.
type Case struct {
	base
	Test Expression
	Body []Statement
}

func NewCase(test Expression, body []Statement, line int) *Case {
	c := &Case{base: base{line: line}, Test: test, Body: body}
	adopt(c, exprNode(test))
	adoptStmts(c, body)
	return c
}

func (c *Case) Children() []Node {
	out := make([]Node, 0, 1+len(c.Body))
	out = append(out, exprNode(c.Test))
	return appendStmts(out, c.Body)
}
func (c *Case) String() string {
	return "case " + exprString(c.Test) + ":" + joinStmts(c.Body)
}
func (c *Case) replaceChild(old, replacement Node) (int, error) {
	r := replacer{old: old, replacement: replacement}
	slot(&r, &c.Test)
	list(&r, c.Body)
	return r.done()
}

// Default represents the default clause of a switch.
type Default struct {
	base
	Body []Statement
}

func NewDefault(body []Statement, line int) *Default {
	d := &Default{base: base{line: line}, Body: body}
	adoptStmts(d, body)
	return d
}

func (d *Default) Children() []Node {
	return appendStmts(make([]Node, 0, len(d.Body)), d.Body)
}
func (d *Default) String() string { return "default:" + joinStmts(d.Body) }
func (d *Default) replaceChild(old, replacement Node) (int, error) {
	r := replacer{old: old, replacement: replacement}
	list(&r, d.Body)
	return r.done()
}

// Try represents try { body } catch finally. Catch and Finally are each nil
// when the corresponding clause is absent; at least one of them is present
// in well-formed source.
type Try struct {
	base
	Body    *Block
	Catch   *Catch
	Finally *Finally
}

func NewTry(body *Block, catch *Catch, fin *Finally, line int) *Try {
	t := &Try{base: base{line: line}, Body: body, Catch: catch, Finally: fin}
	if body != nil {
		body.setParent(t)
	}
	if catch != nil {
		catch.setParent(t)
	}
	if fin != nil {
		fin.setParent(t)
	}
	return t
}

func (t *Try) statementNode() {}
func (t *Try) Children() []Node {
	out := make([]Node, 0, 3)
	if t.Body == nil {
		out = append(out, nil)
	} else {
		out = append(out, t.Body)
	}
	if t.Catch == nil {
		out = append(out, nil)
	} else {
		out = append(out, t.Catch)
	}
	if t.Finally == nil {
		return append(out, nil)
	}
	return append(out, t.Finally)
}
func (t *Try) String() string {
	s := "try" + blockString(t.Body)
	if t.Catch != nil {
		s += t.Catch.String()
	}
	if t.Finally != nil {
		s += t.Finally.String()
	}
	return s
}
func (t *Try) replaceChild(old, replacement Node) (int, error) {
	r := replacer{old: old, replacement: replacement}
	slot(&r, &t.Body)
	slot(&r, &t.Catch)
	slot(&r, &t.Finally)
	return r.done()
}

// Catch represents a catch clause. The binding introduces a name scoped to
// the clause and is marked as a rename candidate.
type Catch struct {
	base
	Param *Identifier
	Body  *Block
}

func NewCatch(param *Identifier, body *Block, line int) *Catch {
	if param != nil {
		param.RenameCandidate = true
	}
	c := &Catch{base: base{line: line}, Param: param, Body: body}
	adopt(c, identNode(param))
	if body != nil {
		body.setParent(c)
	}
	return c
}

func (c *Catch) Children() []Node {
	out := []Node{identNode(c.Param)}
	if c.Body == nil {
		return append(out, nil)
	}
	return append(out, c.Body)
}
func (c *Catch) String() string {
	return "catch(" + identString(c.Param) + ")" + blockString(c.Body)
}
func (c *Catch) replaceChild(old, replacement Node) (int, error) {
	r := replacer{old: old, replacement: replacement}
	slot(&r, &c.Param)
	slot(&r, &c.Body)
	return r.done()
}

// Finally represents a finally clause.
type Finally struct {
	base
	Body *Block
}

func NewFinally(body *Block, line int) *Finally {
	f := &Finally{base: base{line: line}, Body: body}
	if body != nil {
		body.setParent(f)
	}
	return f
}

func (f *Finally) Children() []Node {
	if f.Body == nil {
		return []Node{nil}
	}
	return []Node{f.Body}
}
func (f *Finally) String() string { return "finally" + blockString(f.Body) }
func (f *Finally) replaceChild(old, replacement Node) (int, error) {
	r := replacer{old: old, replacement: replacement}
	slot(&r, &f.Body)
	return r.done()
}

// Label represents a labelled statement, name: statement. The label name is
// not a variable binding and is not a rename candidate.
type Label struct {
	base
	Name      *Identifier
	Statement Statement
}

func NewLabel(name *Identifier, statement Statement, line int) *Label {
	l := &Label{base: base{line: line}, Name: name, Statement: statement}
	adopt(l, identNode(name), stmtNode(statement))
	return l
}

func (l *Label) statementNode() {}
func (l *Label) Children() []Node {
	return []Node{identNode(l.Name), stmtNode(l.Statement)}
}
func (l *Label) String() string {
	return identString(l.Name) + ":" + stmtString(l.Statement)
}
func (l *Label) replaceChild(old, replacement Node) (int, error) {
	r := replacer{old: old, replacement: replacement}
	slot(&r, &l.Name)
	slot(&r, &l.Statement)
	return r.done()
}

// With represents with (object) body.
type With struct {
	base
	Object Expression
	Body   Statement
}

func NewWith(object Expression, body Statement, line int) *With {
	w := &With{base: base{line: line}, Object: object, Body: body}
	adopt(w, exprNode(object), stmtNode(body))
	return w
}

func (w *With) statementNode() {}
func (w *With) Children() []Node {
	return []Node{exprNode(w.Object), stmtNode(w.Body)}
}
func (w *With) String() string {
	return "with(" + exprString(w.Object) + ")" + stmtString(w.Body)
}
func (w *With) replaceChild(old, replacement Node) (int, error) {
	r := replacer{old: old, replacement: replacement}
	slot(&r, &w.Object)
	slot(&r, &w.Body)
	return r.done()
}

// --- Flow terminators ---

// Return represents return value;. Value is nil for a bare return but keeps
// its positional slot.
type Return struct {
	base
	Value Expression
}

func NewReturn(value Expression, line int) *Return {
	rt := &Return{base: base{line: line}, Value: value}
	adopt(rt, exprNode(value))
	return rt
}

func (rt *Return) statementNode()   {}
func (rt *Return) Children() []Node { return []Node{exprNode(rt.Value)} }
func (rt *Return) String() string {
	if rt.Value == nil {
		return "return;"
	}
	return "return " + rt.Value.String() + ";"
}
func (rt *Return) replaceChild(old, replacement Node) (int, error) {
	r := replacer{old: old, replacement: replacement}
	slot(&r, &rt.Value)
	return r.done()
}

// Break represents break label;. Label is nil for an unlabelled break.
type Break struct {
	base
	Label *Identifier
}

func NewBreak(label *Identifier, line int) *Break {
	b := &Break{base: base{line: line}, Label: label}
	adopt(b, identNode(label))
	return b
}

func (b *Break) statementNode()   {}
func (b *Break) Children() []Node { return []Node{identNode(b.Label)} }
func (b *Break) String() string {
	if b.Label == nil {
		return "break;"
	}
	return "break " + b.Label.Name + ";"
}
func (b *Break) replaceChild(old, replacement Node) (int, error) {
	r := replacer{old: old, replacement: replacement}
	slot(&r, &b.Label)
	return r.done()
}

// Continue represents continue label;. Label is nil for an unlabelled
// continue.
type Continue struct {
	base
	Label *Identifier
}

func NewContinue(label *Identifier, line int) *Continue {
	c := &Continue{base: base{line: line}, Label: label}
	adopt(c, identNode(label))
	return c
}

func (c *Continue) statementNode()   {}
func (c *Continue) Children() []Node { return []Node{identNode(c.Label)} }
func (c *Continue) String() string {
	if c.Label == nil {
		return "continue;"
	}
	return "continue " + c.Label.Name + ";"
}
func (c *Continue) replaceChild(old, replacement Node) (int, error) {
	r := replacer{old: old, replacement: replacement}
	slot(&r, &c.Label)
	return r.done()
}

// Throw represents throw value;.
type Throw struct {
	base
	Value Expression
}

func NewThrow(value Expression, line int) *Throw {
	t := &Throw{base: base{line: line}, Value: value}
	adopt(t, exprNode(value))
	return t
}

func (t *Throw) statementNode()   {}
func (t *Throw) Children() []Node { return []Node{exprNode(t.Value)} }
func (t *Throw) String() string   { return "throw " + exprString(t.Value) + ";" }
func (t *Throw) replaceChild(old, replacement Node) (int, error) {
	r := replacer{old: old, replacement: replacement}
	slot(&r, &t.Value)
	return r.done()
}

// --- shared helpers ---

func stmtString(s Statement) string {
	if s == nil {
		return ";"
	}
	return s.String()
}

func blockString(b *Block) string {
	if b == nil {
		return ""
	}
	return b.String()
}

func nodeString(n Node) string {
	if n == nil {
		return ""
	}
	return n.String()
}

func joinStmts(list []Statement) string {
	var out bytes.Buffer
	for _, s := range list {
		if s != nil {
			out.WriteString(s.String())
		}
	}
	return out.String()
}
