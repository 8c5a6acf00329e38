package ast

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"
	"golang.org/x/text/unicode/norm"
)

// --- Value literals ---

// Boolean represents `true` or `false`.
type Boolean struct {
	base
	Value bool
}

func NewBoolean(value bool, line int) *Boolean {
	return &Boolean{base: base{line: line}, Value: value}
}

func (b *Boolean) expressionNode()  {}
func (b *Boolean) Children() []Node { return nil }
func (b *Boolean) String() string   { return strconv.FormatBool(b.Value) }
func (b *Boolean) replaceChild(old, replacement Node) (int, error) { return 0, nil }

// Null represents the `null` keyword.
type Null struct {
	base
}

func NewNull(line int) *Null { return &Null{base: base{line: line}} }

func (n *Null) expressionNode()  {}
func (n *Null) Children() []Node { return nil }
func (n *Null) String() string   { return "null" }
func (n *Null) replaceChild(old, replacement Node) (int, error) { return 0, nil }

// Number represents a numeric literal.
type Number struct {
	base
	Value float64
}

func NewNumber(value float64, line int) *Number {
	return &Number{base: base{line: line}, Value: value}
}

func (n *Number) expressionNode()  {}
func (n *Number) Children() []Node { return nil }
func (n *Number) String() string   { return strconv.FormatFloat(n.Value, 'g', -1, 64) }
func (n *Number) replaceChild(old, replacement Node) (int, error) { return 0, nil }

// Identifier represents a name: a binding, a reference, or a property name.
//
// RenameCandidate marks identifiers that introduce a binding (function
// names, formal parameters, var-declaration targets, catch bindings); it is
// set by the constructor of the declaring variant and consumed by an
// external renaming pass. Property names are never marked.
type Identifier struct {
	base
	Name            string
	RenameCandidate bool
}

// NewIdentifier builds an identifier node. The name is normalized to NFC so
// that combining sequences and their precomposed forms denote the same
// binding, as ECMAScript recommends for source identifiers.
func NewIdentifier(name string, line int) *Identifier {
	return &Identifier{base: base{line: line}, Name: norm.NFC.String(name)}
}

func (i *Identifier) expressionNode()  {}
func (i *Identifier) Children() []Node { return nil }
func (i *Identifier) String() string   { return i.Name }
func (i *Identifier) replaceChild(old, replacement Node) (int, error) { return 0, nil }

// String represents a string literal. Value holds the cooked (unquoted,
// unescaped) text.
type String struct {
	base
	Value string
}

func NewString(value string, line int) *String {
	return &String{base: base{line: line}, Value: value}
}

func (s *String) expressionNode()  {}
func (s *String) Children() []Node { return nil }
func (s *String) String() string   { return strconv.Quote(s.Value) }
func (s *String) replaceChild(old, replacement Node) (int, error) { return 0, nil }

// Regex represents a regular expression literal, stored in raw
// `/pattern/flags` form.
type Regex struct {
	base
	Literal string
}

func NewRegex(literal string, line int) *Regex {
	return &Regex{base: base{line: line}, Literal: literal}
}

func (r *Regex) expressionNode()  {}
func (r *Regex) Children() []Node { return nil }
func (r *Regex) String() string   { return r.Literal }
func (r *Regex) replaceChild(old, replacement Node) (int, error) { return 0, nil }

// Compile parses the stored literal and compiles its pattern with the
// ECMAScript flags translated to regexp2 options. The literal must have the
// `/pattern/flags` shape. The g and y flags control match iteration, not
// compilation, and are accepted without effect.
func (r *Regex) Compile() (*regexp2.Regexp, error) {
	lit := r.Literal
	if len(lit) < 2 || lit[0] != '/' {
		return nil, fmt.Errorf("malformed regex literal %q", lit)
	}
	end := strings.LastIndexByte(lit, '/')
	if end == 0 {
		return nil, fmt.Errorf("malformed regex literal %q: unterminated pattern", lit)
	}
	pattern, flags := lit[1:end], lit[end+1:]

	opts := regexp2.RegexOptions(regexp2.ECMAScript)
	for _, f := range flags {
		switch f {
		case 'i':
			opts |= regexp2.IgnoreCase
		case 'm':
			opts |= regexp2.Multiline
		case 's':
			opts |= regexp2.Singleline
		case 'u':
			opts |= regexp2.Unicode
		case 'g', 'y':
			// iteration flags, no compile-time counterpart
		default:
			return nil, fmt.Errorf("unsupported regex flag %q in %q", string(f), lit)
		}
	}
	return regexp2.Compile(pattern, opts)
}

// --- Composite literals ---

// Array represents an array literal. Holes are Elision entries, not absent
// slots, so Items stays dense and positional.
type Array struct {
	base
	Items []Expression
}

func NewArray(items []Expression, line int) *Array {
	a := &Array{base: base{line: line}, Items: items}
	adoptExprs(a, items)
	return a
}

func (a *Array) expressionNode() {}
func (a *Array) Children() []Node {
	return appendExprs(make([]Node, 0, len(a.Items)), a.Items)
}
func (a *Array) String() string { return "[" + joinExprs(a.Items, ",") + "]" }
func (a *Array) replaceChild(old, replacement Node) (int, error) {
	r := replacer{old: old, replacement: replacement}
	list(&r, a.Items)
	return r.done()
}

// Elision represents a hole in an array literal.
type Elision struct {
	base
}

func NewElision(line int) *Elision { return &Elision{base: base{line: line}} }

func (e *Elision) expressionNode()  {}
func (e *Elision) Children() []Node { return nil }
func (e *Elision) String() string   { return "" }
func (e *Elision) replaceChild(old, replacement Node) (int, error) { return 0, nil }

// Object represents an object literal. A data property is an Assign whose
// Op is ":"; accessor properties are GetPropAssign and SetPropAssign.
type Object struct {
	base
	Properties []Expression
}

func NewObject(properties []Expression, line int) *Object {
	o := &Object{base: base{line: line}, Properties: properties}
	adoptExprs(o, properties)
	return o
}

func (o *Object) expressionNode() {}
func (o *Object) Children() []Node {
	return appendExprs(make([]Node, 0, len(o.Properties)), o.Properties)
}
func (o *Object) String() string { return "{" + joinExprs(o.Properties, ",") + "}" }
func (o *Object) replaceChild(old, replacement Node) (int, error) {
	r := replacer{old: old, replacement: replacement}
	list(&r, o.Properties)
	return r.done()
}

// GetPropAssign represents a getter property in an object literal,
// get name() { body }. The property name is an identifier, string or
// number; like other property names it is never a rename candidate.
type GetPropAssign struct {
	base
	PropName Expression
	Body     []Statement
}

func NewGetPropAssign(propName Expression, body []Statement, line int) *GetPropAssign {
	gp := &GetPropAssign{base: base{line: line}, PropName: propName, Body: body}
	adopt(gp, exprNode(propName))
	adoptStmts(gp, body)
	return gp
}

func (gp *GetPropAssign) expressionNode() {}
func (gp *GetPropAssign) Children() []Node {
	out := make([]Node, 0, 1+len(gp.Body))
	out = append(out, exprNode(gp.PropName))
	return appendStmts(out, gp.Body)
}
func (gp *GetPropAssign) String() string {
	return "get " + exprString(gp.PropName) + "(){" + joinStmts(gp.Body) + "}"
}
func (gp *GetPropAssign) replaceChild(old, replacement Node) (int, error) {
	r := replacer{old: old, replacement: replacement}
	slot(&r, &gp.PropName)
	list(&r, gp.Body)
	return r.done()
}

// SetPropAssign represents a setter property in an object literal,
// set name(param) { body }. The parameter is a formal parameter and is
// marked as a rename candidate; the property name is not.
type SetPropAssign struct {
	base
	PropName Expression
	Params   []*Identifier
	Body     []Statement
}

func NewSetPropAssign(propName Expression, params []*Identifier, body []Statement, line int) *SetPropAssign {
	markBindings(nil, params)
	sp := &SetPropAssign{base: base{line: line}, PropName: propName, Params: params, Body: body}
	adopt(sp, exprNode(propName))
	adoptIdents(sp, params)
	adoptStmts(sp, body)
	return sp
}

func (sp *SetPropAssign) expressionNode() {}
func (sp *SetPropAssign) Children() []Node {
	out := make([]Node, 0, 1+len(sp.Params)+len(sp.Body))
	out = append(out, exprNode(sp.PropName))
	for _, p := range sp.Params {
		out = append(out, identNode(p))
	}
	return appendStmts(out, sp.Body)
}
func (sp *SetPropAssign) String() string {
	var params []string
	for _, p := range sp.Params {
		params = append(params, identString(p))
	}
	return "set " + exprString(sp.PropName) + "(" + strings.Join(params, ",") + "){" + joinStmts(sp.Body) + "}"
}
func (sp *SetPropAssign) replaceChild(old, replacement Node) (int, error) {
	r := replacer{old: old, replacement: replacement}
	slot(&r, &sp.PropName)
	list(&r, sp.Params)
	list(&r, sp.Body)
	return r.done()
}

// This represents the `this` keyword.
type This struct {
	base
}

func NewThis(line int) *This { return &This{base: base{line: line}} }

func (t *This) expressionNode()  {}
func (t *This) Children() []Node { return nil }
func (t *This) String() string   { return "this" }
func (t *This) replaceChild(old, replacement Node) (int, error) { return 0, nil }

// --- Access and call expressions ---

// BracketAccessor represents computed member access, target[index].
type BracketAccessor struct {
	base
	Target Expression
	Index  Expression
}

func NewBracketAccessor(target, index Expression, line int) *BracketAccessor {
	ba := &BracketAccessor{base: base{line: line}, Target: target, Index: index}
	adopt(ba, exprNode(target), exprNode(index))
	return ba
}

func (ba *BracketAccessor) expressionNode() {}
func (ba *BracketAccessor) Children() []Node {
	return []Node{exprNode(ba.Target), exprNode(ba.Index)}
}
func (ba *BracketAccessor) String() string {
	return exprString(ba.Target) + "[" + exprString(ba.Index) + "]"
}
func (ba *BracketAccessor) replaceChild(old, replacement Node) (int, error) {
	r := replacer{old: old, replacement: replacement}
	slot(&r, &ba.Target)
	slot(&r, &ba.Index)
	return r.done()
}

// DotAccessor represents member access by name, target.property. The
// property identifier is a name, not a binding; it is never a rename
// candidate.
type DotAccessor struct {
	base
	Target   Expression
	Property *Identifier
}

func NewDotAccessor(target Expression, property *Identifier, line int) *DotAccessor {
	da := &DotAccessor{base: base{line: line}, Target: target, Property: property}
	adopt(da, exprNode(target), identNode(property))
	return da
}

func (da *DotAccessor) expressionNode() {}
func (da *DotAccessor) Children() []Node {
	return []Node{exprNode(da.Target), identNode(da.Property)}
}
func (da *DotAccessor) String() string {
	return exprString(da.Target) + "." + identString(da.Property)
}
func (da *DotAccessor) replaceChild(old, replacement Node) (int, error) {
	r := replacer{old: old, replacement: replacement}
	slot(&r, &da.Target)
	slot(&r, &da.Property)
	return r.done()
}

// FunctionCall represents callee(args...).
type FunctionCall struct {
	base
	Callee Expression
	Args   []Expression
}

func NewFunctionCall(callee Expression, args []Expression, line int) *FunctionCall {
	fc := &FunctionCall{base: base{line: line}, Callee: callee, Args: args}
	adopt(fc, exprNode(callee))
	adoptExprs(fc, args)
	return fc
}

func (fc *FunctionCall) expressionNode() {}
func (fc *FunctionCall) Children() []Node {
	out := make([]Node, 0, 1+len(fc.Args))
	out = append(out, exprNode(fc.Callee))
	return appendExprs(out, fc.Args)
}
func (fc *FunctionCall) String() string {
	return exprString(fc.Callee) + "(" + joinExprs(fc.Args, ",") + ")"
}
func (fc *FunctionCall) replaceChild(old, replacement Node) (int, error) {
	r := replacer{old: old, replacement: replacement}
	slot(&r, &fc.Callee)
	list(&r, fc.Args)
	return r.done()
}

// NewExpr represents new callee(args...).
type NewExpr struct {
	base
	Callee Expression
	Args   []Expression
}

func NewNewExpr(callee Expression, args []Expression, line int) *NewExpr {
	ne := &NewExpr{base: base{line: line}, Callee: callee, Args: args}
	adopt(ne, exprNode(callee))
	adoptExprs(ne, args)
	return ne
}

func (ne *NewExpr) expressionNode() {}
func (ne *NewExpr) Children() []Node {
	out := make([]Node, 0, 1+len(ne.Args))
	out = append(out, exprNode(ne.Callee))
	return appendExprs(out, ne.Args)
}
func (ne *NewExpr) String() string {
	return "new " + exprString(ne.Callee) + "(" + joinExprs(ne.Args, ",") + ")"
}
func (ne *NewExpr) replaceChild(old, replacement Node) (int, error) {
	r := replacer{old: old, replacement: replacement}
	slot(&r, &ne.Callee)
	list(&r, ne.Args)
	return r.done()
}

// --- Operator expressions ---

// Assign represents an assignment, left op right, where Op is "=" or a
// compound operator like "+=". Object-literal property definitions reuse
// this shape with Op ":".
type Assign struct {
	base
	Op    string
	Left  Expression
	Right Expression
}

func NewAssign(op string, left, right Expression, line int) *Assign {
	a := &Assign{base: base{line: line}, Op: op, Left: left, Right: right}
	adopt(a, exprNode(left), exprNode(right))
	return a
}

func (a *Assign) expressionNode() {}
func (a *Assign) Children() []Node {
	return []Node{exprNode(a.Left), exprNode(a.Right)}
}
func (a *Assign) String() string {
	return exprString(a.Left) + a.Op + exprString(a.Right)
}
func (a *Assign) replaceChild(old, replacement Node) (int, error) {
	r := replacer{old: old, replacement: replacement}
	slot(&r, &a.Left)
	slot(&r, &a.Right)
	return r.done()
}

// BinOp represents a binary operation, left op right.
type BinOp struct {
	base
	Op    string
	Left  Expression
	Right Expression
}

func NewBinOp(op string, left, right Expression, line int) *BinOp {
	b := &BinOp{base: base{line: line}, Op: op, Left: left, Right: right}
	adopt(b, exprNode(left), exprNode(right))
	return b
}

func (b *BinOp) expressionNode() {}
func (b *BinOp) Children() []Node {
	return []Node{exprNode(b.Left), exprNode(b.Right)}
}
func (b *BinOp) String() string {
	return "(" + exprString(b.Left) + " " + b.Op + " " + exprString(b.Right) + ")"
}
func (b *BinOp) replaceChild(old, replacement Node) (int, error) {
	r := replacer{old: old, replacement: replacement}
	slot(&r, &b.Left)
	slot(&r, &b.Right)
	return r.done()
}

// UnaryOp represents a unary operation; Postfix distinguishes x++ from ++x.
type UnaryOp struct {
	base
	Op      string
	Operand Expression
	Postfix bool
}

func NewUnaryOp(op string, operand Expression, postfix bool, line int) *UnaryOp {
	u := &UnaryOp{base: base{line: line}, Op: op, Operand: operand, Postfix: postfix}
	adopt(u, exprNode(operand))
	return u
}

func (u *UnaryOp) expressionNode()  {}
func (u *UnaryOp) Children() []Node { return []Node{exprNode(u.Operand)} }
func (u *UnaryOp) String() string {
	if u.Postfix {
		return exprString(u.Operand) + u.Op
	}
	return u.Op + exprString(u.Operand)
}
func (u *UnaryOp) replaceChild(old, replacement Node) (int, error) {
	r := replacer{old: old, replacement: replacement}
	slot(&r, &u.Operand)
	return r.done()
}

// Conditional represents the ternary operator, predicate ? consequent :
// alternative.
type Conditional struct {
	base
	Predicate   Expression
	Consequent  Expression
	Alternative Expression
}

func NewConditional(predicate, consequent, alternative Expression, line int) *Conditional {
	c := &Conditional{
		base:        base{line: line},
		Predicate:   predicate,
		Consequent:  consequent,
		Alternative: alternative,
	}
	adopt(c, exprNode(predicate), exprNode(consequent), exprNode(alternative))
	return c
}

func (c *Conditional) expressionNode() {}
func (c *Conditional) Children() []Node {
	return []Node{exprNode(c.Predicate), exprNode(c.Consequent), exprNode(c.Alternative)}
}
func (c *Conditional) String() string {
	return exprString(c.Predicate) + " ? " + exprString(c.Consequent) + " : " + exprString(c.Alternative)
}
func (c *Conditional) replaceChild(old, replacement Node) (int, error) {
	r := replacer{old: old, replacement: replacement}
	slot(&r, &c.Predicate)
	slot(&r, &c.Consequent)
	slot(&r, &c.Alternative)
	return r.done()
}

// Comma represents the comma operator, left, right.
type Comma struct {
	base
	Left  Expression
	Right Expression
}

func NewComma(left, right Expression, line int) *Comma {
	c := &Comma{base: base{line: line}, Left: left, Right: right}
	adopt(c, exprNode(left), exprNode(right))
	return c
}

func (c *Comma) expressionNode() {}
func (c *Comma) Children() []Node {
	return []Node{exprNode(c.Left), exprNode(c.Right)}
}
func (c *Comma) String() string {
	return exprString(c.Left) + "," + exprString(c.Right)
}
func (c *Comma) replaceChild(old, replacement Node) (int, error) {
	r := replacer{old: old, replacement: replacement}
	slot(&r, &c.Left)
	slot(&r, &c.Right)
	return r.done()
}

// FuncExpr represents a function expression; the name is optional.
type FuncExpr struct {
	base
	Name   *Identifier
	Params []*Identifier
	Body   []Statement
}

func NewFuncExpr(name *Identifier, params []*Identifier, body []Statement, line int) *FuncExpr {
	fe := &FuncExpr{base: base{line: line}, Name: name, Params: params, Body: body}
	markBindings(name, params)
	adopt(fe, identNode(name))
	adoptIdents(fe, params)
	adoptStmts(fe, body)
	return fe
}

func (fe *FuncExpr) expressionNode() {}
func (fe *FuncExpr) Children() []Node {
	return funcChildren(fe.Name, fe.Params, fe.Body)
}
func (fe *FuncExpr) String() string {
	return funcString(fe.Name, fe.Params, fe.Body)
}
func (fe *FuncExpr) replaceChild(old, replacement Node) (int, error) {
	r := replacer{old: old, replacement: replacement}
	slot(&r, &fe.Name)
	list(&r, fe.Params)
	list(&r, fe.Body)
	return r.done()
}

// --- shared helpers ---

// markBindings flags a function's name and formal parameters as rename
// candidates. Shared by FuncDecl and FuncExpr.
func markBindings(name *Identifier, params []*Identifier) {
	if name != nil {
		name.RenameCandidate = true
	}
	for _, p := range params {
		if p != nil {
			p.RenameCandidate = true
		}
	}
}

func adoptIdents(parent Node, ids []*Identifier) {
	for _, id := range ids {
		if id != nil {
			id.setParent(parent)
		}
	}
}

func funcChildren(name *Identifier, params []*Identifier, body []Statement) []Node {
	out := make([]Node, 0, 1+len(params)+len(body))
	out = append(out, identNode(name))
	for _, p := range params {
		out = append(out, identNode(p))
	}
	return appendStmts(out, body)
}

func funcString(name *Identifier, params []*Identifier, body []Statement) string {
	var out bytes.Buffer
	out.WriteString("function")
	if name != nil {
		out.WriteString(" ")
		out.WriteString(name.Name)
	}
	out.WriteString("(")
	for i, p := range params {
		if i > 0 {
			out.WriteString(",")
		}
		if p != nil {
			out.WriteString(p.Name)
		}
	}
	out.WriteString("){")
	for _, s := range body {
		if s != nil {
			out.WriteString(s.String())
		}
	}
	out.WriteString("}")
	return out.String()
}

func exprString(e Expression) string {
	if e == nil {
		return ""
	}
	return e.String()
}

func identString(id *Identifier) string {
	if id == nil {
		return ""
	}
	return id.Name
}

func joinExprs(list []Expression, sep string) string {
	parts := make([]string, 0, len(list))
	for _, e := range list {
		parts = append(parts, exprString(e))
	}
	return strings.Join(parts, sep)
}
