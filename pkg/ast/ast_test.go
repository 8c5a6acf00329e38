package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForChildrenOrder(t *testing.T) {
	init := NewVarStatement([]*VarDecl{
		NewVarDecl(NewIdentifier("i", 1), NewNumber(0, 1), 1),
	}, 1)
	cond := NewBinOp("<", NewIdentifier("i", 1), NewNumber(10, 1), 1)
	update := NewUnaryOp("++", NewIdentifier("i", 1), true, 1)
	body := NewBlock(nil, 1)

	f := NewFor(init, cond, update, body, 1)

	children := f.Children()
	require.Len(t, children, 4)
	assert.Same(t, init, children[0])
	assert.Same(t, cond, children[1])
	assert.Same(t, update, children[2])
	assert.Same(t, body, children[3])
}

func TestForChildrenKeepAbsentSlots(t *testing.T) {
	body := NewBlock(nil, 2)
	f := NewFor(nil, nil, nil, body, 2)

	children := f.Children()
	require.Len(t, children, 4)
	assert.Nil(t, children[0])
	assert.Nil(t, children[1])
	assert.Nil(t, children[2])
	assert.Same(t, body, children[3])
}

func TestIfAlternativeKeepsPositionalSlot(t *testing.T) {
	pred := NewBoolean(true, 1)
	cons := NewBlock(nil, 1)

	withoutElse := NewIf(pred, cons, nil, 1)
	children := withoutElse.Children()
	require.Len(t, children, 3)
	assert.Same(t, pred, children[0])
	assert.Same(t, cons, children[1])
	assert.Nil(t, children[2])

	alt := NewBlock(nil, 2)
	withElse := NewIf(NewBoolean(false, 2), NewBlock(nil, 2), alt, 2)
	assert.Same(t, alt, withElse.Children()[2])
}

func TestLeafVariantsHaveNoChildren(t *testing.T) {
	leaves := []Node{
		NewBoolean(true, 1),
		NewNull(1),
		NewNumber(3.14, 1),
		NewIdentifier("x", 1),
		NewString("hello", 1),
		NewRegex("/a+/", 1),
		NewElision(1),
		NewThis(1),
		NewEmptyStatement(1),
		NewDebugger(1),
	}
	for _, leaf := range leaves {
		assert.Empty(t, leaf.Children(), "%T should be a leaf", leaf)
	}
}

func TestConstructorsWireParents(t *testing.T) {
	callee := NewIdentifier("f", 3)
	arg := NewString("a", 3)
	call := NewFunctionCall(callee, []Expression{arg}, 3)
	stmt := NewExprStatement(call, 3)
	program := NewProgram([]Statement{stmt}, 1)

	assert.Nil(t, program.Parent())
	assert.Same(t, program, stmt.Parent())
	assert.Same(t, stmt, call.Parent())
	assert.Same(t, call, callee.Parent())
	assert.Same(t, call, arg.Parent())
	assert.Equal(t, 3, call.Line())
}

func TestDepthFirstWalkVisitsEachNodeOnce(t *testing.T) {
	tree := NewProgram([]Statement{
		NewIf(
			NewBinOp("==", NewIdentifier("a", 1), NewNumber(1, 1), 1),
			NewBlock([]Statement{
				NewReturn(NewString("one", 2), 2),
			}, 1),
			NewExprStatement(NewFunctionCall(NewIdentifier("g", 4), nil, 4), 4),
			1,
		),
		NewVarStatement([]*VarDecl{
			NewVarDecl(NewIdentifier("b", 5), nil, 5),
		}, 5),
	}, 1)

	seen := map[Node]int{}
	Inspect(tree, func(n Node) bool {
		seen[n]++
		return true
	})

	// Program, If, BinOp, a, 1, Block, Return, "one", ExprStatement,
	// call, g, VarStatement, VarDecl, b
	assert.Len(t, seen, 14)
	for n, count := range seen {
		assert.Equal(t, 1, count, "%T visited %d times", n, count)
	}
}

func TestChildrenReturnsFreshSnapshot(t *testing.T) {
	s1 := NewEmptyStatement(1)
	s2 := NewEmptyStatement(2)
	block := NewBlock([]Statement{s1, s2}, 1)

	snapshot := block.Children()
	snapshot[0] = nil

	children := block.Children()
	require.Len(t, children, 2)
	assert.Same(t, s1, children[0])
}

func TestRenameCandidateMarking(t *testing.T) {
	t.Run("function declaration marks name and parameters", func(t *testing.T) {
		name := NewIdentifier("add", 1)
		p1 := NewIdentifier("x", 1)
		p2 := NewIdentifier("y", 1)
		NewFuncDecl(name, []*Identifier{p1, p2}, nil, 1)

		assert.True(t, name.RenameCandidate)
		assert.True(t, p1.RenameCandidate)
		assert.True(t, p2.RenameCandidate)
	})

	t.Run("anonymous function expression marks parameters only", func(t *testing.T) {
		p1 := NewIdentifier("x", 1)
		NewFuncExpr(nil, []*Identifier{p1}, nil, 1)
		assert.True(t, p1.RenameCandidate)
	})

	t.Run("var declarator marks its target", func(t *testing.T) {
		name := NewIdentifier("count", 2)
		NewVarDecl(name, NewNumber(0, 2), 2)
		assert.True(t, name.RenameCandidate)
	})

	t.Run("catch binding is marked", func(t *testing.T) {
		param := NewIdentifier("e", 3)
		NewCatch(param, NewBlock(nil, 3), 3)
		assert.True(t, param.RenameCandidate)
	})

	t.Run("dot accessor property name is not marked", func(t *testing.T) {
		prop := NewIdentifier("length", 4)
		NewDotAccessor(NewIdentifier("arr", 4), prop, 4)
		assert.False(t, prop.RenameCandidate)
	})

	t.Run("plain reference is not marked", func(t *testing.T) {
		ref := NewIdentifier("x", 5)
		NewExprStatement(ref, 5)
		assert.False(t, ref.RenameCandidate)
	})
}

func TestIdentifierNamesAreNFCNormalized(t *testing.T) {
	// U+0065 U+0301 (e + combining acute) normalizes to U+00E9.
	decomposed := NewIdentifier("cafe\u0301", 1)
	precomposed := NewIdentifier("caf\u00e9", 1)
	assert.Equal(t, precomposed.Name, decomposed.Name)
}

func TestAccessorProperties(t *testing.T) {
	getName := NewIdentifier("x", 1)
	getter := NewGetPropAssign(getName, []Statement{NewReturn(NewNumber(1, 1), 1)}, 1)

	setName := NewIdentifier("x", 2)
	param := NewIdentifier("v", 2)
	setter := NewSetPropAssign(setName, []*Identifier{param}, nil, 2)

	obj := NewObject([]Expression{getter, setter}, 1)
	assert.Same(t, obj, getter.Parent())
	assert.Same(t, obj, setter.Parent())
	assert.Same(t, getter, getName.Parent())
	assert.Same(t, setter, param.Parent())

	// the setter parameter is a formal parameter; property names are not
	// bindings
	assert.True(t, param.RenameCandidate)
	assert.False(t, getName.RenameCandidate)
	assert.False(t, setName.RenameCandidate)

	children := setter.Children()
	require.Len(t, children, 2)
	assert.Same(t, setName, children[0])
	assert.Same(t, param, children[1])

	assert.Equal(t, "get x(){return 1;}", getter.String())
	assert.Equal(t, "set x(v){}", setter.String())

	// property names sit in an Expression slot and replace generically
	folded := NewString("x", 2)
	require.NoError(t, Replace(setName, folded))
	assert.Same(t, folded, setter.PropName)
}

func TestSwitchChildrenOrder(t *testing.T) {
	disc := NewIdentifier("x", 1)
	c1 := NewCase(NewNumber(1, 2), []Statement{NewBreak(nil, 2)}, 2)
	c2 := NewCase(NewNumber(2, 3), []Statement{NewBreak(nil, 3)}, 3)
	def := NewDefault([]Statement{NewReturn(nil, 4)}, 4)

	sw := NewSwitch(disc, []*Case{c1, c2}, def, 1)
	children := sw.Children()
	require.Len(t, children, 4)
	assert.Same(t, disc, children[0])
	assert.Same(t, c1, children[1])
	assert.Same(t, c2, children[2])
	assert.Same(t, def, children[3])

	noDefault := NewSwitch(NewIdentifier("y", 5), []*Case{}, nil, 5)
	children = noDefault.Children()
	require.Len(t, children, 2)
	assert.Nil(t, children[1])
}

func TestTryChildrenKeepClauseSlots(t *testing.T) {
	body := NewBlock(nil, 1)
	fin := NewFinally(NewBlock(nil, 3), 3)
	try := NewTry(body, nil, fin, 1)

	children := try.Children()
	require.Len(t, children, 3)
	assert.Same(t, body, children[0])
	assert.Nil(t, children[1])
	assert.Same(t, fin, children[2])
}

func TestDebugStringRendering(t *testing.T) {
	tests := []struct {
		node Node
		want string
	}{
		{NewBinOp("+", NewNumber(1, 1), NewNumber(2, 1), 1), "(1 + 2)"},
		{NewUnaryOp("++", NewIdentifier("i", 1), true, 1), "i++"},
		{NewUnaryOp("!", NewIdentifier("ok", 1), false, 1), "!ok"},
		{NewReturn(nil, 1), "return;"},
		{NewThrow(NewIdentifier("e", 1), 1), "throw e;"},
		{NewDotAccessor(NewIdentifier("a", 1), NewIdentifier("b", 1), 1), "a.b"},
		{NewBracketAccessor(NewIdentifier("a", 1), NewNumber(0, 1), 1), "a[0]"},
		{NewConditional(NewIdentifier("c", 1), NewNumber(1, 1), NewNumber(2, 1), 1), "c ? 1 : 2"},
		{NewLabel(NewIdentifier("loop", 1), NewEmptyStatement(1), 1), "loop:;"},
		{NewString("hi", 1), `"hi"`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.node.String())
	}
}

func TestDebugStringToleratesAbsentChildren(t *testing.T) {
	// every nilable named child renders as empty instead of panicking
	tests := []struct {
		node Node
		want string
	}{
		{NewVarDecl(nil, nil, 1), ""},
		{NewVarDecl(nil, NewNumber(1, 1), 1), "=1"},
		{NewCatch(nil, nil, 1), "catch()"},
		{NewLabel(nil, NewEmptyStatement(1), 1), ":;"},
		{NewDotAccessor(NewIdentifier("a", 1), nil, 1), "a."},
		{NewTry(nil, nil, nil, 1), "try"},
		{NewFinally(nil, 1), "finally"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.node.String())
	}
}
