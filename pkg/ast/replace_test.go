package ast

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ContextLogic/slimit/pkg/errors"
)

func TestReplaceSingleSlot(t *testing.T) {
	a := NewBoolean(true, 1)
	b := NewBlock(nil, 1)
	c := NewBlock(nil, 2)
	p := NewIf(a, b, c, 1)

	a2 := NewBoolean(false, 1)
	require.NoError(t, Replace(a, a2))

	assert.Same(t, a2, p.Predicate)
	assert.Same(t, p, a2.Parent())
	// siblings and their parent links are untouched
	assert.Same(t, b, p.Consequent)
	assert.Same(t, c, p.Alternative)
	assert.Same(t, p, b.Parent())
	assert.Same(t, p, c.Parent())
}

func TestReplaceListSlot(t *testing.T) {
	s1 := NewExprStatement(NewIdentifier("a", 1), 1)
	s2 := NewExprStatement(NewIdentifier("b", 2), 2)
	s3 := NewExprStatement(NewIdentifier("c", 3), 3)
	block := NewBlock([]Statement{s1, s2, s3}, 1)

	s2b := NewEmptyStatement(2)
	require.NoError(t, Replace(s2, s2b))

	children := block.Children()
	require.Len(t, children, 3)
	assert.Same(t, s1, children[0])
	assert.Same(t, s2b, children[1])
	assert.Same(t, s3, children[2])
	assert.Same(t, block, s2b.Parent())
}

func TestReplaceAcrossVariants(t *testing.T) {
	// The intended use: folding a function call into a string literal.
	call := NewFunctionCall(NewIdentifier("concat", 1), []Expression{
		NewString("a", 1), NewString("b", 1),
	}, 1)
	stmt := NewExprStatement(call, 1)

	folded := NewString("ab", 1)
	require.NoError(t, Replace(call, folded))

	assert.Same(t, folded, stmt.Expr)
	assert.Same(t, stmt, folded.Parent())
}

func TestReplaceMultiOccurrence(t *testing.T) {
	// The same node instance deliberately occupies both operand slots.
	x := NewIdentifier("x", 1)
	sum := NewBinOp("+", x, x, 1)

	y := NewIdentifier("y", 1)
	require.NoError(t, Replace(x, y))

	assert.Same(t, y, sum.Left)
	assert.Same(t, y, sum.Right)
	assert.Same(t, sum, y.Parent())
}

func TestReplaceMatchesByIdentityNotEquality(t *testing.T) {
	// Two structurally equal literals; replacing one must not touch the
	// other.
	n1 := NewNumber(1, 1)
	n2 := NewNumber(1, 1)
	arr := NewArray([]Expression{n1, n2}, 1)

	zero := NewNumber(0, 1)
	require.NoError(t, Replace(n1, zero))

	assert.Same(t, zero, arr.Items[0])
	assert.Same(t, n2, arr.Items[1])
}

func TestReplaceRootFails(t *testing.T) {
	root := NewProgram([]Statement{NewEmptyStatement(1)}, 1)

	err := Replace(root, NewProgram(nil, 1))
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrNoParent))

	// the tree is left unmodified
	require.Len(t, root.Body, 1)
}

func TestReplaceStaleParentFails(t *testing.T) {
	a := NewBoolean(true, 1)
	p := NewIf(a, NewBlock(nil, 1), nil, 1)

	require.NoError(t, Replace(a, NewBoolean(false, 1)))

	// a is now an orphan whose parent link still points at p, but p no
	// longer holds it in any slot.
	assert.Same(t, p, a.Parent())
	err := Replace(a, NewNull(1))
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrNotChild))
}

func TestReplaceTypedSlotRejectsWrongVariant(t *testing.T) {
	name := NewIdentifier("loop", 1)
	NewLabel(name, NewEmptyStatement(1), 1)

	err := Replace(name, NewNumber(1, 1))
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrBadSlot))
}

func TestReplaceMixedTypedSlotsIsAtomic(t *testing.T) {
	// The same node deliberately occupies two slots of different static
	// types: For.Init (a Node slot, which accepts any variant) and
	// For.Cond (an Expression slot). A statement replacement fits the
	// first but not the second; the whole operation must back out.
	b := NewBoolean(true, 1)
	body := NewBlock(nil, 1)
	f := NewFor(b, b, nil, body, 1)

	repl := NewEmptyStatement(1)
	err := Replace(b, repl)
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrBadSlot))

	// no slot was written and the replacement was never wired in
	assert.Same(t, b, f.Init)
	assert.Same(t, b, f.Cond)
	assert.Nil(t, repl.Parent())
}

func TestReplaceLeavesOrphanSubtreeIntact(t *testing.T) {
	inner := NewIdentifier("x", 1)
	call := NewFunctionCall(NewIdentifier("f", 1), []Expression{inner}, 1)
	stmt := NewExprStatement(call, 1)

	require.NoError(t, Replace(call, NewNull(1)))

	// the orphaned call keeps its own children and its stale parent link
	assert.Same(t, stmt, call.Parent())
	require.Len(t, call.Args, 1)
	assert.Same(t, inner, call.Args[0])
	assert.Same(t, call, inner.Parent())
}

func TestReplaceInVarStatement(t *testing.T) {
	d1 := NewVarDecl(NewIdentifier("a", 1), nil, 1)
	d2 := NewVarDecl(NewIdentifier("b", 1), NewNumber(2, 1), 1)
	vs := NewVarStatement([]*VarDecl{d1, d2}, 1)

	d2b := NewVarDecl(NewIdentifier("c", 1), nil, 1)
	require.NoError(t, Replace(d2, d2b))

	assert.Same(t, d1, vs.Decls[0])
	assert.Same(t, d2b, vs.Decls[1])
	assert.Same(t, vs, d2b.Parent())
}

func TestReplaceRewriteErrorCarriesLine(t *testing.T) {
	root := NewProgram(nil, 7)
	err := Replace(root, NewProgram(nil, 7))

	var te errors.TreeError
	require.True(t, stderrors.As(err, &te))
	assert.Equal(t, "Rewrite", te.Kind())
	assert.Equal(t, 7, te.Pos().Line)
}

func TestCollectThenReplaceDuringTraversal(t *testing.T) {
	// The documented pattern for rewriting passes: collect targets while
	// walking a snapshot, splice afterwards.
	block := NewBlock([]Statement{
		NewExprStatement(NewFunctionCall(NewIdentifier("f", 1), nil, 1), 1),
		NewExprStatement(NewFunctionCall(NewIdentifier("g", 2), nil, 2), 2),
	}, 1)

	var calls []*FunctionCall
	Inspect(block, func(n Node) bool {
		if fc, ok := n.(*FunctionCall); ok {
			calls = append(calls, fc)
		}
		return true
	})
	require.Len(t, calls, 2)

	for _, fc := range calls {
		require.NoError(t, Replace(fc, NewNull(fc.Line())))
	}

	Inspect(block, func(n Node) bool {
		_, isCall := n.(*FunctionCall)
		assert.False(t, isCall)
		return true
	})
}
