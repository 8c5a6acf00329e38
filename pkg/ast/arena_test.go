package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArenaConstructorsMatchFreeConstructors(t *testing.T) {
	a := NewArena()

	name := a.NewIdentifier("x", 1)
	decl := a.NewVarDecl(name, a.NewNumber(1, 1), 1)
	vs := a.NewVarStatement([]*VarDecl{decl}, 1)
	program := a.NewProgram([]Statement{vs}, 1)

	// same adoption and marking semantics as the package-level constructors
	assert.True(t, name.RenameCandidate)
	assert.Same(t, decl, name.Parent())
	assert.Same(t, vs, decl.Parent())
	assert.Same(t, program, vs.Parent())
}

func TestArenaNodesParticipateInReplace(t *testing.T) {
	a := NewArena()

	pred := a.NewBoolean(true, 1)
	ifStmt := a.NewIf(pred, a.NewBlock(nil, 1), nil, 1)

	pred2 := a.NewBoolean(false, 1)
	require.NoError(t, Replace(pred, pred2))
	assert.Same(t, pred2, ifStmt.Predicate)
}

func TestArenaPointerStabilityAcrossChunks(t *testing.T) {
	a := NewArena()

	// allocate past several chunk boundaries and check earlier nodes are
	// not relocated
	ids := make([]*Identifier, 0, 1000)
	for i := 0; i < 1000; i++ {
		ids = append(ids, a.NewIdentifier("v", i+1))
	}
	for i, id := range ids {
		assert.Equal(t, i+1, id.Line())
	}
}

func TestArenaReset(t *testing.T) {
	a := NewArena()
	a.NewIdentifier("before", 1)

	a.Reset()

	id := a.NewIdentifier("after", 2)
	assert.Equal(t, "after", id.Name)
	assert.Equal(t, 2, id.Line())
	assert.Nil(t, id.Parent())
}

func TestArenaIdentifierNormalization(t *testing.T) {
	a := NewArena()
	decomposed := a.NewIdentifier("cafe\u0301", 1)
	precomposed := NewIdentifier("caf\u00e9", 1)
	assert.Equal(t, precomposed.Name, decomposed.Name)
}
