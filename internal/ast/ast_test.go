package ast_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mdsl-lang/mdslc/internal/ast"
	"github.com/mdsl-lang/mdslc/internal/typesystem"
)

func TestLinkSetsParents(t *testing.T) {
	pos := ast.Position{Line: 1, Column: 0}
	i := ast.NewIdentifier(pos, "i")
	nameExpr := ast.NewName(pos, "A", false)
	sub := ast.NewSubscript(pos, ast.NewIdentifier(pos, "A"), []*ast.Identifier{i})
	assign := ast.NewAssignment(pos, sub, nameExpr)

	objFor := ast.NewObjectFor(pos, ast.NewIdentifier(pos, "i"), typesystem.Atom, nil, nil, []ast.Statement{assign})

	m := ast.NewMethod(pos, "Test")
	m.Statements = []ast.Statement{objFor}

	ast.Link(m)

	require.Nil(t, m.Parent(), "root must have a nil parent")
	require.Equal(t, ast.Node(m), objFor.Parent())
	require.Equal(t, ast.Node(objFor), assign.Parent())
	require.Equal(t, ast.Node(assign), sub.Parent())
	require.Equal(t, ast.Node(assign), nameExpr.Parent())
}

func TestResultTypeSlotStartsNil(t *testing.T) {
	pos := ast.Position{Line: 1, Column: 0}
	n := ast.NewNumber(pos)
	require.Nil(t, n.ResultType())
	n.SetResultType(typesystem.IntType)
	require.True(t, n.ResultType().Equal(typesystem.IntType))
}
