package ast_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mdsl-lang/mdslc/internal/ast"
)

func TestContainsPlaceholder(t *testing.T) {
	clean := ast.NewMethod(ast.Position{Line: 1}, "m")
	clean.Statements = []ast.Statement{
		ast.NewAssignment(ast.Position{Line: 2}, ast.NewName(ast.Position{Line: 2}, "q", false), ast.NewNumber(ast.Position{Line: 2})),
	}
	require.False(t, ast.ContainsPlaceholder(clean))

	withHole := ast.NewMethod(ast.Position{Line: 1}, "m")
	withHole.Statements = []ast.Statement{
		ast.NewAssignment(ast.Position{Line: 2}, ast.NewName(ast.Position{Line: 2}, "q", false), ast.NewPlaceholder(ast.Position{Line: 2})),
	}
	require.True(t, ast.ContainsPlaceholder(withHole))
}
