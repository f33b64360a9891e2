package parser_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mdsl-lang/mdslc/internal/ast"
	"github.com/mdsl-lang/mdslc/internal/diagnostics"
	"github.com/mdsl-lang/mdslc/internal/parser"
)

// S1 — simple EEM-like method (spec.md §8).
func TestParseSimpleEEM(t *testing.T) {
	src := `
name eem
parameter A
parameter B
i is atom
j is atom
q = EE[ row i, col j : diag A[i], off 1/R[i,j], rhs -B[i] ]
`
	m, err := parser.Parse(src)
	require.NoError(t, err)
	require.Equal(t, "eem", m.Name)
	require.Len(t, m.Annotations, 4)
	require.Len(t, m.Statements, 1)

	assign, ok := m.Statements[0].(*ast.Assignment)
	require.True(t, ok)
	lhs, ok := assign.LHS.(*ast.NameExpr)
	require.True(t, ok)
	require.Equal(t, "q", lhs.Name)

	ee, ok := assign.RHS.(*ast.EEExpr)
	require.True(t, ok)
	require.Equal(t, "i", ee.Row.Name)
	require.Equal(t, "j", ee.Col.Name)
	require.False(t, ee.Cutoff)
	require.Nil(t, ee.Radius)

	off, ok := ee.OffDiagonal.(*ast.BinaryExpr)
	require.True(t, ok)
	require.Equal(t, "/", off.Op)

	rhs, ok := ee.RHS.(*ast.UnaryExpr)
	require.True(t, ok)
	_, ok = rhs.Operand.(*ast.SubscriptExpr)
	require.True(t, ok)
}

func TestParseEECutoffMode(t *testing.T) {
	src := `
name eem_cutoff
i is atom
j is atom
q = EE[ row i, col j : diag 1.0, off 1.0, rhs 1.0, cutoff radius 5.0 ]
`
	m, err := parser.Parse(src)
	require.NoError(t, err)
	assign := m.Statements[0].(*ast.Assignment)
	ee := assign.RHS.(*ast.EEExpr)
	require.True(t, ee.Cutoff)
	require.NotNil(t, ee.Radius)
}

// S2 — substitution with a guarded rule and a default rule.
func TestParseSubstitutionWithGuard(t *testing.T) {
	src := `
name sub
parameter A
parameter B
i is atom
chi[i] = A[i] if element(i, H)
chi[i] = B[i]
q = chi[i]
`
	m, err := parser.Parse(src)
	require.NoError(t, err)
	require.Len(t, m.Annotations, 5)

	guarded, ok := m.Annotations[3].(*ast.SubstitutionAnnotation)
	require.True(t, ok)
	require.Equal(t, "chi", guarded.Name.Name)
	require.NotNil(t, guarded.Guard)
	pred, ok := guarded.Guard.(*ast.Predicate)
	require.True(t, ok)
	require.Equal(t, "element", pred.Name)

	def, ok := m.Annotations[4].(*ast.SubstitutionAnnotation)
	require.True(t, ok)
	require.Equal(t, "chi", def.Name.Name)
	require.Nil(t, def.Guard)

	require.Len(t, m.Statements, 1)
}

// S6 — bond decomposition.
func TestParseBondDecomposition(t *testing.T) {
	src := `
name bondtest
parameter B
for each b is bond (i-j) such that bonded(i,j):
k = B[b]
end
`
	m, err := parser.Parse(src)
	require.NoError(t, err)
	require.Len(t, m.Statements, 1)

	loop, ok := m.Statements[0].(*ast.ObjectFor)
	require.True(t, ok)
	require.Equal(t, "b", loop.Name.Name)
	require.NotNil(t, loop.Decompose)
	require.Equal(t, "i", loop.Decompose.AtomA.Name)
	require.Equal(t, "j", loop.Decompose.AtomB.Name)
	require.NotNil(t, loop.Constraint)
	require.Len(t, loop.Body, 1)
}

func TestParseBoundedForAndSum(t *testing.T) {
	src := `
name counting
parameter A
i is atom
for k = 1 to 10:
t = sum i such that element(i, H) : A[i]
end
`
	m, err := parser.Parse(src)
	require.NoError(t, err)
	loop, ok := m.Statements[0].(*ast.BoundedFor)
	require.True(t, ok)
	require.Equal(t, "k", loop.Counter.Name)
	require.Len(t, loop.Body, 1)

	assign := loop.Body[0].(*ast.Assignment)
	sum, ok := assign.RHS.(*ast.SumExpr)
	require.True(t, ok)
	require.Equal(t, "i", sum.Bound.Name)
	require.NotNil(t, sum.Constraint)
}

func TestParseParameterKinds(t *testing.T) {
	src := `
name params
parameter A
parameter bond B
parameter common k
q = k
`
	m, err := parser.Parse(src)
	require.NoError(t, err)
	require.Len(t, m.Annotations, 3)
	for i, want := range []string{"A", "B", "k"} {
		pa := m.Annotations[i].(*ast.ParameterAnnotation)
		require.Equal(t, want, pa.Name.Name)
	}
}

func TestParseMultiWordPropertyAndConstant(t *testing.T) {
	src := `
name properties
rC is van der waals radius of C
chi is electronegativity
q = rC
`
	m, err := parser.Parse(src)
	require.NoError(t, err)
	require.Len(t, m.Annotations, 2)

	constAnno, ok := m.Annotations[0].(*ast.ConstantAnnotation)
	require.True(t, ok)
	require.Equal(t, "van der waals radius", constAnno.Property)
	require.Equal(t, "C", constAnno.Element.Name)

	propAnno, ok := m.Annotations[1].(*ast.PropertyAnnotation)
	require.True(t, ok)
	require.Equal(t, "electronegativity", propAnno.Property)
}

func TestParseRegressionPlaceholder(t *testing.T) {
	src := `
name regress
q = {}
`
	m, err := parser.Parse(src)
	require.NoError(t, err)
	assign := m.Statements[0].(*ast.Assignment)
	_, ok := assign.RHS.(*ast.PlaceholderExpr)
	require.True(t, ok)
}

func TestParseLinksParents(t *testing.T) {
	src := `
name linked
i is atom
q = i
`
	m, err := parser.Parse(src)
	require.NoError(t, err)
	require.Nil(t, m.Parent())
	require.Equal(t, ast.Node(m), m.Annotations[0].Parent())
	require.Equal(t, ast.Node(m), m.Statements[0].Parent())
}

func TestParsePowerIsRightAssociative(t *testing.T) {
	src := `
name power
q = 2 ^ 3 ^ 2
`
	m, err := parser.Parse(src)
	require.NoError(t, err)
	assign := m.Statements[0].(*ast.Assignment)
	top, ok := assign.RHS.(*ast.BinaryExpr)
	require.True(t, ok)
	require.Equal(t, "^", top.Op)
	_, leftIsNumber := top.Left.(*ast.NumberExpr)
	require.True(t, leftIsNumber)
	right, ok := top.Right.(*ast.BinaryExpr)
	require.True(t, ok)
	require.Equal(t, "^", right.Op)
}

func TestParseLargeIntegerLiteralFallsBackToFloat(t *testing.T) {
	src := `
name boundary
q = 99999999999999999999
`
	m, err := parser.Parse(src)
	require.NoError(t, err)
	assign := m.Statements[0].(*ast.Assignment)
	n, ok := assign.RHS.(*ast.NumberExpr)
	require.True(t, ok)
	require.True(t, n.IsFloat)
}

func TestParseUnterminatedLoopIsSyntaxError(t *testing.T) {
	src := `
name broken
for k = 1 to 10:
q = k
`
	_, err := parser.Parse(src)
	require.Error(t, err)
	var syn *diagnostics.SyntaxError
	require.ErrorAs(t, err, &syn)
}

func TestParseUnknownPropertyPhraseIsSyntaxError(t *testing.T) {
	src := `
name bogus
x is not a real property
q = x
`
	_, err := parser.Parse(src)
	require.Error(t, err)
}
