package analyzer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mdsl-lang/mdslc/internal/analyzer"
	"github.com/mdsl-lang/mdslc/internal/ast"
	"github.com/mdsl-lang/mdslc/internal/diagnostics"
	"github.com/mdsl-lang/mdslc/internal/parser"
	"github.com/mdsl-lang/mdslc/internal/symbols"
	"github.com/mdsl-lang/mdslc/internal/typesystem"
)

func mustParse(t *testing.T, src string) *ast.Method {
	t.Helper()
	m, err := parser.Parse(src)
	require.NoError(t, err)
	return m
}

// S1 — simple EEM-like method (spec.md §8).
func TestAnalyzeSimpleEEM(t *testing.T) {
	src := `
name eem
parameter A
parameter B
R is distance
i is atom
j is atom
q = EE[ row i, col j : diag A[i], off 1/R[i,j], rhs -B[i] ]
`
	m := mustParse(t, src)
	table, err := analyzer.Analyze(m)
	require.NoError(t, err)

	assign := m.Statements[0].(*ast.Assignment)
	require.True(t, assign.RHS.ResultType().Equal(typesystem.VectorOf(typesystem.Atom)))

	q, ok := table.MethodScope.Resolve(symbols.ReservedChargeVector)
	require.True(t, ok)
	require.True(t, q.(*symbols.VariableSymbol).Type.Equal(typesystem.VectorOf(typesystem.Atom)))
}

// S2 — substitution with a guarded and a default rule.
func TestAnalyzeSubstitutionWithGuard(t *testing.T) {
	src := `
name sub
parameter A
parameter B
i is atom
chi[i] = A[i] if element(i, H)
chi[i] = B[i]
q = chi[i]
`
	m := mustParse(t, src)
	table, err := analyzer.Analyze(m)
	require.NoError(t, err)

	chi, ok := table.ResolveSubstitution("chi")
	require.True(t, ok)
	require.Len(t, chi.Rules, 2)
	_, hasDefault := chi.DefaultRule()
	require.True(t, hasDefault)
	require.True(t, chi.ResultType.Equal(typesystem.FloatType))
}

// S3 — array shape mismatch: an Atom,Bond matrix against an Atom vector.
func TestAnalyzeArrayShapeMismatch(t *testing.T) {
	src := `
name shapes
parameter bond B
for each b is bond (i-j) such that bonded(i,j):
m[i,b] = B[b]
end
u = q
v = m * u
`
	_, err := analyzer.Analyze(mustParse(t, src))
	require.Error(t, err)
	var te *diagnostics.TypeError
	require.ErrorAs(t, err, &te)
}

// S4 — unbound Object name used with no enclosing for each.
func TestAnalyzeUnboundObjectName(t *testing.T) {
	src := `
name unbound
chi is electronegativity
x = chi[i]
`
	_, err := analyzer.Analyze(mustParse(t, src))
	require.Error(t, err)
	var se *diagnostics.SymbolError
	require.ErrorAs(t, err, &se)
}

// S5 — Int <- Float narrowing is rejected.
func TestAnalyzeIntNarrowingRejected(t *testing.T) {
	src := `
name narrow
k = 0
k = 1.5
`
	_, err := analyzer.Analyze(mustParse(t, src))
	require.Error(t, err)
	var te *diagnostics.TypeError
	require.ErrorAs(t, err, &te)
}

// S6 — bond decomposition: i, j, b resolve inside the loop, and cannot
// leak outside it.
func TestAnalyzeBondDecompositionScopeLifecycle(t *testing.T) {
	src := `
name bondtest
parameter bond B
for each b is bond (i-j) such that bonded(i,j):
k = B[b]
end
`
	table, err := analyzer.Analyze(mustParse(t, src))
	require.NoError(t, err)

	_, ok := table.MethodScope.Resolve("i")
	require.False(t, ok, "i must not be visible outside the loop")
	_, ok = table.MethodScope.Resolve("b")
	require.False(t, ok, "b must not be visible outside the loop")
}

func TestAnalyzeRegressionPlaceholderRefused(t *testing.T) {
	src := `
name regress
q = {}
`
	_, err := analyzer.Analyze(mustParse(t, src))
	require.Error(t, err)
	var te *diagnostics.TypeError
	require.ErrorAs(t, err, &te)
}

func TestAnalyzeRedeclarationIsSymbolError(t *testing.T) {
	src := `
name redecl
parameter A
parameter A
q = A[i]
`
	_, err := analyzer.Analyze(mustParse(t, src))
	require.Error(t, err)
	var se *diagnostics.SymbolError
	require.ErrorAs(t, err, &se)
}

func TestAnalyzeSubstitutionWithoutDefaultRuleFails(t *testing.T) {
	src := `
name nodefault
parameter A
i is atom
chi[i] = A[i] if element(i, H)
q = chi[i]
`
	_, err := analyzer.Analyze(mustParse(t, src))
	require.Error(t, err)
	var se *diagnostics.SymbolError
	require.ErrorAs(t, err, &se)
}
