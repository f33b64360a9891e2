package mdsl_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mdsl-lang/mdslc/internal/cache"
	"github.com/mdsl-lang/mdslc/internal/diagnostics"
	"github.com/mdsl-lang/mdslc/pkg/mdsl"
)

// S1 — a simple EEM-like method compiles and estimates cubic.
func TestEndToEndSimpleEEM(t *testing.T) {
	src := `
name eem
parameter A
parameter B
R is distance
i is atom
j is atom
q = EE[ row i, col j : diag A[i], off 1/R[i,j], rhs -B[i] ]
`
	_, _, err := mdsl.Compile(src)
	require.NoError(t, err)

	result, err := mdsl.Complexity(src, "asymptotic")
	require.NoError(t, err)
	require.Equal(t, "O(N^3)", result)

	out, err := mdsl.Translate(src, "native", nil)
	require.NoError(t, err)
	require.Contains(t, out, "Eem.h")
}

// S2 — a guarded substitution with a default rule compiles.
func TestEndToEndSubstitutionWithGuard(t *testing.T) {
	src := `
name sub
parameter A
parameter B
i is atom
chi[i] = A[i] if element(i, "H")
chi[i] = B[i]
q = chi[i]
`
	_, table, err := mdsl.Compile(src)
	require.NoError(t, err)
	sub, ok := table.ResolveSubstitution("chi")
	require.True(t, ok)
	require.Len(t, sub.Rules, 2)
}

// S4 — an undeclared Object name used as a subscript index fails with a SymbolError.
func TestEndToEndUnboundObjectNameFails(t *testing.T) {
	src := `
name bad
parameter A
x = A[i]
`
	_, _, err := mdsl.Compile(src)
	require.Error(t, err)
	var symErr *diagnostics.SymbolError
	require.ErrorAs(t, err, &symErr)
}

func TestTranslateUnknownBackend(t *testing.T) {
	src := `
name tiny
i is atom
q = sum i : 1.0
`
	_, err := mdsl.Translate(src, "nonexistent", nil)
	require.Error(t, err)
}

func TestComplexityUnknownMode(t *testing.T) {
	src := `
name tiny
i is atom
q = sum i : 1.0
`
	_, err := mdsl.Complexity(src, "bogus")
	require.Error(t, err)
}

func TestHasRegressionPlaceholder(t *testing.T) {
	clean := `
name clean
q = 1.0
`
	withHole := `
name hole
q = {}
`
	require.False(t, mdsl.HasRegressionPlaceholder(clean))
	require.True(t, mdsl.HasRegressionPlaceholder(withHole))
	require.False(t, mdsl.HasRegressionPlaceholder("not even valid source ((("))
}

func TestBackendNames(t *testing.T) {
	require.ElementsMatch(t, []string{"native", "tex", "graph"}, mdsl.BackendNames())
}

func TestCachedComplexityHitsCacheOnSecondCall(t *testing.T) {
	store, err := cache.Open("")
	require.NoError(t, err)
	defer store.Close()

	src := `
name tiny
i is atom
q = sum i : 1.0
`
	first, err := mdsl.CachedComplexity(store, src, "asymptotic")
	require.NoError(t, err)
	require.Equal(t, "O(N)", first)

	second, err := mdsl.CachedComplexity(store, src, "asymptotic")
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestCachedTranslateHitsCacheOnSecondCall(t *testing.T) {
	store, err := cache.Open("")
	require.NoError(t, err)
	defer store.Close()

	src := `
name tiny
i is atom
q = sum i : 1.0
`
	first, err := mdsl.CachedTranslate(store, src, "tex", nil)
	require.NoError(t, err)

	second, err := mdsl.CachedTranslate(store, src, "tex", nil)
	require.NoError(t, err)
	require.Equal(t, first, second)
}
