package backend_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mdsl-lang/mdslc/internal/analyzer"
	"github.com/mdsl-lang/mdslc/internal/backend"
	"github.com/mdsl-lang/mdslc/internal/parser"
)

const eemSource = `
name eem
parameter A
parameter B
R is distance
i is atom
j is atom
q = EE[ row i, col j : diag A[i], off 1/R[i,j], rhs -B[i] ]
`

func TestLookupAndNames(t *testing.T) {
	names := backend.Names()
	require.ElementsMatch(t, []string{"native", "tex", "graph"}, names)

	for _, name := range names {
		b, ok := backend.Lookup(name)
		require.True(t, ok)
		require.Equal(t, name, b.Name())
	}

	_, ok := backend.Lookup("nonexistent")
	require.False(t, ok)
}

func TestNativeBackendEmitsThreeSections(t *testing.T) {
	m, err := parser.Parse(eemSource)
	require.NoError(t, err)
	table, err := analyzer.Analyze(m)
	require.NoError(t, err)

	b, ok := backend.Lookup("native")
	require.True(t, ok)

	out, err := b.Translate(m, table, nil)
	require.NoError(t, err)
	require.Contains(t, out, "Eem.h")
	require.Contains(t, out, "Eem.cpp")
	require.Contains(t, out, "build.manifest")
	require.True(t, strings.Contains(out, "BOND_DISTANCES"))
}

func TestTypesetBackendEmitsGlossary(t *testing.T) {
	m, err := parser.Parse(eemSource)
	require.NoError(t, err)
	table, err := analyzer.Analyze(m)
	require.NoError(t, err)

	b, ok := backend.Lookup("tex")
	require.True(t, ok)

	out, err := b.Translate(m, table, nil)
	require.NoError(t, err)
	require.Contains(t, out, "\\subsection*{Glossary}")
	require.Contains(t, out, "\\forall i \\in \\mathrm{Atom}")
}

func TestGraphBackendEmitsDot(t *testing.T) {
	m, err := parser.Parse(eemSource)
	require.NoError(t, err)
	table, err := analyzer.Analyze(m)
	require.NoError(t, err)

	b, ok := backend.Lookup("graph")
	require.True(t, ok)

	out, err := b.Translate(m, table, nil)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "digraph mdsl {"))
	require.Contains(t, out, "EEExpr")
}

func TestBackendsRefuseRegressionPlaceholder(t *testing.T) {
	src := `
name regress
q = {}
`
	m, err := parser.Parse(src)
	require.NoError(t, err)

	for _, name := range backend.Names() {
		b, _ := backend.Lookup(name)
		_, err := b.Translate(m, nil, nil)
		require.Error(t, err)
	}
}
