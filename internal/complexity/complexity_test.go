package complexity_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mdsl-lang/mdslc/internal/analyzer"
	"github.com/mdsl-lang/mdslc/internal/complexity"
	"github.com/mdsl-lang/mdslc/internal/parser"
)

// S1 — simple EEM-like method: complexity is O(N^3).
func TestComplexitySimpleEEMIsCubic(t *testing.T) {
	src := `
name eem
parameter A
parameter B
R is distance
i is atom
j is atom
q = EE[ row i, col j : diag A[i], off 1/R[i,j], rhs -B[i] ]
`
	m, err := parser.Parse(src)
	require.NoError(t, err)
	table, err := analyzer.Analyze(m)
	require.NoError(t, err)

	result, err := complexity.Complexity(m, table, true)
	require.NoError(t, err)
	require.Equal(t, "O(N^3)", result)
}

func TestComplexitySumOverAtomsIsLinear(t *testing.T) {
	src := `
name summed
parameter A
i is atom
q = sum i : A[i]
`
	m, err := parser.Parse(src)
	require.NoError(t, err)
	table, err := analyzer.Analyze(m)
	require.NoError(t, err)

	result, err := complexity.Complexity(m, table, true)
	require.NoError(t, err)
	require.Equal(t, "O(N)", result)
}

func TestComplexityRefusesCutoffEE(t *testing.T) {
	src := `
name cutoff
i is atom
j is atom
q = EE[ row i, col j : diag 1.0, off 1.0, rhs 1.0, cutoff radius 5.0 ]
`
	m, err := parser.Parse(src)
	require.NoError(t, err)
	table, err := analyzer.Analyze(m)
	require.NoError(t, err)

	_, err = complexity.Complexity(m, table, true)
	require.Error(t, err)
}

func TestComplexityRefusesRegressionPlaceholder(t *testing.T) {
	src := `
name regress
q = {}
`
	m, err := parser.Parse(src)
	require.NoError(t, err)

	_, err = complexity.Complexity(m, nil, true)
	require.Error(t, err)
}
