package typesystem_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mdsl-lang/mdslc/internal/typesystem"
)

func TestAssignable(t *testing.T) {
	require.True(t, typesystem.Assignable(typesystem.FloatType, typesystem.IntType))
	require.False(t, typesystem.Assignable(typesystem.IntType, typesystem.FloatType))
	require.True(t, typesystem.Assignable(typesystem.VectorOf(typesystem.Atom), typesystem.FloatType))
	require.True(t, typesystem.Assignable(typesystem.VectorOf(typesystem.Atom), typesystem.VectorOf(typesystem.Atom)))
	require.False(t, typesystem.Assignable(typesystem.VectorOf(typesystem.Atom), typesystem.VectorOf(typesystem.Bond)))
}

func TestBinaryResultNumeric(t *testing.T) {
	res, err := typesystem.BinaryResult("+", typesystem.IntType, typesystem.IntType)
	require.NoError(t, err)
	require.True(t, res.Equal(typesystem.IntType))

	res, err = typesystem.BinaryResult("+", typesystem.IntType, typesystem.FloatType)
	require.NoError(t, err)
	require.True(t, res.Equal(typesystem.FloatType))
}

func TestMatmulShapeAlgebra(t *testing.T) {
	vecAtom := typesystem.VectorOf(typesystem.Atom)
	matAtomBond := typesystem.MatrixOf(typesystem.Atom, typesystem.Bond)
	vecBond := typesystem.VectorOf(typesystem.Bond)

	res, err := typesystem.BinaryResult("*", vecAtom, vecAtom)
	require.NoError(t, err)
	require.True(t, res.Equal(typesystem.FloatType))

	res, err = typesystem.BinaryResult("*", matAtomBond, vecBond)
	require.NoError(t, err)
	require.True(t, res.Equal(vecAtom))

	_, err = typesystem.BinaryResult("*", matAtomBond, vecAtom)
	require.Error(t, err)
}

func TestArrayNumericDivision(t *testing.T) {
	vecAtom := typesystem.VectorOf(typesystem.Atom)
	_, err := typesystem.BinaryResult("/", typesystem.FloatType, vecAtom)
	require.Error(t, err, "Numeric / Array must be rejected")

	res, err := typesystem.BinaryResult("/", vecAtom, typesystem.FloatType)
	require.NoError(t, err)
	require.True(t, res.Equal(vecAtom))
}
