package diagnostics_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mdsl-lang/mdslc/internal/diagnostics"
)

func TestErrorFormatting(t *testing.T) {
	err := diagnostics.NewTypeError(3, 7, "operator %q is not defined between %s and %s", "*", "Array(Bond)", "Array(Atom)")
	require.Equal(t, `3:7: operator "*" is not defined between Array(Bond) and Array(Atom)`, err.Error())
	line, col := err.Position()
	require.Equal(t, 3, line)
	require.Equal(t, 7, col)
}

func TestErrorKindsImplementInterface(t *testing.T) {
	var errs []diagnostics.Error
	errs = append(errs,
		diagnostics.NewSyntaxError(1, 0, "unexpected token"),
		diagnostics.NewSymbolError(2, 1, "undefined name"),
		diagnostics.NewTypeError(3, 2, "shape mismatch"),
	)
	require.Len(t, errs, 3)
}
