package symbols_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mdsl-lang/mdslc/internal/symbols"
	"github.com/mdsl-lang/mdslc/internal/typesystem"
)

func TestNewTableHasReservedChargeVector(t *testing.T) {
	tab := symbols.NewTable()
	sym, ok := tab.MethodScope.Resolve(symbols.ReservedChargeVector)
	require.True(t, ok)
	v, ok := sym.(*symbols.VariableSymbol)
	require.True(t, ok)
	require.True(t, v.Type.Equal(typesystem.VectorOf(typesystem.Atom)))
}

func TestNewTableHasCatalogFunctions(t *testing.T) {
	tab := symbols.NewTable()
	_, ok := tab.Global.Resolve("sqrt")
	require.True(t, ok)
	_, ok = tab.Global.Resolve("electronegativity")
	require.True(t, ok)
}

func TestScopeRedeclarationAcrossChain(t *testing.T) {
	tab := symbols.NewTable()
	require.True(t, tab.MethodScope.Define("q", &symbols.VariableSymbol{Name: "q", Type: typesystem.FloatType}),
		"Define checks only this scope; the global q is seen through ResolvableInChain")
	require.True(t, tab.MethodScope.ResolvableInChain("q"))
}

func TestSubstitutionMergeRejectsSecondDefault(t *testing.T) {
	tab := symbols.NewTable()
	_, errMsg := tab.DefineSubstitutionRule("chi", []string{"i"}, &symbols.SubstitutionRule{Guard: nil, Body: nil})
	require.Empty(t, errMsg)

	sym, errMsg := tab.DefineSubstitutionRule("chi", []string{"i"}, &symbols.SubstitutionRule{Guard: nil, Body: nil})
	require.Empty(t, sym)
	require.Contains(t, errMsg, "already has a default rule")
}

func TestSubstitutionMergeRejectsFormalMismatch(t *testing.T) {
	tab := symbols.NewTable()
	_, errMsg := tab.DefineSubstitutionRule("chi", []string{"i"}, &symbols.SubstitutionRule{Guard: nil, Body: nil})
	require.Empty(t, errMsg)

	_, errMsg = tab.DefineSubstitutionRule("chi", []string{"i", "j"}, &symbols.SubstitutionRule{Guard: nil, Body: nil})
	require.Contains(t, errMsg, "different number of formal indices")
}
