package symbols

import (
	"github.com/mdsl-lang/mdslc/internal/catalog"
	"github.com/mdsl-lang/mdslc/internal/typesystem"
)

// ReservedChargeVector is the name of the reserved unknown vector every
// Method's global scope carries (spec.md §3.2 invariant 5).
const ReservedChargeVector = "q"

// Table is the symbol table produced for one Method: the built-in global
// scope, the Method's own top-level scope nested under it, and the flat
// substitution map that spec.md §3.4 requires to be visible throughout the
// method regardless of lexical position.
type Table struct {
	Global        *Scope
	MethodScope   *Scope
	Substitutions map[string]*SubstitutionSymbol
}

// NewTable builds a fresh built-in global scope (q plus every called and
// indexed catalog function; predicates are not installed as symbols) and a
// Method-level scope nested under it.
func NewTable() *Table {
	global := NewScope(nil)
	global.Define(ReservedChargeVector, &VariableSymbol{
		Name: ReservedChargeVector,
		Type: typesystem.VectorOf(typesystem.Atom),
	})
	for name, sig := range catalog.Called {
		global.Define(name, &FunctionSymbol{
			Name:      name,
			Signature: typesystem.TFunction{Args: sig.Args, Return: sig.Return},
			Indexed:   false,
		})
	}
	for name, sig := range catalog.Indexed {
		global.Define(name, &FunctionSymbol{
			Name:      name,
			Signature: typesystem.TFunction{Args: sig.Args, Return: sig.Return},
			Indexed:   true,
		})
	}

	return &Table{
		Global:        global,
		MethodScope:   NewScope(global),
		Substitutions: make(map[string]*SubstitutionSymbol),
	}
}

// ResolveSubstitution looks up a substitution by name. Substitutions live
// outside the lexical scope chain, so this is always a flat map lookup.
func (t *Table) ResolveSubstitution(name string) (*SubstitutionSymbol, bool) {
	sym, ok := t.Substitutions[name]
	return sym, ok
}

// DefineSubstitutionRule adds rule to name's substitution, creating the
// SubstitutionSymbol on first use. It reports an error string (empty on
// success) for a formal-index-tuple mismatch or a second default (nil-guard)
// rule. Guarded rules are appended without comparing their guards, so a
// guard that repeats an earlier one is accepted.
func (t *Table) DefineSubstitutionRule(name string, formals []string, rule *SubstitutionRule) (*SubstitutionSymbol, string) {
	existing, ok := t.Substitutions[name]
	if !ok {
		sym := &SubstitutionSymbol{Name: name, Formals: formals, Rules: []*SubstitutionRule{rule}}
		t.Substitutions[name] = sym
		return sym, ""
	}
	if len(existing.Formals) != len(formals) {
		return nil, "substitution " + name + " redeclared with a different number of formal indices"
	}
	for i := range formals {
		if existing.Formals[i] != formals[i] {
			return nil, "substitution " + name + " redeclared with different formal index names"
		}
	}
	if rule.Guard == nil {
		if _, hasDefault := existing.DefaultRule(); hasDefault {
			return nil, "substitution " + name + " already has a default rule"
		}
	}
	existing.Rules = append(existing.Rules, rule)
	return existing, ""
}
