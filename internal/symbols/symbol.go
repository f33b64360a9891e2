package symbols

import (
	"github.com/mdsl-lang/mdslc/internal/ast"
	"github.com/mdsl-lang/mdslc/internal/typesystem"
)

// Symbol is implemented by every one of the six exclusive symbol kinds
// spec.md §3.3 defines. A scope maps each identifier to exactly one.
type Symbol interface {
	SymbolName() string
	symbolKind()
}

// ParameterSymbol is an externally supplied lookup table.
type ParameterSymbol struct {
	Name string
	Kind typesystem.ParameterKind
}

func (s *ParameterSymbol) SymbolName() string { return s.Name }
func (*ParameterSymbol) symbolKind()           {}

// Type returns the parameter's type in the lattice.
func (s *ParameterSymbol) Type() typesystem.Type { return typesystem.TParameter{Kind: s.Kind} }

// ObjectSymbol is one element of the iteration domain: an Atom or Bond,
// optionally filtered by a declared constraint.
type ObjectSymbol struct {
	Name       string
	Kind       typesystem.ObjectKind
	Constraint ast.Constraint
}

func (s *ObjectSymbol) SymbolName() string { return s.Name }
func (*ObjectSymbol) symbolKind()           {}

func (s *ObjectSymbol) Type() typesystem.Type { return typesystem.TObject{Kind: s.Kind} }

// FunctionSymbol is a called or indexed catalog function, bound once in the
// built-in global scope (spec.md §3.2 invariant 5), or a Property
// annotation's alias to one. Predicates are not installed as symbols.
type FunctionSymbol struct {
	Name      string
	Signature typesystem.TFunction
	// Indexed is true when this name is invoked as name[idx...]
	// (a property or distance); false when invoked as name(expr)
	// (a math function or inv).
	Indexed bool
}

func (s *FunctionSymbol) SymbolName() string { return s.Name }
func (*FunctionSymbol) symbolKind()           {}

// VariableSymbol is a Numeric or Array variable. One created by its first
// assignment is installed in the Method's top-level scope; a BoundedFor
// counter lives in its loop's own scope, and the reserved q in the global
// scope.
type VariableSymbol struct {
	Name string
	Type typesystem.Type
	// IsLoopCounter marks a BoundedFor's counter variable; the analyzer
	// rejects any assignment that targets one (spec.md §4.2 "assigning to
	// a loop counter is a TypeError").
	IsLoopCounter bool
}

func (s *VariableSymbol) SymbolName() string { return s.Name }
func (*VariableSymbol) symbolKind()           {}

// SubstitutionRule is one (optionally guarded) rule of a substitution.
// Guard is nil for the default rule.
type SubstitutionRule struct {
	Guard ast.Constraint
	Body  ast.Expression
}

// SubstitutionSymbol is a declarative, possibly guarded rewrite rule,
// global to the method regardless of where it is textually declared
// (spec.md §3.4). Exactly one rule must be the default (nil guard); all
// bodies must type to the same result.
type SubstitutionSymbol struct {
	Name       string
	Formals    []string
	Rules      []*SubstitutionRule
	ResultType typesystem.Type
}

func (s *SubstitutionSymbol) SymbolName() string { return s.Name }
func (*SubstitutionSymbol) symbolKind()           {}

// DefaultRule returns the unguarded rule, if one has been added.
func (s *SubstitutionSymbol) DefaultRule() (*SubstitutionRule, bool) {
	for _, r := range s.Rules {
		if r.Guard == nil {
			return r, true
		}
	}
	return nil, false
}

// ConstantSymbol binds a name to a catalog property evaluated at one
// specific element; it behaves as a Numeric scalar.
type ConstantSymbol struct {
	Name     string
	Property string
	Element  string
	Type     typesystem.Type
}

func (s *ConstantSymbol) SymbolName() string { return s.Name }
func (*ConstantSymbol) symbolKind()           {}
