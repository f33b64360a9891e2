package analyzer

import (
	"github.com/mdsl-lang/mdslc/internal/ast"
	"github.com/mdsl-lang/mdslc/internal/catalog"
	"github.com/mdsl-lang/mdslc/internal/symbols"
	"github.com/mdsl-lang/mdslc/internal/typesystem"
)

// analyzeAnnotations installs every Parameter, Object, Property, Constant,
// and Substitution annotation in textual order, ahead of any statement
// (spec.md §4.2 "Annotation processing").
func (a *Analyzer) analyzeAnnotations(anns []ast.Annotation) {
	for _, ann := range anns {
		switch n := ann.(type) {
		case *ast.ParameterAnnotation:
			a.installParameter(n)
		case *ast.ObjectAnnotation:
			a.installObject(n)
		case *ast.PropertyAnnotation:
			a.installProperty(n)
		case *ast.ConstantAnnotation:
			a.installConstant(n)
		case *ast.SubstitutionAnnotation:
			a.installSubstitutionRule(n)
		}
	}
}

func (a *Analyzer) installParameter(n *ast.ParameterAnnotation) {
	a.checkNameFree(n.Name.Name, n.Pos())
	a.define(n.Name.Name, &symbols.ParameterSymbol{Name: n.Name.Name, Kind: n.Kind})
}

// installObject handles both plain Objects (`i is atom`) and Bond Objects
// with a two-atom decomposition (`b is bond (i-j)`); a decomposition
// installs its two atom names first, then the bond name, and any
// collision among the three fails the whole declaration (spec.md §4.2).
func (a *Analyzer) installObject(n *ast.ObjectAnnotation) {
	if n.Decompose != nil {
		a.checkNameFree(n.Decompose.AtomA.Name, n.Pos())
		a.checkNameFree(n.Decompose.AtomB.Name, n.Pos())
		if n.Decompose.AtomA.Name == n.Decompose.AtomB.Name {
			a.failSymbol(n.Pos(), "bond decomposition names the same atom twice: %q", n.Decompose.AtomA.Name)
		}
		a.define(n.Decompose.AtomA.Name, &symbols.ObjectSymbol{Name: n.Decompose.AtomA.Name, Kind: typesystem.Atom})
		a.define(n.Decompose.AtomB.Name, &symbols.ObjectSymbol{Name: n.Decompose.AtomB.Name, Kind: typesystem.Atom})
		a.pushIterating(n.Decompose.AtomA.Name)
		a.pushIterating(n.Decompose.AtomB.Name)
	}

	a.checkNameFree(n.Name.Name, n.Pos())
	a.define(n.Name.Name, &symbols.ObjectSymbol{Name: n.Name.Name, Kind: n.Kind, Constraint: n.Constraint})

	// A top-level Object annotation declares a domain-wide index, not a
	// loop-local one: nothing else will ever open a scope for it, so it
	// is marked iterating for the rest of the method rather than pushed
	// and popped around a body (spec.md §8 scenario S1 relies on this:
	// "i is atom" / "j is atom" feed both an EE header and bare
	// subscripts with no enclosing for).
	a.pushIterating(n.Name.Name)

	if n.Constraint != nil {
		a.typeConstraint(n.Constraint)
	}
}

func (a *Analyzer) installProperty(n *ast.PropertyAnnotation) {
	a.checkNameFree(n.Name.Name, n.Pos())
	sig, ok := catalog.LookupIndexed(n.Property)
	if !ok {
		a.failSymbol(n.Pos(), "unknown catalog property %q", n.Property)
	}
	a.define(n.Name.Name, &symbols.FunctionSymbol{
		Name:      n.Name.Name,
		Signature: typesystem.TFunction{Args: sig.Args, Return: sig.Return},
		Indexed:   true,
	})
}

// installConstant binds Name to a catalog property evaluated at one fixed
// element; the property must take exactly one Atom argument (spec.md
// §4.2 "Constants require a catalog property that takes exactly one
// Atom").
func (a *Analyzer) installConstant(n *ast.ConstantAnnotation) {
	a.checkNameFree(n.Name.Name, n.Pos())
	sig, ok := catalog.LookupIndexed(n.Property)
	if !ok || len(sig.Args) != 1 || !sig.Args[0].Equal(typesystem.AtomType) {
		a.failSymbol(n.Pos(), "%q is not a single-Atom catalog property", n.Property)
	}
	a.define(n.Name.Name, &symbols.ConstantSymbol{
		Name:     n.Name.Name,
		Property: n.Property,
		Element:  n.Element.Name,
		Type:     sig.Return,
	})
}

// installSubstitutionRule merges one SubstitutionAnnotation into the
// method-global substitution map; conflicting formal tuples or a second
// default (unguarded) rule are a SymbolError (spec.md §4.2 "Substitution
// merging"). Guards of guarded rules are not compared with each other.
func (a *Analyzer) installSubstitutionRule(n *ast.SubstitutionAnnotation) {
	formals := make([]string, len(n.Formals))
	for i, f := range n.Formals {
		formals[i] = f.Name
	}
	if a.scope.ResolvableInChain(n.Name.Name) {
		a.failSymbol(n.Pos(), "%q is already declared", n.Name.Name)
	}
	if _, exists := a.positions[n.Name.Name]; !exists {
		a.positions[n.Name.Name] = n.Pos()
	}
	rule := &symbols.SubstitutionRule{Guard: n.Guard, Body: n.Body}
	if _, msg := a.table.DefineSubstitutionRule(n.Name.Name, formals, rule); msg != "" {
		a.failSymbol(n.Pos(), "%s", msg)
	}
}

// finalizeSubstitutions checks, once every annotation has been walked,
// that every substitution accumulated a default (unguarded) rule (spec.md
// §4.2 "After walking all annotations, every SubstitutionSymbol must
// include the None (default) guard").
func (a *Analyzer) finalizeSubstitutions() {
	for name, sym := range a.table.Substitutions {
		if _, ok := sym.DefaultRule(); !ok {
			a.failSymbol(a.positions[name], "substitution %q has no default rule", name)
		}
	}
}
