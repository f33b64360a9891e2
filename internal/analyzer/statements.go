package analyzer

import (
	"github.com/mdsl-lang/mdslc/internal/ast"
	"github.com/mdsl-lang/mdslc/internal/symbols"
	"github.com/mdsl-lang/mdslc/internal/typesystem"
)

func (a *Analyzer) analyzeStatements(stmts []ast.Statement) {
	for _, s := range stmts {
		a.analyzeStatement(s)
	}
}

func (a *Analyzer) analyzeStatement(s ast.Statement) {
	switch n := s.(type) {
	case *ast.Assignment:
		a.analyzeAssignment(n)
	case *ast.BoundedFor:
		a.analyzeBoundedFor(n)
	case *ast.ObjectFor:
		a.analyzeObjectFor(n)
	default:
		a.failType(s.Pos(), "unsupported statement")
	}
}

// analyzeAssignment implements spec.md §4.2 "Assignment typing": the RHS
// is always typed first, then the LHS shape (bare Name or Subscript)
// determines whether a new VariableSymbol is created or an existing one
// must accept the RHS type.
func (a *Analyzer) analyzeAssignment(n *ast.Assignment) {
	rhsType := a.typeExpr(n.RHS)

	switch lhs := n.LHS.(type) {
	case *ast.NameExpr:
		a.analyzeNameAssignment(n, lhs, rhsType)
	case *ast.SubscriptExpr:
		a.analyzeSubscriptAssignment(n, lhs, rhsType)
	default:
		a.failType(n.Pos(), "invalid assignment target")
	}
}

func (a *Analyzer) analyzeNameAssignment(n *ast.Assignment, lhs *ast.NameExpr, rhsType typesystem.Type) {
	name := a.rename(lhs.Name)
	if sym, ok := a.scope.Resolve(name); ok {
		switch s := sym.(type) {
		case *symbols.SubstitutionSymbol:
			a.failType(n.Pos(), "cannot assign to substitution %q", name)
		case *symbols.ParameterSymbol:
			a.failType(n.Pos(), "cannot assign to parameter %q", name)
		case *symbols.VariableSymbol:
			if s.IsLoopCounter {
				a.failType(n.Pos(), "cannot assign to loop counter %q", name)
			}
			if !typesystem.Assignable(s.Type, rhsType) {
				a.failType(n.Pos(), "cannot assign %s to %q of type %s", rhsType, name, s.Type)
			}
			lhs.SetResultType(s.Type)
			return
		default:
			a.failType(n.Pos(), "cannot assign to %q", name)
		}
	}
	if _, ok := a.table.ResolveSubstitution(name); ok {
		a.failType(n.Pos(), "cannot assign to substitution %q", name)
	}

	sym := &symbols.VariableSymbol{Name: name, Type: rhsType}
	a.table.MethodScope.Define(name, sym)
	lhs.SetResultType(rhsType)
}

// analyzeSubscriptAssignment types the index list (each must be Object),
// then either creates a fresh Array-typed VariableSymbol shaped by the
// index kinds or checks the existing one's shape matches.
func (a *Analyzer) analyzeSubscriptAssignment(n *ast.Assignment, lhs *ast.SubscriptExpr, rhsType typesystem.Type) {
	shape := a.indexKinds(lhs.Indices)
	name := a.rename(lhs.Name.Name)

	if _, ok := a.table.ResolveSubstitution(name); ok {
		a.failType(n.Pos(), "cannot assign to substitution %q", name)
	}

	sym, ok := a.scope.Resolve(name)
	if !ok {
		arr := typesystem.TArray{Shape: shape}
		if !typesystem.Assignable(arr, rhsType) {
			a.failType(n.Pos(), "cannot fill array %q of shape %s with %s", name, arr, rhsType)
		}
		a.table.MethodScope.Define(name, &symbols.VariableSymbol{Name: name, Type: arr})
		lhs.SetResultType(arr)
		return
	}

	v, ok := sym.(*symbols.VariableSymbol)
	if !ok {
		a.failType(n.Pos(), "cannot assign into %q", name)
	}
	arr, ok := typesystem.IsArray(v.Type)
	if !ok || !arr.Equal(typesystem.TArray{Shape: shape}) {
		a.failType(n.Pos(), "%q has shape %s, index shape is %s", name, v.Type, typesystem.TArray{Shape: shape})
	}
	if !typesystem.Assignable(arr, rhsType) {
		a.failType(n.Pos(), "cannot assign %s into %q of shape %s", rhsType, name, arr)
	}
	lhs.SetResultType(arr)
}

// analyzeBoundedFor implements the BoundedFor half of spec.md §4.2 "Scope
// lifecycle": bounds are typed in the enclosing scope, then a child scope
// owns the counter (marked as a loop counter, so assigning to it later is
// rejected) for the duration of the body.
func (a *Analyzer) analyzeBoundedFor(n *ast.BoundedFor) {
	if t := a.typeExpr(n.Lower); !typesystem.IsNumeric(t) {
		a.failType(n.Lower.Pos(), "loop bound must be Numeric, got %s", t)
	}
	if t := a.typeExpr(n.Upper); !typesystem.IsNumeric(t) {
		a.failType(n.Upper.Pos(), "loop bound must be Numeric, got %s", t)
	}

	pop := a.pushScope()
	defer pop()

	a.checkNameFree(n.Counter.Name, n.Pos())
	a.define(n.Counter.Name, &symbols.VariableSymbol{Name: n.Counter.Name, Type: typesystem.IntType, IsLoopCounter: true})

	a.analyzeStatements(n.Body)
}

// analyzeObjectFor implements the ObjectFor half: a bond decomposition
// installs its two atom names before the bond name (same collision rule
// as ObjectAnnotation), the bound name(s) are iterating for the body's
// extent only, and the constraint is typed once inside that scope.
func (a *Analyzer) analyzeObjectFor(n *ast.ObjectFor) {
	pop := a.pushScope()
	defer pop()

	if n.Decompose != nil {
		a.checkNameFree(n.Decompose.AtomA.Name, n.Pos())
		a.checkNameFree(n.Decompose.AtomB.Name, n.Pos())
		if n.Decompose.AtomA.Name == n.Decompose.AtomB.Name {
			a.failSymbol(n.Pos(), "bond decomposition names the same atom twice: %q", n.Decompose.AtomA.Name)
		}
		a.define(n.Decompose.AtomA.Name, &symbols.ObjectSymbol{Name: n.Decompose.AtomA.Name, Kind: typesystem.Atom})
		a.define(n.Decompose.AtomB.Name, &symbols.ObjectSymbol{Name: n.Decompose.AtomB.Name, Kind: typesystem.Atom})
		popA := a.pushIterating(n.Decompose.AtomA.Name)
		defer popA()
		popB := a.pushIterating(n.Decompose.AtomB.Name)
		defer popB()
	}

	a.checkNameFree(n.Name.Name, n.Pos())
	a.define(n.Name.Name, &symbols.ObjectSymbol{Name: n.Name.Name, Kind: n.Kind, Constraint: n.Constraint})
	popName := a.pushIterating(n.Name.Name)
	defer popName()

	if n.Constraint != nil {
		a.typeConstraint(n.Constraint)
	}

	a.analyzeStatements(n.Body)
}
