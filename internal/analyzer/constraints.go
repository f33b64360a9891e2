package analyzer

import (
	"github.com/mdsl-lang/mdslc/internal/ast"
	"github.com/mdsl-lang/mdslc/internal/catalog"
	"github.com/mdsl-lang/mdslc/internal/elements"
	"github.com/mdsl-lang/mdslc/internal/typesystem"
)

// typeConstraint types c and every expression it contains; constraints
// themselves have no ResultType slot (they are always Bool by
// construction), so this exists purely to run checking side effects.
func (a *Analyzer) typeConstraint(c ast.Constraint) {
	switch n := c.(type) {
	case *ast.RelOp:
		left := a.typeExpr(n.Left)
		right := a.typeExpr(n.Right)
		if !typesystem.IsNumeric(left) || !typesystem.IsNumeric(right) {
			a.failType(n.Pos(), "relational operator %q requires Numeric operands, got %s and %s", n.Op, left, right)
		}
	case *ast.BinaryLogicalOp:
		a.typeConstraint(n.Left)
		a.typeConstraint(n.Right)
	case *ast.UnaryLogicalOp:
		a.typeConstraint(n.Operand)
	case *ast.Predicate:
		a.typePredicate(n)
	default:
		a.failType(c.Pos(), "unsupported constraint")
	}
}

// typePredicate implements spec.md §4.2 "Predicate checking": arity,
// per-position kind, the "currently iterating" requirement for Object
// arguments, and the known-element check for element's String argument.
func (a *Analyzer) typePredicate(n *ast.Predicate) {
	sig, ok := catalog.LookupPredicate(n.Name)
	if !ok {
		a.failSymbol(n.Pos(), "unknown predicate %q", n.Name)
	}
	if len(n.Args) != len(sig.ArgKinds) {
		a.failSymbol(n.Pos(), "%s expects %d arguments, got %d", n.Name, len(sig.ArgKinds), len(n.Args))
	}

	for i, arg := range n.Args {
		switch sig.ArgKinds[i] {
		case catalog.ArgObject:
			a.typePredicateObjectArg(n, arg, sig.ObjectKinds[i])
		case catalog.ArgString:
			a.typePredicateStringArg(n, arg)
		case catalog.ArgNumeric:
			if t := a.typeExpr(arg); !typesystem.IsNumeric(t) {
				a.failType(arg.Pos(), "%s argument %d must be Numeric, got %s", n.Name, i, t)
			}
		}
	}
}

// typePredicateObjectArg requires arg to be a bare, currently-iterating
// Object name of the expected kind. Resolution and the "currently
// iterating" check both happen inside typeExpr/typeNameExpr, so this only
// adds the shape and kind checks specific to predicate position.
func (a *Analyzer) typePredicateObjectArg(n *ast.Predicate, arg ast.Expression, want typesystem.ObjectKind) {
	name, ok := arg.(*ast.NameExpr)
	if !ok || name.Quoted {
		a.failType(arg.Pos(), "%s argument must be an Object name", n.Name)
	}
	t := a.typeExpr(arg)
	obj, ok := typesystem.IsObject(t)
	if !ok || obj != want {
		a.failType(arg.Pos(), "%s argument expects %s, got %s", n.Name, want, t)
	}
}

func (a *Analyzer) typePredicateStringArg(n *ast.Predicate, arg ast.Expression) {
	name, ok := arg.(*ast.NameExpr)
	if !ok {
		a.failType(arg.Pos(), "%s argument must be a bare name or string literal", n.Name)
	}
	name.SetResultType(typesystem.StringType)
	if n.Name == "element" && !elements.Known(name.Name) {
		a.failSymbol(arg.Pos(), "%q is not a known chemical element", name.Name)
	}
}
