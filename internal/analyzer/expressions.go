package analyzer

import (
	"github.com/mdsl-lang/mdslc/internal/ast"
	"github.com/mdsl-lang/mdslc/internal/catalog"
	"github.com/mdsl-lang/mdslc/internal/symbols"
	"github.com/mdsl-lang/mdslc/internal/typesystem"
)

// typeExpr types e, records the result on the node itself via
// SetResultType, and returns it. Every Expression constructor the parser
// uses leaves ResultType nil until this runs (spec.md §3's "populated by
// the semantic analyzer").
func (a *Analyzer) typeExpr(e ast.Expression) typesystem.Type {
	var t typesystem.Type
	switch n := e.(type) {
	case *ast.NumberExpr:
		if n.IsFloat {
			t = typesystem.FloatType
		} else {
			t = typesystem.IntType
		}
	case *ast.NameExpr:
		t = a.typeNameExpr(n)
	case *ast.SubscriptExpr:
		t = a.typeSubscriptRead(n)
	case *ast.BinaryExpr:
		t = a.typeBinary(n)
	case *ast.UnaryExpr:
		operand := a.typeExpr(n.Operand)
		res, err := typesystem.UnaryResult(operand)
		if err != nil {
			a.failType(n.Pos(), "%s", err)
		}
		t = res
	case *ast.SumExpr:
		t = a.typeSum(n)
	case *ast.CallExpr:
		t = a.typeCall(n)
	case *ast.EEExpr:
		t = a.typeEE(n)
	case *ast.PlaceholderExpr:
		a.failType(n.Pos(), "a regression placeholder {} cannot be compiled; fill it in first")
	default:
		a.failType(e.Pos(), "unsupported expression")
	}
	e.SetResultType(t)
	return t
}

// typeNameExpr implements spec.md §4.2 "Name typing": a quoted bare word
// is a String literal (only meaningful in predicate argument position);
// otherwise the name is resolved through the scope chain, then the flat
// substitution map, in that order.
func (a *Analyzer) typeNameExpr(n *ast.NameExpr) typesystem.Type {
	if n.Quoted {
		return typesystem.StringType
	}

	name := a.rename(n.Name)

	if sym, ok := a.scope.Resolve(name); ok {
		switch s := sym.(type) {
		case *symbols.ObjectSymbol:
			if !a.isIterating(name) {
				a.failSymbol(n.Pos(), "object %q is not currently iterated", name)
			}
			return s.Type()
		case *symbols.VariableSymbol:
			return s.Type
		case *symbols.ParameterSymbol:
			if s.Kind != typesystem.CommonParameter {
				a.failType(n.Pos(), "parameter %q must be indexed", name)
			}
			return typesystem.FloatType
		case *symbols.ConstantSymbol:
			return s.Type
		case *symbols.FunctionSymbol:
			a.failType(n.Pos(), "%q is a catalog function and cannot be used as a bare name", name)
		}
	}

	if sub, ok := a.table.ResolveSubstitution(name); ok {
		if len(sub.Formals) != 0 {
			a.failSymbol(n.Pos(), "substitution %q requires %d indices", name, len(sub.Formals))
		}
		return a.typeSubstitutionUse(sub, nil, n.Pos())
	}

	a.failSymbol(n.Pos(), "undefined name %q", name)
	panic("unreachable")
}

func (a *Analyzer) typeBinary(n *ast.BinaryExpr) typesystem.Type {
	left := a.typeExpr(n.Left)
	right := a.typeExpr(n.Right)
	res, err := typesystem.BinaryResult(n.Op, left, right)
	if err != nil {
		a.failType(n.Pos(), "%s", err)
	}
	return res
}

// typeSum implements spec.md §4.2 "Sum typing".
func (a *Analyzer) typeSum(n *ast.SumExpr) typesystem.Type {
	name := a.rename(n.Bound.Name)
	sym, ok := a.scope.Resolve(name)
	if !ok {
		a.failSymbol(n.Pos(), "undefined name %q", name)
	}
	obj, ok := sym.(*symbols.ObjectSymbol)
	if !ok {
		a.failSymbol(n.Pos(), "%q is not an Object and cannot be summed over", name)
	}
	n.ObjectKind = obj.Kind

	pop := a.pushIterating(name)
	defer pop()

	if n.Constraint != nil {
		a.typeConstraint(n.Constraint)
	}
	return a.typeExpr(n.Body)
}

func (a *Analyzer) typeCall(n *ast.CallExpr) typesystem.Type {
	sig, ok := catalog.LookupCalled(n.Name)
	if !ok {
		a.failSymbol(n.Pos(), "unknown function %q", n.Name)
	}
	argType := a.typeExpr(n.Arg)
	// An Int argument is accepted for a Float parameter; nothing else widens.
	widens := len(sig.Args) == 1 && sig.Args[0].Equal(typesystem.FloatType) && argType.Equal(typesystem.IntType)
	if len(sig.Args) != 1 || !(sig.Args[0].Equal(argType) || widens) {
		a.failType(n.Pos(), "%s expects %s, got %s", n.Name, sig.Args[0], argType)
	}
	return sig.Return
}

// typeEE implements spec.md §4.2 "EE typing".
func (a *Analyzer) typeEE(n *ast.EEExpr) typesystem.Type {
	pop := a.pushScope()
	defer pop()

	a.define(n.Row.Name, &symbols.ObjectSymbol{Name: n.Row.Name, Kind: typesystem.Atom})
	a.define(n.Col.Name, &symbols.ObjectSymbol{Name: n.Col.Name, Kind: typesystem.Atom})
	popRow := a.pushIterating(n.Row.Name)
	defer popRow()
	popCol := a.pushIterating(n.Col.Name)
	defer popCol()

	if t := a.typeExpr(n.Diagonal); !t.Equal(typesystem.FloatType) {
		a.failType(n.Diagonal.Pos(), "EE diagonal must be Float, got %s", t)
	}
	if t := a.typeExpr(n.OffDiagonal); !t.Equal(typesystem.FloatType) {
		a.failType(n.OffDiagonal.Pos(), "EE off-diagonal must be Float, got %s", t)
	}
	if t := a.typeExpr(n.RHS); !t.Equal(typesystem.FloatType) {
		a.failType(n.RHS.Pos(), "EE rhs must be Float, got %s", t)
	}
	if n.Cutoff {
		if t := a.typeExpr(n.Radius); !t.Equal(typesystem.FloatType) {
			a.failType(n.Radius.Pos(), "EE cutoff radius must be Float, got %s", t)
		}
	}
	return typesystem.VectorOf(typesystem.Atom)
}

// resolveIndex types one Subscript index identifier: it must resolve (via
// the scope chain, after substitution renaming) to an ObjectSymbol.
func (a *Analyzer) resolveIndex(id *ast.Identifier) *symbols.ObjectSymbol {
	name := a.rename(id.Name)
	sym, ok := a.scope.Resolve(name)
	if !ok {
		a.failSymbol(id.Pos(), "undefined name %q", name)
	}
	obj, ok := sym.(*symbols.ObjectSymbol)
	if !ok {
		a.failType(id.Pos(), "%q is not an Object and cannot be used as an index", name)
	}
	return obj
}

// typeSubscriptRead types name[idx...] in expression (non-assignment)
// position: an unbound Array name here is always an error, unlike the
// assignment-target case (spec.md §4.2 "Subscript typing").
func (a *Analyzer) typeSubscriptRead(n *ast.SubscriptExpr) typesystem.Type {
	name := a.rename(n.Name.Name)

	if sub, ok := a.table.ResolveSubstitution(name); ok {
		return a.typeSubstitutionSubscript(n, sub)
	}

	sym, ok := a.scope.Resolve(name)
	if !ok {
		a.failSymbol(n.Pos(), "undefined name %q", name)
	}

	switch s := sym.(type) {
	case *symbols.ParameterSymbol:
		return a.typeParameterSubscript(n, s)
	case *symbols.FunctionSymbol:
		return a.typeFunctionSubscript(n, s)
	case *symbols.VariableSymbol:
		arr, ok := typesystem.IsArray(s.Type)
		if !ok {
			a.failType(n.Pos(), "%q is not an Array and cannot be indexed", name)
		}
		indexKinds := a.indexKinds(n.Indices)
		if len(indexKinds) != len(arr.Shape) {
			a.failType(n.Pos(), "%q expects %d indices, got %d", name, len(arr.Shape), len(indexKinds))
		}
		for i, k := range indexKinds {
			if k != arr.Shape[i] {
				a.failType(n.Pos(), "%q index %d expects %s, got %s", name, i, arr.Shape[i], k)
			}
		}
		return arr
	default:
		a.failType(n.Pos(), "%q cannot be indexed", name)
		panic("unreachable")
	}
}

func (a *Analyzer) indexKinds(indices []*ast.Identifier) []typesystem.ObjectKind {
	kinds := make([]typesystem.ObjectKind, len(indices))
	for i, idx := range indices {
		kinds[i] = a.resolveIndex(idx).Kind
	}
	return kinds
}

func (a *Analyzer) typeParameterSubscript(n *ast.SubscriptExpr, p *symbols.ParameterSymbol) typesystem.Type {
	switch p.Kind {
	case typesystem.CommonParameter:
		a.failType(n.Pos(), "parameter %q is common and cannot be indexed", p.Name)
	case typesystem.AtomParameter:
		if len(n.Indices) != 1 || a.resolveIndex(n.Indices[0]).Kind != typesystem.Atom {
			a.failType(n.Pos(), "%q requires exactly one Atom index", p.Name)
		}
	case typesystem.BondParameter:
		kinds := a.indexKinds(n.Indices)
		switch len(kinds) {
		case 1:
			if kinds[0] != typesystem.Bond {
				a.failType(n.Pos(), "%q requires a Bond index or two Atom indices", p.Name)
			}
		case 2:
			if kinds[0] != typesystem.Atom || kinds[1] != typesystem.Atom {
				a.failType(n.Pos(), "%q requires a Bond index or two Atom indices", p.Name)
			}
		default:
			a.failType(n.Pos(), "%q requires a Bond index or two Atom indices", p.Name)
		}
	}
	return typesystem.FloatType
}

func (a *Analyzer) typeFunctionSubscript(n *ast.SubscriptExpr, f *symbols.FunctionSymbol) typesystem.Type {
	if !f.Indexed {
		a.failType(n.Pos(), "%q must be called, not indexed", f.Name)
	}
	kinds := a.indexKinds(n.Indices)
	if len(kinds) != len(f.Signature.Args) {
		a.failType(n.Pos(), "%q expects %d indices, got %d", f.Name, len(f.Signature.Args), len(kinds))
	}
	for i, argType := range f.Signature.Args {
		want, _ := typesystem.IsObject(argType)
		if kinds[i] != want {
			a.failType(n.Pos(), "%q index %d expects %s, got %s", f.Name, i, argType, kinds[i])
		}
	}
	return f.Signature.Return
}

// typeSubstitutionSubscript implements the SubstitutionSymbol half of
// "Subscript typing": the index count must match the formals, every index
// must be Object-typed, and the body is re-typed with a formal->actual
// rename frame installed (spec.md §4.2).
func (a *Analyzer) typeSubstitutionSubscript(n *ast.SubscriptExpr, sub *symbols.SubstitutionSymbol) typesystem.Type {
	if len(n.Indices) != len(sub.Formals) {
		a.failSymbol(n.Pos(), "substitution %q expects %d indices, got %d", sub.Name, len(sub.Formals), len(n.Indices))
	}
	actuals := make([]*ast.Identifier, len(n.Indices))
	for i, idx := range n.Indices {
		a.resolveIndex(idx)
		actuals[i] = idx
	}
	return a.typeSubstitutionUse(sub, actuals, n.Pos())
}

// typeSubstitutionUse re-types every rule of sub (guard and body) under a
// rename frame mapping each formal to the corresponding actual index name,
// requires all rules to agree on result type, and returns it.
func (a *Analyzer) typeSubstitutionUse(sub *symbols.SubstitutionSymbol, actuals []*ast.Identifier, pos ast.Position) typesystem.Type {
	frame := make(map[string]string, len(sub.Formals))
	for i, formal := range sub.Formals {
		if i < len(actuals) {
			frame[formal] = a.rename(actuals[i].Name)
		}
	}
	pop := a.pushRename(frame)
	defer pop()

	var result typesystem.Type
	for _, rule := range sub.Rules {
		if rule.Guard != nil {
			a.typeConstraint(rule.Guard)
		}
		t := a.typeExpr(rule.Body)
		if result == nil {
			result = t
		} else if !result.Equal(t) {
			a.failType(pos, "substitution %q rules disagree in type: %s vs %s", sub.Name, result, t)
		}
	}
	sub.ResultType = result
	return result
}
