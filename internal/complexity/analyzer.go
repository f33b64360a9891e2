package complexity

import (
	"fmt"

	"github.com/mdsl-lang/mdslc/internal/ast"
	"github.com/mdsl-lang/mdslc/internal/symbols"
	"github.com/mdsl-lang/mdslc/internal/typesystem"
)

// Complexity returns the symbolic cost of m, already typed by
// internal/analyzer into table, as a simplified polynomial in N and M, or
// (when asymptotic is true) its O(·) dominance-collapsed form (spec.md
// §4.3). It refuses — matching internal/analyzer's own refusal on
// compile — while a regression placeholder remains, and refuses to guess
// a cost for cutoff-mode EE rather than silently truncating the matrix
// model (SPEC_FULL.md §5).
func Complexity(m *ast.Method, table *symbols.Table, asymptotic bool) (string, error) {
	if ast.ContainsPlaceholder(m) {
		return "", fmt.Errorf("cannot compute complexity: the program still contains a regression placeholder {}")
	}

	w := &walker{table: table, subCost: make(map[string]Cost), inProgress: make(map[string]bool)}
	total := Const(0)
	for _, s := range m.Statements {
		c, err := w.statementCost(s)
		if err != nil {
			return "", err
		}
		total = total.Add(c)
	}
	total = total.Add(w.allocationCost())

	if asymptotic {
		return total.Asymptotic(), nil
	}
	return total.String(), nil
}

type walker struct {
	table      *symbols.Table
	subCost    map[string]Cost
	inProgress map[string]bool
}

func objectCost(k typesystem.ObjectKind) Cost {
	if k == typesystem.Atom {
		return NPow(1)
	}
	return MPow(1)
}

// shapeCost is the per-element-visit cost of an Array: the product of its
// dimensions, each mapped to N (Atom) or M (Bond) (spec.md §4.3 "Array
// element-wise op over shape... product of s_i mapped to N or M").
func shapeCost(t typesystem.TArray) Cost {
	c := Const(1)
	for _, k := range t.Shape {
		c = c.Mul(objectCost(k))
	}
	return c
}

// allocationCost adds one term per Array-typed VariableSymbol declared in
// the Method's top-level scope, equal to its shape's element count
// (spec.md §4.3 "Initial array allocations").
func (w *walker) allocationCost() Cost {
	total := Const(0)
	for _, name := range w.table.MethodScope.Names() {
		sym, ok := w.table.MethodScope.ResolveLocal(name)
		if !ok {
			continue
		}
		v, ok := sym.(*symbols.VariableSymbol)
		if !ok {
			continue
		}
		if arr, ok := typesystem.IsArray(v.Type); ok {
			total = total.Add(shapeCost(arr))
		}
	}
	return total
}

func (w *walker) statementCost(s ast.Statement) (Cost, error) {
	switch n := s.(type) {
	case *ast.Assignment:
		rhs, err := w.exprCost(n.RHS)
		if err != nil {
			return Cost{}, err
		}
		return rhs.Add(Const(1)), nil

	case *ast.BoundedFor:
		body, err := w.blockCost(n.Body)
		if err != nil {
			return Cost{}, err
		}
		return w.boundedIterations(n).Mul(body), nil

	case *ast.ObjectFor:
		body, err := w.blockCost(n.Body)
		if err != nil {
			return Cost{}, err
		}
		if n.Constraint != nil {
			cc, err := w.constraintCost(n.Constraint)
			if err != nil {
				return Cost{}, err
			}
			body = body.Add(cc)
		}
		return objectCost(n.Kind).Mul(body), nil

	default:
		return Cost{}, fmt.Errorf("complexity: unsupported statement at %d:%d", s.Pos().Line, s.Pos().Column)
	}
}

func (w *walker) blockCost(stmts []ast.Statement) (Cost, error) {
	total := Const(0)
	for _, s := range stmts {
		c, err := w.statementCost(s)
		if err != nil {
			return Cost{}, err
		}
		total = total.Add(c)
	}
	return total, nil
}

// boundedIterations evaluates (upper-lower) when both bounds are integer
// literals; a computed bound can't be evaluated without running the
// program, so it is conservatively treated as a single constant iteration
// (documented simplification, DESIGN.md).
func (w *walker) boundedIterations(n *ast.BoundedFor) Cost {
	lower, lok := n.Lower.(*ast.NumberExpr)
	upper, uok := n.Upper.(*ast.NumberExpr)
	if lok && uok && !lower.IsFloat && !upper.IsFloat {
		diff := upper.IntValue - lower.IntValue
		if diff < 0 {
			diff = 0
		}
		return Const(diff)
	}
	return Const(1)
}

func (w *walker) exprCost(e ast.Expression) (Cost, error) {
	switch n := e.(type) {
	case *ast.NumberExpr, *ast.NameExpr:
		return Const(1), nil

	case *ast.SubscriptExpr:
		return w.subscriptCost(n)

	case *ast.BinaryExpr:
		return w.binaryCost(n)

	case *ast.UnaryExpr:
		operand, err := w.exprCost(n.Operand)
		if err != nil {
			return Cost{}, err
		}
		if arr, ok := typesystem.IsArray(n.ResultType()); ok {
			return operand.Add(shapeCost(arr)), nil
		}
		return operand.Add(Const(1)), nil

	case *ast.SumExpr:
		body, err := w.exprCost(n.Body)
		if err != nil {
			return Cost{}, err
		}
		if n.Constraint != nil {
			cc, err := w.constraintCost(n.Constraint)
			if err != nil {
				return Cost{}, err
			}
			body = body.Add(cc)
		}
		return objectCost(n.ObjectKind).Mul(body), nil

	case *ast.CallExpr:
		arg, err := w.exprCost(n.Arg)
		if err != nil {
			return Cost{}, err
		}
		if n.Name == "inv" {
			return arg.Add(NPow(3)), nil
		}
		return arg.Add(Const(1)), nil

	case *ast.EEExpr:
		return w.eeCost(n)

	case *ast.PlaceholderExpr:
		return Cost{}, fmt.Errorf("complexity: unresolved regression placeholder at %d:%d", n.Pos().Line, n.Pos().Column)

	default:
		return Cost{}, fmt.Errorf("complexity: unsupported expression at %d:%d", e.Pos().Line, e.Pos().Column)
	}
}

// binaryCost uses the operands' already-typed ResultType to tell a
// scalar op (cost 1) from an Array elementwise op (shape product) from a
// matmul (product of every participating dimension, spec.md §4.3
// "Dot/matvec/matmul: product of the involved dimensions" — this over-
// counts the shared inner dimension once, a deliberate coarse
// approximation documented in DESIGN.md).
func (w *walker) binaryCost(n *ast.BinaryExpr) (Cost, error) {
	left, err := w.exprCost(n.Left)
	if err != nil {
		return Cost{}, err
	}
	right, err := w.exprCost(n.Right)
	if err != nil {
		return Cost{}, err
	}
	operands := left.Add(right)

	leftArr, leftIsArr := typesystem.IsArray(n.Left.ResultType())
	rightArr, rightIsArr := typesystem.IsArray(n.Right.ResultType())

	switch {
	case leftIsArr && rightIsArr && n.Op == "*":
		return operands.Add(shapeCost(leftArr).Mul(shapeCost(rightArr))), nil
	case leftIsArr && rightIsArr:
		return operands.Add(shapeCost(leftArr)), nil
	case leftIsArr:
		return operands.Add(shapeCost(leftArr)), nil
	case rightIsArr:
		return operands.Add(shapeCost(rightArr)), nil
	default:
		return operands.Add(Const(1)), nil
	}
}

func (w *walker) eeCost(n *ast.EEExpr) (Cost, error) {
	if n.Cutoff {
		return Cost{}, fmt.Errorf("complexity: cutoff-mode EE at %d:%d has no supported cost model", n.Pos().Line, n.Pos().Column)
	}
	diag, err := w.exprCost(n.Diagonal)
	if err != nil {
		return Cost{}, err
	}
	off, err := w.exprCost(n.OffDiagonal)
	if err != nil {
		return Cost{}, err
	}
	rhs, err := w.exprCost(n.RHS)
	if err != nil {
		return Cost{}, err
	}
	return NPow(3).Add(diag).Add(off).Add(rhs), nil
}

// subscriptCost special-cases SubstitutionSymbol per spec.md §4.3
// "combined cost of its guards and bodies (evaluated once per use site)":
// every guard and body rule contributes once, memoized across uses so a
// substitution referenced N times is only priced once per reference, not
// recursively unbounded.
func (w *walker) subscriptCost(n *ast.SubscriptExpr) (Cost, error) {
	name := n.Name.Name
	sub, ok := w.table.ResolveSubstitution(name)
	if !ok {
		return Const(1), nil
	}
	if cached, ok := w.subCost[name]; ok {
		return cached, nil
	}
	if w.inProgress[name] {
		return Const(0), nil
	}
	w.inProgress[name] = true
	defer delete(w.inProgress, name)

	total := Const(0)
	for _, rule := range sub.Rules {
		if rule.Guard != nil {
			gc, err := w.constraintCost(rule.Guard)
			if err != nil {
				return Cost{}, err
			}
			total = total.Add(gc)
		}
		bc, err := w.exprCost(rule.Body)
		if err != nil {
			return Cost{}, err
		}
		total = total.Add(bc)
	}
	w.subCost[name] = total
	return total, nil
}

func (w *walker) constraintCost(c ast.Constraint) (Cost, error) {
	switch n := c.(type) {
	case *ast.RelOp:
		left, err := w.exprCost(n.Left)
		if err != nil {
			return Cost{}, err
		}
		right, err := w.exprCost(n.Right)
		if err != nil {
			return Cost{}, err
		}
		return left.Add(right).Add(Const(1)), nil

	case *ast.BinaryLogicalOp:
		left, err := w.constraintCost(n.Left)
		if err != nil {
			return Cost{}, err
		}
		right, err := w.constraintCost(n.Right)
		if err != nil {
			return Cost{}, err
		}
		return left.Add(right), nil

	case *ast.UnaryLogicalOp:
		return w.constraintCost(n.Operand)

	case *ast.Predicate:
		total := Const(1)
		for _, arg := range n.Args {
			ac, err := w.exprCost(arg)
			if err != nil {
				return Cost{}, err
			}
			total = total.Add(ac)
		}
		return total, nil

	default:
		return Cost{}, fmt.Errorf("complexity: unsupported constraint at %d:%d", c.Pos().Line, c.Pos().Column)
	}
}
