package backend

import (
	"fmt"
	"strings"

	"github.com/mdsl-lang/mdslc/internal/ast"
)

// exprString renders expr as a C++ expression. It is a plain recursive
// type switch rather than an ast.Visitor walk: Visitor's methods are void,
// and every one of these cases needs to return a string to its caller.
func exprString(expr ast.Expression) string {
	switch n := expr.(type) {
	case *ast.NumberExpr:
		if n.IsFloat {
			return fmt.Sprintf("%g", n.FloatValue)
		}
		return fmt.Sprintf("%d", n.IntValue)

	case *ast.NameExpr:
		return identName(n.Name)

	case *ast.SubscriptExpr:
		idx := make([]string, len(n.Indices))
		for i, id := range n.Indices {
			idx[i] = identName(id.Name)
		}
		return fmt.Sprintf("%s(%s)", identName(n.Name.Name), strings.Join(idx, ", "))

	case *ast.BinaryExpr:
		return fmt.Sprintf("(%s %s %s)", exprString(n.Left), n.Op, exprString(n.Right))

	case *ast.UnaryExpr:
		return fmt.Sprintf("(-%s)", exprString(n.Operand))

	case *ast.CallExpr:
		return fmt.Sprintf("%s(%s)", identName(n.Name), exprString(n.Arg))

	case *ast.SumExpr:
		return fmt.Sprintf("sum_%s(%s)", identName(n.Bound.Name), exprString(n.Body))

	case *ast.EEExpr:
		return fmt.Sprintf("solve_ee_%s_%s", identName(n.Row.Name), identName(n.Col.Name))

	case *ast.PlaceholderExpr:
		return "/* unresolved placeholder */"

	default:
		return "/* unsupported expression */"
	}
}

// constraintString renders a Constraint as a C++ boolean expression.
func constraintString(c ast.Constraint) string {
	switch n := c.(type) {
	case *ast.RelOp:
		return fmt.Sprintf("(%s %s %s)", exprString(n.Left), n.Op, exprString(n.Right))
	case *ast.BinaryLogicalOp:
		op := "&&"
		if n.Op == "or" {
			op = "||"
		}
		return fmt.Sprintf("(%s %s %s)", constraintString(n.Left), op, constraintString(n.Right))
	case *ast.UnaryLogicalOp:
		return fmt.Sprintf("(!%s)", constraintString(n.Operand))
	case *ast.Predicate:
		args := make([]string, len(n.Args))
		for i, a := range n.Args {
			args[i] = exprString(a)
		}
		return fmt.Sprintf("%s(%s)", identName(n.Name), strings.Join(args, ", "))
	default:
		return "/* unsupported constraint */"
	}
}

// identName rewrites a DSL identifier (which may contain spaces, as catalog
// property names do: "covalent radius") into a valid C++ identifier.
func identName(name string) string {
	return strings.ReplaceAll(name, " ", "_")
}
