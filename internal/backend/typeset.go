package backend

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mdsl-lang/mdslc/internal/ast"
	"github.com/mdsl-lang/mdslc/internal/symbols"
)

// typesetBackend renders a typed Method as a formatted mathematical
// document: a universally-quantified preamble over each declared Object,
// the method's statements as equations (sums as ∑, guarded substitutions
// as cases), each EE expression as an inline \mathrm{equalize}_{row,col}
// term, and a trailing glossary of every declared symbol (spec.md §4.4).
// The EE linear system itself is not written out.
type typesetBackend struct{}

func (*typesetBackend) Name() string { return "tex" }

func (b *typesetBackend) Translate(m *ast.Method, table *symbols.Table, options map[string]string) (string, error) {
	if ast.ContainsPlaceholder(m) {
		return "", fmt.Errorf("backend: method %q still contains an unresolved regression placeholder", m.Name)
	}

	var out strings.Builder
	fmt.Fprintf(&out, "\\section*{%s}\n\n", m.Name)

	for _, ann := range m.Annotations {
		if obj, ok := ann.(*ast.ObjectAnnotation); ok {
			line := fmt.Sprintf("\\forall %s \\in \\mathrm{%s}", obj.Name.Name, obj.Kind)
			if obj.Constraint != nil {
				line += fmt.Sprintf(" \\text{ such that } %s", mathConstraint(obj.Constraint))
			}
			fmt.Fprintf(&out, "$%s$\n\n", line)
		}
	}

	for name, sub := range table.Substitutions {
		fmt.Fprintf(&out, "$$%s[%s] = %s$$\n\n", name, strings.Join(sub.Formals, ", "), mathCases(sub))
	}

	out.WriteString("\\subsection*{Statements}\n\n")
	for _, stmt := range m.Statements {
		out.WriteString(mathStatement(stmt, 0))
	}

	out.WriteString("\n\\subsection*{Glossary}\n\n\\begin{itemize}\n")
	names := table.MethodScope.Names()
	sort.Strings(names)
	for _, name := range names {
		sym, _ := table.MethodScope.ResolveLocal(name)
		fmt.Fprintf(&out, "\\item $%s$: %s\n", name, glossaryEntry(sym))
	}
	out.WriteString("\\end{itemize}\n")

	return out.String(), nil
}

func glossaryEntry(sym symbols.Symbol) string {
	switch s := sym.(type) {
	case *symbols.ParameterSymbol:
		return fmt.Sprintf("parameter (%s)", s.Kind)
	case *symbols.ObjectSymbol:
		return fmt.Sprintf("object (%s)", s.Kind)
	case *symbols.ConstantSymbol:
		return fmt.Sprintf("constant, %s of %s", s.Property, s.Element)
	case *symbols.VariableSymbol:
		return fmt.Sprintf("variable: %s", s.Type)
	case *symbols.FunctionSymbol:
		return "catalog function"
	default:
		return "symbol"
	}
}

func mathCases(sub *symbols.SubstitutionSymbol) string {
	var lines []string
	for _, rule := range sub.Rules {
		if rule.Guard == nil {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s & \\text{if } %s", mathExpr(rule.Body), mathConstraint(rule.Guard)))
	}
	if def, ok := sub.DefaultRule(); ok {
		lines = append(lines, fmt.Sprintf("%s & \\text{otherwise}", mathExpr(def.Body)))
	}
	return "\\begin{cases}" + strings.Join(lines, " \\\\ ") + "\\end{cases}"
}

func mathStatement(stmt ast.Statement, depth int) string {
	indent := strings.Repeat("  ", depth)
	switch n := stmt.(type) {
	case *ast.Assignment:
		return fmt.Sprintf("%s$$%s = %s$$\n", indent, mathExpr(n.LHS), mathExpr(n.RHS))
	case *ast.BoundedFor:
		var b strings.Builder
		fmt.Fprintf(&b, "%s$\\mathrm{for}\\ %s = %s \\ldots %s$\n", indent, n.Counter.Name, mathExpr(n.Lower), mathExpr(n.Upper))
		for _, s := range n.Body {
			b.WriteString(mathStatement(s, depth+1))
		}
		return b.String()
	case *ast.ObjectFor:
		var b strings.Builder
		fmt.Fprintf(&b, "%s$\\forall %s \\in \\mathrm{%s}$\n", indent, n.Name.Name, n.Kind)
		for _, s := range n.Body {
			b.WriteString(mathStatement(s, depth+1))
		}
		return b.String()
	default:
		return ""
	}
}

func mathExpr(expr ast.Expression) string {
	switch n := expr.(type) {
	case *ast.NumberExpr:
		if n.IsFloat {
			return fmt.Sprintf("%g", n.FloatValue)
		}
		return fmt.Sprintf("%d", n.IntValue)
	case *ast.NameExpr:
		return n.Name
	case *ast.SubscriptExpr:
		idx := make([]string, len(n.Indices))
		for i, id := range n.Indices {
			idx[i] = id.Name
		}
		return fmt.Sprintf("%s_{%s}", n.Name.Name, strings.Join(idx, ","))
	case *ast.BinaryExpr:
		if n.Op == "/" {
			return fmt.Sprintf("\\frac{%s}{%s}", mathExpr(n.Left), mathExpr(n.Right))
		}
		return fmt.Sprintf("(%s %s %s)", mathExpr(n.Left), n.Op, mathExpr(n.Right))
	case *ast.UnaryExpr:
		return fmt.Sprintf("(-%s)", mathExpr(n.Operand))
	case *ast.CallExpr:
		return fmt.Sprintf("\\mathrm{%s}(%s)", n.Name, mathExpr(n.Arg))
	case *ast.SumExpr:
		sum := fmt.Sprintf("\\sum_{%s}", n.Bound.Name)
		if n.Constraint != nil {
			sum = fmt.Sprintf("\\sum_{%s : %s}", n.Bound.Name, mathConstraint(n.Constraint))
		}
		return fmt.Sprintf("%s %s", sum, mathExpr(n.Body))
	case *ast.EEExpr:
		return fmt.Sprintf("\\mathrm{equalize}_{%s,%s}", n.Row.Name, n.Col.Name)
	case *ast.PlaceholderExpr:
		return "\\Box"
	default:
		return "?"
	}
}

func mathConstraint(c ast.Constraint) string {
	switch n := c.(type) {
	case *ast.RelOp:
		op := n.Op
		switch op {
		case "<=":
			op = "\\leq"
		case ">=":
			op = "\\geq"
		case "!=":
			op = "\\neq"
		case "==":
			op = "="
		}
		return fmt.Sprintf("%s %s %s", mathExpr(n.Left), op, mathExpr(n.Right))
	case *ast.BinaryLogicalOp:
		op := "\\land"
		if n.Op == "or" {
			op = "\\lor"
		}
		return fmt.Sprintf("(%s %s %s)", mathConstraint(n.Left), op, mathConstraint(n.Right))
	case *ast.UnaryLogicalOp:
		return fmt.Sprintf("\\lnot %s", mathConstraint(n.Operand))
	case *ast.Predicate:
		args := make([]string, len(n.Args))
		for i, a := range n.Args {
			args[i] = mathExpr(a)
		}
		return fmt.Sprintf("\\mathrm{%s}(%s)", n.Name, strings.Join(args, ", "))
	default:
		return "?"
	}
}
