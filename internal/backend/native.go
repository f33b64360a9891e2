package backend

import (
	"bytes"
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"text/template"

	"github.com/google/uuid"

	"github.com/mdsl-lang/mdslc/internal/ast"
	"github.com/mdsl-lang/mdslc/internal/symbols"
	"github.com/mdsl-lang/mdslc/internal/typesystem"
)

//go:embed templates/header.tmpl
var nativeHeaderTmpl string

//go:embed templates/impl.tmpl
var nativeImplTmpl string

//go:embed templates/manifest.tmpl
var nativeManifestTmpl string

// nativeBackend lowers a typed Method to a C++ translation unit: a header
// declaring per-object parameter accessors and the charges() entry point,
// an implementation unit with one helper method per substitution and the
// method's statement code, and a build manifest. A sum is emitted as a
// call to sum_<bound>(...) and an EE expression as a reference to
// solve_ee_<row>_<col>; no helper body is generated for either, so the EE
// linear system is not written out. spec.md §4.4 describes this as "the native/linear-algebra back
// end"; spec.md §6 fixes its required substitution slots.
type nativeBackend struct{}

func (*nativeBackend) Name() string { return "native" }

// templateData holds every slot spec.md §6 requires the native back end's
// three files to fill in.
type templateData struct {
	BuildID            string
	MethodName         string
	MethodUpper        string
	AtomParams         []string
	BondParams         []string
	CommonParams       []string
	HelperForwardDecls []string
	HelperBodies       []string
	LocalDecls         []string
	StatementCode      []string
	BondInfo           bool
	BondDistances      bool
}

func (b *nativeBackend) Translate(m *ast.Method, table *symbols.Table, options map[string]string) (string, error) {
	if ast.ContainsPlaceholder(m) {
		return "", fmt.Errorf("backend: method %q still contains an unresolved regression placeholder", m.Name)
	}

	data := templateData{
		BuildID:     uuid.NewString(),
		MethodName:  capitalize(m.Name),
		MethodUpper: strings.ToUpper(m.Name),
	}

	names := table.MethodScope.Names()
	sort.Strings(names)
	for _, name := range names {
		sym, _ := table.MethodScope.ResolveLocal(name)
		switch s := sym.(type) {
		case *symbols.ParameterSymbol:
			switch s.Kind {
			case typesystem.AtomParameter:
				data.AtomParams = append(data.AtomParams, identName(name))
			case typesystem.BondParameter:
				data.BondParams = append(data.BondParams, identName(name))
				data.BondInfo = true
			case typesystem.CommonParameter:
				data.CommonParams = append(data.CommonParams, identName(name))
			}
		case *symbols.VariableSymbol:
			if s.IsLoopCounter {
				continue
			}
			data.LocalDecls = append(data.LocalDecls, fmt.Sprintf("%s %s;", cppType(s.Type), identName(name)))
		}
	}

	for name, sub := range table.Substitutions {
		data.HelperForwardDecls = append(data.HelperForwardDecls,
			fmt.Sprintf("double %s(int idx) const;", identName(name)))
		data.HelperBodies = append(data.HelperBodies, substitutionHelper(data.MethodName, name, sub))
	}
	sort.Strings(data.HelperForwardDecls)
	sort.Strings(data.HelperBodies)

	for _, stmt := range m.Statements {
		code := statementCode(stmt)
		data.StatementCode = append(data.StatementCode, code...)
		if usesDistance(stmt, table) {
			data.BondDistances = true
		}
	}

	header, err := renderTemplate("header", nativeHeaderTmpl, data)
	if err != nil {
		return "", err
	}
	impl, err := renderTemplate("impl", nativeImplTmpl, data)
	if err != nil {
		return "", err
	}
	manifest, err := renderTemplate("manifest", nativeManifestTmpl, data)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	fmt.Fprintf(&out, "// ===== %s.h =====\n%s\n", data.MethodName, header)
	fmt.Fprintf(&out, "// ===== %s.cpp =====\n%s\n", data.MethodName, impl)
	fmt.Fprintf(&out, "// ===== build.manifest =====\n%s\n", manifest)
	return out.String(), nil
}

func renderTemplate(name, body string, data templateData) (string, error) {
	tmpl, err := template.New(name).Parse(body)
	if err != nil {
		return "", fmt.Errorf("backend: parsing %s template: %w", name, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("backend: rendering %s template: %w", name, err)
	}
	return buf.String(), nil
}

// substitutionHelper lowers one substitution into a helper method whose
// body is a chain of guarded early returns ending in the default rule,
// per spec.md §4.4 "substitutions lower to helper methods".
func substitutionHelper(methodName, name string, sub *symbols.SubstitutionSymbol) string {
	var b strings.Builder
	fmt.Fprintf(&b, "double %s::%s(int idx) const {\n", methodName, identName(name))
	for _, rule := range sub.Rules {
		if rule.Guard == nil {
			continue
		}
		fmt.Fprintf(&b, "    if (%s) return %s;\n", constraintString(rule.Guard), exprString(rule.Body))
	}
	if def, ok := sub.DefaultRule(); ok {
		fmt.Fprintf(&b, "    return %s;\n", exprString(def.Body))
	}
	b.WriteString("}")
	return b.String()
}

// statementCode lowers one statement to zero or more lines of C++.
func statementCode(stmt ast.Statement) []string {
	switch n := stmt.(type) {
	case *ast.Assignment:
		lhs := exprString(n.LHS)
		return []string{fmt.Sprintf("%s = %s;", lhs, exprString(n.RHS))}

	case *ast.BoundedFor:
		var lines []string
		lines = append(lines, fmt.Sprintf("for (int %s = %s; %s <= %s; ++%s) {",
			identName(n.Counter.Name), exprString(n.Lower), identName(n.Counter.Name), exprString(n.Upper), identName(n.Counter.Name)))
		for _, s := range n.Body {
			for _, line := range statementCode(s) {
				lines = append(lines, "    "+line)
			}
		}
		lines = append(lines, "}")
		return lines

	case *ast.ObjectFor:
		var lines []string
		lines = append(lines, fmt.Sprintf("for (int %s : %s_domain()) {", identName(n.Name.Name), strings.ToLower(n.Kind.String())))
		for _, s := range n.Body {
			for _, line := range statementCode(s) {
				lines = append(lines, "    "+line)
			}
		}
		lines = append(lines, "}")
		return lines

	default:
		return nil
	}
}

// usesDistance reports whether stmt's tree invokes the distance catalog
// function (directly, or through a Property alias such as `R is
// distance`), the signal the header uses to set BOND_DISTANCES.
func usesDistance(stmt ast.Statement, table *symbols.Table) bool {
	found := false
	var walkExpr func(ast.Expression)
	var walkConstraint func(ast.Constraint)
	walkExpr = func(e ast.Expression) {
		if e == nil || found {
			return
		}
		switch n := e.(type) {
		case *ast.SubscriptExpr:
			if isDistanceName(n.Name.Name, table) {
				found = true
			}
		case *ast.BinaryExpr:
			walkExpr(n.Left)
			walkExpr(n.Right)
		case *ast.UnaryExpr:
			walkExpr(n.Operand)
		case *ast.CallExpr:
			walkExpr(n.Arg)
		case *ast.SumExpr:
			walkConstraint(n.Constraint)
			walkExpr(n.Body)
		case *ast.EEExpr:
			walkExpr(n.Diagonal)
			walkExpr(n.OffDiagonal)
			walkExpr(n.RHS)
			walkExpr(n.Radius)
		}
	}
	walkConstraint = func(c ast.Constraint) {
		if c == nil || found {
			return
		}
		switch n := c.(type) {
		case *ast.RelOp:
			walkExpr(n.Left)
			walkExpr(n.Right)
		case *ast.BinaryLogicalOp:
			walkConstraint(n.Left)
			walkConstraint(n.Right)
		case *ast.UnaryLogicalOp:
			walkConstraint(n.Operand)
		case *ast.Predicate:
			for _, a := range n.Args {
				walkExpr(a)
			}
		}
	}
	switch n := stmt.(type) {
	case *ast.Assignment:
		walkExpr(n.LHS)
		walkExpr(n.RHS)
	case *ast.BoundedFor:
		walkExpr(n.Lower)
		walkExpr(n.Upper)
		for _, s := range n.Body {
			if usesDistance(s, table) {
				found = true
			}
		}
	case *ast.ObjectFor:
		walkConstraint(n.Constraint)
		for _, s := range n.Body {
			if usesDistance(s, table) {
				found = true
			}
		}
	}
	return found
}

// isDistanceName reports whether name resolves to the two-Atom distance
// catalog function, either directly or through a Property annotation
// alias (`R is distance`), distinguishing it from the single-Atom
// properties that share the same Subscript call shape.
func isDistanceName(name string, table *symbols.Table) bool {
	if name == "distance" {
		return true
	}
	sym, ok := table.MethodScope.Resolve(name)
	if !ok {
		return false
	}
	fn, ok := sym.(*symbols.FunctionSymbol)
	return ok && fn.Indexed && len(fn.Signature.Args) == 2
}

func cppType(t typesystem.Type) string {
	if _, ok := typesystem.IsArray(t); ok {
		return "std::vector<double>"
	}
	if n, ok := t.(typesystem.TNumeric); ok && n.Kind == typesystem.Int {
		return "int"
	}
	return "double"
}

func capitalize(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
