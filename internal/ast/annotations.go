package ast

import "github.com/mdsl-lang/mdslc/internal/typesystem"

// ParameterAnnotation declares an externally supplied lookup table:
// `parameter A`, `parameter bond B`, `parameter common k`.
type ParameterAnnotation struct {
	base
	Name *Identifier
	Kind typesystem.ParameterKind
}

func (p *ParameterAnnotation) annotationNode() {}
func (p *ParameterAnnotation) Accept(v Visitor) { v.VisitParameterAnnotation(p) }

// ObjectAnnotation declares an iteration domain element: `i is atom`,
// `b is bond (i-j) such that bonded(i,j)`.
type ObjectAnnotation struct {
	base
	Name       *Identifier
	Kind       typesystem.ObjectKind
	Decompose  *BondDecomposition
	Constraint Constraint
}

func (o *ObjectAnnotation) annotationNode()  {}
func (o *ObjectAnnotation) Accept(v Visitor) { v.VisitObjectAnnotation(o) }

// PropertyAnnotation binds Name to a catalog property/function, without an
// "of <element>" clause: `chi is electronegativity`.
type PropertyAnnotation struct {
	base
	Name     *Identifier
	Property string
}

func (p *PropertyAnnotation) annotationNode()  {}
func (p *PropertyAnnotation) Accept(v Visitor) { v.VisitPropertyAnnotation(p) }

// ConstantAnnotation binds Name to a catalog property evaluated at one
// specific element: `rH is covalent radius of H`. The catalog property
// named by Property must take exactly one Atom argument.
type ConstantAnnotation struct {
	base
	Name     *Identifier
	Property string
	Element  *Identifier
}

func (c *ConstantAnnotation) annotationNode()  {}
func (c *ConstantAnnotation) Accept(v Visitor) { v.VisitConstantAnnotation(c) }

// SubstitutionAnnotation declares one rule of a (possibly multi-rule)
// substitution: `chi[i] = A[i] if element(i, H)` or the default rule
// `chi[i] = B[i]`. Guard is nil for the default rule. Multiple
// SubstitutionAnnotation nodes sharing Name are merged by the analyzer
// into a single symbols.SubstitutionSymbol.
type SubstitutionAnnotation struct {
	base
	Name    *Identifier
	Formals []*Identifier
	Guard   Constraint
	Body    Expression
}

func (s *SubstitutionAnnotation) annotationNode()  {}
func (s *SubstitutionAnnotation) Accept(v Visitor) { v.VisitSubstitutionAnnotation(s) }

// Method is the root of every AST the parser produces: a header, an
// ordered mix of annotations processed before statements, and the
// ordered statement sequence. Its Parent is always nil.
type Method struct {
	base
	Name        string
	Annotations []Annotation
	Statements  []Statement
}

func (m *Method) Accept(v Visitor) { v.VisitMethod(m) }
