package ast

import "github.com/mdsl-lang/mdslc/internal/typesystem"

// BondDecomposition names the two Atom identifiers a Bond Object
// decomposes into: `b is bond (i-j)`.
type BondDecomposition struct {
	AtomA, AtomB *Identifier
}

// Assignment is `lhs = rhs`, where lhs is a NameExpr or SubscriptExpr.
type Assignment struct {
	base
	LHS Expression
	RHS Expression
}

func (a *Assignment) statementNode()   {}
func (a *Assignment) Accept(v Visitor) { v.VisitAssignment(a) }

// BoundedFor is `for counter = lower to upper: body`. It owns its own
// child scope (tracked by the analyzer, not stored on the node itself, to
// keep the AST independent of the symbol table package).
type BoundedFor struct {
	base
	Counter      *Identifier
	Lower, Upper Expression
	Body         []Statement
}

func (f *BoundedFor) statementNode()   {}
func (f *BoundedFor) Accept(v Visitor) { v.VisitBoundedFor(f) }

// ObjectFor is `for each name is atom|bond [(i-j)] [such that c]: body`.
type ObjectFor struct {
	base
	Name       *Identifier
	Kind       typesystem.ObjectKind
	Decompose  *BondDecomposition
	Constraint Constraint
	Body       []Statement
}

func (f *ObjectFor) statementNode()   {}
func (f *ObjectFor) Accept(v Visitor) { v.VisitObjectFor(f) }
