package ast

import "github.com/mdsl-lang/mdslc/internal/typesystem"

// NumberExpr is an Int or Float literal. Int literals that overflow the
// host's native integer width fall back to Float in the lexer, so by the
// time this node exists IsFloat already reflects that.
type NumberExpr struct {
	exprBase
	IsFloat    bool
	IntValue   int64
	FloatValue float64
}

func (n *NumberExpr) Accept(v Visitor) { v.VisitNumber(n) }

// NameExpr is a bare name used as an expression: a Parameter, Object,
// Variable, Substitution, or Constant reference, or (when Quoted/ bare in
// a predicate's String argument position) an element-symbol literal.
type NameExpr struct {
	exprBase
	Name   string
	Quoted bool
}

func (n *NameExpr) Accept(v Visitor) { v.VisitName(n) }

// SubscriptExpr is Name[idx1, idx2, ...]: indexing a Parameter, Array
// variable, catalog property/function, or Substitution.
type SubscriptExpr struct {
	exprBase
	Name    *Identifier
	Indices []*Identifier
}

func (s *SubscriptExpr) Accept(v Visitor) { v.VisitSubscript(s) }

// BinaryExpr is a binary arithmetic operation: + - * / ^.
type BinaryExpr struct {
	exprBase
	Op          string
	Left, Right Expression
}

func (b *BinaryExpr) Accept(v Visitor) { v.VisitBinary(b) }

// UnaryExpr is unary minus.
type UnaryExpr struct {
	exprBase
	Operand Expression
}

func (u *UnaryExpr) Accept(v Visitor) { v.VisitUnary(u) }

// SumExpr binds Bound over Body, optionally filtered by Constraint, and
// reduces to a scalar or array result (`sum i such that ...: body`).
type SumExpr struct {
	exprBase
	Bound      *Identifier
	ObjectKind typesystem.ObjectKind // kind of Bound, filled by the analyzer
	Constraint Constraint
	Body       Expression
}

func (s *SumExpr) Accept(v Visitor) { v.VisitSum(s) }

// CallExpr is a catalog function invoked on a single expression argument:
// sqrt(x), inv(M).
type CallExpr struct {
	exprBase
	Name string
	Arg  Expression
}

func (c *CallExpr) Accept(v Visitor) { v.VisitCall(c) }

// EEExpr is an electronegativity-equalization solve expression. Row/Col
// are installed as Atom ObjectSymbols in a temporary inner scope while
// Diagonal/OffDiagonal/RHS are typed; its result type is always
// Array(Atom). See spec.md §9 for the open question on Cutoff/Radius.
type EEExpr struct {
	exprBase
	Row, Col                     *Identifier
	Diagonal, OffDiagonal, RHS   Expression
	Cutoff                       bool
	Radius                       Expression
}

func (e *EEExpr) Accept(v Visitor) { v.VisitEE(e) }

// PlaceholderExpr is the regression placeholder `{}`: a subexpression left
// for an external search process to fill. Front-end entry points that
// compute complexity or translate must refuse while one remains in the
// tree (spec.md §9).
type PlaceholderExpr struct {
	exprBase
}

func (p *PlaceholderExpr) Accept(v Visitor) { v.VisitPlaceholder(p) }
