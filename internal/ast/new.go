package ast

import "github.com/mdsl-lang/mdslc/internal/typesystem"

// Constructors. The parser builds every node through these so that the
// unexported position/resultType bookkeeping fields stay private to this
// package; each constructor records the position of the node's starting
// token (or, for operators, the operator token), per spec.md §4.1
// "Positioning".

func NewMethod(pos Position, name string) *Method {
	m := &Method{Name: name}
	m.position = pos
	return m
}

func NewNumber(pos Position) *NumberExpr {
	n := &NumberExpr{}
	n.position = pos
	return n
}

func NewName(pos Position, name string, quoted bool) *NameExpr {
	n := &NameExpr{Name: name, Quoted: quoted}
	n.position = pos
	return n
}

func NewSubscript(pos Position, name *Identifier, indices []*Identifier) *SubscriptExpr {
	s := &SubscriptExpr{Name: name, Indices: indices}
	s.position = pos
	return s
}

func NewBinary(pos Position, op string, left, right Expression) *BinaryExpr {
	b := &BinaryExpr{Op: op, Left: left, Right: right}
	b.position = pos
	return b
}

func NewUnary(pos Position, operand Expression) *UnaryExpr {
	u := &UnaryExpr{Operand: operand}
	u.position = pos
	return u
}

func NewSum(pos Position, bound *Identifier, constraint Constraint, body Expression) *SumExpr {
	s := &SumExpr{Bound: bound, Constraint: constraint, Body: body}
	s.position = pos
	return s
}

func NewCall(pos Position, name string, arg Expression) *CallExpr {
	c := &CallExpr{Name: name, Arg: arg}
	c.position = pos
	return c
}

func NewEE(pos Position, row, col *Identifier, diag, off, rhs Expression, cutoff bool, radius Expression) *EEExpr {
	e := &EEExpr{Row: row, Col: col, Diagonal: diag, OffDiagonal: off, RHS: rhs, Cutoff: cutoff, Radius: radius}
	e.position = pos
	return e
}

func NewPlaceholder(pos Position) *PlaceholderExpr {
	p := &PlaceholderExpr{}
	p.position = pos
	return p
}

func NewRelOp(pos Position, op string, left, right Expression) *RelOp {
	r := &RelOp{Op: op, Left: left, Right: right}
	r.position = pos
	return r
}

func NewBinaryLogicalOp(pos Position, op string, left, right Constraint) *BinaryLogicalOp {
	b := &BinaryLogicalOp{Op: op, Left: left, Right: right}
	b.position = pos
	return b
}

func NewUnaryLogicalOp(pos Position, operand Constraint) *UnaryLogicalOp {
	u := &UnaryLogicalOp{Operand: operand}
	u.position = pos
	return u
}

func NewPredicate(pos Position, name string, args []Expression) *Predicate {
	p := &Predicate{Name: name, Args: args}
	p.position = pos
	return p
}

func NewAssignment(pos Position, lhs, rhs Expression) *Assignment {
	a := &Assignment{LHS: lhs, RHS: rhs}
	a.position = pos
	return a
}

func NewBoundedFor(pos Position, counter *Identifier, lower, upper Expression, body []Statement) *BoundedFor {
	f := &BoundedFor{Counter: counter, Lower: lower, Upper: upper, Body: body}
	f.position = pos
	return f
}

func NewObjectFor(pos Position, name *Identifier, kind typesystem.ObjectKind, decompose *BondDecomposition, constraint Constraint, body []Statement) *ObjectFor {
	f := &ObjectFor{Name: name, Kind: kind, Decompose: decompose, Constraint: constraint, Body: body}
	f.position = pos
	return f
}

func NewParameterAnnotation(pos Position, name *Identifier, kind typesystem.ParameterKind) *ParameterAnnotation {
	a := &ParameterAnnotation{Name: name, Kind: kind}
	a.position = pos
	return a
}

func NewObjectAnnotation(pos Position, name *Identifier, kind typesystem.ObjectKind, decompose *BondDecomposition, constraint Constraint) *ObjectAnnotation {
	a := &ObjectAnnotation{Name: name, Kind: kind, Decompose: decompose, Constraint: constraint}
	a.position = pos
	return a
}

func NewPropertyAnnotation(pos Position, name *Identifier, property string) *PropertyAnnotation {
	a := &PropertyAnnotation{Name: name, Property: property}
	a.position = pos
	return a
}

func NewConstantAnnotation(pos Position, name *Identifier, property string, element *Identifier) *ConstantAnnotation {
	a := &ConstantAnnotation{Name: name, Property: property, Element: element}
	a.position = pos
	return a
}

func NewSubstitutionAnnotation(pos Position, name *Identifier, formals []*Identifier, guard Constraint, body Expression) *SubstitutionAnnotation {
	a := &SubstitutionAnnotation{Name: name, Formals: formals, Guard: guard, Body: body}
	a.position = pos
	return a
}
