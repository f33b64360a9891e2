package ast

// Link performs the single parent-linking walk the parser runs once after
// building the tree (spec.md §4.1 "Post-pass"), so every node afterward
// knows its syntactic parent except the root. Parent is a non-owning
// back-reference: the tree owns its children through the ordinary struct
// fields: Link only writes the reverse edge.
func Link(m *Method) {
	for _, a := range m.Annotations {
		linkAnnotation(a, m)
	}
	for _, s := range m.Statements {
		linkStatement(s, m)
	}
}

func linkIdent(id *Identifier, parent Node) {
	if id == nil {
		return
	}
	id.setParent(parent)
}

func linkDecompose(d *BondDecomposition, parent Node) {
	if d == nil {
		return
	}
	linkIdent(d.AtomA, parent)
	linkIdent(d.AtomB, parent)
}

func linkAnnotation(a Annotation, parent Node) {
	if a == nil {
		return
	}
	a.setParent(parent)
	switch n := a.(type) {
	case *ParameterAnnotation:
		linkIdent(n.Name, n)
	case *ObjectAnnotation:
		linkIdent(n.Name, n)
		linkDecompose(n.Decompose, n)
		linkConstraint(n.Constraint, n)
	case *PropertyAnnotation:
		linkIdent(n.Name, n)
	case *ConstantAnnotation:
		linkIdent(n.Name, n)
		linkIdent(n.Element, n)
	case *SubstitutionAnnotation:
		linkIdent(n.Name, n)
		for _, f := range n.Formals {
			linkIdent(f, n)
		}
		linkConstraint(n.Guard, n)
		linkExpr(n.Body, n)
	}
}

func linkStatement(s Statement, parent Node) {
	if s == nil {
		return
	}
	s.setParent(parent)
	switch n := s.(type) {
	case *Assignment:
		linkExpr(n.LHS, n)
		linkExpr(n.RHS, n)
	case *BoundedFor:
		linkIdent(n.Counter, n)
		linkExpr(n.Lower, n)
		linkExpr(n.Upper, n)
		for _, body := range n.Body {
			linkStatement(body, n)
		}
	case *ObjectFor:
		linkIdent(n.Name, n)
		linkDecompose(n.Decompose, n)
		linkConstraint(n.Constraint, n)
		for _, body := range n.Body {
			linkStatement(body, n)
		}
	}
}

func linkExpr(e Expression, parent Node) {
	if e == nil {
		return
	}
	e.setParent(parent)
	switch n := e.(type) {
	case *NumberExpr, *NameExpr, *PlaceholderExpr:
		// leaves
	case *SubscriptExpr:
		linkIdent(n.Name, n)
		for _, idx := range n.Indices {
			linkIdent(idx, n)
		}
	case *BinaryExpr:
		linkExpr(n.Left, n)
		linkExpr(n.Right, n)
	case *UnaryExpr:
		linkExpr(n.Operand, n)
	case *SumExpr:
		linkIdent(n.Bound, n)
		linkConstraint(n.Constraint, n)
		linkExpr(n.Body, n)
	case *CallExpr:
		linkExpr(n.Arg, n)
	case *EEExpr:
		linkIdent(n.Row, n)
		linkIdent(n.Col, n)
		linkExpr(n.Diagonal, n)
		linkExpr(n.OffDiagonal, n)
		linkExpr(n.RHS, n)
		linkExpr(n.Radius, n)
	}
}

func linkConstraint(c Constraint, parent Node) {
	if c == nil {
		return
	}
	c.setParent(parent)
	switch n := c.(type) {
	case *RelOp:
		linkExpr(n.Left, n)
		linkExpr(n.Right, n)
	case *BinaryLogicalOp:
		linkConstraint(n.Left, n)
		linkConstraint(n.Right, n)
	case *UnaryLogicalOp:
		linkConstraint(n.Operand, n)
	case *Predicate:
		for _, arg := range n.Args {
			linkExpr(arg, n)
		}
	}
}
