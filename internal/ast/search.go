package ast

// ContainsPlaceholder reports whether m's tree contains a regression
// placeholder (`{}`) anywhere. Front-end entry points that compute
// complexity or translate must refuse while one remains (spec.md §9); the
// public API exposes this as has_regression_placeholder so callers can
// check cheaply before invoking them.
func ContainsPlaceholder(m *Method) bool {
	for _, a := range m.Annotations {
		if annotationHasPlaceholder(a) {
			return true
		}
	}
	for _, s := range m.Statements {
		if statementHasPlaceholder(s) {
			return true
		}
	}
	return false
}

func annotationHasPlaceholder(a Annotation) bool {
	switch n := a.(type) {
	case *SubstitutionAnnotation:
		return constraintHasPlaceholder(n.Guard) || exprHasPlaceholder(n.Body)
	case *ObjectAnnotation:
		return constraintHasPlaceholder(n.Constraint)
	}
	return false
}

func statementHasPlaceholder(s Statement) bool {
	switch n := s.(type) {
	case *Assignment:
		return exprHasPlaceholder(n.LHS) || exprHasPlaceholder(n.RHS)
	case *BoundedFor:
		if exprHasPlaceholder(n.Lower) || exprHasPlaceholder(n.Upper) {
			return true
		}
		for _, body := range n.Body {
			if statementHasPlaceholder(body) {
				return true
			}
		}
	case *ObjectFor:
		if constraintHasPlaceholder(n.Constraint) {
			return true
		}
		for _, body := range n.Body {
			if statementHasPlaceholder(body) {
				return true
			}
		}
	}
	return false
}

func exprHasPlaceholder(e Expression) bool {
	switch n := e.(type) {
	case nil:
		return false
	case *PlaceholderExpr:
		return true
	case *SubscriptExpr, *NumberExpr, *NameExpr:
		return false
	case *BinaryExpr:
		return exprHasPlaceholder(n.Left) || exprHasPlaceholder(n.Right)
	case *UnaryExpr:
		return exprHasPlaceholder(n.Operand)
	case *SumExpr:
		return constraintHasPlaceholder(n.Constraint) || exprHasPlaceholder(n.Body)
	case *CallExpr:
		return exprHasPlaceholder(n.Arg)
	case *EEExpr:
		return exprHasPlaceholder(n.Diagonal) || exprHasPlaceholder(n.OffDiagonal) ||
			exprHasPlaceholder(n.RHS) || exprHasPlaceholder(n.Radius)
	}
	return false
}

func constraintHasPlaceholder(c Constraint) bool {
	switch n := c.(type) {
	case nil:
		return false
	case *RelOp:
		return exprHasPlaceholder(n.Left) || exprHasPlaceholder(n.Right)
	case *BinaryLogicalOp:
		return constraintHasPlaceholder(n.Left) || constraintHasPlaceholder(n.Right)
	case *UnaryLogicalOp:
		return constraintHasPlaceholder(n.Operand)
	case *Predicate:
		for _, arg := range n.Args {
			if exprHasPlaceholder(arg) {
				return true
			}
		}
	}
	return false
}
