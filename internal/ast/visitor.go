package ast

// Visitor is the double-dispatch interface every node's Accept method
// calls into. No pass in this module implements it: the parser, analyzer,
// complexity analyzer and all three back ends work over the AST directly
// with Go type switches (spec.md §9 "Dynamic visitor dispatch -> tagged
// variants") since they need to return values and propagate errors,
// which a void Accept/Visit pair cannot express without casting.
type Visitor interface {
	VisitMethod(*Method)

	VisitParameterAnnotation(*ParameterAnnotation)
	VisitObjectAnnotation(*ObjectAnnotation)
	VisitPropertyAnnotation(*PropertyAnnotation)
	VisitConstantAnnotation(*ConstantAnnotation)
	VisitSubstitutionAnnotation(*SubstitutionAnnotation)

	VisitAssignment(*Assignment)
	VisitBoundedFor(*BoundedFor)
	VisitObjectFor(*ObjectFor)

	VisitNumber(*NumberExpr)
	VisitName(*NameExpr)
	VisitSubscript(*SubscriptExpr)
	VisitBinary(*BinaryExpr)
	VisitUnary(*UnaryExpr)
	VisitSum(*SumExpr)
	VisitCall(*CallExpr)
	VisitEE(*EEExpr)
	VisitPlaceholder(*PlaceholderExpr)

	VisitRelOp(*RelOp)
	VisitBinaryLogicalOp(*BinaryLogicalOp)
	VisitUnaryLogicalOp(*UnaryLogicalOp)
	VisitPredicate(*Predicate)
}
