// Package ast defines the typed abstract syntax tree produced by the
// parser and annotated in place by the semantic analyzer.
package ast

import (
	"github.com/mdsl-lang/mdslc/internal/token"
	"github.com/mdsl-lang/mdslc/internal/typesystem"
)

// Position is a source location, carried by every node.
type Position = token.Position

// Node is the base interface implemented by every AST node. Parent is a
// non-owning back-reference set by a single post-parse walk (Link); it must
// never be used to keep a subtree alive, only to look upward from a use
// site during analysis.
type Node interface {
	Pos() Position
	Parent() Node
	setParent(Node)
}

// Statement is a Node that appears in a statement position.
type Statement interface {
	Node
	statementNode()
}

// Expression is a Node with a type, populated by the semantic analyzer.
// ResultType is nil until analysis has visited the node.
type Expression interface {
	Node
	expressionNode()
	ResultType() typesystem.Type
	SetResultType(typesystem.Type)
}

// Constraint is a Node representing a boolean-valued logical combination of
// relational and domain predicates.
type Constraint interface {
	Node
	constraintNode()
}

// Annotation is a Node appearing in a Method's declarative preamble.
type Annotation interface {
	Node
	annotationNode()
}

// base is embedded by every concrete node to supply Pos/Parent bookkeeping.
type base struct {
	position Position
	parent   Node
}

func (b *base) Pos() Position    { return b.position }
func (b *base) Parent() Node     { return b.parent }
func (b *base) setParent(p Node) { b.parent = p }

// exprBase is embedded by every Expression; it adds the result-type slot.
type exprBase struct {
	base
	resultType typesystem.Type
}

func (e *exprBase) ResultType() typesystem.Type     { return e.resultType }
func (e *exprBase) SetResultType(t typesystem.Type) { e.resultType = t }
func (e *exprBase) expressionNode()                 {}

// Identifier is a bare name reference: an object name, a parameter name, a
// loop counter, a substitution use, or a catalog function/property name.
type Identifier struct {
	base
	Name string
}

func NewIdentifier(pos Position, name string) *Identifier {
	id := &Identifier{Name: name}
	id.position = pos
	return id
}
