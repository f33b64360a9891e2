// Package diagnostics defines the compiler's flat, three-member error
// taxonomy (spec.md §4.2, §7): SyntaxError, SymbolError, and TypeError.
// Each carries the offending node's source position and a human message;
// none is recovered locally, and the analyzer aborts at the first one it
// raises (spec.md §7: "multi-error reporting is explicitly a non-goal").
package diagnostics

import "fmt"

// Error is implemented by all three error kinds, so the CLI wrapper and
// the programmatic API can handle them uniformly while still being able
// to type-switch on the concrete kind when it matters.
type Error interface {
	error
	Position() (line, column int)
}

// SyntaxError is raised by the parser on malformed input.
type SyntaxError struct {
	Line, Column int
	Message      string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
}

func (e *SyntaxError) Position() (int, int) { return e.Line, e.Column }

// NewSyntaxError builds a SyntaxError at (line, column).
func NewSyntaxError(line, column int, format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{Line: line, Column: column, Message: fmt.Sprintf(format, args...)}
}

// SymbolError is raised by the semantic analyzer for scoping and binding
// failures: redeclaration, unresolved names, unresolved substitution
// guards, and similar.
type SymbolError struct {
	Line, Column int
	Message      string
}

func (e *SymbolError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
}

func (e *SymbolError) Position() (int, int) { return e.Line, e.Column }

// NewSymbolError builds a SymbolError at (line, column).
func NewSymbolError(line, column int, format string, args ...interface{}) *SymbolError {
	return &SymbolError{Line: line, Column: column, Message: fmt.Sprintf(format, args...)}
}

// TypeError is raised by the semantic analyzer for typing failures:
// shape mismatches, forbidden narrowing, undefined operator/type
// combinations, and similar.
type TypeError struct {
	Line, Column int
	Message      string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
}

func (e *TypeError) Position() (int, int) { return e.Line, e.Column }

// NewTypeError builds a TypeError at (line, column).
func NewTypeError(line, column int, format string, args ...interface{}) *TypeError {
	return &TypeError{Line: line, Column: column, Message: fmt.Sprintf(format, args...)}
}
