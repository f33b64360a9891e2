// Package analyzer implements the semantic analyzer: the single recursive
// tree walk that builds scopes, installs symbols, resolves names, and
// types every expression in a parsed Method (spec.md §4.2). It runs after
// the parser and before the complexity analyzer or any back end.
//
// Like the parser, it aborts at its first error instead of collecting a
// diagnostic list: the walk raises a *diagnostics.SymbolError or
// *diagnostics.TypeError by panicking, and Analyze recovers it at the
// boundary and returns it as a plain error. This mirrors the teacher's
// panic/recover idiom in its own statement-level checkers, generalized
// here to the whole walk rather than one statement at a time.
package analyzer

import (
	"github.com/mdsl-lang/mdslc/internal/ast"
	"github.com/mdsl-lang/mdslc/internal/diagnostics"
	"github.com/mdsl-lang/mdslc/internal/symbols"
)

// Analyzer carries the mutable state threaded through one analysis run.
type Analyzer struct {
	table     *symbols.Table
	scope     *symbols.Scope
	iterating map[string]int    // Object names currently iterable, refcounted
	renames   []map[string]string // formal->actual substitution renaming frames
	positions map[string]ast.Position // first declaration site, for substitution error reporting
}

// Analyze builds a fresh symbol table for m, runs the full annotation and
// statement walk, and returns the populated table. Any SymbolError or
// TypeError raised during the walk is returned as err instead of m's
// partially built table.
func Analyze(m *ast.Method) (table *symbols.Table, err error) {
	defer func() {
		if r := recover(); r != nil {
			de, ok := r.(diagnostics.Error)
			if !ok {
				panic(r)
			}
			table, err = nil, de
		}
	}()

	a := &Analyzer{
		table:     symbols.NewTable(),
		iterating: make(map[string]int),
		positions: make(map[string]ast.Position),
	}
	a.scope = a.table.MethodScope

	a.analyzeAnnotations(m.Annotations)
	a.finalizeSubstitutions()
	a.analyzeStatements(m.Statements)

	return a.table, nil
}

func (a *Analyzer) failSymbol(pos ast.Position, format string, args ...interface{}) {
	panic(diagnostics.NewSymbolError(pos.Line, pos.Column, format, args...))
}

func (a *Analyzer) failType(pos ast.Position, format string, args ...interface{}) {
	panic(diagnostics.NewTypeError(pos.Line, pos.Column, format, args...))
}

// checkNameFree raises a SymbolError if name is already resolvable
// anywhere in the current scope chain, or already denotes a substitution.
// Parameter, Object, Property and Constant annotations and every name a
// loop declares pass this before a new symbol is installed (spec.md §4.2
// "Redeclaration"); substitution rules check only the scope chain, since a
// substitution may be redeclared to add rules, and EE row/col names skip it.
func (a *Analyzer) checkNameFree(name string, pos ast.Position) {
	if a.scope.ResolvableInChain(name) {
		a.failSymbol(pos, "%q is already declared", name)
	}
	if _, ok := a.table.ResolveSubstitution(name); ok {
		a.failSymbol(pos, "%q is already declared as a substitution", name)
	}
}

func (a *Analyzer) define(name string, sym symbols.Symbol) {
	a.scope.Define(name, sym)
}

// pushScope opens a new scope nested under the current one and returns a
// restore function; ObjectFor/BoundedFor bodies and EE's temporary index
// scope all use this to implement the scope lifecycle (spec.md §4.2
// "Scope lifecycle").
func (a *Analyzer) pushScope() func() {
	parent := a.scope
	a.scope = symbols.NewScope(parent)
	return func() { a.scope = parent }
}

// pushIterating marks name as a currently-iterable Object for the
// duration of the returned restore function's eventual call. Calls nest:
// an annotation-declared domain object is pushed once and never popped,
// while loop and sum bodies push/pop around just their own extent.
func (a *Analyzer) pushIterating(name string) func() {
	a.iterating[name]++
	return func() {
		a.iterating[name]--
		if a.iterating[name] <= 0 {
			delete(a.iterating, name)
		}
	}
}

func (a *Analyzer) isIterating(name string) bool {
	return a.iterating[name] > 0
}

// rename resolves name through the active substitution rename frames,
// innermost first, so that re-typing a substitution body at a use site
// sees its formal names replaced by the actual index names passed at that
// use site (spec.md §4.2 "Subscript typing" for SubstitutionSymbol).
func (a *Analyzer) rename(name string) string {
	for i := len(a.renames) - 1; i >= 0; i-- {
		if actual, ok := a.renames[i][name]; ok {
			return actual
		}
	}
	return name
}

func (a *Analyzer) pushRename(frame map[string]string) func() {
	a.renames = append(a.renames, frame)
	return func() { a.renames = a.renames[:len(a.renames)-1] }
}
