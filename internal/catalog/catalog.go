// Package catalog holds the built-in function and predicate signatures
// that spec.md §6 fixes as the stable external interface: atom/bond
// properties, the two-atom distance function, the inv matrix inverse, the
// transcendental math functions, and the four domain predicates.
//
// There are two call shapes in the grammar (see ast.SubscriptExpr and
// ast.CallExpr): properties and distance are invoked by subscripting a
// catalog name with object indices (electronegativity[i]), while inv and
// the math functions are invoked as a single-argument call
// (sqrt(expr), inv(expr)). Indexed and called signatures are therefore
// kept in separate tables.
package catalog

import (
	"strings"

	"github.com/mdsl-lang/mdslc/internal/typesystem"
)

// Signature is a catalog entry's argument/return shape.
type Signature struct {
	Args   []typesystem.Type
	Return typesystem.Type
}

var atomFloat = []string{
	"electronegativity", "covalent radius", "van der waals radius",
	"hardness", "ionization potential", "electron affinity",
}

var atomInt = []string{
	"atomic number", "valence electron count", "formal charge",
}

// Indexed holds the properties and functions invoked via Subscript:
// name[idx...]. Their argument types are Object kinds (Atom or Bond).
var Indexed = buildIndexed()

func buildIndexed() map[string]Signature {
	m := make(map[string]Signature)
	for _, name := range atomFloat {
		m[name] = Signature{Args: []typesystem.Type{typesystem.AtomType}, Return: typesystem.FloatType}
	}
	for _, name := range atomInt {
		m[name] = Signature{Args: []typesystem.Type{typesystem.AtomType}, Return: typesystem.IntType}
	}
	m["bond order"] = Signature{Args: []typesystem.Type{typesystem.BondType}, Return: typesystem.IntType}
	m["distance"] = Signature{Args: []typesystem.Type{typesystem.AtomType, typesystem.AtomType}, Return: typesystem.FloatType}
	return m
}

// Called holds the functions invoked via a single-expression call:
// name(expr). inv takes and returns an (Atom,Atom) matrix; the math
// functions are Float->Float.
var Called = map[string]Signature{
	"inv":  {Args: []typesystem.Type{typesystem.MatrixOf(typesystem.Atom, typesystem.Atom)}, Return: typesystem.MatrixOf(typesystem.Atom, typesystem.Atom)},
	"exp":  {Args: []typesystem.Type{typesystem.FloatType}, Return: typesystem.FloatType},
	"sqrt": {Args: []typesystem.Type{typesystem.FloatType}, Return: typesystem.FloatType},
	"sin":  {Args: []typesystem.Type{typesystem.FloatType}, Return: typesystem.FloatType},
	"cos":  {Args: []typesystem.Type{typesystem.FloatType}, Return: typesystem.FloatType},
	"tan":  {Args: []typesystem.Type{typesystem.FloatType}, Return: typesystem.FloatType},
	"sinh": {Args: []typesystem.Type{typesystem.FloatType}, Return: typesystem.FloatType},
	"cosh": {Args: []typesystem.Type{typesystem.FloatType}, Return: typesystem.FloatType},
	"tanh": {Args: []typesystem.Type{typesystem.FloatType}, Return: typesystem.FloatType},
}

// PredicateArgKind distinguishes the three kinds of predicate argument
// position: an Object currently being iterated, a bare/quoted String
// literal, or a Numeric expression.
type PredicateArgKind int

const (
	ArgObject PredicateArgKind = iota
	ArgString
	ArgNumeric
)

// PredicateSignature is a predicate's fixed arity and per-position kind.
// ObjectKinds[i] is meaningful only when ArgKinds[i] == ArgObject.
type PredicateSignature struct {
	ArgKinds    []PredicateArgKind
	ObjectKinds []typesystem.ObjectKind
}

// Predicates holds the four domain predicates fixed by spec.md §6.
var Predicates = map[string]PredicateSignature{
	"element": {
		ArgKinds:    []PredicateArgKind{ArgObject, ArgString},
		ObjectKinds: []typesystem.ObjectKind{typesystem.Atom, 0},
	},
	"bonded": {
		ArgKinds:    []PredicateArgKind{ArgObject, ArgObject},
		ObjectKinds: []typesystem.ObjectKind{typesystem.Atom, typesystem.Atom},
	},
	"near": {
		ArgKinds:    []PredicateArgKind{ArgObject, ArgObject, ArgNumeric},
		ObjectKinds: []typesystem.ObjectKind{typesystem.Atom, typesystem.Atom, 0},
	},
	"bond_distance": {
		ArgKinds:    []PredicateArgKind{ArgObject, ArgObject, ArgNumeric},
		ObjectKinds: []typesystem.ObjectKind{typesystem.Atom, typesystem.Atom, 0},
	},
}

// LookupIndexed returns the signature for a Subscript-style catalog name.
func LookupIndexed(name string) (Signature, bool) {
	sig, ok := Indexed[name]
	return sig, ok
}

// LookupCalled returns the signature for a Call-style catalog name.
func LookupCalled(name string) (Signature, bool) {
	sig, ok := Called[name]
	return sig, ok
}

// LookupPredicate returns the signature for a predicate name.
func LookupPredicate(name string) (PredicateSignature, bool) {
	sig, ok := Predicates[name]
	return sig, ok
}

// IsKnownPropertyPhrase reports whether phrase names an indexed catalog
// entry; used by the parser to accept multi-word property phrases such as
// "covalent radius" or "van der waals radius" in Property/Constant
// annotations.
func IsKnownPropertyPhrase(phrase string) bool {
	_, ok := Indexed[phrase]
	return ok
}

// IsKnownPropertyPrefix reports whether phrase is a (space-joined) prefix of
// some multi-word Indexed entry, such as "van" or "van der" being a prefix of
// "van der waals radius". The parser uses this to decide whether to keep
// consuming words when building a Property/Constant annotation's phrase.
func IsKnownPropertyPrefix(phrase string) bool {
	for name := range Indexed {
		if name == phrase || strings.HasPrefix(name, phrase+" ") {
			return true
		}
	}
	return false
}
