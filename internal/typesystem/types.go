// Package typesystem implements the DSL's type lattice: the algebra of
// types and the equality/compatibility rules over them. It has no
// dependency on the AST or symbol table — it is pure data plus rules.
package typesystem

import "strings"

// NumericKind distinguishes the two Numeric types. Int is a subtype of
// Float for argument passing and assignment right-hand sides, never the
// reverse.
type NumericKind int

const (
	Int NumericKind = iota
	Float
)

func (k NumericKind) String() string {
	if k == Int {
		return "Int"
	}
	return "Float"
}

// ObjectKind distinguishes the two iteration-domain element kinds.
type ObjectKind int

const (
	Atom ObjectKind = iota
	Bond
)

func (k ObjectKind) String() string {
	if k == Atom {
		return "Atom"
	}
	return "Bond"
}

// ParameterKind distinguishes the three externally supplied lookup-table
// shapes.
type ParameterKind int

const (
	AtomParameter ParameterKind = iota
	BondParameter
	CommonParameter
)

func (k ParameterKind) String() string {
	switch k {
	case AtomParameter:
		return "AtomParameter"
	case BondParameter:
		return "BondParameter"
	default:
		return "CommonParameter"
	}
}

// Type is the interface implemented by every member of the type lattice.
type Type interface {
	String() string
	Equal(Type) bool
}

// TNumeric is the Int/Float type.
type TNumeric struct{ Kind NumericKind }

func (t TNumeric) String() string { return t.Kind.String() }
func (t TNumeric) Equal(o Type) bool {
	other, ok := o.(TNumeric)
	return ok && other.Kind == t.Kind
}

// TObject is the Atom/Bond type.
type TObject struct{ Kind ObjectKind }

func (t TObject) String() string { return t.Kind.String() }
func (t TObject) Equal(o Type) bool {
	other, ok := o.(TObject)
	return ok && other.Kind == t.Kind
}

// TParameter is an indexable externally supplied table, or (for
// CommonParameter) a bare scalar.
type TParameter struct{ Kind ParameterKind }

func (t TParameter) String() string { return t.Kind.String() }
func (t TParameter) Equal(o Type) bool {
	other, ok := o.(TParameter)
	return ok && other.Kind == t.Kind
}

// TArray is an N-dimensional floating-point tensor whose shape is an
// ordered tuple of Object kinds. Two Arrays are equal iff their shape
// tuples are equal.
type TArray struct{ Shape []ObjectKind }

func (t TArray) String() string {
	parts := make([]string, len(t.Shape))
	for i, k := range t.Shape {
		parts[i] = k.String()
	}
	return "Array(" + strings.Join(parts, ",") + ")"
}

func (t TArray) Equal(o Type) bool {
	other, ok := o.(TArray)
	if !ok || len(other.Shape) != len(t.Shape) {
		return false
	}
	for i := range t.Shape {
		if t.Shape[i] != other.Shape[i] {
			return false
		}
	}
	return true
}

// IsVector reports whether t is a rank-1 Array.
func (t TArray) IsVector() bool { return len(t.Shape) == 1 }

// IsMatrix reports whether t is a rank-2 Array.
func (t TArray) IsMatrix() bool { return len(t.Shape) == 2 }

// TFunction is a catalog function signature.
type TFunction struct {
	Args   []Type
	Return Type
}

func (t TFunction) String() string {
	parts := make([]string, len(t.Args))
	for i, a := range t.Args {
		parts[i] = a.String()
	}
	return "(" + strings.Join(parts, ",") + ")->" + t.Return.String()
}

func (t TFunction) Equal(o Type) bool {
	other, ok := o.(TFunction)
	if !ok || len(other.Args) != len(t.Args) || !t.Return.Equal(other.Return) {
		return false
	}
	for i := range t.Args {
		if !t.Args[i].Equal(other.Args[i]) {
			return false
		}
	}
	return true
}

// TPredicate is a catalog predicate signature; it always returns Bool.
type TPredicate struct {
	Args []Type
}

func (t TPredicate) String() string {
	parts := make([]string, len(t.Args))
	for i, a := range t.Args {
		parts[i] = a.String()
	}
	return "(" + strings.Join(parts, ",") + ")->Bool"
}

func (t TPredicate) Equal(o Type) bool {
	other, ok := o.(TPredicate)
	if !ok || len(other.Args) != len(t.Args) {
		return false
	}
	for i := range t.Args {
		if !t.Args[i].Equal(other.Args[i]) {
			return false
		}
	}
	return true
}

// TString is the type of a bare-name or quoted predicate argument such as
// an element symbol.
type TString struct{}

func (TString) String() string      { return "String" }
func (TString) Equal(o Type) bool   { _, ok := o.(TString); return ok }

// TBool is the type of a constraint result.
type TBool struct{}

func (TBool) String() string    { return "Bool" }
func (TBool) Equal(o Type) bool { _, ok := o.(TBool); return ok }

// Convenience constructors, used pervasively by the analyzer and catalog.
var (
	IntType    Type = TNumeric{Kind: Int}
	FloatType  Type = TNumeric{Kind: Float}
	AtomType   Type = TObject{Kind: Atom}
	BondType   Type = TObject{Kind: Bond}
	BoolType   Type = TBool{}
	StringType Type = TString{}
)

// VectorOf and MatrixOf build the Array types over the given Object kinds.
func VectorOf(k ObjectKind) TArray   { return TArray{Shape: []ObjectKind{k}} }
func MatrixOf(r, c ObjectKind) TArray { return TArray{Shape: []ObjectKind{r, c}} }

// IsNumeric reports whether t is Int or Float.
func IsNumeric(t Type) bool { _, ok := t.(TNumeric); return ok }

// IsArray reports whether t is an Array of any rank.
func IsArray(t Type) (TArray, bool) { a, ok := t.(TArray); return a, ok }

// IsObject reports whether t is Atom or Bond, and which.
func IsObject(t Type) (ObjectKind, bool) {
	o, ok := t.(TObject)
	if !ok {
		return 0, false
	}
	return o.Kind, true
}
