// Package value implements Mascal's runtime value model: the tagged value
// union, the shared mutable cell every array element and variable slot is
// stored in, and the promoting arithmetic/comparison rules that operate on
// values. Grounded on DWScript's internal/interp.Value hierarchy
// (primitives.go's IntegerValue/FloatValue/BooleanValue/StringValue, each a
// small struct implementing a shared Value interface) and its array.go
// ArrayValue{ArrayType, Elements []Value} — but cells are promoted to their
// own addressable type here since Mascal's array-by-reference indexing
// semantics require a shared, mutable slot rather than a plain slice of
// values.
package value

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/mascal/internal/numeric"
	"github.com/cwbudde/mascal/internal/types"
)

// Kind tags the variant of a Value.
type Kind int

const (
	Integer Kind = iota
	Float
	Boolean
	String
	Null
	TypeValue
	StaticArray
	DynamicArray
)

func (k Kind) String() string {
	switch k {
	case Integer:
		return "Integer"
	case Float:
		return "Float"
	case Boolean:
		return "Boolean"
	case String:
		return "String"
	case Null:
		return "Null"
	case TypeValue:
		return "Type"
	case StaticArray:
		return "StaticArray"
	case DynamicArray:
		return "DynamicArray"
	default:
		return "Unknown"
	}
}

// Value is Mascal's tagged runtime value. Only the fields matching Kind are
// meaningful; this mirrors DWScript's one-struct-per-kind design but
// collapsed into a single tagged struct, since Mascal's evaluator (unlike
// DWScript's far larger value hierarchy) never needs to type-switch over
// an open interface — Kind is the only axis of dispatch it needs.
type Value struct {
	Kind    Kind
	Int     numeric.Int
	Float64 float64
	Bool    bool
	Str     string
	Type    *types.Type  // TypeValue payload
	Cells   []*Cell      // StaticArray/DynamicArray payload
	ElemT   *types.Type  // array element type, for typeof/cast bookkeeping
	IsDyn   bool         // array Kind only: dynamic vs static container
}

// Cell is an addressable, mutable slot holding an optional value. Arrays
// share cells by reference: indexing into a container yields the same
// *Cell that lives in it, so writes through an index path mutate in place.
// Grounded on DWScript's ObjectInstance (runtime/object.go), a
// pointer-typed struct whose field-map aliasing is exactly the Go pointer
// aliasing a *Cell gives an array element here.
type Cell struct {
	value *Value
	set   bool
}

// NewCell returns an uninitialized cell.
func NewCell() *Cell {
	return &Cell{}
}

// NewCellWith returns a cell already holding v.
func NewCellWith(v Value) *Cell {
	return &Cell{value: &v, set: true}
}

// Get returns the cell's value and whether it has ever been set.
func (c *Cell) Get() (Value, bool) {
	if !c.set {
		return Value{}, false
	}
	return *c.value, true
}

// Set stores v in the cell.
func (c *Cell) Set(v Value) {
	c.value = &v
	c.set = true
}

// IsSet reports whether the cell has been written.
func (c *Cell) IsSet() bool { return c.set }

// Constructors for the atomic kinds.

func Int(n numeric.Int) Value     { return Value{Kind: Integer, Int: n} }
func Flt(f float64) Value         { return Value{Kind: Float, Float64: f} }
func Bool(b bool) Value           { return Value{Kind: Boolean, Bool: b} }
func Str(s string) Value          { return Value{Kind: String, Str: s} }
func NullValue() Value            { return Value{Kind: Null} }
func TypeVal(t *types.Type) Value { return Value{Kind: TypeValue, Type: t} }

// NewArray constructs an array value of length n, every element an
// uninitialized cell, tagged static or dynamic per isDyn.
func NewArray(elem *types.Type, n int, isDyn bool) Value {
	cells := make([]*Cell, n)
	for i := range cells {
		cells[i] = NewCell()
	}
	kind := StaticArray
	if isDyn {
		kind = DynamicArray
	}
	return Value{Kind: kind, Cells: cells, ElemT: elem, IsDyn: isDyn}
}

// ArrayOf wraps pre-built cells into an array value.
func ArrayOf(elem *types.Type, cells []*Cell, isDyn bool) Value {
	kind := StaticArray
	if isDyn {
		kind = DynamicArray
	}
	return Value{Kind: kind, Cells: cells, ElemT: elem, IsDyn: isDyn}
}

// IsArray reports whether v is a StaticArray or DynamicArray.
func (v Value) IsArray() bool { return v.Kind == StaticArray || v.Kind == DynamicArray }

// IsNumeric reports whether v is an Integer or Float.
func (v Value) IsNumeric() bool { return v.Kind == Integer || v.Kind == Float }

// AsFloat64 returns v's numeric value widened to float64. Callers must
// check IsNumeric first.
func (v Value) AsFloat64() float64 {
	if v.Kind == Integer {
		return v.Int.Float64()
	}
	return v.Float64
}

// TypeOf infers the runtime type descriptor of v, used by the Typeof unary
// operator and the TypeOf built-in. Arrays report their uniform leaf
// element type, or Dynamic when the array is empty or its elements are
// non-uniform in kind.
func (v Value) TypeOf() *types.Type {
	switch v.Kind {
	case Integer:
		return types.Atom(types.Integer)
	case Float:
		return types.Atom(types.Float)
	case Boolean:
		return types.Atom(types.Boolean)
	case String:
		return types.Atom(types.String)
	case Null:
		return types.Atom(types.Dynamic)
	case TypeValue:
		return types.Atom(types.TypeKind)
	case StaticArray, DynamicArray:
		if len(v.Cells) == 0 {
			return types.Atom(types.Dynamic)
		}
		var leaf *types.Type
		for _, c := range v.Cells {
			cv, ok := c.Get()
			if !ok {
				return types.Atom(types.Dynamic)
			}
			t := cv.TypeOf()
			if leaf == nil {
				leaf = t
			} else if !leaf.Equals(t) {
				return types.Atom(types.Dynamic)
			}
		}
		return leaf
	default:
		return types.Atom(types.Dynamic)
	}
}

// String renders v's canonical printed form, used by Write and by String
// casts.
func (v Value) String() string {
	switch v.Kind {
	case Integer:
		return v.Int.String()
	case Float:
		return strconv.FormatFloat(v.Float64, 'g', -1, 64)
	case Boolean:
		if v.Bool {
			return "True"
		}
		return "False"
	case String:
		return v.Str
	case Null:
		return "Null"
	case TypeValue:
		return v.Type.String()
	case StaticArray, DynamicArray:
		parts := make([]string, len(v.Cells))
		for i, c := range v.Cells {
			cv, ok := c.Get()
			if !ok {
				parts[i] = "<uninitialized>"
				continue
			}
			parts[i] = cv.String()
		}
		open, close := "[", "]"
		if v.IsDyn {
			open, close = "<<", ">>"
		}
		return open + strings.Join(parts, ", ") + close
	default:
		return fmt.Sprintf("<unknown value kind %d>", v.Kind)
	}
}
