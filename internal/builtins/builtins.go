// Package builtins implements Mascal's built-in callables: Write, Read,
// Length, Append, the numeric helpers (Abs, Sqrt, Pow, Floor, Ceil,
// Round), and TypeOf. Grounded on DWScript's internal/interp/builtins
// package (a name-keyed registry of Go closures taking already-evaluated
// arguments), generalized here so a handful of builtins — Append chief
// among them — can instead take raw argument expressions and resolve one
// to its backing cell, which plain value-based dispatch cannot express.
package builtins

import (
	"io"
	"strings"

	"github.com/cwbudde/mascal/internal/ast"
	"github.com/cwbudde/mascal/internal/mascalerr"
	"github.com/cwbudde/mascal/internal/token"
	"github.com/cwbudde/mascal/internal/value"
)

// Resolver is the evaluation context a builtin runs against, satisfied by
// runtime.Context. Kept as an interface here (rather than importing
// runtime directly) so runtime can import builtins for call dispatch
// without a cycle.
type Resolver interface {
	Eval(expr ast.Expression) (value.Value, *mascalerr.Error)
	Cell(expr ast.Expression) (*value.Cell, *mascalerr.Error)
	Output() io.Writer
}

// Fn is a builtin's implementation: given the call's raw, unevaluated
// argument expressions, a resolver to evaluate them against, and the call
// site's position for diagnostics, it produces the call's result. A
// value-based builtin (Write, Abs, ...) simply resolves every argument via
// r.Eval up front; an expression-based builtin (Append) resolves the
// argument it needs to mutate via r.Cell instead.
type Fn func(args []ast.Expression, r Resolver, pos token.Position) (value.Value, *mascalerr.Error)

// Builtin is one registry entry.
type Builtin struct {
	Name string
	Fn   Fn
}

var registry = map[string]*Builtin{}

// register enters name under all three accepted case forms (Title-Case,
// ALL-UPPER, all-lower), matching token.LookupIdent's keyword casing.
func register(name string, fn Fn) {
	b := &Builtin{Name: name, Fn: fn}
	registry[name] = b
	registry[strings.ToUpper(name)] = b
	registry[strings.ToLower(name)] = b
}

// Lookup finds a builtin by exact name among the three registered case
// forms, returning ok=false if name is not a builtin (a mixed-case
// spelling is not found).
func Lookup(name string) (*Builtin, bool) {
	b, ok := registry[name]
	return b, ok
}

func init() {
	register("Write", builtinWrite)
	register("Read", builtinRead)
	register("Length", builtinLength)
	register("Append", builtinAppend)
	register("Abs", builtinAbs)
	register("Sqrt", builtinSqrt)
	register("Pow", builtinPow)
	register("Floor", builtinFloor)
	register("Ceil", builtinCeil)
	register("Round", builtinRound)
	register("TypeOf", builtinTypeOf)
}

// evalAll resolves every argument expression to a value, in order,
// failing on the first error.
func evalAll(args []ast.Expression, r Resolver) ([]value.Value, *mascalerr.Error) {
	vals := make([]value.Value, len(args))
	for i, a := range args {
		v, err := r.Eval(a)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}

func argCountError(name string, want int, got int, pos token.Position) *mascalerr.Error {
	return mascalerr.Newf(mascalerr.ArgumentError, pos, "%s expects %d argument(s), got %d", name, want, got)
}
