package runtime

import (
	"github.com/cwbudde/mascal/internal/ast"
	"github.com/cwbudde/mascal/internal/mascalerr"
	"github.com/cwbudde/mascal/internal/numeric"
	"github.com/cwbudde/mascal/internal/types"
	"github.com/cwbudde/mascal/internal/value"
)

// EvalExpr evaluates expr against ctx's table, dispatching on the concrete
// AST node type. Grounded on DWScript's internal/interp Eval switch,
// generalized from its many value kinds down to Mascal's value.Value tag
// and adapted for Mascal's flat (non-nested) variable scoping.
func EvalExpr(expr ast.Expression, ctx *Context) (value.Value, *mascalerr.Error) {
	switch e := expr.(type) {
	case *ast.IntegerLiteral:
		n, err := numeric.FromString(e.Pos(), e.Literal)
		if err != nil {
			return value.Value{}, err
		}
		return value.Int(n), nil
	case *ast.FloatLiteral:
		return value.Flt(e.Value), nil
	case *ast.StringLiteral:
		return value.Str(e.Value), nil
	case *ast.BooleanLiteral:
		return value.Bool(e.Value), nil
	case *ast.NullLiteral:
		return value.NullValue(), nil
	case *ast.TypeExpression:
		t, err := resolveUnprocessedType(e.Type, ctx)
		if err != nil {
			return value.Value{}, err
		}
		return value.TypeVal(t), nil
	case *ast.Identifier:
		return evalIdentifier(e, ctx)
	case *ast.StaticArrayLiteral:
		return evalArrayLiteral(e.Elements, false, ctx)
	case *ast.DynamicArrayLiteral:
		return evalArrayLiteral(e.Elements, true, ctx)
	case *ast.GroupedExpression:
		return EvalExpr(e.Expression, ctx)
	case *ast.UnaryExpression:
		right, err := EvalExpr(e.Right, ctx)
		if err != nil {
			return value.Value{}, err
		}
		return value.Unary(e.Pos(), e.Operator, right, ast.DisallowInfinity)
	case *ast.BinaryExpression:
		left, err := EvalExpr(e.Left, ctx)
		if err != nil {
			return value.Value{}, err
		}
		right, err := EvalExpr(e.Right, ctx)
		if err != nil {
			return value.Value{}, err
		}
		return value.Binary(e.Pos(), e.Operator, left, right, ast.DisallowInfinity)
	case *ast.CallExpression:
		return dispatchCall(e.Function.Value, e.Arguments, e.Pos(), ctx)
	case *ast.IndexExpression:
		return evalIndex(e, ctx)
	case *ast.MemberExpression:
		return evalMember(e, ctx)
	default:
		return value.Value{}, mascalerr.Newf(mascalerr.RuntimeError, expr.Pos(), "cannot evaluate expression of type %T", expr)
	}
}

// evalIdentifier implements the plain-variable-read rule: an uninitialized
// nullable cell reads back as Null, an uninitialized non-nullable cell is
// a RuntimeError, and an initialized cell reads its value.
func evalIdentifier(e *ast.Identifier, ctx *Context) (value.Value, *mascalerr.Error) {
	vc, ok := ctx.Table.Get(e.Value)
	if !ok {
		return value.Value{}, mascalerr.Newf(mascalerr.RuntimeError, e.Pos(), "undefined variable %q", e.Value)
	}
	v, set := vc.Cell.Get()
	if !set {
		if vc.IsNullable {
			return value.NullValue(), nil
		}
		return value.Value{}, mascalerr.Newf(mascalerr.RuntimeError, e.Pos(), "variable %q read before assignment", e.Value)
	}
	return v, nil
}

// evalArrayLiteral evaluates each element expression and wraps the results
// in fresh cells, inferring the array's leaf element type the same way
// Value.TypeOf does: a uniform leaf kind across elements, or Dynamic when
// the literal is empty or its elements disagree in kind.
func evalArrayLiteral(elements []ast.Expression, isDyn bool, ctx *Context) (value.Value, *mascalerr.Error) {
	cells := make([]*value.Cell, len(elements))
	var leaf *types.Type
	mixed := false
	for i, elExpr := range elements {
		v, err := EvalExpr(elExpr, ctx)
		if err != nil {
			return value.Value{}, err
		}
		cells[i] = value.NewCellWith(v)
		t := v.TypeOf()
		if leaf == nil {
			leaf = t
		} else if !leaf.Equals(t) {
			mixed = true
		}
	}
	if leaf == nil || mixed {
		leaf = types.Atom(types.Dynamic)
	}
	return value.ArrayOf(leaf, cells, isDyn), nil
}

// evalIndex evaluates an IndexExpression. Strings index as single
// characters with no backing cell and never accept the dynamic-bracket
// form; everything else indexes into an array's shared cell, so reading
// an uninitialized element is always a ValueError regardless of the
// array's own nullability (the array itself is never nullable per
// element — only the declared variable slot is).
func evalIndex(e *ast.IndexExpression, ctx *Context) (value.Value, *mascalerr.Error) {
	container, err := EvalExpr(e.Array, ctx)
	if err != nil {
		return value.Value{}, err
	}
	if container.Kind == value.String {
		if e.IsDynamic {
			return value.Value{}, mascalerr.New(mascalerr.TypeError, e.Pos(), "String does not support <<...>> indexing")
		}
		idxVal, err := EvalExpr(e.Index, ctx)
		if err != nil {
			return value.Value{}, err
		}
		if idxVal.Kind != value.Integer {
			return value.Value{}, mascalerr.New(mascalerr.TypeError, e.Pos(), "String index must be Integer")
		}
		runes := []rune(container.Str)
		i := int(idxVal.Int.Int64())
		if i < 0 {
			i += len(runes)
		}
		if i < 0 || i >= len(runes) {
			return value.Value{}, mascalerr.Newf(mascalerr.IndexError, e.Pos(), "index %d out of bounds for string of length %d", idxVal.Int.Int64(), len(runes))
		}
		return value.Str(string(runes[i])), nil
	}
	cell, err := indexCellForRead(e, container, ctx)
	if err != nil {
		return value.Value{}, err
	}
	v, set := cell.Get()
	if !set {
		return value.Value{}, mascalerr.New(mascalerr.ValueError, e.Pos(), "array element read before assignment")
	}
	return v, nil
}
