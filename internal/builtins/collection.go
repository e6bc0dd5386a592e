package builtins

import (
	"github.com/cwbudde/mascal/internal/ast"
	"github.com/cwbudde/mascal/internal/mascalerr"
	"github.com/cwbudde/mascal/internal/numeric"
	"github.com/cwbudde/mascal/internal/token"
	"github.com/cwbudde/mascal/internal/types"
	"github.com/cwbudde/mascal/internal/value"
)

// builtinLength returns a String's rune count or an array's element count.
func builtinLength(args []ast.Expression, r Resolver, pos token.Position) (value.Value, *mascalerr.Error) {
	if len(args) != 1 {
		return value.Value{}, argCountError("Length", 1, len(args), pos)
	}
	v, err := r.Eval(args[0])
	if err != nil {
		return value.Value{}, err
	}
	switch {
	case v.Kind == value.String:
		return value.Int(numeric.FromInt64(int64(len([]rune(v.Str))))), nil
	case v.IsArray():
		return value.Int(numeric.FromInt64(int64(len(v.Cells)))), nil
	default:
		return value.Value{}, mascalerr.Newf(mascalerr.TypeError, pos, "Length requires a String or array, got %s", v.Kind)
	}
}

// builtinAppend is expression-based: it resolves its first argument to its
// backing cell (Append mutates the receiver array in place, per the
// language's array-by-reference rules) and requires it to currently hold a
// DynamicArray. The second argument is cast to the array's element type
// unless that type is Dynamic.
func builtinAppend(args []ast.Expression, r Resolver, pos token.Position) (value.Value, *mascalerr.Error) {
	if len(args) != 2 {
		return value.Value{}, argCountError("Append", 2, len(args), pos)
	}
	cell, err := r.Cell(args[0])
	if err != nil {
		return value.Value{}, err
	}
	arr, set := cell.Get()
	if !set {
		return value.Value{}, mascalerr.New(mascalerr.ValueError, pos, "Append target read before assignment")
	}
	if arr.Kind != value.DynamicArray {
		return value.Value{}, mascalerr.Newf(mascalerr.TypeError, pos, "Append requires a dynamic array, got %s", arr.Kind)
	}
	elem, err := r.Eval(args[1])
	if err != nil {
		return value.Value{}, err
	}
	if arr.ElemT != nil && arr.ElemT.Kind != types.Dynamic {
		elem, err = value.Cast(pos, elem, arr.ElemT)
		if err != nil {
			return value.Value{}, err
		}
	}
	cells := append(append([]*value.Cell{}, arr.Cells...), value.NewCellWith(elem))
	updated := value.ArrayOf(arr.ElemT, cells, true)
	cell.Set(updated)
	return updated, nil
}
