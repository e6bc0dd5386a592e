package value

import (
	"github.com/cwbudde/mascal/internal/mascalerr"
	"github.com/cwbudde/mascal/internal/numeric"
	"github.com/cwbudde/mascal/internal/token"
	"github.com/cwbudde/mascal/internal/types"
)

// Cast converts v to the atomic or array type target, per §4.7's cast
// rules: integer<->float rounds to nearest, any value casts to String via
// its canonical printed form, and array casts recurse element-wise
// (Dynamic element type passes values through unconverted).
func Cast(pos token.Position, v Value, target *types.Type) (Value, *mascalerr.Error) {
	switch target.Kind {
	case types.Integer:
		switch v.Kind {
		case Integer:
			return v, nil
		case Float:
			n, err := numeric.FromFloat(pos, v.Float64)
			if err != nil {
				return Value{}, err
			}
			return Int(n), nil
		}
	case types.Float:
		switch v.Kind {
		case Float:
			return v, nil
		case Integer:
			return Flt(v.Int.Float64()), nil
		}
	case types.String:
		return Str(v.String()), nil
	case types.Boolean:
		if v.Kind == Boolean {
			return v, nil
		}
	case types.Dynamic:
		return v, nil
	case types.StaticArray, types.DynamicArray:
		if !v.IsArray() {
			break
		}
		cells := make([]*Cell, len(v.Cells))
		for i, c := range v.Cells {
			cv, ok := c.Get()
			if !ok {
				cells[i] = NewCell()
				continue
			}
			if target.Element.Kind == types.Dynamic {
				cells[i] = NewCellWith(cv)
				continue
			}
			converted, err := Cast(pos, cv, target.Element)
			if err != nil {
				return Value{}, err
			}
			cells[i] = NewCellWith(converted)
		}
		return ArrayOf(target.Element, cells, target.Kind == types.DynamicArray), nil
	}
	return Value{}, mascalerr.Newf(mascalerr.TypeError, pos, "cannot cast %s to %s", v.Kind, target)
}

// Copy returns a deep copy of v: array cells are duplicated rather than
// shared, used when materializing an initializer's value into a freshly
// declared slot so the new variable does not alias the expression's
// temporary array.
func Copy(v Value) Value {
	if !v.IsArray() {
		return v
	}
	cells := make([]*Cell, len(v.Cells))
	for i, c := range v.Cells {
		cv, ok := c.Get()
		if !ok {
			cells[i] = NewCell()
			continue
		}
		cells[i] = NewCellWith(Copy(cv))
	}
	return ArrayOf(v.ElemT, cells, v.IsDyn)
}
