package runtime

import (
	"github.com/cwbudde/mascal/internal/mascalerr"
	"github.com/cwbudde/mascal/internal/token"
	"github.com/cwbudde/mascal/internal/types"
	"github.com/cwbudde/mascal/internal/value"
)

// coerceForAssignment checks v against the declared shape of vc and
// applies the implicit Integer<->Float promotion §4.7 grants, rejecting
// anything else that does not already match the declared kind. Null is
// accepted only into a nullable slot.
func coerceForAssignment(vc *VarCell, v value.Value, pos token.Position) (value.Value, *mascalerr.Error) {
	if v.Kind == value.Null {
		if vc.IsNullable {
			return value.NullValue(), nil
		}
		return value.Value{}, mascalerr.Newf(mascalerr.ValueError, pos, "variable %q is not nullable", vc.Name)
	}
	t := vc.Type
	if t.IsArray() {
		if err := validateShape(v, t, pos); err != nil {
			return value.Value{}, err
		}
		return value.Cast(pos, v, t)
	}
	switch t.Kind {
	case types.Dynamic:
		return v, nil
	case types.Integer, types.Float:
		if !v.IsNumeric() {
			return value.Value{}, mascalerr.Newf(mascalerr.TypeError, pos, "variable %q expects %s, got %s", vc.Name, t, v.Kind)
		}
		return value.Cast(pos, v, t)
	case types.String:
		if v.Kind != value.String {
			return value.Value{}, mascalerr.Newf(mascalerr.TypeError, pos, "variable %q expects String, got %s", vc.Name, v.Kind)
		}
		return v, nil
	case types.Boolean:
		if v.Kind != value.Boolean {
			return value.Value{}, mascalerr.Newf(mascalerr.TypeError, pos, "variable %q expects Boolean, got %s", vc.Name, v.Kind)
		}
		return v, nil
	case types.TypeKind:
		if v.Kind != value.TypeValue {
			return value.Value{}, mascalerr.Newf(mascalerr.TypeError, pos, "variable %q expects Type, got %s", vc.Name, v.Kind)
		}
		return v, nil
	default:
		return v, nil
	}
}
