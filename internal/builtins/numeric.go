package builtins

import (
	"math"

	"github.com/cwbudde/mascal/internal/ast"
	"github.com/cwbudde/mascal/internal/mascalerr"
	"github.com/cwbudde/mascal/internal/numeric"
	"github.com/cwbudde/mascal/internal/token"
	"github.com/cwbudde/mascal/internal/value"
)

func oneNumericArg(name string, args []ast.Expression, r Resolver, pos token.Position) (value.Value, *mascalerr.Error) {
	if len(args) != 1 {
		return value.Value{}, argCountError(name, 1, len(args), pos)
	}
	v, err := r.Eval(args[0])
	if err != nil {
		return value.Value{}, err
	}
	if !v.IsNumeric() {
		return value.Value{}, mascalerr.Newf(mascalerr.TypeError, pos, "%s requires a numeric argument, got %s", name, v.Kind)
	}
	return v, nil
}

func builtinAbs(args []ast.Expression, r Resolver, pos token.Position) (value.Value, *mascalerr.Error) {
	v, err := oneNumericArg("Abs", args, r, pos)
	if err != nil {
		return value.Value{}, err
	}
	if v.Kind == value.Integer {
		zero := numeric.FromInt64(0)
		if v.Int.Compare(zero) < 0 {
			n, err := zero.Sub(pos, v.Int, ast.DisallowInfinity)
			if err != nil {
				return value.Value{}, err
			}
			return value.Int(n), nil
		}
		return v, nil
	}
	return value.Flt(math.Abs(v.Float64)), nil
}

func builtinSqrt(args []ast.Expression, r Resolver, pos token.Position) (value.Value, *mascalerr.Error) {
	v, err := oneNumericArg("Sqrt", args, r, pos)
	if err != nil {
		return value.Value{}, err
	}
	f := v.AsFloat64()
	if f < 0 {
		return value.Value{}, mascalerr.New(mascalerr.ValueError, pos, "Sqrt requires a non-negative argument")
	}
	return value.Flt(math.Sqrt(f)), nil
}

func builtinPow(args []ast.Expression, r Resolver, pos token.Position) (value.Value, *mascalerr.Error) {
	if len(args) != 2 {
		return value.Value{}, argCountError("Pow", 2, len(args), pos)
	}
	base, err := r.Eval(args[0])
	if err != nil {
		return value.Value{}, err
	}
	exp, err := r.Eval(args[1])
	if err != nil {
		return value.Value{}, err
	}
	return value.Binary(pos, "^", base, exp, ast.DisallowInfinity)
}

func builtinFloor(args []ast.Expression, r Resolver, pos token.Position) (value.Value, *mascalerr.Error) {
	v, err := oneNumericArg("Floor", args, r, pos)
	if err != nil {
		return value.Value{}, err
	}
	if v.Kind == value.Integer {
		return v, nil
	}
	n, merr := numeric.FromFloat(pos, math.Floor(v.Float64))
	if merr != nil {
		return value.Value{}, merr
	}
	return value.Int(n), nil
}

func builtinCeil(args []ast.Expression, r Resolver, pos token.Position) (value.Value, *mascalerr.Error) {
	v, err := oneNumericArg("Ceil", args, r, pos)
	if err != nil {
		return value.Value{}, err
	}
	if v.Kind == value.Integer {
		return v, nil
	}
	n, merr := numeric.FromFloat(pos, math.Ceil(v.Float64))
	if merr != nil {
		return value.Value{}, merr
	}
	return value.Int(n), nil
}

func builtinRound(args []ast.Expression, r Resolver, pos token.Position) (value.Value, *mascalerr.Error) {
	v, err := oneNumericArg("Round", args, r, pos)
	if err != nil {
		return value.Value{}, err
	}
	if v.Kind == value.Integer {
		return v, nil
	}
	n, merr := numeric.FromFloat(pos, math.Round(v.Float64))
	if merr != nil {
		return value.Value{}, merr
	}
	return value.Int(n), nil
}

func builtinTypeOf(args []ast.Expression, r Resolver, pos token.Position) (value.Value, *mascalerr.Error) {
	if len(args) != 1 {
		return value.Value{}, argCountError("TypeOf", 1, len(args), pos)
	}
	v, err := r.Eval(args[0])
	if err != nil {
		return value.Value{}, err
	}
	return value.TypeVal(v.TypeOf()), nil
}
