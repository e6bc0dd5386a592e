package value

import (
	"math"

	"github.com/cwbudde/mascal/internal/ast"
	"github.com/cwbudde/mascal/internal/mascalerr"
	"github.com/cwbudde/mascal/internal/numeric"
	"github.com/cwbudde/mascal/internal/token"
)

// Binary evaluates a binary operator over two already-evaluated values.
// ctrl is the InfinityControl that integer operands are checked against.
// Both callers, the expression evaluator and the Pow builtin, pass
// ast.DisallowInfinity; no per-declaration attribute reaches this function.
// Grounded on DWScript's internal/interp/operators_eval.go dispatch
// table, generalized from DWScript's many numeric kinds down to Mascal's
// Integer/Float pair plus the widening-integer promotion rule §4.7 adds.
func Binary(pos token.Position, op string, left, right Value, ctrl ast.InfinityControl) (Value, *mascalerr.Error) {
	switch op {
	case "+":
		return add(pos, left, right, ctrl)
	case "-":
		return arithNumeric(pos, left, right, ctrl, "-")
	case "*":
		return arithNumeric(pos, left, right, ctrl, "*")
	case "/":
		return arithNumeric(pos, left, right, ctrl, "/")
	case "%":
		return arithNumeric(pos, left, right, ctrl, "%")
	case "^":
		return power(pos, left, right)
	case "=":
		return equals(left, right), nil
	case "!=":
		eq := equals(left, right)
		return Bool(!eq.Bool), nil
	case "<", ">", "<=", ">=":
		return compare(pos, op, left, right)
	case "And":
		return logical(pos, op, left, right)
	case "Or":
		return logical(pos, op, left, right)
	default:
		return Value{}, mascalerr.Newf(mascalerr.UndefinedOperation, pos, "unknown operator %q", op)
	}
}

func add(pos token.Position, left, right Value, ctrl ast.InfinityControl) (Value, *mascalerr.Error) {
	switch {
	case left.Kind == String && right.Kind == String:
		return Str(left.Str + right.Str), nil
	case left.IsArray() && right.IsArray() && left.IsDyn && right.IsDyn:
		cells := make([]*Cell, 0, len(left.Cells)+len(right.Cells))
		cells = append(cells, left.Cells...)
		cells = append(cells, right.Cells...)
		elem := left.ElemT
		if elem == nil {
			elem = right.ElemT
		}
		return ArrayOf(elem, cells, true), nil
	case left.IsNumeric() && right.IsNumeric():
		return arithNumeric(pos, left, right, ctrl, "+")
	default:
		return Value{}, mascalerr.Newf(mascalerr.UndefinedOperation, pos,
			"cannot add %s and %s", left.Kind, right.Kind)
	}
}

// arithNumeric implements -, *, /, % (and the numeric leg of +), promoting
// Integer-op-Float to Float and otherwise dispatching to the widening
// integer arithmetic in internal/numeric.
func arithNumeric(pos token.Position, left, right Value, ctrl ast.InfinityControl, op string) (Value, *mascalerr.Error) {
	if !left.IsNumeric() || !right.IsNumeric() {
		return Value{}, mascalerr.Newf(mascalerr.UndefinedOperation, pos,
			"cannot apply %q to %s and %s", op, left.Kind, right.Kind)
	}
	if left.Kind == Float || right.Kind == Float {
		return floatArith(pos, left.AsFloat64(), right.AsFloat64(), op)
	}
	var n numeric.Int
	var err *mascalerr.Error
	switch op {
	case "+":
		n, err = left.Int.Add(pos, right.Int, ctrl)
	case "-":
		n, err = left.Int.Sub(pos, right.Int, ctrl)
	case "*":
		n, err = left.Int.Mul(pos, right.Int, ctrl)
	case "/":
		n, err = left.Int.Div(pos, right.Int, ctrl)
	case "%":
		n, err = left.Int.Mod(pos, right.Int, ctrl)
	}
	if err != nil {
		return Value{}, err
	}
	return Int(n), nil
}

func floatArith(pos token.Position, a, b float64, op string) (Value, *mascalerr.Error) {
	var r float64
	switch op {
	case "+":
		r = a + b
	case "-":
		r = a - b
	case "*":
		r = a * b
	case "/":
		if b == 0 {
			return Value{}, mascalerr.New(mascalerr.UndefinedOperation, pos, "division by zero")
		}
		r = a / b
	case "%":
		if b == 0 {
			return Value{}, mascalerr.New(mascalerr.UndefinedOperation, pos, "modulo by zero")
		}
		r = math.Mod(a, b)
	}
	if math.IsInf(a, 0) == false && math.IsInf(b, 0) == false && math.IsInf(r, 0) {
		return Value{}, mascalerr.New(mascalerr.OverflowError, pos, "floating point operation overflowed")
	}
	return Flt(r), nil
}

func power(pos token.Position, left, right Value) (Value, *mascalerr.Error) {
	if !left.IsNumeric() || !right.IsNumeric() {
		return Value{}, mascalerr.Newf(mascalerr.UndefinedOperation, pos,
			"cannot raise %s to the power of %s", left.Kind, right.Kind)
	}
	base := left.AsFloat64()
	if base <= 0 {
		return Value{}, mascalerr.New(mascalerr.UndefinedOperation, pos, "exponentiation requires a positive base")
	}
	exp := right.AsFloat64()
	r := math.Pow(base, exp)
	if math.IsInf(r, 0) {
		return Value{}, mascalerr.New(mascalerr.OverflowError, pos, "exponentiation overflowed")
	}
	if left.Kind == Integer && right.Kind == Integer && exp == math.Trunc(exp) && exp >= 0 {
		n, err := numeric.FromFloat(pos, r)
		if err != nil {
			return Value{}, err
		}
		return Int(n), nil
	}
	return Flt(r), nil
}

func logical(pos token.Position, op string, left, right Value) (Value, *mascalerr.Error) {
	if left.Kind != Boolean || right.Kind != Boolean {
		return Value{}, mascalerr.Newf(mascalerr.UndefinedOperation, pos,
			"%s requires two Boolean operands, got %s and %s", op, left.Kind, right.Kind)
	}
	if op == "And" {
		return Bool(left.Bool && right.Bool), nil
	}
	return Bool(left.Bool || right.Bool), nil
}

func equals(left, right Value) Value {
	if left.Kind == Null || right.Kind == Null {
		return Bool(left.Kind == Null && right.Kind == Null)
	}
	switch {
	case left.IsNumeric() && right.IsNumeric():
		if left.Kind == Integer && right.Kind == Integer {
			return Bool(left.Int.Equals(right.Int))
		}
		return Bool(left.AsFloat64() == right.AsFloat64())
	case left.Kind == Boolean && right.Kind == Boolean:
		return Bool(left.Bool == right.Bool)
	case left.Kind == String && right.Kind == String:
		return Bool(left.Str == right.Str)
	case left.IsArray() && right.IsArray():
		if len(left.Cells) != len(right.Cells) {
			return Bool(false)
		}
		for i := range left.Cells {
			lv, lok := left.Cells[i].Get()
			rv, rok := right.Cells[i].Get()
			if lok != rok {
				return Bool(false)
			}
			if lok && !equals(lv, rv).Bool {
				return Bool(false)
			}
		}
		return Bool(true)
	default:
		return Bool(false)
	}
}

func compare(pos token.Position, op string, left, right Value) (Value, *mascalerr.Error) {
	var c int
	switch {
	case left.IsArray() || right.IsArray():
		return Value{}, mascalerr.Newf(mascalerr.UndefinedOperation, pos, "cannot order arrays with %q", op)
	case left.IsNumeric() && right.IsNumeric():
		if left.Kind == Integer && right.Kind == Integer {
			c = left.Int.Compare(right.Int)
		} else {
			a, b := left.AsFloat64(), right.AsFloat64()
			switch {
			case a < b:
				c = -1
			case a > b:
				c = 1
			default:
				c = 0
			}
		}
	case left.Kind == String && right.Kind == String:
		switch {
		case left.Str < right.Str:
			c = -1
		case left.Str > right.Str:
			c = 1
		default:
			c = 0
		}
	default:
		return Value{}, mascalerr.Newf(mascalerr.UndefinedOperation, pos,
			"cannot compare %s and %s", left.Kind, right.Kind)
	}
	switch op {
	case "<":
		return Bool(c < 0), nil
	case ">":
		return Bool(c > 0), nil
	case "<=":
		return Bool(c <= 0), nil
	case ">=":
		return Bool(c >= 0), nil
	}
	return Value{}, mascalerr.Newf(mascalerr.UndefinedOperation, pos, "unknown comparison operator %q", op)
}

// Unary evaluates a prefix operator over v.
func Unary(pos token.Position, op string, v Value, ctrl ast.InfinityControl) (Value, *mascalerr.Error) {
	switch op {
	case "Not":
		if v.Kind != Boolean {
			return Value{}, mascalerr.Newf(mascalerr.UndefinedOperation, pos, "Not requires a Boolean, got %s", v.Kind)
		}
		return Bool(!v.Bool), nil
	case "Minus":
		switch v.Kind {
		case Integer:
			n, err := v.Int.Neg(pos, ctrl)
			if err != nil {
				return Value{}, err
			}
			return Int(n), nil
		case Float:
			return Flt(-v.Float64), nil
		default:
			return Value{}, mascalerr.Newf(mascalerr.UndefinedOperation, pos, "cannot negate %s", v.Kind)
		}
	case "Typeof":
		return TypeVal(v.TypeOf()), nil
	default:
		return Value{}, mascalerr.Newf(mascalerr.UndefinedOperation, pos, "unknown unary operator %q", op)
	}
}
