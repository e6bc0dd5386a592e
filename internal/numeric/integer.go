// Package numeric implements Mascal's widening integer type: i8 through
// i128 plus ±∞ sentinels, with checked promote-compute-narrow arithmetic.
package numeric

import (
	"math"
	"math/big"

	"github.com/cwbudde/mascal/internal/ast"
	"github.com/cwbudde/mascal/internal/mascalerr"
	"github.com/cwbudde/mascal/internal/token"
)

// Width is the minimal signed width needed to hold an Int's value.
type Width int

const (
	I8 Width = iota
	I16
	I32
	I64
	I128
	PosInf
	NegInf
)

var (
	minI128 = new(big.Int).Lsh(big.NewInt(-1), 127) // -2^127
	maxI128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))

	boundI8Lo  = big.NewInt(-128)
	boundI8Hi  = big.NewInt(127)
	boundI16Lo = big.NewInt(-32768)
	boundI16Hi = big.NewInt(32767)
	boundI32Lo = big.NewInt(-2147483648)
	boundI32Hi = big.NewInt(2147483647)
	boundI64Lo = new(big.Int).Lsh(big.NewInt(-1), 63)
	boundI64Hi = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 63), big.NewInt(1))
)

// Int is a Mascal integer value: either a finite value backed by a
// big.Int narrowed to the minimal i8..i128 width, or one of the two
// infinity sentinels (which carry no payload).
type Int struct {
	width Width
	val   *big.Int // nil for PosInf/NegInf
}

// New constructs the minimal-width Int holding val. val must fit in
// [-2^127, 2^127) — callers that produce values via checked arithmetic
// already guarantee this; New itself does not re-check overflow since it
// is also used to narrow a value already known to be in range.
func New(val *big.Int) Int {
	v := new(big.Int).Set(val)
	return Int{width: widthOf(v), val: v}
}

// FromInt64 constructs an Int from a native int64.
func FromInt64(v int64) Int {
	return New(big.NewInt(v))
}

// FromFloat constructs an Int from f, rounding to the nearest integer
// (ties away from zero), used by the integer/float cast and by integer
// exponentiation with an integer result. Out-of-range values overflow.
func FromFloat(pos token.Position, f float64) (Int, *mascalerr.Error) {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return Int{}, mascalerr.New(mascalerr.OverflowError, pos, "cannot convert non-finite float to integer")
	}
	rounded := math.Round(f)
	bf := new(big.Float).SetFloat64(rounded)
	bi, _ := bf.Int(nil)
	return overflowCheck(pos, bi)
}

// FromString constructs an Int by parsing s as a base-10 integer literal,
// used by the expression evaluator for integer literal nodes. Malformed
// digit text is a LexerError (the lexer's own grammar guarantees s only
// ever contains digits, so this only fires on internal misuse).
func FromString(pos token.Position, s string) (Int, *mascalerr.Error) {
	bi, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Int{}, mascalerr.Newf(mascalerr.LexerError, pos, "malformed integer literal %q", s)
	}
	return overflowCheck(pos, bi)
}

// PositiveInfinity is the +∞ sentinel.
func PositiveInfinity() Int { return Int{width: PosInf} }

// NegativeInfinity is the −∞ sentinel.
func NegativeInfinity() Int { return Int{width: NegInf} }

func widthOf(v *big.Int) Width {
	switch {
	case v.Cmp(boundI8Lo) >= 0 && v.Cmp(boundI8Hi) <= 0:
		return I8
	case v.Cmp(boundI16Lo) >= 0 && v.Cmp(boundI16Hi) <= 0:
		return I16
	case v.Cmp(boundI32Lo) >= 0 && v.Cmp(boundI32Hi) <= 0:
		return I32
	case v.Cmp(boundI64Lo) >= 0 && v.Cmp(boundI64Hi) <= 0:
		return I64
	default:
		return I128
	}
}

// Width reports the minimal width this Int is stored at.
func (n Int) Width() Width { return n.width }

// IsInfinite reports whether n is +∞ or −∞.
func (n Int) IsInfinite() bool { return n.width == PosInf || n.width == NegInf }

// IsPositiveInfinity reports whether n is exactly +∞.
func (n Int) IsPositiveInfinity() bool { return n.width == PosInf }

// IsNegativeInfinity reports whether n is exactly −∞.
func (n Int) IsNegativeInfinity() bool { return n.width == NegInf }

// Big returns n's value as a big.Int. Panics if n is infinite; callers
// must check IsInfinite first.
func (n Int) Big() *big.Int {
	if n.val == nil {
		panic("numeric: Big() called on an infinite Int")
	}
	return new(big.Int).Set(n.val)
}

// Int64 returns n's value narrowed to int64, for contexts (array sizes,
// loop counters over small ranges) that are known in advance to fit.
func (n Int) Int64() int64 {
	return n.val.Int64()
}

// Float64 converts n to a float64, rounding if necessary. Infinities
// convert to math.Inf of the matching sign.
func (n Int) Float64() float64 {
	if n.width == PosInf {
		return math.Inf(1)
	}
	if n.width == NegInf {
		return math.Inf(-1)
	}
	f := new(big.Float).SetInt(n.val)
	v, _ := f.Float64()
	return v
}

// String renders the canonical decimal form ("+Infinity"/"-Infinity" for
// the sentinels).
func (n Int) String() string {
	switch n.width {
	case PosInf:
		return "+Infinity"
	case NegInf:
		return "-Infinity"
	default:
		return n.val.String()
	}
}

// Equals reports value equality, including sentinel-to-sentinel.
func (n Int) Equals(other Int) bool {
	if n.width == PosInf || n.width == NegInf || other.width == PosInf || other.width == NegInf {
		return n.width == other.width
	}
	return n.val.Cmp(other.val) == 0
}

// Compare orders two finite Ints, or ranks an infinity against anything
// (PosInf greatest, NegInf least, equal-signed infinities equal).
func (n Int) Compare(other Int) int {
	rank := func(n Int) (int, bool) {
		switch n.width {
		case PosInf:
			return 1, true
		case NegInf:
			return -1, true
		}
		return 0, false
	}
	if r1, inf1 := rank(n); inf1 {
		if r2, inf2 := rank(other); inf2 {
			if r1 == r2 {
				return 0
			}
			if r1 < r2 {
				return -1
			}
			return 1
		}
		return r1
	}
	if r2, inf2 := rank(other); inf2 {
		return -r2
	}
	return n.val.Cmp(other.val)
}

// overflowCheck narrows a big.Int result into an Int, or reports
// OverflowError if it exceeds the 128-bit signed range.
func overflowCheck(pos token.Position, result *big.Int) (Int, *mascalerr.Error) {
	if result.Cmp(minI128) < 0 || result.Cmp(maxI128) > 0 {
		return Int{}, mascalerr.New(mascalerr.OverflowError, pos, "integer overflow beyond i128 range")
	}
	return New(result), nil
}

func infinityControlDisallows(ctrl ast.InfinityControl) bool {
	return ctrl == ast.DisallowInfinity
}

// verifyInfinityOperand checks that an infinite operand (self or other) is
// permitted given the declaration's InfinityControl attribute. Used by
// Mul, Div and Mod.
func verifyInfinityOperand(pos token.Position, self, other Int, ctrl ast.InfinityControl) *mascalerr.Error {
	if !(self.IsInfinite() || other.IsInfinite()) {
		return nil
	}
	if infinityControlDisallows(ctrl) {
		return mascalerr.New(mascalerr.NonExplicitInfiniteDeclarationError, pos,
			"value has not been explicitly declared to include infinity")
	}
	return nil
}

// verifyInfinitySelf checks a unary operand's infinity against the
// declaration's InfinityControl attribute.
func verifyInfinitySelf(pos token.Position, self Int, ctrl ast.InfinityControl) *mascalerr.Error {
	if !self.IsInfinite() {
		return nil
	}
	if infinityControlDisallows(ctrl) {
		return mascalerr.New(mascalerr.NonExplicitInfiniteDeclarationError, pos,
			"value has not been explicitly declared to include infinity")
	}
	return nil
}

// verifyInfinityCase is add/sub's infinity gate: once infinity is allowed,
// same-signed infinities combine to themselves, opposite-signed infinities
// are an UnallowedInfinityOperationError, and a single infinite operand
// paired with a finite one is fine.
func verifyInfinityCase(pos token.Position, self, other Int, ctrl ast.InfinityControl) (Int, bool, *mascalerr.Error) {
	if !(self.IsInfinite() || other.IsInfinite()) {
		return Int{}, false, nil
	}
	if infinityControlDisallows(ctrl) {
		return Int{}, false, mascalerr.New(mascalerr.NonExplicitInfiniteDeclarationError, pos,
			"value has not been explicitly declared to include infinity")
	}
	switch {
	case self.IsPositiveInfinity() && other.IsPositiveInfinity():
		return PositiveInfinity(), true, nil
	case self.IsNegativeInfinity() && other.IsNegativeInfinity():
		return NegativeInfinity(), true, nil
	case self.IsInfinite() && other.IsInfinite():
		return Int{}, false, mascalerr.New(mascalerr.UnallowedInfinityOperationError, pos,
			"cannot operate this operation with infinities that have different signs")
	case self.IsInfinite():
		return self, true, nil
	default:
		return other, true, nil
	}
}

// Add computes self + other, widening both to 128-bit, checking overflow,
// and re-narrowing.
func (n Int) Add(pos token.Position, other Int, ctrl ast.InfinityControl) (Int, *mascalerr.Error) {
	if result, handled, err := verifyInfinityCase(pos, n, other, ctrl); err != nil || handled {
		return result, err
	}
	sum := new(big.Int).Add(n.val, other.val)
	return overflowCheck(pos, sum)
}

// Sub computes self − other, implemented as self + (−other) so it shares
// Add's infinity-sign handling exactly.
func (n Int) Sub(pos token.Position, other Int, ctrl ast.InfinityControl) (Int, *mascalerr.Error) {
	negOther := other
	switch {
	case other.IsPositiveInfinity():
		negOther = NegativeInfinity()
	case other.IsNegativeInfinity():
		negOther = PositiveInfinity()
	default:
		negOther = New(new(big.Int).Neg(other.val))
	}
	return n.Add(pos, negOther, ctrl)
}

// Mul computes self × other. An infinite operand is always an error: a
// NonExplicitInfiniteDeclarationError under DisallowInfinity, and an
// UnallowedInfinityOperationError under any other InfinityControl.
func (n Int) Mul(pos token.Position, other Int, ctrl ast.InfinityControl) (Int, *mascalerr.Error) {
	if err := verifyInfinityOperand(pos, n, other, ctrl); err != nil {
		return Int{}, err
	}
	if n.IsInfinite() || other.IsInfinite() {
		return Int{}, mascalerr.New(mascalerr.UnallowedInfinityOperationError, pos,
			"cannot multiply infinity")
	}
	product := new(big.Int).Mul(n.val, other.val)
	return overflowCheck(pos, product)
}

// Div computes self ÷ other, truncating toward zero. Division by zero is
// UndefinedOperation.
func (n Int) Div(pos token.Position, other Int, ctrl ast.InfinityControl) (Int, *mascalerr.Error) {
	if err := verifyInfinityOperand(pos, n, other, ctrl); err != nil {
		return Int{}, err
	}
	if n.IsInfinite() || other.IsInfinite() {
		return Int{}, mascalerr.New(mascalerr.UnallowedInfinityOperationError, pos, "cannot divide infinity")
	}
	if other.val.Sign() == 0 {
		return Int{}, mascalerr.New(mascalerr.UndefinedOperation, pos, "division by zero")
	}
	q := new(big.Int).Quo(n.val, other.val)
	return overflowCheck(pos, q)
}

// Mod computes self % other, matching Go's (and Rust's) truncated-division
// remainder semantics. Modulo by zero is UndefinedOperation.
func (n Int) Mod(pos token.Position, other Int, ctrl ast.InfinityControl) (Int, *mascalerr.Error) {
	if err := verifyInfinityOperand(pos, n, other, ctrl); err != nil {
		return Int{}, err
	}
	if n.IsInfinite() || other.IsInfinite() {
		return Int{}, mascalerr.New(mascalerr.UnallowedInfinityOperationError, pos, "cannot modulo infinity")
	}
	if other.val.Sign() == 0 {
		return Int{}, mascalerr.New(mascalerr.UndefinedOperation, pos, "modulo by zero")
	}
	r := new(big.Int).Rem(n.val, other.val)
	return overflowCheck(pos, r)
}

// Neg computes −self.
func (n Int) Neg(pos token.Position, ctrl ast.InfinityControl) (Int, *mascalerr.Error) {
	if err := verifyInfinitySelf(pos, n, ctrl); err != nil {
		return Int{}, err
	}
	if n.IsPositiveInfinity() {
		return NegativeInfinity(), nil
	}
	if n.IsNegativeInfinity() {
		return PositiveInfinity(), nil
	}
	neg := new(big.Int).Neg(n.val)
	return overflowCheck(pos, neg)
}

// Isqrt computes the integer square root. Negative operands are
// UndefinedOperation.
func (n Int) Isqrt(pos token.Position, ctrl ast.InfinityControl) (Int, *mascalerr.Error) {
	if err := verifyInfinitySelf(pos, n, ctrl); err != nil {
		return Int{}, err
	}
	if n.IsInfinite() {
		return Int{}, mascalerr.New(mascalerr.UnallowedInfinityOperationError, pos, "cannot take the square root of infinity")
	}
	if n.val.Sign() < 0 {
		return Int{}, mascalerr.New(mascalerr.UndefinedOperation, pos, "cannot get the square root of a negative number")
	}
	return New(new(big.Int).Sqrt(n.val)), nil
}

// Log2 computes the integer base-2 logarithm. Non-positive operands are
// UndefinedOperation.
func (n Int) Log2(pos token.Position, ctrl ast.InfinityControl) (Int, *mascalerr.Error) {
	return logOperation(pos, n, ctrl, 2)
}

// Log10 computes the integer base-10 logarithm. Non-positive operands are
// UndefinedOperation.
func (n Int) Log10(pos token.Position, ctrl ast.InfinityControl) (Int, *mascalerr.Error) {
	return logOperation(pos, n, ctrl, 10)
}

func logOperation(pos token.Position, n Int, ctrl ast.InfinityControl, base int64) (Int, *mascalerr.Error) {
	if err := verifyInfinitySelf(pos, n, ctrl); err != nil {
		return Int{}, err
	}
	if n.IsInfinite() {
		return Int{}, mascalerr.New(mascalerr.UnallowedInfinityOperationError, pos, "cannot take the logarithm of infinity")
	}
	if n.val.Sign() <= 0 {
		return Int{}, mascalerr.New(mascalerr.UndefinedOperation, pos, "logarithm of a non-positive number")
	}
	count := int64(0)
	rem := new(big.Int).Set(n.val)
	b := big.NewInt(base)
	for rem.Cmp(b) >= 0 {
		rem.Quo(rem, b)
		count++
	}
	return FromInt64(count), nil
}

// Max returns the greater of n and other, per the integer ordering
// implemented by Compare.
func Max(n, other Int) Int {
	if n.Compare(other) >= 0 {
		return n
	}
	return other
}

// Min returns the lesser of n and other.
func Min(n, other Int) Int {
	if n.Compare(other) <= 0 {
		return n
	}
	return other
}
