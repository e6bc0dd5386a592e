package numeric

import (
	"math/big"
	"testing"

	"github.com/cwbudde/mascal/internal/ast"
	"github.com/cwbudde/mascal/internal/mascalerr"
	"github.com/cwbudde/mascal/internal/token"
)

var zeroPos = token.Position{}

func TestNewPicksMinimalWidth(t *testing.T) {
	tests := []struct {
		val  int64
		want Width
	}{
		{0, I8},
		{127, I8},
		{128, I16},
		{32767, I16},
		{32768, I32},
		{2147483647, I32},
		{2147483648, I64},
	}
	for _, tt := range tests {
		got := FromInt64(tt.val).Width()
		if got != tt.want {
			t.Errorf("FromInt64(%d).Width() = %v, want %v", tt.val, got, tt.want)
		}
	}
}

func TestAddOverflowBeyond128Bits(t *testing.T) {
	a := New(new(big.Int).Set(maxI128))
	_, err := a.Add(zeroPos, FromInt64(1), ast.DisallowInfinity)
	if err == nil || err.Kind != mascalerr.OverflowError {
		t.Fatalf("expected OverflowError, got %v", err)
	}
}

func TestAddWithinRangeRoundTrips(t *testing.T) {
	a := FromInt64(100)
	b := FromInt64(23)
	sum, err := a.Add(zeroPos, b, ast.DisallowInfinity)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.Int64() != 123 {
		t.Fatalf("got %d, want 123", sum.Int64())
	}
}

func TestDivByZero(t *testing.T) {
	_, err := FromInt64(10).Div(zeroPos, FromInt64(0), ast.DisallowInfinity)
	if err == nil || err.Kind != mascalerr.UndefinedOperation {
		t.Fatalf("expected UndefinedOperation, got %v", err)
	}
}

func TestModByZero(t *testing.T) {
	_, err := FromInt64(10).Mod(zeroPos, FromInt64(0), ast.DisallowInfinity)
	if err == nil || err.Kind != mascalerr.UndefinedOperation {
		t.Fatalf("expected UndefinedOperation, got %v", err)
	}
}

func TestInfinityRequiresExplicitDeclaration(t *testing.T) {
	_, err := FromInt64(1).Add(zeroPos, PositiveInfinity(), ast.DisallowInfinity)
	if err == nil || err.Kind != mascalerr.NonExplicitInfiniteDeclarationError {
		t.Fatalf("expected NonExplicitInfiniteDeclarationError, got %v", err)
	}
}

func TestOppositeSignedInfinityAddition(t *testing.T) {
	_, err := PositiveInfinity().Add(zeroPos, NegativeInfinity(), ast.AllowInfinity)
	if err == nil || err.Kind != mascalerr.UnallowedInfinityOperationError {
		t.Fatalf("expected UnallowedInfinityOperationError, got %v", err)
	}
}

func TestSameSignedInfinityAddition(t *testing.T) {
	sum, err := PositiveInfinity().Add(zeroPos, PositiveInfinity(), ast.AllowInfinity)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sum.IsPositiveInfinity() {
		t.Fatalf("expected +Infinity, got %v", sum)
	}
}

func TestMultiplyNeverImplicitlyPermitsInfinity(t *testing.T) {
	_, err := PositiveInfinity().Mul(zeroPos, PositiveInfinity(), ast.AllowInfinity)
	if err == nil || err.Kind != mascalerr.UnallowedInfinityOperationError {
		t.Fatalf("expected UnallowedInfinityOperationError for multiplying infinity, got %v", err)
	}
}

func TestIsqrtNegativeIsUndefinedOperation(t *testing.T) {
	_, err := FromInt64(-4).Isqrt(zeroPos, ast.DisallowInfinity)
	if err == nil || err.Kind != mascalerr.UndefinedOperation {
		t.Fatalf("expected UndefinedOperation, got %v", err)
	}
}

func TestIsqrtPerfectSquare(t *testing.T) {
	got, err := FromInt64(81).Isqrt(zeroPos, ast.DisallowInfinity)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Int64() != 9 {
		t.Fatalf("got %d, want 9", got.Int64())
	}
}

func TestLog2AndLog10(t *testing.T) {
	l2, err := FromInt64(1024).Log2(zeroPos, ast.DisallowInfinity)
	if err != nil || l2.Int64() != 10 {
		t.Fatalf("log2(1024) = %v, err %v", l2, err)
	}
	l10, err := FromInt64(1000).Log10(zeroPos, ast.DisallowInfinity)
	if err != nil || l10.Int64() != 3 {
		t.Fatalf("log10(1000) = %v, err %v", l10, err)
	}
}

func TestLogOfNonPositiveIsUndefinedOperation(t *testing.T) {
	_, err := FromInt64(0).Log2(zeroPos, ast.DisallowInfinity)
	if err == nil || err.Kind != mascalerr.UndefinedOperation {
		t.Fatalf("expected UndefinedOperation, got %v", err)
	}
}

func TestCompareOrdersInfinitiesCorrectly(t *testing.T) {
	if PositiveInfinity().Compare(FromInt64(1000000)) <= 0 {
		t.Fatalf("+Infinity should outrank any finite value")
	}
	if NegativeInfinity().Compare(FromInt64(-1000000)) >= 0 {
		t.Fatalf("-Infinity should underrank any finite value")
	}
	if PositiveInfinity().Compare(PositiveInfinity()) != 0 {
		t.Fatalf("+Infinity should equal +Infinity")
	}
}
