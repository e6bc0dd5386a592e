package runtime

import (
	"github.com/cwbudde/mascal/internal/ast"
	"github.com/cwbudde/mascal/internal/mascalerr"
	"github.com/cwbudde/mascal/internal/token"
	"github.com/cwbudde/mascal/internal/types"
	"github.com/cwbudde/mascal/internal/value"
)

// atomicKindToType maps a parsed atomic-kind tag to its processed atomic
// type descriptor.
func atomicKindToType(k ast.AtomicKind) *types.Type {
	switch k {
	case ast.KindInteger:
		return types.Atom(types.Integer)
	case ast.KindFloat:
		return types.Atom(types.Float)
	case ast.KindString:
		return types.Atom(types.String)
	case ast.KindBoolean:
		return types.Atom(types.Boolean)
	case ast.KindDynamic:
		return types.Atom(types.Dynamic)
	case ast.KindType:
		return types.Atom(types.TypeKind)
	default:
		return types.Atom(types.Dynamic)
	}
}

// evalArraySize evaluates a size expression and requires it to be a
// non-negative Integer.
func evalArraySize(expr ast.Expression, ctx *Context) (int, *mascalerr.Error) {
	v, err := EvalExpr(expr, ctx)
	if err != nil {
		return 0, err
	}
	if v.Kind != value.Integer {
		return 0, mascalerr.New(mascalerr.TypeError, expr.Pos(), "array dimension size must be Integer")
	}
	n := v.Int.Int64()
	if n < 0 {
		return 0, mascalerr.New(mascalerr.ValueError, expr.Pos(), "array dimension size must not be negative")
	}
	return int(n), nil
}

// resolveDeclType builds the processed type of a variable declaration,
// evaluating its dimension-size expressions (outermost dimension first in
// decl.Dimensions, so the nested Type tree is built innermost-out).
func resolveDeclType(decl *ast.VariableDecl, ctx *Context) (*types.Type, *mascalerr.Error) {
	t := atomicKindToType(decl.Atomic)
	for i := len(decl.Dimensions) - 1; i >= 0; i-- {
		dim := decl.Dimensions[i]
		isDyn := decl.IsDynamicAt[i]
		if isDyn {
			if dim == nil {
				t = types.NewDynamicArray(t, 0, false)
				continue
			}
			n, err := evalArraySize(dim, ctx)
			if err != nil {
				return nil, err
			}
			t = types.NewDynamicArray(t, n, true)
			continue
		}
		n, err := evalArraySize(dim, ctx)
		if err != nil {
			return nil, err
		}
		t = types.NewStaticArray(t, n)
	}
	return t, nil
}

// resolveUnprocessedType builds a processed type from a parsed type tree
// (a TypeExpression's payload, or a function's declared return type).
func resolveUnprocessedType(ut *ast.UnprocessedType, ctx *Context) (*types.Type, *mascalerr.Error) {
	if ut.IsAtom {
		return atomicKindToType(ut.Atomic), nil
	}
	elem, err := resolveUnprocessedType(ut.Element, ctx)
	if err != nil {
		return nil, err
	}
	if ut.IsDynamic {
		if ut.InitialSize == nil {
			return types.NewDynamicArray(elem, 0, false), nil
		}
		n, err := evalArraySize(ut.InitialSize, ctx)
		if err != nil {
			return nil, err
		}
		return types.NewDynamicArray(elem, n, true), nil
	}
	n, err := evalArraySize(ut.Size, ctx)
	if err != nil {
		return nil, err
	}
	return types.NewStaticArray(elem, n), nil
}

// materializeArray builds the all-uninitialized cell graph for a freshly
// declared array, recursing so that an array-of-arrays has a live,
// independent sub-array value at each element from the start rather than
// an unset cell (§4.7: "nested arrays are materialized recursively").
func materializeArray(t *types.Type) value.Value {
	n := t.Size
	if t.Kind == types.DynamicArray {
		if t.HasInitial {
			n = t.InitialSize
		} else {
			n = 0
		}
	}
	cells := make([]*value.Cell, n)
	for i := range cells {
		if t.Element.IsArray() {
			cells[i] = value.NewCellWith(materializeArray(t.Element))
		} else {
			cells[i] = value.NewCell()
		}
	}
	return value.ArrayOf(t.Element, cells, t.Kind == types.DynamicArray)
}

// validateShape checks an array-valued RHS against a declared array type's
// shape before assignment: static arrays must match the declared length
// and dynamic flag exactly; the check recurses into array-of-array
// elements. Leaf atomic elements are left to value.Cast.
func validateShape(v value.Value, t *types.Type, at token.Position) *mascalerr.Error {
	if !v.IsArray() {
		return mascalerr.Newf(mascalerr.TypeError, at, "expected %s, got %s", t, v.Kind)
	}
	if t.Kind == types.StaticArray {
		if v.IsDyn || len(v.Cells) != t.Size {
			return mascalerr.Newf(mascalerr.TypeError, at, "array shape mismatch: expected %s", t)
		}
	} else if !v.IsDyn {
		return mascalerr.Newf(mascalerr.TypeError, at, "array shape mismatch: expected %s", t)
	}
	if t.Element.IsArray() {
		for _, c := range v.Cells {
			cv, ok := c.Get()
			if !ok {
				continue
			}
			if err := validateShape(cv, t.Element, at); err != nil {
				return err
			}
		}
	}
	return nil
}
