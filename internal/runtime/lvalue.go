package runtime

import (
	"github.com/cwbudde/mascal/internal/ast"
	"github.com/cwbudde/mascal/internal/mascalerr"
	"github.com/cwbudde/mascal/internal/value"
)

// resolveLValueCell resolves expr to the addressable cell it names:
// a bare identifier's own cell, or the cell an index chain bottoms out
// at. Anything else (a literal, a call, an arithmetic expression) is not
// addressable.
func resolveLValueCell(expr ast.Expression, ctx *Context) (*value.Cell, *mascalerr.Error) {
	switch e := expr.(type) {
	case *ast.Identifier:
		vc, ok := ctx.Table.Get(e.Value)
		if !ok {
			return nil, mascalerr.Newf(mascalerr.RuntimeError, e.Pos(), "undefined variable %q", e.Value)
		}
		return vc.Cell, nil
	case *ast.IndexExpression:
		containerVal, err := EvalExpr(e.Array, ctx)
		if err != nil {
			return nil, err
		}
		return indexCellForAssign(e, containerVal, ctx)
	default:
		return nil, mascalerr.New(mascalerr.RuntimeError, expr.Pos(), "expression is not addressable")
	}
}

// tryResolveCell is the non-erroring variant used to decide whether a call
// argument has a backing cell eligible for Mut/array aliasing. It reports
// ok=false instead of an error for any non-addressable expression or
// runtime failure encountered while resolving the chain.
func tryResolveCell(expr ast.Expression, ctx *Context) (*value.Cell, bool) {
	switch expr.(type) {
	case *ast.Identifier, *ast.IndexExpression:
		cell, err := resolveLValueCell(expr, ctx)
		if err != nil {
			return nil, false
		}
		return cell, true
	default:
		return nil, false
	}
}

// indexCellForRead resolves a single index step against an already-evaluated
// container value for a read, returning the shared cell the index names.
// Negative indices count from the end (§4.7). A dynamic-bracket mismatch
// on a read is an IndexError (the array is there, the wrong bracket form
// was used to reach into it).
func indexCellForRead(ie *ast.IndexExpression, container value.Value, ctx *Context) (*value.Cell, *mascalerr.Error) {
	return indexCell(ie, container, ctx, mascalerr.IndexError)
}

// indexCellForAssign is indexCellForRead's counterpart for an assignment
// target: a dynamic-bracket mismatch there is a TypeError, since the
// target expression names the wrong shape of value to write through.
func indexCellForAssign(ie *ast.IndexExpression, container value.Value, ctx *Context) (*value.Cell, *mascalerr.Error) {
	return indexCell(ie, container, ctx, mascalerr.TypeError)
}

func indexCell(ie *ast.IndexExpression, container value.Value, ctx *Context, bracketMismatchKind mascalerr.Kind) (*value.Cell, *mascalerr.Error) {
	if !container.IsArray() {
		return nil, mascalerr.Newf(mascalerr.TypeError, ie.Pos(), "cannot index %s", container.Kind)
	}
	if ie.IsDynamic != container.IsDyn {
		want := "[...]"
		if container.IsDyn {
			want = "<<...>>"
		}
		return nil, mascalerr.Newf(bracketMismatchKind, ie.Pos(), "use %s to index this array", want)
	}
	idxVal, err := EvalExpr(ie.Index, ctx)
	if err != nil {
		return nil, err
	}
	if idxVal.Kind != value.Integer {
		return nil, mascalerr.New(mascalerr.TypeError, ie.Pos(), "array index must be Integer")
	}
	i := int(idxVal.Int.Int64())
	n := len(container.Cells)
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return nil, mascalerr.Newf(mascalerr.IndexError, ie.Pos(), "index %d out of bounds for array of length %d", idxVal.Int.Int64(), n)
	}
	return container.Cells[i], nil
}
