package runtime

import (
	"github.com/cwbudde/mascal/internal/ast"
	"github.com/cwbudde/mascal/internal/mascalerr"
	"github.com/cwbudde/mascal/internal/types"
	"github.com/cwbudde/mascal/internal/value"
)

// ExecStmts runs stmts in order against ctx, stopping at the first error
// (including a Throw, which surfaces as an ordinary *mascalerr.Error —
// Mascal has no catch construct, so an error simply unwinds to the
// caller).
func ExecStmts(stmts []ast.Statement, ctx *Context) *mascalerr.Error {
	for _, stmt := range stmts {
		if err := ExecStmt(stmt, ctx); err != nil {
			return err
		}
	}
	return nil
}

// ExecStmt dispatches a single statement. Grounded on DWScript's
// Interpreter.evalStatement switch.
func ExecStmt(stmt ast.Statement, ctx *Context) *mascalerr.Error {
	switch s := stmt.(type) {
	case *ast.ExpressionStatement:
		_, err := EvalExpr(s.Expression, ctx)
		return err
	case *ast.DeclarationStatement:
		return execDeclaration(s, ctx)
	case *ast.ConditionalStatement:
		return execConditional(s, ctx)
	case *ast.WhileStatement:
		return execWhile(s, ctx)
	case *ast.ForStatement:
		return execFor(s, ctx)
	case *ast.ThrowStatement:
		return execThrow(s)
	default:
		return mascalerr.Newf(mascalerr.RuntimeError, stmt.Pos(), "cannot execute statement of type %T", stmt)
	}
}

// execDeclaration implements `lhs <- rhs;`: a bare identifier rebinds the
// named variable's own cell (rejecting Const targets), while an index
// chain writes in place through the shared cell the chain resolves to,
// casting against the array's declared element type unless that type is
// Dynamic.
func execDeclaration(ds *ast.DeclarationStatement, ctx *Context) *mascalerr.Error {
	rhsVal, err := EvalExpr(ds.RHS, ctx)
	if err != nil {
		return err
	}
	switch lhs := ds.LHS.(type) {
	case *ast.Identifier:
		vc, ok := ctx.Table.Get(lhs.Value)
		if !ok {
			return mascalerr.Newf(mascalerr.RuntimeError, ds.Pos(), "undefined variable %q", lhs.Value)
		}
		if vc.IsConstant {
			return mascalerr.Newf(mascalerr.ValueError, ds.Pos(), "cannot assign to constant %q", lhs.Value)
		}
		coerced, err := coerceForAssignment(vc, value.Copy(rhsVal), ds.Pos())
		if err != nil {
			return err
		}
		vc.Cell.Set(coerced)
		return nil
	case *ast.IndexExpression:
		containerVal, err := EvalExpr(lhs.Array, ctx)
		if err != nil {
			return err
		}
		cell, err := indexCellForAssign(lhs, containerVal, ctx)
		if err != nil {
			return err
		}
		toSet := rhsVal
		if containerVal.ElemT != nil && containerVal.ElemT.Kind != types.Dynamic {
			toSet, err = value.Cast(ds.Pos(), rhsVal, containerVal.ElemT)
			if err != nil {
				return err
			}
		}
		cell.Set(value.Copy(toSet))
		return nil
	default:
		return mascalerr.New(mascalerr.RuntimeError, ds.Pos(), "invalid assignment target")
	}
}

func execConditional(cs *ast.ConditionalStatement, ctx *Context) *mascalerr.Error {
	for _, b := range cs.Branches {
		if b.Condition == nil {
			return ExecStmts(b.Body, ctx)
		}
		cond, err := EvalExpr(b.Condition, ctx)
		if err != nil {
			return err
		}
		if cond.Kind != value.Boolean {
			return mascalerr.Newf(mascalerr.RuntimeError, cs.Pos(), "condition must be Boolean, got %s", cond.Kind)
		}
		if cond.Bool {
			return ExecStmts(b.Body, ctx)
		}
	}
	return nil
}

func execWhile(ws *ast.WhileStatement, ctx *Context) *mascalerr.Error {
	for {
		cond, err := EvalExpr(ws.Condition, ctx)
		if err != nil {
			return err
		}
		if cond.Kind != value.Boolean {
			return mascalerr.Newf(mascalerr.TypeError, ws.Pos(), "While condition must be Boolean, got %s", cond.Kind)
		}
		if !cond.Bool {
			return nil
		}
		if err := ExecStmts(ws.Body, ctx); err != nil {
			return err
		}
	}
}

// execFor implements the `curr <= to` termination test with separate
// integer and float update paths per §4.10: a Float loop variable runs the
// loop in float arithmetic, an Integer one advances through the widening
// integer Add and rejects Float bounds, and any other variable type is a
// TypeError.
func execFor(fs *ast.ForStatement, ctx *Context) *mascalerr.Error {
	vc, ok := ctx.Table.Get(fs.Variable.Value)
	if !ok {
		return mascalerr.Newf(mascalerr.RuntimeError, fs.Pos(), "undefined variable %q", fs.Variable.Value)
	}
	fromVal, err := EvalExpr(fs.From, ctx)
	if err != nil {
		return err
	}
	toVal, err := EvalExpr(fs.To, ctx)
	if err != nil {
		return err
	}
	stepVal, err := EvalExpr(fs.Step, ctx)
	if err != nil {
		return err
	}
	if !fromVal.IsNumeric() || !toVal.IsNumeric() || !stepVal.IsNumeric() {
		return mascalerr.New(mascalerr.TypeError, fs.Pos(), "For loop bounds must be numeric")
	}

	floatBound := fromVal.Kind == value.Float || toVal.Kind == value.Float || stepVal.Kind == value.Float
	switch vc.Type.Kind {
	case types.Float:
	case types.Integer:
		if floatBound {
			return mascalerr.Newf(mascalerr.TypeError, fs.Pos(), "For loop variable %q is Integer but a bound is Float", fs.Variable.Value)
		}
	default:
		return mascalerr.Newf(mascalerr.TypeError, fs.Pos(), "For loop variable %q must be Integer or Float", fs.Variable.Value)
	}

	if vc.Type.Kind == types.Float {
		curr := fromVal.AsFloat64()
		to := toVal.AsFloat64()
		step := stepVal.AsFloat64()
		for curr <= to {
			vc.Cell.Set(value.Flt(curr))
			if err := ExecStmts(fs.Body, ctx); err != nil {
				return err
			}
			curr += step
		}
		return nil
	}

	curr := fromVal.Int
	to := toVal.Int
	step := stepVal.Int
	for curr.Compare(to) <= 0 {
		vc.Cell.Set(value.Int(curr))
		if err := ExecStmts(fs.Body, ctx); err != nil {
			return err
		}
		next, err := curr.Add(fs.Pos(), step, ast.DisallowInfinity)
		if err != nil {
			return err
		}
		curr = next
	}
	return nil
}

func execThrow(ts *ast.ThrowStatement) *mascalerr.Error {
	kind, ok := mascalerr.LookupThrowKind(ts.ErrorKind)
	if !ok {
		return mascalerr.Newf(mascalerr.UndefinedErrorType, ts.Pos(), "undefined error type %q", ts.ErrorKind)
	}
	return mascalerr.New(kind, ts.Pos(), ts.Message)
}
