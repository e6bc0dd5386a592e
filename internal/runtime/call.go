package runtime

import (
	"io"

	"github.com/cwbudde/mascal/internal/ast"
	"github.com/cwbudde/mascal/internal/builtins"
	"github.com/cwbudde/mascal/internal/mascalerr"
	"github.com/cwbudde/mascal/internal/token"
	"github.com/cwbudde/mascal/internal/value"
)

// dispatchCall resolves fnName against the builtin registry first, then
// against the AST's user functions, unifying the two call shapes (a plain
// CallExpression and a MemberExpression forwarded as a call) into one
// path. Grounded on DWScript's Interpreter.evalCallExpression, which
// similarly checks a builtin table before falling back to user-defined
// functions.
func dispatchCall(fnName string, argExprs []ast.Expression, pos token.Position, ctx *Context) (value.Value, *mascalerr.Error) {
	if b, ok := builtins.Lookup(fnName); ok {
		return b.Fn(argExprs, ctx, pos)
	}
	fb := ctx.AST.FindFunction(fnName)
	if fb == nil {
		return value.Value{}, mascalerr.Newf(mascalerr.RuntimeError, pos, "undefined function %q", fnName)
	}
	if len(fb.Parameters) != len(argExprs) {
		return value.Value{}, mascalerr.Newf(mascalerr.ArgumentError, pos,
			"%s expects %d argument(s), got %d", fnName, len(fb.Parameters), len(argExprs))
	}
	bound := make([]boundArg, len(argExprs))
	for i, argExpr := range argExprs {
		v, err := EvalExpr(argExpr, ctx)
		if err != nil {
			return value.Value{}, err
		}
		cell, _ := tryResolveCell(argExpr, ctx)
		bound[i] = boundArg{Value: v, Cell: cell}
	}
	return CallFunction(fb, bound, ctx.AST, ctx.Out)
}

// evalMember implements `receiver.Member(...)`: the receiver expression is
// prepended, unevaluated, to the call's argument list and the whole thing
// is dispatched as a single call. This lets an expression-based builtin
// like Append resolve the receiver as an lvalue cell exactly like any
// other argument, and lets a user function receive the receiver as its
// first parameter.
func evalMember(e *ast.MemberExpression, ctx *Context) (value.Value, *mascalerr.Error) {
	call, ok := e.Member.(*ast.CallExpression)
	if !ok {
		return value.Value{}, mascalerr.New(mascalerr.RuntimeError, e.Pos(), "member access is only valid as a call")
	}
	argExprs := append([]ast.Expression{e.Receiver}, call.Arguments...)
	return dispatchCall(call.Function.Value, argExprs, e.Pos(), ctx)
}

// boundArg is one call argument's already-evaluated value alongside the
// cell it resolved to, if it names an lvalue (used for Mut/array aliasing
// in CallFunction).
type boundArg struct {
	Value value.Value
	Cell  *value.Cell
}

// CallFunction invokes fb with already-bound arguments, building a fresh
// table per call per the language's non-nested scoping, then running its
// body to find the first top-level assignment to the function's own name
// (the language's return-by-self-assignment convention). Grounded on
// DWScript's Interpreter.callUserFunction, adapted since DWScript threads
// an enclosing environment for closures where Mascal instead always
// starts a function call from a clean table.
func CallFunction(fb *ast.FunctionBlock, args []boundArg, astTree *ast.AST, out io.Writer) (value.Value, *mascalerr.Error) {
	table, err := BuildTable(fb.Execution.Variables, astTree)
	if err != nil {
		return value.Value{}, err
	}
	ctx := &Context{Table: table, AST: astTree, Out: out}

	for i, param := range fb.Parameters {
		vc, ok := table.Get(param.Name)
		if !ok {
			return value.Value{}, mascalerr.Newf(mascalerr.RuntimeError, fb.Pos(), "parameter %q has no matching declaration", param.Name)
		}
		arg := args[i]
		if arg.Cell != nil && (param.Mutable || arg.Value.IsArray()) {
			vc.Cell = arg.Cell
			continue
		}
		coerced, err := coerceForAssignment(vc, value.Copy(arg.Value), fb.Pos())
		if err != nil {
			return value.Value{}, err
		}
		vc.Cell.Set(coerced)
	}

	return execFunctionBody(fb, ctx)
}

// execFunctionBody runs fb's top-level statements one at a time, watching
// for a declaration that assigns the function's own name: that statement
// is never executed as an ordinary assignment, it is evaluated and
// returned immediately, leaving any later statements in the body unrun.
// A self-name assignment nested inside an If/While/For body does not
// trigger this: it runs as a plain assignment and the function keeps
// going — only a top-level declaration statement is eligible.
func execFunctionBody(fb *ast.FunctionBlock, ctx *Context) (value.Value, *mascalerr.Error) {
	for _, stmt := range fb.Execution.Body {
		ds, ok := stmt.(*ast.DeclarationStatement)
		if !ok {
			if err := ExecStmt(stmt, ctx); err != nil {
				return value.Value{}, err
			}
			continue
		}
		ident, ok := ds.LHS.(*ast.Identifier)
		if !ok || ident.Value != fb.Name {
			if err := ExecStmt(stmt, ctx); err != nil {
				return value.Value{}, err
			}
			continue
		}
		retVal, err := EvalExpr(ds.RHS, ctx)
		if err != nil {
			return value.Value{}, err
		}
		if fb.ReturnType == nil {
			return value.Value{}, mascalerr.Newf(mascalerr.RuntimeError, ds.Pos(),
				"function %q declares no return type but assigned a value to its own name", fb.Name)
		}
		retType, err := resolveUnprocessedType(fb.ReturnType, ctx)
		if err != nil {
			return value.Value{}, err
		}
		return value.Cast(ds.Pos(), retVal, retType)
	}
	if fb.ReturnType != nil {
		return value.Value{}, mascalerr.Newf(mascalerr.RuntimeError, fb.Pos(),
			"function %q declares a return type but its body never assigns one", fb.Name)
	}
	return value.NullValue(), nil
}
