package runtime

import (
	"io"

	"github.com/cwbudde/mascal/internal/ast"
	"github.com/cwbudde/mascal/internal/mascalerr"
	"github.com/cwbudde/mascal/internal/token"
)

// RunProgram builds the program block's variable table and executes its
// Implementation body against it, writing Write's output to out. Grounded
// on DWScript's Interpreter.Eval entry point, which likewise builds the
// top-level environment from the program's declarations before walking its
// statement list.
func RunProgram(tree *ast.AST, out io.Writer) *mascalerr.Error {
	pb := tree.Program()
	if pb == nil {
		return mascalerr.New(mascalerr.RuntimeError, token.Position{}, "no program block to run")
	}
	table, err := BuildTable(pb.Execution.Variables, tree)
	if err != nil {
		return err
	}
	ctx := &Context{Table: table, AST: tree, Out: out}
	return ExecStmts(pb.Execution.Body, ctx)
}
