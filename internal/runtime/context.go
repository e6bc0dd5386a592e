package runtime

import (
	"io"

	"github.com/cwbudde/mascal/internal/ast"
	"github.com/cwbudde/mascal/internal/mascalerr"
	"github.com/cwbudde/mascal/internal/value"
)

// Context is the execution context an expression or statement is
// evaluated against: the scope's variable table, the whole AST (for
// function lookup), and the destination for Write's output. Grounded on
// DWScript's Interpreter struct threading an *Environment and an
// io.Writer through Eval.
type Context struct {
	Table *Table
	AST   *ast.AST
	Out   io.Writer
}

// Eval evaluates expr against c, satisfying builtins.Resolver.
func (c *Context) Eval(expr ast.Expression) (value.Value, *mascalerr.Error) {
	return EvalExpr(expr, c)
}

// Cell resolves expr to its addressable cell, satisfying
// builtins.Resolver. Only identifiers and index chains resolve; anything
// else is a runtime error.
func (c *Context) Cell(expr ast.Expression) (*value.Cell, *mascalerr.Error) {
	return resolveLValueCell(expr, c)
}

// Output returns the writer Write prints to, satisfying builtins.Resolver.
func (c *Context) Output() io.Writer {
	return c.Out
}
