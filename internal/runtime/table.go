// Package runtime implements Mascal's execution-time machinery: the
// per-call variable table, and the expression/statement evaluators that
// walk the AST against it. Grounded throughout on DWScript's
// internal/interp (tree-walking Eval) and internal/interp/runtime
// (Environment) packages.
package runtime

import (
	"github.com/cwbudde/mascal/internal/ast"
	"github.com/cwbudde/mascal/internal/types"
	"github.com/cwbudde/mascal/internal/value"
)

// VarCell pairs a shared, mutable cell with the declaration metadata a
// variable carries for its lifetime: atomic kind, processed type
// (dimensions already evaluated), constancy, and nullability.
type VarCell struct {
	Name       string
	Cell       *value.Cell
	Atomic     ast.AtomicKind
	Type       *types.Type
	IsConstant bool
	IsNullable bool
}

// Table is a flat, name-keyed variable scope. Mascal's scopes are never
// lexically nested (each function call gets its own table and the program
// block owns the top-level one, per the language's ownership model), so
// unlike DWScript's Environment this carries no outer-scope chain.
type Table struct {
	store map[string]*VarCell
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{store: make(map[string]*VarCell)}
}

// Get retrieves a variable's cell-and-metadata record by name.
func (t *Table) Get(name string) (*VarCell, bool) {
	vc, ok := t.store[name]
	return vc, ok
}

// Has reports whether name is defined in this table.
func (t *Table) Has(name string) bool {
	_, ok := t.store[name]
	return ok
}

// Define binds name to vc, overwriting any prior binding.
func (t *Table) Define(name string, vc *VarCell) {
	t.store[name] = vc
}
