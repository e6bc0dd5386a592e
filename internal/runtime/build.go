package runtime

import (
	"github.com/cwbudde/mascal/internal/ast"
	"github.com/cwbudde/mascal/internal/mascalerr"
	"github.com/cwbudde/mascal/internal/value"
)

// BuildTable constructs a fresh variable table from a Variables block,
// processing declarations in VariableBlock.IterAll's fixed order
// (Integers, Floats, Strings, Booleans, Dynamics, Types) so a later
// dimension-size expression may reference an earlier declaration. Each
// declared array is materialized with its full (uninitialized) cell
// graph; an explicit initializer, if present, then overwrites it.
// Grounded on DWScript's Interpreter building an *Environment from a
// VAR block's declaration list before running a program or a procedure.
func BuildTable(vb *ast.VariableBlock, astTree *ast.AST) (*Table, *mascalerr.Error) {
	table := NewTable()
	ctx := &Context{Table: table, AST: astTree}

	for _, decl := range vb.IterAll() {
		t, err := resolveDeclType(decl, ctx)
		if err != nil {
			return nil, err
		}
		vc := &VarCell{
			Name:       decl.Name,
			Atomic:     decl.Atomic,
			Type:       t,
			IsConstant: decl.IsConstant,
			IsNullable: decl.IsNullable,
		}
		if decl.IsArray() {
			vc.Cell = value.NewCellWith(materializeArray(t))
		} else {
			vc.Cell = value.NewCell()
		}
		table.Define(decl.Name, vc)

		if decl.Initializer != nil {
			v, err := EvalExpr(decl.Initializer, ctx)
			if err != nil {
				return nil, err
			}
			coerced, err := coerceForAssignment(vc, value.Copy(v), decl.Pos())
			if err != nil {
				return nil, err
			}
			vc.Cell.Set(coerced)
		}
	}
	return table, nil
}
