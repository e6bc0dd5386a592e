// Package semantic runs structural checks over a parsed AST that the
// parser itself does not perform: duplicate variable names inside a
// single Variables block, function parameters without a matching
// declaration, and assignments into a non-Mut scalar parameter. These all
// report as ParserError, the closed error set's nearest fit for a
// pre-execution structural failure. Grounded on DWScript's
// internal/semantic.Analyzer, a separate post-parse walk over the
// completed AST rather than checks folded into the parser itself.
package semantic

import (
	"github.com/cwbudde/mascal/internal/ast"
	"github.com/cwbudde/mascal/internal/mascalerr"
	"github.com/cwbudde/mascal/internal/token"
)

// Analyze walks every scoped block in tree and returns the first
// structural violation found, or nil if the tree is well-formed.
func Analyze(tree *ast.AST) *mascalerr.Error {
	if pb := tree.Program(); pb != nil {
		if err := checkDuplicateNames(pb.Execution.Variables); err != nil {
			return err
		}
	}
	for _, fn := range tree.Functions() {
		if err := checkDuplicateNames(fn.Execution.Variables); err != nil {
			return err
		}
		if err := checkParametersDeclared(fn); err != nil {
			return err
		}
		if err := checkMutWriteThrough(fn); err != nil {
			return err
		}
	}
	return nil
}

// checkDuplicateNames rejects a variable name declared twice in the same
// Variables block, whether within one atomic sub-block or across two (e.g.
// the same identifier declared under both Integer { } and Float { }) — the
// parser's declaration lists do not check for duplicates.
func checkDuplicateNames(vb *ast.VariableBlock) *mascalerr.Error {
	seen := map[string]token.Position{}
	for _, decl := range vb.IterAll() {
		if _, ok := seen[decl.Name]; ok {
			return mascalerr.Newf(mascalerr.ParserError, decl.Pos(), "variable %q redeclared", decl.Name)
		}
		seen[decl.Name] = decl.Pos()
	}
	return nil
}

// checkParametersDeclared verifies every declared parameter name has a
// matching entry in the function's own Variables block — the parameter
// list names a slot, the variable block supplies its type and metadata,
// and the two must agree. A parameter with no matching declaration is a
// semantic error.
func checkParametersDeclared(fn *ast.FunctionBlock) *mascalerr.Error {
	declared := map[string]bool{}
	for _, decl := range fn.Execution.Variables.IterAll() {
		declared[decl.Name] = true
	}
	for _, p := range fn.Parameters {
		if !declared[p.Name] {
			return mascalerr.Newf(mascalerr.ParserError, fn.Pos(),
				"function %q: parameter %q has no matching declaration in its Variables block", fn.Name, p.Name)
		}
	}
	return nil
}

// checkMutWriteThrough rejects a bare-identifier declaration statement
// (rebinding, not in-place array indexing) that targets a non-Mut
// parameter anywhere in the function body, including nested conditional,
// while, and for bodies. Mut is the parameter's only grant of
// writability; a non-Mut parameter is otherwise indistinguishable from
// any other declared variable, so this can only be caught by walking the
// body rather than by the variable table's own constancy check.
func checkMutWriteThrough(fn *ast.FunctionBlock) *mascalerr.Error {
	mutable := map[string]bool{}
	params := map[string]bool{}
	for _, p := range fn.Parameters {
		params[p.Name] = true
		if p.Mutable {
			mutable[p.Name] = true
		}
	}
	return walkStatements(fn.Execution.Body, func(s ast.Statement) *mascalerr.Error {
		ds, ok := s.(*ast.DeclarationStatement)
		if !ok {
			return nil
		}
		ident, ok := ds.LHS.(*ast.Identifier)
		if !ok {
			return nil
		}
		if params[ident.Value] && !mutable[ident.Value] {
			return mascalerr.Newf(mascalerr.ParserError, ds.Pos(),
				"function %q: parameter %q is not declared Mut and cannot be reassigned", fn.Name, ident.Value)
		}
		return nil
	})
}

// walkStatements applies visit to every statement in body and recurses
// into every nested body a control-flow statement carries, stopping at
// the first error.
func walkStatements(body []ast.Statement, visit func(ast.Statement) *mascalerr.Error) *mascalerr.Error {
	for _, s := range body {
		if err := visit(s); err != nil {
			return err
		}
		switch st := s.(type) {
		case *ast.ConditionalStatement:
			for _, br := range st.Branches {
				if err := walkStatements(br.Body, visit); err != nil {
					return err
				}
			}
		case *ast.WhileStatement:
			if err := walkStatements(st.Body, visit); err != nil {
				return err
			}
		case *ast.ForStatement:
			if err := walkStatements(st.Body, visit); err != nil {
				return err
			}
		}
	}
	return nil
}
