package ast

import (
	"fmt"
	"strings"
)

// Print renders tree as an indented, deterministic text dump: every
// scoped block in source order, its declarations, and its statements.
// Grounded on DWScript's cmd/dwscript/cmd/parse.go dumpASTNode, pulled
// into the ast package itself (rather than kept CLI-only) so it can also
// back a snapshot test (see internal/parser's AST snapshot test) without
// the parser package importing the CLI.
func Print(tree *AST) string {
	var b strings.Builder
	for _, blk := range tree.Blocks {
		switch v := blk.(type) {
		case *ProgramBlock:
			b.WriteString("DefineProgram\n")
			printVariableBlock(&b, v.Execution.Variables, 1)
			printStatements(&b, v.Execution.Body, 1)
		case *FunctionBlock:
			fmt.Fprintf(&b, "DefineFunction %s(%s)", v.Name, joinParams(v.Parameters))
			if v.ReturnType != nil {
				fmt.Fprintf(&b, " -> %s", v.ReturnType)
			}
			b.WriteString("\n")
			printVariableBlock(&b, v.Execution.Variables, 1)
			printStatements(&b, v.Execution.Body, 1)
		}
	}
	return b.String()
}

func joinParams(params []*Parameter) string {
	parts := make([]string, len(params))
	for i, p := range params {
		if p.Mutable {
			parts[i] = "Mut " + p.Name
		} else {
			parts[i] = p.Name
		}
	}
	return strings.Join(parts, ", ")
}

func printVariableBlock(b *strings.Builder, vb *VariableBlock, indent int) {
	decls := vb.IterAll()
	if len(decls) == 0 {
		return
	}
	pad := strings.Repeat("  ", indent)
	fmt.Fprintf(b, "%sVariables\n", pad)
	for _, d := range decls {
		fmt.Fprintf(b, "%s  %s %s\n", pad, d.Atomic, d.String())
	}
}

func printStatements(b *strings.Builder, stmts []Statement, indent int) {
	pad := strings.Repeat("  ", indent)
	for _, s := range stmts {
		switch st := s.(type) {
		case *ExpressionStatement:
			fmt.Fprintf(b, "%sExpressionStatement: %s\n", pad, st.String())
		case *DeclarationStatement:
			fmt.Fprintf(b, "%sDeclarationStatement: %s <- %s\n", pad, st.LHS.String(), st.RHS.String())
		case *ConditionalStatement:
			for i, br := range st.Branches {
				switch {
				case i == 0:
					fmt.Fprintf(b, "%sIf %s\n", pad, br.Condition.String())
				case br.Condition == nil:
					fmt.Fprintf(b, "%sElse\n", pad)
				default:
					fmt.Fprintf(b, "%sElseIf %s\n", pad, br.Condition.String())
				}
				printStatements(b, br.Body, indent+1)
			}
		case *WhileStatement:
			fmt.Fprintf(b, "%sWhile %s\n", pad, st.Condition.String())
			printStatements(b, st.Body, indent+1)
		case *ForStatement:
			fmt.Fprintf(b, "%sFor %s From %s To %s WithStep %s\n", pad,
				st.Variable.String(), st.From.String(), st.To.String(), st.Step.String())
			printStatements(b, st.Body, indent+1)
		case *ThrowStatement:
			fmt.Fprintf(b, "%sThrow %s: %q\n", pad, st.ErrorKind, st.Message)
		default:
			fmt.Fprintf(b, "%s%T: %s\n", pad, s, s.String())
		}
	}
}
