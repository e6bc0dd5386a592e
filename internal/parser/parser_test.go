package parser

import (
	"testing"

	"github.com/cwbudde/mascal/internal/ast"
	"github.com/cwbudde/mascal/internal/lexer"
	"github.com/cwbudde/mascal/internal/mascalerr"
	"github.com/cwbudde/mascal/internal/token"
)

func mustParse(t *testing.T, src string) *ast.AST {
	t.Helper()
	tree, err := Parse(lexer.New(src).All())
	if err != nil {
		t.Fatalf("Parse(%q) returned error: %v", src, err)
	}
	return tree
}

func TestParseProgramWithVariablesAndConcatenation(t *testing.T) {
	src := `DefineProgram {
		Variables { String { s; } }
		Implementation {
			s <- "Hello" + " World";
		}
	}`
	tree := mustParse(t, src)

	pb := tree.Program()
	if pb == nil {
		t.Fatal("expected a program block")
	}
	if len(pb.Execution.Variables.Strings) != 1 {
		t.Fatalf("expected one String declaration, got %d", len(pb.Execution.Variables.Strings))
	}
	if len(pb.Execution.Body) != 1 {
		t.Fatalf("expected one statement, got %d", len(pb.Execution.Body))
	}
	stmt, ok := pb.Execution.Body[0].(*ast.DeclarationStatement)
	if !ok {
		t.Fatalf("statement is %T, want *ast.DeclarationStatement", pb.Execution.Body[0])
	}
	bin, ok := stmt.RHS.(*ast.BinaryExpression)
	if !ok || bin.Operator != "+" {
		t.Fatalf("RHS is %#v, want a '+' BinaryExpression", stmt.RHS)
	}
}

func TestParseFunctionBlockWithParameters(t *testing.T) {
	src := `DefineFunction Add(a, Mut b) -> Integer {
		Variables { Integer { a; b; } }
		Implementation {
			Add <- a + b;
		}
	}
	DefineProgram { Implementation { } }`
	tree := mustParse(t, src)

	fn := tree.FindFunction("Add")
	if fn == nil {
		t.Fatal("expected function Add to be found")
	}
	if len(fn.Parameters) != 2 {
		t.Fatalf("expected 2 parameters, got %d", len(fn.Parameters))
	}
	if fn.Parameters[0].Mutable {
		t.Error("parameter a should not be Mut")
	}
	if !fn.Parameters[1].Mutable {
		t.Error("parameter b should be Mut")
	}
}

func TestParseConditionalElseIfAfterElseRejected(t *testing.T) {
	src := `DefineProgram {
		Variables { Integer { x; } }
		Implementation {
			If x = 1 { x <- 2; } Else { x <- 3; } ElseIf x = 4 { x <- 5; }
		}
	}`
	_, err := Parse(lexer.New(src).All())
	if err == nil {
		t.Fatal("expected a parser error for ElseIf following Else")
	}
	if err.Kind != mascalerr.ParserError {
		t.Fatalf("got error kind %v, want ParserError", err.Kind)
	}
}

func TestParseForLoopDefaultsStepToOne(t *testing.T) {
	src := `DefineProgram {
		Variables { Integer { i; total; } }
		Implementation {
			For i From 1 To 10 {
				total <- total + i;
			}
		}
	}`
	tree := mustParse(t, src)
	pb := tree.Program()
	fs, ok := pb.Execution.Body[0].(*ast.ForStatement)
	if !ok {
		t.Fatalf("statement is %T, want *ast.ForStatement", pb.Execution.Body[0])
	}
	lit, ok := fs.Step.(*ast.IntegerLiteral)
	if !ok || lit.Literal != "1" {
		t.Fatalf("default step = %#v, want IntegerLiteral(\"1\")", fs.Step)
	}
}

func TestParseMissingProgramBlockIsAnError(t *testing.T) {
	src := `DefineFunction F() { Implementation { } }`
	_, err := Parse(lexer.New(src).All())
	if err == nil {
		t.Fatal("expected an error when no program block is present")
	}
}

func TestParseNumberFollowedByIdentifierIsAnError(t *testing.T) {
	src := `DefineProgram {
		Variables { Integer { x; } }
		Implementation {
			x <- 2 x;
		}
	}`
	_, err := Parse(lexer.New(src).All())
	if err == nil {
		t.Fatal("expected a parser error for a numeric literal directly followed by an identifier")
	}
	if err.Kind != mascalerr.ParserError {
		t.Fatalf("got error kind %v, want ParserError", err.Kind)
	}
}

func TestParseIdentifierFollowedByNumberIsNotRejectedAsAdjacency(t *testing.T) {
	c := NewCursor(lexer.New("x 2").All())
	expr, rest, err := ParseExpression(c, bpLowest)
	if err != nil {
		t.Fatalf("parsing the identifier should not trip the numeric-adjacency check, got error: %v", err)
	}
	if ident, ok := expr.(*ast.Identifier); !ok || ident.Value != "x" {
		t.Fatalf("expression = %#v, want Identifier(\"x\")", expr)
	}
	if !rest.Is(token.INT) {
		t.Fatalf("expected the '2' token left unconsumed, cursor is at %v", rest.Current())
	}
}
