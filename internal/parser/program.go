package parser

import (
	"github.com/cwbudde/mascal/internal/ast"
	"github.com/cwbudde/mascal/internal/mascalerr"
	"github.com/cwbudde/mascal/internal/token"
)

// scopedBlockRequire/allow describe what ExtractBlock enforces for a
// ProgramBlock or FunctionBlock's own `{ … }` body: Implementation is
// mandatory, Variables is optional, and no other scopable token may
// appear at that depth.
var scopedBlockRequire = []token.Type{token.IMPLEMENTATION}
var scopedBlockAllow = []token.Type{token.VARIABLES}

// variableSubBlocks are the atomic sub-block keywords a Variables block may
// hold at its own depth.
var variableSubBlocks = []token.Type{token.INTEGER, token.FLOATKW, token.STRINGKW, token.BOOLEAN, token.DYNAMIC, token.TYPE}

// Parse tokenizes-independent entry point: parses a complete token stream
// into an AST. Grounded on DWScript's internal/parser.ParseProgram
// top-level loop (repeatedly parse top-level declarations until EOF),
// shrunk to Mascal's closed set of two scoped-block kinds (§4.6).
func Parse(tokens []token.Token) (*ast.AST, *mascalerr.Error) {
	c := NewCursor(tokens)
	tree := &ast.AST{ProgramIndex: -1}

	for !c.IsEOF() {
		switch c.Current().Type {
		case token.DEFINE_PROGRAM:
			if tree.ProgramIndex >= 0 {
				return nil, mascalerr.New(mascalerr.ParserError, c.Current().Pos, "a second program block is not allowed")
			}
			pb, rest, err := parseProgramBlock(c)
			if err != nil {
				return nil, err
			}
			tree.ProgramIndex = len(tree.Blocks)
			tree.Blocks = append(tree.Blocks, pb)
			c = rest
		case token.DEFINE_FUNCTION:
			fb, rest, err := parseFunctionBlock(c)
			if err != nil {
				return nil, err
			}
			tree.Blocks = append(tree.Blocks, fb)
			c = rest
		default:
			return nil, mascalerr.Newf(mascalerr.ParserError, c.Current().Pos,
				"expected DefineProgram or DefineFunction, got %q", c.Current().Literal)
		}
	}

	if tree.ProgramIndex < 0 {
		return nil, mascalerr.New(mascalerr.ParserError, token.Position{}, "no program block found")
	}
	return tree, nil
}

func parseProgramBlock(c *Cursor) (*ast.ProgramBlock, *Cursor, *mascalerr.Error) {
	tok := c.Current()
	c = c.Advance()
	exec, after, err := parseExecutionBlock(c)
	if err != nil {
		return nil, nil, err
	}
	return &ast.ProgramBlock{Token: tok, Execution: exec}, after, nil
}

func parseFunctionBlock(c *Cursor) (*ast.FunctionBlock, *Cursor, *mascalerr.Error) {
	tok := c.Current()
	c = c.Advance()
	if !c.Is(token.IDENT) {
		return nil, nil, mascalerr.Newf(mascalerr.ParserError, c.Current().Pos, "expected function name, got %q", c.Current().Literal)
	}
	name := c.Current().Literal
	c = c.Advance()

	if !c.Is(token.LPAREN) {
		return nil, nil, mascalerr.Newf(mascalerr.ParserError, c.Current().Pos, "expected '(', got %q", c.Current().Literal)
	}
	c = c.Advance()
	var params []*ast.Parameter
	if !c.Is(token.RPAREN) {
		for {
			p := &ast.Parameter{}
			if c.Is(token.MUT) {
				p.Mutable = true
				c = c.Advance()
			}
			if !c.Is(token.IDENT) {
				return nil, nil, mascalerr.Newf(mascalerr.ParserError, c.Current().Pos, "expected parameter name, got %q", c.Current().Literal)
			}
			p.Name = c.Current().Literal
			c = c.Advance()
			params = append(params, p)
			if c.Is(token.COMMA) {
				c = c.Advance()
				if c.Is(token.RPAREN) {
					return nil, nil, mascalerr.New(mascalerr.ParserError, c.Current().Pos, "trailing comma in parameter list")
				}
				continue
			}
			break
		}
	}
	if !c.Is(token.RPAREN) {
		return nil, nil, mascalerr.Newf(mascalerr.ParserError, c.Current().Pos, "expected ')', got %q", c.Current().Literal)
	}
	c = c.Advance()

	var retType *ast.UnprocessedType
	if c.Is(token.ARROW) {
		c = c.Advance()
		ut, rest, err := parseUnprocessedType(c)
		if err != nil {
			return nil, nil, err
		}
		retType = ut
		c = rest
	}

	exec, after, err := parseExecutionBlock(c)
	if err != nil {
		return nil, nil, err
	}
	return &ast.FunctionBlock{Token: tok, Name: name, Parameters: params, ReturnType: retType, Execution: exec}, after, nil
}

// parseExecutionBlock parses the `{ [Variables {...}]? Implementation
// {...} }` body shared by program and function blocks.
func parseExecutionBlock(c *Cursor) (*ast.ExecutionBlock, *Cursor, *mascalerr.Error) {
	body, after, err := ExtractBlock(c, scopedBlockRequire, scopedBlockAllow)
	if err != nil {
		return nil, nil, err
	}

	exec := &ast.ExecutionBlock{Variables: &ast.VariableBlock{}}
	cur := body
	for !cur.IsEOF() {
		switch cur.Current().Type {
		case token.VARIABLES:
			inner, rest, err := ExtractBlock(cur.Advance(), nil, variableSubBlocks)
			if err != nil {
				return nil, nil, err
			}
			vb, err := ParseVariableBlock(inner)
			if err != nil {
				return nil, nil, err
			}
			exec.Variables = vb
			cur = rest
		case token.IMPLEMENTATION:
			inner, rest, err := ExtractBlock(cur.Advance(), nil, nil)
			if err != nil {
				return nil, nil, err
			}
			stmts, err := ParseStatements(inner)
			if err != nil {
				return nil, nil, err
			}
			exec.Body = stmts
			cur = rest
		default:
			return nil, nil, mascalerr.Newf(mascalerr.ParserError, cur.Current().Pos,
				"unexpected token %q inside scoped block", cur.Current().Literal)
		}
	}
	return exec, after, nil
}
