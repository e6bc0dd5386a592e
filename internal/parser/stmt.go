package parser

import (
	"github.com/cwbudde/mascal/internal/ast"
	"github.com/cwbudde/mascal/internal/mascalerr"
	"github.com/cwbudde/mascal/internal/token"
)

// ParseStatements parses every statement in the window c, in order,
// until the cursor is exhausted. Grounded on DWScript's
// internal/parser/statements.go first-token dispatch
// (parseStatement switching on p.cursor.Current().Type) generalized to
// Mascal's closed statement set (§4.4).
func ParseStatements(c *Cursor) ([]ast.Statement, *mascalerr.Error) {
	var stmts []ast.Statement
	for !c.IsEOF() {
		stmt, rest, err := parseStatement(c)
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
		c = rest
	}
	return stmts, nil
}

func parseStatement(c *Cursor) (ast.Statement, *Cursor, *mascalerr.Error) {
	switch c.Current().Type {
	case token.IF:
		return parseConditional(c)
	case token.ELSEIF, token.ELSE:
		return nil, nil, mascalerr.Newf(mascalerr.ParserError, c.Current().Pos,
			"%s may not begin a statement", c.Current().Type)
	case token.WHILE:
		return parseWhile(c)
	case token.FOR:
		return parseFor(c)
	case token.THROW:
		return parseThrow(c)
	default:
		return parseDeclarationOrExpression(c)
	}
}

func parseConditional(c *Cursor) (ast.Statement, *Cursor, *mascalerr.Error) {
	tok := c.Current()
	stmt := &ast.ConditionalStatement{Token: tok}

	cur := c.Advance()
	for {
		cond, rest, err := ParseExpression(cur, bpLowest)
		if err != nil {
			return nil, nil, err
		}
		inner, after, err := ExtractBlock(rest, nil, nil)
		if err != nil {
			return nil, nil, err
		}
		body, err := ParseStatements(inner)
		if err != nil {
			return nil, nil, err
		}
		stmt.Branches = append(stmt.Branches, &ast.ConditionalBranch{Condition: cond, Body: body})
		cur = after

		switch cur.Current().Type {
		case token.ELSEIF:
			cur = cur.Advance()
			continue
		case token.ELSE:
			elseTok := cur.Advance()
			innerElse, afterElse, err := ExtractBlock(elseTok, nil, nil)
			if err != nil {
				return nil, nil, err
			}
			elseBody, err := ParseStatements(innerElse)
			if err != nil {
				return nil, nil, err
			}
			stmt.Branches = append(stmt.Branches, &ast.ConditionalBranch{Condition: nil, Body: elseBody})
			cur = afterElse
			if cur.Current().Type == token.ELSEIF {
				return nil, nil, mascalerr.New(mascalerr.ParserError, cur.Current().Pos,
					"ElseIf may not follow Else")
			}
			return stmt, cur, nil
		default:
			return stmt, cur, nil
		}
	}
}

func parseWhile(c *Cursor) (ast.Statement, *Cursor, *mascalerr.Error) {
	tok := c.Current()
	cond, rest, err := ParseExpression(c.Advance(), bpLowest)
	if err != nil {
		return nil, nil, err
	}
	inner, after, err := ExtractBlock(rest, nil, nil)
	if err != nil {
		return nil, nil, err
	}
	body, err := ParseStatements(inner)
	if err != nil {
		return nil, nil, err
	}
	return &ast.WhileStatement{Token: tok, Condition: cond, Body: body}, after, nil
}

func parseFor(c *Cursor) (ast.Statement, *Cursor, *mascalerr.Error) {
	tok := c.Current()
	cur := c.Advance()
	if !cur.Is(token.IDENT) {
		return nil, nil, mascalerr.Newf(mascalerr.ParserError, cur.Current().Pos, "expected loop variable name, got %q", cur.Current().Literal)
	}
	variable := &ast.Identifier{Token: cur.Current(), Value: cur.Current().Literal}
	cur = cur.Advance()

	if !cur.Is(token.FROM) {
		return nil, nil, mascalerr.Newf(mascalerr.ParserError, cur.Current().Pos, "expected 'From', got %q", cur.Current().Literal)
	}
	cur = cur.Advance()
	from, rest, err := ParseExpression(cur, bpLowest)
	if err != nil {
		return nil, nil, err
	}
	cur = rest

	if !cur.Is(token.TO) {
		return nil, nil, mascalerr.Newf(mascalerr.ParserError, cur.Current().Pos, "expected 'To', got %q", cur.Current().Literal)
	}
	cur = cur.Advance()
	to, rest, err := ParseExpression(cur, bpLowest)
	if err != nil {
		return nil, nil, err
	}
	cur = rest

	var step ast.Expression
	if cur.Is(token.WITH_STEP) {
		cur = cur.Advance()
		step, rest, err = ParseExpression(cur, bpLowest)
		if err != nil {
			return nil, nil, err
		}
		cur = rest
	} else {
		step = &ast.IntegerLiteral{Token: tok, Literal: "1"}
	}

	inner, after, err := ExtractBlock(cur, nil, nil)
	if err != nil {
		return nil, nil, err
	}
	body, err := ParseStatements(inner)
	if err != nil {
		return nil, nil, err
	}
	return &ast.ForStatement{Token: tok, Variable: variable, From: from, To: to, Step: step, Body: body}, after, nil
}

func parseThrow(c *Cursor) (ast.Statement, *Cursor, *mascalerr.Error) {
	tok := c.Current()
	cur := c.Advance()
	if !cur.Is(token.IDENT) {
		return nil, nil, mascalerr.Newf(mascalerr.ParserError, cur.Current().Pos, "expected an error kind name, got %q", cur.Current().Literal)
	}
	kind := cur.Current().Literal
	cur = cur.Advance()
	if !cur.Is(token.COLON) {
		return nil, nil, mascalerr.Newf(mascalerr.ParserError, cur.Current().Pos, "expected ':', got %q", cur.Current().Literal)
	}
	cur = cur.Advance()
	if !cur.Is(token.STRING) {
		return nil, nil, mascalerr.Newf(mascalerr.ParserError, cur.Current().Pos, "expected a string message, got %q", cur.Current().Literal)
	}
	msg := cur.Current().Literal
	cur = cur.Advance()
	cur, err := expectSemicolon(cur)
	if err != nil {
		return nil, nil, err
	}
	return &ast.ThrowStatement{Token: tok, ErrorKind: kind, Message: msg}, cur, nil
}

// parseDeclarationOrExpression handles both `lhs <- rhs;` and a bare
// expression statement: it parses a leading expression and treats it as
// the left-hand side of a declaration when the next token is ASSIGN — an
// lvalue expression (identifier, possibly with an index chain) may itself
// contain parenthesized or bracketed sub-expressions, so the dispatch
// can't just check the second token.
func parseDeclarationOrExpression(c *Cursor) (ast.Statement, *Cursor, *mascalerr.Error) {
	lhs, rest, err := ParseExpression(c, bpLowest)
	if err != nil {
		return nil, nil, err
	}
	if rest.Is(token.ASSIGN) {
		tok := rest.Current()
		rhs, rest2, err := ParseExpression(rest.Advance(), bpLowest)
		if err != nil {
			return nil, nil, err
		}
		rest2, err = expectSemicolon(rest2)
		if err != nil {
			return nil, nil, err
		}
		return &ast.DeclarationStatement{Token: tok, LHS: lhs, RHS: rhs}, rest2, nil
	}
	rest, err = expectSemicolon(rest)
	if err != nil {
		return nil, nil, err
	}
	return &ast.ExpressionStatement{Token: c.Current(), Expression: lhs}, rest, nil
}

func expectSemicolon(c *Cursor) (*Cursor, *mascalerr.Error) {
	if !c.Is(token.SEMICOLON) {
		return nil, mascalerr.Newf(mascalerr.ParserError, c.Current().Pos, "expected ';', got %q", c.Current().Literal)
	}
	return c.Advance(), nil
}
