package parser

import (
	"strconv"

	"github.com/cwbudde/mascal/internal/ast"
	"github.com/cwbudde/mascal/internal/mascalerr"
	"github.com/cwbudde/mascal/internal/token"
)

// Binding powers. Grounded on DWScript's internal/parser/expressions.go
// precedence-climbing parseExpression(precedence int) — the same
// mechanism, renumbered and shrunk to the handful of operators §4.3
// names (DWScript's table carries many more DWScript-only operators).
const (
	bpLowest  = 0
	bpOr      = 29
	bpAnd     = 30
	bpEquals  = 35
	bpCompare = 40
	bpAdd     = 60
	bpMul     = 70
	bpExp     = 80
	bpUnary   = 90
	bpPostfix = 100
)

var binaryBP = map[token.Type]int{
	token.OR:     bpOr,
	token.AND:    bpAnd,
	token.EQ:     bpEquals,
	token.NOT_EQ: bpEquals,
	token.LT:     bpCompare,
	token.GT:     bpCompare,
	token.LT_EQ:  bpCompare,
	token.GT_EQ:  bpCompare,
	token.PLUS:   bpAdd,
	token.MINUS:  bpAdd,
	token.ASTERISK: bpMul,
	token.SLASH:    bpMul,
	token.PERCENT:  bpMul,
	token.CARET:    bpExp,
}

var opLiteral = map[token.Type]string{
	token.OR: "Or", token.AND: "And",
	token.EQ: "=", token.NOT_EQ: "!=",
	token.LT: "<", token.GT: ">", token.LT_EQ: "<=", token.GT_EQ: ">=",
	token.PLUS: "+", token.MINUS: "-",
	token.ASTERISK: "*", token.SLASH: "/", token.PERCENT: "%",
	token.CARET: "^",
}

// rightAssoc is the set of binary operators whose right-hand recursive
// call uses bp-1 as its minimum (rather than bp, which left-associative
// operators use), making them right-associative. Exponentiation is the
// only one.
var rightAssoc = map[token.Type]bool{token.CARET: true}

// ParseExpression parses a single expression starting at the cursor's
// current token, stopping once the next operator's left binding power
// does not exceed minBP. Returns the parsed expression and a cursor
// positioned just past its last token.
func ParseExpression(c *Cursor, minBP int) (ast.Expression, *Cursor, *mascalerr.Error) {
	left, c, err := parsePrimary(c)
	if err != nil {
		return nil, nil, err
	}

	for {
		left, c, err = parsePostfix(left, c)
		if err != nil {
			return nil, nil, err
		}

		peek := c.Current()
		bp, ok := binaryBP[peek.Type]
		if !ok || bp <= minBP {
			break
		}

		// Left-associative operators recurse with minBP = bp, so a
		// further same-precedence operator is left for this loop to pick
		// up rather than being folded into the right operand. Right-
		// associative operators (just CARET) recurse one notch lower so
		// an equal-precedence operator nests inside the right operand
		// instead ("rbp = lbp" per §9's design notes — here expressed as
		// bp-1 since this table has no separate explicit rbp field).
		opTok := peek
		rest := c.Advance()
		nextMin := bp
		if rightAssoc[opTok.Type] {
			nextMin = bp - 1
		}
		right, rest2, err := ParseExpression(rest, nextMin)
		if err != nil {
			return nil, nil, err
		}
		left = &ast.BinaryExpression{Token: opTok, Left: left, Operator: opLiteral[opTok.Type], Right: right}
		c = rest2
	}
	return left, c, nil
}

// parsePostfix repeatedly tries call, index, and member forms on expr
// until none apply, implementing the "postfix forms tried first" rule of
// §4.3.
func parsePostfix(expr ast.Expression, c *Cursor) (ast.Expression, *Cursor, *mascalerr.Error) {
	for {
		switch c.Current().Type {
		case token.LPAREN:
			call, rest, err := parseCallArguments(expr, c)
			if err != nil {
				return nil, nil, err
			}
			expr, c = call, rest
		case token.LBRACKET:
			idx, rest, err := parseIndex(expr, c, false)
			if err != nil {
				return nil, nil, err
			}
			expr, c = idx, rest
		case token.LDYNARR:
			idx, rest, err := parseIndex(expr, c, true)
			if err != nil {
				return nil, nil, err
			}
			expr, c = idx, rest
		case token.DOT:
			tok := c.Current()
			rest := c.Advance()
			member, rest2, err := ParseExpression(rest, bpPostfix)
			if err != nil {
				return nil, nil, err
			}
			if _, ok := member.(*ast.CallExpression); !ok {
				return nil, nil, mascalerr.New(mascalerr.ParserError, tok.Pos,
					"member access requires a call expression")
			}
			expr, c = &ast.MemberExpression{Token: tok, Receiver: expr, Member: member}, rest2
		default:
			return expr, c, nil
		}
	}
}

func parseCallArguments(callee ast.Expression, c *Cursor) (ast.Expression, *Cursor, *mascalerr.Error) {
	ident, ok := callee.(*ast.Identifier)
	if !ok {
		return nil, nil, mascalerr.New(mascalerr.ParserError, c.Current().Pos, "call target must be a plain identifier")
	}
	tok := c.Current()
	c = c.Advance() // consume '('
	var args []ast.Expression
	if !c.Is(token.RPAREN) {
		for {
			arg, rest, err := ParseExpression(c, bpLowest)
			if err != nil {
				return nil, nil, err
			}
			args = append(args, arg)
			c = rest
			if c.Is(token.COMMA) {
				c = c.Advance()
				if c.Is(token.RPAREN) {
					return nil, nil, mascalerr.New(mascalerr.ParserError, c.Current().Pos, "trailing comma in argument list")
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
	return &ast.CallExpression{Token: tok, Function: ident, Arguments: args}, c, nil
}

func parseIndex(arr ast.Expression, c *Cursor, isDynamic bool) (ast.Expression, *Cursor, *mascalerr.Error) {
	tok := c.Current()
	closeType := token.RBRACKET
	if isDynamic {
		closeType = token.RDYNARR
	}
	c = c.Advance()
	idx, rest, err := ParseExpression(c, bpLowest)
	if err != nil {
		return nil, nil, err
	}
	c = rest
	if !c.Is(closeType) {
		return nil, nil, mascalerr.Newf(mascalerr.ParserError, c.Current().Pos, "expected closing index bracket, got %q", c.Current().Literal)
	}
	c = c.Advance()
	return &ast.IndexExpression{Token: tok, Array: arr, Index: idx, IsDynamic: isDynamic}, c, nil
}

// parsePrimary parses a primary expression and any prefix (unary)
// operator wrapping one.
func parsePrimary(c *Cursor) (ast.Expression, *Cursor, *mascalerr.Error) {
	tok := c.Current()
	switch tok.Type {
	case token.NOT:
		operand, rest, err := ParseExpression(c.Advance(), bpUnary)
		if err != nil {
			return nil, nil, err
		}
		return &ast.UnaryExpression{Token: tok, Operator: "Not", Right: operand}, rest, nil
	case token.MINUS:
		operand, rest, err := ParseExpression(c.Advance(), bpUnary)
		if err != nil {
			return nil, nil, err
		}
		return &ast.UnaryExpression{Token: tok, Operator: "Minus", Right: operand}, rest, nil
	case token.TYPEOF:
		operand, rest, err := ParseExpression(c.Advance(), bpUnary)
		if err != nil {
			return nil, nil, err
		}
		return &ast.UnaryExpression{Token: tok, Operator: "Typeof", Right: operand}, rest, nil
	case token.INT:
		rest := c.Advance()
		if rest.Is(token.IDENT) {
			return nil, nil, mascalerr.New(mascalerr.ParserError, rest.Current().Pos,
				"unexpected identifier immediately after numeric literal")
		}
		return &ast.IntegerLiteral{Token: tok, Literal: tok.Literal}, rest, nil
	case token.FLOAT:
		f, convErr := strconv.ParseFloat(tok.Literal, 64)
		if convErr != nil {
			return nil, nil, mascalerr.Newf(mascalerr.ParserError, tok.Pos, "invalid float literal %q", tok.Literal)
		}
		rest := c.Advance()
		if rest.Is(token.IDENT) {
			return nil, nil, mascalerr.New(mascalerr.ParserError, rest.Current().Pos,
				"unexpected identifier immediately after numeric literal")
		}
		return &ast.FloatLiteral{Token: tok, Value: f}, rest, nil
	case token.TRUE:
		return &ast.BooleanLiteral{Token: tok, Value: true}, c.Advance(), nil
	case token.FALSE:
		return &ast.BooleanLiteral{Token: tok, Value: false}, c.Advance(), nil
	case token.NULL:
		return &ast.NullLiteral{Token: tok}, c.Advance(), nil
	case token.STRING:
		return &ast.StringLiteral{Token: tok, Value: tok.Literal}, c.Advance(), nil
	case token.IDENT:
		return &ast.Identifier{Token: tok, Value: tok.Literal}, c.Advance(), nil
	case token.LPAREN:
		inner, rest, err := ParseExpression(c.Advance(), bpLowest)
		if err != nil {
			return nil, nil, err
		}
		if !rest.Is(token.RPAREN) {
			return nil, nil, mascalerr.Newf(mascalerr.ParserError, rest.Current().Pos, "expected ')', got %q", rest.Current().Literal)
		}
		return &ast.GroupedExpression{Token: tok, Expression: inner}, rest.Advance(), nil
	case token.LBRACKET:
		elems, rest, err := parseDelimitedExpressions(c.Advance(), token.RBRACKET)
		if err != nil {
			return nil, nil, err
		}
		return &ast.StaticArrayLiteral{Token: tok, Elements: elems}, rest, nil
	case token.LDYNARR:
		elems, rest, err := parseDelimitedExpressions(c.Advance(), token.RDYNARR)
		if err != nil {
			return nil, nil, err
		}
		return &ast.DynamicArrayLiteral{Token: tok, Elements: elems}, rest, nil
	case token.INTEGER, token.FLOATKW, token.STRINGKW, token.BOOLEAN, token.DYNAMIC, token.TYPE:
		ut, rest, err := parseUnprocessedType(c)
		if err != nil {
			return nil, nil, err
		}
		return &ast.TypeExpression{Token: tok, Type: ut}, rest, nil
	case token.RBRACKET, token.RDYNARR, token.RPAREN, token.RBRACE:
		return nil, nil, mascalerr.Newf(mascalerr.ParserError, tok.Pos, "unexpected closing token %q", tok.Literal)
	default:
		return nil, nil, mascalerr.Newf(mascalerr.ParserError, tok.Pos, "unexpected token %q in expression", tok.Literal)
	}
}

func parseDelimitedExpressions(c *Cursor, closeType token.Type) ([]ast.Expression, *Cursor, *mascalerr.Error) {
	var elems []ast.Expression
	if c.Is(closeType) {
		return elems, c.Advance(), nil
	}
	for {
		elem, rest, err := ParseExpression(c, bpLowest)
		if err != nil {
			return nil, nil, err
		}
		elems = append(elems, elem)
		c = rest
		if c.Is(token.COMMA) {
			c = c.Advance()
			continue
		}
		break
	}
	if !c.Is(closeType) {
		return nil, nil, mascalerr.Newf(mascalerr.ParserError, c.Current().Pos, "expected closing delimiter, got %q", c.Current().Literal)
	}
	return elems, c.Advance(), nil
}

// atomicKindOf maps a leading type-keyword token to its AtomicKind.
func atomicKindOf(t token.Type) (ast.AtomicKind, bool) {
	switch t {
	case token.INTEGER:
		return ast.KindInteger, true
	case token.FLOATKW:
		return ast.KindFloat, true
	case token.STRINGKW:
		return ast.KindString, true
	case token.BOOLEAN:
		return ast.KindBoolean, true
	case token.DYNAMIC:
		return ast.KindDynamic, true
	case token.TYPE:
		return ast.KindType, true
	}
	return 0, false
}

// parseUnprocessedType parses a single atomic type keyword into an atomic
// UnprocessedType, used for a bare type atom inside an expression and for
// a function's `-> Type` return type. No array-dimension suffix is parsed.
func parseUnprocessedType(c *Cursor) (*ast.UnprocessedType, *Cursor, *mascalerr.Error) {
	kind, ok := atomicKindOf(c.Current().Type)
	if !ok {
		return nil, nil, mascalerr.Newf(mascalerr.ParserError, c.Current().Pos, "expected a type keyword, got %q", c.Current().Literal)
	}
	ut := ast.AtomType(kind)
	c = c.Advance()
	return ut, c, nil
}
