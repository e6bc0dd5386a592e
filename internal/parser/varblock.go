package parser

import (
	"github.com/cwbudde/mascal/internal/ast"
	"github.com/cwbudde/mascal/internal/mascalerr"
	"github.com/cwbudde/mascal/internal/token"
)

// ParseVariableBlock parses the body of a `Variables { … }` region: zero
// or more `<AtomicKind> { … }` sub-blocks, each appearing at most once.
// Grounded on DWScript's internal/parser/declarations.go var-block
// loop, generalized from DWScript's single `var` block with inline type
// annotations to Mascal's six atomic sub-blocks (§4.5).
func ParseVariableBlock(c *Cursor) (*ast.VariableBlock, *mascalerr.Error) {
	vb := &ast.VariableBlock{}
	defined := map[token.Type]bool{}
	for !c.IsEOF() {
		kindTok := c.Current()
		if !token.AtomicKeyword(kindTok.Type) {
			return nil, mascalerr.Newf(mascalerr.ParserError, kindTok.Pos,
				"expected one of Integer/Float/String/Boolean/Dynamic/Type, got %q", kindTok.Literal)
		}
		if defined[kindTok.Type] {
			return nil, mascalerr.Newf(mascalerr.ParserError, kindTok.Pos, "%s sub-block redefined", kindTok.Type)
		}
		defined[kindTok.Type] = true

		inner, after, err := ExtractBlock(c.Advance(), nil, nil)
		if err != nil {
			return nil, err
		}
		decls, err := parseDeclList(inner, atomicKindOfMust(kindTok.Type))
		if err != nil {
			return nil, err
		}
		switch kindTok.Type {
		case token.INTEGER:
			vb.Integers = decls
		case token.FLOATKW:
			vb.Floats = decls
		case token.STRINGKW:
			vb.Strings = decls
		case token.BOOLEAN:
			vb.Booleans = decls
		case token.DYNAMIC:
			vb.Dynamics = decls
		case token.TYPE:
			vb.Types = decls
		}
		c = after
	}
	return vb, nil
}

func atomicKindOfMust(t token.Type) ast.AtomicKind {
	k, _ := atomicKindOf(t)
	return k
}

// parseDeclList parses a semicolon-terminated sequence of declarations:
//
//	[Const]? identifier (<…>|[…])* [?]? [ <- expression ]? ;
func parseDeclList(c *Cursor, atomic ast.AtomicKind) ([]*ast.VariableDecl, *mascalerr.Error) {
	var decls []*ast.VariableDecl
	for !c.IsEOF() {
		decl, rest, err := parseOneDecl(c, atomic)
		if err != nil {
			return nil, err
		}
		decls = append(decls, decl)
		c = rest
	}
	return decls, nil
}

func parseOneDecl(c *Cursor, atomic ast.AtomicKind) (*ast.VariableDecl, *Cursor, *mascalerr.Error) {
	tok := c.Current()
	decl := &ast.VariableDecl{Token: tok, Atomic: atomic}

	if c.Is(token.CONST) {
		decl.IsConstant = true
		c = c.Advance()
	}
	if !c.Is(token.IDENT) {
		return nil, nil, mascalerr.Newf(mascalerr.ParserError, c.Current().Pos, "expected a variable name, got %q", c.Current().Literal)
	}
	decl.Name = c.Current().Literal
	c = c.Advance()

	for c.Is(token.LBRACKET) || c.Is(token.LDYNARR) {
		isDyn := c.Is(token.LDYNARR)
		closeType := token.RBRACKET
		if isDyn {
			closeType = token.RDYNARR
		}
		c = c.Advance()
		if c.Is(closeType) {
			if !isDyn {
				return nil, nil, mascalerr.New(mascalerr.ParserError, c.Current().Pos,
					"a static array dimension requires a size expression")
			}
			// Bare `<<>>` dimension: a dynamic dimension with no declared
			// initial size.
			decl.Dimensions = append(decl.Dimensions, nil)
			decl.IsDynamicAt = append(decl.IsDynamicAt, isDyn)
			c = c.Advance()
			continue
		}
		size, rest, err := ParseExpression(c, bpLowest)
		if err != nil {
			return nil, nil, err
		}
		if !rest.Is(closeType) {
			return nil, nil, mascalerr.Newf(mascalerr.ParserError, rest.Current().Pos, "expected closing dimension bracket, got %q", rest.Current().Literal)
		}
		decl.Dimensions = append(decl.Dimensions, size)
		decl.IsDynamicAt = append(decl.IsDynamicAt, isDyn)
		c = rest.Advance()
	}

	if c.Is(token.QUESTION) {
		decl.IsNullable = true
		c = c.Advance()
	}

	if c.Is(token.ASSIGN) {
		c = c.Advance()
		init, rest, err := ParseExpression(c, bpLowest)
		if err != nil {
			return nil, nil, err
		}
		decl.Initializer = init
		c = rest
	}

	c, err := expectSemicolon(c)
	if err != nil {
		return nil, nil, err
	}
	return decl, c, nil
}
