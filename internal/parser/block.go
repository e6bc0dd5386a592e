package parser

import (
	"github.com/cwbudde/mascal/internal/mascalerr"
	"github.com/cwbudde/mascal/internal/token"
)

// ExtractBlock consumes a braced region starting at the cursor's current
// token (which must be `{`). It walks the region tracking brace depth, and
// at depth 1 — the region's own top level — classifies every scopable
// token (see token.IsScopable) against two allowlists: every type in
// requireInside must be observed at depth 1 before the matching close
// brace, and every type in allowNested may additionally appear there; any
// other scopable token seen at depth 1 is a parser error. It returns a
// Cursor over the tokens strictly between the matching braces (depth-1
// content, braces excluded) and a Cursor positioned just after the closing
// brace, for the caller to continue parsing from.
//
// Mascal's braces have no direct DWScript analogue (DWScript scopes on
// BEGIN/END rather than brace-nested regions at this granularity), so the
// depth-counted extraction here is new, but it follows the same
// imperative, single-pass style as DWScript's block statement parser
// (internal/parser/statements.go's `parseBlockStatement`, which also
// counts BEGIN/END nesting rather than relying on recursive-descent
// balancing alone).
func ExtractBlock(c *Cursor, requireInside, allowNested []token.Type) (inner *Cursor, after *Cursor, err *mascalerr.Error) {
	if !c.Is(token.LBRACE) {
		return nil, nil, mascalerr.Newf(mascalerr.ParserError, c.Current().Pos,
			"expected '{', got %q", c.Current().Literal)
	}
	start := c.Advance()

	seen := make(map[token.Type]bool)
	allowed := make(map[token.Type]bool, len(requireInside)+len(allowNested))
	for _, t := range requireInside {
		allowed[t] = true
	}
	for _, t := range allowNested {
		allowed[t] = true
	}

	depth := 1
	cur := start
	innerLen := 0
	for {
		if cur.IsEOF() {
			return nil, nil, mascalerr.New(mascalerr.ParserError, c.Current().Pos, "unbalanced braces: missing '}'")
		}
		tok := cur.Current()
		switch tok.Type {
		case token.LBRACE:
			depth++
		case token.RBRACE:
			depth--
			if depth == 0 {
				goto closed
			}
		default:
			if depth == 1 && token.IsScopable(tok.Type) {
				if !allowed[tok.Type] {
					return nil, nil, mascalerr.Newf(mascalerr.ParserError, tok.Pos,
						"unexpected %s block here", tok.Type)
				}
				seen[tok.Type] = true
			}
		}
		cur = cur.Advance()
		innerLen++
	}
closed:
	for _, t := range requireInside {
		if !seen[t] {
			return nil, nil, mascalerr.Newf(mascalerr.ParserError, c.Current().Pos,
				"missing required block(s): %s", t)
		}
	}
	inner = start.Slice(0, innerLen)
	after = cur.Advance()
	return inner, after, nil
}
