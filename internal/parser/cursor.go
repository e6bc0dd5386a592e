// Package parser turns a Mascal token stream into an AST: the Pratt-style
// expression parser, the block-structured statement parser, and the
// program/function top-level assembler.
package parser

import "github.com/cwbudde/mascal/internal/token"

// Cursor is a non-owning, position-indexed window over a token slice. It
// supports lookahead, advancing, and carving out sub-windows (used by the
// block extractor to hand the statement parser exactly the tokens strictly
// between a matching pair of braces) without ever copying or re-lexing.
// Every operation is immutable: Advance returns a new Cursor rather than
// mutating the receiver, so a parser function can always hand a caller back
// the cursor state it produced without aliasing surprises.
//
// Grounded on DWScript's internal/parser.TokenCursor (Peek/Advance/
// Mark/ResetTo over a lazily lexer-buffered token slice); this Cursor
// drops the lazy buffering (Mascal source files are small enough to
// tokenize eagerly once) and adds Slice, the sub-window operation the
// DWScript's single flat token stream never needed.
type Cursor struct {
	tokens []token.Token
	pos    int
}

// NewCursor wraps a complete token slice (EOF-terminated) in a Cursor
// positioned at its first token.
func NewCursor(tokens []token.Token) *Cursor {
	return &Cursor{tokens: tokens, pos: 0}
}

// Current returns the token at the cursor's position, or the stream's
// final token (expected to be EOF) if the position has run past the end.
func (c *Cursor) Current() token.Token {
	return c.Peek(0)
}

// Peek returns the token n positions ahead of the cursor (Peek(0) ==
// Current()), clamped to the last token in the window once n runs past
// the end.
func (c *Cursor) Peek(n int) token.Token {
	idx := c.pos + n
	if idx < 0 {
		idx = 0
	}
	if idx >= len(c.tokens) {
		idx = len(c.tokens) - 1
	}
	if idx < 0 {
		return token.Token{Type: token.EOF}
	}
	return c.tokens[idx]
}

// Advance returns a new Cursor one token ahead.
func (c *Cursor) Advance() *Cursor {
	return c.AdvanceN(1)
}

// AdvanceN returns a new Cursor n tokens ahead.
func (c *Cursor) AdvanceN(n int) *Cursor {
	pos := c.pos + n
	if pos > len(c.tokens) {
		pos = len(c.tokens)
	}
	return &Cursor{tokens: c.tokens, pos: pos}
}

// Is reports whether the current token has type t.
func (c *Cursor) Is(t token.Type) bool {
	return c.Current().Type == t
}

// PeekIs reports whether the token n positions ahead has type t.
func (c *Cursor) PeekIs(n int, t token.Type) bool {
	return c.Peek(n).Type == t
}

// IsEOF reports whether the cursor has reached the end of the window.
func (c *Cursor) IsEOF() bool {
	return c.pos >= len(c.tokens) || c.Current().Type == token.EOF
}

// Last returns the final token of the entire underlying window (not the
// cursor's current position).
func (c *Cursor) Last() token.Token {
	if len(c.tokens) == 0 {
		return token.Token{Type: token.EOF}
	}
	return c.tokens[len(c.tokens)-1]
}

// Len reports the number of tokens remaining in the window from the
// cursor's current position to its end (not including any EOF sentinel
// beyond the window, since Slice windows carry none).
func (c *Cursor) Len() int {
	if c.pos >= len(c.tokens) {
		return 0
	}
	return len(c.tokens) - c.pos
}

// Slice returns a new Cursor over the sub-window [lo, hi) of the tokens
// remaining ahead of the cursor's current position (lo and hi are
// relative offsets from Current(), matching Peek's indexing). The
// returned cursor's position starts at its own index 0. Every token it
// yields keeps its original source Position, so diagnostics raised while
// parsing the sub-window still point at the right line and column.
func (c *Cursor) Slice(lo, hi int) *Cursor {
	base := c.pos
	if base+lo < 0 {
		lo = -base
	}
	if base+hi > len(c.tokens) {
		hi = len(c.tokens) - base
	}
	if hi < lo {
		hi = lo
	}
	return &Cursor{tokens: c.tokens[base+lo : base+hi], pos: 0}
}
