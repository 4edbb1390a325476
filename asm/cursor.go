package asm

import (
	"github.com/ezrec/regasm/token"
)

// Cursor is a forward-only view of a token sequence that hides whitespace
// from its callers.
type Cursor struct {
	toks []token.Token
	pos  int
}

// NewCursor creates a cursor positioned at the first token.
func NewCursor(toks []token.Token) *Cursor {
	return &Cursor{toks: toks}
}

// HasMore returns true while the position is within the sequence.
func (c *Cursor) HasMore() bool {
	return c.pos < len(c.toks)
}

// Pos returns the index of the current token.
func (c *Cursor) Pos() int {
	return c.pos
}

// Current returns the token at the position, or token.EOF past the end.
func (c *Cursor) Current() token.Token {
	if !c.HasMore() {
		return token.EOF
	}
	return c.toks[c.pos]
}

// Advance moves forward one token, then past any whitespace.
func (c *Cursor) Advance() {
	c.pos++
	for c.HasMore() && c.toks[c.pos].IsWhite() {
		c.pos++
	}
}

// Next advances and returns the new current token.
func (c *Cursor) Next() token.Token {
	c.Advance()
	return c.Current()
}
