// Package token defines the lexical tokens of the register-machine assembly
// dialect, as produced by the lexer and consumed by the assembler.
package token

import (
	"fmt"
)

// Kind is the lexical classification of a token.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	KIND_IDENT    = Kind(0) // ident
	KIND_REGISTER = Kind(1) // register
	KIND_INTEGER  = Kind(2) // integer
	KIND_MEMORY   = Kind(3) // memory
	KIND_WHITE    = Kind(4) // white
	KIND_EOF      = Kind(5) // eof
	KIND_OTHER    = Kind(6) // other
)

// Token is a classified fragment of source text.
type Token struct {
	Kind   Kind   // Lexical kind.
	Text   string // Source slice the token was lexed from.
	Value  uint64 // Register index, memory address, or integer bit pattern.
	Line   int    // Source line, 1 based. Zero if synthesized.
	Offset int    // Byte offset of Text in the source.
}

// EOF is the end-of-stream sentinel.
var EOF = Token{Kind: KIND_EOF}

// Ident creates an identifier token.
func Ident(text string) Token {
	return Token{Kind: KIND_IDENT, Text: text}
}

// Register creates a register token for register index.
func Register(index uint64) Token {
	return Token{Kind: KIND_REGISTER, Text: fmt.Sprintf("r%d", index), Value: index}
}

// Integer creates an integer literal token. Negative values keep their
// two's-complement bit pattern.
func Integer(value int64) Token {
	return Token{Kind: KIND_INTEGER, Text: fmt.Sprintf("%d", value), Value: uint64(value)}
}

// Memory creates a memory address token.
func Memory(addr uint64) Token {
	return Token{Kind: KIND_MEMORY, Text: fmt.Sprintf("#%d", addr), Value: addr}
}

// White creates a whitespace token.
func White(text string) Token {
	return Token{Kind: KIND_WHITE, Text: text}
}

// Other creates a token the lexer could not classify.
func Other(text string) Token {
	return Token{Kind: KIND_OTHER, Text: text}
}

// IsWhite returns true for whitespace tokens.
func (tok Token) IsWhite() bool {
	return tok.Kind == KIND_WHITE
}

// String returns a debugging representation of the token.
func (tok Token) String() string {
	switch tok.Kind {
	case KIND_REGISTER, KIND_INTEGER, KIND_MEMORY:
		return fmt.Sprintf("%v(%v)", tok.Kind, tok.Value)
	case KIND_EOF:
		return tok.Kind.String()
	default:
		return fmt.Sprintf("%v(%q)", tok.Kind, tok.Text)
	}
}
