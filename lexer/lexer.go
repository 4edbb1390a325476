// Package lexer turns register-machine assembly source into tokens.
//
// Whitespace and comments ("//" or ";" to end of line) are kept as
// whitespace tokens, so the token stream covers the whole source.
// Registers are written r3, R3 or $3. Memory addresses are written m7, M7
// or #7. Integers may be decimal, 0x hexadecimal, 0b binary or 0o octal,
// with an optional leading '-'. Labels (.name) lex as single tokens of kind
// other.
package lexer

import (
	"iter"
	"regexp"
	"slices"
	"strconv"
	"unicode/utf8"

	"github.com/ezrec/regasm/token"
)

var (
	reRegister = regexp.MustCompile(`^[rR$]([0-9]+)$`)
	reMemory   = regexp.MustCompile(`^[mM#]([0-9]+)$`)
)

// Scanner performs lexical analysis on assembly source.
type Scanner struct {
	source []byte
	cursor int
	line   int
}

// NewScanner creates a new scanner for the given source.
func NewScanner(source []byte) *Scanner {
	return &Scanner{
		source: source,
		line:   1,
	}
}

// Lex scans the entire source. The final token is always an EOF token.
func Lex(source []byte) []token.Token {
	return slices.Collect(Tokens(source))
}

// Tokens iterates over the tokens of source, ending with an EOF token.
func Tokens(source []byte) iter.Seq[token.Token] {
	return func(yield func(token.Token) bool) {
		s := NewScanner(source)
		for {
			tok := s.Next()
			if !yield(tok) || tok.Kind == token.KIND_EOF {
				return
			}
		}
	}
}

// Next returns the next token from the source.
func (s *Scanner) Next() token.Token {
	if s.cursor >= len(s.source) {
		return token.Token{Kind: token.KIND_EOF, Line: s.line, Offset: s.cursor}
	}

	ch := s.source[s.cursor]

	switch {
	case isSpace(ch) || s.atComment():
		return s.scanWhite()
	case isAlpha(ch) || ch == '$' || ch == '#' || ch == '.':
		return s.scanWord()
	case isDigit(ch) || (ch == '-' && isDigit(s.peek())):
		return s.scanNumber()
	}

	start := s.cursor
	_, size := utf8.DecodeRune(s.source[s.cursor:])
	s.cursor += size
	return s.token(token.KIND_OTHER, start, 0)
}

func (s *Scanner) token(kind token.Kind, start int, value uint64) token.Token {
	return token.Token{
		Kind:   kind,
		Text:   string(s.source[start:s.cursor]),
		Value:  value,
		Line:   s.line,
		Offset: start,
	}
}

func (s *Scanner) peek() byte {
	if s.cursor+1 >= len(s.source) {
		return 0
	}
	return s.source[s.cursor+1]
}

func (s *Scanner) atComment() bool {
	ch := s.source[s.cursor]
	return ch == ';' || (ch == '/' && s.peek() == '/')
}

// scanWhite consumes a run of whitespace and comments. The token is
// attributed to the line it starts on.
func (s *Scanner) scanWhite() token.Token {
	start := s.cursor
	line := s.line
	for s.cursor < len(s.source) {
		ch := s.source[s.cursor]
		switch {
		case ch == '\n':
			s.line++
			s.cursor++
		case isSpace(ch):
			s.cursor++
		case s.atComment():
			for s.cursor < len(s.source) && s.source[s.cursor] != '\n' {
				s.cursor++
			}
		default:
			return token.Token{Kind: token.KIND_WHITE, Text: string(s.source[start:s.cursor]), Line: line, Offset: start}
		}
	}
	return token.Token{Kind: token.KIND_WHITE, Text: string(s.source[start:s.cursor]), Line: line, Offset: start}
}

func (s *Scanner) scanWord() token.Token {
	start := s.cursor
	s.cursor++
	for s.cursor < len(s.source) && isWord(s.source[s.cursor]) {
		s.cursor++
	}
	word := string(s.source[start:s.cursor])

	if m := reRegister.FindStringSubmatch(word); m != nil {
		if index, err := strconv.ParseUint(m[1], 10, 64); err == nil {
			return s.token(token.KIND_REGISTER, start, index)
		}
		return s.token(token.KIND_OTHER, start, 0)
	}

	if m := reMemory.FindStringSubmatch(word); m != nil {
		if addr, err := strconv.ParseUint(m[1], 10, 64); err == nil {
			return s.token(token.KIND_MEMORY, start, addr)
		}
		return s.token(token.KIND_OTHER, start, 0)
	}

	// Labels (.name) and bare prefixes are not classified further.
	switch word[0] {
	case '$', '#', '.':
		return s.token(token.KIND_OTHER, start, 0)
	}

	return s.token(token.KIND_IDENT, start, 0)
}

func (s *Scanner) scanNumber() token.Token {
	start := s.cursor
	s.cursor++
	for s.cursor < len(s.source) && isWord(s.source[s.cursor]) {
		s.cursor++
	}
	word := string(s.source[start:s.cursor])

	if word[0] == '-' {
		v64, err := strconv.ParseInt(word, 0, 64)
		if err != nil {
			return s.token(token.KIND_OTHER, start, 0)
		}
		return s.token(token.KIND_INTEGER, start, uint64(v64))
	}

	v64, err := strconv.ParseUint(word, 0, 64)
	if err != nil {
		return s.token(token.KIND_OTHER, start, 0)
	}
	return s.token(token.KIND_INTEGER, start, v64)
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isAlpha(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isWord(ch byte) bool {
	return isAlpha(ch) || isDigit(ch)
}
