package lex

import (
	"fmt"

	"github.com/brackenfish/langkit/grammar"
)

// Token is one scanned lexeme together with its category and source line
// (spec 3). Line numbers start at 1 and advance on every newline byte
// consumed, including newlines inside a matched lexeme.
type Token struct {
	Line     int
	Category Category
	Lexeme   string
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%d", t.Category, t.Lexeme, t.Line)
}

// End returns the synthetic end-of-input token the scanner appends after
// the last real token, at the given final line number.
func End(line int) Token {
	return Token{Line: line, Category: categoryEnd}
}

// Symbol returns the grammar.Symbol this token is matched against in an
// ACTION table lookup (spec 4.7 step 1): the end token maps to
// grammar.Empty; an identifier or constant token maps to its terminal-alias
// form (<identifier> / <constant>), since the syntactic grammar references
// those categories by alias rather than by specific lexeme; every other
// token maps to the literal lexeme itself, since keywords, operators, and
// delimiters appear in the syntactic grammar as exact-match terminals.
func (t Token) Symbol() grammar.Symbol {
	switch t.Category {
	case categoryEnd:
		return grammar.Empty
	case CategoryIdentifier:
		return grammar.Symbol("<identifier>")
	case CategoryConstant:
		return grammar.Symbol("<constant>")
	default:
		return grammar.Symbol(t.Lexeme)
	}
}

// Stream is a finished, ordered sequence of tokens with a cursor, as
// produced by Scanner.Scan. It is deliberately not lazy: spec 4.3's
// longest-match driver already has to look at the whole remaining input
// per category attempt, so nothing is gained by streaming token-by-token,
// and a materialized slice makes the parser driver's diagnostics (spec 4.7
// step 5, which needs to report the offending token) simpler to reason
// about.
type Stream struct {
	tokens []Token
	pos    int
}

// NewStream wraps tokens (expected to already end with an End token) in a
// cursor.
func NewStream(tokens []Token) *Stream {
	return &Stream{tokens: tokens}
}

// Peek returns the token at the cursor without advancing it.
func (s *Stream) Peek() Token {
	if s.pos >= len(s.tokens) {
		return End(0)
	}
	return s.tokens[s.pos]
}

// Advance moves the cursor forward one token.
func (s *Stream) Advance() {
	if s.pos < len(s.tokens) {
		s.pos++
	}
}

// Tokens returns the full underlying token slice.
func (s *Stream) Tokens() []Token {
	return s.tokens
}
