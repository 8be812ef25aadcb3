package lex

import (
	"context"
	"strings"

	"github.com/brackenfish/langkit/automaton"
	"github.com/brackenfish/langkit/internal/ferrors"
)

// Scanner drives the five per-category DFAs built from a LexicalSpec over
// raw input text, per spec 4.3.
type Scanner struct {
	dfas map[Category]*automaton.DFA
}

// NewScanner builds a Scanner from spec, constructing and determinizing one
// NFA per category (spec 4.1-4.2). Returns a *ferrors.SpecError if any
// category's productions are malformed.
func NewScanner(spec LexicalSpec) (*Scanner, error) {
	s := &Scanner{dfas: make(map[Category]*automaton.DFA, len(CategoryPriority))}
	for _, cat := range CategoryPriority {
		d, err := buildCategory(cat, spec.byCategory(cat))
		if err != nil {
			return nil, err
		}
		s.dfas[cat] = d
	}
	return s, nil
}

func isWhitespace(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n':
		return true
	default:
		return false
	}
}

// Scan tokenizes input in full, applying the longest-match rule at each
// position: every category's DFA is run from the current position, the
// category producing the longest accepted lexeme wins, and a tie among
// equal-longest categories is broken by CategoryPriority (so a lexeme that
// is simultaneously a valid keyword and a valid identifier is always
// classified as the keyword). A winning keyword or constant match is then
// subject to spec 4.3's boundary rule: the character right after it must be
// whitespace, end-of-input, or the start of a valid delimiter match, else
// the match is rejected and the next-longest candidate (from a different
// category) is tried instead — this is what stops "123" from being read out
// of "123abc" only to leave "abc" dangling as an identifier right after it.
// Returns a *ferrors.AnalysisError naming the offending line if no category
// matches at some position, including when every candidate is rejected by
// the boundary rule.
func (s *Scanner) Scan(ctx context.Context, input string) ([]Token, error) {
	var tokens []Token
	line := 1
	pos := 0

	for pos < len(input) {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if isWhitespace(input[pos]) {
			if input[pos] == '\n' {
				line++
			}
			pos++
			continue
		}

		bestCat, bestLen := s.bestMatch(input[pos:])
		if bestLen == 0 {
			rest := input[pos:]
			if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
				rest = rest[:nl]
			}
			return nil, ferrors.NewAnalysisError(line, strings.TrimRight(rest, "\r"), "no lexical category matches input starting here")
		}

		lexeme := input[pos : pos+bestLen]
		tokens = append(tokens, Token{Line: line, Category: bestCat, Lexeme: lexeme})
		line += strings.Count(lexeme, "\n")
		pos += bestLen
	}

	tokens = append(tokens, End(line))
	return tokens, nil
}

// bestMatch finds the longest-match winner at the start of rest among
// categories not excluded by a prior boundary-rule rejection, applying the
// keyword/constant boundary rule (spec 4.3) and retrying with that category
// excluded whenever it fails. Returns a zero Category and length 0 if no
// category ultimately matches.
func (s *Scanner) bestMatch(rest string) (Category, int) {
	excluded := map[Category]bool{}

	for {
		bestCat := Category("")
		bestLen := 0
		for _, cat := range CategoryPriority {
			if excluded[cat] {
				continue
			}
			if l := longestMatch(s.dfas[cat], rest); l > bestLen {
				bestLen = l
				bestCat = cat
			}
		}

		if bestLen == 0 {
			return "", 0
		}

		if (bestCat == CategoryKeyword || bestCat == CategoryConstant) && !s.boundaryOK(rest[bestLen:]) {
			excluded[bestCat] = true
			continue
		}

		return bestCat, bestLen
	}
}

// boundaryOK reports whether after is a valid continuation point for a
// keyword or constant match per spec 4.3: empty (end-of-input), starting
// with whitespace, or the start of a valid delimiter match.
func (s *Scanner) boundaryOK(after string) bool {
	if after == "" {
		return true
	}
	if isWhitespace(after[0]) {
		return true
	}
	return longestMatch(s.dfas[CategoryDelimiter], after) > 0
}

// longestMatch runs d over s starting at its start state, returning the
// length of the longest prefix of s that lands on an accepting state (0 if
// none does, including if d rejects immediately).
func longestMatch(d *automaton.DFA, s string) int {
	state := d.Start
	best := -1
	if d.Accept[state] {
		best = 0
	}
	for i := 0; i < len(s); i++ {
		next, ok := d.Step(state, s[i])
		if !ok {
			break
		}
		state = next
		if d.Accept[state] {
			best = i + 1
		}
	}
	if best < 0 {
		return 0
	}
	return best
}
