// Package ferrors defines the three error kinds the front end can raise, per
// the error handling design: specification errors (malformed grammar input,
// fatal at load time), construction errors (ACTION/GOTO conflicts, fatal at
// build time), and analysis errors (lexer/parser failures at a specific
// source position, halting on first occurrence). This mirrors the role
// tunaq's internal/ictiobus/icterrors package plays for ictiobus, which is
// referenced throughout that package's parse and lex code but was not
// included in this retrieval pack.
package ferrors

import "fmt"

// SpecError reports a malformed grammar specification, detected while
// loading or validating grammar data, before any construction begins.
type SpecError struct {
	Msg string
}

func (e *SpecError) Error() string {
	return fmt.Sprintf("grammar specification error: %s", e.Msg)
}

// NewSpecError builds a SpecError from a format string.
func NewSpecError(format string, args ...interface{}) *SpecError {
	return &SpecError{Msg: fmt.Sprintf(format, args...)}
}

// ConstructionError reports a problem found while building a DFA or an
// ACTION/GOTO table: an unreachable start, an empty grammar, or — most
// commonly — an ACTION/GOTO key collision that means the grammar is not
// LR(1) for the lookahead in play.
type ConstructionError struct {
	Msg      string
	State    string
	Symbol   string
	Conflict []string // stringified conflicting items, for diagnostics
}

func (e *ConstructionError) Error() string {
	if e.State == "" {
		return fmt.Sprintf("grammar construction error: %s", e.Msg)
	}
	return fmt.Sprintf("grammar construction error in state %s on symbol %q: %s", e.State, e.Symbol, e.Msg)
}

// NewConstructionError builds a ConstructionError not tied to a particular
// state/symbol pair (e.g. "empty grammar", "start symbol never referenced").
func NewConstructionError(format string, args ...interface{}) *ConstructionError {
	return &ConstructionError{Msg: fmt.Sprintf(format, args...)}
}

// NewConflictError builds a ConstructionError for an ACTION/GOTO collision.
func NewConflictError(state, symbol string, conflict []string, format string, args ...interface{}) *ConstructionError {
	return &ConstructionError{
		Msg:      fmt.Sprintf(format, args...),
		State:    state,
		Symbol:   symbol,
		Conflict: conflict,
	}
}

// AnalysisError reports a failure found while scanning or parsing actual
// input: an unmatched character, or a parser ACTION/GOTO miss. Line is
// 1-indexed; Lexeme is the offending text (the remainder of the line for a
// lexer error, the rejected token's lexeme for a parser error). Candidates
// holds, for parser misses, the partial productions the current state was
// expecting (spec 4.7 step 5); it is empty for lexer errors.
type AnalysisError struct {
	Msg        string
	Line       int
	Lexeme     string
	Candidates []string
}

func (e *AnalysisError) Error() string {
	if len(e.Candidates) == 0 {
		return fmt.Sprintf("line %d: %s: %q", e.Line, e.Msg, e.Lexeme)
	}
	return fmt.Sprintf("line %d: %s: %q (expected one of: %v)", e.Line, e.Msg, e.Lexeme, e.Candidates)
}

// NewAnalysisError builds an AnalysisError for a lexer failure.
func NewAnalysisError(line int, lexeme string, format string, args ...interface{}) *AnalysisError {
	return &AnalysisError{Msg: fmt.Sprintf(format, args...), Line: line, Lexeme: lexeme}
}

// NewParseError builds an AnalysisError for a parser ACTION/GOTO miss,
// including the candidate items the state was expecting.
func NewParseError(line int, lexeme string, candidates []string, format string, args ...interface{}) *AnalysisError {
	return &AnalysisError{Msg: fmt.Sprintf(format, args...), Line: line, Lexeme: lexeme, Candidates: candidates}
}
