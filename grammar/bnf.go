package grammar

import (
	"fmt"
	"strings"

	"github.com/brackenfish/langkit/internal/ferrors"
)

// ParseBNF parses a small textual grammar notation into a slice of Rule,
// suitable for New. It exists purely as a test and documentation
// convenience — production grammar files go through the syntactic grammar
// file format (spec 6), decoded by the CLI shell, not through this parser.
//
// Format, one rule per non-blank line:
//
//	<NT> = alt1 | alt2 | ...
//
// where each alt is a space-separated sequence of symbols (a bracketed
// nonterminal or terminal alias like <A> or <identifier>, a bare literal
// terminal like + or if, or the empty marker <#>). Lines starting with #
// are comments. The first rule's nonterminal is the grammar's start symbol.
func ParseBNF(text string) ([]Rule, error) {
	var rules []Rule

	for lineNo, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		lhs, rhs, ok := strings.Cut(line, "=")
		if !ok {
			return nil, ferrors.NewSpecError("bnf line %d: missing '=': %q", lineNo+1, line)
		}

		left := Symbol(strings.TrimSpace(lhs))
		if !left.IsNonterminal() {
			return nil, ferrors.NewSpecError("bnf line %d: left-hand side %q is not a nonterminal", lineNo+1, left)
		}

		var prods []Symbols
		for _, alt := range strings.Split(rhs, "|") {
			fields := strings.Fields(alt)
			seq := make(Symbols, 0, len(fields))
			for _, f := range fields {
				seq = append(seq, Symbol(f))
			}
			if len(seq) == 0 {
				seq = Symbols{Empty}
			}
			prods = append(prods, seq)
		}

		rules = append(rules, Rule{NonTerminal: left, Productions: prods})
	}

	if len(rules) == 0 {
		return nil, ferrors.NewSpecError("bnf text contains no rules")
	}

	return rules, nil
}

// MustParseBNF is ParseBNF for tests and examples that would rather panic
// than thread an error through table-driven setup.
func MustParseBNF(text string) []Rule {
	rules, err := ParseBNF(text)
	if err != nil {
		panic(fmt.Sprintf("grammar.MustParseBNF: %v", err))
	}
	return rules
}
