package grammar

import "strings"

// Symbol is a single element of a production's right-hand side, or a
// production's left-hand side. Its textual form doubles as its
// classification: a nonterminal or terminal-alias is written surrounded by
// angle brackets, the empty marker is the literal "<#>", and anything else
// is a literal terminal.
type Symbol string

// Empty is the empty-string marker, also used as the end-of-input terminal
// key in ACTION tables (spec calls both of these "<#>").
const Empty Symbol = "<#>"

// aliasNames are the terminal-aliases recognized inside angle brackets: a
// distinguished nonterminal-shaped symbol that actually matches any token of
// the named lexical category, rather than a literal lexeme.
var aliasNames = map[string]bool{
	"identifier": true,
	"constant":   true,
}

// Kind classifies a Symbol.
type Kind int

const (
	// KindTerminal is a literal terminal string, matched by exact lexeme.
	KindTerminal Kind = iota
	// KindNonterminal is a grammar nonterminal, e.g. <EXPR>.
	KindNonterminal
	// KindTerminalAlias is a terminal-alias, e.g. <identifier>.
	KindTerminalAlias
	// KindEmpty is the <#> marker.
	KindEmpty
)

func (k Kind) String() string {
	switch k {
	case KindTerminal:
		return "terminal"
	case KindNonterminal:
		return "nonterminal"
	case KindTerminalAlias:
		return "terminal-alias"
	case KindEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// Kind classifies the symbol. Every Symbol maps to exactly one Kind.
func (s Symbol) Kind() Kind {
	if s == Empty {
		return KindEmpty
	}
	str := string(s)
	if len(str) >= 2 && str[0] == '<' && str[len(str)-1] == '>' {
		inner := str[1 : len(str)-1]
		if aliasNames[inner] {
			return KindTerminalAlias
		}
		return KindNonterminal
	}
	return KindTerminal
}

// IsNonterminal reports whether s classifies as a nonterminal.
func (s Symbol) IsNonterminal() bool { return s.Kind() == KindNonterminal }

// IsTerminalAlias reports whether s classifies as a terminal-alias.
func (s Symbol) IsTerminalAlias() bool { return s.Kind() == KindTerminalAlias }

// IsTerminal reports whether s classifies as a literal terminal or a
// terminal-alias — anything the scanner, rather than the grammar, produces.
func (s Symbol) IsTerminal() bool {
	k := s.Kind()
	return k == KindTerminal || k == KindTerminalAlias
}

// IsEmpty reports whether s is the <#> marker.
func (s Symbol) IsEmpty() bool { return s == Empty }

// Category returns the lexical category name a terminal-alias matches
// against (e.g. "identifier" for <identifier>). It panics if s is not a
// terminal-alias; callers should check Kind first.
func (s Symbol) Category() string {
	if s.Kind() != KindTerminalAlias {
		panic("Category called on non-alias symbol " + string(s))
	}
	return strings.Trim(string(s), "<>")
}

// Name returns the bare name of a nonterminal (without the angle brackets).
// It panics if s is not a nonterminal.
func (s Symbol) Name() string {
	if s.Kind() != KindNonterminal {
		panic("Name called on non-nonterminal symbol " + string(s))
	}
	return strings.Trim(string(s), "<>")
}

// Symbols is a convenience alias for a sequence of Symbol, such as the
// right-hand side of a Production.
type Symbols []Symbol

// String joins the symbols with a single space, matching the textual
// notation used throughout this package's diagnostics.
func (ss Symbols) String() string {
	parts := make([]string, len(ss))
	for i := range ss {
		parts[i] = string(ss[i])
	}
	return strings.Join(parts, " ")
}

// Equal reports whether ss and o contain the same symbols in the same order.
func (ss Symbols) Equal(o Symbols) bool {
	if len(ss) != len(o) {
		return false
	}
	for i := range ss {
		if ss[i] != o[i] {
			return false
		}
	}
	return true
}
