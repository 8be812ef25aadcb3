// Package lex builds a Scanner from a lexical grammar spec and drives it
// over input text with longest-match semantics (spec 4.1-4.3). It owns the
// translation from right-linear production strings to automaton.NFA, which
// the automaton package then determinizes; lex never constructs an NFA
// edge itself without going through that translation, so automaton stays
// ignorant of the production-string syntax entirely.
package lex

// Category names one of the five fixed lexical categories a grammar file
// always declares, in the file's own declaration order (spec 6). The
// scanner's *matching* priority order is different and is fixed by
// CategoryPriority below, per spec 4.3.
type Category string

const (
	CategoryKeyword    Category = "keyword"
	CategoryIdentifier Category = "identifier"
	CategoryConstant   Category = "constant"
	CategoryOperator   Category = "operator"
	CategoryDelimiter  Category = "delimiter"

	// categoryEnd is the synthetic category of the end-of-input token the
	// scanner appends after the last real token (spec 3).
	categoryEnd Category = "$end"
)

// CategoryPriority is the fixed order the scanner driver tries categories
// in at each token boundary (spec 4.3): keyword and constant each take
// priority over identifier (a keyword lexeme that also matches identifier
// stays a keyword; a constant lexeme is never reinterpreted as an
// identifier), followed by operator and delimiter.
var CategoryPriority = []Category{
	CategoryKeyword,
	CategoryConstant,
	CategoryIdentifier,
	CategoryOperator,
	CategoryDelimiter,
}

// ProductionGroup is one named group of right-linear productions within a
// category — e.g. the group recognizing the single keyword "if", or the
// group recognizing the operator family built on "+". Production holds the
// group's production strings verbatim, each of the form
// "<LHS>-><atom><atom>...<atom>[bare]" per spec 4.1.
type ProductionGroup struct {
	Description string
	Production  []string
}

// CategorySpec is one category's worth of grammar-file content: a
// description plus the ordered list of production groups whose union
// defines the category's language.
type CategorySpec struct {
	Description string
	Groups      []ProductionGroup
}

// LexicalSpec is the five-category lexical grammar file (spec 6), in its
// fixed file order: keyword, identifier, constant, operator, delimiter.
type LexicalSpec struct {
	Keyword    CategorySpec
	Identifier CategorySpec
	Constant   CategorySpec
	Operator   CategorySpec
	Delimiter  CategorySpec
}

// byCategory returns s's CategorySpec for cat, for iteration code that
// needs to walk every category without repeating five field accesses.
func (s LexicalSpec) byCategory(cat Category) CategorySpec {
	switch cat {
	case CategoryKeyword:
		return s.Keyword
	case CategoryIdentifier:
		return s.Identifier
	case CategoryConstant:
		return s.Constant
	case CategoryOperator:
		return s.Operator
	case CategoryDelimiter:
		return s.Delimiter
	default:
		return CategorySpec{}
	}
}
