package grammar

import (
	"fmt"

	"github.com/brackenfish/langkit/internal/ferrors"
	"github.com/brackenfish/langkit/internal/set"
)

// Production is one alternative of a nonterminal's rewrite rule: an ordered
// quadruple of (index, description, left, right). Index is a stable key used
// throughout the parser pipeline; index 0 is always reserved for the
// augmented start production <S'> -> <START>.
type Production struct {
	Index       int
	Description string
	Left        Symbol
	Right       Symbols
}

func (p Production) String() string {
	return fmt.Sprintf("%s -> %s", p.Left, p.Right.String())
}

// EffectiveRight returns p.Right with the empty-production convention
// collapsed away: a production with no real right-hand side is stored as
// the single-element Symbols{Empty} (so Rule/New callers always have a
// non-nil Right to hand over), but for dot-position purposes spec 3 defines
// an empty production's right-hand side as the zero-length sequence ("a
// production with empty right-hand side"), so a dot at position 0 is
// already at position |right| = 0, i.e. the item is already complete.
// Every caller that advances or compares a dot position against p.Right
// must go through this instead of reading p.Right directly, or an empty
// production's single reduce item is never recognized as complete.
func (p Production) EffectiveRight() Symbols {
	if len(p.Right) == 1 && p.Right[0] == Empty {
		return nil
	}
	return p.Right
}

// augmentedStartName is the synthetic nonterminal introduced to hold the
// augmented start production, per spec 3: "<S'> -> <START>".
const augmentedStartName Symbol = "<S'>"

// Rule is a single group of grammar-file input: one nonterminal and its
// ordered list of production right-hand sides, as they appear in the
// syntactic grammar file (spec 6).
type Rule struct {
	NonTerminal Symbol
	Productions []Symbols
}

// Grammar is the shared grammar model driving both the FIRST-set solver and
// the LR(1) item-set builder. It is always augmented: Productions[0] is
// always <S'> -> <START>, where <START> is the original grammar's start
// symbol (the left-hand side of the first rule given to New).
type Grammar struct {
	Productions []Production
	start       Symbol // original (pre-augmentation) start symbol
}

// New builds an augmented Grammar from an ordered list of rules. The first
// rule's nonterminal becomes the original start symbol; production 0 of the
// result is always the augmented start <S'> -> <START>.
//
// New returns a *ferrors.SpecError if rules is empty, if rules contains a
// left-hand side that is not a nonterminal, or if any rule has zero
// productions.
func New(rules []Rule) (Grammar, error) {
	if len(rules) == 0 {
		return Grammar{}, ferrors.NewSpecError("grammar has no rules")
	}

	g := Grammar{start: rules[0].NonTerminal}

	g.Productions = append(g.Productions, Production{
		Index: 0,
		Left:  augmentedStartName,
		Right: Symbols{g.start},
	})

	idx := 1
	for _, r := range rules {
		if !r.NonTerminal.IsNonterminal() {
			return Grammar{}, ferrors.NewSpecError("rule left-hand side %q is not a nonterminal", r.NonTerminal)
		}
		if len(r.Productions) == 0 {
			return Grammar{}, ferrors.NewSpecError("nonterminal %q has no productions", r.NonTerminal)
		}
		for _, rhs := range r.Productions {
			g.Productions = append(g.Productions, Production{
				Index: idx,
				Left:  r.NonTerminal,
				Right: rhs,
			})
			idx++
		}
	}

	if err := g.validateReferences(); err != nil {
		return Grammar{}, err
	}

	return g, nil
}

// validateReferences ensures every nonterminal symbol mentioned on a
// right-hand side has at least one production.
func (g Grammar) validateReferences() error {
	defined := set.New[Symbol]()
	for _, p := range g.Productions {
		defined.Add(p.Left)
	}
	for _, p := range g.Productions {
		for _, s := range p.Right {
			if s.IsNonterminal() && !defined.Has(s) {
				return ferrors.NewSpecError("nonterminal %q is used but never defined", s)
			}
		}
	}
	return nil
}

// StartSymbol returns the original (pre-augmentation) start symbol.
func (g Grammar) StartSymbol() Symbol { return g.start }

// AugmentedStart returns the synthetic start symbol <S'>.
func (g Grammar) AugmentedStart() Symbol { return augmentedStartName }

// Rule returns every production whose left-hand side is nt, in declaration
// order. Returns nil if nt has no productions.
func (g Grammar) Rule(nt Symbol) []Production {
	var out []Production
	for _, p := range g.Productions {
		if p.Left == nt {
			out = append(out, p)
		}
	}
	return out
}

// Production looks up a production by its stable index. The zero value and
// false are returned if idx is out of range.
func (g Grammar) Production(idx int) (Production, bool) {
	if idx < 0 || idx >= len(g.Productions) {
		return Production{}, false
	}
	return g.Productions[idx], true
}

// NonTerminals returns every distinct nonterminal defined by the grammar,
// including the augmented start symbol, in first-appearance order.
func (g Grammar) NonTerminals() []Symbol {
	seen := set.New[Symbol]()
	var out []Symbol
	for _, p := range g.Productions {
		if !seen.Has(p.Left) {
			seen.Add(p.Left)
			out = append(out, p.Left)
		}
	}
	return out
}

// Terminals returns every distinct terminal or terminal-alias symbol
// referenced anywhere on a right-hand side, in first-appearance order.
func (g Grammar) Terminals() []Symbol {
	seen := set.New[Symbol]()
	var out []Symbol
	for _, p := range g.Productions {
		for _, s := range p.Right {
			if s.IsTerminal() && !seen.Has(s) {
				seen.Add(s)
				out = append(out, s)
			}
		}
	}
	return out
}

// IsNullable reports whether nt can derive the empty string, i.e. whether
// <#> is in FIRST(nt).
func (g Grammar) IsNullable(nt Symbol) bool {
	return g.FIRST()[nt].Has(Empty)
}
