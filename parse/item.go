// Package parse builds the canonical collection of LR(1) item sets from a
// context-free grammar, derives ACTION/GOTO tables from it, and drives a
// shift/reduce parser against a token stream. It is the parser-side half of
// the toolkit; see the grammar package for the shared production model and
// FIRST-set solver this package's CLOSURE routine depends on, and the lex
// package for the scanner that produces the token stream this package's
// driver consumes.
package parse

import (
	"fmt"
	"sort"
	"strings"

	"github.com/brackenfish/langkit/grammar"
	"github.com/brackenfish/langkit/internal/set"
)

// coreKey identifies an LR(0) item core: a production and a dot position,
// independent of lookahead. Two LR(1) items with the same coreKey but
// different lookaheads are stored together in an ItemSet, keyed once, with
// their lookaheads unioned — this is what spec 3 calls "lookahead-list
// canonicalization" for state-equality purposes.
type coreKey struct {
	Prod int
	Dot  int
}

// ItemSet is a set of LR(1) items sharing the same grammar, represented as a
// map from (production, dot) core to the set of lookahead symbols that core
// carries in this state. It is the Go shape of an "LR(1) State" from spec 3:
// a CLOSURE-closed, ordered (once canonicalized) collection of items.
type ItemSet map[coreKey]set.Set[grammar.Symbol]

// newItemSet returns an empty, non-nil ItemSet.
func newItemSet() ItemSet {
	return make(ItemSet)
}

// addLookaheads merges la into the lookahead set recorded for key, creating
// the entry if needed. Reports whether the merge changed anything, so
// fixed-point loops (CLOSURE) know whether to keep iterating.
func (I ItemSet) addLookaheads(key coreKey, la set.Set[grammar.Symbol]) (changed bool) {
	existing, ok := I[key]
	if !ok {
		existing = set.New[grammar.Symbol]()
		I[key] = existing
	}
	before := existing.Len()
	existing.AddAll(la)
	return existing.Len() != before
}

// sortedKeys returns I's core keys in a deterministic order (by production
// index, then dot position), used both for canonical-key computation and for
// deterministic iteration during CLOSURE/GOTO construction.
func (I ItemSet) sortedKeys() []coreKey {
	keys := make([]coreKey, 0, len(I))
	for k := range I {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(a, b int) bool {
		if keys[a].Prod != keys[b].Prod {
			return keys[a].Prod < keys[b].Prod
		}
		return keys[a].Dot < keys[b].Dot
	})
	return keys
}

// canonicalKey returns a string uniquely determined by I's contents: equal
// item sets (after lookahead canonicalization, per spec 3) produce equal
// keys, and vice versa. Used to deduplicate states during canonical
// collection construction.
func (I ItemSet) canonicalKey() string {
	var sb strings.Builder
	for _, k := range I.sortedKeys() {
		las := set.SortedStrings(symbolStrings(I[k]))
		fmt.Fprintf(&sb, "%d.%d:[%s];", k.Prod, k.Dot, strings.Join(las, ","))
	}
	return sb.String()
}

// coreSignature returns a string determined only by I's core keys, ignoring
// lookaheads — two states with the same coreSignature are merge candidates
// for LALR(1) core-merging.
func (I ItemSet) coreSignature() string {
	var sb strings.Builder
	for _, k := range I.sortedKeys() {
		fmt.Fprintf(&sb, "%d.%d;", k.Prod, k.Dot)
	}
	return sb.String()
}

func symbolStrings(s set.Set[grammar.Symbol]) []string {
	out := make([]string, 0, len(s))
	for sym := range s {
		out = append(out, string(sym))
	}
	return out
}

// itemStrings renders every item in I (one per lookahead, per spec's literal
// "triple" view) as "A -> α.β, a" strings, sorted for stable diagnostics.
func (I ItemSet) itemStrings(g grammar.Grammar) []string {
	var out []string
	for _, k := range I.sortedKeys() {
		prod, ok := g.Production(k.Prod)
		if !ok {
			continue
		}
		right := prod.EffectiveRight()
		alpha := right[:k.Dot]
		beta := right[k.Dot:]
		las := set.SortedStrings(symbolStrings(I[k]))
		for _, a := range las {
			out = append(out, fmt.Sprintf("%s -> %s . %s, %s", prod.Left, alpha.String(), beta.String(), a))
		}
	}
	sort.Strings(out)
	return out
}
