package parse

import (
	"github.com/brackenfish/langkit/grammar"
	"github.com/brackenfish/langkit/internal/set"
)

// closure computes CLOSURE(I) per spec 4.5: repeatedly extend I until a full
// pass adds no new core keys and no new lookaheads.
func closure(g grammar.Grammar, first map[grammar.Symbol]set.Set[grammar.Symbol], I ItemSet) ItemSet {
	result := newItemSet()
	for k, la := range I {
		result[k] = la.Copy()
	}

	changed := true
	for changed {
		changed = false

		for _, k := range result.sortedKeys() {
			prod, ok := g.Production(k.Prod)
			if !ok {
				continue
			}
			right := prod.EffectiveRight()
			if k.Dot >= len(right) {
				continue
			}

			B := right[k.Dot]
			if !B.IsNonterminal() {
				continue
			}

			beta := right[k.Dot+1:]

			for a := range result[k] {
				lambda := lookaheadsFor(first, beta, a)

				for _, bProd := range g.Rule(B) {
					key := coreKey{Prod: bProd.Index, Dot: 0}
					if result.addLookaheads(key, lambda) {
						changed = true
					}
				}
			}
		}
	}

	return result
}

// lookaheadsFor computes the lookahead contribution of an item
// [A -> alpha . B beta, a] for every production of B: FIRST(beta a), with
// the usual nullable-beta treatment (spec 4.4/4.5) — if beta is nullable,
// the item's own lookahead a is carried through instead of <#>.
func lookaheadsFor(first map[grammar.Symbol]set.Set[grammar.Symbol], beta grammar.Symbols, a grammar.Symbol) set.Set[grammar.Symbol] {
	result := grammar.FIRSTOfSequence(first, beta)
	if result.Has(grammar.Empty) {
		delete(result, grammar.Empty)
		result.Add(a)
	}
	return result
}

// gotoSet computes GOTO(I, X) per spec 4.5: advance the dot of every item in
// I whose next symbol is X, then close the result.
func gotoSet(g grammar.Grammar, first map[grammar.Symbol]set.Set[grammar.Symbol], I ItemSet, X grammar.Symbol) ItemSet {
	J := newItemSet()

	for _, k := range I.sortedKeys() {
		prod, ok := g.Production(k.Prod)
		if !ok {
			continue
		}
		right := prod.EffectiveRight()
		if k.Dot >= len(right) {
			continue
		}
		if right[k.Dot] != X {
			continue
		}

		J.addLookaheads(coreKey{Prod: k.Prod, Dot: k.Dot + 1}, I[k])
	}

	if len(J) == 0 {
		return J
	}

	return closure(g, first, J)
}

// symbolsAfterDot returns, in deterministic order, every grammar symbol that
// immediately follows a dot in some item of I — the candidates GOTO must be
// computed for while building the canonical collection (spec 4.5).
func symbolsAfterDot(g grammar.Grammar, I ItemSet) []grammar.Symbol {
	seen := set.New[grammar.Symbol]()
	var out []grammar.Symbol

	for _, k := range I.sortedKeys() {
		prod, ok := g.Production(k.Prod)
		if !ok {
			continue
		}
		right := prod.EffectiveRight()
		if k.Dot >= len(right) {
			continue
		}
		X := right[k.Dot]
		if !seen.Has(X) {
			seen.Add(X)
			out = append(out, X)
		}
	}

	return out
}
