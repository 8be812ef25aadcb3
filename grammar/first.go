package grammar

import "github.com/brackenfish/langkit/internal/set"

// FIRST computes FIRST(A) for every nonterminal A in the grammar (including
// the augmented start symbol), via the fixed-point procedure of spec 4.4.
// <#> in FIRST(A) denotes that A is nullable.
//
// This is recomputed on every call rather than cached on the Grammar value,
// since Grammar is an immutable value type and the set is cheap to rebuild;
// callers that need it repeatedly (the LR(1) closure routine does, once per
// CLOSURE pass) should compute it once and pass it down rather than calling
// FIRST() in a hot loop.
func (g Grammar) FIRST() map[Symbol]set.Set[Symbol] {
	first := make(map[Symbol]set.Set[Symbol])
	for _, nt := range g.NonTerminals() {
		first[nt] = set.New[Symbol]()
	}

	changed := true
	for changed {
		changed = false

		for _, p := range g.Productions {
			before := first[p.Left].Len()

			if len(p.Right) == 0 {
				first[p.Left].Add(Empty)
			} else {
				g.addFirstOfSequence(first, p.Left, p.Right)
			}

			if first[p.Left].Len() != before {
				changed = true
			}
		}
	}

	return first
}

// addFirstOfSequence implements the per-production walk of spec 4.4's
// fixed-point step: walk the right-hand side left to right, contributing
// FIRST of each symbol until a non-nullable symbol is found or the sequence
// is exhausted (in which case <#> is contributed too).
func (g Grammar) addFirstOfSequence(first map[Symbol]set.Set[Symbol], left Symbol, seq Symbols) {
	for _, x := range seq {
		if x.IsEmpty() {
			// the stored-epsilon-production placeholder: spec 3 represents
			// an empty right-hand side as a bare <#>, so hitting it here
			// means the whole production is empty and left is nullable.
			first[left].Add(Empty)
			return
		}

		if x.IsTerminal() {
			first[left].Add(x)
			return
		}

		// nonterminal.
		if x == left {
			// direct left recursion does not contribute; stop this
			// production without adding anything further.
			return
		}

		xFirst, ok := first[x]
		if !ok {
			// x is referenced but has no recorded FIRST set yet (can
			// happen mid-fixed-point on the very first pass); treat as
			// empty for now, later passes will catch up.
			return
		}

		for v := range xFirst {
			if v != Empty {
				first[left].Add(v)
			}
		}

		if !xFirst.Has(Empty) {
			return
		}
		// x is nullable: fall through and keep walking the sequence.
	}

	// every symbol in the sequence was nullable.
	first[left].Add(Empty)
}

// FIRSTOfSequence computes FIRST of an arbitrary symbol sequence (not
// necessarily a production's whole right-hand side), used by the LR(1)
// closure routine to compute lookahead sets for FIRST(beta . a). first is the
// memoized per-nonterminal FIRST table from a prior call to g.FIRST().
func FIRSTOfSequence(first map[Symbol]set.Set[Symbol], seq Symbols) set.Set[Symbol] {
	result := set.New[Symbol]()

	if len(seq) == 0 {
		result.Add(Empty)
		return result
	}

	for _, x := range seq {
		if x.IsEmpty() {
			result.Add(Empty)
			return result
		}

		if x.IsTerminal() {
			result.Add(x)
			return result
		}

		xFirst := first[x]
		for v := range xFirst {
			if v != Empty {
				result.Add(v)
			}
		}

		if !xFirst.Has(Empty) {
			return result
		}
	}

	// every symbol in seq was nullable.
	result.Add(Empty)
	return result
}
