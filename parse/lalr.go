package parse

import (
	"github.com/brackenfish/langkit/grammar"
	"github.com/brackenfish/langkit/internal/ferrors"
)

// mergeLALRCores merges every canonical LR(1) state sharing the same LR(0)
// core (ignoring lookaheads) into a single state, per the design-notes Open
// Question in spec 9: "the reference contains commented-out item-merge logic
// in GOTO... a port should decide deliberately whether to keep LR(1)
// canonical... or perform LALR-style merging." This toolkit keeps both: the
// canonical collection is never mutated in place, and this pass produces a
// second, smaller Automaton from it.
//
// Because merging only ever unions lookaheads onto an already-consistent set
// of core transitions, a single grouping pass suffices: unlike the teacher's
// iterative NFA-merge-and-renumber dance (automaton.NewLALR1ViablePrefixDFA
// in ictiobus, which repeats because it discovers new core collisions as it
// goes), grouping by coreSignature up front finds every merge candidate in
// one scan, since the grouping key never changes as a result of merging
// lookaheads.
func mergeLALRCores(can Automaton) (Automaton, error) {
	sigToNew := map[string]int{}
	var newStates []ItemSet
	oldToNew := make([]int, len(can.States))

	for i, I := range can.States {
		sig := I.coreSignature()
		j, ok := sigToNew[sig]
		if !ok {
			j = len(newStates)
			newStates = append(newStates, newItemSet())
			sigToNew[sig] = j
		}

		for k, la := range I {
			newStates[j].addLookaheads(k, la)
		}
		oldToNew[i] = j
	}

	newTrans := make([]map[grammar.Symbol]int, len(newStates))
	for i := range newTrans {
		newTrans[i] = map[grammar.Symbol]int{}
	}
	for i, trans := range can.Trans {
		ni := oldToNew[i]
		for X, j := range trans {
			nj := oldToNew[j]
			if existing, ok := newTrans[ni][X]; ok && existing != nj {
				return Automaton{}, lalrMergeConflict(string(X))
			}
			newTrans[ni][X] = nj
		}
	}

	return Automaton{States: newStates, Trans: newTrans}, nil
}

// lalrMergeConflict is returned when merging produces inconsistent
// transitions for the same (state, symbol) pair, which can only happen for
// grammars that are LR(1) but not LALR(1): the merge collapsed two states
// whose outgoing transitions disagreed.
func lalrMergeConflict(symbol string) error {
	return ferrors.NewConstructionError("grammar is not LALR(1): core merge produced inconsistent transitions on %q", symbol)
}
