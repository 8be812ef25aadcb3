package parse

import (
	"github.com/brackenfish/langkit/grammar"
	"github.com/brackenfish/langkit/internal/set"
)

// Automaton is the canonical collection of LR(1) item sets: a numbered list
// of states plus the GOTO transitions between them, keyed by grammar symbol.
// State 0 is always CLOSURE({[<S'> -> .<START>, <#>]}), matching spec 4.5's
// canonical-collection construction. Discovery order is the order the
// worklist first reaches each state, which spec 5 requires be part of the
// observable output — callers that need a specific state's index should
// treat it as stable for a given grammar, not reconstruct it independently.
type Automaton struct {
	States []ItemSet
	Trans  []map[grammar.Symbol]int
}

// CanonicalCollection builds the canonical collection of LR(1) item sets for
// g, per spec 4.5. g is expected to already be augmented (grammar.New always
// produces an augmented Grammar).
func CanonicalCollection(g grammar.Grammar) Automaton {
	first := g.FIRST()

	startCore := coreKey{Prod: 0, Dot: 0}
	start := closure(g, first, ItemSet{startCore: set.New[grammar.Symbol](grammar.Empty)})

	states := []ItemSet{start}
	trans := []map[grammar.Symbol]int{{}}
	index := map[string]int{start.canonicalKey(): 0}

	queue := []int{0}
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]

		for _, X := range symbolsAfterDot(g, states[i]) {
			J := gotoSet(g, first, states[i], X)
			if len(J) == 0 {
				continue
			}

			key := J.canonicalKey()
			j, ok := index[key]
			if !ok {
				j = len(states)
				states = append(states, J)
				trans = append(trans, map[grammar.Symbol]int{})
				index[key] = j
				queue = append(queue, j)
			}

			trans[i][X] = j
		}
	}

	return Automaton{States: states, Trans: trans}
}
