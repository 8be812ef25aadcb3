package automaton

import (
	"sort"
	"strconv"
	"strings"

	"github.com/brackenfish/langkit/internal/set"
)

// DFA is the deterministic automaton produced from an NFA by subset
// construction (spec 4.2). Each state is the ε-closure of some set of NFA
// nodes; Accept marks which states contain the NFA's END node, i.e. which
// states are accepting.
type DFA struct {
	// NFAStates[i] is the (sorted, for determinism) set of NFA node indices
	// that DFA state i is the ε-closure of. Kept for diagnostics and for
	// NumberStates' canonical renumbering below.
	NFAStates [][]int
	Accept    []bool
	Trans     []map[byte]int
	Start     int
}

// Subset runs the subset (powerset) construction on n, returning the
// equivalent DFA. States are discovered and numbered in worklist order,
// starting from state 0 = ε-closure({Start}).
func Subset(n *NFA) *DFA {
	alphabet := n.Alphabet()

	start := n.EpsilonClosure(set.New[int](Start))
	startKey := setKey(start)

	d := &DFA{Start: 0}
	index := map[string]int{startKey: 0}
	d.NFAStates = append(d.NFAStates, sortedInts(start))
	d.Accept = append(d.Accept, start.Has(End))
	d.Trans = append(d.Trans, map[byte]int{})

	queue := []set.Set[int]{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		i := index[setKey(cur)]

		for _, c := range alphabet {
			moved := n.Move(cur, c)
			if len(moved) == 0 {
				continue
			}
			closed := n.EpsilonClosure(moved)
			key := setKey(closed)

			j, ok := index[key]
			if !ok {
				j = len(d.NFAStates)
				index[key] = j
				d.NFAStates = append(d.NFAStates, sortedInts(closed))
				d.Accept = append(d.Accept, closed.Has(End))
				d.Trans = append(d.Trans, map[byte]int{})
				queue = append(queue, closed)
			}
			d.Trans[i][c] = j
		}
	}

	return d
}

// NumberStates renumbers d's states by a canonical order independent of
// worklist discovery order: the start state becomes state 0 and the rest are
// sorted by their NFAStates signature, so two DFAs built from the same NFA
// come out identical whatever order Subset happened to discover their states
// in. The signature is made of NFA node indices, so NFAs whose nodes were
// created in a different order can still number their DFA states differently.
// Spec 5 requires construction output be directly comparable across runs;
// without this, discovery order alone would make that comparison meaningless
// for any grammar with more than one valid worklist traversal.
func (d *DFA) NumberStates() *DFA {
	order := make([]int, len(d.NFAStates))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		if order[a] == d.Start || order[b] == d.Start {
			return order[a] == d.Start && order[b] != d.Start
		}
		return setKey(set.New[int](d.NFAStates[order[a]]...)) < setKey(set.New[int](d.NFAStates[order[b]]...))
	})

	oldToNew := make([]int, len(order))
	for newIdx, oldIdx := range order {
		oldToNew[oldIdx] = newIdx
	}

	out := &DFA{
		Start:     oldToNew[d.Start],
		NFAStates: make([][]int, len(order)),
		Accept:    make([]bool, len(order)),
		Trans:     make([]map[byte]int, len(order)),
	}
	for newIdx, oldIdx := range order {
		out.NFAStates[newIdx] = d.NFAStates[oldIdx]
		out.Accept[newIdx] = d.Accept[oldIdx]
		trans := make(map[byte]int, len(d.Trans[oldIdx]))
		for c, oldTo := range d.Trans[oldIdx] {
			trans[c] = oldToNew[oldTo]
		}
		out.Trans[newIdx] = trans
	}
	return out
}

// Step follows the transition from state on input byte c, reporting whether
// one exists.
func (d *DFA) Step(state int, c byte) (int, bool) {
	next, ok := d.Trans[state][c]
	return next, ok
}

func sortedInts(s set.Set[int]) []int {
	out := s.Elements()
	sort.Ints(out)
	return out
}

func setKey(s set.Set[int]) string {
	ints := sortedInts(s)
	parts := make([]string, len(ints))
	for i, v := range ints {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}
