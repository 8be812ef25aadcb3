package automaton

import "github.com/brackenfish/langkit/internal/set"

// NFA is a nondeterministic finite automaton over single-byte input, built
// from a right-linear (type-3) grammar fragment by the lex package's
// production-string parser. Node 0 is always the shared entry node (START)
// and node 1 is always the shared accepting node (END); every production
// group wires its own chain of nodes into that pair, per spec 4.1.
type NFA struct {
	// Names is indexed by node index and carries the node's source name for
	// diagnostics (e.g. "START", "END", or a group-scoped intermediate like
	// "keyword-0-REST"); it is not used by any algorithm below.
	Names []string
	edges [][]nfaEdge

	byName map[string]int
}

type nfaEdge struct {
	Label string // Epsilon, a literal single-byte string, or an alias name.
	To    int
}

// NewNFA returns an NFA with only its two reserved nodes, START (index 0)
// and END (index 1), present.
func NewNFA() *NFA {
	n := &NFA{byName: map[string]int{}}
	n.node("START")
	n.node("END")
	return n
}

const (
	Start = 0
	End   = 1
)

// node returns the index of the node named name, creating it if this is its
// first mention. Names are unique within one NFA (callers scope intermediate
// node names per production group to avoid collisions between groups, per
// spec 4.1's "scoped to the group's index range").
func (n *NFA) node(name string) int {
	if i, ok := n.byName[name]; ok {
		return i
	}
	i := len(n.Names)
	n.Names = append(n.Names, name)
	n.edges = append(n.edges, nil)
	n.byName[name] = i
	return i
}

// Node is node()'s exported form, for builders outside this package that
// need to mint or look up a node by name (the lex package's production
// parser uses this to wire intermediate chain nodes).
func (n *NFA) Node(name string) int { return n.node(name) }

// AddEdge adds an edge from -label-> to. label is Epsilon for an
// ε-transition, a one-byte string for a literal match, or one of the
// alphabet aliases (digit, letter, dot1, dot2).
func (n *NFA) AddEdge(from int, label string, to int) {
	n.edges[from] = append(n.edges[from], nfaEdge{Label: label, To: to})
}

// NumNodes returns the number of nodes in the NFA.
func (n *NFA) NumNodes() int { return len(n.Names) }

// EpsilonClosure returns the set of nodes reachable from any node in from
// using zero or more ε-transitions, including the nodes in from themselves.
func (n *NFA) EpsilonClosure(from set.Set[int]) set.Set[int] {
	result := from.Copy()
	stack := result.Elements()
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range n.edges[i] {
			if e.Label != Epsilon {
				continue
			}
			if !result.Has(e.To) {
				result.Add(e.To)
				stack = append(stack, e.To)
			}
		}
	}
	return result
}

// Move returns the set of nodes directly reachable from any node in from by
// consuming input byte c along a matching literal or alias edge (not
// including any further ε-closure).
func (n *NFA) Move(from set.Set[int], c byte) set.Set[int] {
	result := set.New[int]()
	for i := range from {
		for _, e := range n.edges[i] {
			if e.Label != Epsilon && LabelMatches(e.Label, c) {
				result.Add(e.To)
			}
		}
	}
	return result
}

// Alphabet returns every literal byte and alias-expanded byte that appears
// on some non-ε edge, deduplicated. This drives subset construction (spec
// 4.2): rather than trying all 256 byte values per state, only bytes the
// NFA actually distinguishes need to be tried.
func (n *NFA) Alphabet() []byte {
	seen := make(map[byte]bool)
	for _, edges := range n.edges {
		for _, e := range edges {
			if e.Label == Epsilon {
				continue
			}
			if len(e.Label) == 1 {
				seen[e.Label[0]] = true
				continue
			}
			for _, b := range ExpandAlias(e.Label) {
				seen[b] = true
			}
		}
	}
	out := make([]byte, 0, len(seen))
	for b := range seen {
		out = append(out, b)
	}
	return out
}
