package parse

import (
	"fmt"

	"github.com/brackenfish/langkit/grammar"
	"github.com/brackenfish/langkit/internal/ferrors"
)

// ActionKind classifies an ACTION table entry.
type ActionKind int

const (
	// Shift reads one token and pushes the target state.
	Shift ActionKind = iota
	// Reduce pops |production.EffectiveRight()| states (none for an empty
	// production) and pushes GOTO[top, production.Left].
	Reduce
	// Accept halts the parse successfully.
	Accept
)

func (k ActionKind) String() string {
	switch k {
	case Shift:
		return "shift"
	case Reduce:
		return "reduce"
	case Accept:
		return "accept"
	default:
		return "unknown"
	}
}

// Action is one ACTION table entry: a kind plus the payload that kind needs
// (a target state for Shift, a production index for Reduce, nothing for
// Accept), per spec 3.
type Action struct {
	Kind       ActionKind
	ShiftState int
	Production int
}

func (a Action) String() string {
	switch a.Kind {
	case Shift:
		return fmt.Sprintf("shift %d", a.ShiftState)
	case Reduce:
		return fmt.Sprintf("reduce %d", a.Production)
	case Accept:
		return "accept"
	default:
		return "?"
	}
}

// Table is a constructed ACTION/GOTO parse table together with the grammar
// and canonical collection it was derived from (kept for diagnostics: the
// parser driver reports candidate productions for a state on an ACTION
// miss, per spec 4.7 step 5).
type Table struct {
	Grammar   grammar.Grammar
	Automaton Automaton
	Initial   int
	action    []map[grammar.Symbol]Action
	goTo      []map[grammar.Symbol]int
}

// Action returns the ACTION table entry for (state, symbol), and whether one
// exists. A miss (found == false) is an analysis error at the driver level.
func (t *Table) Action(state int, symbol grammar.Symbol) (a Action, found bool) {
	if state < 0 || state >= len(t.action) {
		return Action{}, false
	}
	a, found = t.action[state][symbol]
	return a, found
}

// Goto returns the GOTO table entry for (state, nonterminal).
func (t *Table) Goto(state int, nonterminal grammar.Symbol) (int, bool) {
	if state < 0 || state >= len(t.goTo) {
		return 0, false
	}
	j, ok := t.goTo[state][nonterminal]
	return j, ok
}

// Candidates returns the grammar symbols with a non-error ACTION entry for
// state, in no particular order.
func (t *Table) Candidates(state int) []grammar.Symbol {
	if state < 0 || state >= len(t.action) {
		return nil
	}
	var out []grammar.Symbol
	for sym := range t.action[state] {
		out = append(out, sym)
	}
	return out
}

// NewCanonicalTable constructs the canonical LR(1) ACTION/GOTO table for g,
// per spec 4.6. Returns a *ferrors.ConstructionError if any ACTION/GOTO key
// would receive two different entries.
func NewCanonicalTable(g grammar.Grammar) (*Table, error) {
	return buildTable(g, CanonicalCollection(g))
}

// NewLALRTable constructs an LALR(1) ACTION/GOTO table for g by merging
// same-core canonical states (see lalr.go). It is smaller than the
// canonical table but rejects a strictly-LR(1)-but-not-LALR(1) grammar with
// a *ferrors.ConstructionError.
func NewLALRTable(g grammar.Grammar) (*Table, error) {
	can := CanonicalCollection(g)
	merged, err := mergeLALRCores(can)
	if err != nil {
		return nil, err
	}
	return buildTable(g, merged)
}

// buildTable translates an item-set automaton into ACTION/GOTO rows per
// spec 4.6.
func buildTable(g grammar.Grammar, aut Automaton) (*Table, error) {
	if len(g.Productions) == 0 {
		return nil, ferrors.NewConstructionError("cannot build a table from an empty grammar")
	}

	t := &Table{
		Grammar:   g,
		Automaton: aut,
		Initial:   0,
		action:    make([]map[grammar.Symbol]Action, len(aut.States)),
		goTo:      make([]map[grammar.Symbol]int, len(aut.States)),
	}
	for i := range t.action {
		t.action[i] = map[grammar.Symbol]Action{}
		t.goTo[i] = map[grammar.Symbol]int{}
	}

	for i, trans := range aut.Trans {
		for X, j := range trans {
			if X.IsNonterminal() {
				t.goTo[i][X] = j
				continue
			}
			if err := t.setAction(i, X, Action{Kind: Shift, ShiftState: j}); err != nil {
				return nil, err
			}
		}
	}

	for i, I := range aut.States {
		for _, k := range I.sortedKeys() {
			prod, ok := g.Production(k.Prod)
			if !ok || k.Dot != len(prod.EffectiveRight()) {
				continue
			}

			for a := range I[k] {
				if prod.Index == 0 {
					if a == grammar.Empty {
						if err := t.setAction(i, grammar.Empty, Action{Kind: Accept}); err != nil {
							return nil, err
						}
					}
					continue
				}
				if err := t.setAction(i, a, Action{Kind: Reduce, Production: prod.Index}); err != nil {
					return nil, err
				}
			}
		}
	}

	return t, nil
}

// setAction installs act at (state, symbol), returning a *ferrors.ConstructionError
// if a different action is already installed there.
func (t *Table) setAction(state int, symbol grammar.Symbol, act Action) error {
	if existing, ok := t.action[state][symbol]; ok && existing != act {
		return conflictError(t.Grammar, t.Automaton.States[state], state, symbol, existing, act)
	}
	t.action[state][symbol] = act
	return nil
}

func conflictError(g grammar.Grammar, I ItemSet, state int, symbol grammar.Symbol, a, b Action) error {
	kind := "conflict"
	switch {
	case a.Kind == Shift && b.Kind == Reduce || a.Kind == Reduce && b.Kind == Shift:
		kind = "shift/reduce conflict"
	case a.Kind == Reduce && b.Kind == Reduce:
		kind = "reduce/reduce conflict"
	case a.Kind == Accept || b.Kind == Accept:
		kind = "accept conflict"
	}
	return ferrors.NewConflictError(
		fmt.Sprintf("%d", state), string(symbol), I.itemStrings(g),
		"%s on %q (%s vs %s)", kind, symbol, a, b,
	)
}
