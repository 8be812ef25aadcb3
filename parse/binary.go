package parse

import (
	"github.com/dekarrin/rezi"

	"github.com/brackenfish/langkit/grammar"
)

// tableMirror holds Table's field values in exported form for rezi's
// reflective encoder, which cannot reach the unexported action/goTo slices
// directly.
type tableMirror struct {
	Grammar   interface{}
	Automaton Automaton
	Initial   int
	Action    []map[string]Action
	Goto      []map[string]int
}

// MarshalBinary encodes t via rezi's reflective binary format, so a built
// ACTION/GOTO table (the expensive artifact: canonical collection plus
// conflict-checked table construction) can be cached across CLI shell
// invocations instead of rebuilt from the grammar every time.
func (t *Table) MarshalBinary() ([]byte, error) {
	m := tableMirror{
		Grammar:   t.Grammar,
		Automaton: t.Automaton,
		Initial:   t.Initial,
		Action:    make([]map[string]Action, len(t.action)),
		Goto:      make([]map[string]int, len(t.goTo)),
	}
	for i, row := range t.action {
		m.Action[i] = make(map[string]Action, len(row))
		for sym, act := range row {
			m.Action[i][string(sym)] = act
		}
	}
	for i, row := range t.goTo {
		m.Goto[i] = make(map[string]int, len(row))
		for sym, j := range row {
			m.Goto[i][string(sym)] = j
		}
	}
	return rezi.EncBinary(m), nil
}

// UnmarshalBinary decodes a Table previously written by MarshalBinary. The
// Grammar field is decoded as a generic value and must be reassigned by the
// caller via a fresh grammar.New call, since grammar.Grammar's own
// MarshalBinary/UnmarshalBinary pair is what should be used to round-trip it
// on its own; this method focuses on the derived action/goto data.
func (t *Table) UnmarshalBinary(data []byte) error {
	var m tableMirror
	if _, err := rezi.DecBinary(data, &m); err != nil {
		return err
	}
	t.Automaton = m.Automaton
	t.Initial = m.Initial
	t.action = make([]map[grammar.Symbol]Action, len(m.Action))
	t.goTo = make([]map[grammar.Symbol]int, len(m.Goto))
	for i, row := range m.Action {
		t.action[i] = make(map[grammar.Symbol]Action, len(row))
		for sym, act := range row {
			t.action[i][grammar.Symbol(sym)] = act
		}
	}
	for i, row := range m.Goto {
		t.goTo[i] = make(map[grammar.Symbol]int, len(row))
		for sym, j := range row {
			t.goTo[i][grammar.Symbol(sym)] = j
		}
	}
	return nil
}
