package parse

import (
	"fmt"

	"github.com/dekarrin/rosed"

	"github.com/brackenfish/langkit/grammar"
)

// String renders t as an ACTION/GOTO table: one row per state, one column
// per terminal (ACTION) followed by one column per nonterminal (GOTO),
// with a "|" divider column between the two halves.
func (t *Table) String() string {
	terms := t.Grammar.Terminals()
	terms = append(terms, grammar.Empty)
	nonterms := t.Grammar.NonTerminals()

	header := []string{"state"}
	for _, sym := range terms {
		header = append(header, string(sym))
	}
	header = append(header, "|")
	for _, nt := range nonterms {
		header = append(header, string(nt))
	}

	data := [][]string{header}
	for i := range t.action {
		row := []string{fmt.Sprintf("%d", i)}

		for _, sym := range terms {
			cell := ""
			if act, ok := t.Action(i, sym); ok {
				cell = act.String()
			}
			row = append(row, cell)
		}

		row = append(row, "|")

		for _, nt := range nonterms {
			cell := ""
			if j, ok := t.Goto(i, nt); ok {
				cell = fmt.Sprintf("%d", j)
			}
			row = append(row, cell)
		}

		data = append(data, row)
	}

	return rosed.
		Edit("").
		InsertTableOpts(0, data, 20, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}
