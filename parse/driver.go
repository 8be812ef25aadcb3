package parse

import (
	"context"
	"fmt"

	"github.com/brackenfish/langkit/grammar"
	"github.com/brackenfish/langkit/internal/ferrors"
	"github.com/brackenfish/langkit/lex"
)

// stackEntry is one shift-reduce stack slot: the state pushed to reach it,
// and the subtree that state's symbol corresponds to (nil only for the
// initial, symbol-less entry at the bottom of the stack).
type stackEntry struct {
	state int
	tree  *Tree
}

// Parse drives t over toks per spec 4.7: at each step, look up
// ACTION[top-state, current-token], shift or reduce accordingly, and halt
// on accept or on a miss. It always builds and returns the full parse tree
// rooted at the grammar's start symbol, even though the tree is not needed
// to decide acceptance, because every downstream consumer of a parse
// (pretty-printing, further analysis) wants it and reconstructing it after
// the fact from scratch would just repeat this same walk.
//
// A miss returns a *ferrors.AnalysisError naming the offending token's line
// and lexeme, plus the items of the current state rendered as
// "A -> α . β, a" strings (the partial productions the parser was in the
// middle of), so a caller can report what was expected there.
func Parse(ctx context.Context, t *Table, toks *lex.Stream) (*Tree, error) {
	stack := []stackEntry{{state: t.Initial}}

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		tok := toks.Peek()
		top := stack[len(stack)-1]

		act, ok := t.Action(top.state, tok.Symbol())
		if !ok {
			return nil, missError(t, top.state, tok)
		}

		switch act.Kind {
		case Shift:
			tokCopy := tok
			stack = append(stack, stackEntry{
				state: act.ShiftState,
				tree:  &Tree{Symbol: tok.Symbol(), Token: &tokCopy},
			})
			toks.Advance()

		case Reduce:
			prod, ok := t.Grammar.Production(act.Production)
			if !ok {
				return nil, ferrors.NewConstructionError("reduce action names unknown production %d", act.Production)
			}

			n := len(prod.EffectiveRight())

			children := make([]*Tree, n)
			for i := 0; i < n; i++ {
				children[i] = stack[len(stack)-n+i].tree
			}
			stack = stack[:len(stack)-n]

			newTop := stack[len(stack)-1]
			j, ok := t.Goto(newTop.state, prod.Left)
			if !ok {
				return nil, ferrors.NewConstructionError("no GOTO(%d, %s) after reducing production %d", newTop.state, prod.Left, act.Production)
			}

			stack = append(stack, stackEntry{
				state: j,
				tree:  &Tree{Symbol: prod.Left, Children: children},
			})

		case Accept:
			if len(stack) < 2 {
				return nil, ferrors.NewConstructionError("accept reached with empty parse stack")
			}
			return stack[1].tree, nil

		default:
			return nil, ferrors.NewConstructionError("unknown action kind %v", act.Kind)
		}
	}
}

func missError(t *Table, state int, tok lex.Token) error {
	var names []string
	if state >= 0 && state < len(t.Automaton.States) {
		names = t.Automaton.States[state].itemStrings(t.Grammar)
	}

	lexeme := tok.Lexeme
	if tok.Symbol() == grammar.Empty {
		lexeme = "<end of input>"
	}

	return ferrors.NewParseError(tok.Line, lexeme, names,
		"unexpected %s %s", tok.Category, fmt.Sprintf("%q", lexeme))
}
