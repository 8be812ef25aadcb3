package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brackenfish/langkit/grammar"
	"github.com/brackenfish/langkit/internal/ferrors"
)

func exprGrammar(t *testing.T) grammar.Grammar {
	t.Helper()
	g, err := grammar.New(grammar.MustParseBNF(`
		<E> = <E> + <T> | <T>
		<T> = ( <E> ) | <identifier>
	`))
	require.NoError(t, err)
	return g
}

func Test_NewCanonicalTable_buildsWithoutConflict(t *testing.T) {
	g := exprGrammar(t)

	tbl, err := NewCanonicalTable(g)
	require.NoError(t, err)
	assert.Greater(t, len(tbl.Automaton.States), 1)

	act, ok := tbl.Action(tbl.Initial, grammar.Symbol("<identifier>"))
	require.True(t, ok)
	assert.Equal(t, Shift, act.Kind)
}

func Test_NewLALRTable_buildsWithoutConflict(t *testing.T) {
	g := exprGrammar(t)

	tbl, err := NewLALRTable(g)
	require.NoError(t, err)
	// LALR merging can only ever produce the same or fewer states than the
	// canonical collection.
	canon, err := NewCanonicalTable(g)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(tbl.Automaton.States), len(canon.Automaton.States))
}

func Test_NewCanonicalTable_danglingElseIsAShiftReduceConflict(t *testing.T) {
	g, err := grammar.New(grammar.MustParseBNF(`
		<STMT> = if ( c ) <STMT> | if ( c ) <STMT> else <STMT> | other
	`))
	require.NoError(t, err)

	_, err = NewCanonicalTable(g)
	require.Error(t, err)

	var constructionErr *ferrors.ConstructionError
	require.ErrorAs(t, err, &constructionErr)
	assert.NotEmpty(t, constructionErr.Conflict)
}

// Test_NewCanonicalTable_emptyProductionReduces guards against treating an
// empty production's stored Symbols{Empty} placeholder as a real
// right-hand-side symbol when deciding whether an item is complete: a
// nullable nonterminal's epsilon alternative must surface as a genuine
// reduce action, not be silently skipped because its single-element stored
// Right never looks "fully consumed".
func Test_NewCanonicalTable_emptyProductionReduces(t *testing.T) {
	g, err := grammar.New(grammar.MustParseBNF(`
		<S> = <A> b
		<A> = a | <#>
	`))
	require.NoError(t, err)

	tbl, err := NewCanonicalTable(g)
	require.NoError(t, err)

	act, ok := tbl.Action(tbl.Initial, grammar.Symbol("b"))
	require.True(t, ok, "expected a reduce-by-epsilon action on lookahead \"b\" at the initial state")
	assert.Equal(t, Reduce, act.Kind)

	prod, ok := g.Production(act.Production)
	require.True(t, ok)
	assert.Equal(t, grammar.Symbols{grammar.Empty}, prod.Right)
}

func Test_buildTable_emptyGrammar(t *testing.T) {
	_, err := buildTable(grammar.Grammar{}, Automaton{})
	require.Error(t, err)
}
