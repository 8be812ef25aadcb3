package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_New(t *testing.T) {
	testCases := []struct {
		name      string
		rules     []Rule
		expectErr bool
	}{
		{
			name:      "no rules",
			rules:     nil,
			expectErr: true,
		},
		{
			name: "non-nonterminal left-hand side",
			rules: []Rule{
				{NonTerminal: "S", Productions: []Symbols{{"a"}}},
			},
			expectErr: true,
		},
		{
			name: "nonterminal with no productions",
			rules: []Rule{
				{NonTerminal: "<S>", Productions: nil},
			},
			expectErr: true,
		},
		{
			name: "reference to undefined nonterminal",
			rules: []Rule{
				{NonTerminal: "<S>", Productions: []Symbols{{"<UNDEFINED>"}}},
			},
			expectErr: true,
		},
		{
			name: "single trivial rule",
			rules: []Rule{
				{NonTerminal: "<S>", Productions: []Symbols{{"a"}}},
			},
		},
		{
			name: "mutually referencing rules",
			rules: []Rule{
				{NonTerminal: "<S>", Productions: []Symbols{{"<A>", "a"}}},
				{NonTerminal: "<A>", Productions: []Symbols{{"<S>"}, {Empty}}},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := New(tc.rules)
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			assert.Equal(t, tc.rules[0].NonTerminal, g.StartSymbol())

			aug, ok := g.Production(0)
			require.True(t, ok)
			assert.Equal(t, g.AugmentedStart(), aug.Left)
			assert.Equal(t, Symbols{g.StartSymbol()}, aug.Right)
		})
	}
}

func Test_Grammar_IsNullable(t *testing.T) {
	g, err := New([]Rule{
		{NonTerminal: "<S>", Productions: []Symbols{{"<A>", "b"}}},
		{NonTerminal: "<A>", Productions: []Symbols{{"a"}, {Empty}}},
	})
	require.NoError(t, err)

	assert.True(t, g.IsNullable("<A>"))
	assert.False(t, g.IsNullable("<S>"))
}

func Test_Grammar_FIRST(t *testing.T) {
	// classic dragon-book-style expression grammar, enough to exercise
	// nullable propagation and direct-left-recursion termination.
	g, err := New([]Rule{
		{NonTerminal: "<E>", Productions: []Symbols{{"<T>", "<E'>"}}},
		{NonTerminal: "<E'>", Productions: []Symbols{{"+", "<T>", "<E'>"}, {Empty}}},
		{NonTerminal: "<T>", Productions: []Symbols{{"<F>", "<T'>"}}},
		{NonTerminal: "<T'>", Productions: []Symbols{{"*", "<F>", "<T'>"}, {Empty}}},
		{NonTerminal: "<F>", Productions: []Symbols{{"(", "<E>", ")"}, {"<identifier>"}}},
	})
	require.NoError(t, err)

	first := g.FIRST()

	assert.True(t, first["<E>"].Has("("))
	assert.True(t, first["<E>"].Has(Symbol("<identifier>")))
	assert.False(t, first["<E>"].Has(Empty))

	assert.True(t, first["<E'>"].Has("+"))
	assert.True(t, first["<E'>"].Has(Empty))

	assert.True(t, first["<T'>"].Has("*"))
	assert.True(t, first["<T'>"].Has(Empty))
}

// Test_Grammar_FIRST_directLeftRecursion checks spec 8's boundary behavior
// for direct left recursion (A -> A alpha | beta): the fixed point must
// still terminate and FIRST(A) must still derive FIRST(beta), since the
// A-alpha alternative contributes nothing (spec 4.4: "if Xi equals A, stop
// this production").
func Test_Grammar_FIRST_directLeftRecursion(t *testing.T) {
	g, err := New([]Rule{
		{NonTerminal: "<A>", Productions: []Symbols{{"<A>", "+", "b"}, {"c"}}},
	})
	require.NoError(t, err)

	first := g.FIRST()
	assert.True(t, first["<A>"].Has("c"))
	assert.False(t, first["<A>"].Has("+"))
	assert.False(t, first["<A>"].Has("b"))
}

func Test_FIRSTOfSequence(t *testing.T) {
	g, err := New([]Rule{
		{NonTerminal: "<A>", Productions: []Symbols{{"a"}, {Empty}}},
	})
	require.NoError(t, err)
	first := g.FIRST()

	empty := FIRSTOfSequence(first, nil)
	assert.True(t, empty.Has(Empty))

	nullableThenTerm := FIRSTOfSequence(first, Symbols{"<A>", "b"})
	assert.True(t, nullableThenTerm.Has("a"))
	assert.True(t, nullableThenTerm.Has("b"))
	assert.False(t, nullableThenTerm.Has(Empty))
}

func Test_Symbol_Kind(t *testing.T) {
	assert.Equal(t, KindNonterminal, Symbol("<EXPR>").Kind())
	assert.Equal(t, KindTerminalAlias, Symbol("<identifier>").Kind())
	assert.Equal(t, KindTerminalAlias, Symbol("<constant>").Kind())
	assert.Equal(t, KindEmpty, Empty.Kind())
	assert.Equal(t, KindTerminal, Symbol("+").Kind())
	assert.Equal(t, KindTerminal, Symbol("if").Kind())
}
