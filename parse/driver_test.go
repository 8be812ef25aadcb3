package parse

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brackenfish/langkit/grammar"
	"github.com/brackenfish/langkit/internal/ferrors"
	"github.com/brackenfish/langkit/lex"
)

func ident(line int, name string) lex.Token {
	return lex.Token{Line: line, Category: lex.CategoryIdentifier, Lexeme: name}
}

func op(line int, s string) lex.Token {
	return lex.Token{Line: line, Category: lex.CategoryOperator, Lexeme: s}
}

func delim(line int, s string) lex.Token {
	return lex.Token{Line: line, Category: lex.CategoryDelimiter, Lexeme: s}
}

func Test_Parse_acceptsValidExpression(t *testing.T) {
	g := exprGrammar(t)
	tbl, err := NewCanonicalTable(g)
	require.NoError(t, err)

	// a + ( b + c )
	toks := []lex.Token{
		ident(1, "a"),
		op(1, "+"),
		delim(1, "("),
		ident(1, "b"),
		op(1, "+"),
		ident(1, "c"),
		delim(1, ")"),
		lex.End(1),
	}

	tree, err := Parse(context.Background(), tbl, lex.NewStream(toks))
	require.NoError(t, err)
	require.NotNil(t, tree)
	assert.Equal(t, g.StartSymbol(), tree.Symbol)
	assert.False(t, tree.IsLeaf())
}

func Test_Parse_reportsAnalysisErrorOnMiss(t *testing.T) {
	g := exprGrammar(t)
	tbl, err := NewCanonicalTable(g)
	require.NoError(t, err)

	// a + + b is not a valid expression: two operators in a row.
	toks := []lex.Token{
		ident(1, "a"),
		op(1, "+"),
		op(2, "+"),
		ident(2, "b"),
		lex.End(2),
	}

	_, err = Parse(context.Background(), tbl, lex.NewStream(toks))
	require.Error(t, err)

	var analysisErr *ferrors.AnalysisError
	require.ErrorAs(t, err, &analysisErr)
	assert.Equal(t, 2, analysisErr.Line)
	assert.NotEmpty(t, analysisErr.Candidates)
}

// Test_Parse_nullableStartAcceptsEmptyStream matches spec 8's boundary
// behavior: if the start production is nullable, the synthetic end token
// alone (an otherwise-empty token stream) must be accepted.
func Test_Parse_nullableStartAcceptsEmptyStream(t *testing.T) {
	g, err := grammar.New(grammar.MustParseBNF(`
		<S> = a <S> | <#>
	`))
	require.NoError(t, err)

	tbl, err := NewCanonicalTable(g)
	require.NoError(t, err)

	tree, err := Parse(context.Background(), tbl, lex.NewStream([]lex.Token{lex.End(1)}))
	require.NoError(t, err)
	require.NotNil(t, tree)
	assert.Equal(t, g.StartSymbol(), tree.Symbol)
}

func Test_Parse_acceptsSingleIdentifier(t *testing.T) {
	g := exprGrammar(t)
	tbl, err := NewCanonicalTable(g)
	require.NoError(t, err)

	toks := []lex.Token{ident(1, "x"), lex.End(1)}

	tree, err := Parse(context.Background(), tbl, lex.NewStream(toks))
	require.NoError(t, err)
	assert.Equal(t, g.StartSymbol(), tree.Symbol)
}
