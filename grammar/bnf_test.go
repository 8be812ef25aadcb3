package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ParseBNF(t *testing.T) {
	rules, err := ParseBNF(`
		# a comment line
		<S> = <A> b | <#>
		<A> = a
	`)
	require.NoError(t, err)
	require.Len(t, rules, 2)

	assert.Equal(t, Symbol("<S>"), rules[0].NonTerminal)
	assert.Equal(t, Symbols{"<A>", "b"}, rules[0].Productions[0])
	assert.Equal(t, Symbols{Empty}, rules[0].Productions[1])
}

func Test_ParseBNF_errors(t *testing.T) {
	_, err := ParseBNF("")
	assert.Error(t, err)

	_, err = ParseBNF("no-equals-sign")
	assert.Error(t, err)

	_, err = ParseBNF("nonbracketed = a")
	assert.Error(t, err)
}

func Test_MustParseBNF_panicsOnError(t *testing.T) {
	assert.Panics(t, func() {
		MustParseBNF("")
	})
}
