package lex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brackenfish/langkit/internal/ferrors"
)

func Test_buildCategory_malformedProduction(t *testing.T) {
	spec := CategorySpec{
		Groups: []ProductionGroup{
			{Production: []string{"no arrow here"}},
		},
	}

	_, err := buildCategory(CategoryOperator, spec)

	var specErr *ferrors.SpecError
	require.ErrorAs(t, err, &specErr)
}

func Test_buildCategory_emptyAtomRejected(t *testing.T) {
	spec := CategorySpec{
		Groups: []ProductionGroup{
			{Production: []string{"<START>-><empty>"}},
		},
	}

	_, err := buildCategory(CategoryOperator, spec)
	assert.Error(t, err)
}

func Test_buildCategory_singleLiteral(t *testing.T) {
	spec := CategorySpec{
		Groups: []ProductionGroup{
			{Production: []string{"<START>-><+>"}},
		},
	}

	d, err := buildCategory(CategoryOperator, spec)
	require.NoError(t, err)

	state, ok := d.Step(d.Start, '+')
	require.True(t, ok)
	assert.True(t, d.Accept[state])
}

// Test_buildCategory_namedGroupStart matches spec 8 scenario 1's worked
// example verbatim: a group whose first production's LHS is a name other
// than the literal "<START>" (here "<KW>") must still wire its edges out of
// the shared global START, since spec 4.1 aliases a group's own start
// symbol to node 0.
func Test_buildCategory_namedGroupStart(t *testing.T) {
	spec := CategorySpec{
		Groups: []ProductionGroup{
			{Production: []string{"<KW>-><i><f>"}},
		},
	}

	d, err := buildCategory(CategoryKeyword, spec)
	require.NoError(t, err)

	state, ok := d.Step(d.Start, 'i')
	require.True(t, ok)
	state, ok = d.Step(state, 'f')
	require.True(t, ok)
	assert.True(t, d.Accept[state])
}
