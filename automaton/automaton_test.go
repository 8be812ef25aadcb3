package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brackenfish/langkit/internal/set"
)

// buildIfIffyNFA builds an NFA with two overlapping branches from the same
// start state: an exact match on "if", and a run of one or more letters. It
// exercises subset construction directly (as opposed to through the lex
// package, which always builds one NFA per category rather than a mixed
// one like this) against an input, "iffy", whose every prefix is accepted
// by the letter-run branch.
func buildIfIffyNFA() *NFA {
	n := NewNFA()
	// "if": START -i-> n1 -f-> END
	n1 := n.Node("kw-1")
	n.AddEdge(Start, "i", n1)
	n.AddEdge(n1, "f", End)
	// any run of letters of length >= 1 also accepts, via a separate group,
	// so a longer match than "if" is reachable from the same start state.
	loop := n.Node("id-loop")
	n.AddEdge(Start, AliasLetter, loop)
	n.AddEdge(loop, AliasLetter, loop)
	n.AddEdge(loop, Epsilon, End)
	return n
}

func Test_NFA_EpsilonClosure(t *testing.T) {
	n := NewNFA()
	mid := n.Node("mid")
	n.AddEdge(Start, Epsilon, mid)
	n.AddEdge(mid, Epsilon, End)

	closure := n.EpsilonClosure(set.New[int](Start))
	assert.True(t, closure.Has(Start))
	assert.True(t, closure.Has(mid))
	assert.True(t, closure.Has(End))
}

func Test_NFA_Move(t *testing.T) {
	n := NewNFA()
	n.AddEdge(Start, "a", End)
	n.AddEdge(Start, AliasDigit, Start)

	moved := n.Move(set.New[int](Start), 'a')
	assert.True(t, moved.Has(End))

	movedDigit := n.Move(set.New[int](Start), '7')
	assert.True(t, movedDigit.Has(Start))

	movedMiss := n.Move(set.New[int](Start), 'z')
	assert.Equal(t, 0, movedMiss.Len())
}

func Test_Subset_longestMatch(t *testing.T) {
	n := buildIfIffyNFA()
	d := Subset(n).NumberStates()

	// walking "iffy" should accept at every prefix length from 1 (the
	// identifier-loop already matches "i") through 4 ("iffy" in full), and
	// should NOT single out "if" as some kind of dead end along the way.
	state := d.Start
	var acceptedLengths []int
	input := "iffy"
	for i := 0; i < len(input); i++ {
		next, ok := d.Step(state, input[i])
		require.True(t, ok, "expected a transition on byte %q at position %d", input[i], i)
		state = next
		if d.Accept[state] {
			acceptedLengths = append(acceptedLengths, i+1)
		}
	}
	assert.Contains(t, acceptedLengths, 2) // "if"
	assert.Contains(t, acceptedLengths, 4) // "iffy"
}

func Test_NumberStates_isDeterministic(t *testing.T) {
	n1 := buildIfIffyNFA()
	n2 := buildIfIffyNFA()

	d1 := Subset(n1).NumberStates()
	d2 := Subset(n2).NumberStates()

	require.Equal(t, len(d1.NFAStates), len(d2.NFAStates))
	for i := range d1.NFAStates {
		assert.Equal(t, d1.NFAStates[i], d2.NFAStates[i])
		assert.Equal(t, d1.Accept[i], d2.Accept[i])
	}
}

func Test_ExpandAlias(t *testing.T) {
	digits := ExpandAlias(AliasDigit)
	assert.Len(t, digits, 10)
	assert.Contains(t, digits, byte('0'))
	assert.Contains(t, digits, byte('9'))

	letters := ExpandAlias(AliasLetter)
	assert.Len(t, letters, 52)

	assert.Nil(t, ExpandAlias(AliasEmpty))
	assert.Nil(t, ExpandAlias("not-an-alias"))
}

func Test_LabelMatches(t *testing.T) {
	assert.True(t, LabelMatches("a", 'a'))
	assert.False(t, LabelMatches("a", 'b'))
	assert.True(t, LabelMatches(AliasDigit, '5'))
	assert.False(t, LabelMatches(AliasDigit, 'x'))
	assert.False(t, LabelMatches(Epsilon, 'a'))
}
