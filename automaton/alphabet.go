// Package automaton builds the nondeterministic and deterministic finite
// automata behind each lexical category: NFA construction from right-linear
// productions (see the lex package, which owns the production-string
// parsing), and the subset construction that turns an NFA into an
// equivalent DFA. States are represented as dense integer indices into an
// owning slice rather than as pointers, since the graphs these algorithms
// build are inherently cyclic (loops in a keyword/identifier NFA are
// ordinary) and an arena of indices sidesteps any ownership question.
package automaton

// Epsilon is the reserved edge label denoting an NFA ε-transition. It is
// never a member of the alphabet gathered for subset construction.
const Epsilon = ""

// character-class aliases recognized on NFA edges, expanded to literal byte
// sets before subset construction so the lexer and the subset constructor
// agree on what each alias means (spec 4.8 centralizes this for exactly that
// reason).
const (
	AliasDigit  = "digit"
	AliasLetter = "letter"
	AliasDot1   = "dot1"
	AliasDot2   = "dot2"
	AliasEmpty  = "empty"
)

// ExpandAlias returns the literal bytes an alias label matches, per spec
// 4.2. A literal single-character label is not an alias; NFA.Alphabet and
// LabelMatches treat it as itself, and this function returns nil for it.
func ExpandAlias(alias string) []byte {
	switch alias {
	case AliasDigit:
		return rangeBytes('0', '9')
	case AliasLetter:
		out := rangeBytes('A', 'Z')
		return append(out, rangeBytes('a', 'z')...)
	case AliasDot1:
		return dotBytes('"')
	case AliasDot2:
		return dotBytes('\'')
	case AliasEmpty:
		// empty denotes epsilon, not a character; it contributes nothing to
		// the alphabet. Asserted explicitly here rather than left to fall
		// through to "not an alias, must be literal", per spec 9's note
		// that alias-name filtering should be explicit in a port.
		return nil
	default:
		return nil
	}
}

func rangeBytes(lo, hi byte) []byte {
	out := make([]byte, 0, int(hi-lo)+1)
	for b := lo; b <= hi; b++ {
		out = append(out, b)
	}
	return out
}

// dotBytes returns every ASCII byte 0..127 except \r, \n, and excluded.
func dotBytes(excluded byte) []byte {
	out := make([]byte, 0, 125)
	for b := byte(0); b < 128; b++ {
		if b == '\r' || b == '\n' || b == excluded {
			continue
		}
		out = append(out, b)
	}
	return out
}

// IsAlias reports whether label names a recognized character-class alias
// (as opposed to a literal single-character label or the epsilon label).
func IsAlias(label string) bool {
	switch label {
	case AliasDigit, AliasLetter, AliasDot1, AliasDot2, AliasEmpty:
		return true
	default:
		return false
	}
}

// LabelMatches reports whether edge label matches input byte c: either label
// is the single-character string equal to c, or label is an alias whose
// expansion contains c.
func LabelMatches(label string, c byte) bool {
	if label == Epsilon {
		return false
	}
	if len(label) == 1 {
		return label[0] == c
	}
	if IsAlias(label) {
		for _, b := range ExpandAlias(label) {
			if b == c {
				return true
			}
		}
	}
	return false
}
