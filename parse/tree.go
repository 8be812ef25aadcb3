package parse

import (
	"strings"

	"github.com/brackenfish/langkit/grammar"
	"github.com/brackenfish/langkit/lex"
)

// Tree is a parse tree node: either a leaf holding a scanned token, or an
// interior node holding the production that reduced its children, per the
// supplemented "always build a tree" behavior (the driver constructs one of
// these on every reduce, mirroring how a shift pushes a token).
type Tree struct {
	Symbol   grammar.Symbol
	Token    *lex.Token // non-nil only for a leaf
	Children []*Tree
}

// IsLeaf reports whether this node came from a shift rather than a reduce.
func (t *Tree) IsLeaf() bool {
	return t.Token != nil
}

// String renders the tree as an indented outline, for debugging and tests.
func (t *Tree) String() string {
	var b strings.Builder
	t.write(&b, 0)
	return b.String()
}

func (t *Tree) write(b *strings.Builder, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	if t.IsLeaf() {
		b.WriteString(t.Token.String())
	} else {
		b.WriteString(string(t.Symbol))
	}
	b.WriteByte('\n')
	for _, c := range t.Children {
		c.write(b, depth+1)
	}
}
