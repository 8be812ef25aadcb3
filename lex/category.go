package lex

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/brackenfish/langkit/automaton"
	"github.com/brackenfish/langkit/internal/ferrors"
)

// atomPattern matches one bracketed RHS atom: a literal single character,
// an alias name, or the empty marker, all written "<...>" per spec 4.1.
var atomPattern = regexp.MustCompile(`<([^<>]*)>`)

// buildCategory translates a CategorySpec's production groups into one
// automaton.NFA (spec 4.1) and determinizes it (spec 4.2). Each group gets
// its own freshly-named chain of intermediate nodes, scoped by group index
// so that two groups can both declare, say, an "1" continuation node
// without colliding. Per spec 4.1, a group's own start symbol — the LHS of
// its first production, whatever name it's written with (e.g. "<KW>" in
// the worked example "<KW>-><i><f>") — is aliased to the shared global
// START (node 0), so a transition authored from that name leaves node 0
// rather than some group-local node.
func buildCategory(cat Category, spec CategorySpec) (*automaton.DFA, error) {
	n := automaton.NewNFA()

	for gi, group := range spec.Groups {
		groupStart, err := firstLHS(cat, gi, group)
		if err != nil {
			return nil, err
		}
		for _, prod := range group.Production {
			if err := addProduction(n, cat, gi, groupStart, prod); err != nil {
				return nil, err
			}
		}
	}

	return automaton.Subset(n).NumberStates(), nil
}

// firstLHS extracts the left-hand side of a group's first production — the
// name that spec 4.1 aliases to the shared global START for the rest of the
// group. Returns "" for an empty group (nothing to alias).
func firstLHS(cat Category, group int, g ProductionGroup) (string, error) {
	if len(g.Production) == 0 {
		return "", nil
	}
	lhsRaw, _, ok := strings.Cut(g.Production[0], "->")
	if !ok {
		return "", ferrors.NewSpecError("%s category: malformed production %q: missing ->", cat, g.Production[0])
	}
	lhsRaw = strings.TrimSpace(lhsRaw)
	if len(lhsRaw) >= 2 && lhsRaw[0] == '<' && lhsRaw[len(lhsRaw)-1] == '>' {
		lhsRaw = lhsRaw[1 : len(lhsRaw)-1]
	}
	return lhsRaw, nil
}

// addProduction parses one right-linear production string of the form
// "<LHS>-><atom1><atom2>...<atomN>[bare]" and wires it into n.
//
// LHS may be written bracketed ("<REST>") or bare ("REST"), naming either
// the reserved "START"/"END" nodes,
// the group's own start symbol (groupStart, aliased to the shared global
// START per spec 4.1), or a group-local continuation node. Atoms are
// consumed left to right, each advancing one byte of input; consecutive
// atoms on a single production line (e.g. "<KW>-><i><f>") are a shorthand
// for a chain through anonymous intermediate nodes, so a whole
// multi-character keyword can be declared without a separate line per
// character. An optional trailing bare (unbracketed) name continues the
// chain into another group-local node rather than terminating it at END;
// a production with no atoms is a direct ε-edge from LHS to the target
// (END, or the bare name if present).
func addProduction(n *automaton.NFA, cat Category, group int, groupStart, prod string) error {
	lhsRaw, rhs, ok := strings.Cut(prod, "->")
	if !ok {
		return ferrors.NewSpecError("%s category: malformed production %q: missing ->", cat, prod)
	}

	lhsName, err := scopedNodeName(cat, group, groupStart, strings.TrimSpace(lhsRaw))
	if err != nil {
		return err
	}
	from := n.Node(lhsName)

	atoms := atomPattern.FindAllStringSubmatch(rhs, -1)
	trailing := strings.TrimSpace(atomPattern.ReplaceAllString(rhs, ""))

	target := automaton.End
	targetSet := false
	if trailing != "" {
		tgtName, err := scopedNodeName(cat, group, groupStart, trailing)
		if err != nil {
			return err
		}
		target = n.Node(tgtName)
		targetSet = true
	}

	if len(atoms) == 0 {
		if !targetSet && trailing == "" {
			n.AddEdge(from, automaton.Epsilon, automaton.End)
			return nil
		}
		n.AddEdge(from, automaton.Epsilon, target)
		return nil
	}

	cur := from
	for i, m := range atoms {
		label := m[1]
		if label == automaton.AliasEmpty {
			return ferrors.NewSpecError("%s category: malformed production %q: <empty> may not appear as an RHS atom", cat, prod)
		}
		last := i == len(atoms)-1
		if !last {
			next := n.Node(fmt.Sprintf("%s-%d-%d-%d", cat, group, n.NumNodes(), i))
			n.AddEdge(cur, label, next)
			cur = next
			continue
		}
		n.AddEdge(cur, label, target)
	}

	return nil
}

// scopedNodeName maps a raw LHS/RHS node reference to its NFA node name:
// the two reserved names ("START", "END") and the group's own start symbol
// (groupStart, aliased to the shared global START per spec 4.1) are shared
// process-wide; everything else is scoped to this category and group so
// identically-named nodes in two different groups never collide (spec
// 4.1's "node lookup ... scoped to the group's index range").
func scopedNodeName(cat Category, group int, groupStart, raw string) (string, error) {
	if len(raw) >= 2 && raw[0] == '<' && raw[len(raw)-1] == '>' {
		raw = raw[1 : len(raw)-1]
	}
	switch raw {
	case "START":
		return "START", nil
	case "END":
		return "END", nil
	case "":
		return "", ferrors.NewSpecError("%s category group %d: empty node name", cat, group)
	default:
		if groupStart != "" && raw == groupStart {
			return "START", nil
		}
		return fmt.Sprintf("%s-%d-%s", cat, group, raw), nil
	}
}
