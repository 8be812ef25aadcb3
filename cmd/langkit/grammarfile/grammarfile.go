// Package grammarfile decodes the on-disk YAML forms of a lexical grammar
// file and a syntactic grammar file (spec 6) into the plain Go values the
// core grammar/lex/parse packages accept. Keeping this translation outside
// those packages is deliberate: core construction never touches a
// filesystem or a config format, so it stays usable from any caller, not
// just this CLI.
package grammarfile

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/brackenfish/langkit/grammar"
	"github.com/brackenfish/langkit/lex"
)

// lexicalGroupYAML is one production group as it appears in a lexical
// grammar YAML file.
type lexicalGroupYAML struct {
	Description string   `yaml:"description"`
	Production  []string `yaml:"production"`
}

// lexicalCategoryYAML is one category's worth of a lexical grammar YAML
// file.
type lexicalCategoryYAML struct {
	Description string             `yaml:"description"`
	Groups      []lexicalGroupYAML `yaml:"groups"`
}

// LexicalFile is the decoded shape of a lexical grammar YAML file: the five
// fixed categories, in file order, per spec 6.
type LexicalFile struct {
	Keyword    lexicalCategoryYAML `yaml:"keyword"`
	Identifier lexicalCategoryYAML `yaml:"identifier"`
	Constant   lexicalCategoryYAML `yaml:"constant"`
	Operator   lexicalCategoryYAML `yaml:"operator"`
	Delimiter  lexicalCategoryYAML `yaml:"delimiter"`
}

// LoadLexicalSpec reads and decodes path as a lexical grammar YAML file and
// converts it to a lex.LexicalSpec.
func LoadLexicalSpec(path string) (lex.LexicalSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return lex.LexicalSpec{}, err
	}

	var f LexicalFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return lex.LexicalSpec{}, err
	}

	return lex.LexicalSpec{
		Keyword:    toCategorySpec(f.Keyword),
		Identifier: toCategorySpec(f.Identifier),
		Constant:   toCategorySpec(f.Constant),
		Operator:   toCategorySpec(f.Operator),
		Delimiter:  toCategorySpec(f.Delimiter),
	}, nil
}

func toCategorySpec(c lexicalCategoryYAML) lex.CategorySpec {
	groups := make([]lex.ProductionGroup, len(c.Groups))
	for i, g := range c.Groups {
		groups[i] = lex.ProductionGroup{Description: g.Description, Production: g.Production}
	}
	return lex.CategorySpec{Description: c.Description, Groups: groups}
}

// syntacticRuleYAML is one nonterminal's worth of a syntactic grammar YAML
// file: a name and its ordered list of alternative right-hand sides, each
// given as a list of symbol strings.
type syntacticRuleYAML struct {
	NonTerminal string     `yaml:"nonterminal"`
	Productions [][]string `yaml:"productions"`
}

// SyntacticFile is the decoded shape of a syntactic grammar YAML file: an
// ordered list of rules, the first of which names the grammar's start
// symbol (spec 6).
type SyntacticFile struct {
	Rules []syntacticRuleYAML `yaml:"rules"`
}

// LoadGrammar reads and decodes path as a syntactic grammar YAML file and
// builds a grammar.Grammar from it.
func LoadGrammar(path string) (grammar.Grammar, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return grammar.Grammar{}, err
	}

	var f SyntacticFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return grammar.Grammar{}, err
	}

	rules := make([]grammar.Rule, len(f.Rules))
	for i, r := range f.Rules {
		prods := make([]grammar.Symbols, len(r.Productions))
		for j, rhs := range r.Productions {
			prods[j] = toSymbols(rhs)
		}
		rules[i] = grammar.Rule{NonTerminal: grammar.Symbol(r.NonTerminal), Productions: prods}
	}

	return grammar.New(rules)
}

// toSymbols converts a right-hand side's raw symbol strings to Symbols,
// filtering out any literal "<#>" marker per spec 6 ("the empty marker <#>
// (filtered out during ingest)"); an RHS that is empty after filtering (or
// was written as an empty list to begin with) becomes the single-element
// Symbols{grammar.Empty}, the canonical representation New/FIRST expect for
// an empty production.
func toSymbols(rhs []string) grammar.Symbols {
	seq := make(grammar.Symbols, 0, len(rhs))
	for _, s := range rhs {
		if grammar.Symbol(s) == grammar.Empty {
			continue
		}
		seq = append(seq, grammar.Symbol(s))
	}
	if len(seq) == 0 {
		return grammar.Symbols{grammar.Empty}
	}
	return seq
}
