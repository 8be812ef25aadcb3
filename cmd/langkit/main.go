/*
Langkit builds a scanner and an LR(1) parser from a pair of grammar files
and, optionally, runs them over a source file.

Usage:

	langkit --lex LEXFILE --syntax GRAMMARFILE [flags]

The flags are:

	-v, --version
		Give the current version of langkit and then exit.

	-x, --lex LEXFILE
		Use the given YAML lexical grammar file (spec 6) to build the scanner.

	-g, --syntax GRAMMARFILE
		Use the given YAML syntactic grammar file (spec 6) to build the parser.

	-i, --input FILE
		Scan and parse the given source file using the built scanner and
		parser, printing the resulting parse tree. If not given, langkit only
		builds the table (and prints it, if --table is set) and exits.

	-l, --lalr
		Build an LALR(1) table (core-merged canonical states) instead of the
		default canonical LR(1) table.

	-t, --table
		Print the built ACTION/GOTO table.

	-c, --cache FILE
		Cache the built ACTION/GOTO table at FILE (rezi binary format) and
		reuse it on a later run if FILE already exists and is newer than the
		syntactic grammar file.
*/
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/projectdiscovery/gologger"
	"github.com/spf13/pflag"

	"github.com/brackenfish/langkit/cmd/langkit/grammarfile"
	"github.com/brackenfish/langkit/lex"
	"github.com/brackenfish/langkit/parse"
)

const (
	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota
	// ExitUsageError indicates missing or invalid flags.
	ExitUsageError
	// ExitBuildError indicates a grammar load or table construction failure.
	ExitBuildError
	// ExitRunError indicates a scan or parse failure on the given input.
	ExitRunError
)

var (
	flagVersion = pflag.BoolP("version", "v", false, "Give the current version of langkit and then exit")
	lexFile     = pflag.StringP("lex", "x", "", "YAML lexical grammar file")
	syntaxFile  = pflag.StringP("syntax", "g", "", "YAML syntactic grammar file")
	inputFile   = pflag.StringP("input", "i", "", "Source file to scan and parse")
	useLALR     = pflag.BoolP("lalr", "l", false, "Build an LALR(1) table instead of a canonical LR(1) table")
	printTable  = pflag.BoolP("table", "t", false, "Print the built ACTION/GOTO table")
	cacheFile   = pflag.StringP("cache", "c", "", "Cache file for the built ACTION/GOTO table")
)

const version = "0.1.0"

func main() {
	pflag.Parse()

	if *flagVersion {
		fmt.Printf("langkit %s\n", version)
		os.Exit(ExitSuccess)
	}

	if *lexFile == "" || *syntaxFile == "" {
		gologger.Error().Msgf("--lex and --syntax are both required")
		os.Exit(ExitUsageError)
	}

	ctx := context.Background()

	table, err := buildTable(*syntaxFile, *cacheFile, *useLALR)
	if err != nil {
		gologger.Error().Msgf("build table: %v", err)
		os.Exit(ExitBuildError)
	}
	gologger.Info().Msgf("built table with %d states", len(table.Automaton.States))

	if *printTable {
		fmt.Println(table.String())
	}

	if *inputFile == "" {
		return
	}

	spec, err := grammarfile.LoadLexicalSpec(*lexFile)
	if err != nil {
		gologger.Error().Msgf("load lexical spec: %v", err)
		os.Exit(ExitBuildError)
	}
	scanner, err := lex.NewScanner(spec)
	if err != nil {
		gologger.Error().Msgf("build scanner: %v", err)
		os.Exit(ExitBuildError)
	}

	src, err := os.ReadFile(*inputFile)
	if err != nil {
		gologger.Error().Msgf("read input: %v", err)
		os.Exit(ExitRunError)
	}

	toks, err := scanner.Scan(ctx, string(src))
	if err != nil {
		gologger.Error().Msgf("scan: %v", err)
		os.Exit(ExitRunError)
	}
	gologger.Info().Msgf("scanned %d tokens", len(toks))

	tree, err := parse.Parse(ctx, table, lex.NewStream(toks))
	if err != nil {
		gologger.Error().Msgf("parse: %v", err)
		os.Exit(ExitRunError)
	}

	fmt.Println(tree.String())
}

// buildTable loads the syntactic grammar at syntaxPath and builds its
// ACTION/GOTO table, preferring a cached table at cachePath if one exists and
// is newer than syntaxPath.
func buildTable(syntaxPath, cachePath string, lalr bool) (*parse.Table, error) {
	g, err := grammarfile.LoadGrammar(syntaxPath)
	if err != nil {
		return nil, err
	}

	if cachePath != "" && cacheIsFresh(cachePath, syntaxPath) {
		if data, err := os.ReadFile(cachePath); err == nil {
			var t parse.Table
			if err := t.UnmarshalBinary(data); err == nil {
				// UnmarshalBinary only restores the derived ACTION/GOTO
				// rows (see parse/binary.go): the driver and table printer
				// both also dereference t.Grammar directly (production
				// lookups on reduce, terminal/nonterminal listing when
				// printing), so it must be reattached here rather than left
				// as the zero value a bare cache load would leave it at.
				t.Grammar = g
				gologger.Info().Msgf("loaded cached table from %s", cachePath)
				return &t, nil
			}
			gologger.Error().Msgf("ignoring unreadable cache at %s", cachePath)
		}
	}

	var t *parse.Table
	if lalr {
		t, err = parse.NewLALRTable(g)
	} else {
		t, err = parse.NewCanonicalTable(g)
	}
	if err != nil {
		return nil, err
	}

	if cachePath != "" {
		if data, err := t.MarshalBinary(); err == nil {
			if err := os.WriteFile(cachePath, data, 0644); err != nil {
				gologger.Error().Msgf("could not write table cache: %v", err)
			}
		}
	}

	return t, nil
}

// cacheIsFresh reports whether cachePath exists and was last written after
// syntaxPath was last modified. A missing cache or a stat failure on either
// path counts as stale.
func cacheIsFresh(cachePath, syntaxPath string) bool {
	cacheInfo, err := os.Stat(cachePath)
	if err != nil {
		return false
	}
	syntaxInfo, err := os.Stat(syntaxPath)
	if err != nil {
		return false
	}
	return cacheInfo.ModTime().After(syntaxInfo.ModTime())
}
