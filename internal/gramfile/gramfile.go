// Package gramfile loads a grammar from a TOML file: a start symbol and an
// ordered list of productions. It is the only place grammar input parsing
// lives; everything past Load deals strictly with grammar.Grammar values.
package gramfile

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/arashi/tablegram/internal/grammar"
)

// File is the TOML shape a grammar file must have:
//
//	start = "E"
//
//	[[production]]
//	lhs = "E"
//	rhs = ["E", "+", "T"]
//
//	[[production]]
//	lhs = "E"
//	rhs = ["T"]
type File struct {
	Start       string            `toml:"start"`
	Productions []ProductionEntry `toml:"production"`
}

// ProductionEntry is one [[production]] table. An absent or empty rhs
// denotes an epsilon production.
type ProductionEntry struct {
	NonTerminal string   `toml:"lhs"`
	Rhs         []string `toml:"rhs"`
}

// Load reads and decodes the grammar file at path, then builds a
// grammar.Grammar from it.
func Load(path string) (grammar.Grammar, error) {
	var f File
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return grammar.Grammar{}, fmt.Errorf("reading grammar file %s: %w", path, err)
	}
	return build(f)
}

// Decode is Load's in-memory counterpart, decoding src as TOML text rather
// than reading it from a file.
func Decode(src string) (grammar.Grammar, error) {
	var f File
	if _, err := toml.Decode(src, &f); err != nil {
		return grammar.Grammar{}, fmt.Errorf("decoding grammar: %w", err)
	}
	return build(f)
}

func build(f File) (grammar.Grammar, error) {
	prods := make([]grammar.Production, len(f.Productions))
	for i, p := range f.Productions {
		prods[i] = grammar.NewProduction(p.NonTerminal, p.Rhs)
	}
	return grammar.New(prods, f.Start)
}
