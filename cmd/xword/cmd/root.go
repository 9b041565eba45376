package cmd

import (
	"fmt"

	"github.com/Quuxplusone/xword/pkg/dict"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	verbosity int
	dictPath  string
	dictDB    string
)

var rootCmd = &cobra.Command{
	Use:   "xword",
	Short: "Crossword grid filler CLI",
	Long: `xword fills partially constrained crossword grids from a dictionary.

Grids are text files over the alphabet a-z, '#' (black), '.' (open),
'0' (open, vowel) and '1' (open, consonant). Every maximal run of white
cells in a filled grid spells a dictionary word; the search is an exact
cover over a dancing-links matrix and enumerates every filling.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute runs the root command; child commands and flags are registered
// by the init functions of this package. This is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&verbosity, "verbosity", "v", 0, "verbosity level (0=errors only, 1=info)")
	rootCmd.PersistentFlags().StringVarP(&dictPath, "dict", "d", "", "path to plain-text dictionary file")
	rootCmd.PersistentFlags().StringVar(&dictDB, "dict-db", "", "path to SQLite dictionary database")
}

// loadDictionary opens whichever dictionary source the flags name.
func loadDictionary() (*dict.Set, error) {
	switch {
	case dictDB != "":
		return dict.OpenSQLite(dictDB)
	case dictPath != "":
		return dict.LoadFile(dictPath)
	default:
		return nil, fmt.Errorf("a dictionary is required: pass --dict or --dict-db")
	}
}
