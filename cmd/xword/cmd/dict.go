package cmd

import (
	"fmt"

	"github.com/Quuxplusone/xword/pkg/dict"
	"github.com/spf13/cobra"
)

var dictCmd = &cobra.Command{
	Use:   "dict",
	Short: "Build and query dictionaries",
}

var dictImportCmd = &cobra.Command{
	Use:   "import <words-file> <db-file>",
	Short: "Compile a plain-text dictionary into a SQLite database",
	Long: `Read a plain-text dictionary (one entry per line, optional /s /v /w /x
inflection markers) and write every expanded word into a SQLite database
for faster loading.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		words, err := dict.LoadFile(args[0])
		if err != nil {
			return err
		}
		if err := dict.SaveSQLite(words, args[1]); err != nil {
			return err
		}
		fmt.Printf("Imported %d words into %s\n", words.Len(), args[1])
		return nil
	},
}

var dictMatchCmd = &cobra.Command{
	Use:   "match <pattern>",
	Short: "Look up words matching a wildcard pattern",
	Long: `Print the dictionary words matching a pattern. '?' matches any letter,
'0' a vowel, '1' a consonant, '*' any run of letters; a bare '*' prints
every word.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		words, err := loadDictionary()
		if err != nil {
			return err
		}
		matches := words.Match(args[0])
		for _, word := range matches {
			fmt.Println(word)
		}
		fmt.Printf("%d matches\n", len(matches))
		return nil
	},
}

var dictStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show word counts by length",
	RunE: func(cmd *cobra.Command, args []string) error {
		words, err := loadDictionary()
		if err != nil {
			return err
		}
		for _, n := range words.Lengths() {
			count := 0
			words.Each(n, func(string) { count++ })
			fmt.Printf("%2d letters: %6d words\n", n, count)
		}
		fmt.Printf("Total: %d words\n", words.Len())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dictCmd)
	dictCmd.AddCommand(dictImportCmd)
	dictCmd.AddCommand(dictMatchCmd)
	dictCmd.AddCommand(dictStatsCmd)
}
