package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/Quuxplusone/xword/pkg/fill"
	"github.com/Quuxplusone/xword/pkg/grid"
	"github.com/spf13/cobra"
)

var (
	fillMax       int
	fillEveryNth  int
	fillAllowDups bool
	fillNaive     bool
	fillPlain     bool
)

var fillCmd = &cobra.Command{
	Use:   "fill <grid-file>",
	Short: "Fill a crossword grid from the dictionary",
	Long: `Fill a grid so that every maximal run of white cells spells a
dictionary word, and print each solution.

Examples:
  # All fillings of a grid
  xword fill --dict words.txt grid.txt

  # First solution only
  xword fill --dict words.txt --max 1 grid.txt

  # Every 10th solution, duplicates allowed
  xword fill --dict-db words.db --every 10 --allow-duplicates grid.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runFill,
}

func init() {
	rootCmd.AddCommand(fillCmd)

	fillCmd.Flags().IntVarP(&fillMax, "max", "m", 0, "stop after this many solutions (0 = all)")
	fillCmd.Flags().IntVarP(&fillEveryNth, "every", "e", 0, "print only every Nth solution")
	fillCmd.Flags().BoolVar(&fillAllowDups, "allow-duplicates", false, "allow the same word to appear twice")
	fillCmd.Flags().BoolVar(&fillNaive, "naive", false, "use the uncompressed exact-cover matrix")
	fillCmd.Flags().BoolVar(&fillPlain, "plain", false, "print plain text instead of boxed grids")
}

func runFill(cmd *cobra.Command, args []string) error {
	g, err := grid.ReadFile(args[0])
	if err != nil {
		return err
	}

	words, err := loadDictionary()
	if err != nil {
		return err
	}
	if verbosity > 0 {
		fmt.Fprintf(os.Stderr, "Loaded %d words\n", words.Len())
		fmt.Fprintf(os.Stderr, "Grid is %dx%d with %d runs\n", g.Width, g.Height, len(g.Runs(grid.MinRunLen)))
	}

	opts := fill.Options{
		AllowDuplicates: fillAllowDups,
		MaxSolutions:    fillMax,
		EveryNth:        fillEveryNth,
		Naive:           fillNaive,
	}

	start := time.Now()
	filler := fill.New(words, opts)
	count, err := filler.Fill(context.Background(), g, func(solved *grid.Grid) {
		if fillPlain {
			fmt.Println(solved.String())
			fmt.Println()
		} else {
			solved.Fprint(os.Stdout)
		}
	})
	if err != nil {
		return err
	}

	fmt.Printf("%d solutions", count)
	if verbosity > 0 {
		fmt.Printf(" (%.2fs)", time.Since(start).Seconds())
	}
	fmt.Println()
	return nil
}
