package cmd

import (
	"fmt"
	"os"

	"github.com/Quuxplusone/xword/pkg/grid"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <grid-file>",
	Short: "Check a grid file and report its runs",
	Long: `Parse a grid file, list its runs, and check the duplicate-word
precondition. A grid that already contains the same complete word twice
cannot be filled unless duplicates are allowed.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	g, err := grid.ReadFile(args[0])
	if err != nil {
		return err
	}

	g.Fprint(os.Stdout)
	fmt.Printf("Grid: %dx%d\n", g.Width, g.Height)

	runs := g.Runs(grid.MinRunLen)
	fmt.Printf("Runs: %d\n", len(runs))
	if verbosity > 0 {
		for _, run := range runs {
			fmt.Printf("  %2d,%-2d %-6s len %2d  %s\n", run.Row+1, run.Col+1, run.Direction, run.Length, g.RunText(run))
		}
	}

	short := 0
	for _, seq := range g.Runs(1) {
		if seq.Length < grid.MinRunLen {
			short++
		}
	}
	if short > 0 {
		fmt.Printf("Short sequences (unchecked against the dictionary): %d\n", short)
	}

	if g.HasDuplicateRuns() {
		return fmt.Errorf("grid already contains the same word twice")
	}
	fmt.Println("No duplicate words")
	return nil
}
