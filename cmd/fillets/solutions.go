package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagSolutionsLimit int
	flagSolutionsClear bool
)

var solutionsCmd = &cobra.Command{
	Use:   "solutions <level>",
	Short: "Show the shortest solutions for a level",
	Long: `Display the shortest recorded solutions for the specified level,
ranked by steps and then by rounds.

Examples:
  fillets solutions 01-first-steps
  fillets solutions 03-loose-crate --limit 3
  fillets solutions 03-loose-crate --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runSolutions,
}

func init() {
	solutionsCmd.Flags().IntVar(&flagSolutionsLimit, "limit", 10, "Number of solutions to show")
	solutionsCmd.Flags().BoolVar(&flagSolutionsClear, "clear", false, "Delete recorded solutions and saves of the level")
}

func runSolutions(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	lvl := findLevel(cfg, args[0])

	store := openStore(cfg)
	if store == nil {
		os.Exit(1)
	}
	defer store.Close()

	if flagSolutionsClear {
		if err := store.ClearSolutions(lvl.ID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		if err := store.ClearSaves(lvl.ID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		fmt.Printf("Cleared solutions and saves of %s\n", lvl.ID)
		return
	}

	solutions, err := store.BestSolutions(lvl.ID, flagSolutionsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving solutions: %v\n", err)
		return
	}

	fmt.Printf("Solutions - %s\n", lvl.Name)
	fmt.Println()

	if len(solutions) == 0 {
		fmt.Println("No solutions recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'fillets play %s' to record the first one!\n", lvl.ID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-6s  %-6s  %-16s  %s\n", "Rank", "Steps", "Rounds", "Date", "Moves")
	fmt.Printf("  %-4s  %-6s  %-6s  %-16s  %s\n", "----", "-----", "------", "----", "-----")

	for i, entry := range solutions {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-6d  %-6d  %-16s  %s\n", i+1, entry.Steps, entry.Cycles, dateStr, entry.Moves)
	}

	fmt.Println()
	if stats, err := store.GetLevelStats(lvl.ID); err == nil && stats != nil {
		fmt.Printf("Solved %d times, best %d steps, average %.1f\n", stats.Solved, stats.BestSteps, stats.AvgSteps)
	}
	if saves, err := store.ListSaves(lvl.ID, 5); err == nil && len(saves) > 0 {
		fmt.Println()
		fmt.Println("Saved games:")
		for _, s := range saves {
			fmt.Printf("  %s  %-4d  %s\n", s.CreatedAt.Format("2006-01-02 15:04"), s.Steps, s.ID)
		}
	}
}
