package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-fillets/internal/registry"
	"github.com/vovakirdan/tui-fillets/internal/storage"
)

var flagListKinds bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available levels",
	Long: `Shows the bundled levels merged with the levels found in the configured
level directories. Solved levels are marked with *.`,
	Run: runList,
}

func init() {
	listCmd.Flags().BoolVar(&flagListKinds, "kinds", false, "List registered model kinds instead")
}

func runList(cmd *cobra.Command, args []string) {
	if flagListKinds {
		fmt.Println("Model kinds:")
		for _, k := range registry.List() {
			fmt.Printf("  %-6s  %s\n", k.Kind, k.Title)
		}
		return
	}

	cfg := loadConfig()
	catalog := loadCatalog(cfg)

	if len(catalog) == 0 {
		fmt.Println("No levels available.")
		return
	}

	var stats map[string]*storage.LevelStats
	if store := openStore(cfg); store != nil {
		stats, _ = store.GetAllLevelStats()
		store.Close()
	}

	fmt.Println("Available levels:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, lvl := range catalog {
		if len(lvl.ID) > maxIDLen {
			maxIDLen = len(lvl.ID)
		}
	}

	// Print header
	fmt.Printf("    %-*s  %-7s  %-4s  %s\n", maxIDLen, "ID", "Size", "Best", "Name")
	fmt.Printf("    %-*s  %-7s  %-4s  %s\n", maxIDLen, "--", "----", "----", "----")

	for _, lvl := range catalog {
		mark, best := " ", "-"
		if st, ok := stats[lvl.ID]; ok && st.Solved > 0 {
			mark, best = "*", fmt.Sprint(st.BestSteps)
		}
		size := fmt.Sprintf("%dx%d", lvl.Width, lvl.Height)
		fmt.Printf("  %s %-*s  %-7s  %-4s  %s\n", mark, maxIDLen, lvl.ID, size, best, lvl.Name)
	}

	fmt.Println()
	fmt.Println("Run 'fillets play <id>' to play a level.")
}
