package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-fillets/internal/core"
	"github.com/vovakirdan/tui-fillets/internal/platform/tui"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Browse recorded solutions",
	Long: `Open an interactive board listing the shortest recorded solutions of
every level. Use left/right to switch levels and q to quit.`,
	Run: runBoard,
}

func runBoard(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	catalog := loadCatalog(cfg)

	store := openStore(cfg)
	if store == nil {
		os.Exit(1)
	}
	defer store.Close()

	rc := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rc.ScreenW, rc.ScreenH = w, h
	}

	if err := tui.RunBoard(catalog, store, rc); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
