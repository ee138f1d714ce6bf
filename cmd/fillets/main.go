// fillets is a terminal puzzle game: steer fish through rooms of falling
// objects and lead every one of them out.
//
// Usage:
//
//	fillets list               - List available levels
//	fillets play [level]       - Play a level, or pick one from the menu
//	fillets replay <file>      - Replay a saved session and report the result
//	fillets verify             - Check every bundled solution
//	fillets solutions <level>  - Show the shortest recorded solutions
//	fillets board              - Browse solutions interactively
//	fillets serve              - Start SSH server for remote play
//	fillets schema             - Print the level file JSON schema
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default from config)
//	--seed <value>       - Set RNG seed for sound variants
//	--db <path>          - Set database path (default: ~/.fillets/fillets.db)
//	--config <path>      - Use a custom config file
//	--levels <dir>       - Extra level directory
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-fillets/internal/config"
	"github.com/vovakirdan/tui-fillets/internal/games/fillets/levels"
	"github.com/vovakirdan/tui-fillets/internal/storage"
)

var (
	// Global flags
	flagFPS       int
	flagSeed      int64
	flagDBPath    string
	flagConfig    string
	flagLevelsDir []string
	flagLogLevel  string
	flagPace      string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fillets",
	Short: "Fillets - Push, drop and swim puzzles in your terminal",
	Long: `Fillets is a terminal puzzle game. Every room holds fish, walls and
loose objects that fall under gravity. Move the fish to push objects around,
never let anything land on a fish, and swim every fish out of the room.

Available commands:
  list       - Show all available levels
  play       - Play a level directly or pick one from the menu
  replay     - Replay a saved session file
  verify     - Check the solutions shipped with every level
  solutions  - Show the shortest recorded solutions
  board      - Browse solutions interactively
  serve      - Start SSH server for remote play
  schema     - Print the JSON schema of level files

Examples:
  fillets list
  fillets play 01-first-steps
  fillets play --pace fast
  fillets replay ./run.yaml
  fillets serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed for sound variants (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to solutions database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringSliceVar(&flagLevelsDir, "levels", nil, "Extra level directories")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagPace, "pace", "", "Pace preset: relaxed, normal, fast, instant")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(solutionsCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(schemaCmd)
}

// loadConfig reads the config file and applies the global flags on top of it.
func loadConfig() config.FilletsConfig {
	cfg, err := config.LoadFillets(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagPace != "" {
		preset, ok := config.ParsePacePreset(flagPace)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown pace %q\n", flagPace)
			os.Exit(1)
		}
		config.ApplyPacePreset(&cfg, preset)
	}
	if flagFPS > 0 {
		cfg.Timing.TickRate = flagFPS
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	cfg.Levels.Dirs = append(cfg.Levels.Dirs, flagLevelsDir...)
	return cfg
}

// newLogger builds the stderr logger at the configured level.
func newLogger(cfg config.FilletsConfig, prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if cfg.Log.Level == "" {
		logger.SetLevel(log.WarnLevel)
		return logger
	}
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: unknown log level %q, using warn\n", cfg.Log.Level)
		level = log.WarnLevel
	}
	logger.SetLevel(level)
	return logger
}

// openStore opens the solutions database. A failure is reported and the
// game keeps running without persistence.
func openStore(cfg config.FilletsConfig) *storage.Store {
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open solutions database: %v\n", err)
		return nil
	}
	return store
}

// loadCatalog returns the bundled levels merged with the configured directories.
func loadCatalog(cfg config.FilletsConfig) []levels.Level {
	catalog, err := levels.Catalog(cfg.LevelDirs()...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}
	return catalog
}

// findLevel looks up one level or exits with a hint.
func findLevel(cfg config.FilletsConfig, id string) levels.Level {
	lvl, err := levels.Find(id, cfg.LevelDirs()...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown level %q\n", id)
		fmt.Fprintln(os.Stderr, "Run 'fillets list' to see available levels.")
		os.Exit(1)
	}
	return lvl
}

func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}
