package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-fillets/internal/audio"
	"github.com/vovakirdan/tui-fillets/internal/config"
	"github.com/vovakirdan/tui-fillets/internal/core"
	"github.com/vovakirdan/tui-fillets/internal/games/fillets"
	"github.com/vovakirdan/tui-fillets/internal/games/fillets/levels"
	"github.com/vovakirdan/tui-fillets/internal/platform/tui"
	"github.com/vovakirdan/tui-fillets/internal/storage"
)

var flagRecord string

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level",
	Long: `Start playing the specified level. Without a level, a menu lists every
level and the shortest recorded solutions.

Controls:
  Arrows/WASD  - Move the active fish
  Space/Tab    - Switch fish
  R/Backspace  - Restart the level
  F2 / F3      - Save / load the move log
  F4           - Play the level's solution
  P            - Pause
  Esc/B        - Back to menu
  Q/Ctrl+C     - Quit

Pace options:
  relaxed  - Long pauses after moves, falls and exits
  normal   - Default pace
  fast     - Short pauses
  instant  - A round every tick

Examples:
  fillets play
  fillets play 01-first-steps
  fillets play 02-steel-door --pace fast
  fillets play 03-loose-crate --record ./run.wav`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Write every played sound cue to a WAV file")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	if flagRecord != "" {
		cfg.Sound.Record = flagRecord
	}
	logger := newLogger(cfg, "fillets")

	// Get terminal size early so the first frame fits
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Timing.TickRate,
		Seed:     seed(),
	}

	// Open solution storage
	store := openStore(cfg)

	var recorder *audio.Recorder
	var sink audio.Sink
	if cfg.Sound.Record != "" {
		recorder = audio.NewRecorder(beep.SampleRate(cfg.Sound.SampleRate), 50*time.Millisecond)
		sink = recorder
	}
	newGame := gameFactory(cfg, store, sink, rc.Seed, logger)

	var runErr error
	if len(args) == 1 {
		lvl := findLevel(cfg, args[0])
		runErr = tui.Run(newGame(lvl), rc)
	} else {
		runErr = tui.RunSession(tui.Env{
			Catalog: loadCatalog(cfg),
			Store:   store,
			NewGame: newGame,
		}, rc)
	}

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if recorder != nil && recorder.Len() > 0 {
		path := config.ExpandHome(cfg.Sound.Record)
		if err := recorder.Save(path); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not write %s: %v\n", path, err)
		} else {
			fmt.Printf("Sound written to %s\n", path)
		}
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// gameFactory returns a constructor wiring each level controller to storage
// and its own synthesizer. store and sink may be nil.
func gameFactory(cfg config.FilletsConfig, store *storage.Store, sink audio.Sink, seed int64, logger *log.Logger) func(levels.Level) core.Game {
	return func(lvl levels.Level) core.Game {
		opts := fillets.Options{
			Config: cfg,
			Sound:  audio.NewSynth(cfg.Sound, seed, sink, logger),
			Logger: logger,
		}
		if store != nil {
			opts.Store = store
		}
		return fillets.New(lvl, opts)
	}
}
