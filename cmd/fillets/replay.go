package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gopxl/beep"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-fillets/internal/audio"
	"github.com/vovakirdan/tui-fillets/internal/config"
	engine "github.com/vovakirdan/tui-fillets/internal/games/fillets/core"
	"github.com/vovakirdan/tui-fillets/internal/games/fillets/levels"
	"github.com/vovakirdan/tui-fillets/internal/games/fillets/replay"
)

var (
	flagReplayMoves  string
	flagReplayLatest bool
	flagReplaySave   string
)

var replayCmd = &cobra.Command{
	Use:   "replay <file|level>",
	Short: "Replay a move log",
	Long: `Replay a move log on a fresh room and report whether it solves the level.

The argument is either a session file (.yaml, .yml, .msgpack, .mpk) or a level
ID. For a level ID the level's own solution is replayed, unless --moves or
--latest picks another log.

Examples:
  fillets replay ./run.yaml
  fillets replay 02-steel-door
  fillets replay 02-steel-door --moves UURR
  fillets replay 03-loose-crate --latest
  fillets replay 01-first-steps --save ./first.msgpack`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&flagReplayMoves, "moves", "", "Move log to replay instead of the level solution")
	replayCmd.Flags().BoolVar(&flagReplayLatest, "latest", false, "Replay the latest saved game of the level")
	replayCmd.Flags().StringVar(&flagReplaySave, "save", "", "Write the replayed session to a file")
}

func runReplay(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	logger := newLogger(cfg, "replay")

	session := sessionFor(cfg, args[0])
	lvl := findLevel(cfg, session.Level)

	opts := []engine.Option{engine.WithLogger(logger)}
	var recorder *audio.Recorder
	if cfg.Sound.Record != "" {
		recorder = audio.NewRecorder(beep.SampleRate(cfg.Sound.SampleRate), 50*time.Millisecond)
		opts = append(opts, engine.WithSound(audio.NewSynth(cfg.Sound, seed(), recorder, logger)))
	}

	res, err := replay.Run(&lvl, session.Moves, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Level:       %s\n", lvl.ID)
	fmt.Printf("Steps:       %d\n", res.Steps)
	fmt.Printf("Complete:    %t\n", res.Complete)
	fmt.Printf("Solvable:    %t\n", res.Solvable)
	fmt.Printf("Fingerprint: %s\n", res.Fingerprint)

	if recorder != nil && recorder.Len() > 0 {
		if err := recorder.Save(config.ExpandHome(cfg.Sound.Record)); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}

	if flagReplaySave != "" {
		if err := replay.Save(flagReplaySave, session); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving session: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Session written to %s\n", flagReplaySave)
	}

	if !res.Complete {
		os.Exit(2)
	}
}

// sessionFor resolves the command argument into a session.
func sessionFor(cfg config.FilletsConfig, arg string) replay.Session {
	if _, err := replay.FormatFor(arg); err == nil {
		if _, statErr := os.Stat(arg); statErr == nil {
			s, err := replay.Load(arg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			if flagReplayMoves != "" {
				s.Moves = flagReplayMoves
			}
			return s
		}
	}

	lvl := findLevel(cfg, arg)
	s := replay.Session{Level: lvl.ID, Moves: lvl.Solution, Seed: flagSeed}

	switch {
	case flagReplayMoves != "":
		s.Moves = flagReplayMoves
	case flagReplayLatest:
		store := openStore(cfg)
		if store == nil {
			os.Exit(1)
		}
		defer store.Close()
		save, err := store.LatestSave(lvl.ID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if save == nil {
			fmt.Fprintf(os.Stderr, "Error: no saved game for %s\n", lvl.ID)
			os.Exit(1)
		}
		s.Moves = save.Moves
		s.Created = save.CreatedAt
	}
	return s
}

var verifyCmd = &cobra.Command{
	Use:   "verify [level...]",
	Short: "Check level solutions",
	Long: `Replay the solution shipped with each level and report the levels it does
not solve. Without arguments every level in the catalog is checked.`,
	Run: runVerify,
}

func runVerify(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	var targets []levels.Level
	if len(args) == 0 {
		targets = loadCatalog(cfg)
	} else {
		for _, id := range args {
			targets = append(targets, findLevel(cfg, id))
		}
	}

	failed := 0
	for i := range targets {
		lvl := &targets[i]
		if lvl.Solution == "" {
			fmt.Printf("  -  %-24s  no solution\n", lvl.ID)
			continue
		}
		res, err := replay.Verify(lvl, lvl.Solution)
		if err != nil {
			failed++
			fmt.Printf("  x  %-24s  %v\n", lvl.ID, err)
			continue
		}
		fmt.Printf("  ok %-24s  %d steps\n", lvl.ID, res.Steps)
	}

	if failed > 0 {
		fmt.Fprintf(os.Stderr, "Error: %d level(s) failed\n", failed)
		os.Exit(1)
	}
}
