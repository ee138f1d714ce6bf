// Package fillets is the level controller: it drives one room per tick,
// handles restart, save, load, fish switching and solution playback, and
// records solutions when the room is complete.
package fillets

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-fillets/internal/config"
	"github.com/vovakirdan/tui-fillets/internal/core"
	engine "github.com/vovakirdan/tui-fillets/internal/games/fillets/core"
	"github.com/vovakirdan/tui-fillets/internal/games/fillets/levels"
	"github.com/vovakirdan/tui-fillets/internal/games/fillets/replay"
	"github.com/vovakirdan/tui-fillets/internal/plan"
	"github.com/vovakirdan/tui-fillets/internal/storage"
)

// Store persists solutions and saved games.
type Store interface {
	SaveSolution(levelID, moves string, cycles int) (int64, error)
	SaveGame(levelID, moves string) (string, error)
	LatestSave(levelID string) (*storage.SaveEntry, error)
}

// Options wires the controller's collaborators. Zero values are valid.
type Options struct {
	Config config.FilletsConfig
	Store  Store
	Sound  engine.Sound
	Logger *log.Logger
}

// Game controls one level.
type Game struct {
	level   levels.Level
	cfg     config.FilletsConfig
	store   Store
	sound   engine.Sound
	logger  *log.Logger
	planner *plan.Planner

	room *engine.Room
	err  error
	tick int

	// Solution playback; the planner is refilled from here after exits.
	demo []rune

	screenW, screenH int

	paused   bool
	complete bool
	lost     bool
	message  string
}

// New creates a controller for lvl. Call Reset before stepping.
func New(lvl levels.Level, opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		level:   lvl,
		cfg:     opts.Config,
		store:   opts.Store,
		sound:   opts.Sound,
		logger:  logger.With("level", lvl.ID),
		planner: plan.New(),
	}
}

// ID returns the level identifier.
func (g *Game) ID() string {
	return g.level.ID
}

// Title returns the level name.
func (g *Game) Title() string {
	if g.level.Name != "" {
		return g.level.Name
	}
	return g.level.ID
}

// Tick reports elapsed ticks; the room measures cycles with it.
func (g *Game) Tick() int {
	return g.tick
}

// Room returns the current room, or nil if the level failed to build.
func (g *Game) Room() *engine.Room {
	return g.room
}

// Err returns the last build error.
func (g *Game) Err() error {
	return g.err
}

// Reset rebuilds the level from scratch.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tick = 0
	g.paused = false
	g.message = ""
	g.restart()
}

// Step advances the level by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.room == nil {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.command(in)

	solved := false
	if !g.complete && g.err == nil {
		locker := g.room.Locker()
		if locker.Locked() > 0 {
			locker.Decrease()
		} else {
			solved = g.round(in)
		}
	}
	return core.StepResult{State: g.State(), Solved: solved}
}

// command handles level actions that are not moves.
func (g *Game) command(in core.InputFrame) {
	switch {
	case in.Has(core.ActionRestart):
		g.restart()
	case in.Has(core.ActionLoad):
		g.load()
	case in.Has(core.ActionSave):
		if g.planner.IsPlanning() {
			return
		}
		g.save()
	case in.Has(core.ActionDemo):
		g.playSolution()
	case in.Has(core.ActionSwitch):
		if g.planner.IsPlanning() {
			return
		}
		g.room.SwitchActive()
	}
}

// round runs one room round. Returns true when the level was just solved.
func (g *Game) round(in core.InputFrame) bool {
	var complete bool
	var err error
	if g.planner.IsPlanning() || len(g.demo) > 0 {
		complete, err = g.planRound()
	} else {
		complete, err = g.room.NextRound(directions{in})
	}
	if err != nil {
		g.err = err
		g.demo = nil
		g.planner.InterruptPlan()
		g.message = "Engine error. Press R to restart."
		g.logger.Error("round failed", "moves", g.room.StepCount(), "err", err)
		return false
	}

	if !g.lost && !g.room.IsSolvable() {
		g.lost = true
		g.demo = nil
		g.message = "A fish is lost. Press R to restart."
		g.logger.Info("level lost", "moves", g.room.StepCount())
	}
	if complete {
		return g.finish()
	}
	return false
}

// planRound feeds one scripted move into a fresh round.
func (g *Game) planRound() (bool, error) {
	falling, err := g.room.BeginFall(true)
	if err != nil {
		return false, err
	}
	if !falling {
		if !g.planner.IsPlanning() && len(g.demo) > 0 && g.room.IsSolvable() {
			g.planner.Schedule(string(g.demo))
		}
		if code, ok := g.planner.Next(); ok {
			if _, err := g.room.MakeMove(code); err != nil {
				g.logger.Warn("scripted move rejected", "move", string(code), "err", err)
				g.planner.InterruptPlan()
				g.demo = nil
			} else if len(g.demo) > 0 {
				g.demo = g.demo[1:]
			}
		}
	}
	return g.room.FinishRound(true), nil
}

func (g *Game) finish() bool {
	g.complete = true
	g.demo = nil
	g.planner.InterruptPlan()
	g.message = "Level complete! Press enter to continue."
	g.logger.Info("level solved", "moves", g.room.StepCount(), "cycles", g.room.Cycles())

	if g.store != nil {
		if _, err := g.store.SaveSolution(g.level.ID, g.room.Moves(), g.room.Cycles()); err != nil {
			g.logger.Error("cannot record solution", "err", err)
		}
	}
	return true
}

func (g *Game) restart() {
	if err := g.rebuild(""); err != nil {
		g.err = err
		g.message = err.Error()
		g.logger.Error("cannot build level", "err", err)
	}
}

func (g *Game) save() {
	if g.store == nil {
		g.message = "Saving is not available."
		return
	}
	id, err := g.store.SaveGame(g.level.ID, g.room.Moves())
	if err != nil {
		g.logger.Error("cannot save game", "err", err)
		g.message = "Save failed."
		return
	}
	g.logger.Debug("game saved", "save", id, "moves", g.room.StepCount())
	g.message = fmt.Sprintf("Saved after %d moves.", g.room.StepCount())
}

func (g *Game) load() {
	if g.store == nil {
		g.message = "Loading is not available."
		return
	}
	entry, err := g.store.LatestSave(g.level.ID)
	if err != nil {
		g.logger.Error("cannot read save", "err", err)
		g.message = "Load failed."
		return
	}
	if entry == nil {
		g.message = "No saved game."
		return
	}
	if err := g.rebuild(entry.Moves); err != nil {
		g.logger.Warn("cannot replay save", "save", entry.ID, "err", err)
		g.message = "Saved game does not fit this level."
		return
	}
	g.message = fmt.Sprintf("Loaded %d moves.", g.room.StepCount())
}

func (g *Game) playSolution() {
	if g.level.Solution == "" {
		g.message = "No recorded solution."
		return
	}
	g.restart()
	if g.room == nil {
		return
	}
	g.demo = []rune(g.level.Solution)
	g.message = "Playing solution..."
}

// rebuild replaces the room with a fresh one replaying moves.
// On error the current room is kept.
func (g *Game) rebuild(moves string) error {
	g.planner.InterruptPlan()
	g.demo = nil

	room, err := g.level.Build(
		engine.WithPlanner(g.planner),
		engine.WithSound(g.sound),
		engine.WithTimer(g),
		engine.WithLogger(g.logger),
		engine.WithPhases(g.phases()),
	)
	if err != nil {
		return err
	}
	if err := replay.Apply(room, moves); err != nil {
		room.Close()
		return err
	}

	if g.room != nil {
		g.room.Close()
	}
	g.room = room
	g.err = nil
	g.complete = false
	g.lost = !room.IsSolvable()
	g.message = ""
	return nil
}

func (g *Game) phases() engine.Phases {
	p := g.cfg.Phases
	if p.Move == 0 && p.Fall == 0 && p.Exit == 0 {
		return engine.DefaultPhases()
	}
	return engine.Phases{Move: p.Move, Fall: p.Fall, Exit: p.Exit}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Complete: g.complete,
		Lost:     g.lost,
		Paused:   g.paused,
		Planning: g.planner.IsPlanning() || len(g.demo) > 0,
		Message:  g.message,
	}
	if g.room != nil {
		st.Moves = g.room.StepCount()
	}
	return st
}

// directions maps the platform's input frame onto move directions.
type directions struct {
	in core.InputFrame
}

func (d directions) Asserted(dir engine.Dir) bool {
	switch dir {
	case engine.DirUp:
		return d.in.Has(core.ActionUp)
	case engine.DirDown:
		return d.in.Has(core.ActionDown)
	case engine.DirLeft:
		return d.in.Has(core.ActionLeft)
	case engine.DirRight:
		return d.in.Has(core.ActionRight)
	}
	return false
}
