package fillets

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-fillets/internal/core"
	"github.com/vovakirdan/tui-fillets/internal/games/fillets/levels"
	"github.com/vovakirdan/tui-fillets/internal/storage"
)

type memStore struct {
	solutions []string
	saves     []string
}

func (s *memStore) SaveSolution(_, moves string, _ int) (int64, error) {
	s.solutions = append(s.solutions, moves)
	return int64(len(s.solutions)), nil
}

func (s *memStore) SaveGame(levelID, moves string) (string, error) {
	s.saves = append(s.saves, moves)
	return levelID, nil
}

func (s *memStore) LatestSave(levelID string) (*storage.SaveEntry, error) {
	if len(s.saves) == 0 {
		return nil, nil
	}
	return &storage.SaveEntry{ID: levelID, LevelID: levelID, Moves: s.saves[len(s.saves)-1]}, nil
}

func newTestGame(t *testing.T, id string, store Store) *Game {
	t.Helper()
	lvl, err := levels.Bundled().LoadByID(id)
	if err != nil {
		t.Fatalf("LoadByID(%s): %v", id, err)
	}
	g := New(lvl, Options{Store: store})
	g.Reset(core.DefaultConfig())
	if g.Room() == nil {
		t.Fatalf("level %s did not build: %v", id, g.Err())
	}
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// press holds a direction until the controller commits a move.
func press(t *testing.T, g *Game, a core.Action) {
	t.Helper()
	before := g.State().Moves
	for i := 0; i < 50; i++ {
		g.Step(frame(a))
		if g.State().Moves != before {
			return
		}
	}
	t.Fatalf("%v was never accepted", a)
}

// idle steps empty frames until the level is solved or the budget runs out.
func idle(g *Game, ticks int) bool {
	for i := 0; i < ticks; i++ {
		if g.Step(core.NewInputFrame()).Solved {
			return true
		}
	}
	return g.State().Complete
}

func TestPlayFirstLevel(t *testing.T) {
	store := &memStore{}
	g := newTestGame(t, "01-first-steps", store)

	press(t, g, core.ActionUp)
	for i := 0; i < 6; i++ {
		press(t, g, core.ActionRight)
	}
	if !idle(g, 50) {
		t.Fatal("level should be complete after the fish swims out")
	}

	st := g.State()
	if !st.Complete || st.Lost || st.Moves != 7 {
		t.Errorf("State() = %+v", st)
	}
	if len(store.solutions) != 1 || store.solutions[0] != "urrrrrr" {
		t.Errorf("recorded solutions = %v", store.solutions)
	}
	if g.Snapshot().State != StateComplete {
		t.Errorf("snapshot state = %s", g.Snapshot().State)
	}
}

func TestMovesWaitForPhaseLock(t *testing.T) {
	g := newTestGame(t, "01-first-steps", nil)

	press(t, g, core.ActionUp)
	if g.Snapshot().Locked == 0 {
		t.Fatal("a committed move should lock phases")
	}

	// While locked, input is dropped.
	g.Step(frame(core.ActionRight))
	if g.State().Moves != 1 {
		t.Errorf("move accepted while locked, moves = %d", g.State().Moves)
	}
}

func TestDemoPlaysSolution(t *testing.T) {
	for _, id := range []string{"01-first-steps", "02-steel-door", "03-loose-crate"} {
		t.Run(id, func(t *testing.T) {
			store := &memStore{}
			g := newTestGame(t, id, store)

			g.Step(frame(core.ActionDemo))
			if !g.State().Planning {
				t.Fatal("demo should start planning")
			}

			// Switching and saving are refused while planning.
			g.Step(frame(core.ActionSave))
			if len(store.saves) != 0 {
				t.Error("save accepted while planning")
			}

			if !idle(g, 2000) {
				t.Fatalf("demo did not finish, moves %q", g.Room().Moves())
			}
			if got, want := g.Room().Moves(), g.level.Solution; got != want {
				t.Errorf("demo moves = %q, expected %q", got, want)
			}
			if g.State().Planning {
				t.Error("planning should stop when the level is complete")
			}
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	store := &memStore{}
	g := newTestGame(t, "01-first-steps", store)

	press(t, g, core.ActionUp)
	press(t, g, core.ActionRight)
	g.Step(frame(core.ActionSave))
	if len(store.saves) != 1 || store.saves[0] != "ur" {
		t.Fatalf("saves = %v", store.saves)
	}

	g.Step(frame(core.ActionRestart))
	if g.State().Moves != 0 {
		t.Fatalf("restart should clear moves, got %d", g.State().Moves)
	}

	g.Step(frame(core.ActionLoad))
	if g.Room().Moves() != "ur" {
		t.Errorf("loaded moves = %q, expected %q", g.Room().Moves(), "ur")
	}
}

func TestLoadWithoutStore(t *testing.T) {
	g := newTestGame(t, "01-first-steps", nil)
	g.Step(frame(core.ActionLoad))
	if g.State().Message == "" {
		t.Error("load without a store should report a message")
	}
}

func TestSwitchFish(t *testing.T) {
	g := newTestGame(t, "02-steel-door", nil)
	first := g.Snapshot().Active
	g.Step(frame(core.ActionSwitch))
	if g.Snapshot().Active == first {
		t.Error("switch should change the active fish")
	}
}

func TestPauseFreezes(t *testing.T) {
	g := newTestGame(t, "01-first-steps", nil)
	g.Step(frame(core.ActionPause))
	tick := g.Tick()
	for i := 0; i < 5; i++ {
		g.Step(frame(core.ActionUp))
	}
	if g.Tick() != tick || g.State().Moves != 0 {
		t.Error("paused game should not advance")
	}
	if !g.State().Paused {
		t.Error("State().Paused should be set")
	}
	g.Step(frame(core.ActionPause))
	if g.State().Paused {
		t.Error("second pause should resume")
	}
}

func TestDeterminism(t *testing.T) {
	script := []core.Action{core.ActionUp, core.ActionUp, core.ActionRight, core.ActionSwitch, core.ActionRight}

	run := func() Snapshot {
		g := newTestGame(t, "02-steel-door", nil)
		for i := 0; i < 120; i++ {
			g.Step(frame(script[i%len(script)]))
		}
		return g.Snapshot()
	}

	a, b := run(), run()
	if a != b {
		t.Errorf("snapshots differ:\n%+v\n%+v", a, b)
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, "01-first-steps", nil)
	screen := core.NewScreen(40, 12)
	g.Render(screen)

	found := false
	for y := 0; y < screen.Height(); y++ {
		for x := 0; x < screen.Width(); x++ {
			if c := screen.GetCell(x, y); c.Rune == 'f' && c.Color == core.ColorBrightYellow {
				found = true
			}
		}
	}
	if !found {
		t.Error("active fish not rendered")
	}

	small := core.NewScreen(5, 3)
	g.Render(small)
	if strings.TrimSpace(strings.Split(small.String(), "\n")[1]) == "" {
		t.Error("too-small screen should show a notice")
	}
}
