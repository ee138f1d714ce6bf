package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-fillets/internal/core"
	"github.com/vovakirdan/tui-fillets/internal/games/fillets"
	"github.com/vovakirdan/tui-fillets/internal/games/fillets/levels"
	"github.com/vovakirdan/tui-fillets/internal/storage"
)

func testEnv(t *testing.T, store *storage.Store) Env {
	t.Helper()
	catalog, err := levels.Bundled().LoadAll()
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	return Env{
		Catalog: catalog,
		Store:   store,
		NewGame: func(lvl levels.Level) core.Game {
			opts := fillets.Options{}
			if store != nil {
				opts.Store = store
			}
			return fillets.New(lvl, opts)
		},
	}
}

func send(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm
}

func TestSessionFlow(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 20, Seed: 1}
	m := NewSessionModel(testEnv(t, nil), cfg, "tester")

	if !strings.Contains(m.View(), "First Steps") {
		t.Fatal("menu should list bundled levels")
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.mode != modeGame || m.game == nil {
		t.Fatalf("enter should start a level, mode = %d", m.mode)
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m = send(t, m, TickMsg(time.Now()))
	if got := m.game.State().Moves; got != 1 {
		t.Errorf("moves after one tick = %d, expected 1", got)
	}
	if !strings.Contains(m.View(), "moves 1") {
		t.Error("play view should show the move count")
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.mode != modeMenu {
		t.Errorf("esc should return to the menu, mode = %d", m.mode)
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !m.quitting {
		t.Error("ctrl+c should quit")
	}
}

func TestSessionBoard(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "fillets.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()
	if _, err := store.SaveSolution("01-first-steps", "urrrrrr", 40); err != nil {
		t.Fatalf("SaveSolution: %v", err)
	}

	cfg := core.RuntimeConfig{ScreenW: 100, ScreenH: 30, TickRate: 20}
	m := NewSessionModel(testEnv(t, store), cfg, "")
	if m.menu.cursor != 1 {
		t.Errorf("menu should start on the first unsolved level, cursor = %d", m.menu.cursor)
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.mode != modeBoard {
		t.Fatalf("tab should open the board, mode = %d", m.mode)
	}
	if got := len(m.board.Solutions()); got != 1 {
		t.Errorf("board shows %d solutions, expected 1", got)
	}
	if !strings.Contains(m.View(), "urrrrrr") {
		t.Error("board should list the recorded moves")
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if len(m.board.Solutions()) != 0 {
		t.Error("next level should have no solutions")
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.mode != modeMenu {
		t.Errorf("esc should return to the menu, mode = %d", m.mode)
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColor(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 0, "cd")
	out := RenderScreen(s)
	if !strings.Contains(out, "ab") || !strings.Contains(out, "cd") {
		t.Errorf("RenderScreen lost text: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 rows, got %q", out)
	}
}

func TestCellStyleFallsBack(t *testing.T) {
	unknown := core.Color(200)
	if got := cellStyle(unknown).Render("x"); got != cellStyles[core.ColorDefault].Render("x") {
		t.Errorf("unknown color rendered %q, expected the default style", got)
	}
	for c := range palette {
		if _, ok := cellStyles[c]; !ok {
			t.Errorf("no style for color %d", c)
		}
	}
}
