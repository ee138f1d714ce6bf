package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-fillets/internal/core"
)

// stubGame reports whatever state it is given.
type stubGame struct {
	state core.GameState
	steps int
	last  core.InputFrame
}

func (g *stubGame) ID() string               { return "stub" }
func (g *stubGame) Title() string            { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Render(dst *core.Screen)  { dst.DrawText(0, 0, "stub") }
func (g *stubGame) State() core.GameState    { return g.state }
func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	g.last = in.Clone()
	return core.StepResult{State: g.state}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	mm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return mm
}

func TestModelQueuesInputForTick(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, core.DefaultConfig())

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = update(t, m, TickMsg{})
	if g.steps != 1 || !g.last.Has(core.ActionRight) {
		t.Fatalf("step %d with %v, want one step with right", g.steps, g.last)
	}

	m = update(t, m, TickMsg{})
	if g.last.Has(core.ActionRight) {
		t.Error("input should be cleared after a tick")
	}
	if m.BackToMenu() || m.IsQuitting() {
		t.Error("model should still be playing")
	}
}

func TestModelConfirmLeavesOnlyWhenComplete(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, core.DefaultConfig())
	enter := tea.KeyMsg{Type: tea.KeyEnter}

	m = update(t, m, TickMsg{})
	m = update(t, m, enter)
	if m.BackToMenu() {
		t.Fatal("enter should not leave an unsolved level")
	}

	g.state.Complete = true
	m = update(t, m, TickMsg{})
	m = update(t, m, enter)
	if !m.BackToMenu() {
		t.Error("enter should leave a solved level")
	}

	steps := g.steps
	update(t, m, TickMsg{})
	if g.steps != steps {
		t.Error("no ticks after leaving")
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&stubGame{}, core.DefaultConfig())
	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !m.IsQuitting() || m.View() != "" {
		t.Error("ctrl+c should quit and blank the view")
	}
}
