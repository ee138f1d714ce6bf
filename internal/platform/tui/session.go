package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-fillets/internal/core"
	"github.com/vovakirdan/tui-fillets/internal/games/fillets/levels"
	"github.com/vovakirdan/tui-fillets/internal/storage"
)

// Env holds what a session needs to list and start levels.
type Env struct {
	Catalog []levels.Level
	Store   *storage.Store // May be nil
	NewGame func(lvl levels.Level) core.Game
}

func (e Env) solved() map[string]bool {
	if e.Store == nil {
		return nil
	}
	solved, err := e.Store.SolvedLevels()
	if err != nil {
		return nil
	}
	return solved
}

func (e Env) solutions() SolutionSource {
	if e.Store == nil {
		return nil
	}
	return e.Store
}

type sessionMode int

const (
	modeMenu sessionMode = iota
	modeGame
	modeBoard
)

// SessionModel manages the full session flow: menu -> level or board -> menu.
// It is the top-level model for both local and SSH sessions.
type SessionModel struct {
	env      Env
	config   core.RuntimeConfig
	username string
	mode     sessionMode
	menu     MenuModel
	game     *Model
	board    *BoardModel
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(env Env, cfg core.RuntimeConfig, username string) SessionModel {
	return SessionModel{
		env:      env,
		config:   cfg,
		username: username,
		menu:     NewMenuModel(env.Catalog, env.solved(), cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.mode {
	case modeGame:
		return m.updateGame(msg)
	case modeBoard:
		return m.updateBoard(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsSolutions() {
		board := NewBoardModel(m.env.Catalog, m.env.solutions(), m.config.ScreenW, m.config.ScreenH)
		m.board = &board
		m.mode = modeBoard
		return m, board.Init()
	}

	if selected := m.menu.Selected(); selected != nil {
		lvl, ok := m.find(selected.LevelID)
		if !ok {
			m.menu = NewMenuModel(m.env.Catalog, m.env.solved(), m.config)
			return m, nil
		}

		m.config = m.menu.Config()
		game := NewModel(m.env.NewGame(lvl), m.config)
		m.game = &game
		m.mode = modeGame
		return m, game.Init()
	}

	return m, cmd
}

// updateGame handles updates when a level is running.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.game = &gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		return m.toMenu()
	}

	return m, cmd
}

// updateBoard handles updates when the solutions board is shown.
func (m SessionModel) updateBoard(msg tea.Msg) (tea.Model, tea.Cmd) {
	newBoard, cmd := m.board.Update(msg)
	if boardModel, ok := newBoard.(BoardModel); ok {
		m.board = &boardModel
	}

	if m.board.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.board.IsGoingBack() {
		return m.toMenu()
	}

	return m, cmd
}

func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.mode = modeMenu
	m.game = nil
	m.board = nil
	m.menu = NewMenuModel(m.env.Catalog, m.env.solved(), m.config)
	return m, m.menu.Init()
}

func (m SessionModel) find(id string) (levels.Level, bool) {
	for _, lvl := range m.env.Catalog {
		if lvl.ID == id {
			return lvl, true
		}
	}
	return levels.Level{}, false
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.mode {
	case modeGame:
		return m.game.View()
	case modeBoard:
		return m.board.View()
	default:
		return m.menu.View()
	}
}

// RunSession runs the menu-driven session in the local terminal.
func RunSession(env Env, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewSessionModel(env, cfg, ""),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
