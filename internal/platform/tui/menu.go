package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-fillets/internal/core"
	"github.com/vovakirdan/tui-fillets/internal/games/fillets/levels"
)

// MenuItem represents a selectable level in the menu.
type MenuItem struct {
	LevelID string
	Title   string
	Hint    string
	Solved  bool
}

// MenuModel is the Bubble Tea model for the level picker.
type MenuModel struct {
	items         []MenuItem
	cursor        int
	width         int
	height        int
	config        core.RuntimeConfig
	keyMapper     *KeyMapper
	quitting      bool
	selected      *MenuItem // Set when user selects a level
	openSolutions bool      // True if user pressed Tab for the solutions board
}

// NewMenuModel creates a new menu model. solved marks finished levels.
func NewMenuModel(catalog []levels.Level, solved map[string]bool, cfg core.RuntimeConfig) MenuModel {
	items := make([]MenuItem, 0, len(catalog))
	for _, lvl := range catalog {
		title := lvl.Name
		if title == "" {
			title = lvl.ID
		}
		items = append(items, MenuItem{
			LevelID: lvl.ID,
			Title:   title,
			Hint:    lvl.Metadata["hint"],
			Solved:  solved[lvl.ID],
		})
	}

	// Start on the first unsolved level.
	cursor := 0
	for i, it := range items {
		if !it.Solved {
			cursor = i
			break
		}
	}

	return MenuModel{
		items:     items,
		cursor:    cursor,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		m.cursor = core.Clamp(m.cursor-1, 0, len(m.items)-1)

	case MenuActionDown:
		m.cursor = core.Clamp(m.cursor+1, 0, len(m.items)-1)

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
		}

	case MenuActionSolutions:
		m.openSolutions = true
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("  F I S H   F I L L E T S  "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a level", m.width))
	b.WriteString("\n\n")

	solvedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		mark := "   "
		if item.Solved {
			mark = solvedStyle.Render(" ✓ ")
		}
		line := fmt.Sprintf("%s%-24s%s", cursor, item.Title, mark)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	if len(m.items) > 0 && m.items[m.cursor].Hint != "" {
		hintStyle := lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("245"))
		b.WriteString("\n")
		b.WriteString(centerText(hintStyle.Render(m.items[m.cursor].Hint), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  Tab: Solutions  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsSolutions returns true if user requested the solutions board.
func (m MenuModel) WantsSolutions() bool {
	return m.openSolutions
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
