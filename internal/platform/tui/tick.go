// Package tui provides the Bubble Tea front end: the level menu, the play view,
// the solutions board and the Wish SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-fillets/internal/core"
)

// TickMsg asks the play model to run one engine step. Rounds advance only
// on ticks, so the rate sets how fast phases unlock.
type TickMsg time.Time

// tickCmd schedules the next step. A non-positive rate falls back to the
// default runtime rate.
func tickCmd(rate int) tea.Cmd {
	if rate <= 0 {
		rate = core.DefaultConfig().TickRate
	}
	return tea.Tick(time.Second/time.Duration(rate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
