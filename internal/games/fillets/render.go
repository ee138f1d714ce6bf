package fillets

import (
	"fmt"

	"github.com/vovakirdan/tui-fillets/internal/core"
	engine "github.com/vovakirdan/tui-fillets/internal/games/fillets/core"
)

const hudHeight = 2

// Render draws the HUD, the room and the status line.
func (g *Game) Render(dst *core.Screen) {
	if g.room == nil {
		dst.DrawTextCentered(dst.Height()/2, "Level failed to load")
		return
	}

	w, h := g.room.W(), g.room.H()
	if dst.Width() < w+2 || dst.Height() < h+2+hudHeight+1 {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small")
		return
	}

	g.renderHUD(dst)

	area := core.NewRect(0, hudHeight, dst.Width(), dst.Height()-hudHeight-1)
	frame := area.CenterIn(w+2, h+2)
	dst.DrawBox(frame, core.ColorGray)
	inner := frame.Inset(1)

	active := g.room.Active()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, c := glyph(g.room.AskField(engine.C(x, y)), active)
			dst.SetCell(inner.X+x, inner.Y+y, r, c)
		}
	}

	g.renderStatus(dst)
}

func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextColor(1, 0, g.Title(), core.ColorBrightCyan)
	stats := fmt.Sprintf("moves %d  cycles %d", g.room.StepCount(), g.room.Cycles())
	dst.DrawText(dst.Width()-len(stats)-1, 0, stats)

	if m := g.room.Active(); m != nil {
		dst.DrawTextColor(1, 1, "> "+m.Name(), core.ColorBrightYellow)
	}
}

func (g *Game) renderStatus(dst *core.Screen) {
	y := dst.Height() - 1
	msg := g.message
	color := core.ColorGray
	switch {
	case g.paused:
		msg, color = "PAUSED", core.ColorYellow
	case g.complete:
		color = core.ColorBrightGreen
	case g.lost:
		color = core.ColorBrightRed
	case msg == "":
		msg = "arrows move  space switch  r restart  F2 save  F3 load  F4 solution"
	}
	dst.DrawTextColor(max((dst.Width()-len(msg))/2, 0), y, msg, color)
}

// glyph picks the rune and color for one field cell.
func glyph(m *engine.Model, active *engine.Model) (rune, core.Color) {
	switch {
	case m == nil:
		return '·', core.ColorBlue
	case m.IsWall():
		return '█', core.ColorGray
	case m.IsFish() && !m.IsAlive():
		return 'x', core.ColorRed
	case m.IsFish():
		r := 'f'
		if m.Power() >= engine.WeightHeavy {
			r = 'F'
		}
		if m == active {
			return r, core.ColorBrightYellow
		}
		return r, core.ColorYellow
	case m.Weight() >= engine.WeightHeavy:
		return '▓', core.ColorCyan
	case m.Weight() == engine.WeightLight:
		return '▒', core.ColorOrange
	default:
		return '░', core.ColorWhite
	}
}
