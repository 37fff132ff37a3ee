package sacrifice

import (
	"fmt"
	"math"

	"github.com/vovakirdan/sacrifice-runner/internal/core"
)

// Visual characters for terminal rendering
const (
	BorderChar   = '▒'
	PlayerChar   = '█'
	ObstacleChar = '▓'
	PlatformChar = '▀'
	OrbChar      = '●'
	BarFullChar  = '█'
	BarEmptyChar = '░'
)

const (
	caption        = "Sacrifices must be made"
	healthBarWidth = 20
)

// cellMapper converts world units to screen cells.
type cellMapper struct {
	sx, sy float64
}

func newCellMapper(dst *core.Screen, b Bounds) cellMapper {
	return cellMapper{
		sx: float64(dst.Width()) / b.Width,
		sy: float64(dst.Height()) / b.Height,
	}
}

// rect maps a world box to cells, never narrower or shorter than one cell.
func (m cellMapper) rect(x, y, w, h float64) core.Rect {
	x0 := int(math.Floor(x * m.sx))
	y0 := int(math.Floor(y * m.sy))
	x1 := int(math.Ceil((x + w) * m.sx))
	y1 := int(math.Ceil((y + h) * m.sy))
	return core.NewRect(x0, y0, core.Max(1, x1-x0), core.Max(1, y1-y0))
}

func (m cellMapper) point(x, y float64) (int, int) {
	return int(math.Floor(x * m.sx)), int(math.Floor(y * m.sy))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	RenderSnapshot(dst, g.Snapshot())
}

// RenderSnapshot draws a frame scaled to the screen. It only reads snap.
func RenderSnapshot(dst *core.Screen, snap Snapshot) {
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}
	m := newCellMapper(dst, snap.World)

	// Borders
	top := m.rect(0, 0, snap.World.Width, snap.World.CeilingY)
	dst.DrawRect(top, BorderChar, core.ColorGreen)
	bottom := m.rect(0, snap.World.FloorY, snap.World.Width, snap.World.Height-snap.World.FloorY)
	dst.DrawRect(bottom, BorderChar, core.ColorGreen)

	for _, p := range snap.Platforms {
		dst.DrawRect(m.rect(p.X, p.Y, p.W, p.H), PlatformChar, p.Color)
	}
	for _, o := range snap.Obstacles {
		dst.DrawRect(m.rect(o.X, o.Y, o.W, o.H), ObstacleChar, o.Color)
	}
	for _, o := range snap.Orbs {
		x, y := m.point(o.X, o.Y)
		dst.SetColored(x, y, OrbChar, o.Color)
	}

	pl := snap.Player
	dst.DrawRect(m.rect(pl.X, pl.Y, pl.Size, pl.Size), PlayerChar, pl.Color)

	drawHUD(dst, snap)

	if snap.Paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if snap.GameOver {
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  R: restart  Q: quit", snap.Score))
	}
}

// drawHUD draws score, caption and the health bar over the ceiling band.
func drawHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawTextColored(1, 0, fmt.Sprintf(" Score: %d ", snap.Score), core.ColorWhite)
	dst.DrawTextColored(1, 1, " "+caption+" ", core.ColorWhite)

	label := fmt.Sprintf(" HP %d/%d ", snap.Health, snap.MaxHealth)
	barX := dst.Width() - healthBarWidth - 3
	dst.DrawTextColored(barX-len(label), 0, label, core.ColorWhite)

	filled := int(math.Round(snap.HealthFraction() * healthBarWidth))
	dst.SetColored(barX, 0, '[', core.ColorWhite)
	for i := 0; i < healthBarWidth; i++ {
		if i < filled {
			dst.SetColored(barX+1+i, 0, BarFullChar, core.ColorLimeGreen)
		} else {
			dst.SetColored(barX+1+i, 0, BarEmptyChar, core.ColorRed)
		}
	}
	dst.SetColored(barX+1+healthBarWidth, 0, ']', core.ColorWhite)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)
	dst.DrawText(box.X+(boxW-len(title))/2, box.Y+1, title)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle)
}
