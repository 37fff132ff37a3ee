// Package pixel draws Sacrifice Runner with ebiten, in a desktop window or
// in the browser when built for js/wasm.
package pixel

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/sacrifice-runner/internal/core"
	"github.com/vovakirdan/sacrifice-runner/internal/games/sacrifice"
)

const caption = "Sacrifices must be made"

// Game implements ebiten.Game on top of a sacrifice session.
// ebiten calls Update at the tick rate and Draw once per frame, both on
// the same goroutine, so the session needs no locking.
type Game struct {
	game    *sacrifice.Game
	runtime core.RuntimeConfig
	snap    sacrifice.Snapshot
	best    int
}

// New wraps a game and starts its first session.
func New(game *sacrifice.Game, runtime core.RuntimeConfig) *Game {
	game.Reset(runtime)
	return &Game{
		game:    game,
		runtime: runtime,
		snap:    game.Snapshot(),
	}
}

// Update reads input and advances the session by one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	in := core.NewInputFrame()
	if jumpPressed() {
		in.Set(core.ActionJump)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		in.Set(core.ActionPause)
	}

	if g.snap.GameOver {
		if inpututil.IsKeyJustPressed(ebiten.KeyR) || in.Has(core.ActionJump) {
			g.runtime.Seed++
			g.game.Reset(g.runtime)
		}
		g.snap = g.game.Snapshot()
		return nil
	}

	res := g.game.Step(in)
	if ev, ok := res.GameOverEvent(); ok {
		g.best = max(g.best, ev.Score)
	}
	g.snap = g.game.Snapshot()
	return nil
}

// jumpPressed accepts the keyboard, a mouse click or a new touch.
func jumpPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyUp) ||
		inpututil.IsKeyJustPressed(ebiten.KeyW) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
}

// Draw paints the latest snapshot.
func (g *Game) Draw(screen *ebiten.Image) {
	s := g.snap
	w := s.World
	screen.Fill(core.ColorBlack.RGBA())

	green := core.ColorGreen.RGBA()
	vector.DrawFilledRect(screen, 0, 0, f32(w.Width), f32(w.CeilingY), green, false)
	vector.DrawFilledRect(screen, 0, f32(w.FloorY), f32(w.Width), f32(w.Height-w.FloorY), green, false)

	for _, p := range s.Platforms {
		vector.DrawFilledRect(screen, f32(p.X), f32(p.Y), f32(p.W), f32(p.H), p.Color.RGBA(), false)
	}
	for _, o := range s.Obstacles {
		vector.DrawFilledRect(screen, f32(o.X), f32(o.Y), f32(o.W), f32(o.H), o.Color.RGBA(), false)
	}
	for _, o := range s.Orbs {
		vector.DrawFilledCircle(screen, f32(o.X), f32(o.Y), f32(o.Radius), o.Color.RGBA(), true)
	}
	p := s.Player
	vector.DrawFilledRect(screen, f32(p.X), f32(p.Y), f32(p.Size), f32(p.Size), p.Color.RGBA(), false)

	g.drawHUD(screen)

	switch {
	case s.GameOver:
		drawPanel(screen, w, "GAME OVER", fmt.Sprintf("Score: %d  Best: %d  (R to restart)", s.Score, g.best))
	case s.Paused:
		drawPanel(screen, w, "PAUSED", "Press P to resume")
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", g.snap.Score), 10, 8)
	ebitenutil.DebugPrintAt(screen, caption, 10, 24)

	const barW, barH = 200, 16
	barX := float32(g.snap.World.Width) - barW - 10
	vector.DrawFilledRect(screen, barX, 10, barW, barH, core.ColorRed.RGBA(), false)
	vector.DrawFilledRect(screen, barX, 10, barW*float32(g.snap.HealthFraction()), barH, core.ColorLimeGreen.RGBA(), false)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("HP %d/%d", g.snap.Health, g.snap.MaxHealth), int(barX)+4, 10)
}

func drawPanel(screen *ebiten.Image, w sacrifice.Bounds, title, subtitle string) {
	const panelW, panelH = 320, 60
	x := f32(w.Width/2) - panelW/2
	y := f32(w.Height/2) - panelH/2
	vector.DrawFilledRect(screen, x, y, panelW, panelH, core.ColorGray.RGBA(), false)
	ebitenutil.DebugPrintAt(screen, title, int(x)+12, int(y)+10)
	ebitenutil.DebugPrintAt(screen, subtitle, int(x)+12, int(y)+34)
}

// Layout keeps the logical screen at world size; ebiten scales it.
func (g *Game) Layout(_, _ int) (int, int) {
	return int(g.snap.World.Width), int(g.snap.World.Height)
}

// Run opens the window (or canvas) and blocks until it is closed.
func Run(game *sacrifice.Game, runtime core.RuntimeConfig) error {
	g := New(game, runtime)

	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowSize(int(g.snap.World.Width), int(g.snap.World.Height))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if runtime.TickRate > 0 {
		ebiten.SetTPS(runtime.TickRate)
	}

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("pixel: %w", err)
	}
	return nil
}

func f32(v float64) float32 {
	return float32(v)
}
