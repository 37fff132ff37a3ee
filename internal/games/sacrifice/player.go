package sacrifice

import (
	"github.com/vovakirdan/sacrifice-runner/internal/config"
	"github.com/vovakirdan/sacrifice-runner/internal/core"
)

// Player is the square avatar. Y grows downwards; a negative VelocityY
// moves the player up.
type Player struct {
	X, Y      float64
	Size      float64
	Color     core.Color
	VelocityY float64
	Gravity   float64
	JumpForce float64
	Grounded  bool
}

// NewPlayer places a player at the configured spawn point, airborne and at rest.
func NewPlayer(cfg config.PlayerConfig) Player {
	return Player{
		X:         cfg.X,
		Y:         cfg.Y,
		Size:      cfg.Size,
		Color:     core.ColorCyan,
		Gravity:   cfg.Gravity,
		JumpForce: cfg.JumpForce,
	}
}

// Rect returns the player's collision box.
func (p Player) Rect() core.RectF {
	return core.RectF{X: p.X, Y: p.Y, W: p.Size, H: p.Size}
}

// Bottom returns the y-coordinate of the player's lower edge.
func (p Player) Bottom() float64 {
	return p.Y + p.Size
}

// Integrate applies gravity for one tick and resolves landing.
// The floor always wins; otherwise the first platform in slice order whose
// top lies within the player's lower edge catches a falling player.
func (p *Player) Integrate(platforms []Platform, floorY float64) {
	p.VelocityY += p.Gravity
	p.Y += p.VelocityY

	if p.Bottom() > floorY {
		p.Y = floorY - p.Size
		p.VelocityY = 0
		p.Grounded = true
		return
	}

	p.Grounded = false
	for _, pl := range platforms {
		if p.X+p.Size > pl.X &&
			p.X < pl.X+pl.W &&
			p.Bottom() >= pl.Y &&
			p.Bottom() <= pl.Y+pl.H &&
			p.VelocityY >= 0 {
			p.Y = pl.Y - p.Size
			p.VelocityY = 0
			p.Grounded = true
			break
		}
	}
}

// Jump launches the player upwards. There is no grounded check: jumping
// mid-air is allowed, the sacrifice rule is what limits it.
func (p *Player) Jump() {
	p.VelocityY = p.JumpForce
	p.Grounded = false
}
