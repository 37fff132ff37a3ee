package sacrifice

import (
	"github.com/vovakirdan/sacrifice-runner/internal/config"
	"github.com/vovakirdan/sacrifice-runner/internal/core"
)

// Obstacle hurts the player on contact and is consumed by the hit.
type Obstacle struct {
	X, Y   float64
	W, H   float64
	Damage int
	Speed  float64 // Global speed when spawned
	Color  core.Color
}

// Rect returns the obstacle's collision box.
func (o Obstacle) Rect() core.RectF {
	return core.RectF{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

// Platform is a one-way surface the player can land on while falling.
type Platform struct {
	X, Y  float64
	W, H  float64
	Speed float64
	Color core.Color
}

// Orb heals the player on contact and is consumed.
type Orb struct {
	X, Y   float64 // Centre
	Radius float64
	Heal   int
	Speed  float64
	Color  core.Color
}

// Circle returns the orb's collision disc.
func (o Orb) Circle() core.Circle {
	return core.Circle{X: o.X, Y: o.Y, R: o.Radius}
}

// World holds every live scrolling entity, in spawn order.
type World struct {
	Obstacles []Obstacle
	Platforms []Platform
	Orbs      []Orb
}

// Scroll moves every entity left by dx.
func (w *World) Scroll(dx float64) {
	for i := range w.Obstacles {
		w.Obstacles[i].X -= dx
	}
	for i := range w.Platforms {
		w.Platforms[i].X -= dx
	}
	for i := range w.Orbs {
		w.Orbs[i].X -= dx
	}
}

// Cull drops entities whose right edge has reached x=0, keeping order.
func (w *World) Cull() {
	obstacles := w.Obstacles[:0]
	for _, o := range w.Obstacles {
		if o.X+o.W > 0 {
			obstacles = append(obstacles, o)
		}
	}
	w.Obstacles = obstacles

	platforms := w.Platforms[:0]
	for _, p := range w.Platforms {
		if p.X+p.W > 0 {
			platforms = append(platforms, p)
		}
	}
	w.Platforms = platforms

	orbs := w.Orbs[:0]
	for _, o := range w.Orbs {
		if o.X+o.Radius > 0 {
			orbs = append(orbs, o)
		}
	}
	w.Orbs = orbs
}

// Clear removes every entity.
func (w *World) Clear() {
	w.Obstacles = w.Obstacles[:0]
	w.Platforms = w.Platforms[:0]
	w.Orbs = w.Orbs[:0]
}

// Len returns the number of live entities.
func (w *World) Len() int {
	return len(w.Obstacles) + len(w.Platforms) + len(w.Orbs)
}

// Rand is the random source used by world generation.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Generator appends bursts of obstacles, platforms and orbs just beyond
// the right edge of the playfield.
type Generator struct {
	cfg   config.SpawnConfig
	width float64
	rng   Rand
}

// NewGenerator creates a generator spawning at x = width.
func NewGenerator(cfg config.SpawnConfig, width float64, rng Rand) *Generator {
	return &Generator{cfg: cfg, width: width, rng: rng}
}

// Spawn appends one burst to w without touching existing entities.
// Every spawned entity records speed as its spawn-time speed.
func (g *Generator) Spawn(w *World, speed float64) {
	g.spawnRow(w, g.cfg.Floor, speed)
	g.spawnRow(w, g.cfg.Ceiling, speed)
	g.spawnPlatforms(w, speed)
}

// spawnRow lays a row of blocks; only even blocks draw a jitter value.
func (g *Generator) spawnRow(w *World, row config.RowConfig, speed float64) {
	count := g.count(row.MinCount, row.MaxCount)
	for i := 0; i < count; i++ {
		y := row.Y
		if i%2 == 0 {
			y += g.rng.Float64() * row.Jitter
		}
		w.Obstacles = append(w.Obstacles, g.block(g.width+float64(i)*(g.cfg.BlockSize+row.Pitch), y, speed))
	}
}

func (g *Generator) spawnPlatforms(w *World, speed float64) {
	pc := g.cfg.Platforms
	count := g.count(pc.MinCount, pc.MaxCount)
	for i := 0; i < count; i++ {
		gap := pc.MinGap + g.rng.Float64()*(pc.MaxGap-pc.MinGap)
		y := pc.MinY + g.rng.Float64()*(pc.MaxY-pc.MinY)
		x := g.width + float64(i)*gap

		w.Platforms = append(w.Platforms, Platform{
			X:     x,
			Y:     y,
			W:     pc.Width,
			H:     pc.Height,
			Speed: speed,
			Color: core.ColorYellow,
		})

		hz := g.cfg.Hazard
		if g.rng.Float64() < hz.Chance {
			w.Obstacles = append(w.Obstacles, g.block(x+hz.OffsetX, y-hz.Lift-g.rng.Float64()*hz.Jitter, speed))
		}

		orb := g.cfg.Orb
		if g.rng.Float64() < orb.Chance {
			w.Orbs = append(w.Orbs, Orb{
				X:      x + orb.OffsetX,
				Y:      y - orb.Lift,
				Radius: orb.Radius,
				Heal:   orb.Heal,
				Speed:  speed,
				Color:  core.ColorLimeGreen,
			})
		}
	}
}

func (g *Generator) block(x, y, speed float64) Obstacle {
	return Obstacle{
		X:      x,
		Y:      y,
		W:      g.cfg.BlockSize,
		H:      g.cfg.BlockSize,
		Damage: g.cfg.ObstacleDamage,
		Speed:  speed,
		Color:  core.ColorRed,
	}
}

// count draws a value in [lo, hi].
func (g *Generator) count(lo, hi int) int {
	return lo + g.rng.Intn(hi-lo+1)
}
