package sacrifice

import "github.com/vovakirdan/sacrifice-runner/internal/core"

// Snapshot is a read-only copy of everything a renderer needs for one
// frame. It is safe to hand to another goroutine or encode as JSON.
type Snapshot struct {
	Frame     int     `json:"frame"`
	Score     int     `json:"score"`
	Health    int     `json:"health"`
	MaxHealth int     `json:"maxHealth"`
	Speed     float64 `json:"speed"`
	JumpChain int     `json:"jumpChain"`
	GameOver  bool    `json:"gameOver"`
	Paused    bool    `json:"paused"`

	World     Bounds     `json:"world"`
	Player    PlayerView `json:"player"`
	Obstacles []BoxView  `json:"obstacles"`
	Platforms []BoxView  `json:"platforms"`
	Orbs      []OrbView  `json:"orbs"`
}

// Bounds describes the playfield and its border bands.
type Bounds struct {
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	FloorY   float64 `json:"floorY"`
	CeilingY float64 `json:"ceilingY"`
}

// PlayerView is the drawable part of the player.
type PlayerView struct {
	X     float64    `json:"x"`
	Y     float64    `json:"y"`
	Size  float64    `json:"size"`
	Color core.Color `json:"color"`
}

// BoxView is a drawable rectangle (obstacle or platform).
type BoxView struct {
	X     float64    `json:"x"`
	Y     float64    `json:"y"`
	W     float64    `json:"w"`
	H     float64    `json:"h"`
	Color core.Color `json:"color"`
}

// OrbView is a drawable healing orb.
type OrbView struct {
	X      float64    `json:"x"`
	Y      float64    `json:"y"`
	Radius float64    `json:"radius"`
	Color  core.Color `json:"color"`
}

// Snapshot copies the current session state.
func (s *Sim) Snapshot() Snapshot {
	snap := Snapshot{
		Frame:     s.frame,
		Score:     s.FloorScore(),
		Health:    s.health,
		MaxHealth: s.maxHealth,
		Speed:     s.speed,
		JumpChain: s.jumpChain,
		GameOver:  s.gameOver,
		World: Bounds{
			Width:    s.cfg.World.Width,
			Height:   s.cfg.World.Height,
			FloorY:   s.cfg.World.FloorY,
			CeilingY: s.cfg.World.CeilingY,
		},
		Player: PlayerView{
			X:     s.player.X,
			Y:     s.player.Y,
			Size:  s.player.Size,
			Color: s.player.Color,
		},
		Obstacles: make([]BoxView, 0, len(s.world.Obstacles)),
		Platforms: make([]BoxView, 0, len(s.world.Platforms)),
		Orbs:      make([]OrbView, 0, len(s.world.Orbs)),
	}

	for _, o := range s.world.Obstacles {
		snap.Obstacles = append(snap.Obstacles, BoxView{X: o.X, Y: o.Y, W: o.W, H: o.H, Color: o.Color})
	}
	for _, p := range s.world.Platforms {
		snap.Platforms = append(snap.Platforms, BoxView{X: p.X, Y: p.Y, W: p.W, H: p.H, Color: p.Color})
	}
	for _, o := range s.world.Orbs {
		snap.Orbs = append(snap.Orbs, OrbView{X: o.X, Y: o.Y, Radius: o.Radius, Color: o.Color})
	}
	return snap
}

// HealthFraction returns health/maxHealth in [0, 1], for health bars.
func (s Snapshot) HealthFraction() float64 {
	if s.MaxHealth <= 0 {
		return 0
	}
	return core.ClampF(float64(s.Health)/float64(s.MaxHealth), 0, 1)
}
