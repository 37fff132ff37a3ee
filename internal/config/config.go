// Package config provides YAML-based game configuration loading and the
// difficulty curve for Sacrifice Runner.
package config

// SacrificeConfig contains all tunable constants of the game.
type SacrificeConfig struct {
	World      WorldConfig      `yaml:"world"`
	Player     PlayerConfig     `yaml:"player"`
	Health     HealthConfig     `yaml:"health"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Sacrifice  SacrificeRule    `yaml:"sacrifice"`
}

// WorldConfig defines the playfield in world units.
type WorldConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	FloorY   float64 `yaml:"floor_y"`   // Top of the floor border; the player rests on it
	CeilingY float64 `yaml:"ceiling_y"` // Bottom of the ceiling border
}

// PlayerConfig defines the avatar and its physics.
type PlayerConfig struct {
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	Size      float64 `yaml:"size"`
	Gravity   float64 `yaml:"gravity"`
	JumpForce float64 `yaml:"jump_force"` // Negative = up
}

// HealthConfig defines the health pool.
type HealthConfig struct {
	Max   int `yaml:"max"`
	Start int `yaml:"start"`
}

// SpawnConfig defines one world-generation burst.
type SpawnConfig struct {
	BlockSize      float64        `yaml:"block_size"`
	ObstacleDamage int            `yaml:"obstacle_damage"`
	Floor          RowConfig      `yaml:"floor"`
	Ceiling        RowConfig      `yaml:"ceiling"`
	Platforms      PlatformConfig `yaml:"platforms"`
	Hazard         HazardConfig   `yaml:"hazard"`
	Orb            OrbConfig      `yaml:"orb"`
}

// RowConfig describes a row of obstacles along the floor or the ceiling.
// Every even obstacle is offset by a random fraction of Jitter
// (negative jitter lifts floor blocks, positive lowers ceiling blocks).
type RowConfig struct {
	Y        float64 `yaml:"y"`
	Jitter   float64 `yaml:"jitter"`
	Pitch    float64 `yaml:"pitch"` // Gap between consecutive blocks
	MinCount int     `yaml:"min_count"`
	MaxCount int     `yaml:"max_count"`
}

// PlatformConfig describes the floating platforms.
type PlatformConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	MinCount int     `yaml:"min_count"`
	MaxCount int     `yaml:"max_count"`
	MinGap   float64 `yaml:"min_gap"`
	MaxGap   float64 `yaml:"max_gap"`
	MinY     float64 `yaml:"min_y"`
	MaxY     float64 `yaml:"max_y"`
}

// HazardConfig describes the optional obstacle hovering near a platform.
type HazardConfig struct {
	Chance  float64 `yaml:"chance"`
	OffsetX float64 `yaml:"offset_x"`
	Lift    float64 `yaml:"lift"`
	Jitter  float64 `yaml:"jitter"`
}

// OrbConfig describes the optional healing orb near a platform.
type OrbConfig struct {
	Chance  float64 `yaml:"chance"`
	OffsetX float64 `yaml:"offset_x"`
	Lift    float64 `yaml:"lift"`
	Radius  float64 `yaml:"radius"`
	Heal    int     `yaml:"heal"`
}

// DifficultyConfig defines how speed and spawn cadence follow the score.
type DifficultyConfig struct {
	BaseSpeed       float64 `yaml:"base_speed"`
	SpeedDivisor    float64 `yaml:"speed_divisor"`
	BaseInterval    int     `yaml:"base_interval"`
	MinInterval     int     `yaml:"min_interval"`
	IntervalDivisor float64 `yaml:"interval_divisor"`
}

// SacrificeRule defines the self-damage dealt by chained jumps.
type SacrificeRule struct {
	Every        int     `yaml:"every"` // Every Nth chained jump hurts
	BaseDamage   int     `yaml:"base_damage"`
	ScoreDivisor float64 `yaml:"score_divisor"`
}
