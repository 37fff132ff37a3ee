package config

import (
	_ "embed"
)

//go:embed defaults/sacrifice.yaml
var defaultSacrificeYAML []byte

// DefaultSacrificeConfig returns the built-in configuration.
func DefaultSacrificeConfig() SacrificeConfig {
	return SacrificeConfig{
		World: WorldConfig{
			Width:    800,
			Height:   400,
			FloorY:   350,
			CeilingY: 50,
		},
		Player: PlayerConfig{
			X:         100,
			Y:         300,
			Size:      40,
			Gravity:   0.7,
			JumpForce: -12,
		},
		Health: HealthConfig{
			Max:   150,
			Start: 150,
		},
		Spawn: SpawnConfig{
			BlockSize:      20,
			ObstacleDamage: 10,
			Floor:          RowConfig{Y: 330, Jitter: -30, Pitch: 40, MinCount: 3, MaxCount: 5},
			Ceiling:        RowConfig{Y: 50, Jitter: 20, Pitch: 50, MinCount: 2, MaxCount: 4},
			Platforms: PlatformConfig{
				Width:    80,
				Height:   15,
				MinCount: 2,
				MaxCount: 3,
				MinGap:   350,
				MaxGap:   450,
				MinY:     120,
				MaxY:     280,
			},
			Hazard: HazardConfig{Chance: 0.4, OffsetX: 60, Lift: 50, Jitter: 40},
			Orb:    OrbConfig{Chance: 0.3, OffsetX: 40, Lift: 25, Radius: 10, Heal: 7},
		},
		Difficulty: DifficultyConfig{
			BaseSpeed:       5,
			SpeedDivisor:    100,
			BaseInterval:    80,
			MinInterval:     30,
			IntervalDivisor: 10,
		},
		Sacrifice: SacrificeRule{
			Every:        3,
			BaseDamage:   10,
			ScoreDivisor: 50,
		},
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultSacrificeYAML
}
