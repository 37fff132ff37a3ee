package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "sacrifice.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.sacrifice/configs/sacrifice.yaml ->
// ./configs/sacrifice.yaml -> embedded default.
// Keys missing from a file keep their default values.
func Load(customPath string) (SacrificeConfig, error) {
	// A custom path must load; broken files elsewhere are skipped
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SacrificeConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return SacrificeConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{userConfigPath(configFile), filepath.Join("configs", configFile)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultSacrificeYAML)
	if err != nil {
		return DefaultSacrificeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (SacrificeConfig, error) {
	cfg := DefaultSacrificeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SacrificeConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return SacrificeConfig{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the simulation cannot run with.
func (c SacrificeConfig) Validate() error {
	var errs []error
	check := func(ok bool, msg string) {
		if !ok {
			errs = append(errs, errors.New(msg))
		}
	}

	check(c.World.Width > 0 && c.World.Height > 0, "world: width and height must be positive")
	check(c.World.CeilingY < c.World.FloorY, "world: ceiling_y must be above floor_y")
	check(c.Player.Size > 0, "player: size must be positive")
	check(c.Player.JumpForce < 0, "player: jump_force must be negative")
	check(c.Health.Max > 0, "health: max must be positive")
	check(c.Health.Start > 0 && c.Health.Start <= c.Health.Max, "health: start must be in (0, max]")
	check(c.Spawn.BlockSize > 0, "spawn: block_size must be positive")
	rows := []struct {
		name string
		row  RowConfig
	}{
		{"floor", c.Spawn.Floor},
		{"ceiling", c.Spawn.Ceiling},
	}
	for _, r := range rows {
		check(r.row.MinCount >= 0 && r.row.MinCount <= r.row.MaxCount, "spawn."+r.name+": min_count must be in [0, max_count]")
	}
	p := c.Spawn.Platforms
	check(p.Width > 0 && p.Height > 0, "spawn.platforms: width and height must be positive")
	check(p.MinCount >= 0 && p.MinCount <= p.MaxCount, "spawn.platforms: min_count must be in [0, max_count]")
	check(p.MinGap <= p.MaxGap, "spawn.platforms: min_gap must not exceed max_gap")
	check(p.MinY <= p.MaxY, "spawn.platforms: min_y must not exceed max_y")
	check(c.Spawn.Hazard.Chance >= 0 && c.Spawn.Hazard.Chance <= 1, "spawn.hazard: chance must be in [0, 1]")
	check(c.Spawn.Orb.Chance >= 0 && c.Spawn.Orb.Chance <= 1, "spawn.orb: chance must be in [0, 1]")
	check(c.Spawn.Orb.Radius > 0, "spawn.orb: radius must be positive")
	check(c.Difficulty.SpeedDivisor > 0, "difficulty: speed_divisor must be positive")
	check(c.Difficulty.IntervalDivisor > 0, "difficulty: interval_divisor must be positive")
	check(c.Difficulty.MinInterval > 0, "difficulty: min_interval must be positive")
	check(c.Sacrifice.Every > 0, "sacrifice: every must be positive")
	check(c.Sacrifice.ScoreDivisor > 0, "sacrifice: score_divisor must be positive")

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".sacrifice", "configs", filename)
}
