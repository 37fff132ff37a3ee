package config

import "math"

// DifficultyManager turns the score into the current scroll speed, spawn
// cadence and sacrifice damage. All methods are pure functions of the score.
type DifficultyManager struct {
	cfg       DifficultyConfig
	sacrifice SacrificeRule
}

// NewDifficultyManager creates a difficulty manager for the given curve.
func NewDifficultyManager(cfg DifficultyConfig, rule SacrificeRule) *DifficultyManager {
	return &DifficultyManager{cfg: cfg, sacrifice: rule}
}

// Speed returns the scroll speed for a score: base + score/divisor.
func (d *DifficultyManager) Speed(score float64) float64 {
	return d.cfg.BaseSpeed + score/d.cfg.SpeedDivisor
}

// SpawnInterval returns the number of frames between world-generation
// bursts: max(min, base - floor(score/divisor)).
func (d *DifficultyManager) SpawnInterval(score float64) int {
	interval := d.cfg.BaseInterval - int(math.Floor(score/d.cfg.IntervalDivisor))
	if interval < d.cfg.MinInterval {
		return d.cfg.MinInterval
	}
	return interval
}

// IsSacrifice reports whether the chain-th consecutive jump costs health.
func (d *DifficultyManager) IsSacrifice(chain int) bool {
	return chain > 0 && chain%d.sacrifice.Every == 0
}

// SacrificeDamage returns the self-damage of a sacrificial jump:
// base + floor(score/divisor).
func (d *DifficultyManager) SacrificeDamage(score float64) int {
	return d.sacrifice.BaseDamage + int(math.Floor(score/d.sacrifice.ScoreDivisor))
}
