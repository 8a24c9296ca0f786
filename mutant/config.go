package mutant

import (
	"errors"
	"fmt"
	"math"
)

// Config holds the designer-tunable scalars of a mutant. Distances are in
// world units, Speed in units per second, Gravity in units per second
// squared and AttackCooldown in seconds.
type Config struct {
	Label               string
	DetectionRange      float64
	MinApproachDistance float64
	MaxLeashDistance    float64
	Gravity             float64
	Speed               float64
	AttackRange         float64
	AttackCooldown      float64
}

func DefaultConfig() Config {
	return Config{
		DetectionRange:      10.0,
		MinApproachDistance: 1.5,
		MaxLeashDistance:    20.0,
		Gravity:             30.0,
		Speed:               5.0,
		AttackRange:         3.0,
		AttackCooldown:      1.5,
	}
}

func (c Config) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"detection_range", c.DetectionRange},
		{"min_approach_distance", c.MinApproachDistance},
		{"max_leash_distance", c.MaxLeashDistance},
		{"gravity", c.Gravity},
		{"speed", c.Speed},
		{"attack_range", c.AttackRange},
		{"attack_cooldown", c.AttackCooldown},
	}
	var errs []error
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) || f.value < 0 {
			errs = append(errs, fmt.Errorf("%w: %s=%v", ErrInvalidConfig, f.name, f.value))
		}
	}
	return errors.Join(errs...)
}
