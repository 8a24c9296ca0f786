package mutant

import "github.com/milk9111/mutant/common"

// State is the behavior a mutant is in for the current tick.
type State int

const (
	Idle State = iota
	Chasing
	Attacking
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Chasing:
		return "chasing"
	case Attacking:
		return "attacking"
	default:
		return "unknown"
	}
}

// Reading is what the sensor saw this tick.
type Reading struct {
	TargetKnown       bool
	DistanceToTarget  float64
	DistanceFromSpawn float64
	// Position and TargetPosition are the samples the distances came from.
	Position       common.Vec3
	TargetPosition common.Vec3
}

// Classify maps a sensor reading to a state. Rules are checked in order:
// no target, attack range, chase window inside the leash, idle.
func Classify(cfg Config, r Reading) State {
	if !r.TargetKnown {
		return Idle
	}
	d := r.DistanceToTarget
	if d <= cfg.AttackRange {
		return Attacking
	}
	if d <= cfg.DetectionRange && d > cfg.MinApproachDistance && r.DistanceFromSpawn < cfg.MaxLeashDistance {
		return Chasing
	}
	return Idle
}

// InDetectionRange reports whether the mutant should turn to face its target.
func InDetectionRange(cfg Config, r Reading) bool {
	return r.TargetKnown && r.DistanceToTarget <= cfg.DetectionRange
}
