package mutant

import "github.com/milk9111/mutant/common"

// Sensor measures the agent against its target and its spawn point.
type Sensor struct {
	body   Body
	target Target
	spawn  common.Vec3
}

// DistanceToTarget returns the distance to the bound target. ok is false when
// no target is bound.
func (s *Sensor) DistanceToTarget() (dist float64, ok bool) {
	if s == nil || s.target == nil || s.body == nil {
		return 0, false
	}
	return s.body.Position().DistanceTo(s.target.Position()), true
}

func (s *Sensor) DistanceFromSpawn() float64 {
	if s == nil || s.body == nil {
		return 0
	}
	return s.body.Position().DistanceTo(s.spawn)
}

// Read samples the body and target positions once and derives both
// distances from them.
func (s *Sensor) Read() Reading {
	if s == nil || s.body == nil {
		return Reading{}
	}
	r := Reading{Position: s.body.Position()}
	r.DistanceFromSpawn = r.Position.DistanceTo(s.spawn)
	if s.target != nil {
		r.TargetKnown = true
		r.TargetPosition = s.target.Position()
		r.DistanceToTarget = r.Position.DistanceTo(r.TargetPosition)
	}
	return r
}
