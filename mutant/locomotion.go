package mutant

import "github.com/milk9111/mutant/common"

// ComputeVelocity returns the horizontal velocity for state. While chasing it
// follows path when one is bound and heads straight for targetPos otherwise.
// The Y component of the result is always zero.
func ComputeVelocity(state State, currentPos, targetPos common.Vec3, path PathQuery, speed float64) common.Vec3 {
	if state != Chasing {
		return common.Vec3{}
	}

	if path != nil {
		path.SetDestination(targetPos)
		if path.IsFinished() {
			return common.Vec3{}
		}
		next := path.NextPosition()
		return next.Sub(currentPos).Horizontal().Normalized().Scale(speed)
	}

	return targetPos.Sub(currentPos).Horizontal().Normalized().Scale(speed)
}

// IntegrateGravity returns the vertical velocity after one step.
func IntegrateGravity(vy float64, onFloor bool, gravity, dt float64) float64 {
	if onFloor {
		return 0
	}
	return vy - gravity*dt
}
