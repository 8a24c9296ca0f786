package mutant

import "github.com/milk9111/mutant/common"

// Target is anything the mutant can chase. The agent never owns it.
type Target interface {
	Position() common.Vec3
}

// PathQuery is a navigation agent that follows a route toward a destination.
type PathQuery interface {
	SetDestination(p common.Vec3)
	// IsFinished reports whether the route to the destination is complete.
	IsFinished() bool
	// NextPosition returns the next waypoint toward the destination.
	NextPosition() common.Vec3
}

// Body is the physics collaborator that owns position and integrates the
// committed velocity, resolving collisions.
type Body interface {
	Position() common.Vec3
	Velocity() common.Vec3
	IsOnFloor() bool
	MoveAndSlide(velocity common.Vec3)
}

// Animator consumes the per-tick animation signal.
type Animator interface {
	Apply(sig Signal)
}

type Collaborators struct {
	Body     Body
	Animator Animator
}
