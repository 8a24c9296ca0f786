package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/mutant/common"
)

// CharacterBody is a kinematic character collider. Horizontal motion is
// resolved by Chipmunk2D in the XZ plane; vertical motion is integrated
// against the level floor.
type CharacterBody struct {
	Body     *cp.Body
	Shape    *cp.Shape
	Radius   float64
	Mass     float64
	Friction float64

	// Velocity is requested by controllers before the physics step and holds
	// the resolved velocity after it.
	Velocity common.Vec3
	OnFloor  bool
}

var CharacterBodyComponent = NewComponent[CharacterBody]()

// StaticBox is an immovable wall centered on the entity's transform.
type StaticBox struct {
	Width float64
	Depth float64
}

var StaticBoxComponent = NewComponent[StaticBox]()
