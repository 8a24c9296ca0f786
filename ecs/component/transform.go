package component

import "github.com/milk9111/mutant/common"

// Transform is an entity's world position. Yaw is the facing angle around the
// up axis in radians, zero looking down +Z.
type Transform struct {
	X   float64
	Y   float64
	Z   float64
	Yaw float64
}

func (t Transform) Position() common.Vec3 {
	return common.V3(t.X, t.Y, t.Z)
}

func (t *Transform) SetPosition(p common.Vec3) {
	t.X, t.Y, t.Z = p.X, p.Y, p.Z
}

var TransformComponent = NewComponent[Transform]()
