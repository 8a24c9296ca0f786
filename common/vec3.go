package common

import (
	"fmt"
	"math"
)

// Vec3 is a point or direction in world space. Y is up.
type Vec3 struct {
	X float64
	Y float64
	Z float64
}

func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

func (v Vec3) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

func (v Vec3) DistanceTo(o Vec3) float64 {
	return o.Sub(v).Len()
}

// Horizontal drops the vertical component.
func (v Vec3) Horizontal() Vec3 {
	return Vec3{X: v.X, Z: v.Z}
}

// Normalized returns the unit vector in v's direction. A zero-length vector
// normalizes to the zero vector.
func (v Vec3) Normalized() Vec3 {
	l := v.Len()
	if l == 0 || math.IsNaN(l) {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v.X, v.Y, v.Z)
}

// YawTowards returns the rotation about the Y axis that makes an object at
// from face to. Yaw 0 faces +Z. ok is false when the two points share the same
// horizontal position.
func YawTowards(from, to Vec3) (yaw float64, ok bool) {
	d := to.Sub(from).Horizontal()
	if AlmostZero(d.X) && AlmostZero(d.Z) {
		return 0, false
	}
	return math.Atan2(d.X, d.Z), true
}
