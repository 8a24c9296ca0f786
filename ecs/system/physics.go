package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/mutant/ecs"
	"github.com/milk9111/mutant/ecs/component"
)

const (
	collisionTypeCharacter cp.CollisionType = iota + 1
	collisionTypeSolid
)

const floorEpsilon = 1e-6

// PhysicsSystem resolves horizontal motion in a Chipmunk2D space laid over
// the XZ plane (cp X = world X, cp Y = world Z) and integrates vertical motion
// against the level floor.
type PhysicsSystem struct {
	space    *cp.Space
	entities map[ecs.Entity]*bodyInfo
}

type bodyInfo struct {
	body   *cp.Body
	shapes []*cp.Shape
	static bool
}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{
		space:    newSpace(),
		entities: make(map[ecs.Entity]*bodyInfo),
	}
}

func newSpace() *cp.Space {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{})
	return space
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}
	if ps.space == nil {
		ps.space = newSpace()
	}

	dt := w.DeltaTime()
	ps.cleanupEntities(w)
	ps.syncEntities(w)
	ps.syncWorldBounds(w)

	ecs.ForEach(w, component.CharacterBodyComponent.Kind(), func(e ecs.Entity, body *component.CharacterBody) {
		if body.Body == nil {
			return
		}
		body.Body.SetVelocityVector(cp.Vector{X: body.Velocity.X, Y: body.Velocity.Z})
	})

	ps.space.Step(dt)

	ps.syncTransforms(w, dt)
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	ecs.ForEach2(w, component.CharacterBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, body *component.CharacterBody, t *component.Transform) {
		if info := ps.entities[e]; info != nil {
			return
		}
		info := ps.createCharacter(body, t)
		ps.entities[e] = info
		body.Body = info.body
		body.Shape = info.shapes[0]
	})

	ecs.ForEach2(w, component.StaticBoxComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, box *component.StaticBox, t *component.Transform) {
		if _, ok := ps.entities[e]; ok {
			return
		}
		if box.Width <= 0 || box.Depth <= 0 {
			return
		}
		bb := cp.BB{
			L: t.X - box.Width/2,
			B: t.Z - box.Depth/2,
			R: t.X + box.Width/2,
			T: t.Z + box.Depth/2,
		}
		shape := cp.NewBox2(ps.space.StaticBody, bb, 0)
		shape.SetFriction(0)
		shape.SetCollisionType(collisionTypeSolid)
		ps.space.AddShape(shape)
		ps.entities[e] = &bodyInfo{body: ps.space.StaticBody, shapes: []*cp.Shape{shape}, static: true}
	})
}

func (ps *PhysicsSystem) createCharacter(body *component.CharacterBody, t *component.Transform) *bodyInfo {
	radius := body.Radius
	if radius <= 0 {
		radius = 0.5
	}
	mass := body.Mass
	if mass <= 0 {
		mass = 1
	}

	// infinite moment keeps characters upright
	b := cp.NewBody(mass, cp.INFINITY)
	b.SetPosition(cp.Vector{X: t.X, Y: t.Z})
	shape := cp.NewCircle(b, radius, cp.Vector{})
	shape.SetFriction(body.Friction)
	shape.SetElasticity(0)
	shape.SetCollisionType(collisionTypeCharacter)

	ps.space.AddBody(b)
	ps.space.AddShape(shape)
	return &bodyInfo{body: b, shapes: []*cp.Shape{shape}}
}

func (ps *PhysicsSystem) syncWorldBounds(w *ecs.World) {
	boundsEntity, ok := w.First(component.LevelBoundsComponent.Kind())
	if !ok {
		return
	}
	if _, exists := ps.entities[boundsEntity]; exists {
		return
	}
	bounds, _ := ecs.Get(w, boundsEntity, component.LevelBoundsComponent.Kind())
	worldW, worldD := bounds.Width, bounds.Depth
	if worldW <= 0 || worldD <= 0 {
		return
	}

	thickness := 0.1
	segments := []struct {
		a cp.Vector
		b cp.Vector
	}{
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: worldW, Y: 0}},
		{a: cp.Vector{X: 0, Y: worldD}, b: cp.Vector{X: worldW, Y: worldD}},
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: 0, Y: worldD}},
		{a: cp.Vector{X: worldW, Y: 0}, b: cp.Vector{X: worldW, Y: worldD}},
	}

	info := &bodyInfo{static: true, body: ps.space.StaticBody}
	for _, seg := range segments {
		shape := cp.NewSegment(ps.space.StaticBody, seg.a, seg.b, thickness)
		shape.SetFriction(0)
		shape.SetCollisionType(collisionTypeSolid)
		ps.space.AddShape(shape)
		info.shapes = append(info.shapes, shape)
	}
	ps.entities[boundsEntity] = info
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World, dt float64) {
	floorY := 0.0
	if e, ok := w.First(component.LevelBoundsComponent.Kind()); ok {
		b, _ := ecs.Get(w, e, component.LevelBoundsComponent.Kind())
		floorY = b.FloorY
	}

	ecs.ForEach2(w, component.CharacterBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, body *component.CharacterBody, t *component.Transform) {
		if body.Body == nil {
			return
		}
		pos := body.Body.Position()
		vel := body.Body.Velocity()
		t.X, t.Z = pos.X, pos.Y
		body.Velocity.X, body.Velocity.Z = vel.X, vel.Y

		t.Y += body.Velocity.Y * dt
		if t.Y <= floorY+floorEpsilon {
			t.Y = floorY
			if body.Velocity.Y < 0 {
				body.Velocity.Y = 0
			}
			body.OnFloor = true
		} else {
			body.OnFloor = false
		}
	})
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if w.IsAlive(e) && (ecs.Has(w, e, component.CharacterBodyComponent.Kind()) ||
			ecs.Has(w, e, component.StaticBoxComponent.Kind()) ||
			ecs.Has(w, e, component.LevelBoundsComponent.Kind())) {
			continue
		}
		for _, shape := range info.shapes {
			ps.space.RemoveShape(shape)
		}
		if info.body != nil && !info.static {
			ps.space.RemoveBody(info.body)
		}
		delete(ps.entities, e)
	}
}
