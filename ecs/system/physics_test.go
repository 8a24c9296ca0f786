package system

import (
	"testing"

	"github.com/milk9111/mutant/common"
	"github.com/milk9111/mutant/ecs"
	"github.com/milk9111/mutant/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addBody(t *testing.T, w *ecs.World, x, y, z float64, vel common.Vec3) ecs.Entity {
	t.Helper()
	e := w.CreateEntity()
	require.NoError(t, ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, Z: z}))
	require.NoError(t, ecs.Add(w, e, component.CharacterBodyComponent.Kind(), &component.CharacterBody{Radius: 0.5, Velocity: vel}))
	return e
}

func addBounds(t *testing.T, w *ecs.World, width, depth float64) {
	t.Helper()
	e := w.CreateEntity()
	require.NoError(t, ecs.Add(w, e, component.LevelBoundsComponent.Kind(), &component.LevelBounds{Width: width, Depth: depth}))
}

func TestPhysicsMovesBody(t *testing.T) {
	w := ecs.NewWorld()
	w.SetDeltaTime(0.1)
	e := addBody(t, w, 2, 0, 2, common.V3(1, 0, 2))

	ps := NewPhysicsSystem()
	ps.Update(w)

	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	assert.InDelta(t, 2.1, tr.X, 1e-6)
	assert.InDelta(t, 2.2, tr.Z, 1e-6)

	body, _ := ecs.Get(w, e, component.CharacterBodyComponent.Kind())
	require.NotNil(t, body.Body)
	assert.True(t, body.OnFloor)
}

func TestPhysicsGravityLandsOnFloor(t *testing.T) {
	w := ecs.NewWorld()
	w.SetDeltaTime(0.1)
	e := addBody(t, w, 2, 1, 2, common.V3(0, -5, 0))

	ps := NewPhysicsSystem()
	ps.Update(w)

	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	body, _ := ecs.Get(w, e, component.CharacterBodyComponent.Kind())
	assert.InDelta(t, 0.5, tr.Y, 1e-9)
	assert.False(t, body.OnFloor)

	ps.Update(w)
	ps.Update(w)
	assert.Equal(t, 0.0, tr.Y)
	assert.True(t, body.OnFloor)
	assert.Equal(t, 0.0, body.Velocity.Y)
}

func TestPhysicsWallsBlock(t *testing.T) {
	w := ecs.NewWorld()
	addBounds(t, w, 20, 20)
	wall := w.CreateEntity()
	require.NoError(t, ecs.Add(w, wall, component.TransformComponent.Kind(), &component.Transform{X: 5, Z: 2}))
	require.NoError(t, ecs.Add(w, wall, component.StaticBoxComponent.Kind(), &component.StaticBox{Width: 1, Depth: 4}))

	e := addBody(t, w, 2, 0, 2, common.Vec3{})
	ps := NewPhysicsSystem()
	body, _ := ecs.Get(w, e, component.CharacterBodyComponent.Kind())
	for i := 0; i < 120; i++ {
		body.Velocity = common.V3(6, 0, 0)
		ps.Update(w)
	}

	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	assert.Less(t, tr.X, 4.2, "stopped by the wall face at 4.5")
	assert.Greater(t, tr.X, 3.0)
}

func TestPhysicsBoundsBlock(t *testing.T) {
	w := ecs.NewWorld()
	addBounds(t, w, 10, 10)
	e := addBody(t, w, 2, 0, 2, common.Vec3{})
	ps := NewPhysicsSystem()
	body, _ := ecs.Get(w, e, component.CharacterBodyComponent.Kind())
	for i := 0; i < 120; i++ {
		body.Velocity = common.V3(-6, 0, 0)
		ps.Update(w)
	}
	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	assert.Greater(t, tr.X, 0.2)
}

func TestPhysicsRemovesDestroyedBodies(t *testing.T) {
	w := ecs.NewWorld()
	e := addBody(t, w, 2, 0, 2, common.Vec3{})
	ps := NewPhysicsSystem()
	ps.Update(w)
	require.Len(t, ps.entities, 1)

	w.DestroyEntity(e)
	ps.Update(w)
	assert.Empty(t, ps.entities)
}
