package system

import (
	"testing"

	"github.com/milk9111/mutant/ecs"
	"github.com/milk9111/mutant/ecs/component"
	"github.com/milk9111/mutant/mutant"
	"github.com/stretchr/testify/require"
)

func addPlayer(t *testing.T, w *ecs.World, x, y, z float64) ecs.Entity {
	t.Helper()
	e := w.CreateEntity()
	require.NoError(t, ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}))
	require.NoError(t, ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, Z: z}))
	require.NoError(t, ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}))
	require.NoError(t, ecs.Add(w, e, component.PlayerControllerComponent.Kind(), &component.PlayerController{MoveSpeed: 6, Gravity: 30}))
	require.NoError(t, ecs.Add(w, e, component.CharacterBodyComponent.Kind(), &component.CharacterBody{Radius: 0.4, OnFloor: true}))
	return e
}

func addMutant(t *testing.T, w *ecs.World, label string, cfg mutant.Config, x, y, z float64) ecs.Entity {
	t.Helper()
	e := w.CreateEntity()
	require.NoError(t, ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, Z: z}))
	require.NoError(t, ecs.Add(w, e, component.CharacterBodyComponent.Kind(), &component.CharacterBody{Radius: 0.5, OnFloor: y == 0}))
	require.NoError(t, ecs.Add(w, e, component.MutantComponent.Kind(), &component.Mutant{Label: label, Prefab: "mutant.yaml", Config: cfg}))
	return e
}

func drainTyped(w *ecs.World, typ string) []ecs.Event {
	var out []ecs.Event
	for _, ev := range w.Events().Drain() {
		if ev.Type == typ {
			out = append(out, ev)
		}
	}
	return out
}
