package entity

import (
	"fmt"

	"github.com/milk9111/mutant/ecs"
	"github.com/milk9111/mutant/ecs/component"
	"github.com/milk9111/mutant/levels"
	"github.com/milk9111/mutant/prefabs"
)

func BuildPlayer(w *ecs.World, spawn levels.Entity) (ecs.Entity, error) {
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return 0, fmt.Errorf("player spec: %w", err)
	}

	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return e, err
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: spawn.X, Y: spawn.Y, Z: spawn.Z}); err != nil {
		return e, err
	}
	if err := ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return e, err
	}
	if err := ecs.Add(w, e, component.PlayerControllerComponent.Kind(), &component.PlayerController{
		MoveSpeed: spec.MoveSpeed,
		Gravity:   spec.Gravity,
	}); err != nil {
		return e, err
	}
	if err := ecs.Add(w, e, component.CharacterBodyComponent.Kind(), &component.CharacterBody{
		Radius:   spec.Body.Radius,
		Mass:     spec.Body.Mass,
		Friction: spec.Body.Friction,
	}); err != nil {
		return e, err
	}
	return e, nil
}
