package entity

import (
	"fmt"

	"github.com/milk9111/mutant/anim"
	"github.com/milk9111/mutant/ecs"
	"github.com/milk9111/mutant/ecs/component"
	"github.com/milk9111/mutant/levels"
	"github.com/milk9111/mutant/logger"
	"github.com/milk9111/mutant/prefabs"
)

const defaultMutantPrefab = "mutant.yaml"

// BuildMutant spawns a mutant from its prefab. Props: "label" names the agent
// in logs, "prefab" picks another YAML file.
func BuildMutant(w *ecs.World, spawn levels.Entity, fallbackLabel string) (ecs.Entity, error) {
	prefab := spawn.Prop("prefab", defaultMutantPrefab)
	label := spawn.Prop("label", fallbackLabel)

	spec, err := prefabs.LoadMutantSpec(prefab)
	if err != nil {
		return 0, err
	}

	var mapper anim.Mapper = anim.DefaultMapper{}
	if m, err := spec.Animation.Mapper(); err != nil {
		logger.Log.WithError(err).WithField("mutant", label).Warn("animation script unavailable, using default mapping")
	} else {
		mapper = m
	}
	tree := anim.NewTree(label, spec.Animation.Clips(), mapper)
	if current := spec.Animation.Current; current != "" && !tree.Start(current) {
		logger.Log.WithField("mutant", label).WithField("clip", current).Warn("unknown starting clip, keeping default")
	}

	e := w.CreateEntity()
	adds := []func() error{
		func() error {
			return ecs.Add(w, e, component.MutantTagComponent.Kind(), &component.MutantTag{})
		},
		func() error {
			return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: spawn.X, Y: spawn.Y, Z: spawn.Z})
		},
		func() error {
			return ecs.Add(w, e, component.CharacterBodyComponent.Kind(), &component.CharacterBody{
				Radius:   spec.Body.Radius,
				Mass:     spec.Body.Mass,
				Friction: spec.Body.Friction,
			})
		},
		func() error {
			return ecs.Add(w, e, component.NavigationAgentComponent.Kind(), &component.NavigationAgent{
				PathDesiredDistance:   spec.Navigation.PathDesiredDistance,
				TargetDesiredDistance: spec.Navigation.TargetDesiredDistance,
				RepathInterval:        spec.Navigation.RepathInterval,
				MaxNodes:              spec.Navigation.MaxNodes,
			})
		},
		func() error {
			return ecs.Add(w, e, component.AnimationTreeComponent.Kind(), &component.AnimationTree{Tree: tree, Script: spec.Animation.Script})
		},
		func() error {
			return ecs.Add(w, e, component.MutantComponent.Kind(), &component.Mutant{
				Label:  label,
				Prefab: prefab,
				Config: spec.Config(label),
			})
		},
	}
	for _, add := range adds {
		if err := add(); err != nil {
			w.DestroyEntity(e)
			return 0, fmt.Errorf("mutant %s: %w", label, err)
		}
	}
	return e, nil
}
