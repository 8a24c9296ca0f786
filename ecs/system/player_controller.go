package system

import (
	"github.com/milk9111/mutant/common"
	"github.com/milk9111/mutant/ecs"
	"github.com/milk9111/mutant/ecs/component"
	"github.com/milk9111/mutant/mutant"
)

type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	dt := w.DeltaTime()
	entities := w.Query(
		component.PlayerTagComponent.Kind(),
		component.InputComponent.Kind(),
		component.PlayerControllerComponent.Kind(),
		component.CharacterBodyComponent.Kind(),
	)
	for _, e := range entities {
		input, _ := ecs.Get(w, e, component.InputComponent.Kind())
		ctrl, _ := ecs.Get(w, e, component.PlayerControllerComponent.Kind())
		body, _ := ecs.Get(w, e, component.CharacterBodyComponent.Kind())

		dir := common.V3(input.MoveX, 0, input.MoveZ)
		if dir.Len() > 1 {
			dir = dir.Normalized()
		}
		vel := dir.Scale(ctrl.MoveSpeed)
		vel.Y = mutant.IntegrateGravity(body.Velocity.Y, body.OnFloor, ctrl.Gravity, dt)
		body.Velocity = vel
	}
}
