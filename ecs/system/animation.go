package system

import (
	"github.com/milk9111/mutant/ecs"
	"github.com/milk9111/mutant/ecs/component"
)

type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach(w, component.AnimationTreeComponent.Kind(), func(e ecs.Entity, tree *component.AnimationTree) {
		if tree.Tree == nil {
			return
		}
		tree.Tree.Advance()
	})
}
