package system

import (
	"github.com/milk9111/mutant/ecs"
	"github.com/milk9111/mutant/prefabs"
)

const (
	StageInput        = "input"
	StagePlayer       = "player_controller"
	StagePrefabReload = "prefab_reload"
	StageMutant       = "mutant"
	StagePhysics      = "physics"
	StageAnimation    = "animation"
)

// NewPipeline returns the per-frame system order. Controllers request
// velocities before PhysicsSystem commits them, and animation trees advance
// after the signals of the frame were applied. input may be nil for headless
// runs; watcher may be nil when hot reload is off.
func NewPipeline(input *InputSystem, watcher *prefabs.Watcher) *ecs.Scheduler {
	s := ecs.NewScheduler()
	if input != nil {
		s.Add(StageInput, input)
	}
	s.Add(StagePlayer, NewPlayerControllerSystem())
	if watcher != nil {
		s.Add(StagePrefabReload, NewPrefabReloadSystem(watcher.Changes, watcher.Errors))
	}
	return s.
		Add(StageMutant, NewMutantSystem()).
		Add(StagePhysics, NewPhysicsSystem()).
		Add(StageAnimation, NewAnimationSystem())
}
