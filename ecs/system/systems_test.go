package system

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/mutant/anim"
	"github.com/milk9111/mutant/common"
	"github.com/milk9111/mutant/ecs"
	"github.com/milk9111/mutant/ecs/component"
	"github.com/milk9111/mutant/logger"
	"github.com/milk9111/mutant/mutant"
	"github.com/milk9111/mutant/prefabs"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputSystem(t *testing.T) {
	w := ecs.NewWorld()
	e := addPlayer(t, w, 0, 0, 0)
	in := &InputSystem{Read: func() component.Input { return component.Input{MoveX: 1, MoveZ: -1} }}
	in.Update(w)

	got, _ := ecs.Get(w, e, component.InputComponent.Kind())
	assert.Equal(t, component.Input{MoveX: 1, MoveZ: -1}, *got)
}

func TestPlayerControllerSystem(t *testing.T) {
	w := ecs.NewWorld()
	e := addPlayer(t, w, 0, 0, 0)
	input, _ := ecs.Get(w, e, component.InputComponent.Kind())
	input.MoveX, input.MoveZ = 1, 1

	NewPlayerControllerSystem().Update(w)

	body, _ := ecs.Get(w, e, component.CharacterBodyComponent.Kind())
	assert.InDelta(t, 6, body.Velocity.Horizontal().Len(), 1e-9, "diagonals are not faster")
	assert.Equal(t, 0.0, body.Velocity.Y)

	body.OnFloor = false
	NewPlayerControllerSystem().Update(w)
	assert.InDelta(t, -30*common.TickDelta, body.Velocity.Y, 1e-9)
}

func TestAnimationSystemAdvancesTrees(t *testing.T) {
	w := ecs.NewWorld()
	e := w.CreateEntity()
	tree := anim.NewTree("m", []anim.ClipDef{{Name: anim.CondIdle, FrameCount: 4, FPS: 60, Loop: true}}, nil)
	require.NoError(t, ecs.Add(w, e, component.AnimationTreeComponent.Kind(), &component.AnimationTree{Tree: tree}))

	s := NewAnimationSystem()
	s.Update(w)
	s.Update(w)
	assert.Equal(t, 2, tree.Frame())
}

func usePrefabDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	old := prefabs.Dir
	prefabs.Dir = dir
	t.Cleanup(func() { prefabs.Dir = old })
	return dir
}

func TestPrefabReloadConfiguresAgents(t *testing.T) {
	dir := usePrefabDir(t)

	w := ecs.NewWorld()
	addPlayer(t, w, 5, 0, 12)
	e := addMutant(t, w, "m", mutant.DefaultConfig(), 5, 0, 5)
	NewMutantSystem().Update(w)
	m, _ := ecs.Get(w, e, component.MutantComponent.Kind())
	spawn := m.Agent.Spawn()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "mutant.yaml"), []byte(
		"name: mutant\ndetection_range: 10\nmin_approach_distance: 1.5\nmax_leash_distance: 20\n"+
			"gravity: 30\nspeed: 8\nattack_range: 3\nattack_cooldown: 1\n"), 0o644))

	changes := make(chan prefabs.Change, 2)
	changes <- prefabs.Change{Name: "mutant.yaml"}
	changes <- prefabs.Change{Name: "other.yaml"}
	NewPrefabReloadSystem(changes, nil).Update(w)

	assert.Equal(t, 8.0, m.Agent.Config().Speed)
	assert.Equal(t, 1.0, m.Config.AttackCooldown)
	assert.Equal(t, "m", m.Agent.Config().Label)
	assert.Equal(t, spawn, m.Agent.Spawn())
	assert.Empty(t, changes)
}

func TestPrefabReloadRejectsBadTuning(t *testing.T) {
	dir := usePrefabDir(t)

	w := ecs.NewWorld()
	e := addMutant(t, w, "m", mutant.DefaultConfig(), 0, 0, 0)
	NewMutantSystem().Update(w)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "mutant.yaml"), []byte("speed: -3\n"), 0o644))
	changes := make(chan prefabs.Change, 1)
	changes <- prefabs.Change{Name: "mutant.yaml"}
	NewPrefabReloadSystem(changes, nil).Update(w)

	m, _ := ecs.Get(w, e, component.MutantComponent.Kind())
	assert.Equal(t, 5.0, m.Agent.Config().Speed)
}

func TestPrefabReloadPartialEditKeepsDefaults(t *testing.T) {
	dir := usePrefabDir(t)

	w := ecs.NewWorld()
	e := addMutant(t, w, "m", mutant.DefaultConfig(), 0, 0, 0)
	NewMutantSystem().Update(w)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "mutant.yaml"), []byte("speed: 6\n"), 0o644))
	changes := make(chan prefabs.Change, 1)
	changes <- prefabs.Change{Name: "mutant.yaml"}
	NewPrefabReloadSystem(changes, nil).Update(w)

	m, _ := ecs.Get(w, e, component.MutantComponent.Kind())
	cfg := m.Agent.Config()
	assert.Equal(t, 6.0, cfg.Speed)
	assert.Equal(t, 10.0, cfg.DetectionRange)
	assert.Equal(t, 1.5, cfg.AttackCooldown)
}

func TestPrefabReloadSwapsScript(t *testing.T) {
	dir := usePrefabDir(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "scripts"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "scripts", "mutant_anim.tengo"),
		[]byte(`conditions := {enraged: signal.state == "chasing"}`), 0o644))

	w := ecs.NewWorld()
	e := w.CreateEntity()
	tree := anim.NewTree("m", nil, nil)
	require.NoError(t, ecs.Add(w, e, component.AnimationTreeComponent.Kind(), &component.AnimationTree{
		Tree:   tree,
		Script: "scripts/mutant_anim.tengo",
	}))

	changes := make(chan prefabs.Change, 1)
	changes <- prefabs.Change{Name: "scripts/mutant_anim.tengo", Script: true}
	NewPrefabReloadSystem(changes, nil).Update(w)

	tree.Apply(mutant.Signal{State: mutant.Chasing, Run: true})
	assert.True(t, tree.Condition("enraged"))
	assert.False(t, tree.Condition(anim.CondRun))
}

func TestPrefabReloadClosedChannel(t *testing.T) {
	changes := make(chan prefabs.Change)
	close(changes)
	s := NewPrefabReloadSystem(changes, nil)
	s.Update(ecs.NewWorld())
	assert.Nil(t, s.changes)
}

func TestPrefabReloadLogsWatcherErrors(t *testing.T) {
	hook := logtest.NewLocal(logger.Log)
	t.Cleanup(hook.Reset)

	errs := make(chan error, 2)
	errs <- errors.New("inotify overflow")
	s := NewPrefabReloadSystem(nil, errs)
	s.Update(ecs.NewWorld())

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "prefab watcher error", entry.Message)
	assert.EqualError(t, entry.Data[logrus.ErrorKey].(error), "inotify overflow")

	close(errs)
	s.Update(ecs.NewWorld())
	assert.Nil(t, s.errs)
}

func TestPipelineOrder(t *testing.T) {
	headless := NewPipeline(nil, nil)
	assert.Equal(t, []string{StagePlayer, StageMutant, StagePhysics, StageAnimation}, headless.Stages())

	full := NewPipeline(NewInputSystem(), &prefabs.Watcher{Changes: make(chan prefabs.Change)})
	assert.Equal(t, []string{
		StageInput, StagePlayer, StagePrefabReload, StageMutant, StagePhysics, StageAnimation,
	}, full.Stages())

	sys, ok := full.Stage(StageMutant)
	require.True(t, ok)
	assert.IsType(t, &MutantSystem{}, sys)
}
