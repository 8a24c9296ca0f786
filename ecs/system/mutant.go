package system

import (
	"github.com/milk9111/mutant/common"
	"github.com/milk9111/mutant/ecs"
	"github.com/milk9111/mutant/ecs/component"
	"github.com/milk9111/mutant/logger"
	"github.com/milk9111/mutant/mutant"
	"github.com/milk9111/mutant/nav"
	"github.com/sirupsen/logrus"
)

// MutantStateChange is the payload of ecs.EventMutantStateChanged.
type MutantStateChange struct {
	Entity ecs.Entity
	Label  string
	From   mutant.State
	To     mutant.State
}

// MutantAttack is the payload of ecs.EventMutantAttack.
type MutantAttack struct {
	Entity  ecs.Entity
	Label   string
	Variant mutant.AttackVariant
}

// MutantSystem drives every Mutant entity. Agents are constructed the first
// time an entity is seen and bound to the player and nav grid as soon as
// those exist.
type MutantSystem struct {
	runtimes map[ecs.Entity]*mutantRuntime
}

type mutantRuntime struct {
	targeted bool
	player   ecs.Entity
	pathed   bool
	warned   bool
}

func NewMutantSystem() *MutantSystem {
	return &MutantSystem{runtimes: make(map[ecs.Entity]*mutantRuntime)}
}

func (s *MutantSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	for e := range s.runtimes {
		if !w.IsAlive(e) || !ecs.Has(w, e, component.MutantComponent.Kind()) {
			delete(s.runtimes, e)
		}
	}

	var target *transformTarget
	if player, ok := w.First(component.PlayerTagComponent.Kind()); ok && ecs.Has(w, player, component.TransformComponent.Kind()) {
		target = &transformTarget{w: w, e: player}
	}
	var grid *nav.Grid
	if ge, ok := w.First(component.NavGridComponent.Kind()); ok {
		ng, _ := ecs.Get(w, ge, component.NavGridComponent.Kind())
		grid = ng.Grid
	}

	dt := w.DeltaTime()
	entities := w.Query(
		component.MutantComponent.Kind(),
		component.TransformComponent.Kind(),
		component.CharacterBodyComponent.Kind(),
	)
	for _, e := range entities {
		m, _ := ecs.Get(w, e, component.MutantComponent.Kind())
		if m.Failed {
			continue
		}
		log := logger.Log.WithFields(logrus.Fields{"entity": e.String(), "mutant": m.Label})

		rt := s.runtimes[e]
		if rt == nil {
			rt = &mutantRuntime{}
			s.runtimes[e] = rt
		}

		if m.Agent == nil && !s.create(w, e, m, log) {
			continue
		}
		s.bind(w, e, m, rt, target, grid, log)

		prev := m.Agent.State()
		out := m.Agent.Tick(dt)
		m.Last = out

		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		t.Yaw = out.Yaw

		if out.State != prev {
			w.Events().Push(ecs.Event{
				Type: ecs.EventMutantStateChanged,
				Data: MutantStateChange{Entity: e, Label: m.Label, From: prev, To: out.State},
			})
		}
		if out.Signal.Pulse() {
			w.Events().Push(ecs.Event{
				Type: ecs.EventMutantAttack,
				Data: MutantAttack{Entity: e, Label: m.Label, Variant: out.Signal.Attack},
			})
		}
	}
}

func (s *MutantSystem) create(w *ecs.World, e ecs.Entity, m *component.Mutant, log *logrus.Entry) bool {
	cfg := m.Config
	if cfg.Label == "" {
		cfg.Label = m.Label
	}
	collab := mutant.Collaborators{Body: &characterBody{w: w, e: e}}
	if tree, ok := ecs.Get(w, e, component.AnimationTreeComponent.Kind()); ok && tree.Tree != nil {
		collab.Animator = tree.Tree
	}

	agent, err := mutant.New(cfg, collab)
	if err != nil {
		log.WithError(err).Error("mutant: cannot create agent")
		m.Failed = true
		return false
	}
	m.Agent = agent
	m.Config = cfg
	log.WithField("spawn", agent.Spawn().String()).Debug("mutant: agent created")
	return true
}

// bind attaches whatever collaborators exist. It rebinds when the player or
// nav grid shows up after the first tick, when the player goes away, and when
// a different player entity replaces it.
func (s *MutantSystem) bind(w *ecs.World, e ecs.Entity, m *component.Mutant, rt *mutantRuntime, target *transformTarget, grid *nav.Grid, log *logrus.Entry) {
	path := s.pathFor(w, e, grid)
	haveTarget := target != nil
	havePath := path != nil
	samePlayer := !haveTarget || rt.player == target.e
	if m.Agent.Bound() && rt.targeted == haveTarget && samePlayer && rt.pathed == havePath {
		return
	}

	var tq mutant.Target
	if haveTarget {
		tq = target
		rt.player = target.e
	}
	var pq mutant.PathQuery
	if havePath {
		pq = path
	}
	err := m.Agent.Bind(tq, pq)
	rt.targeted = haveTarget
	rt.pathed = havePath
	if err != nil && !rt.warned {
		log.WithError(err).Warn("mutant: missing collaborator")
		rt.warned = true
	}
	if err == nil {
		rt.warned = false
	}
}

func (s *MutantSystem) pathFor(w *ecs.World, e ecs.Entity, grid *nav.Grid) *nav.Agent {
	na, ok := ecs.Get(w, e, component.NavigationAgentComponent.Kind())
	if !ok {
		return nil
	}
	if na.Agent != nil {
		return na.Agent
	}
	if grid == nil {
		return nil
	}

	agent := nav.NewAgent(grid, func() common.Vec3 {
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			return common.Vec3{}
		}
		return t.Position()
	})
	if na.PathDesiredDistance > 0 {
		agent.PathDesiredDistance = na.PathDesiredDistance
	}
	if na.TargetDesiredDistance > 0 {
		agent.TargetDesiredDistance = na.TargetDesiredDistance
	}
	if na.RepathInterval > 0 {
		agent.RepathInterval = na.RepathInterval
	}
	if na.MaxNodes > 0 {
		agent.MaxNodes = na.MaxNodes
	}
	na.Agent = agent
	return agent
}

// transformTarget follows an entity's transform.
type transformTarget struct {
	w    *ecs.World
	e    ecs.Entity
	last common.Vec3
}

func (t *transformTarget) Position() common.Vec3 {
	if tr, ok := ecs.Get(t.w, t.e, component.TransformComponent.Kind()); ok {
		t.last = tr.Position()
	}
	return t.last
}

// characterBody exposes an entity's transform and CharacterBody as a
// mutant.Body. MoveAndSlide only records the request; PhysicsSystem commits it
// later in the same frame.
type characterBody struct {
	w *ecs.World
	e ecs.Entity
}

func (b *characterBody) Position() common.Vec3 {
	t, ok := ecs.Get(b.w, b.e, component.TransformComponent.Kind())
	if !ok {
		return common.Vec3{}
	}
	return t.Position()
}

func (b *characterBody) Velocity() common.Vec3 {
	body, ok := ecs.Get(b.w, b.e, component.CharacterBodyComponent.Kind())
	if !ok {
		return common.Vec3{}
	}
	return body.Velocity
}

func (b *characterBody) IsOnFloor() bool {
	body, ok := ecs.Get(b.w, b.e, component.CharacterBodyComponent.Kind())
	return ok && body.OnFloor
}

func (b *characterBody) MoveAndSlide(v common.Vec3) {
	if body, ok := ecs.Get(b.w, b.e, component.CharacterBodyComponent.Kind()); ok {
		body.Velocity = v
	}
}
