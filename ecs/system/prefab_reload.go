package system

import (
	"github.com/milk9111/mutant/anim"
	"github.com/milk9111/mutant/ecs"
	"github.com/milk9111/mutant/ecs/component"
	"github.com/milk9111/mutant/logger"
	"github.com/milk9111/mutant/prefabs"
	"github.com/sirupsen/logrus"
)

// PrefabReloadSystem applies prefab edits to live entities. Tuning changes go
// through Agent.Configure so spawn points and cooldown progress survive;
// script changes swap the animation mapper. Watcher errors are logged.
type PrefabReloadSystem struct {
	changes <-chan prefabs.Change
	errs    <-chan error
}

// NewPrefabReloadSystem drains changes and errs, usually a Watcher's Changes
// and Errors. Either may be nil.
func NewPrefabReloadSystem(changes <-chan prefabs.Change, errs <-chan error) *PrefabReloadSystem {
	return &PrefabReloadSystem{changes: changes, errs: errs}
}

func (p *PrefabReloadSystem) Update(w *ecs.World) {
	if p == nil || w == nil {
		return
	}
	p.drainErrors()
	for p.changes != nil {
		select {
		case c, ok := <-p.changes:
			if !ok {
				p.changes = nil
				return
			}
			p.apply(w, c)
		default:
			return
		}
	}
}

func (p *PrefabReloadSystem) drainErrors() {
	for p.errs != nil {
		select {
		case err, ok := <-p.errs:
			if !ok {
				p.errs = nil
				return
			}
			logger.Log.WithError(err).Warn("prefab watcher error")
		default:
			return
		}
	}
}

func (p *PrefabReloadSystem) apply(w *ecs.World, c prefabs.Change) {
	log := logger.Log.WithField("prefab", c.Name)
	if c.Script {
		p.reloadScript(w, c.Name, log)
		return
	}

	var spec *prefabs.MutantSpec
	ecs.ForEach(w, component.MutantComponent.Kind(), func(e ecs.Entity, m *component.Mutant) {
		if m.Prefab != c.Name {
			return
		}
		if spec == nil {
			s, err := prefabs.LoadMutantSpec(c.Name)
			if err != nil {
				log.WithError(err).Warn("prefab reload failed")
				return
			}
			spec = s
		}
		cfg := spec.Config(m.Label)
		if m.Agent != nil {
			if err := m.Agent.Configure(cfg); err != nil {
				log.WithError(err).Warn("prefab reload rejected")
				return
			}
		}
		m.Config = cfg
		log.WithField("mutant", m.Label).Info("mutant tuning reloaded")
	})
}

func (p *PrefabReloadSystem) reloadScript(w *ecs.World, name string, log *logrus.Entry) {
	var mapper *anim.ScriptMapper
	ecs.ForEach(w, component.AnimationTreeComponent.Kind(), func(e ecs.Entity, tree *component.AnimationTree) {
		if tree.Tree == nil || tree.Script == "" || prefabs.ScriptPath(tree.Script) != name {
			return
		}
		if mapper == nil {
			src, err := prefabs.LoadScript(name)
			if err != nil {
				log.WithError(err).Warn("script reload failed")
				return
			}
			m, err := anim.NewScriptMapper(name, src)
			if err != nil {
				log.WithError(err).Warn("script reload failed")
				return
			}
			mapper = m
		}
		tree.Tree.SetMapper(mapper.Clone())
		log.WithField("entity", e.String()).Info("animation script reloaded")
	})
}
