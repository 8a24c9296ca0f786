package ecs

import (
	"github.com/milk9111/mutant/common"
	"github.com/milk9111/mutant/ecs/component"
)

// World owns entities and their component stores.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	events   EventQueue
	dt       float64
	tick     uint64
}

// NewWorld creates an empty ECS world stepping at the fixed tick rate.
func NewWorld() *World {
	return &World{
		stores: make(map[component.ComponentID]*SparseSet),
		dt:     common.TickDelta,
	}
}

func CreateEntity(w *World) Entity {
	return w.CreateEntity()
}

func DestroyEntity(w *World, e Entity) bool {
	return w.DestroyEntity(e)
}

func IsAlive(w *World, e Entity) bool {
	return w.IsAlive(e)
}

// Entities returns every live entity.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.entities.all()
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity removes every component of e and retires its handle.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.Remove(e)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// DeltaTime is the simulated seconds per tick.
func (w *World) DeltaTime() float64 {
	if w == nil {
		return common.TickDelta
	}
	return w.dt
}

func (w *World) SetDeltaTime(dt float64) {
	if w == nil || dt <= 0 {
		return
	}
	w.dt = dt
}

// Tick returns how many times AdvanceTick was called.
func (w *World) Tick() uint64 {
	if w == nil {
		return 0
	}
	return w.tick
}

func (w *World) AdvanceTick() {
	if w == nil {
		return
	}
	w.tick++
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	s, ok := w.stores[id]
	if !ok && create {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}
