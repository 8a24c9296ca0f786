package ecs

// System updates a world each tick.
type System interface {
	Update(w *World)
}

type stage struct {
	name   string
	system System
}

// Scheduler runs named stages in registration order.
type Scheduler struct {
	stages []stage
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Add appends a stage. Nil systems are ignored so optional stages can be
// registered unconditionally.
func (s *Scheduler) Add(name string, system System) *Scheduler {
	if system == nil {
		return s
	}
	s.stages = append(s.stages, stage{name: name, system: system})
	return s
}

// Update runs every stage once and advances the world tick.
func (s *Scheduler) Update(w *World) {
	for _, st := range s.stages {
		st.system.Update(w)
	}
	w.AdvanceTick()
}

// Stages lists stage names in run order.
func (s *Scheduler) Stages() []string {
	names := make([]string, len(s.stages))
	for i, st := range s.stages {
		names[i] = st.name
	}
	return names
}

// Stage returns the system registered under name.
func (s *Scheduler) Stage(name string) (System, bool) {
	for _, st := range s.stages {
		if st.name == name {
			return st.system, true
		}
	}
	return nil, false
}
