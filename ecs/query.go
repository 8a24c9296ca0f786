package ecs

import "github.com/milk9111/mutant/ecs/component"

// Query returns live entities holding every kind. The result is a fresh
// slice, so callers may add or remove components while iterating it.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	sets := make([]*SparseSet, 0, len(kinds))
	for _, k := range kinds {
		s := w.store(k.ID(), false)
		if s == nil || s.Len() == 0 {
			return nil
		}
		sets = append(sets, s)
	}

	// iterate the smallest set
	smallest := sets[0]
	for _, s := range sets[1:] {
		if s.Len() < smallest.Len() {
			smallest = s
		}
	}

	out := make([]Entity, 0, smallest.Len())
	for _, e := range smallest.Entities() {
		if !w.entities.isAlive(e) {
			continue
		}
		match := true
		for _, s := range sets {
			if s != smallest && !s.Has(e) {
				match = false
				break
			}
		}
		if match {
			out = append(out, e)
		}
	}
	return out
}

func (w *World) First(kind component.Kind) (Entity, bool) {
	if w == nil {
		return 0, false
	}
	s := w.store(kind.ID(), false)
	for _, e := range s.Entities() {
		if w.entities.isAlive(e) {
			return e, true
		}
	}
	return 0, false
}
