package ecs

// SparseSet is a cache-friendly storage for one component kind keyed by
// entity id.
type SparseSet struct {
	denseEntities []Entity
	denseValues   []any
	sparse        []int
}

func (s *SparseSet) index(e Entity) (int, bool) {
	if s == nil {
		return 0, false
	}
	id := int(e.id())
	if id <= 0 || id-1 >= len(s.sparse) {
		return 0, false
	}
	idx := s.sparse[id-1]
	if idx < 0 || idx >= len(s.denseEntities) || s.denseEntities[idx] != e {
		return 0, false
	}
	return idx, true
}

// Has returns true if the entity exists in the set.
func (s *SparseSet) Has(e Entity) bool {
	_, ok := s.index(e)
	return ok
}

// Get returns the component for e, or nil.
func (s *SparseSet) Get(e Entity) any {
	idx, ok := s.index(e)
	if !ok {
		return nil
	}
	return s.denseValues[idx]
}

// Set inserts or updates a component for e.
func (s *SparseSet) Set(e Entity, v any) {
	if s == nil || e.id() == 0 {
		return
	}
	if idx, ok := s.index(e); ok {
		s.denseValues[idx] = v
		return
	}
	id := int(e.id())
	for len(s.sparse) < id {
		s.sparse = append(s.sparse, -1)
	}
	// a stale generation may still occupy the slot
	if old := s.sparse[id-1]; old >= 0 && old < len(s.denseEntities) && s.denseEntities[old].id() == e.id() {
		s.denseEntities[old] = e
		s.denseValues[old] = v
		return
	}
	s.denseEntities = append(s.denseEntities, e)
	s.denseValues = append(s.denseValues, v)
	s.sparse[id-1] = len(s.denseEntities) - 1
}

// Remove deletes the component for e if present.
func (s *SparseSet) Remove(e Entity) bool {
	idx, ok := s.index(e)
	if !ok {
		return false
	}
	last := len(s.denseEntities) - 1
	lastEntity := s.denseEntities[last]

	s.denseEntities[idx] = lastEntity
	s.denseValues[idx] = s.denseValues[last]
	s.sparse[lastEntity.id()-1] = idx

	s.denseEntities = s.denseEntities[:last]
	s.denseValues = s.denseValues[:last]
	s.sparse[e.id()-1] = -1
	return true
}

func (s *SparseSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.denseEntities)
}

// Entities returns the dense entity list.
func (s *SparseSet) Entities() []Entity {
	if s == nil {
		return nil
	}
	return s.denseEntities
}
