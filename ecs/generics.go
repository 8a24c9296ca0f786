package ecs

import "github.com/milk9111/mutant/ecs/component"

// Add stores value for e, replacing any previous value of the same kind.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if !w.IsAlive(e) {
		return component.ErrEntityNotAlive
	}
	w.store(kind.ID(), true).Set(e, value)
	return nil
}

func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if w == nil {
		return false
	}
	s := w.store(kind.ID(), false)
	if s == nil {
		return false
	}
	return s.Remove(e)
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if w == nil || !w.IsAlive(e) {
		return false
	}
	return w.store(kind.ID(), false).Has(e)
}

// Get returns the stored pointer so callers can mutate in place.
func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if w == nil || !w.IsAlive(e) {
		return nil, false
	}
	v, ok := w.store(kind.ID(), false).Get(e).(*T)
	return v, ok
}

func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(e Entity, v *T)) {
	for _, e := range w.Query(kind) {
		v, ok := Get(w, e, kind)
		if !ok {
			continue
		}
		fn(e, v)
	}
}

func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(e Entity, a *A, b *B)) {
	for _, e := range w.Query(ka, kb) {
		a, okA := Get(w, e, ka)
		b, okB := Get(w, e, kb)
		if !okA || !okB {
			continue
		}
		fn(e, a, b)
	}
}

func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(e Entity, a *A, b *B, c *C)) {
	for _, e := range w.Query(ka, kb, kc) {
		a, okA := Get(w, e, ka)
		b, okB := Get(w, e, kb)
		c, okC := Get(w, e, kc)
		if !okA || !okB || !okC {
			continue
		}
		fn(e, a, b, c)
	}
}

func ForEach4[A, B, C, D any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], kd component.ComponentKind[D], fn func(e Entity, a *A, b *B, c *C, d *D)) {
	for _, e := range w.Query(ka, kb, kc, kd) {
		a, okA := Get(w, e, ka)
		b, okB := Get(w, e, kb)
		c, okC := Get(w, e, kc)
		d, okD := Get(w, e, kd)
		if !okA || !okB || !okC || !okD {
			continue
		}
		fn(e, a, b, c, d)
	}
}

// First returns the first live entity holding kind.
func First(w *World, kind component.Kind) (Entity, bool) {
	return w.First(kind)
}
