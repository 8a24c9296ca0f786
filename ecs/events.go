package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

const (
	EventMutantStateChanged = "mutant_state_changed"
	EventMutantAttack       = "mutant_attack"
)

// EventQueue is a simple FIFO queue. The host drains it after each tick.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
