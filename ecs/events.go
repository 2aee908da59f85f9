package ecs

// EventType names a gameplay event emitted during a tick.
type EventType string

const (
	EventMoveBlocked EventType = "move_blocked"
	EventDash        EventType = "dash"
	EventDashBlocked EventType = "dash_blocked"
	EventDashReady   EventType = "dash_ready"
	EventTeleport    EventType = "teleport"
)

// Event is a generic ECS event payload.
type Event struct {
	Type   EventType
	Entity Entity
	X, Y   float64
}

// EventQueue is a simple FIFO queue.
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

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
