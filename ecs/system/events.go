package system

import (
	"github.com/milk9111/dasher/ecs"
	"github.com/milk9111/dasher/logging"
)

// EventLogSystem drains the tick's events into the debug log. It should run
// last so it sees everything pushed during the tick.
type EventLogSystem struct{}

func NewEventLogSystem() *EventLogSystem {
	return &EventLogSystem{}
}

func (s *EventLogSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	for _, ev := range w.Events().Drain() {
		logging.Log.Debugw("world event",
			"type", ev.Type,
			"entity", ev.Entity,
			"x", ev.X,
			"y", ev.Y,
			"tick", w.Ticks(),
		)
	}
}
