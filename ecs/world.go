package ecs

import (
	"time"

	"github.com/milk9111/dasher/ecs/component"
)

// DefaultDelta is the fixed simulation step at ebiten's default 60 TPS.
const DefaultDelta = time.Second / 60

// World owns entities, component stores, system order and the simulation clock.
type World struct {
	entities  entityStore
	stores    map[component.ComponentID]*SparseSet
	scheduler Scheduler
	events    EventQueue

	delta time.Duration
	now   time.Duration
	ticks uint64
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{
		stores: make(map[component.ComponentID]*SparseSet),
		delta:  DefaultDelta,
	}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity kills an entity and drops all of its components.
func (w *World) DestroyEntity(e Entity) bool {
	if !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.Remove(e.id())
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

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	w.scheduler.Add(s)
}

// Update runs all systems once and then advances the clock.
func (w *World) Update() {
	if w == nil {
		return
	}
	w.scheduler.Update(w)
	w.Tick()
}

// Tick advances the clock by one step and drops undrained events.
func (w *World) Tick() {
	w.now += w.delta
	w.ticks++
	w.events.flush()
}

// Delta is the simulated time covered by one Update.
func (w *World) Delta() time.Duration {
	return w.delta
}

// SetDelta overrides the simulation step. Non-positive values are ignored.
func (w *World) SetDelta(d time.Duration) {
	if d > 0 {
		w.delta = d
	}
}

// Now returns the simulated time elapsed since the world was created.
func (w *World) Now() time.Duration {
	return w.now
}

// Ticks returns the number of completed updates.
func (w *World) Ticks() uint64 {
	return w.ticks
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// Query returns live entities that carry every given kind.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	sets := make([]*SparseSet, 0, len(kinds))
	for _, k := range kinds {
		s, ok := w.stores[k.ID()]
		if !ok {
			return nil
		}
		sets = append(sets, s)
	}
	// iterate smallest set
	smallest := 0
	for i, s := range sets {
		if s.Len() < sets[smallest].Len() {
			smallest = i
		}
	}
	var out []Entity
	for _, id := range sets[smallest].ids() {
		match := true
		for i, s := range sets {
			if i != smallest && !s.Has(id) {
				match = false
				break
			}
		}
		if !match {
			continue
		}
		if e, ok := w.entities.handle(id); ok {
			out = append(out, e)
		}
	}
	return out
}

// First returns the first live entity carrying kind.
func (w *World) First(kind component.Kind) (Entity, bool) {
	ents := w.Query(kind)
	if len(ents) == 0 {
		return 0, false
	}
	return ents[0], true
}

func (w *World) store(id component.ComponentID) *SparseSet {
	s, ok := w.stores[id]
	if !ok {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}
