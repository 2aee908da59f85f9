package system

import (
	"github.com/milk9111/dasher/ecs"
	"github.com/milk9111/dasher/ecs/component"
	"github.com/milk9111/dasher/logging"
)

// CooldownSystem counts attached cooldowns down on the world clock. A
// finished cooldown is removed and the entity's dash becomes available.
type CooldownSystem struct{}

func NewCooldownSystem() *CooldownSystem {
	return &CooldownSystem{}
}

func (s *CooldownSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.CooldownComponent.Kind(), func(e ecs.Entity, cd *component.Cooldown) {
		cd.Remaining -= w.Delta()
		if cd.Remaining > 0 {
			return
		}

		ecs.Remove(w, e, component.CooldownComponent.Kind())
		if dash, ok := ecs.Get(w, e, component.DashComponent.Kind()); ok {
			dash.Available = true
			w.Events().Push(ecs.Event{Type: ecs.EventDashReady, Entity: e})
		}
	})
}

// startCooldown attaches a dash cooldown and marks the dash unavailable. If
// the cooldown cannot be attached the dash stays available.
func startCooldown(w *ecs.World, e ecs.Entity, dash *component.Dash) bool {
	err := ecs.Add(w, e, component.CooldownComponent.Kind(), &component.Cooldown{Remaining: dash.Cooldown})
	if err != nil {
		logging.Log.Warnw("dash cooldown not attached", "entity", e, "error", err)
		return false
	}
	dash.Available = false
	return true
}
