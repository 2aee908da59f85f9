package system

import (
	"github.com/milk9111/dasher/ecs"
	"github.com/milk9111/dasher/ecs/component"
)

// DashSystem displaces an entity by its dash distance along the last
// movement direction. An attempt consumes the cooldown even when the target
// is blocked.
type DashSystem struct{}

func NewDashSystem() *DashSystem {
	return &DashSystem{}
}

func (d *DashSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	a := arena(w)
	obstacles := obstacleRects(w)

	entities := w.Query(
		component.InputComponent.Kind(),
		component.DashComponent.Kind(),
		component.MoverComponent.Kind(),
		component.TransformComponent.Kind(),
		component.ColliderComponent.Kind(),
	)
	for _, e := range entities {
		in, _ := ecs.Get(w, e, component.InputComponent.Kind())
		if !in.DashPressed {
			continue
		}
		dash, _ := ecs.Get(w, e, component.DashComponent.Kind())
		mover, _ := ecs.Get(w, e, component.MoverComponent.Kind())
		if !dash.Available || (mover.Direction.X == 0 && mover.Direction.Y == 0) {
			continue
		}
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		col, _ := ecs.Get(w, e, component.ColliderComponent.Kind())

		target := mover.Direction.Mult(dash.Distance)
		evt := ecs.EventDash
		if !tryMove(t, *col, t.X+target.X, t.Y+target.Y, a, obstacles) {
			evt = ecs.EventDashBlocked
		}
		w.Events().Push(ecs.Event{Type: evt, Entity: e, X: t.X, Y: t.Y})

		startCooldown(w, e, dash)
	}
}
