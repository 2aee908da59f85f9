package system

import (
	"github.com/milk9111/dasher/ecs"
	"github.com/milk9111/dasher/ecs/component"
)

// TeleportSystem moves an entity to the pointer, clamped to the container.
// Obstacles are not checked, unlike motion and dash.
type TeleportSystem struct{}

func NewTeleportSystem() *TeleportSystem {
	return &TeleportSystem{}
}

func (s *TeleportSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	a := arena(w)
	ecs.ForEach3(w,
		component.InputComponent.Kind(),
		component.TransformComponent.Kind(),
		component.ColliderComponent.Kind(),
		func(e ecs.Entity, in *component.Input, t *component.Transform, col *component.Collider) {
			if !in.TeleportPressed {
				return
			}
			t.X, t.Y = clampToArena(in.CursorX, in.CursorY, *col, a)
			w.Events().Push(ecs.Event{Type: ecs.EventTeleport, Entity: e, X: t.X, Y: t.Y})
		})
}
