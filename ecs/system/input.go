package system

import (
	"github.com/milk9111/dasher/ecs"
	"github.com/milk9111/dasher/ecs/component"
	"github.com/milk9111/dasher/input"
)

// InputSystem turns key edges into the entity key table and action flags.
type InputSystem struct {
	source input.Source
}

func NewInputSystem(source input.Source) *InputSystem {
	return &InputSystem{source: source}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil || i.source == nil {
		return
	}

	cx, cy := i.source.CursorPosition()

	ecs.ForEach2(w, component.InputComponent.Kind(), component.ControlsComponent.Kind(), func(e ecs.Entity, in *component.Input, ctl *component.Controls) {
		in.CursorX = float64(cx)
		in.CursorY = float64(cy)

		// The table follows the live key state as well as the edges, so a
		// release missed while the world was not updating still lands.
		released := false
		for m, key := range ctl.Move {
			down := i.source.IsKeyPressed(key) || i.source.IsKeyJustPressed(key)
			if i.source.IsKeyJustReleased(key) || (in.Held[m] && !down) {
				released = true
			}
			in.Held[m] = down
		}

		in.DashPressed = i.source.IsKeyJustPressed(ctl.Dash)
		in.TeleportPressed = i.source.IsKeyJustPressed(ctl.Teleport)
		released = released ||
			i.source.IsKeyJustReleased(ctl.Dash) ||
			i.source.IsKeyJustReleased(ctl.Teleport)

		// Any key-up with no movement key left down clears the stored
		// direction, so a later dash with nothing held does nothing.
		if released && !in.AnyHeld() {
			if mover, ok := ecs.Get(w, e, component.MoverComponent.Kind()); ok {
				mover.Direction.X = 0
				mover.Direction.Y = 0
				mover.Moving = false
			}
		}
	})
}
