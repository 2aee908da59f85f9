package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/dasher/ecs"
	"github.com/milk9111/dasher/ecs/component"
)

// MotionSystem advances keyboard-driven entities by one fixed step per tick.
type MotionSystem struct{}

func NewMotionSystem() *MotionSystem {
	return &MotionSystem{}
}

func (m *MotionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	a := arena(w)
	obstacles := obstacleRects(w)

	ecs.ForEach4(w,
		component.InputComponent.Kind(),
		component.MoverComponent.Kind(),
		component.TransformComponent.Kind(),
		component.ColliderComponent.Kind(),
		func(e ecs.Entity, in *component.Input, mover *component.Mover, t *component.Transform, col *component.Collider) {
			dir := inputDirection(in)

			mover.Moving = dir.X != 0 || dir.Y != 0
			if mover.Moving {
				dir = dir.Normalize()
				mover.Direction = dir
			}

			x := t.X + dir.X*mover.StepSize
			y := t.Y + dir.Y*mover.StepSize
			if !tryMove(t, *col, x, y, a, obstacles) && mover.Moving {
				w.Events().Push(ecs.Event{Type: ecs.EventMoveBlocked, Entity: e, X: t.X, Y: t.Y})
			}
		})
}

// inputDirection maps held keys to a raw direction. When both keys of a pair
// are held the later one wins, down over up and right over left.
func inputDirection(in *component.Input) cp.Vector {
	var dir cp.Vector
	if in.Held[component.MoveUp] {
		dir.Y = -1
	}
	if in.Held[component.MoveLeft] {
		dir.X = -1
	}
	if in.Held[component.MoveDown] {
		dir.Y = 1
	}
	if in.Held[component.MoveRight] {
		dir.X = 1
	}
	return dir
}
