package system

import (
	"github.com/milk9111/dasher/collision"
	"github.com/milk9111/dasher/common"
	"github.com/milk9111/dasher/ecs"
	"github.com/milk9111/dasher/ecs/component"
)

// obstacleRects collects every obstacle in the world.
func obstacleRects(w *ecs.World) []collision.Rect {
	var rects []collision.Rect
	ecs.ForEach(w, component.ObstacleComponent.Kind(), func(_ ecs.Entity, o *component.Obstacle) {
		rects = append(rects, o.Rect)
	})
	return rects
}

// arena returns the play container. A world without one has a zero-size
// container, which pins everything to the origin.
func arena(w *ecs.World) component.Arena {
	e, ok := w.First(component.ArenaComponent.Kind())
	if !ok {
		return component.Arena{}
	}
	a, _ := ecs.Get(w, e, component.ArenaComponent.Kind())
	return *a
}

// clampToArena keeps a collider of the given size inside the container.
func clampToArena(x, y float64, col component.Collider, a component.Arena) (float64, float64) {
	return common.Clamp(x, 0, a.Width-col.Width), common.Clamp(y, 0, a.Height-col.Height)
}

// tryMove clamps the target and commits it unless it overlaps an obstacle.
func tryMove(t *component.Transform, col component.Collider, x, y float64, a component.Arena, obstacles []collision.Rect) bool {
	x, y = clampToArena(x, y, col, a)
	if collision.Blocked(col.RectAt(x, y), obstacles) {
		return false
	}
	t.X = x
	t.Y = y
	return true
}
