package entity

import (
	"github.com/milk9111/dasher/collision"
	"github.com/milk9111/dasher/ecs"
	"github.com/milk9111/dasher/ecs/component"
	"github.com/milk9111/dasher/levels"
	"github.com/milk9111/dasher/logging"
)

// LoadLevelToWorld creates the arena and its obstacles. Any arena and
// obstacles already in the world are replaced.
func LoadLevelToWorld(w *ecs.World, lvl *levels.Level) error {
	for _, e := range w.Query(component.ArenaComponent.Kind()) {
		w.DestroyEntity(e)
	}
	for _, e := range w.Query(component.ObstacleComponent.Kind()) {
		w.DestroyEntity(e)
	}

	if lvl.Width <= 0 || lvl.Height <= 0 {
		logging.Log.Warnw("level has no usable size; positions will pin to the origin", "width", lvl.Width, "height", lvl.Height)
	}
	if len(lvl.Obstacles) == 0 {
		logging.Log.Warnw("level has no obstacles")
	}

	arenaEntity := w.CreateEntity()
	if err := ecs.Add(w, arenaEntity, component.ArenaComponent.Kind(), &component.Arena{Width: lvl.Width, Height: lvl.Height}); err != nil {
		return err
	}

	for _, o := range lvl.Obstacles {
		e := w.CreateEntity()
		err := ecs.Add(w, e, component.ObstacleComponent.Kind(), &component.Obstacle{
			Rect: collision.Rect{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height},
		})
		if err != nil {
			return err
		}
	}
	return nil
}
