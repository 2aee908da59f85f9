package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/dasher/ecs"
	"github.com/milk9111/dasher/ecs/component"
	"github.com/milk9111/dasher/ecs/render"
	"golang.org/x/image/colornames"
)

type RenderSystem struct {
	// Debug outlines colliders.
	Debug bool
}

func NewRenderSystem(debug bool) *RenderSystem {
	return &RenderSystem{Debug: debug}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil {
		return
	}

	screen.Fill(colornames.Darkslategray)

	ecs.ForEach(w, component.ObstacleComponent.Kind(), func(_ ecs.Entity, o *component.Obstacle) {
		vector.DrawFilledRect(screen,
			float32(o.Rect.X), float32(o.Rect.Y),
			float32(o.Rect.Width), float32(o.Rect.Height),
			colornames.Slategray, false)
	})

	ecs.ForEach3(w,
		component.TransformComponent.Kind(),
		component.ColliderComponent.Kind(),
		component.SpriteComponent.Kind(),
		func(_ ecs.Entity, t *component.Transform, col *component.Collider, s *component.Sprite) {
			// An unresolved frame draws nothing.
			if img := render.LoadImage(s.Path); img != nil {
				b := img.Bounds()
				op := &ebiten.DrawImageOptions{}
				op.GeoM.Scale(col.Width/float64(b.Dx()), col.Height/float64(b.Dy()))
				op.GeoM.Translate(t.X, t.Y)
				op.Filter = ebiten.FilterNearest
				screen.DrawImage(img, op)
			}

			if r.Debug {
				vector.StrokeRect(screen,
					float32(t.X), float32(t.Y),
					float32(col.Width), float32(col.Height),
					1, colornames.Yellow, false)
			}
		})
}
