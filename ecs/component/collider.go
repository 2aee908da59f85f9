package component

import "github.com/milk9111/dasher/collision"

// Collider is the entity's extent, anchored at its Transform.
type Collider struct {
	Width  float64
	Height float64
}

var ColliderComponent = NewComponent[Collider]()

// RectAt returns the collider's rect placed at x, y.
func (c Collider) RectAt(x, y float64) collision.Rect {
	return collision.Rect{X: x, Y: y, Width: c.Width, Height: c.Height}
}
