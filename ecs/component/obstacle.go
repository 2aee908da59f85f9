package component

import "github.com/milk9111/dasher/collision"

// Obstacle is a static blocking rectangle.
type Obstacle struct {
	Rect collision.Rect
}

var ObstacleComponent = NewComponent[Obstacle]()
