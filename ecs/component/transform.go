package component

// Transform is the top-left position of an entity in screen pixels. X is the
// left offset and Y the top offset.
type Transform struct {
	X float64
	Y float64
}

var TransformComponent = NewComponent[Transform]()
