package component

// Sprite references the image currently shown for an entity.
type Sprite struct {
	Path string
}

var SpriteComponent = NewComponent[Sprite]()
