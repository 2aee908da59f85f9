package component

// Arena stores the size of the play container. Positions are clamped to it.
type Arena struct {
	Width  float64
	Height float64
}

var ArenaComponent = NewComponent[Arena]()
