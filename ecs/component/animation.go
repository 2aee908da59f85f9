package component

// Animation cycles through one of two fixed frame sequences.
type Animation struct {
	Idle    []string
	Walking []string
	Frame   int
}

var AnimationComponent = NewComponent[Animation]()

// Frames returns the sequence for the given motion state.
func (a *Animation) Frames(moving bool) []string {
	if moving {
		return a.Walking
	}
	return a.Idle
}
