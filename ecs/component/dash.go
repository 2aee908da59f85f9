package component

import "time"

// Dash is an instant displacement along Mover.Direction.
type Dash struct {
	Distance float64
	Cooldown time.Duration
	// Available is false exactly while a Cooldown is attached.
	Available bool
}

var DashComponent = NewComponent[Dash]()
