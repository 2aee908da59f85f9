package component

import "github.com/jakecoffman/cp"

// Mover drives keyboard motion.
type Mover struct {
	StepSize float64
	// Direction is the last nonzero unit input direction, or zero once every
	// movement key has been released.
	Direction cp.Vector
	Moving    bool
}

var MoverComponent = NewComponent[Mover]()
