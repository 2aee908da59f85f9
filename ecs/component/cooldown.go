package component

import "time"

// Cooldown is a one-shot countdown on the world clock. When Remaining reaches
// zero the component is removed and the entity's Dash is re-enabled.
type Cooldown struct {
	Remaining time.Duration
}

var CooldownComponent = NewComponent[Cooldown]()
