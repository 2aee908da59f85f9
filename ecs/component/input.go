package component

import "github.com/hajimehoshi/ebiten/v2"

// Move indexes the four tracked movement keys.
type Move int

const (
	MoveUp Move = iota
	MoveLeft
	MoveDown
	MoveRight
	moveCount
)

// Input stores the key state table and per-tick action edges for an entity.
type Input struct {
	Held            [moveCount]bool
	DashPressed     bool
	TeleportPressed bool
	// CursorX/Y are the last pointer position relative to the container.
	CursorX float64
	CursorY float64
}

var InputComponent = NewComponent[Input]()

// AnyHeld reports whether any movement key is down.
func (in *Input) AnyHeld() bool {
	for _, h := range in.Held {
		if h {
			return true
		}
	}
	return false
}

// Controls binds physical keys to the entity's actions.
type Controls struct {
	Move     [moveCount]ebiten.Key
	Dash     ebiten.Key
	Teleport ebiten.Key
}

var ControlsComponent = NewComponent[Controls]()

// DefaultControls is WASD, Shift to dash and R to teleport.
func DefaultControls() Controls {
	return Controls{
		Move:     [moveCount]ebiten.Key{ebiten.KeyW, ebiten.KeyA, ebiten.KeyS, ebiten.KeyD},
		Dash:     ebiten.KeyShift,
		Teleport: ebiten.KeyR,
	}
}
