// Package input abstracts keyboard and pointer polling so gameplay systems
// can be driven by ebiten at runtime and by fakes in tests.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Source reports key edges and the pointer position in screen space.
type Source interface {
	IsKeyPressed(k ebiten.Key) bool
	IsKeyJustPressed(k ebiten.Key) bool
	IsKeyJustReleased(k ebiten.Key) bool
	CursorPosition() (x, y int)
}

// Ebiten reads live input from the running game.
type Ebiten struct{}

func (Ebiten) IsKeyPressed(k ebiten.Key) bool      { return ebiten.IsKeyPressed(k) }
func (Ebiten) IsKeyJustPressed(k ebiten.Key) bool  { return inpututil.IsKeyJustPressed(k) }
func (Ebiten) IsKeyJustReleased(k ebiten.Key) bool { return inpututil.IsKeyJustReleased(k) }
func (Ebiten) CursorPosition() (int, int)          { return ebiten.CursorPosition() }
