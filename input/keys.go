package input

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

var ErrUnknownKey = errors.New("input: unknown key")

// ParseKey resolves a key name such as "w", "W" or "Shift". Matching is
// case-insensitive.
func ParseKey(name string) (ebiten.Key, error) {
	var k ebiten.Key
	clean := strings.ToLower(strings.TrimSpace(name))
	if clean == "" {
		return k, fmt.Errorf("%w: empty name", ErrUnknownKey)
	}
	if err := k.UnmarshalText([]byte(clean)); err != nil {
		return k, fmt.Errorf("%w: %q", ErrUnknownKey, name)
	}
	return k, nil
}
