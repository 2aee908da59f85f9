package render

import "github.com/hajimehoshi/ebiten/v2"

var (
	images  = map[string]*ebiten.Image{}
	missing = map[string]struct{}{}
)

// RegisterImage stores an image by key.
func RegisterImage(key string, img *ebiten.Image) {
	if key == "" || img == nil {
		return
	}
	images[key] = img
	delete(missing, key)
}

// GetImage returns a cached image by key.
func GetImage(key string) *ebiten.Image {
	if key == "" {
		return nil
	}
	return images[key]
}

// Forget drops every cached and missing entry so the next load hits the
// loader again. Used after assets change on disk.
func Forget() {
	images = map[string]*ebiten.Image{}
	missing = map[string]struct{}{}
}

func markMissing(key string) {
	missing[key] = struct{}{}
}

func isMissing(key string) bool {
	_, ok := missing[key]
	return ok
}
