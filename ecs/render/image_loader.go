package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/dasher/assets"
	"github.com/milk9111/dasher/logging"
)

// LoadImage returns the cached image for path, loading it on first use.
// Paths that fail to load are remembered and return nil from then on; the
// failure is logged once.
func LoadImage(path string) *ebiten.Image {
	if path == "" {
		return nil
	}
	if img := GetImage(path); img != nil {
		return img
	}
	if isMissing(path) {
		return nil
	}
	img, err := assets.LoadImage(path)
	if err != nil {
		markMissing(path)
		logging.Log.Warnw("sprite frame unavailable", "path", path, "err", err)
		return nil
	}
	RegisterImage(path, img)
	return img
}
