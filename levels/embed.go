package levels

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.json
var LevelsFS embed.FS

const Default = "arena"

var ErrInvalidObstacle = errors.New("levels: invalid obstacle")

type Level struct {
	Width     float64    `json:"width"`
	Height    float64    `json:"height"`
	Obstacles []Obstacle `json:"obstacles,omitempty"`
}

type Obstacle struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// FileName normalizes a level name to its json basename.
func FileName(name string) string {
	if name == "" {
		name = Default
	}
	base := filepath.Base(filepath.ToSlash(name))
	if !strings.HasSuffix(strings.ToLower(base), ".json") {
		base += ".json"
	}
	return base
}

// Load reads a level by name, preferring ./levels on disk over the embedded copy.
func Load(name string) (*Level, error) {
	file := FileName(name)
	data, err := os.ReadFile(filepath.Join("levels", file))
	if err != nil {
		data, err = fs.ReadFile(LevelsFS, file)
	}
	if err != nil {
		return nil, fmt.Errorf("read level %s: %w", file, err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	for i, o := range lvl.Obstacles {
		if o.Width <= 0 || o.Height <= 0 {
			return nil, fmt.Errorf("%w: #%d has size %vx%v", ErrInvalidObstacle, i, o.Width, o.Height)
		}
	}
	return &lvl, nil
}
