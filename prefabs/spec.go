package prefabs

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/dasher/ecs/component"
	"github.com/milk9111/dasher/input"
	"gopkg.in/yaml.v3"
)

const PlayerFile = "player.yaml"

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type PlayerSpec struct {
	Name      string        `yaml:"name"`
	StepSize  float64       `yaml:"step_size"`
	Dash      DashSpec      `yaml:"dash"`
	Animation AnimationSpec `yaml:"animation"`
	Transform TransformSpec `yaml:"transform"`
	Collider  ColliderSpec  `yaml:"collider"`
	Controls  ControlsSpec  `yaml:"controls"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec](PlayerFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type DashSpec struct {
	Distance   float64 `yaml:"distance"`
	CooldownMS int     `yaml:"cooldown_ms"`
}

func (d DashSpec) Cooldown() time.Duration {
	return time.Duration(d.CooldownMS) * time.Millisecond
}

type AnimationSpec struct {
	IntervalMS int      `yaml:"interval_ms"`
	Idle       []string `yaml:"idle"`
	Walking    []string `yaml:"walking"`
}

func (a AnimationSpec) Interval() time.Duration {
	return time.Duration(a.IntervalMS) * time.Millisecond
}

type TransformSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type ColliderSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type ControlsSpec struct {
	Up       string `yaml:"up"`
	Left     string `yaml:"left"`
	Down     string `yaml:"down"`
	Right    string `yaml:"right"`
	Dash     string `yaml:"dash"`
	Teleport string `yaml:"teleport"`
}

// Resolve maps key names onto a Controls binding. Blank names keep the
// default binding for that action.
func (c ControlsSpec) Resolve() (component.Controls, error) {
	ctl := component.DefaultControls()
	bindings := []struct {
		name string
		dst  *ebiten.Key
	}{
		{c.Up, &ctl.Move[component.MoveUp]},
		{c.Left, &ctl.Move[component.MoveLeft]},
		{c.Down, &ctl.Move[component.MoveDown]},
		{c.Right, &ctl.Move[component.MoveRight]},
		{c.Dash, &ctl.Dash},
		{c.Teleport, &ctl.Teleport},
	}
	for _, b := range bindings {
		if b.name == "" {
			continue
		}
		k, err := input.ParseKey(b.name)
		if err != nil {
			return ctl, fmt.Errorf("prefabs: controls: %w", err)
		}
		*b.dst = k
	}
	return ctl, nil
}
