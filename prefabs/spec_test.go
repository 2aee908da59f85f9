package prefabs

import (
	"errors"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/dasher/ecs/component"
	"github.com/milk9111/dasher/input"
)

func TestLoadPlayerSpec(t *testing.T) {
	spec, err := LoadPlayerSpec()
	if err != nil {
		t.Fatalf("load player spec: %v", err)
	}

	if spec.StepSize != 2 {
		t.Fatalf("expected step size 2, got %v", spec.StepSize)
	}
	if spec.Dash.Distance != 50 || spec.Dash.Cooldown() != time.Second {
		t.Fatalf("unexpected dash tuning: %+v", spec.Dash)
	}
	if spec.Animation.Interval() != 200*time.Millisecond {
		t.Fatalf("expected 200ms frame interval, got %v", spec.Animation.Interval())
	}
	if len(spec.Animation.Idle) != 6 || len(spec.Animation.Walking) != 6 {
		t.Fatalf("expected six idle and six walking frames, got %d/%d", len(spec.Animation.Idle), len(spec.Animation.Walking))
	}
	if spec.Transform.X != 900 || spec.Transform.Y != 350 {
		t.Fatalf("expected spawn at left=900 top=350, got %+v", spec.Transform)
	}
}

func TestControlsResolve(t *testing.T) {
	cases := []struct {
		name string
		spec ControlsSpec
		want component.Controls
	}{
		{
			name: "blank_uses_defaults",
			want: component.DefaultControls(),
		},
		{
			name: "case_insensitive_names",
			spec: ControlsSpec{Up: "I", Left: "j", Down: "K", Right: "l", Dash: "SPACE", Teleport: "t"},
			want: component.Controls{
				Move:     [4]ebiten.Key{ebiten.KeyI, ebiten.KeyJ, ebiten.KeyK, ebiten.KeyL},
				Dash:     ebiten.KeySpace,
				Teleport: ebiten.KeyT,
			},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := c.spec.Resolve()
			if err != nil {
				t.Fatalf("resolve: %v", err)
			}
			if got != c.want {
				t.Fatalf("expected %+v, got %+v", c.want, got)
			}
		})
	}

	if _, err := (ControlsSpec{Dash: "hyperdrive"}).Resolve(); !errors.Is(err, input.ErrUnknownKey) {
		t.Fatalf("expected ErrUnknownKey, got %v", err)
	}
}

func TestCleanPrefabPath(t *testing.T) {
	if got := cleanPrefabPath("prefabs/player.yaml"); got != "player.yaml" {
		t.Fatalf("expected prefix trimmed, got %q", got)
	}
	if got := cleanPrefabPath("player.yaml"); got != "player.yaml" {
		t.Fatalf("expected unchanged name, got %q", got)
	}
}
