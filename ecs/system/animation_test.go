package system

import (
	"testing"
	"time"

	"github.com/milk9111/dasher/ecs"
	"github.com/milk9111/dasher/ecs/component"
)

func animationFixture(t *testing.T) (*fixture, *AnimationSystem) {
	t.Helper()
	f := newFixture(t, 100, 100, 1920, 1080)
	mustAdd(t, f.w, f.player, component.AnimationComponent.Kind(), &component.Animation{
		Idle:    []string{"idle0", "idle1", "idle2", "idle3"},
		Walking: []string{"walk0", "walk1"},
	})
	mustAdd(t, f.w, f.player, component.SpriteComponent.Kind(), &component.Sprite{Path: "idle0"})

	f.w.SetDelta(50 * time.Millisecond)
	anim := NewAnimationSystem(200 * time.Millisecond)
	f.w.AddSystem(anim)
	return f, anim
}

func (f *fixture) sprite() string {
	s, _ := ecs.Get(f.w, f.player, component.SpriteComponent.Kind())
	return s.Path
}

func TestAnimationIdleCycle(t *testing.T) {
	cases := []struct {
		fires int
		want  string
	}{
		{1, "idle0"},
		{2, "idle1"},
		{4, "idle3"},
		{5, "idle0"},
		{7, "idle2"},
	}
	for _, c := range cases {
		f, anim := animationFixture(t)
		anim.Start()
		// Four 50ms ticks per 200ms fire.
		for i := 0; i < c.fires*4; i++ {
			f.step()
		}
		if got := f.sprite(); got != c.want {
			t.Fatalf("after %d fires expected %s, got %s", c.fires, c.want, got)
		}
		a, _ := ecs.Get(f.w, f.player, component.AnimationComponent.Kind())
		if a.Frame != c.fires%4 {
			t.Fatalf("after %d fires expected index %d, got %d", c.fires, c.fires%4, a.Frame)
		}
	}
}

func TestAnimationSwitchesSequenceInBounds(t *testing.T) {
	f, anim := animationFixture(t)
	anim.Start()

	// Three idle fires leave the index at 3, past the walking sequence.
	for i := 0; i < 12; i++ {
		f.step()
	}
	f.mover().Moving = true
	for i := 0; i < 4; i++ {
		f.step()
	}
	if got := f.sprite(); got != "walk1" {
		t.Fatalf("expected wrapped walking frame walk1, got %s", got)
	}
	a, _ := ecs.Get(f.w, f.player, component.AnimationComponent.Kind())
	if a.Frame < 0 || a.Frame >= len(a.Walking) {
		t.Fatalf("frame index %d out of walking range", a.Frame)
	}

	f.mover().Moving = false
	for i := 0; i < 4; i++ {
		f.step()
	}
	if got := f.sprite(); got != "idle0" {
		t.Fatalf("expected idle0 after stopping, got %s", got)
	}
}

func TestAnimationStartIsIdempotent(t *testing.T) {
	f, anim := animationFixture(t)
	anim.Start()
	anim.Start()

	for i := 0; i < 4; i++ {
		f.step()
	}
	a, _ := ecs.Get(f.w, f.player, component.AnimationComponent.Kind())
	if a.Frame != 1 {
		t.Fatalf("expected a single cadence after double Start, got index %d", a.Frame)
	}
}

func TestAnimationStopHaltsFrames(t *testing.T) {
	f, anim := animationFixture(t)

	// Not started yet.
	for i := 0; i < 8; i++ {
		f.step()
	}
	if got := f.sprite(); got != "idle0" {
		t.Fatalf("expected no frames before Start, got %s", got)
	}

	anim.Start()
	for i := 0; i < 4; i++ {
		f.step()
	}
	anim.Stop()
	if anim.Running() {
		t.Fatalf("expected stopped")
	}
	for i := 0; i < 8; i++ {
		f.step()
	}
	a, _ := ecs.Get(f.w, f.player, component.AnimationComponent.Kind())
	if a.Frame != 1 {
		t.Fatalf("expected index frozen at 1, got %d", a.Frame)
	}
}

func TestAnimationEmptySequence(t *testing.T) {
	f, anim := animationFixture(t)
	a, _ := ecs.Get(f.w, f.player, component.AnimationComponent.Kind())
	a.Walking = nil
	f.mover().Moving = true
	anim.Start()

	for i := 0; i < 4; i++ {
		f.step()
	}
	if got := f.sprite(); got != "idle0" {
		t.Fatalf("expected sprite untouched with no walking frames, got %s", got)
	}
}
