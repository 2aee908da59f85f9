package system

import (
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/dasher/collision"
	"github.com/milk9111/dasher/ecs"
	"github.com/milk9111/dasher/ecs/component"
)

// fakeSource is an input.Source whose edges last for a single tick.
type fakeSource struct {
	pressed      map[ebiten.Key]bool
	justPressed  map[ebiten.Key]bool
	justReleased map[ebiten.Key]bool
	x, y         int
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		pressed:      map[ebiten.Key]bool{},
		justPressed:  map[ebiten.Key]bool{},
		justReleased: map[ebiten.Key]bool{},
	}
}

func (f *fakeSource) IsKeyPressed(k ebiten.Key) bool      { return f.pressed[k] }
func (f *fakeSource) IsKeyJustPressed(k ebiten.Key) bool  { return f.justPressed[k] }
func (f *fakeSource) IsKeyJustReleased(k ebiten.Key) bool { return f.justReleased[k] }
func (f *fakeSource) CursorPosition() (int, int)          { return f.x, f.y }

func (f *fakeSource) press(keys ...ebiten.Key) {
	for _, k := range keys {
		f.pressed[k] = true
		f.justPressed[k] = true
	}
}

func (f *fakeSource) release(keys ...ebiten.Key) {
	for _, k := range keys {
		f.pressed[k] = false
		f.justReleased[k] = true
	}
}

func (f *fakeSource) endTick() {
	f.justPressed = map[ebiten.Key]bool{}
	f.justReleased = map[ebiten.Key]bool{}
}

type fixture struct {
	w      *ecs.World
	src    *fakeSource
	player ecs.Entity
}

// newFixture builds a world with a 64x64 player at (x, y) inside a
// width x height arena.
func newFixture(t *testing.T, x, y, width, height float64, obstacles ...collision.Rect) *fixture {
	t.Helper()
	w := ecs.NewWorld()

	arenaEntity := w.CreateEntity()
	mustAdd(t, w, arenaEntity, component.ArenaComponent.Kind(), &component.Arena{Width: width, Height: height})
	for _, o := range obstacles {
		e := w.CreateEntity()
		mustAdd(t, w, e, component.ObstacleComponent.Kind(), &component.Obstacle{Rect: o})
	}

	p := w.CreateEntity()
	ctl := component.DefaultControls()
	mustAdd(t, w, p, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y})
	mustAdd(t, w, p, component.ColliderComponent.Kind(), &component.Collider{Width: 64, Height: 64})
	mustAdd(t, w, p, component.InputComponent.Kind(), &component.Input{})
	mustAdd(t, w, p, component.ControlsComponent.Kind(), &ctl)
	mustAdd(t, w, p, component.MoverComponent.Kind(), &component.Mover{StepSize: 2})
	mustAdd(t, w, p, component.DashComponent.Kind(), &component.Dash{Distance: 50, Cooldown: time.Second, Available: true})

	return &fixture{w: w, src: newFakeSource(), player: p}
}

func mustAdd[T any](t *testing.T, w *ecs.World, e ecs.Entity, kind component.ComponentKind[T], v *T) {
	t.Helper()
	if err := ecs.Add(w, e, kind, v); err != nil {
		t.Fatalf("add component: %v", err)
	}
}

// pipeline registers the gameplay systems in game order.
func (f *fixture) pipeline() *fixture {
	f.w.AddSystem(NewInputSystem(f.src))
	f.w.AddSystem(NewCooldownSystem())
	f.w.AddSystem(NewDashSystem())
	f.w.AddSystem(NewTeleportSystem())
	f.w.AddSystem(NewMotionSystem())
	return f
}

func (f *fixture) step() {
	f.w.Update()
	f.src.endTick()
}

func (f *fixture) transform() *component.Transform {
	t, _ := ecs.Get(f.w, f.player, component.TransformComponent.Kind())
	return t
}

func (f *fixture) mover() *component.Mover {
	m, _ := ecs.Get(f.w, f.player, component.MoverComponent.Kind())
	return m
}

func (f *fixture) input() *component.Input {
	in, _ := ecs.Get(f.w, f.player, component.InputComponent.Kind())
	return in
}

func (f *fixture) dash() *component.Dash {
	d, _ := ecs.Get(f.w, f.player, component.DashComponent.Kind())
	return d
}

// recorder keeps every event drained at the end of each tick.
type recorder struct {
	events []ecs.Event
}

func (r *recorder) Update(w *ecs.World) {
	r.events = append(r.events, w.Events().Drain()...)
}

func (r *recorder) count(typ ecs.EventType) int {
	n := 0
	for _, evt := range r.events {
		if evt.Type == typ {
			n++
		}
	}
	return n
}
