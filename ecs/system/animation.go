package system

import (
	"time"

	"github.com/milk9111/dasher/ecs"
	"github.com/milk9111/dasher/ecs/component"
	"github.com/milk9111/dasher/timer"
)

// AnimationSystem swaps sprite frames on its own interval, independent of
// the motion step. It does nothing until Start is called.
type AnimationSystem struct {
	interval *timer.Interval
}

func NewAnimationSystem(period time.Duration) *AnimationSystem {
	return &AnimationSystem{interval: timer.NewInterval(period)}
}

// Start begins cycling frames, cancelling any schedule already running.
func (a *AnimationSystem) Start() { a.interval.Start() }

// Stop halts frame cycling.
func (a *AnimationSystem) Stop() { a.interval.Stop() }

func (a *AnimationSystem) Running() bool { return a.interval.Running() }

// SetPeriod changes the frame period.
func (a *AnimationSystem) SetPeriod(d time.Duration) { a.interval.SetPeriod(d) }

func (a *AnimationSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	for n := a.interval.Advance(w.Delta()); n > 0; n-- {
		a.step(w)
	}
}

func (a *AnimationSystem) step(w *ecs.World) {
	ecs.ForEach2(w, component.AnimationComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, anim *component.Animation, sprite *component.Sprite) {
		moving := false
		if mover, ok := ecs.Get(w, e, component.MoverComponent.Kind()); ok {
			moving = mover.Moving
		}

		frames := anim.Frames(moving)
		if len(frames) == 0 {
			return
		}
		// The other sequence may be longer, so wrap before indexing.
		anim.Frame %= len(frames)
		sprite.Path = frames[anim.Frame]
		anim.Frame = (anim.Frame + 1) % len(frames)
	})
}
