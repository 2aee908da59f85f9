package entity

import (
	"fmt"

	"github.com/milk9111/dasher/ecs"
	"github.com/milk9111/dasher/ecs/component"
	"github.com/milk9111/dasher/prefabs"
)

// NewPlayer builds the controllable entity from its prefab spec.
func NewPlayer(w *ecs.World, spec *prefabs.PlayerSpec) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("player: nil spec")
	}
	ctl, err := spec.Controls.Resolve()
	if err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}

	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: spec.Transform.X, Y: spec.Transform.Y}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.ControlsComponent.Kind(), &ctl); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.MoverComponent.Kind(), &component.Mover{}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.DashComponent.Kind(), &component.Dash{Available: true}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.ColliderComponent.Kind(), &component.Collider{}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.AnimationComponent.Kind(), &component.Animation{}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{}); err != nil {
		return 0, err
	}

	if err := ApplyPlayerSpec(w, e, spec); err != nil {
		return 0, err
	}
	return e, nil
}

// ApplyPlayerSpec copies tuning from spec onto an existing player. Position,
// stored direction and dash availability are left alone so a hot reload
// does not teleport the player or reset a running cooldown.
func ApplyPlayerSpec(w *ecs.World, e ecs.Entity, spec *prefabs.PlayerSpec) error {
	if spec == nil {
		return fmt.Errorf("player: nil spec")
	}
	if !w.IsAlive(e) {
		return component.ErrEntityNotAlive
	}
	ctl, err := spec.Controls.Resolve()
	if err != nil {
		return fmt.Errorf("player: %w", err)
	}
	if c, ok := ecs.Get(w, e, component.ControlsComponent.Kind()); ok {
		*c = ctl
	}
	if mover, ok := ecs.Get(w, e, component.MoverComponent.Kind()); ok {
		mover.StepSize = spec.StepSize
	}
	if dash, ok := ecs.Get(w, e, component.DashComponent.Kind()); ok {
		dash.Distance = spec.Dash.Distance
		dash.Cooldown = spec.Dash.Cooldown()
	}
	if col, ok := ecs.Get(w, e, component.ColliderComponent.Kind()); ok {
		col.Width = spec.Collider.Width
		col.Height = spec.Collider.Height
	}
	if anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind()); ok {
		anim.Idle = append([]string(nil), spec.Animation.Idle...)
		anim.Walking = append([]string(nil), spec.Animation.Walking...)
		if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok && sprite.Path == "" && len(anim.Idle) > 0 {
			sprite.Path = anim.Idle[0]
		}
	}
	return nil
}
