package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

// Update steps walk and climb cycles and rebuilds sprite orientation when
// facing asked for a rerender.
func (a *AnimationSystem) Update(w *ecs.World) {
	ecs.ForEach2(w, component.AnimationComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, anim *component.Animation, sprite *component.Sprite) {
		if facing, ok := ecs.Get(w, e, component.FacingComponent.Kind()); ok {
			if facing.X != 0 {
				sprite.FacingLeft = facing.X < 0
			}
			if facing.Rerender {
				sprite.Climbing = facing.Vertical()
				anim.Reset()
				facing.Rerender = false
			}
		}

		if anim.Animate {
			anim.Advance()
		} else {
			anim.Reset()
		}
	})
}
