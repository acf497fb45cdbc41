package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// ClockSystem advances the scene frame counter.
type ClockSystem struct{}

func NewClockSystem() *ClockSystem {
	return &ClockSystem{}
}

func (c *ClockSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.GameTimeComponent.Kind(), func(_ ecs.Entity, t *component.GameTime) {
		t.Frame++
	})
}
