package entity

import (
	"fmt"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/prefabs"
)

// NewPlayerAt creates the player with its sprite top-left at pixel (x, y).
// Platform mode is entered separately by the platform system.
func NewPlayerAt(w *ecs.World, x, y int) (ecs.Entity, error) {
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return 0, fmt.Errorf("player: load spec: %w", err)
	}
	clr, err := prefabs.ParseHexColor(spec.Color)
	if err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}

	player := ecs.CreateEntity(w)
	if err := ecs.Add(w, player, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add player tag: %w", err)
	}
	if err := ecs.Add(w, player, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}
	if err := ecs.Add(w, player, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}
	if err := ecs.Add(w, player, component.FacingComponent.Kind(), &component.Facing{X: 1}); err != nil {
		return 0, fmt.Errorf("player: add facing: %w", err)
	}
	if err := ecs.Add(w, player, component.AnimationComponent.Kind(), &component.Animation{
		FrameCount: spec.Animation.FrameCount,
		FrameTicks: spec.Animation.FrameTicks,
	}); err != nil {
		return 0, fmt.Errorf("player: add animation: %w", err)
	}
	if err := ecs.Add(w, player, component.SpriteComponent.Kind(), &component.Sprite{
		Color:  clr,
		Width:  spec.Width,
		Height: spec.Height,
	}); err != nil {
		return 0, fmt.Errorf("player: add sprite: %w", err)
	}
	if err := ecs.Add(w, player, component.HealthComponent.Kind(), &component.Health{
		Initial:            spec.Health,
		Current:            spec.Health,
		InvulnerableFrames: spec.InvulnerableFrames,
	}); err != nil {
		return 0, fmt.Errorf("player: add health: %w", err)
	}

	return player, nil
}
