package entity

import (
	"fmt"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/prefabs"
)

const defaultSmoothness = 0.15

// NewCamera creates a camera following the entity named target ("player"
// follows the player). Deadzone defaults come from the platform tuning.
func NewCamera(w *ecs.World, target string, smoothness float64) (ecs.Entity, error) {
	spec, err := prefabs.LoadPlatformSpec()
	if err != nil {
		return 0, fmt.Errorf("camera: load spec: %w", err)
	}

	if smoothness == 0 {
		smoothness = spec.Camera.Smoothness
	}
	if smoothness == 0 {
		smoothness = defaultSmoothness
	}

	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.CameraTagComponent.Kind(), &component.CameraTag{}); err != nil {
		return 0, fmt.Errorf("camera: add camera tag: %w", err)
	}
	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), &component.Camera{
		TargetName: target,
		Smoothness: smoothness,
		DeadzoneX:  spec.Camera.DeadzoneX,
		DeadzoneY:  spec.Camera.DeadzoneY,
	}); err != nil {
		return 0, fmt.Errorf("camera: add camera component: %w", err)
	}

	return camera, nil
}
