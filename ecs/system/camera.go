package system

import (
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

type CameraSystem struct {
	ViewWidth  int
	ViewHeight int

	camEntity    ecs.Entity
	targetEntity ecs.Entity
}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{ViewWidth: common.BaseWidth, ViewHeight: common.BaseHeight}
}

// Update moves the camera so its target stays inside the deadzone around
// the view center, easing by the camera's smoothness and stopping at the
// level edges.
func (cs *CameraSystem) Update(w *ecs.World) {
	if !w.IsAlive(cs.camEntity) {
		cs.camEntity, _ = w.First(component.CameraComponent.Kind())
	}
	cam, ok := ecs.Get(w, cs.camEntity, component.CameraComponent.Kind())
	if !ok {
		return
	}

	if !w.IsAlive(cs.targetEntity) {
		cs.targetEntity = findEntityByNameOrTag(w, cam.TargetName)
	}
	target, ok := ecs.Get(w, cs.targetEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}

	// Sprites hang 8 px below Transform.Y and are centered on the body.
	width := 2 * common.TileSize
	if sprite, ok := ecs.Get(w, cs.targetEntity, component.SpriteComponent.Kind()); ok && sprite.Width > 0 {
		width = sprite.Width
	}
	focusX := float64(target.X + width/2)
	focusY := float64(target.Y)

	wantX := follow(cam.X, focusX-float64(cs.ViewWidth/2+cam.OffsetX), float64(cam.DeadzoneX))
	wantY := follow(cam.Y, focusY-float64(cs.ViewHeight/2+cam.OffsetY), float64(cam.DeadzoneY))

	t := cam.Smoothness
	if t <= 0 || t > 1 {
		t = 1
	}
	cam.X = common.Lerp(cam.X, wantX, t)
	cam.Y = common.Lerp(cam.Y, wantY, t)

	if level, ok := w.First(component.LevelBoundsComponent.Kind()); ok {
		if b, ok := ecs.Get(w, level, component.LevelBoundsComponent.Kind()); ok {
			cam.X = common.Clamp(cam.X, 0, max(0, float64(b.Width-cs.ViewWidth)))
			cam.Y = common.Clamp(cam.Y, 0, max(0, float64(b.Height-cs.ViewHeight)))
		}
	}
}

// follow returns the camera coordinate that keeps want within deadzone of
// current.
func follow(current, want, deadzone float64) float64 {
	switch d := want - current; {
	case d > deadzone:
		return want - deadzone
	case d < -deadzone:
		return want + deadzone
	}
	return current
}

func findEntityByNameOrTag(w *ecs.World, name string) ecs.Entity {
	if name == "player" || name == "" {
		if e, ok := w.First(component.PlayerTagComponent.Kind()); ok {
			return e
		}
	}
	found := ecs.NoEntity
	ecs.ForEach(w, component.ActorComponent.Kind(), func(e ecs.Entity, a *component.Actor) {
		if !found.Valid() && a.Name == name {
			found = e
		}
	})
	return found
}
