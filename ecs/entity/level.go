package entity

import (
	"fmt"
	"strings"

	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/levels"
)

// LoadLevelToWorld creates the level entity (bounds, spawn point, clock)
// and every actor, trigger and camera placed in lvl. A camera following
// the player is added when the level places none. It returns the level
// entity.
func LoadLevelToWorld(w *ecs.World, lvl *levels.Level) (ecs.Entity, error) {
	if lvl == nil {
		return 0, fmt.Errorf("level: nil level")
	}

	level := ecs.CreateEntity(w)
	width, height := lvl.PixelSize()
	if err := ecs.Add(w, level, component.LevelBoundsComponent.Kind(), &component.LevelBounds{Width: width, Height: height}); err != nil {
		return 0, fmt.Errorf("level: add bounds: %w", err)
	}
	sx, sy := lvl.GetSpawnPosition()
	if err := ecs.Add(w, level, component.SpawnPointComponent.Kind(), &component.SpawnPoint{X: sx, Y: sy}); err != nil {
		return 0, fmt.Errorf("level: add spawn point: %w", err)
	}
	if err := ecs.Add(w, level, component.GameTimeComponent.Kind(), &component.GameTime{}); err != nil {
		return 0, fmt.Errorf("level: add game time: %w", err)
	}

	hasCamera := false
	for _, ent := range lvl.Entities {
		switch strings.ToLower(ent.Type) {
		case "actor":
			if _, err := NewActor(w, ent); err != nil {
				return 0, err
			}
		case "trigger":
			if _, err := NewTrigger(w, ent); err != nil {
				return 0, err
			}
		case "camera":
			if _, err := NewCamera(w, ent.PropString("target", "player"), propFloat(ent, "smoothness")); err != nil {
				return 0, err
			}
			hasCamera = true
		default:
			// Unknown entity type; ignore for now.
		}
	}

	if !hasCamera {
		if _, err := NewCamera(w, "player", 0); err != nil {
			return 0, err
		}
	}
	return level, nil
}

// NewActor places an actor with its bottom-left tile at the entity's cell.
func NewActor(w *ecs.World, ent levels.Entity) (ecs.Entity, error) {
	name := ent.PropString("name", "actor")
	actor := ecs.CreateEntity(w)
	if err := ecs.Add(w, actor, component.ActorComponent.Kind(), &component.Actor{
		Name:           name,
		CollisionGroup: uint8(ent.PropInt("collision_group", 0)),
		Interactive:    ent.PropBool("interactive", false),
		Script:         ent.PropString("script", ""),
		Width:          ent.PropInt("w", common.TileSize),
		Height:         ent.PropInt("h", common.TileSize),
	}); err != nil {
		return 0, fmt.Errorf("actor %s: add actor: %w", name, err)
	}
	if err := ecs.Add(w, actor, component.TransformComponent.Kind(), &component.Transform{
		X: ent.X * common.TileSize,
		Y: ent.Y * common.TileSize,
	}); err != nil {
		return 0, fmt.Errorf("actor %s: add transform: %w", name, err)
	}
	return actor, nil
}

// NewTrigger places a trigger zone whose top-left tile is the entity's
// cell. Its size is in tiles.
func NewTrigger(w *ecs.World, ent levels.Entity) (ecs.Entity, error) {
	name := ent.PropString("name", "trigger")
	trig := ecs.CreateEntity(w)
	if err := ecs.Add(w, trig, component.TriggerComponent.Kind(), &component.Trigger{
		Name:   name,
		TileX:  ent.X,
		TileY:  ent.Y,
		Width:  max(1, ent.PropInt("w", 1)),
		Height: max(1, ent.PropInt("h", 1)),
		Script: ent.PropString("script", ""),
	}); err != nil {
		return 0, fmt.Errorf("trigger %s: add trigger: %w", name, err)
	}
	return trig, nil
}

func propFloat(ent levels.Entity, key string) float64 {
	if v, ok := ent.Props[key].(float64); ok {
		return v
	}
	return 0
}
