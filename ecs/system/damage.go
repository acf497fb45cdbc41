package system

import (
	"go.uber.org/zap"

	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/logging"
)

// DamageSystem consumes pending hits recorded by the platform system. Each
// hit costs one health point and grants invulnerability frames; at zero
// health the entity is put back at the level spawn point.
type DamageSystem struct {
	log *zap.SugaredLogger
}

func NewDamageSystem() *DamageSystem {
	return &DamageSystem{log: logging.Named("damage")}
}

func (d *DamageSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.InvulnerableComponent.Kind(), func(e ecs.Entity, inv *component.Invulnerable) {
		inv.Frames--
		if inv.Frames <= 0 {
			_ = ecs.Remove(w, e, component.InvulnerableComponent.Kind())
		}
	})

	ecs.ForEach(w, component.PendingHitComponent.Kind(), func(e ecs.Entity, hit *component.PendingHit) {
		_ = ecs.Remove(w, e, component.PendingHitComponent.Kind())
		d.hit(w, e, ecs.Entity(hit.Actor))
	})
}

func (d *DamageSystem) hit(w *ecs.World, target, source ecs.Entity) {
	if ecs.Has(w, target, component.InvulnerableComponent.Kind()) {
		return
	}

	w.Events().Push(ecs.Event{Kind: ecs.EventHit, Source: source, Target: target})

	health, ok := ecs.Get(w, target, component.HealthComponent.Kind())
	if !ok {
		return
	}
	health.Current--
	d.log.Infow("hit", "target", target, "source", sourceName(w, source), "health", health.Current)

	if health.InvulnerableFrames > 0 {
		_ = ecs.Add(w, target, component.InvulnerableComponent.Kind(), &component.Invulnerable{Frames: health.InvulnerableFrames})
	}
	if health.Current <= 0 {
		health.Current = health.Initial
		d.respawn(w, target)
	}
}

func (d *DamageSystem) respawn(w *ecs.World, e ecs.Entity) {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return
	}
	level, ok := w.First(component.SpawnPointComponent.Kind())
	if !ok {
		return
	}
	spawn, ok := ecs.Get(w, level, component.SpawnPointComponent.Kind())
	if !ok {
		return
	}

	t.X = spawn.X
	t.Y = spawn.Y
	if body, ok := ecs.Get(w, e, component.PlatformBodyComponent.Kind()); ok {
		body.Vel = common.VelVec{}
		body.State = component.MoveAirborne
	}
	d.log.Infow("respawn", "entity", e, "x", t.X, "y", t.Y)
}
