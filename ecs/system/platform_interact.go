package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// interactAhead starts the script of the actor one tile ahead of a
// grounded body when the interact button is pressed.
func (s *PlatformSystem) interactAhead(f *platformFrame) {
	if s.actors == nil || !f.body.Grounded() || !f.input.APressed {
		return
	}

	tx := f.tileX - 1
	if f.facing.X == 1 {
		tx = f.tileX + 2
	}
	actor, ok := s.actors.ActorAtTile(f.w, tx, f.tileY, true)
	if !ok {
		return
	}
	a, ok := ecs.Get(f.w, actor, component.ActorComponent.Kind())
	if !ok || a.Script == "" {
		return
	}

	f.w.Events().Push(ecs.Event{
		Kind:   ecs.EventScriptStart,
		Source: actor,
		Target: f.entity,
		Script: a.Script,
	})
	s.log.Infow("interact", "actor", a.Name, "script", a.Script)
}

// dispatch runs after the position is final. A trigger under the body
// takes the frame; otherwise a damaging actor overlap is recorded as a
// pending hit unless the body is invulnerable.
func (s *PlatformSystem) dispatch(f *platformFrame) {
	if s.triggers != nil && s.triggers.ActivateTriggerAt(f.w, f.tileX, f.tileY) {
		return
	}
	if s.actors == nil {
		return
	}

	actor, ok := s.actors.ActorOverlapping(f.w, f.entity)
	if !ok {
		return
	}
	if inv, ok := ecs.Get(f.w, f.entity, component.InvulnerableComponent.Kind()); ok && inv.Frames > 0 {
		return
	}
	a, ok := ecs.Get(f.w, actor, component.ActorComponent.Kind())
	if !ok || a.CollisionGroup == 0 {
		return
	}

	if err := ecs.Add(f.w, f.entity, component.PendingHitComponent.Kind(), &component.PendingHit{Actor: uint64(actor)}); err != nil {
		s.log.Warnw("record hit", "entity", f.entity, "error", err)
	}
}
