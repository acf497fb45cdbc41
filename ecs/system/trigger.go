package system

import (
	"go.uber.org/zap"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/logging"
)

// TriggerIndex fires trigger zones. A trigger fires once when the player's
// tile enters it and re-arms after the player leaves.
type TriggerIndex struct {
	log *zap.SugaredLogger
}

func NewTriggerIndex() *TriggerIndex {
	return &TriggerIndex{log: logging.Named("trigger")}
}

func (ti *TriggerIndex) ActivateTriggerAt(w *ecs.World, tx, ty int) bool {
	player, _ := w.First(component.PlayerTagComponent.Kind())

	fired := false
	ecs.ForEach(w, component.TriggerComponent.Kind(), func(e ecs.Entity, trig *component.Trigger) {
		if !trig.Contains(tx, ty) {
			trig.Occupied = false
			return
		}
		if trig.Occupied || fired {
			return
		}
		trig.Occupied = true
		fired = true

		w.Events().Push(ecs.Event{Kind: ecs.EventTriggerFired, Source: e, Target: player})
		if trig.Script != "" {
			w.Events().Push(ecs.Event{Kind: ecs.EventScriptStart, Source: e, Target: player, Script: trig.Script})
		}
		ti.log.Infow("trigger", "name", trig.Name, "tile_x", tx, "tile_y", ty)
	})
	return fired
}
