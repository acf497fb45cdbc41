package system

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// Boxes are shrunk by this much on every side so that neighbours sharing
// an edge do not count as overlapping.
const boxInset = 0.5

// ActorIndex answers actor lookups for the platform system. Actor boxes
// are anchored like the player: Transform.Y is the top of the bottom tile
// row, so an actor of height h spans [Y+8-h, Y+8).
type ActorIndex struct {
	// BodyWidth is the player's collision width, centered in the sprite.
	BodyWidth  int
	BodyHeight int
	// CenterOffset is the sprite-to-body horizontal offset.
	CenterOffset int
}

func NewActorIndex() *ActorIndex {
	return &ActorIndex{
		BodyWidth:    common.TileSize,
		BodyHeight:   2 * common.TileSize,
		CenterOffset: 4,
	}
}

func (a *ActorIndex) ActorAtTile(w *ecs.World, tx, ty int, interactive bool) (ecs.Entity, bool) {
	tile := pixelBox(tx*common.TileSize, ty*common.TileSize, common.TileSize, common.TileSize)
	return a.first(w, tile, func(actor *component.Actor) bool {
		return !interactive || actor.Interactive
	})
}

func (a *ActorIndex) ActorOverlapping(w *ecs.World, player ecs.Entity) (ecs.Entity, bool) {
	t, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return ecs.NoEntity, false
	}
	body := pixelBox(t.X+a.CenterOffset, t.Y+common.TileSize-a.BodyHeight, a.BodyWidth, a.BodyHeight)
	return a.first(w, body, func(*component.Actor) bool { return true })
}

func (a *ActorIndex) first(w *ecs.World, box cp.BB, match func(*component.Actor) bool) (ecs.Entity, bool) {
	found := ecs.NoEntity
	ecs.ForEach2(w, component.ActorComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, actor *component.Actor, t *component.Transform) {
		if found.Valid() || !match(actor) {
			return
		}
		if actorBox(actor, t).Intersects(box) {
			found = e
		}
	})
	return found, found.Valid()
}

func actorBox(actor *component.Actor, t *component.Transform) cp.BB {
	w, h := actor.Width, actor.Height
	if w <= 0 {
		w = common.TileSize
	}
	if h <= 0 {
		h = common.TileSize
	}
	return pixelBox(t.X, t.Y+common.TileSize-h, w, h)
}

// pixelBox builds an inset box from a top-left corner and a size. Y grows
// downward, so B is the top edge numerically.
func pixelBox(x, y, w, h int) cp.BB {
	return cp.BB{
		L: float64(x) + boxInset,
		B: float64(y) + boxInset,
		R: float64(x+w) - boxInset,
		T: float64(y+h) - boxInset,
	}
}
