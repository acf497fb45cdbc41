package system

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/logging"
)

// ErrNoTransform is returned when an entity without a position is put into
// platform mode.
var ErrNoTransform = errors.New("entity has no transform")

// TileMap answers collision masks by tile coordinate. Coordinates outside
// the map must read as an empty tile.
type TileMap interface {
	TileAt(x, y int) levels.Tile
}

// ActorRegistry finds actors for the platform system.
type ActorRegistry interface {
	// ActorAtTile returns the first actor covering tile (tx, ty). With
	// interactive set only actors that answer the interact button match.
	ActorAtTile(w *ecs.World, tx, ty int, interactive bool) (ecs.Entity, bool)
	// ActorOverlapping returns the first actor whose box overlaps player.
	ActorOverlapping(w *ecs.World, player ecs.Entity) (ecs.Entity, bool)
}

// TriggerRegistry activates trigger zones. ActivateTriggerAt reports
// whether a trigger fired for tile (tx, ty).
type TriggerRegistry interface {
	ActivateTriggerAt(w *ecs.World, tx, ty int) bool
}

// PlatformSystem moves entities in platform mode: walking, running,
// jumping and climbing over a tile map, one fixed step per frame.
type PlatformSystem struct {
	tiles    TileMap
	actors   ActorRegistry
	triggers TriggerRegistry
	config   component.Platformer
	log      *zap.SugaredLogger
}

func NewPlatformSystem(tiles TileMap, actors ActorRegistry, triggers TriggerRegistry) *PlatformSystem {
	return &PlatformSystem{
		tiles:    tiles,
		actors:   actors,
		triggers: triggers,
		config:   DefaultPlatformer(),
		log:      logging.Named("platform"),
	}
}

// DefaultPlatformer returns the stock movement tuning.
func DefaultPlatformer() component.Platformer {
	return component.Platformer{
		MinWalkVel:      0x130,
		WalkAcc:         0x98,
		RunAcc:          0xe4,
		ReleaseDec:      0xd0,
		MaxWalkVel:      0x1900,
		MaxRunVel:       0x2900,
		JumpVel:         0x4000,
		HoldGrav:        0x200,
		Grav:            0x700,
		MaxFallVel:      0x4e20,
		SkidDec:         0x1a0,
		SkidTurnVel:     0x900,
		JumpMomentum:    0x98,
		CenterOffset:    4,
		CeilingWindow:   32,
		CameraDeadzoneX: 4,
		CameraDeadzoneY: 16,
	}
}

// SetTiles swaps the map, e.g. after a level load.
func (s *PlatformSystem) SetTiles(tiles TileMap) {
	s.tiles = tiles
}

// SetConfig replaces the tuning used by Start and pushes it to every
// entity already in platform mode.
func (s *PlatformSystem) SetConfig(w *ecs.World, cfg component.Platformer) {
	s.config = cfg
	if w == nil {
		return
	}
	ecs.ForEach(w, component.PlatformerComponent.Kind(), func(_ ecs.Entity, p *component.Platformer) {
		*p = cfg
	})
}

// Start puts e into platform mode from its current pixel position.
func (s *PlatformSystem) Start(w *ecs.World, e ecs.Entity) error {
	transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return fmt.Errorf("platform: start %v: %w", e, ErrNoTransform)
	}

	cfg, ok := ecs.Get(w, e, component.PlatformerComponent.Kind())
	if !ok {
		cfg = new(component.Platformer)
		*cfg = s.config
		if err := ecs.Add(w, e, component.PlatformerComponent.Kind(), cfg); err != nil {
			return err
		}
	}

	facing, ok := ecs.Get(w, e, component.FacingComponent.Kind())
	if !ok {
		facing = &component.Facing{}
		if err := ecs.Add(w, e, component.FacingComponent.Kind(), facing); err != nil {
			return err
		}
	}

	body := &component.PlatformBody{
		Pos: common.PosVec{
			X: common.PosFromPixel(transform.X + cfg.CenterOffset),
			Y: common.PosFromPixel(transform.Y),
		},
		State: component.MoveAirborne,
	}

	if facing.X == 0 {
		facing.Set(1, 0)
	}
	if s.tileAt(body.Pos.X.Tile(), body.Pos.Y.Tile()).Has(levels.PropLadder) {
		body.State = component.MoveOnLadder
		facing.Set(0, -1)
	}

	if err := ecs.Add(w, e, component.PlatformBodyComponent.Kind(), body); err != nil {
		return err
	}

	if cam, ok := w.First(component.CameraComponent.Kind()); ok {
		if c, ok := ecs.Get(w, cam, component.CameraComponent.Kind()); ok {
			c.OffsetX = 0
			c.OffsetY = 0
			c.DeadzoneX = cfg.CameraDeadzoneX
			c.DeadzoneY = cfg.CameraDeadzoneY
		}
	}
	if clock, ok := w.First(component.GameTimeComponent.Kind()); ok {
		if t, ok := ecs.Get(w, clock, component.GameTimeComponent.Kind()); ok {
			t.Frame = 0
		}
	}

	s.log.Debugw("start", "entity", e, "x", transform.X, "y", transform.Y, "state", body.State)
	return nil
}

// Stop takes e out of platform mode. Kinematic state is discarded.
func (s *PlatformSystem) Stop(w *ecs.World, e ecs.Entity) {
	ecs.Remove(w, e, component.PlatformBodyComponent.Kind())
}

func (s *PlatformSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	for _, e := range w.Query(
		component.PlatformBodyComponent.Kind(),
		component.PlatformerComponent.Kind(),
		component.TransformComponent.Kind(),
		component.FacingComponent.Kind(),
	) {
		f, ok := s.frame(w, e)
		if !ok {
			continue
		}
		s.step(f)
	}
}

// platformFrame is the working set of one entity for one frame. Stages
// read and write it in order; none of them look back at an earlier stage.
type platformFrame struct {
	w         *ecs.World
	entity    ecs.Entity
	body      *component.PlatformBody
	cfg       *component.Platformer
	transform *component.Transform
	facing    *component.Facing
	input     component.Input
	tiles     TileMap

	tileX int
	tileY int
}

func (s *PlatformSystem) frame(w *ecs.World, e ecs.Entity) (*platformFrame, bool) {
	body, ok := ecs.Get(w, e, component.PlatformBodyComponent.Kind())
	if !ok {
		return nil, false
	}
	cfg, ok := ecs.Get(w, e, component.PlatformerComponent.Kind())
	if !ok {
		return nil, false
	}
	transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return nil, false
	}
	facing, ok := ecs.Get(w, e, component.FacingComponent.Kind())
	if !ok {
		return nil, false
	}

	f := &platformFrame{
		w:         w,
		entity:    e,
		body:      body,
		cfg:       cfg,
		transform: transform,
		facing:    facing,
		tiles:     s.tiles,
	}
	if f.tiles == nil {
		f.tiles = emptyMap{}
	}
	if input, ok := ecs.Get(w, e, component.InputComponent.Kind()); ok {
		f.input = *input
	}
	return f, true
}

func (s *PlatformSystem) step(f *platformFrame) {
	before := f.body.State

	f.resync()
	moveStep(f)

	f.body.Pos.X = f.body.Pos.X.Advance(f.body.Vel.X)
	f.syncTile()

	s.interactAhead(f)
	jumpStep(f)
	gravityStep(f)

	f.body.Pos.Y = f.body.Pos.Y.Advance(f.body.Vel.Y)
	f.syncTile()

	collideWalls(f)
	if f.body.OnLadder() {
		collideLadder(f)
	} else {
		collideGround(f)
	}

	f.commit()

	if before != f.body.State {
		s.log.Debugw("state", "entity", f.entity, "from", before, "to", f.body.State,
			"tile_x", f.tileX, "tile_y", f.tileY)
	}

	s.dispatch(f)
}

// resync rebuilds the fixed-point position from the pixel position, which
// scripts may have moved since the last frame. Sub-pixel bits carry over.
func (f *platformFrame) resync() {
	f.body.Pos.X = f.body.Pos.X.WithPixel(f.transform.X + f.cfg.CenterOffset)
	f.body.Pos.Y = f.body.Pos.Y.WithPixel(f.transform.Y)
	f.syncTile()
}

func (f *platformFrame) syncTile() {
	f.tileX = f.body.Pos.X.Tile()
	f.tileY = f.body.Pos.Y.Tile()
}

func (f *platformFrame) footprint() footprint {
	return footprintOf(f.body.Pos)
}

// commit publishes the frame's result. Under script control the position
// belongs to the script, so the body is parked instead.
func (f *platformFrame) commit() {
	if ecs.Has(f.w, f.entity, component.ScriptControlComponent.Kind()) {
		f.body.Vel = common.VelVec{}
		return
	}

	f.transform.X = f.body.Pos.X.Pixel() - f.cfg.CenterOffset
	f.transform.Y = f.body.Pos.Y.Pixel()

	if anim, ok := ecs.Get(f.w, f.entity, component.AnimationComponent.Kind()); ok {
		anim.Animate = (f.body.Grounded() && f.body.Vel.X != 0) ||
			(f.body.OnLadder() && f.body.Vel.Y != 0)
	}
}

type emptyMap struct{}

func (emptyMap) TileAt(int, int) levels.Tile { return 0 }

func (s *PlatformSystem) tileAt(x, y int) levels.Tile {
	if s.tiles == nil {
		return 0
	}
	return s.tiles.TileAt(x, y)
}
