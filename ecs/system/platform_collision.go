package system

import (
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/levels"
)

func collideWalls(f *platformFrame) {
	fp := f.footprint()
	switch {
	case f.body.Vel.X < 0 && fp.wallLeft(f.tiles):
		f.body.Vel.X = 0
		f.body.Pos.X = common.TilePos(fp.left + 1)
	case f.body.Vel.X > 0 && fp.wallRight(f.tiles):
		f.body.Vel.X = 0
		f.body.Pos.X = common.TilePos(fp.left)
	}
	f.syncTile()
}

// collideLadder keeps a climbing body inside the ladder. Climbing down out
// of the bottom with down held lets go; anything else past the end of the
// ladder is undone. Solid ground under the ladder stops the descent and
// gives the body footing; moving up the ladder takes it away.
func collideLadder(f *platformFrame) {
	if !f.tiles.TileAt(f.tileX, f.tileY).Has(levels.PropLadder) {
		if f.input.Down {
			f.leaveLadder(1)
		} else {
			f.body.Pos.Y = f.body.Pos.Y.Retreat(f.body.Vel.Y)
			f.body.Vel.Y = 0
		}
	}

	below := f.tiles.TileAt(f.tileX, f.tileY+1)
	if f.body.Vel.Y >= 0 && below.Has(levels.CollideTop) && !below.Has(levels.PropLadder) {
		f.land()
		return
	}
	f.liftOff()
}

func collideGround(f *platformFrame) {
	fp := f.footprint()
	if f.body.Vel.Y >= 0 && fp.floor(f.tiles) {
		f.land()
		return
	}

	f.liftOff()
	if f.body.Vel.Y >= 0 || !fp.ceiling(f.tiles) {
		return
	}
	// Only snap when the head just crossed into the tile below the ceiling.
	if f.body.Pos.Y.InTile() < f.cfg.CeilingWindow {
		f.body.Vel.Y = 0
		f.body.Pos.Y = common.TilePos(f.tileY)
	}
}
