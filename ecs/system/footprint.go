package system

import (
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/levels"
)

// footprint is the collision box of a platform body sampled on the tile
// grid. The body is one tile wide and two tall: it covers rows bottom-1 and
// bottom, and column left plus, when straddle is set, column left+1.
type footprint struct {
	left     int
	bottom   int
	straddle bool
}

func footprintOf(pos common.PosVec) footprint {
	return footprint{
		left:     pos.X.Tile(),
		bottom:   pos.Y.Tile(),
		straddle: pos.X.PixelInTile() != 0,
	}
}

// row reports whether any column of the footprint has mask at row y.
func (fp footprint) row(tiles TileMap, y int, mask levels.Tile) bool {
	if tiles.TileAt(fp.left, y).Has(mask) {
		return true
	}
	return fp.straddle && tiles.TileAt(fp.left+1, y).Has(mask)
}

// column reports whether either row the body covers has mask at column x.
func (fp footprint) column(tiles TileMap, x int, mask levels.Tile) bool {
	return tiles.TileAt(x, fp.bottom).Has(mask) || tiles.TileAt(x, fp.bottom-1).Has(mask)
}

func (fp footprint) floor(tiles TileMap) bool {
	return fp.row(tiles, fp.bottom+1, levels.CollideTop)
}

// ceiling looks at the row above the head.
func (fp footprint) ceiling(tiles TileMap) bool {
	return fp.row(tiles, fp.bottom-2, levels.CollideBottom)
}

func (fp footprint) wallLeft(tiles TileMap) bool {
	return fp.column(tiles, fp.left, levels.CollideRight)
}

func (fp footprint) wallRight(tiles TileMap) bool {
	return fp.column(tiles, fp.left+1, levels.CollideLeft)
}
