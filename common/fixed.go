package common

// Fixed-point layout used by the platform kinematics.
//
// A Pos carries 4 fractional bits: 16 sub-units per pixel. A Vel carries 8
// fractional bits over Pos sub-units, so one frame of motion adds Vel>>8 to
// a Pos. Tiles are TileSize pixels wide, which makes Pos>>7 the tile index.
const (
	PosShift  = 4
	VelShift  = 8
	tileShift = 3 // log2(TileSize)

	posTileShift = PosShift + tileShift

	// PosPerPixel is the number of Pos sub-units in one pixel.
	PosPerPixel Pos = 1 << PosShift
	// PosPerTile is the number of Pos sub-units in one tile edge.
	PosPerTile Pos = 1 << posTileShift
)

// Pos is a position coordinate in 1/16 pixel units.
type Pos int32

// Vel is a per-frame velocity in 1/256 Pos units.
type Vel int32

// PosFromPixel converts a whole pixel coordinate to a Pos.
func PosFromPixel(px int) Pos {
	return Pos(px) << PosShift
}

// TilePos returns the Pos of the top/left boundary of tile t.
func TilePos(t int) Pos {
	return Pos(t) << posTileShift
}

// Pixel truncates p to whole pixels.
func (p Pos) Pixel() int {
	return int(p >> PosShift)
}

// Tile returns the tile index containing p.
func (p Pos) Tile() int {
	return int(p >> posTileShift)
}

// SubPixel returns the fractional pixel bits of p.
func (p Pos) SubPixel() Pos {
	return p & (PosPerPixel - 1)
}

// InTile returns the offset of p from the start of its tile, in Pos units.
func (p Pos) InTile() Pos {
	return p & (PosPerTile - 1)
}

// PixelInTile returns the whole-pixel offset of p inside its tile.
func (p Pos) PixelInTile() int {
	return p.Pixel() & (TileSize - 1)
}

// WithPixel replaces the whole-pixel part of p, keeping its sub-pixel bits.
func (p Pos) WithPixel(px int) Pos {
	return PosFromPixel(px) + p.SubPixel()
}

// Advance integrates one frame of v into p.
func (p Pos) Advance(v Vel) Pos {
	return p + v.Step()
}

// Retreat undoes one frame of v.
func (p Pos) Retreat(v Vel) Pos {
	return p - v.Step()
}

// Step is the Pos displacement v produces in one frame. The shift is
// arithmetic, so negative velocities round toward negative infinity.
func (v Vel) Step() Pos {
	return Pos(v >> VelShift)
}

// Sign returns -1, 0 or 1.
func (v Vel) Sign() int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

// PosVec is a 2D fixed-point position.
type PosVec struct {
	X, Y Pos
}

// VelVec is a 2D fixed-point velocity.
type VelVec struct {
	X, Y Vel
}
