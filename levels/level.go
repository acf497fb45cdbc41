package levels

import (
	"fmt"

	"github.com/milk9111/platformer/common"
)

// Tile is a cell's collision bitmask. The four edge bits say which sides
// of the cell block movement; PropLadder marks it climbable.
type Tile uint8

const (
	CollideTop Tile = 1 << iota
	CollideBottom
	CollideLeft
	CollideRight
	PropLadder

	CollideSolid = CollideTop | CollideBottom | CollideLeft | CollideRight
)

func (t Tile) Has(mask Tile) bool {
	return t&mask != 0
}

// Glyphs maps the characters used in level rows to tile masks.
var Glyphs = map[rune]Tile{
	'.': 0,
	' ': 0,
	'#': CollideSolid,
	'=': CollideTop,
	'H': PropLadder,
	'T': PropLadder | CollideTop,
	'^': CollideBottom,
	'[': CollideLeft,
	']': CollideRight,
}

// Level is a tile grid plus entity placements. Rows are written top to
// bottom, one glyph per tile.
type Level struct {
	Name     string   `json:"name"`
	Rows     []string `json:"rows"`
	SpawnX   int      `json:"spawn_x"`
	SpawnY   int      `json:"spawn_y"`
	Entities []Entity `json:"entities,omitempty"`

	width  int
	height int
	tiles  []Tile
}

func (l *Level) build() error {
	l.height = len(l.Rows)
	if l.height == 0 {
		return fmt.Errorf("%w: no rows", ErrInvalidDimensions)
	}
	l.width = len([]rune(l.Rows[0]))
	if l.width == 0 {
		return fmt.Errorf("%w: empty first row", ErrInvalidDimensions)
	}
	l.tiles = make([]Tile, l.width*l.height)
	for y, row := range l.Rows {
		runes := []rune(row)
		if len(runes) != l.width {
			return fmt.Errorf("%w: row %d has %d tiles, want %d", ErrInvalidDimensions, y, len(runes), l.width)
		}
		for x, r := range runes {
			t, ok := Glyphs[r]
			if !ok {
				return fmt.Errorf("level: row %d col %d: unknown glyph %q", y, x, r)
			}
			l.tiles[y*l.width+x] = t
		}
	}
	if l.SpawnX < 0 || l.SpawnX >= l.width || l.SpawnY < 0 || l.SpawnY >= l.height {
		return fmt.Errorf("level: spawn (%d,%d) outside %dx%d map", l.SpawnX, l.SpawnY, l.width, l.height)
	}
	return nil
}

// New builds a level directly from rows.
func New(rows ...string) (*Level, error) {
	l := &Level{Rows: rows}
	if err := l.build(); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *Level) Width() int  { return l.width }
func (l *Level) Height() int { return l.height }

// TileAt returns the mask at tile (x, y). Cells outside the map have no
// edges and no properties.
func (l *Level) TileAt(x, y int) Tile {
	if l == nil || x < 0 || y < 0 || x >= l.width || y >= l.height {
		return 0
	}
	return l.tiles[y*l.width+x]
}

// SetTile overwrites a cell; out-of-range writes are ignored.
func (l *Level) SetTile(x, y int, t Tile) {
	if l == nil || x < 0 || y < 0 || x >= l.width || y >= l.height {
		return
	}
	l.tiles[y*l.width+x] = t
}

// PixelSize returns the map size in pixels.
func (l *Level) PixelSize() (int, int) {
	return l.width * common.TileSize, l.height * common.TileSize
}

// GetSpawnPosition returns the player's spawn position in pixels (top-left
// of the spawn cell).
func (l *Level) GetSpawnPosition() (int, int) {
	if l == nil {
		return 0, 0
	}
	return l.SpawnX * common.TileSize, l.SpawnY * common.TileSize
}

// EntitiesOfType returns placements whose Type matches.
func (l *Level) EntitiesOfType(kind string) []Entity {
	var out []Entity
	for _, e := range l.Entities {
		if e.Type == kind {
			out = append(out, e)
		}
	}
	return out
}

// PropString reads a string property with a default.
func (e Entity) PropString(key, def string) string {
	if v, ok := e.Props[key].(string); ok {
		return v
	}
	return def
}

// PropInt reads a numeric property with a default. JSON numbers decode as
// float64.
func (e Entity) PropInt(key string, def int) int {
	switch v := e.Props[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return def
}

// PropBool reads a boolean property with a default.
func (e Entity) PropBool(key string, def bool) bool {
	if v, ok := e.Props[key].(bool); ok {
		return v
	}
	return def
}
