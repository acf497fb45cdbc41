package levels

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDecodesGlyphs(t *testing.T) {
	lvl, err := New(
		"#T.",
		"=H^",
		"[]#",
	)
	require.NoError(t, err)

	tests := []struct {
		x, y int
		want Tile
	}{
		{0, 0, CollideSolid},
		{1, 0, PropLadder | CollideTop},
		{2, 0, 0},
		{0, 1, CollideTop},
		{1, 1, PropLadder},
		{2, 1, CollideBottom},
		{0, 2, CollideLeft},
		{1, 2, CollideRight},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, lvl.TileAt(tt.x, tt.y), "tile (%d,%d)", tt.x, tt.y)
	}
}

func TestTileAtOutsideMapIsEmpty(t *testing.T) {
	lvl, err := New("##", "##")
	require.NoError(t, err)

	for _, p := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}, {100, 100}} {
		assert.Equal(t, Tile(0), lvl.TileAt(p[0], p[1]), "tile %v", p)
	}
}

func TestParseRejectsBadMaps(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		is   error
	}{
		{"no_rows", `{"rows":[]}`, ErrInvalidDimensions},
		{"ragged", `{"rows":["###","##"]}`, ErrInvalidDimensions},
		{"unknown_glyph", `{"rows":["#?#"]}`, nil},
		{"spawn_outside", `{"rows":["..."],"spawn_x":5}`, nil},
		{"bad_json", `{"rows":`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			if tt.is != nil {
				assert.True(t, errors.Is(err, tt.is), "got %v", err)
			}
		})
	}
}

func TestEmbeddedTowerLevel(t *testing.T) {
	lvl, err := LoadLevelFromFS("tower")
	require.NoError(t, err)

	assert.Equal(t, 40, lvl.Width())
	assert.Equal(t, 18, lvl.Height())
	x, y := lvl.GetSpawnPosition()
	assert.Equal(t, 16, x)
	assert.Equal(t, 128, y)
	assert.True(t, lvl.TileAt(2, 17).Has(CollideTop), "spawn must stand on ground")
	assert.True(t, lvl.TileAt(20, 12).Has(PropLadder))

	actors := lvl.EntitiesOfType("actor")
	require.Len(t, actors, 3)
	assert.Equal(t, "signpost", actors[0].PropString("name", ""))
	assert.True(t, actors[0].PropBool("interactive", false))
	assert.Equal(t, 1, actors[1].PropInt("collision_group", 0))
	require.Len(t, lvl.EntitiesOfType("trigger"), 1)
}
