package system

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"

	"github.com/milk9111/platformer/ecs/component"
)

type fakeKeys struct {
	held map[ebiten.Key]bool
	just map[ebiten.Key]bool
}

func (f fakeKeys) Pressed(k ebiten.Key) bool     { return f.held[k] }
func (f fakeKeys) JustPressed(k ebiten.Key) bool { return f.just[k] }

func keys(held ...ebiten.Key) fakeKeys {
	f := fakeKeys{held: map[ebiten.Key]bool{}, just: map[ebiten.Key]bool{}}
	for _, k := range held {
		f.held[k] = true
	}
	return f
}

func TestReadKeys(t *testing.T) {
	jump := keys(ebiten.KeySpace)
	jump.just[ebiten.KeySpace] = true

	tests := []struct {
		name string
		keys fakeKeys
		want component.Input
	}{
		{"nothing", keys(), component.Input{}},
		{"arrows", keys(ebiten.KeyArrowLeft, ebiten.KeyArrowUp), component.Input{Left: true, Up: true}},
		{"wasd", keys(ebiten.KeyD, ebiten.KeyS), component.Input{Right: true, Down: true}},
		{"opposites_cancel", keys(ebiten.KeyA, ebiten.KeyArrowRight, ebiten.KeyW, ebiten.KeyS), component.Input{Left: true, Up: true}},
		{"run_held", keys(ebiten.KeyZ), component.Input{A: true}},
		{"jump_edge", jump, component.Input{B: true, BPressed: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, readKeys(tt.keys))
		})
	}
}
