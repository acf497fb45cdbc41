package system

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/levels"
)

// TileGrid is a TileMap that knows its size.
type TileGrid interface {
	TileMap
	Width() int
	Height() int
}

var (
	backgroundColor = color.RGBA{R: 0x0f, G: 0x38, B: 0x0f, A: 0xff}
	solidColor      = color.RGBA{R: 0x30, G: 0x62, B: 0x30, A: 0xff}
	platformColor   = color.RGBA{R: 0x8b, G: 0xac, B: 0x0f, A: 0xff}
	ladderColor     = color.RGBA{R: 0x9b, G: 0xbc, B: 0x0f, A: 0xff}
)

type RenderSystem struct {
	Debug bool

	tiles     TileGrid
	camEntity ecs.Entity
}

func NewRenderSystem(tiles TileGrid) *RenderSystem {
	return &RenderSystem{tiles: tiles}
}

func (r *RenderSystem) SetTiles(tiles TileGrid) {
	r.tiles = tiles
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	screen.Fill(backgroundColor)

	if !w.IsAlive(r.camEntity) {
		r.camEntity, _ = w.First(component.CameraComponent.Kind())
	}
	camX, camY := 0.0, 0.0
	if cam, ok := ecs.Get(w, r.camEntity, component.CameraComponent.Kind()); ok {
		camX, camY = cam.X, cam.Y
	}

	r.drawTiles(screen, camX, camY)
	if r.Debug {
		r.drawTriggers(w, screen, camX, camY)
	}
	r.drawActors(w, screen, camX, camY)
	r.drawSprites(w, screen, camX, camY)
	r.drawMessage(w, screen)
	if r.Debug {
		r.drawDebug(w, screen)
	}
}

func (r *RenderSystem) drawTiles(screen *ebiten.Image, camX, camY float64) {
	if r.tiles == nil {
		return
	}
	const ts = float32(common.TileSize)

	x0 := max(0, int(camX)/common.TileSize)
	y0 := max(0, int(camY)/common.TileSize)
	x1 := min(r.tiles.Width(), x0+common.BaseWidth/common.TileSize+2)
	y1 := min(r.tiles.Height(), y0+common.BaseHeight/common.TileSize+2)

	for ty := y0; ty < y1; ty++ {
		for tx := x0; tx < x1; tx++ {
			t := r.tiles.TileAt(tx, ty)
			if t == 0 {
				continue
			}
			x := float32(float64(tx*common.TileSize) - camX)
			y := float32(float64(ty*common.TileSize) - camY)

			switch {
			case t.Has(levels.PropLadder):
				vector.StrokeLine(screen, x+1, y, x+1, y+ts, 1, ladderColor, false)
				vector.StrokeLine(screen, x+ts-1, y, x+ts-1, y+ts, 1, ladderColor, false)
				vector.StrokeLine(screen, x+1, y+ts/2, x+ts-1, y+ts/2, 1, ladderColor, false)
				if t.Has(levels.CollideTop) {
					vector.DrawFilledRect(screen, x, y, ts, 2, platformColor, false)
				}
			case t&levels.CollideSolid == levels.CollideSolid:
				vector.DrawFilledRect(screen, x, y, ts, ts, solidColor, false)
			default:
				if t.Has(levels.CollideTop) {
					vector.DrawFilledRect(screen, x, y, ts, 2, platformColor, false)
				}
				if t.Has(levels.CollideBottom) {
					vector.DrawFilledRect(screen, x, y+ts-2, ts, 2, platformColor, false)
				}
				if t.Has(levels.CollideLeft) {
					vector.DrawFilledRect(screen, x, y, 2, ts, platformColor, false)
				}
				if t.Has(levels.CollideRight) {
					vector.DrawFilledRect(screen, x+ts-2, y, 2, ts, platformColor, false)
				}
			}
		}
	}
}

func (r *RenderSystem) drawTriggers(w *ecs.World, screen *ebiten.Image, camX, camY float64) {
	ecs.ForEach(w, component.TriggerComponent.Kind(), func(_ ecs.Entity, t *component.Trigger) {
		x := float32(float64(t.TileX*common.TileSize) - camX)
		y := float32(float64(t.TileY*common.TileSize) - camY)
		vector.StrokeRect(screen, x, y, float32(t.Width*common.TileSize), float32(t.Height*common.TileSize), 1, colornames.Orange, false)
	})
}

func (r *RenderSystem) drawActors(w *ecs.World, screen *ebiten.Image, camX, camY float64) {
	ecs.ForEach2(w, component.ActorComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, a *component.Actor, t *component.Transform) {
		clr := colornames.Lightgrey
		switch {
		case a.CollisionGroup != 0:
			clr = colornames.Crimson
		case a.Interactive:
			clr = colornames.Gold
		}
		box := actorBox(a, t)
		vector.DrawFilledRect(screen,
			float32(box.L-boxInset-camX), float32(box.B-boxInset-camY),
			float32(box.R-box.L+2*boxInset), float32(box.T-box.B+2*boxInset),
			clr, false)
	})
}

func (r *RenderSystem) drawSprites(w *ecs.World, screen *ebiten.Image, camX, camY float64) {
	ecs.ForEach2(w, component.SpriteComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, s *component.Sprite, t *component.Transform) {
		if inv, ok := ecs.Get(w, e, component.InvulnerableComponent.Kind()); ok && (inv.Frames/4)%2 == 1 {
			return
		}

		// The sprite's bottom edge sits one tile below Transform.Y.
		x := float32(float64(t.X) - camX)
		y := float32(float64(t.Y+common.TileSize-s.Height) - camY)
		vector.DrawFilledRect(screen, x, y, float32(s.Width), float32(s.Height), s.Color, false)

		bob := float32(0)
		if anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind()); ok && anim.Frame%2 == 1 {
			bob = 1
		}
		eyeY := y + 4 + bob
		switch {
		case s.Climbing:
			vector.DrawFilledRect(screen, x+4, y+2+bob, float32(s.Width-8), 2, backgroundColor, false)
		case s.FacingLeft:
			vector.DrawFilledRect(screen, x+3, eyeY, 2, 2, backgroundColor, false)
		default:
			vector.DrawFilledRect(screen, x+float32(s.Width)-5, eyeY, 2, 2, backgroundColor, false)
		}
	})
}

func (r *RenderSystem) drawMessage(w *ecs.World, screen *ebiten.Image) {
	ecs.ForEach(w, component.MessageComponent.Kind(), func(_ ecs.Entity, m *component.Message) {
		h := screen.Bounds().Dy()
		vector.DrawFilledRect(screen, 0, float32(h-20), float32(screen.Bounds().Dx()), 20, colornames.Black, false)
		ebitenutil.DebugPrintAt(screen, m.Text, 4, h-18)
	})
}

func (r *RenderSystem) drawDebug(w *ecs.World, screen *ebiten.Image) {
	player, ok := w.First(component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	body, ok := ecs.Get(w, player, component.PlatformBodyComponent.Kind())
	if !ok {
		return
	}
	line := fmt.Sprintf("%s pos %d,%d vel %d,%d tile %d,%d",
		body.State, body.Pos.X, body.Pos.Y, body.Vel.X, body.Vel.Y, body.Pos.X.Tile(), body.Pos.Y.Tile())
	ebitenutil.DebugPrintAt(screen, line, 2, 2)
	if gt, ok := w.First(component.GameTimeComponent.Kind()); ok {
		if t, ok := ecs.Get(w, gt, component.GameTimeComponent.Kind()); ok {
			ebitenutil.DebugPrintAt(screen, fmt.Sprintf("frame %d fps %.0f", t.Frame, ebiten.ActualFPS()), 2, 14)
		}
	}
}
