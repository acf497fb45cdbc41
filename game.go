package main

import (
	"fmt"
	"path"
	"strings"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/entity"
	"github.com/milk9111/platformer/ecs/system"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/logging"
	"github.com/milk9111/platformer/prefabs"
)

const (
	baseWidth  = common.BaseWidth
	baseHeight = common.BaseHeight
)

type Game struct {
	levelName string
	debug     bool

	world    *ecs.World
	level    *levels.Level
	player   ecs.Entity
	platform *system.PlatformSystem
	scripts  *system.ScriptSystem
	render   *system.RenderSystem

	watcher *prefabs.Watcher
	pauseUI *ebitenui.UI
	paused  bool
	quit    bool

	log *zap.SugaredLogger
}

func NewGame(levelName string, debug bool) (*Game, error) {
	g := &Game{
		levelName: levelName,
		debug:     debug,
		log:       logging.Named("game"),
	}
	if err := g.setup(); err != nil {
		return nil, err
	}

	if w, err := prefabs.NewWatcher("prefabs", "prefabs/scripts"); err != nil {
		g.log.Warnw("hot reload disabled", "error", err)
	} else {
		g.watcher = w
	}

	g.pauseUI = NewPauseUI(g)
	return g, nil
}

// setup builds a fresh world for the current level with the player at its
// spawn point in platform mode.
func (g *Game) setup() error {
	name := path.Join("levels", g.levelName)
	if !strings.HasSuffix(name, ".json") {
		name += ".json"
	}
	lvl, err := levels.LoadLevel(name)
	if err != nil {
		return err
	}
	spec, err := prefabs.LoadPlatformSpec()
	if err != nil {
		return err
	}

	world := ecs.NewWorld()
	if _, err := entity.LoadLevelToWorld(world, lvl); err != nil {
		return err
	}
	sx, sy := lvl.GetSpawnPosition()
	player, err := entity.NewPlayerAt(world, sx, sy)
	if err != nil {
		return err
	}

	platform := system.NewPlatformSystem(lvl, system.NewActorIndex(), system.NewTriggerIndex())
	platform.SetConfig(world, spec.Platformer())
	if err := platform.Start(world, player); err != nil {
		return fmt.Errorf("start platform mode: %w", err)
	}

	scripts := system.NewScriptSystem()
	render := system.NewRenderSystem(lvl)
	render.Debug = g.debug

	world.AddSystem(system.NewInputSystem())
	world.AddSystem(platform)
	world.AddSystem(scripts)
	world.AddSystem(system.NewDamageSystem())
	world.AddSystem(system.NewAnimationSystem())
	world.AddSystem(system.NewCameraSystem())
	world.AddSystem(system.NewClockSystem())

	g.world = world
	g.level = lvl
	g.player = player
	g.platform = platform
	g.scripts = scripts
	g.render = render

	g.log.Infow("level loaded", "level", lvl.Name, "width", lvl.Width(), "height", lvl.Height(), "spawn_x", sx, "spawn_y", sy)
	return nil
}

// Restart reloads the level from scratch.
func (g *Game) Restart() {
	if err := g.setup(); err != nil {
		g.log.Errorw("restart", "error", err)
		return
	}
	g.paused = false
}

func (g *Game) Quit() {
	g.quit = true
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.render.Debug = !g.render.Debug
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.reload()
	g.world.Update()
	return nil
}

// reload applies prefab and script edits picked up by the watcher.
func (g *Game) reload() {
	if g.watcher == nil {
		return
	}
	select {
	case err, ok := <-g.watcher.Errors:
		if ok {
			g.log.Warnw("watch prefabs", "error", err)
		}
	default:
	}

	for _, name := range g.watcher.Pending() {
		switch {
		case name == "platform.yaml":
			spec, err := prefabs.LoadPlatformSpec()
			if err != nil {
				g.log.Warnw("reload platform tuning", "error", err)
				continue
			}
			g.platform.SetConfig(g.world, spec.Platformer())
			g.log.Infow("platform tuning reloaded")
		case strings.HasPrefix(name, "scripts/"):
			g.scripts.Invalidate(strings.TrimPrefix(name, "scripts/"))
			g.log.Infow("script reloaded", "script", name)
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.world, screen)
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}
