package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/ecs/entity"
	"github.com/milk9111/platformer/ecs/system"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/logging"
	"github.com/milk9111/platformer/prefabs"
)

var (
	errNotGrounded = errors.New("player never lands")
	errSpawnSolid  = errors.New("spawn cell is solid")
	errMissing     = errors.New("script not found")
)

type report struct {
	Level    string
	Actors   int
	Triggers int
	// Frames is how long the player took to land from the spawn point.
	Frames int
}

func main() {
	frames := flag.Int("frames", 120, "frames to simulate per level")
	debug := flag.Bool("debug", false, "log every platform state change")
	flag.Parse()

	if err := logging.Init(logging.Config{Debug: *debug}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logging.Sync()
	log := logging.Named("levelcheck")

	names := flag.Args()
	if len(names) == 0 {
		var err error
		names, err = fs.Glob(levels.LevelsFS, "*.json")
		if err != nil {
			log.Fatalw("list levels", "error", err)
		}
	}

	failed := false
	for _, name := range names {
		lvl, err := levels.LoadLevel(name)
		if err != nil {
			log.Errorw("load", "level", name, "error", err)
			failed = true
			continue
		}
		r, err := checkLevel(lvl, *frames)
		if err != nil {
			log.Errorw("check", "level", name, "error", err)
			failed = true
			continue
		}
		log.Infow("ok", "level", r.Level, "actors", r.Actors, "triggers", r.Triggers, "landed_after", r.Frames)
	}
	if failed {
		os.Exit(1)
	}
}

// checkLevel builds the level, verifies every referenced script exists and
// simulates an idle player from the spawn point until it lands.
func checkLevel(lvl *levels.Level, frames int) (report, error) {
	r := report{Level: lvl.Name}

	if lvl.TileAt(lvl.SpawnX, lvl.SpawnY)&levels.CollideSolid == levels.CollideSolid {
		return r, fmt.Errorf("%w at (%d,%d)", errSpawnSolid, lvl.SpawnX, lvl.SpawnY)
	}

	w := ecs.NewWorld()
	if _, err := entity.LoadLevelToWorld(w, lvl); err != nil {
		return r, err
	}

	var scriptErr error
	check := func(script string) {
		if script == "" || scriptErr != nil {
			return
		}
		if _, err := prefabs.LoadScript(script); err != nil {
			scriptErr = fmt.Errorf("%w: %s", errMissing, script)
		}
	}
	ecs.ForEach(w, component.ActorComponent.Kind(), func(_ ecs.Entity, a *component.Actor) {
		r.Actors++
		check(a.Script)
	})
	ecs.ForEach(w, component.TriggerComponent.Kind(), func(_ ecs.Entity, t *component.Trigger) {
		r.Triggers++
		check(t.Script)
	})
	if scriptErr != nil {
		return r, scriptErr
	}

	sx, sy := lvl.GetSpawnPosition()
	player, err := entity.NewPlayerAt(w, sx, sy)
	if err != nil {
		return r, err
	}
	platform := system.NewPlatformSystem(lvl, system.NewActorIndex(), system.NewTriggerIndex())
	if err := platform.Start(w, player); err != nil {
		return r, err
	}
	w.AddSystem(platform)
	w.AddSystem(system.NewDamageSystem())

	for i := 1; i <= frames; i++ {
		w.Update()
		if body, ok := ecs.Get(w, player, component.PlatformBodyComponent.Kind()); ok && body.Grounded() {
			r.Frames = i
			return r, nil
		}
	}
	return r, errNotGrounded
}
