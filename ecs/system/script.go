package system

import (
	"context"
	"fmt"
	"time"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"go.uber.org/zap"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/logging"
	"github.com/milk9111/platformer/prefabs"
)

const (
	scriptTimeout        = 50 * time.Millisecond
	defaultMessageFrames = 120
)

// Globals every script sees. Scripts answer by assigning the outputs.
var (
	scriptInputs  = []string{"actor", "frame", "player_x", "player_y", "spawn_x", "spawn_y"}
	scriptOutputs = []string{"message", "lock_frames", "move_x", "move_y"}
)

// ScriptSystem runs tengo scripts queued by interactions and triggers and
// applies their results to the player: a message, a number of frames under
// script control, and a pixel move.
type ScriptSystem struct {
	MessageFrames int

	load  func(name string) ([]byte, error)
	cache map[string]*tengo.Compiled
	log   *zap.SugaredLogger
}

func NewScriptSystem() *ScriptSystem {
	return &ScriptSystem{
		MessageFrames: defaultMessageFrames,
		load:          prefabs.LoadScript,
		cache:         map[string]*tengo.Compiled{},
		log:           logging.Named("script"),
	}
}

// Invalidate drops a compiled script so the next run reloads it.
func (s *ScriptSystem) Invalidate(name string) {
	delete(s.cache, name)
}

func (s *ScriptSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	s.countdown(w)

	for _, evt := range w.Events().Drain(ecs.EventScriptStart) {
		if err := s.run(w, evt); err != nil {
			s.log.Warnw("script failed", "script", evt.Script, "error", err)
		}
	}
}

func (s *ScriptSystem) countdown(w *ecs.World) {
	var released []ecs.Entity
	ecs.ForEach(w, component.ScriptControlComponent.Kind(), func(e ecs.Entity, sc *component.ScriptControl) {
		sc.Frames--
		if sc.Frames <= 0 {
			released = append(released, e)
		}
	})
	for _, e := range released {
		ecs.Remove(w, e, component.ScriptControlComponent.Kind())
	}

	var expired []ecs.Entity
	ecs.ForEach(w, component.MessageComponent.Kind(), func(e ecs.Entity, m *component.Message) {
		m.Frames--
		if m.Frames <= 0 {
			expired = append(expired, e)
		}
	})
	for _, e := range expired {
		ecs.Remove(w, e, component.MessageComponent.Kind())
	}
}

func (s *ScriptSystem) run(w *ecs.World, evt ecs.Event) error {
	compiled, err := s.compiled(evt.Script)
	if err != nil {
		return err
	}
	c := compiled.Clone()

	target := evt.Target
	if !target.Valid() {
		target, _ = w.First(component.PlayerTagComponent.Kind())
	}

	inputs := map[string]any{
		"actor": sourceName(w, evt.Source),
		"frame": 0,
	}
	if clock, ok := w.First(component.GameTimeComponent.Kind()); ok {
		if gt, ok := ecs.Get(w, clock, component.GameTimeComponent.Kind()); ok {
			inputs["frame"] = gt.Frame
		}
	}
	if t, ok := ecs.Get(w, target, component.TransformComponent.Kind()); ok {
		inputs["player_x"] = t.X
		inputs["player_y"] = t.Y
	}
	if level, ok := w.First(component.SpawnPointComponent.Kind()); ok {
		if sp, ok := ecs.Get(w, level, component.SpawnPointComponent.Kind()); ok {
			inputs["spawn_x"] = sp.X
			inputs["spawn_y"] = sp.Y
		}
	}
	for name, v := range inputs {
		if err := c.Set(name, v); err != nil {
			return fmt.Errorf("script %s: set %s: %w", evt.Script, name, err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), scriptTimeout)
	defer cancel()
	if err := c.RunContext(ctx); err != nil {
		return fmt.Errorf("script %s: run: %w", evt.Script, err)
	}

	s.apply(w, target, evt.Script, c)
	return nil
}

func (s *ScriptSystem) apply(w *ecs.World, target ecs.Entity, script string, c *tengo.Compiled) {
	if !w.IsAlive(target) {
		return
	}

	if text := c.Get("message").String(); text != "" {
		msg := &component.Message{Text: text, Frames: s.MessageFrames}
		if err := ecs.Add(w, target, component.MessageComponent.Kind(), msg); err != nil {
			s.log.Warnw("show message", "script", script, "error", err)
		}
		s.log.Infow("message", "script", script, "text", text)
	}

	if frames := c.Get("lock_frames").Int(); frames > 0 {
		if err := ecs.Add(w, target, component.ScriptControlComponent.Kind(), &component.ScriptControl{Frames: frames}); err != nil {
			s.log.Warnw("lock player", "script", script, "error", err)
		}
	}

	dx, dy := c.Get("move_x").Int(), c.Get("move_y").Int()
	if dx == 0 && dy == 0 {
		return
	}
	if t, ok := ecs.Get(w, target, component.TransformComponent.Kind()); ok {
		t.X += dx
		t.Y += dy
		s.log.Debugw("move", "script", script, "x", t.X, "y", t.Y)
	}
}

func (s *ScriptSystem) compiled(name string) (*tengo.Compiled, error) {
	if c, ok := s.cache[name]; ok {
		return c, nil
	}

	src, err := s.load(name)
	if err != nil {
		return nil, fmt.Errorf("script %s: load: %w", name, err)
	}

	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	for _, g := range append(scriptInputs, scriptOutputs...) {
		_ = script.Add(g, 0)
	}
	_ = script.Add("actor", "")
	_ = script.Add("message", "")

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("script %s: compile: %w", name, err)
	}
	s.cache[name] = compiled
	return compiled, nil
}

func sourceName(w *ecs.World, e ecs.Entity) string {
	if a, ok := ecs.Get(w, e, component.ActorComponent.Kind()); ok {
		return a.Name
	}
	if t, ok := ecs.Get(w, e, component.TriggerComponent.Kind()); ok {
		return t.Name
	}
	return ""
}
