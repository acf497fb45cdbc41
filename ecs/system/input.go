package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

const stickDeadzone = 0.4

// Keyboard layout. A runs and interacts, B jumps.
var (
	keysLeft  = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
	keysRight = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}
	keysUp    = []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}
	keysDown  = []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}
	keysA     = []ebiten.Key{ebiten.KeyZ, ebiten.KeyJ}
	keysB     = []ebiten.Key{ebiten.KeyX, ebiten.KeyK, ebiten.KeySpace}
)

// buttonReader abstracts the device so the mapping can be tested.
type buttonReader interface {
	Pressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
}

type ebitenKeys struct{}

func (ebitenKeys) Pressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (ebitenKeys) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

type InputSystem struct {
	keys buttonReader
}

func NewInputSystem() *InputSystem {
	return &InputSystem{keys: ebitenKeys{}}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	in := readKeys(i.keys)
	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		mergeGamepad(&in, gamepads[0])
	}

	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, input *component.Input) {
		*input = in
	})
}

func readKeys(r buttonReader) component.Input {
	held := func(keys []ebiten.Key, fn func(ebiten.Key) bool) bool {
		for _, k := range keys {
			if fn(k) {
				return true
			}
		}
		return false
	}

	in := component.Input{
		Left:     held(keysLeft, r.Pressed),
		Right:    held(keysRight, r.Pressed),
		Up:       held(keysUp, r.Pressed),
		Down:     held(keysDown, r.Pressed),
		A:        held(keysA, r.Pressed),
		B:        held(keysB, r.Pressed),
		APressed: held(keysA, r.JustPressed),
		BPressed: held(keysB, r.JustPressed),
	}
	// Opposite directions cancel to the first one, like a d-pad.
	if in.Left && in.Right {
		in.Right = false
	}
	if in.Up && in.Down {
		in.Down = false
	}
	return in
}

func mergeGamepad(in *component.Input, id ebiten.GamepadID) {
	x := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
	y := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
	if math.Abs(x) > stickDeadzone {
		in.Left = in.Left || x < 0
		in.Right = in.Right || x > 0
	}
	if math.Abs(y) > stickDeadzone {
		in.Up = in.Up || y < 0
		in.Down = in.Down || y > 0
	}

	in.Left = in.Left || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftLeft)
	in.Right = in.Right || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftRight)
	in.Up = in.Up || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftTop)
	in.Down = in.Down || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftBottom)

	in.A = in.A || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightLeft)
	in.APressed = in.APressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightLeft)
	in.B = in.B || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
	in.BPressed = in.BPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)

	if in.Left && in.Right {
		in.Right = false
	}
	if in.Up && in.Down {
		in.Down = false
	}
}
