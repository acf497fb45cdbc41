package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs/component"
	"gopkg.in/yaml.v3"
)

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type CameraSpec struct {
	DeadzoneX  int     `yaml:"deadzone_x"`
	DeadzoneY  int     `yaml:"deadzone_y"`
	Smoothness float64 `yaml:"smoothness"`
}

// PlatformSpec is the movement tuning for platform mode.
type PlatformSpec struct {
	Name          string     `yaml:"name"`
	MinWalkVel    int32      `yaml:"min_walk_vel"`
	WalkAcc       int32      `yaml:"walk_acc"`
	RunAcc        int32      `yaml:"run_acc"`
	ReleaseDec    int32      `yaml:"release_dec"`
	SkidDec       int32      `yaml:"skid_dec"`
	MaxWalkVel    int32      `yaml:"max_walk_vel"`
	MaxRunVel     int32      `yaml:"max_run_vel"`
	SkidTurnVel   int32      `yaml:"skid_turn_vel"`
	JumpMomentum  int32      `yaml:"jump_momentum"`
	JumpVel       int32      `yaml:"jump_vel"`
	HoldGrav      int32      `yaml:"hold_grav"`
	Grav          int32      `yaml:"grav"`
	MaxFallVel    int32      `yaml:"max_fall_vel"`
	CenterOffset  int        `yaml:"center_offset"`
	CeilingWindow int32      `yaml:"ceiling_window"`
	Camera        CameraSpec `yaml:"camera"`
}

func LoadPlatformSpec() (*PlatformSpec, error) {
	spec, err := LoadSpec[PlatformSpec]("platform.yaml")
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// Validate rejects tunings that would let velocity escape its clamps.
func (s *PlatformSpec) Validate() error {
	switch {
	case s.MinWalkVel <= 0:
		return fmt.Errorf("%w: min_walk_vel must be positive", ErrInvalidSpec)
	case s.MaxWalkVel < s.MinWalkVel:
		return fmt.Errorf("%w: max_walk_vel %#x below min_walk_vel %#x", ErrInvalidSpec, s.MaxWalkVel, s.MinWalkVel)
	case s.MaxRunVel < s.MinWalkVel:
		return fmt.Errorf("%w: max_run_vel %#x below min_walk_vel %#x", ErrInvalidSpec, s.MaxRunVel, s.MinWalkVel)
	case s.MaxFallVel <= 0:
		return fmt.Errorf("%w: max_fall_vel must be positive", ErrInvalidSpec)
	case s.WalkAcc <= 0 || s.RunAcc <= 0 || s.ReleaseDec <= 0:
		return fmt.Errorf("%w: accelerations must be positive", ErrInvalidSpec)
	case s.Grav < 0 || s.HoldGrav < 0 || s.JumpVel < 0:
		return fmt.Errorf("%w: gravity and jump velocity must not be negative", ErrInvalidSpec)
	case s.CeilingWindow < 0 || common.Pos(s.CeilingWindow) > common.PosPerTile:
		return fmt.Errorf("%w: ceiling_window %d outside one tile", ErrInvalidSpec, s.CeilingWindow)
	}
	return nil
}

// Platformer converts the spec into the movement component.
func (s *PlatformSpec) Platformer() component.Platformer {
	return component.Platformer{
		MinWalkVel:      common.Vel(s.MinWalkVel),
		WalkAcc:         common.Vel(s.WalkAcc),
		RunAcc:          common.Vel(s.RunAcc),
		ReleaseDec:      common.Vel(s.ReleaseDec),
		MaxWalkVel:      common.Vel(s.MaxWalkVel),
		MaxRunVel:       common.Vel(s.MaxRunVel),
		JumpVel:         common.Vel(s.JumpVel),
		HoldGrav:        common.Vel(s.HoldGrav),
		Grav:            common.Vel(s.Grav),
		MaxFallVel:      common.Vel(s.MaxFallVel),
		SkidDec:         common.Vel(s.SkidDec),
		SkidTurnVel:     common.Vel(s.SkidTurnVel),
		JumpMomentum:    common.Vel(s.JumpMomentum),
		CenterOffset:    s.CenterOffset,
		CeilingWindow:   common.Pos(s.CeilingWindow),
		CameraDeadzoneX: s.Camera.DeadzoneX,
		CameraDeadzoneY: s.Camera.DeadzoneY,
	}
}

type AnimationSpec struct {
	FrameCount int `yaml:"frame_count"`
	FrameTicks int `yaml:"frame_ticks"`
}

type PlayerSpec struct {
	Name               string        `yaml:"name"`
	Width              int           `yaml:"width"`
	Height             int           `yaml:"height"`
	Color              string        `yaml:"color"`
	Health             int           `yaml:"health"`
	InvulnerableFrames int           `yaml:"invulnerable_frames"`
	Animation          AnimationSpec `yaml:"animation"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	if spec.Width <= 0 || spec.Height <= 0 {
		return nil, fmt.Errorf("%w: player size %dx%d", ErrInvalidSpec, spec.Width, spec.Height)
	}
	return &spec, nil
}

// ParseHexColor parses "#rrggbb" or "#rrggbbaa".
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("prefabs: bad color %q", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("prefabs: bad color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
