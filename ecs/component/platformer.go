package component

import "github.com/milk9111/platformer/common"

// Platformer holds the movement tuning for an entity in platform mode.
// Velocities and accelerations are in common.Vel units per frame.
type Platformer struct {
	MinWalkVel common.Vel
	WalkAcc    common.Vel
	RunAcc     common.Vel
	ReleaseDec common.Vel
	MaxWalkVel common.Vel
	MaxRunVel  common.Vel
	JumpVel    common.Vel
	HoldGrav   common.Vel
	Grav       common.Vel
	MaxFallVel common.Vel

	// Declared for skid and jump-momentum tuning; the movement code does
	// not read them.
	SkidDec      common.Vel
	SkidTurnVel  common.Vel
	JumpMomentum common.Vel

	// CenterOffset shifts the sprite's top-left into the collision origin.
	CenterOffset int
	// CeilingWindow is how deep into its tile, in Pos units, the body may
	// be and still snap against a ceiling.
	CeilingWindow common.Pos

	CameraDeadzoneX int
	CameraDeadzoneY int
}

var PlatformerComponent = NewComponent[Platformer]()
