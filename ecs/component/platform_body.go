package component

import "github.com/milk9111/platformer/common"

// MoveState is the platform movement mode. MoveLadderGrounded is a body on
// a ladder standing on the ground at its foot: it climbs like MoveOnLadder
// and can jump and interact like MoveGrounded.
type MoveState uint8

const (
	MoveAirborne MoveState = iota
	MoveGrounded
	MoveOnLadder
	MoveLadderGrounded
)

func (s MoveState) String() string {
	switch s {
	case MoveGrounded:
		return "grounded"
	case MoveOnLadder:
		return "ladder"
	case MoveLadderGrounded:
		return "ladder_grounded"
	default:
		return "airborne"
	}
}

// PlatformBody is the kinematic state of an entity in platform mode.
type PlatformBody struct {
	Pos   common.PosVec
	Vel   common.VelVec
	State MoveState
}

func (b *PlatformBody) Grounded() bool {
	return b.State == MoveGrounded || b.State == MoveLadderGrounded
}

func (b *PlatformBody) OnLadder() bool {
	return b.State == MoveOnLadder || b.State == MoveLadderGrounded
}

var PlatformBodyComponent = NewComponent[PlatformBody]()
