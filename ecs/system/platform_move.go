package system

import (
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/levels"
)

// moveStep turns input into horizontal velocity, or climb velocity while
// on a ladder, and handles getting on and off ladders.
func moveStep(f *platformFrame) {
	if f.body.OnLadder() {
		climb(f)
		return
	}

	f.facing.Y = 0
	if (f.input.Up || f.input.Down) && f.tiles.TileAt(f.tileX, f.tileY).Has(levels.PropLadder) {
		f.enterLadder()
		return
	}
	walk(f)
}

func climb(f *platformFrame) {
	f.facing.X, f.facing.Y = 0, -1
	f.body.Vel.X = 0

	switch {
	case f.input.Up:
		f.body.Vel.Y = -f.cfg.MaxWalkVel
	case f.input.Down:
		f.body.Vel.Y = f.cfg.MaxWalkVel
	default:
		f.body.Vel.Y = 0
		if f.input.Left {
			f.leaveLadder(-1)
		} else if f.input.Right {
			f.leaveLadder(1)
		}
	}
}

func walk(f *platformFrame) {
	cfg := f.cfg
	vel := &f.body.Vel.X

	switch {
	case f.input.Left:
		f.facing.X = -1
		acc, top := walkRate(cfg, f.input.A)
		*vel = common.Clamp(*vel-acc, -top, -cfg.MinWalkVel)
	case f.input.Right:
		f.facing.X = 1
		acc, top := walkRate(cfg, f.input.A)
		*vel = common.Clamp(*vel+acc, cfg.MinWalkVel, top)
	case f.body.Grounded():
		*vel = decelerate(*vel, cfg.ReleaseDec)
	}
}

// walkRate picks acceleration and top speed; run doubles as the A button.
func walkRate(cfg *component.Platformer, run bool) (acc, top common.Vel) {
	if run {
		return cfg.RunAcc, cfg.MaxRunVel
	}
	return cfg.WalkAcc, cfg.MaxWalkVel
}

// decelerate moves v toward zero by dec and stops at zero.
func decelerate(v, dec common.Vel) common.Vel {
	switch {
	case v < 0:
		v += dec
		if v > 0 {
			v = 0
		}
	case v > 0:
		v -= dec
		if v < 0 {
			v = 0
		}
	}
	return v
}

// enterLadder grabs the ladder. A body that was standing keeps its footing
// until the ladder collision says otherwise.
func (f *platformFrame) enterLadder() {
	if f.body.Grounded() {
		f.body.State = component.MoveLadderGrounded
	} else {
		f.body.State = component.MoveOnLadder
	}
	f.body.Vel.X = 0
	f.facing.Set(0, -1)
}

// leaveLadder lets go of the ladder facing dirX. Stepping off at the foot
// of a ladder leaves the body standing.
func (f *platformFrame) leaveLadder(dirX int8) {
	if f.body.State == component.MoveLadderGrounded {
		f.body.State = component.MoveGrounded
	} else {
		f.body.State = component.MoveAirborne
	}
	f.facing.Set(dirX, 0)
}

// land puts the body on the floor of its current tile.
func (f *platformFrame) land() {
	f.body.Vel.Y = 0
	f.body.Pos.Y = common.TilePos(f.tileY)
	if f.body.OnLadder() {
		f.body.State = component.MoveLadderGrounded
	} else {
		f.body.State = component.MoveGrounded
	}
}

// liftOff drops ground contact; a body on a ladder keeps climbing.
func (f *platformFrame) liftOff() {
	switch f.body.State {
	case component.MoveGrounded:
		f.body.State = component.MoveAirborne
	case component.MoveLadderGrounded:
		f.body.State = component.MoveOnLadder
	}
}
