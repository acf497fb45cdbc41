package system

// jumpStep launches a grounded body when jump is pressed and the row above
// its head is open.
func jumpStep(f *platformFrame) {
	if !f.input.BPressed || !f.body.Grounded() {
		return
	}
	if f.footprint().ceiling(f.tiles) {
		return
	}
	f.body.Vel.Y = -f.cfg.JumpVel
	f.liftOff()
}

// gravityStep pulls the body down, more gently while jump is held on the
// way up, and caps the fall speed.
func gravityStep(f *platformFrame) {
	if !f.body.OnLadder() {
		if f.input.B && f.body.Vel.Y < 0 {
			f.body.Vel.Y += f.cfg.HoldGrav
		} else {
			f.body.Vel.Y += f.cfg.Grav
		}
	}
	f.body.Vel.Y = min(f.body.Vel.Y, f.cfg.MaxFallVel)
}
