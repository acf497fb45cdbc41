package component

// Facing is a unit direction with one zero axis. Neutral is {0, 0}.
type Facing struct {
	X int8
	Y int8
	// Rerender is raised when facing changed discretely and the sprite
	// orientation must be rebuilt; the animation system clears it.
	Rerender bool
}

func (f Facing) Vertical() bool {
	return f.X == 0 && f.Y != 0
}

func (f *Facing) Set(x, y int8) {
	if f.X != x || f.Y != y {
		f.Rerender = true
	}
	f.X = x
	f.Y = y
}

var FacingComponent = NewComponent[Facing]()
