package component

// Animation steps a walk/climb cycle while Animate is set.
type Animation struct {
	Animate    bool
	Frame      int
	FrameCount int
	FrameTicks int
	tick       int
}

// Advance moves the cycle forward by one tick.
func (a *Animation) Advance() {
	if a.FrameCount <= 0 {
		return
	}
	a.tick++
	if a.FrameTicks <= 0 || a.tick >= a.FrameTicks {
		a.tick = 0
		a.Frame = (a.Frame + 1) % a.FrameCount
	}
}

// Reset returns to the first frame.
func (a *Animation) Reset() {
	a.Frame = 0
	a.tick = 0
}

var AnimationComponent = NewComponent[Animation]()
