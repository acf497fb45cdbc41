package component

// Input stores per-frame button state for an entity. A is the run /
// interact button and B is jump; the *Pressed fields are rising edges.
type Input struct {
	Left  bool
	Right bool
	Up    bool
	Down  bool
	A     bool
	B     bool

	APressed bool
	BPressed bool
}

var InputComponent = NewComponent[Input]()
