package component

type Camera struct {
	TargetName string
	Smoothness float64

	// The camera holds still while the target stays within Deadzone pixels
	// of the focus point; Offset shifts the focus point.
	DeadzoneX int
	DeadzoneY int
	OffsetX   int
	OffsetY   int

	X float64
	Y float64
}

var CameraComponent = NewComponent[Camera]()
