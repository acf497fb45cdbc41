package component

// Transform is an entity's authoritative pixel position. For the player it
// is the top-left of the sprite; scripts may move it between frames.
type Transform struct {
	X int
	Y int
}

var TransformComponent = NewComponent[Transform]()
