package component

// LevelBounds stores the pixel size of the current level.
type LevelBounds struct {
	Width  int
	Height int
}

var LevelBoundsComponent = NewComponent[LevelBounds]()
