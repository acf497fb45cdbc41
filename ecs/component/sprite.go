package component

import "image/color"

// Sprite is drawn as a filled rectangle anchored at the Transform.
type Sprite struct {
	Color  color.RGBA
	Width  int
	Height int
	// FacingLeft mirrors the facing marker.
	FacingLeft bool
	// Climbing draws the back-facing ladder pose.
	Climbing bool
}

var SpriteComponent = NewComponent[Sprite]()
