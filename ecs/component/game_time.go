package component

// GameTime counts frames since the current platform scene started.
type GameTime struct {
	Frame int
}

var GameTimeComponent = NewComponent[GameTime]()
