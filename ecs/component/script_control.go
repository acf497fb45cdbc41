package component

// ScriptControl hands an entity's position to scripts. While present the
// platform system leaves Transform alone and keeps the body at rest.
// Frames > 0 counts down and releases control at zero.
type ScriptControl struct {
	Frames int
}

var ScriptControlComponent = NewComponent[ScriptControl]()
