package component

// Trigger is a rectangle of tiles that runs Script when the player enters.
type Trigger struct {
	Name   string
	TileX  int
	TileY  int
	Width  int
	Height int
	Script string

	// Occupied is true while the player stands inside; the trigger fires
	// again only after it was left.
	Occupied bool
}

func (t *Trigger) Contains(tx, ty int) bool {
	return tx >= t.TileX && tx < t.TileX+t.Width && ty >= t.TileY && ty < t.TileY+t.Height
}

var TriggerComponent = NewComponent[Trigger]()
