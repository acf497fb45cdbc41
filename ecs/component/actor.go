package component

// Actor is a non-player entity placed on the tile grid.
type Actor struct {
	Name string
	// CollisionGroup classifies overlap behaviour; zero never damages.
	CollisionGroup uint8
	// Interactive actors answer the interact button.
	Interactive bool
	// Script runs when the player interacts with the actor.
	Script string
	Width  int
	Height int
}

var ActorComponent = NewComponent[Actor]()
