package component

// SpawnPoint is where the player enters the level, in pixels.
type SpawnPoint struct {
	X int
	Y int
}

var SpawnPointComponent = NewComponent[SpawnPoint]()
