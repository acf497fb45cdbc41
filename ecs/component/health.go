package component

type Health struct {
	Initial int
	Current int
	// InvulnerableFrames is granted after each hit.
	InvulnerableFrames int
}

var HealthComponent = NewComponent[Health]()
