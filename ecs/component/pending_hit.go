package component

// PendingHit records the actor that overlapped the player this frame.
// Actor holds an ecs.Entity value; the damage system consumes and removes it.
type PendingHit struct {
	Actor uint64
}

var PendingHitComponent = NewComponent[PendingHit]()
