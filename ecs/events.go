package ecs

// EventKind identifies frame events raised by systems.
type EventKind string

const (
	// EventScriptStart asks the script runner to start Script on behalf of
	// Source (the actor or trigger owning it) with Target as the instigator.
	EventScriptStart EventKind = "script_start"
	// EventTriggerFired reports that Target entered the trigger Source.
	EventTriggerFired EventKind = "trigger_fired"
	// EventHit reports that Source damaged Target.
	EventHit EventKind = "hit"
)

// Event is a frame-scoped notification.
type Event struct {
	Kind   EventKind
	Source Entity
	Target Entity
	Script string
}

// EventQueue is a simple FIFO queue cleared at the end of each frame.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns events of the given kind and keeps the rest queued.
func (q *EventQueue) Drain(kind EventKind) []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	var out []Event
	kept := q.items[:0]
	for _, evt := range q.items {
		if evt.Kind == kind {
			out = append(out, evt)
			continue
		}
		kept = append(kept, evt)
	}
	q.items = kept
	return out
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
