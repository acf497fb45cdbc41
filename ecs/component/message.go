package component

// Message is text shown over the level for Frames frames.
type Message struct {
	Text   string
	Frames int
}

var MessageComponent = NewComponent[Message]()
