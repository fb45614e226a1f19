package events

// EventType represents the type of game event
type EventType string

// Event is a fire-and-forget notification about a player
type Event struct {
	Type     EventType
	PlayerID string
	Message  string
	Payload  map[string]any
}

// Emitter receives events. Emit must not block the turn.
type Emitter interface {
	Emit(event Event)
}

// EmitterFunc adapts a function to Emitter
type EmitterFunc func(event Event)

// Emit implements Emitter
func (f EmitterFunc) Emit(event Event) {
	f(event)
}

// Discard drops every event
var Discard Emitter = EmitterFunc(func(Event) {})

// EventListener processes events published on a Bus
type EventListener interface {
	HandleEvent(event Event) error
	Priority() int
	ID() string
}

// NewMessage builds a message event
func NewMessage(playerID, text string) Event {
	return Event{Type: EventTypeMessage, PlayerID: playerID, Message: text}
}
