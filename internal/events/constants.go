package events

// Event type constants
const (
	// Display events
	EventTypeRedraw       EventType = "redraw"
	EventTypeMessage      EventType = "message"
	EventTypeMessageFlush EventType = "message_flush"
	EventTypeMapRedraw    EventType = "map_redraw"
	EventTypeBell         EventType = "bell"

	// Input events
	EventTypeInputFlush  EventType = "input_flush"
	EventTypePlayerMoved EventType = "player_moved"

	// Vitals events
	EventTypeHitpointWarning EventType = "hitpoint_warning"
	EventTypeDeath           EventType = "death"
	EventTypeCheatDeath      EventType = "cheat_death"
	EventTypeStatDrain       EventType = "stat_drain"

	// Resting events
	EventTypeRestStarted     EventType = "rest_started"
	EventTypeRestCompleted   EventType = "rest_completed"
	EventTypeRestInterrupted EventType = "rest_interrupted"
	EventTypeDisturb         EventType = "disturb"
)
