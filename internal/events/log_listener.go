package events

import "log"

// LogListener writes events to the standard logger
type LogListener struct {
	Name string
	// Logf defaults to log.Printf
	Logf func(format string, args ...any)
}

// HandleEvent implements EventListener
func (l *LogListener) HandleEvent(event Event) error {
	logf := l.Logf
	if logf == nil {
		logf = log.Printf
	}
	if event.Message != "" {
		logf("%s: player %s %s: %s", l.Name, event.PlayerID, event.Type, event.Message)
		return nil
	}
	logf("%s: player %s %s %v", l.Name, event.PlayerID, event.Type, event.Payload)
	return nil
}

// Priority implements EventListener
func (l *LogListener) Priority() int {
	return 100
}

// ID implements EventListener
func (l *LogListener) ID() string {
	return l.Name
}
