package events_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/delve-vitals/internal/events"
)

func TestLogListener(t *testing.T) {
	var lines []string
	listener := &events.LogListener{
		Name: "audit",
		Logf: func(format string, args ...any) {
			lines = append(lines, fmt.Sprintf(format, args...))
		},
	}

	bus := events.NewBus()
	bus.Subscribe(events.EventTypeDeath, listener)

	bus.Emit(events.Event{Type: events.EventTypeDeath, PlayerID: "p1", Payload: map[string]any{"cause": "a balrog"}})
	bus.Emit(events.NewMessage("p1", "You die."))

	require.Len(t, lines, 1)
	assert.Equal(t, "audit: player p1 death map[cause:a balrog]", lines[0])
	assert.Equal(t, "audit", listener.ID())
}
