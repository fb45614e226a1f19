package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/delve-vitals/internal/events"
	"github.com/KirkDiggler/delve-vitals/internal/services"
	"github.com/KirkDiggler/delve-vitals/internal/services/turn"
)

type countingListener struct {
	count int
}

func (c *countingListener) HandleEvent(events.Event) error { c.count++; return nil }
func (c *countingListener) Priority() int                  { return 0 }
func (c *countingListener) ID() string                     { return "counter" }

func TestNewProvider_Defaults(t *testing.T) {
	provider := services.NewProvider(&services.ProviderConfig{})
	require.NotNil(t, provider.TurnService)
	require.NotNil(t, provider.EventBus)

	listener := &countingListener{}
	provider.EventBus.Subscribe(events.EventTypeRestStarted, listener)

	ctx := context.Background()
	p, err := provider.TurnService.Create(ctx, &turn.CreateInput{OwnerID: "owner-1", Name: "Hurin"})
	require.NoError(t, err)

	_, err = provider.TurnService.Rest(ctx, p.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, listener.count)
}
