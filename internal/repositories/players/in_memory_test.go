package players_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/delve-vitals/internal/domain/player"
	"github.com/KirkDiggler/delve-vitals/internal/domain/shared"
	"github.com/KirkDiggler/delve-vitals/internal/errors"
	"github.com/KirkDiggler/delve-vitals/internal/repositories/players"
	"github.com/KirkDiggler/delve-vitals/internal/repositories/players/mocks"
)

func TestInMemoryRepository(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	clock := mocks.NewMockTimeProvider(ctrl)
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	clock.EXPECT().Now().Return(now).AnyTimes()

	repo := players.NewInMemoryRepositoryWithTime(clock)

	p := player.New(player.Config{ID: "p1", OwnerID: "o1", Name: "Finrod", MaxHP: 50, MaxMana: 20})
	p.Equipment = shared.NewFlagSet(shared.FlagRegen)
	require.NoError(t, repo.Create(ctx, p))
	assert.Equal(t, now, p.CreatedAt)

	err := repo.Create(ctx, p)
	assert.Equal(t, errors.CodeAlreadyExists, errors.GetCode(err))

	got, err := repo.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Finrod", got.Name)
	assert.True(t, got.HasFlag(shared.FlagRegen))

	// stored copies are not shared with callers
	got.Vitals.HP.Current = 1
	again, err := repo.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 50, again.Vitals.HP.Current)

	require.NoError(t, repo.Update(ctx, got))
	again, err = repo.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 1, again.Vitals.HP.Current)

	p2 := player.New(player.Config{ID: "p0", OwnerID: "o1", Name: "Orodreth", MaxHP: 40})
	require.NoError(t, repo.Create(ctx, p2))

	list, err := repo.ListByOwner(ctx, "o1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "p0", list[0].ID)

	require.NoError(t, repo.Delete(ctx, "p0"))
	list, err = repo.ListByOwner(ctx, "o1")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = repo.Get(ctx, "p0")
	assert.True(t, errors.IsNotFound(err))
	assert.True(t, errors.IsNotFound(repo.Update(ctx, p2)))
	assert.True(t, errors.IsNotFound(repo.Delete(ctx, "p0")))
	assert.True(t, errors.IsInvalidArgument(repo.Create(ctx, nil)))
}
