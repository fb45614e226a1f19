package dice_test

import (
	"errors"
	"testing"

	"github.com/KirkDiggler/delve-vitals/internal/dice"
	mockdice "github.com/KirkDiggler/delve-vitals/internal/dice/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestManualMockRoller_Roll(t *testing.T) {
	tests := []struct {
		name       string
		setupRolls []int
		count      int
		sides      int
		bonus      int
		wantTotal  int
		wantRolls  []int
		wantErr    bool
	}{
		{
			name:       "single d10 roll",
			setupRolls: []int{7},
			count:      1,
			sides:      10,
			wantTotal:  7,
			wantRolls:  []int{7},
		},
		{
			name:       "2d8+3",
			setupRolls: []int{4, 5},
			count:      2,
			sides:      8,
			bonus:      3,
			wantTotal:  12,
			wantRolls:  []int{4, 5},
		},
		{
			name:       "not enough rolls",
			setupRolls: []int{10},
			count:      2,
			sides:      10,
			wantErr:    true,
		},
		{
			name:       "invalid roll for die size",
			setupRolls: []int{7},
			count:      1,
			sides:      6,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roller := mockdice.NewManualMockRoller()
			roller.SetRolls(tt.setupRolls)

			result, err := roller.Roll(tt.count, tt.sides, tt.bonus)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, result.Total)
			assert.Equal(t, tt.wantRolls, result.Rolls)
		})
	}
}

func TestRoll_Bounds(t *testing.T) {
	for i := 0; i < 200; i++ {
		result, err := dice.Roll(3, 6, 1)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, result.Total, 4)
		assert.LessOrEqual(t, result.Total, 19)
		assert.Equal(t, result.RawTotal+1, result.Total)
	}

	_, err := dice.Roll(0, 6, 0)
	assert.Error(t, err)
	_, err = dice.Roll(1, 0, 0)
	assert.Error(t, err)
}

func TestHelpers(t *testing.T) {
	roller := mockdice.NewManualMockRoller(1, 10, 3, 4, 50, 51)

	assert.Equal(t, 0, dice.Randint0(roller, 10))
	assert.Equal(t, 10, dice.Randint1(roller, 10))
	assert.Equal(t, 7, dice.Damroll(roller, 2, 4))
	assert.True(t, dice.PercentChance(roller, 50), "roll of 50 is 49 on a zero based d100")
	assert.False(t, dice.PercentChance(roller, 50))
	assert.False(t, dice.PercentChance(roller, 0))
	assert.Zero(t, roller.Remaining())
}

func TestHelpers_RollerErrorIsZero(t *testing.T) {
	ctrl := gomock.NewController(t)
	roller := mockdice.NewMockRoller(ctrl)
	roller.EXPECT().Roll(1, 20, 0).Return(nil, errors.New("broken dice"))

	assert.Equal(t, 0, dice.Randint1(roller, 20))
	assert.Equal(t, 0, dice.Randint1(roller, 0))
}
