package rest_test

import (
	"testing"

	"github.com/KirkDiggler/delve-vitals/internal/domain/rest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMachine_FixedCountRunsExactly(t *testing.T) {
	m := &rest.Machine{}
	require.Equal(t, rest.Started, m.Begin(10))
	assert.Equal(t, rest.ModeFixed, m.Mode())

	steps := 0
	for m.IsResting() {
		res := m.Step()
		assert.True(t, res.Counted)
		steps++
		require.LessOrEqual(t, steps, 10)
	}

	assert.Equal(t, 10, steps)
	assert.Equal(t, rest.ModeIdle, m.Mode())
	assert.Equal(t, rest.EndCompleted, m.LastEnd())
	assert.Equal(t, 10, m.RepeatCount())
	assert.Zero(t, m.TurnsRested())
}

func TestMachine_Begin(t *testing.T) {
	tests := []struct {
		name      string
		code      int
		want      rest.BeginResult
		wantCount int
		resting   bool
	}{
		{name: "fixed", code: 25, want: rest.Started, wantCount: 25, resting: true},
		{name: "capped", code: 20000, want: rest.Started, wantCount: rest.MaxCount, resting: true},
		{name: "all points", code: rest.RestAllPoints, want: rest.Started, wantCount: rest.RestAllPoints, resting: true},
		{name: "complete", code: rest.RestComplete, want: rest.Started, wantCount: rest.RestComplete, resting: true},
		{name: "some points", code: rest.RestSomePoints, want: rest.Started, wantCount: rest.RestSomePoints, resting: true},
		{name: "sunlight", code: rest.RestSunlight, want: rest.Started, wantCount: rest.RestSunlight, resting: true},
		{name: "negative rejected", code: -7, want: rest.Rejected},
		{name: "zero is idle", code: 0, want: rest.Started},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &rest.Machine{}
			assert.Equal(t, tt.want, m.Begin(tt.code))
			assert.Equal(t, tt.wantCount, m.Count())
			assert.Equal(t, tt.resting, m.IsResting())
		})
	}
}

func TestMachine_RejectedKeepsRepeatCount(t *testing.T) {
	m := &rest.Machine{}
	m.Begin(15)
	m.Cancel(false)

	assert.Equal(t, rest.Rejected, m.Begin(-9))
	assert.Equal(t, 15, m.RepeatCount())
}

func TestMachine_DisturbedCancelSwallowsNextBegin(t *testing.T) {
	m := &rest.Machine{}
	m.Begin(rest.RestAllPoints)
	m.Step()

	m.Cancel(true)
	assert.False(t, m.IsResting())
	assert.True(t, m.Interrupted())
	assert.Equal(t, rest.EndDisturbed, m.LastEnd())

	assert.Equal(t, rest.Swallowed, m.Begin(10))
	assert.False(t, m.IsResting())
	assert.False(t, m.Interrupted())

	assert.Equal(t, rest.Started, m.Begin(10))
	assert.True(t, m.IsResting())
}

func TestMachine_CanRegenerate(t *testing.T) {
	m := &rest.Machine{}
	m.Begin(20)
	for i := 0; i < rest.RequiredForRegen-1; i++ {
		m.Step()
		assert.False(t, m.CanRegenerate(), "turn %d", i+1)
	}
	m.Step()
	assert.True(t, m.CanRegenerate())

	special := &rest.Machine{}
	special.Begin(rest.RestSomePoints)
	assert.True(t, special.CanRegenerate(), "special modes always qualify")

	m.Cancel(false)
	assert.False(t, m.CanRegenerate())
}

func TestMachine_ShouldStop(t *testing.T) {
	tests := []struct {
		name   string
		code   int
		status rest.Status
		want   bool
	}{
		{name: "all points needs both", code: rest.RestAllPoints, status: rest.Status{HPFull: true}, want: false},
		{name: "all points full", code: rest.RestAllPoints, status: rest.Status{HPFull: true, ManaFull: true}, want: true},
		{name: "some points hp", code: rest.RestSomePoints, status: rest.Status{HPFull: true}, want: true},
		{name: "some points mana", code: rest.RestSomePoints, status: rest.Status{ManaFull: true}, want: true},
		{name: "some points neither", code: rest.RestSomePoints, want: false},
		{name: "complete", code: rest.RestComplete, status: rest.Status{HPFull: true, ManaFull: true}, want: true},
		{name: "complete combat regen ignores mana", code: rest.RestComplete, status: rest.Status{HPFull: true, CombatRegen: true}, want: true},
		{name: "complete blocked", code: rest.RestComplete, status: rest.Status{HPFull: true, ManaFull: true, Blocked: true}, want: false},
		{name: "complete recall pending", code: rest.RestComplete, status: rest.Status{HPFull: true, ManaFull: true, RecallPending: true}, want: false},
		{name: "complete descent pending", code: rest.RestComplete, status: rest.Status{HPFull: true, ManaFull: true, DescentPending: true}, want: false},
		{name: "sunlight boundary", code: rest.RestSunlight, status: rest.Status{Turn: 50004, DayLength: 10000}, want: true},
		{name: "sunlight mid day", code: rest.RestSunlight, status: rest.Status{Turn: 50010, DayLength: 10000}, want: false},
		{name: "fixed never special stops", code: 5, status: rest.Status{HPFull: true, ManaFull: true}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &rest.Machine{}
			m.Begin(tt.code)
			assert.Equal(t, tt.want, m.ShouldStop(tt.status))
		})
	}
}

func TestMachine_Finish(t *testing.T) {
	m := &rest.Machine{}
	m.Begin(rest.RestComplete)
	m.Step()
	m.Finish()

	assert.False(t, m.IsResting())
	assert.False(t, m.Interrupted())
	assert.Equal(t, rest.EndCompleted, m.LastEnd())
	assert.Equal(t, rest.RestComplete, m.RepeatCount())
}

func TestMachine_StateRoundTrip(t *testing.T) {
	m := &rest.Machine{}
	m.Begin(40)
	m.Step()
	m.Step()

	restored := rest.NewMachine(m.State())
	assert.Equal(t, m.State(), restored.State())
	assert.Equal(t, 38, restored.Count())
	assert.Equal(t, 2, restored.TurnsRested())
}

func TestIsSunlightChange(t *testing.T) {
	assert.True(t, rest.IsSunlightChange(0, 10000))
	assert.True(t, rest.IsSunlightChange(100009, 10000))
	assert.False(t, rest.IsSunlightChange(100010, 10000))
	assert.False(t, rest.IsSunlightChange(77, 0))
}

func TestMachine_NewSessionForgetsPreviousEnd(t *testing.T) {
	m := &rest.Machine{}
	m.Begin(5)
	m.Cancel(true)
	m.ClearInterrupt()

	require.Equal(t, rest.Started, m.Begin(rest.RestAllPoints))
	assert.Equal(t, rest.EndNone, m.LastEnd())

	m.Cancel(false)
	assert.Equal(t, rest.EndCancelled, m.LastEnd())
	assert.False(t, m.Interrupted())
}
