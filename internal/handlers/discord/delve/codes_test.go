package delve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/delve-vitals/internal/domain/rest"
	"github.com/KirkDiggler/delve-vitals/internal/errors"
	"github.com/KirkDiggler/delve-vitals/internal/handlers/discord/delve"
)

func TestParseRestChoice(t *testing.T) {
	testCases := []struct {
		name     string
		mode     string
		turns    int
		hasTurns bool
		want     delve.RestChoice
		wantErr  bool
	}{
		{name: "as needed", mode: "&", want: delve.RestChoice{Code: rest.RestComplete}},
		{name: "hp and sp", mode: "*", want: delve.RestChoice{Code: rest.RestAllPoints}},
		{name: "hp or sp", mode: "!", want: delve.RestChoice{Code: rest.RestSomePoints}},
		{name: "sunlight", mode: "SUN", want: delve.RestChoice{Code: rest.RestSunlight}},
		{name: "repeat", mode: "repeat", want: delve.RestChoice{Repeat: true}},
		{name: "default is as needed", want: delve.RestChoice{Code: rest.RestComplete}},
		{name: "turns", turns: 25, hasTurns: true, want: delve.RestChoice{Code: 25}},
		{name: "numeric mode", mode: " 40 ", want: delve.RestChoice{Code: 40}},
		{name: "turns are capped", turns: 20000, hasTurns: true, want: delve.RestChoice{Code: rest.MaxCount}},
		{name: "zero turns", turns: 0, hasTurns: true, wantErr: true},
		{name: "negative numeric", mode: "-3", wantErr: true},
		{name: "nonsense", mode: "forever", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := delve.ParseRestChoice(tc.mode, tc.turns, tc.hasTurns)
			if tc.wantErr {
				assert.True(t, errors.IsInvalidArgument(err))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDescribeCode(t *testing.T) {
	assert.Equal(t, "as needed", delve.DescribeCode(rest.RestComplete))
	assert.Equal(t, "12 turns", delve.DescribeCode(12))
	assert.Equal(t, "not resting", delve.DescribeCode(0))
}

func TestBar(t *testing.T) {
	assert.Equal(t, "█████░░░░░", delve.Bar(5, 10))
	assert.Equal(t, "██████████", delve.Bar(30, 10))
	assert.Equal(t, "░░░░░░░░░░", delve.Bar(-4, 10))
	assert.Equal(t, "░░░░░░░░░░", delve.Bar(0, 0))
}
