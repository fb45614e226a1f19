package delve

import (
	"strconv"
	"strings"

	"github.com/KirkDiggler/delve-vitals/internal/domain/rest"
	"github.com/KirkDiggler/delve-vitals/internal/errors"
)

// Rest mode option values, matching the classic rest prompt
const (
	ModeAsNeeded = "&"
	ModeHPAndSP  = "*"
	ModeHPOrSP   = "!"
	ModeSunlight = "sun"
	ModeRepeat   = "repeat"
)

// RestChoice is a parsed rest command
type RestChoice struct {
	Code   int
	Repeat bool
}

// ParseRestChoice turns the mode and turns options into a rest code.
// A numeric mode is treated as a turn count.
func ParseRestChoice(mode string, turns int, hasTurns bool) (RestChoice, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case ModeAsNeeded:
		return RestChoice{Code: rest.RestComplete}, nil
	case ModeHPAndSP:
		return RestChoice{Code: rest.RestAllPoints}, nil
	case ModeHPOrSP:
		return RestChoice{Code: rest.RestSomePoints}, nil
	case ModeSunlight:
		return RestChoice{Code: rest.RestSunlight}, nil
	case ModeRepeat:
		return RestChoice{Repeat: true}, nil
	case "":
		if !hasTurns {
			// the prompt defaults to resting as needed
			return RestChoice{Code: rest.RestComplete}, nil
		}
	default:
		n, err := strconv.Atoi(strings.TrimSpace(mode))
		if err != nil {
			return RestChoice{}, errors.InvalidArgumentf("unknown rest mode %q", mode)
		}
		turns, hasTurns = n, true
	}

	if turns <= 0 {
		return RestChoice{}, errors.InvalidArgumentf("rest for at least one turn (got %d)", turns)
	}
	return RestChoice{Code: min(turns, rest.MaxCount)}, nil
}

// DescribeCode renders a rest code for display
func DescribeCode(code int) string {
	switch code {
	case rest.RestComplete:
		return "as needed"
	case rest.RestAllPoints:
		return "until HP and SP are full"
	case rest.RestSomePoints:
		return "until HP or SP is full"
	case rest.RestSunlight:
		return "until the sun rises or sets"
	}
	if code > 0 {
		return strconv.Itoa(code) + " turns"
	}
	return "not resting"
}
