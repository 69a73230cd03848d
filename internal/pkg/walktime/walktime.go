package walktime

import (
	"math"
	"strconv"
)

// WalkingSpeedFeetPerSecond is the fixed speed used for all estimates.
const WalkingSpeedFeetPerSecond = 3.0

// SecondsFor returns the walking time in seconds for a distance in feet.
func SecondsFor(feet float64) float64 {
	return feet / WalkingSpeedFeetPerSecond
}

// roundMinutes rounds seconds to the nearest whole minute; exactly 30s
// rounds up.
func roundMinutes(seconds float64) int {
	return int(math.Round(seconds / 60))
}

// FormatShort renders a duration for segment labels: "<1m" or "Nm".
func FormatShort(seconds float64) string {
	m := roundMinutes(seconds)
	if m == 0 {
		return "<1m"
	}
	return strconv.Itoa(m) + "m"
}

// FormatLong renders a duration for totals: "<1 min", "1 min", "N min".
func FormatLong(seconds float64) string {
	m := roundMinutes(seconds)
	switch m {
	case 0:
		return "<1 min"
	case 1:
		return "1 min"
	default:
		return strconv.Itoa(m) + " min"
	}
}
