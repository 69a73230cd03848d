package usecases

import (
	"fmt"
	"math"
	"strconv"

	"github.com/stridemap/stridemap/internal/core/domain"
	"github.com/stridemap/stridemap/internal/pkg/geospatial"
	"github.com/stridemap/stridemap/internal/pkg/walktime"
)

const feetPerMile = 5280.0

// TotalDistanceFeet sums the lengths of all given paths.
func TotalDistanceFeet(paths []*domain.Path) float64 {
	var total float64
	for _, p := range paths {
		total += geospatial.PathLengthFeet(p.Vertices)
	}
	return total
}

// Summarize renders the totals panel read model. A zero total renders
// both fields as the "--" placeholder.
func Summarize(totalFeet float64) domain.Summary {
	if totalFeet == 0 {
		return domain.Summary{Distance: "--", Time: "--"}
	}
	return domain.Summary{
		Distance: fmt.Sprintf("%s ft (%.2f mi)", groupThousands(int(math.Round(totalFeet))), totalFeet/feetPerMile),
		Time:     walktime.FormatLong(walktime.SecondsFor(totalFeet)),
	}
}

// groupThousands inserts comma separators into a non-negative integer.
func groupThousands(n int) string {
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}
	var out []byte
	lead := len(s) % 3
	if lead > 0 {
		out = append(out, s[:lead]...)
	}
	for i := lead; i < len(s); i += 3 {
		if len(out) > 0 {
			out = append(out, ',')
		}
		out = append(out, s[i:i+3]...)
	}
	return string(out)
}
