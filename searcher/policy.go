package searcher

import (
	"math"
)

// ucb scores a child for selection: mean + c*sqrt(ln(N/n)) where N is the
// parent's visits and n the child's. A ratio of at most 1 earns no bonus, so
// the log never goes negative under the square root.
func ucb(mean float64, parentVisits int, visits int, c float64) float64 {
	if visits == 0 { // Prevent division by zero
		panic("cannot compute UCB: 0 visits")
	}

	ratio := float64(parentVisits) / float64(visits)
	if ratio <= 1 {
		return mean
	}
	return mean + c*math.Sqrt(math.Log(ratio))
}
