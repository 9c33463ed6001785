package pipeline

import (
	"math"
	"strconv"
)

// FallbackOutcome is used when the winning price index has no corresponding
// outcome name. Length-mismatched payloads degrade instead of failing.
const FallbackOutcome = "Yes"

// SelectOutcome returns the favored outcome name and its implied odds. The
// favored outcome is the one at the maximum price, ties going to the first
// occurrence in source order. Odds are the same price as a whole percentage,
// rounded half away from zero. Never errors.
func SelectOutcome(outcomes []string, prices []float64) (favored, odds string) {
	if len(prices) == 0 {
		return FallbackOutcome, "0%"
	}

	maxIdx := 0
	for i, p := range prices {
		if p > prices[maxIdx] {
			maxIdx = i
		}
	}

	favored = FallbackOutcome
	if maxIdx < len(outcomes) {
		favored = outcomes[maxIdx]
	}

	odds = strconv.Itoa(int(math.Round(prices[maxIdx]*100))) + "%"
	return favored, odds
}
