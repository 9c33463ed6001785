package models

// MarketEvent is one prediction-market question after validation.
// It exists only for the duration of a run and is never persisted.
type MarketEvent struct {
	ID      string
	Title   string
	Slug    string
	Image   string
	EndDate string

	// Aggregate metrics from the search payload. Refreshed by the
	// per-event detail lookup before the article is written.
	Volume24hr   float64
	Liquidity    float64
	OpenInterest float64

	// Parallel sequences from the event's lead market.
	Outcomes []string
	Prices   []float64
}
