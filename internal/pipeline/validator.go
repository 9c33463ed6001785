// Package pipeline drives one ingestion run: validate fetched events, derive
// the favored outcome, generate commentary and persist one article per event.
package pipeline

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/polypulse/engine/internal/models"
	"github.com/polypulse/engine/internal/polymarket"
)

// Validation failures. Each one routes the event to a counted skip without
// aborting the run.
var (
	ErrMissingID     = errors.New("event id missing")
	ErrNoMarkets     = errors.New("event has no markets")
	ErrMissingSeries = errors.New("outcomes or outcome prices missing")
	ErrBadPrice      = errors.New("outcome price is not a finite number")
	ErrNoUsablePrice = errors.New("no outcome price inside (0,1)")
)

// Validate converts a raw gamma event into a typed MarketEvent. Checks run in
// order: id present, at least one market, both outcome sequences present, all
// prices finite, and at least one price strictly between 0 and 1 — prices of
// exactly 0 or 1 carry no information worth an article. Untyped payload data
// never crosses this boundary.
func Validate(raw polymarket.Event) (*models.MarketEvent, error) {
	if raw.ID == "" {
		return nil, ErrMissingID
	}
	if len(raw.Markets) == 0 {
		return nil, ErrNoMarkets
	}

	market := raw.Markets[0]
	if len(market.Outcomes) == 0 || len(market.OutcomePrices) == 0 {
		return nil, ErrMissingSeries
	}

	prices := make([]float64, 0, len(market.OutcomePrices))
	usable := false
	for _, p := range market.OutcomePrices {
		f, err := strconv.ParseFloat(p, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("%w: %q", ErrBadPrice, p)
		}
		if f > 0 && f < 1 {
			usable = true
		}
		prices = append(prices, f)
	}
	if !usable {
		return nil, ErrNoUsablePrice
	}

	volume24hr := raw.Volume24hr
	if volume24hr == 0 {
		volume24hr = raw.Volume
	}

	return &models.MarketEvent{
		ID:           raw.ID,
		Title:        raw.Title,
		Slug:         raw.Slug,
		Image:        raw.Image,
		EndDate:      raw.EndDate,
		Volume24hr:   volume24hr,
		Liquidity:    raw.Liquidity,
		OpenInterest: raw.OpenInterest,
		Outcomes:     []string(market.Outcomes),
		Prices:       prices,
	}, nil
}
