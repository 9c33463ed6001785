package pipeline

import (
	"errors"
	"testing"

	"github.com/polypulse/engine/internal/polymarket"
)

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name string
		raw  polymarket.Event
		want error
	}{
		{
			name: "missing id",
			raw:  polymarket.Event{Title: "No id"},
			want: ErrMissingID,
		},
		{
			name: "no markets",
			raw:  polymarket.Event{ID: "1", Title: "Empty"},
			want: ErrNoMarkets,
		},
		{
			name: "missing outcomes",
			raw: polymarket.Event{ID: "2", Markets: []polymarket.Market{
				{OutcomePrices: polymarket.JSONStringArray{"0.5", "0.5"}},
			}},
			want: ErrMissingSeries,
		},
		{
			name: "missing prices",
			raw: polymarket.Event{ID: "3", Markets: []polymarket.Market{
				{Outcomes: polymarket.JSONStringArray{"Yes", "No"}},
			}},
			want: ErrMissingSeries,
		},
		{
			name: "unparseable price",
			raw: polymarket.Event{ID: "4", Markets: []polymarket.Market{
				{
					Outcomes:      polymarket.JSONStringArray{"Yes", "No"},
					OutcomePrices: polymarket.JSONStringArray{"0.6", "abc"},
				},
			}},
			want: ErrBadPrice,
		},
		{
			name: "infinite price",
			raw: polymarket.Event{ID: "5", Markets: []polymarket.Market{
				{
					Outcomes:      polymarket.JSONStringArray{"Yes"},
					OutcomePrices: polymarket.JSONStringArray{"1e999"},
				},
			}},
			want: ErrBadPrice,
		},
		{
			name: "only settled prices",
			raw: polymarket.Event{ID: "6", Markets: []polymarket.Market{
				{
					Outcomes:      polymarket.JSONStringArray{"Yes", "No"},
					OutcomePrices: polymarket.JSONStringArray{"1", "0"},
				},
			}},
			want: ErrNoUsablePrice,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			event, err := Validate(tc.raw)
			if !errors.Is(err, tc.want) {
				t.Errorf("Validate() error = %v, want %v", err, tc.want)
			}
			if event != nil {
				t.Errorf("Validate() returned event %+v for invalid input", event)
			}
		})
	}
}

func TestValidateSuccess(t *testing.T) {
	raw := polymarket.Event{
		ID:      "777",
		Title:   "Bitcoin to $100k?",
		Slug:    "bitcoin-to-100k",
		Image:   "https://example.com/btc.png",
		EndDate: "2025-12-31T00:00:00Z",
		Volume:  4200,
		Markets: []polymarket.Market{
			{
				Outcomes:      polymarket.JSONStringArray{"Yes", "No"},
				OutcomePrices: polymarket.JSONStringArray{"0.73", "0.27"},
			},
		},
	}

	event, err := Validate(raw)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if event.ID != "777" || event.Title != "Bitcoin to $100k?" {
		t.Errorf("unexpected identity fields: %+v", event)
	}
	if len(event.Prices) != 2 || event.Prices[0] != 0.73 || event.Prices[1] != 0.27 {
		t.Errorf("Prices = %v, want [0.73 0.27]", event.Prices)
	}
	if len(event.Outcomes) != 2 || event.Outcomes[0] != "Yes" {
		t.Errorf("Outcomes = %v, want [Yes No]", event.Outcomes)
	}

	// volume24hr falls back to the event-level volume field
	if event.Volume24hr != 4200 {
		t.Errorf("Volume24hr = %v, want 4200", event.Volume24hr)
	}
}

func TestValidateOnePriceInRangeIsEnough(t *testing.T) {
	raw := polymarket.Event{
		ID: "8",
		Markets: []polymarket.Market{
			{
				Outcomes:      polymarket.JSONStringArray{"A", "B", "C"},
				OutcomePrices: polymarket.JSONStringArray{"0", "0.5", "1"},
			},
		},
	}

	event, err := Validate(raw)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if len(event.Prices) != 3 {
		t.Errorf("Prices = %v, want all three parsed", event.Prices)
	}
}
