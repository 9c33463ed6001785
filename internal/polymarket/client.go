// Package polymarket provides a client for Polymarket's public Gamma API.
// Implements the public-search feed and per-event detail lookups.
package polymarket

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
)

const (
	// API endpoint
	GammaAPIBase = "https://gamma-api.polymarket.com"

	// Feed defaults
	DefaultSearchQuery  = "q"
	DefaultSort         = "volume24hr"
	DefaultLimitPerType = 50
)

// Client provides access to the Gamma API.
type Client struct {
	gamma *resty.Client
}

// NewClient creates a new Polymarket client.
func NewClient() *Client {
	return &Client{
		gamma: resty.New().
			SetBaseURL(GammaAPIBase).
			SetTimeout(30 * time.Second).
			SetRetryCount(3).
			SetRetryWaitTime(1 * time.Second),
	}
}

// JSONStringArray handles fields that come as JSON-encoded strings.
type JSONStringArray []string

func (j *JSONStringArray) UnmarshalJSON(data []byte) error {
	// Try to unmarshal as a regular array first
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*j = arr
		return nil
	}

	// Try to unmarshal as a string containing JSON array
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}

	// Parse the inner JSON array
	if str == "" {
		*j = []string{}
		return nil
	}

	if err := json.Unmarshal([]byte(str), &arr); err != nil {
		return err
	}
	*j = arr
	return nil
}

// Market represents one market inside an event.
type Market struct {
	ID            string          `json:"id"`
	Question      string          `json:"question"`
	Slug          string          `json:"slug"`
	Outcomes      JSONStringArray `json:"outcomes"`
	OutcomePrices JSONStringArray `json:"outcomePrices"`
	Active        bool            `json:"active"`
	Closed        bool            `json:"closed"`
}

// Event represents a prediction-market event as returned by the API.
// Payloads are loosely typed; validation happens downstream.
type Event struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Slug         string   `json:"slug"`
	Image        string   `json:"image"`
	EndDate      string   `json:"endDate"`
	Active       bool     `json:"active"`
	Closed       bool     `json:"closed"`
	Volume       float64  `json:"volume"`
	Volume24hr   float64  `json:"volume24hr"`
	Liquidity    float64  `json:"liquidity"`
	OpenInterest float64  `json:"openInterest"`
	Markets      []Market `json:"markets"`
}

// SearchFilters represents parameters for the public-search feed.
type SearchFilters struct {
	Query        string
	Sort         string
	LimitPerType int
	ActiveOnly   bool
	KeepClosed   bool
}

type searchResponse struct {
	Events []Event `json:"events"`
}

// SearchEvents retrieves events from the public-search feed. Order is
// preserved from the API, so the source's sort key is the processing order.
func (c *Client) SearchEvents(ctx context.Context, filters SearchFilters) ([]Event, error) {
	params := url.Values{}

	query := filters.Query
	if query == "" {
		query = DefaultSearchQuery
	}
	params.Set("q", query)

	sort := filters.Sort
	if sort == "" {
		sort = DefaultSort
	}
	params.Set("sort", sort)

	limit := filters.LimitPerType
	if limit <= 0 {
		limit = DefaultLimitPerType
	}
	params.Set("limit_per_type", strconv.Itoa(limit))

	if filters.ActiveOnly {
		params.Set("events_status", "active")
	}
	if filters.KeepClosed {
		params.Set("keep_closed_markets", "1")
	}
	params.Set("cache", "true")
	params.Set("optimized", "true")

	log.Debug().
		Str("endpoint", "/public-search").
		Str("params", params.Encode()).
		Msg("Fetching events from Gamma API")

	resp, err := c.gamma.R().
		SetContext(ctx).
		SetQueryParamsFromValues(params).
		Get("/public-search")

	if err != nil {
		return nil, fmt.Errorf("failed to fetch events: %w", err)
	}

	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("public-search API returned %d: %s", resp.StatusCode(), resp.String())
	}

	var result searchResponse
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("failed to parse events: %w", err)
	}

	log.Debug().
		Int("count", len(result.Events)).
		Msg("Fetched events")

	return result.Events, nil
}

// GetEvent retrieves a single event by ID for extended metrics.
func (c *Client) GetEvent(ctx context.Context, eventID string) (*Event, error) {
	resp, err := c.gamma.R().
		SetContext(ctx).
		Get("/events/" + eventID)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch event: %w", err)
	}

	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("event API returned %d: %s", resp.StatusCode(), resp.String())
	}

	var event Event
	if err := json.Unmarshal(resp.Body(), &event); err != nil {
		return nil, fmt.Errorf("failed to parse event: %w", err)
	}

	return &event, nil
}
