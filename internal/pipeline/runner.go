package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/polypulse/engine/internal/content"
	"github.com/polypulse/engine/internal/models"
	"github.com/polypulse/engine/internal/polymarket"
	"github.com/rs/zerolog/log"
)

// Fetcher lists candidate market events and resolves per-event metrics.
type Fetcher interface {
	SearchEvents(ctx context.Context, filters polymarket.SearchFilters) ([]polymarket.Event, error)
	GetEvent(ctx context.Context, eventID string) (*polymarket.Event, error)
}

// Generator produces commentary text for a rendered prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Store persists articles keyed by event id.
type Store interface {
	ArticleExists(ctx context.Context, eventID string) (bool, error)
	InsertArticle(ctx context.Context, article *models.Article) (bool, error)
}

// Config holds run parameters.
type Config struct {
	// Limit caps how many fetched events are processed. Zero means all.
	Limit       int
	SearchQuery string
	SearchSort  string

	// ReferenceDate is captured once per run so every prompt renders the
	// same date.
	ReferenceDate time.Time
}

// Runner executes one ingestion run. Events are processed strictly
// sequentially in fetch order; each event's external calls complete before
// the next event begins.
type Runner struct {
	fetcher Fetcher
	gen     Generator
	store   Store
	cfg     Config
}

// NewRunner creates a run driver.
func NewRunner(fetcher Fetcher, gen Generator, store Store, cfg Config) *Runner {
	return &Runner{
		fetcher: fetcher,
		gen:     gen,
		store:   store,
		cfg:     cfg,
	}
}

// Run fetches the event feed and processes each event to a terminal state.
// Only a feed-level fetch failure is fatal; every per-event failure is
// counted and the run moves on.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	events, err := r.fetcher.SearchEvents(ctx, polymarket.SearchFilters{
		Query:      r.cfg.SearchQuery,
		Sort:       r.cfg.SearchSort,
		ActiveOnly: true,
		KeepClosed: true,
	})
	if err != nil {
		return nil, fmt.Errorf("fetch market events: %w", err)
	}

	if r.cfg.Limit > 0 && len(events) > r.cfg.Limit {
		events = events[:r.cfg.Limit]
	}

	log.Info().Int("events", len(events)).Msg("Processing market events")

	report := &Report{Fetched: len(events)}
	for _, raw := range events {
		r.processEvent(ctx, raw, report)
	}

	report.Log()
	return report, nil
}

// processEvent walks a single event through the state machine:
// Fetched -> Validated|skip -> Existing|New -> Generated|failed -> Persisted.
func (r *Runner) processEvent(ctx context.Context, raw polymarket.Event, report *Report) {
	event, err := Validate(raw)
	if err != nil {
		log.Warn().
			Err(err).
			Str("event_id", raw.ID).
			Str("title", raw.Title).
			Msg("Skipping malformed event")
		report.Skipped++
		return
	}

	exists, err := r.store.ArticleExists(ctx, event.ID)
	if err != nil {
		log.Error().Err(err).Str("event_id", event.ID).Msg("Existence check failed")
		report.Failed++
		return
	}
	if exists {
		log.Debug().Str("title", event.Title).Msg("Article already exists")
		report.Existing++
		return
	}

	favored, odds := SelectOutcome(event.Outcomes, event.Prices)

	prompt := content.BuildPrompt(content.PromptInput{
		Title:   event.Title,
		Favored: favored,
		Odds:    odds,
		Date:    r.cfg.ReferenceDate.Format(content.ReferenceDateFormat),
	})

	text, err := r.gen.Generate(ctx, prompt)
	if err != nil {
		log.Error().
			Err(err).
			Str("event_id", event.ID).
			Str("title", event.Title).
			Msg("Generation failed")
		report.Failed++
		return
	}

	article := r.assembleArticle(ctx, event, favored, odds, content.Parse(text))

	inserted, err := r.store.InsertArticle(ctx, article)
	if err != nil {
		log.Error().Err(err).Str("event_id", event.ID).Msg("Failed to save article")
		report.Failed++
		return
	}
	if !inserted {
		// Lost the conditional insert to an overlapping run.
		log.Debug().Str("event_id", event.ID).Msg("Article written by another run")
		report.Existing++
		return
	}

	report.Added++
	log.Info().
		Str("title", event.Title).
		Str("favored", favored).
		Str("odds", odds).
		Msg("Article added")
}

// assembleArticle builds the persisted record. The detail lookup is best
// effort: on failure the feed-level metrics stand in and the article is
// written anyway.
func (r *Runner) assembleArticle(ctx context.Context, event *models.MarketEvent, favored, odds string, parsed content.Parsed) *models.Article {
	volume24hr := event.Volume24hr
	liquidity := event.Liquidity
	openInterest := event.OpenInterest

	detail, err := r.fetcher.GetEvent(ctx, event.ID)
	if err != nil {
		log.Warn().
			Err(err).
			Str("event_id", event.ID).
			Msg("Detail lookup failed, using feed metrics")
	} else {
		if detail.Volume24hr > 0 {
			volume24hr = detail.Volume24hr
		}
		liquidity = detail.Liquidity
		openInterest = detail.OpenInterest
	}

	return &models.Article{
		EventID:       event.ID,
		Title:         event.Title,
		Slug:          event.Slug,
		Image:         event.Image,
		Hook:          parsed.Hook,
		Body:          content.StripHookPrefix(parsed.Hook, parsed.Body),
		Favored:       favored,
		Odds:          odds,
		Volume24hr:    volume24hr,
		Liquidity:     liquidity,
		OpenInterest:  openInterest,
		EndDate:       event.EndDate,
		ArticleDate:   r.cfg.ReferenceDate.Format(content.ReferenceDateFormat),
		PromptVersion: content.PromptVersion,
	}
}
