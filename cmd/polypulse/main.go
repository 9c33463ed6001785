// PolyPulse - Markets don't lie. We translate.
// One-shot run: fetch prediction-market events, generate commentary and
// persist one article per unique event.
package main

import (
	"context"
	"os"
	"time"

	"github.com/polypulse/engine/internal/config"
	"github.com/polypulse/engine/internal/gemini"
	"github.com/polypulse/engine/internal/pipeline"
	"github.com/polypulse/engine/internal/polymarket"
	"github.com/polypulse/engine/internal/storage"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Setup logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	log.Info().Msg("PolyPulse - Starting article run")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.RunTimeout)
	defer cancel()

	// Initialize storage
	store, err := storage.NewStore(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer store.Close(ctx)

	// Initialize Polymarket client
	pmClient := polymarket.NewClient()

	// Initialize Gemini client
	llmClient := gemini.NewClient(gemini.Config{
		APIKey:   cfg.GeminiAPIKey,
		Endpoint: cfg.GeminiEndpoint,
		Model:    cfg.GeminiModel,
	})
	log.Info().Str("model", cfg.GeminiModel).Msg("Gemini client initialized")

	runner := pipeline.NewRunner(pmClient, llmClient, store, pipeline.Config{
		Limit:         cfg.EventLimit,
		SearchQuery:   cfg.SearchQuery,
		SearchSort:    cfg.SearchSort,
		ReferenceDate: cfg.ReferenceDate(time.Now()),
	})

	if _, err := runner.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("Run aborted")
	}
}
