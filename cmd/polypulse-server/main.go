// PolyPulse read API. Serves the persisted articles collection to the
// display layer.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/polypulse/engine/internal/api"
	"github.com/polypulse/engine/internal/config"
	"github.com/polypulse/engine/internal/storage"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Setup logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	log.Info().Msg("PolyPulse - Starting read API")

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

	ctx := context.Background()

	// Initialize storage
	store, err := storage.NewStore(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer store.Close(ctx)

	server := api.NewServer(store, cfg.HTTPAddr)

	// Setup signal handling
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.Start(); err != nil {
			log.Error().Err(err).Msg("API server error")
		}
	}()

	log.Info().Str("api", cfg.HTTPAddr).Msg("PolyPulse read API running")

	<-sigChan
	log.Info().Msg("Shutdown signal received")

	server.Shutdown(context.Background())
	log.Info().Msg("PolyPulse read API stopped")
}
