package pipeline

import "github.com/rs/zerolog/log"

// Report accumulates per-run outcome counts.
type Report struct {
	Fetched  int // events returned by the search feed (after the run limit)
	Added    int // articles written this run
	Existing int // events whose article already existed
	Skipped  int // events dropped by validation
	Failed   int // per-event generation or store failures
}

// Log emits the run summary.
func (r *Report) Log() {
	log.Info().
		Int("fetched", r.Fetched).
		Int("added", r.Added).
		Int("existing", r.Existing).
		Int("skipped", r.Skipped).
		Int("failed", r.Failed).
		Msg("Run complete")
}
