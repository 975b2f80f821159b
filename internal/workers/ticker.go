package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-books-api/internal/logger"
)

// Ticker is a [Worker] that calls task once per interval until its context
// is done.
type Ticker struct {
	name     string
	interval time.Duration
	task     func(ctx context.Context)
	logger   *logger.Logger
}

// NewTicker returns a Ticker named name. A non-positive interval makes Run
// return immediately.
func NewTicker(name string, interval time.Duration, task func(ctx context.Context), log *logger.Logger) *Ticker {
	return &Ticker{
		name:     name,
		interval: interval,
		task:     task,
		logger:   &logger.Logger{Logger: log.With().Str("worker", name).Logger()},
	}
}

// Run implements [Worker].
func (t *Ticker) Run(ctx context.Context) {
	if t.interval <= 0 {
		t.logger.Info().Msg("worker disabled")
		return
	}

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	t.logger.Info().Dur("interval", t.interval).Msg("worker started")
	ctx = t.logger.WithContext(ctx)

	for {
		select {
		case <-ctx.Done():
			t.logger.Info().Msg("worker stopped")
			return
		case <-ticker.C:
			t.task(ctx)
		}
	}
}
