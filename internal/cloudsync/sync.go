// Package cloudsync simulates pushing job cards to a remote system: after a
// delay every job card is marked Synced. Nothing leaves the process.
package cloudsync

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
)

// DefaultDelay matches the simulated upload time.
const DefaultDelay = time.Second

// Marker flips every job card to Synced in one whole-document write.
type Marker interface {
	MarkAllSynced(ctx context.Context) (int, error)
}

// Syncer runs simulated sync passes against a record store.
type Syncer struct {
	store  Marker
	delay  time.Duration
	logger *log.Logger
}

// NewSyncer creates a syncer. A negative delay is treated as zero.
func NewSyncer(store Marker, delay time.Duration, logger *log.Logger) *Syncer {
	if delay < 0 {
		delay = 0
	}
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &Syncer{store: store, delay: delay, logger: logger}
}

// Sync waits out the delay, then marks every job card Synced. It returns
// the number of job cards written, or ctx's error if cancelled first.
func (s *Syncer) Sync(ctx context.Context) (int, error) {
	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case <-timer.C:
	}

	n, err := s.store.MarkAllSynced(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Cloud sync failed")
		return 0, err
	}
	s.logger.WithField("job_cards", n).Info("Cloud sync complete")
	return n, nil
}

// Start runs Sync in the background and returns immediately. Overlapping
// passes are not coordinated; the last write wins.
func (s *Syncer) Start(ctx context.Context) <-chan error {
	done := make(chan error, 1)
	go func() {
		_, err := s.Sync(ctx)
		done <- err
		close(done)
	}()
	return done
}
