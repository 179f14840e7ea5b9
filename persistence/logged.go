package persistence

import (
	"context"
	"time"

	"github.com/hupe1980/mirrorskill/core"
	"github.com/hupe1980/mirrorskill/logging"
)

// LoggedStore decorates an AttributesStore with a log line per call. User ids
// are not logged.
type LoggedStore struct {
	next   core.AttributesStore
	logger logging.Logger
}

// WithLogging wraps next. A nil logger returns next unchanged.
func WithLogging(next core.AttributesStore, logger logging.Logger) core.AttributesStore {
	if logger == nil {
		return next
	}
	return &LoggedStore{next: next, logger: logger}
}

// Get implements core.AttributesStore.
func (s *LoggedStore) Get(ctx context.Context, userID string) (core.State, error) {
	start := time.Now()
	st, err := s.next.Get(ctx, userID)
	s.log("get", time.Since(start), err)
	return st, err
}

// Save implements core.AttributesStore.
func (s *LoggedStore) Save(ctx context.Context, userID string, state core.State) error {
	start := time.Now()
	err := s.next.Save(ctx, userID, state)
	s.log("save", time.Since(start), err)
	return err
}

// Delete implements core.AttributesStore.
func (s *LoggedStore) Delete(ctx context.Context, userID string) error {
	start := time.Now()
	err := s.next.Delete(ctx, userID)
	s.log("delete", time.Since(start), err)
	return err
}

func (s *LoggedStore) log(op string, dur time.Duration, err error) {
	if pl, ok := s.logger.(interface {
		LogPersistence(op string, dur time.Duration, err error)
	}); ok {
		pl.LogPersistence(op, dur, err)
		return
	}
	if err != nil {
		s.logger.Error("persistence.call.failed", "operation", op, "duration", dur, "error", err.Error())
		return
	}
	s.logger.Debug("persistence.call.completed", "operation", op, "duration", dur)
}
