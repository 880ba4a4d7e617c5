package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/claude/liftlog/internal/models"
)

// StartSession records the start of a workout for dayID and returns the
// start time in ms since epoch. If a session for the same day is already
// running its original start time is returned unchanged, so a double tap on
// "start" never resets the clock. Starting a different day overwrites the
// single marker slot.
func (s *Store) StartSession(ctx context.Context, dayID string) (int64, error) {
	if start, ok := s.ActiveStart(ctx, dayID); ok {
		return start, nil
	}

	marker := models.SessionMarker{DayID: dayID, StartTime: time.Now().UnixMilli()}
	if err := s.saveDoc(ctx, docSession, marker); err != nil {
		return 0, fmt.Errorf("starting session: %w", err)
	}
	return marker.StartTime, nil
}

// ActiveStart returns the running session's start time, but only when the
// marker belongs to dayID. A marker for another day stays hidden rather
// than being cleared.
func (s *Store) ActiveStart(ctx context.Context, dayID string) (int64, bool) {
	var marker models.SessionMarker
	found, err := s.loadDoc(ctx, docSession, &marker)
	if err != nil {
		s.log.Warn("reading session marker failed", "error", err)
		return 0, false
	}
	if !found || marker.DayID != dayID {
		return 0, false
	}
	return marker.StartTime, true
}

// EndSession clears the session marker regardless of which day it belongs
// to. Ending with no active session is a no-op.
func (s *Store) EndSession(ctx context.Context) error {
	if err := s.deleteDoc(ctx, docSession); err != nil {
		return fmt.Errorf("ending session: %w", err)
	}
	return nil
}
