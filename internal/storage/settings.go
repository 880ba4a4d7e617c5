package storage

import (
	"context"
	"fmt"

	"github.com/claude/liftlog/internal/models"
)

// Rest duration defaults, in seconds.
const (
	DefaultRestBetweenSets      = 90
	DefaultRestBetweenExercises = 120
)

// Settings returns user settings with defaults applied to unset rest
// durations. A missing or corrupt document yields pure defaults.
func (s *Store) Settings(ctx context.Context) models.Settings {
	var st models.Settings
	if _, err := s.loadDoc(ctx, docSettings, &st); err != nil {
		s.log.Warn("reading settings failed, using defaults", "error", err)
		st = models.Settings{}
	}
	if st.RestBetweenSets <= 0 {
		st.RestBetweenSets = DefaultRestBetweenSets
	}
	if st.RestBetweenExercises <= 0 {
		st.RestBetweenExercises = DefaultRestBetweenExercises
	}
	return st
}

// SaveSettings replaces the stored settings.
func (s *Store) SaveSettings(ctx context.Context, st models.Settings) error {
	if err := s.saveDoc(ctx, docSettings, st); err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}
	return nil
}
