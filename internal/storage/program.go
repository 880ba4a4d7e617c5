package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/claude/liftlog/internal/models"
)

// ErrInvalidProgram marks a program that fails validation.
var ErrInvalidProgram = errors.New("invalid program")

// Program returns the saved workout program, or the built-in seed program
// when none has been saved yet. The seed is not persisted until the user
// edits it.
func (s *Store) Program(ctx context.Context) []models.WorkoutDay {
	var days []models.WorkoutDay
	found, err := s.loadDoc(ctx, docProgram, &days)
	if err != nil {
		s.log.Warn("reading program failed, using default", "error", err)
		return models.DefaultProgram()
	}
	if !found {
		return models.DefaultProgram()
	}
	return days
}

// SaveProgram replaces the stored program. Days and exercises added by the
// client without an id get one assigned; the finalized program is returned.
func (s *Store) SaveProgram(ctx context.Context, days []models.WorkoutDay) ([]models.WorkoutDay, error) {
	seen := make(map[string]bool, len(days))
	for i := range days {
		if days[i].ID == "" {
			days[i].ID = uuid.NewString()
		}
		if seen[days[i].ID] {
			return nil, fmt.Errorf("%w: duplicate day id %q", ErrInvalidProgram, days[i].ID)
		}
		seen[days[i].ID] = true

		for j := range days[i].Exercises {
			if days[i].Exercises[j].ID == "" {
				days[i].Exercises[j].ID = uuid.NewString()
			}
		}
	}
	if err := s.saveDoc(ctx, docProgram, days); err != nil {
		return nil, fmt.Errorf("saving program: %w", err)
	}
	return days, nil
}

// NextRecommendedDayID returns the program day that follows the most
// recently logged one, wrapping around at the end. With no history it
// recommends the first day; an empty program yields "".
func (s *Store) NextRecommendedDayID(ctx context.Context) string {
	program := s.Program(ctx)
	if len(program) == 0 {
		return ""
	}

	recent := s.RecentLogs(ctx, 1)
	if len(recent) == 0 {
		return program[0].ID
	}

	for i, day := range program {
		if day.ID == recent[0].DayID {
			return program[(i+1)%len(program)].ID
		}
	}
	// Last logged day is no longer in the program; start over.
	return program[0].ID
}
