package storage

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/claude/liftlog/internal/models"
)

// ErrInvalidLog marks a candidate log that fails validation.
var ErrInvalidLog = errors.New("invalid workout log")

// ListLogs returns all saved workout logs. A missing or corrupt logs
// document yields an empty slice; read failures never reach the caller.
func (s *Store) ListLogs(ctx context.Context) []models.WorkoutLog {
	var logs []models.WorkoutLog
	if _, err := s.loadDoc(ctx, docLogs, &logs); err != nil {
		s.log.Warn("reading logs failed, treating as empty", "error", err)
		return nil
	}
	return logs
}

// UpsertLog validates the candidate, recomputes its derived stats against
// all other saved logs, and persists it, replacing any log with the same
// (date, dayId) identity. It returns the finalized log.
//
// The candidate itself is excluded from the history before the PR
// comparison, so saving the same session repeatedly is idempotent.
func (s *Store) UpsertLog(ctx context.Context, candidate models.WorkoutLog) (models.WorkoutLog, error) {
	if err := validateLog(candidate); err != nil {
		return models.WorkoutLog{}, err
	}

	logs := s.ListLogs(ctx)

	history := make([]models.WorkoutLog, 0, len(logs))
	existingIdx := -1
	for i, l := range logs {
		if l.Date == candidate.Date && l.DayID == candidate.DayID {
			existingIdx = i
			continue
		}
		history = append(history, l)
	}

	stats := computeStats(candidate, history)
	finalized := candidate
	finalized.TotalVolume = stats.Volume
	finalized.TotalSets = stats.CompletedSets
	finalized.PRs = stats.PRs

	if existingIdx >= 0 {
		logs[existingIdx] = finalized
	} else {
		logs = append(logs, finalized)
	}

	if err := s.saveDoc(ctx, docLogs, logs); err != nil {
		return models.WorkoutLog{}, fmt.Errorf("saving workout log: %w", err)
	}
	return finalized, nil
}

// DeleteLog removes at most one log. An exact startTime match wins; without
// one the (date, dayId, duration) composite is used. Nothing matching is a
// no-op, never an error.
func (s *Store) DeleteLog(ctx context.Context, ref models.LogRef) error {
	logs := s.ListLogs(ctx)

	idx := -1
	if ref.StartTime > 0 {
		for i, l := range logs {
			if l.StartTime == ref.StartTime {
				idx = i
				break
			}
		}
	}
	if idx < 0 {
		for i, l := range logs {
			if l.Date == ref.Date && l.DayID == ref.DayID && l.Duration == ref.Duration {
				idx = i
				break
			}
		}
	}
	if idx < 0 {
		return nil
	}

	logs = append(logs[:idx], logs[idx+1:]...)
	if err := s.saveDoc(ctx, docLogs, logs); err != nil {
		return fmt.Errorf("deleting workout log: %w", err)
	}
	return nil
}

// LogsBetween returns logs whose calendar date falls within [start, end],
// inclusive, oldest first. Dates are YYYY-MM-DD strings.
func (s *Store) LogsBetween(ctx context.Context, start, end string) []models.WorkoutLog {
	var filtered []models.WorkoutLog
	for _, l := range s.ListLogs(ctx) {
		if l.Date >= start && l.Date <= end {
			filtered = append(filtered, l)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		if filtered[i].Date != filtered[j].Date {
			return filtered[i].Date < filtered[j].Date
		}
		return filtered[i].StartTime < filtered[j].StartTime
	})
	return filtered
}

// RecentLogs returns up to n logs, most recent date first.
func (s *Store) RecentLogs(ctx context.Context, n int) []models.WorkoutLog {
	logs := s.ListLogs(ctx)
	sort.SliceStable(logs, func(i, j int) bool {
		if logs[i].Date != logs[j].Date {
			return logs[i].Date > logs[j].Date
		}
		return logs[i].StartTime > logs[j].StartTime
	})
	if n > 0 && len(logs) > n {
		logs = logs[:n]
	}
	return logs
}

func validateLog(l models.WorkoutLog) error {
	if l.DayID == "" {
		return fmt.Errorf("%w: missing dayId", ErrInvalidLog)
	}
	if l.Date == "" {
		return fmt.Errorf("%w: missing date", ErrInvalidLog)
	}
	if _, err := time.Parse("2006-01-02", l.Date); err != nil {
		return fmt.Errorf("%w: date %q is not YYYY-MM-DD", ErrInvalidLog, l.Date)
	}
	if l.Duration < 0 {
		return fmt.Errorf("%w: negative duration", ErrInvalidLog)
	}
	return nil
}
