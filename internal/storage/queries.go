package storage

import (
	"context"
	"sort"
	"strings"
	"time"
)

// VolumePoint is one entry in the training-volume chart series.
type VolumePoint struct {
	Date   string  `json:"date"`
	DayID  string  `json:"dayId"`
	Volume float64 `json:"volume"`
}

// VolumeSeries returns per-session volume for the most recent limit logs,
// oldest first, ready for chart rendering.
func (s *Store) VolumeSeries(ctx context.Context, limit int) []VolumePoint {
	logs := s.ListLogs(ctx)
	sort.SliceStable(logs, func(i, j int) bool {
		if logs[i].Date != logs[j].Date {
			return logs[i].Date < logs[j].Date
		}
		return logs[i].StartTime < logs[j].StartTime
	})
	if limit > 0 && len(logs) > limit {
		logs = logs[len(logs)-limit:]
	}

	points := make([]VolumePoint, 0, len(logs))
	for _, l := range logs {
		points = append(points, VolumePoint{Date: l.Date, DayID: l.DayID, Volume: l.TotalVolume})
	}
	return points
}

// RecordEntry is the all-time best valid weight for one exercise.
type RecordEntry struct {
	ExerciseID string  `json:"exerciseId"`
	Weight     float64 `json:"weight"`
	Date       string  `json:"date"` // date the record was set
}

// PersonalRecords returns the best weight ever logged per exercise, sorted
// by exercise id. Only valid sets (completed, weight > 0, reps > 0) count.
func (s *Store) PersonalRecords(ctx context.Context) []RecordEntry {
	best := map[string]RecordEntry{}
	for _, l := range s.ListLogs(ctx) {
		for exID, sets := range l.Exercises {
			w := maxValidWeight(sets)
			if w == 0 {
				continue
			}
			cur, ok := best[exID]
			if !ok || w > cur.Weight {
				best[exID] = RecordEntry{ExerciseID: exID, Weight: w, Date: l.Date}
			}
		}
	}

	entries := make([]RecordEntry, 0, len(best))
	for _, e := range best {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ExerciseID < entries[j].ExerciseID })
	return entries
}

// ProfileStats summarizes training frequency for the profile view.
type ProfileStats struct {
	TotalWorkoutDays int `json:"totalWorkoutDays"`
	ThisMonth        int `json:"thisMonth"`
}

// GetProfileStats counts distinct workout dates overall and within the
// current month.
func (s *Store) GetProfileStats(ctx context.Context, now time.Time) ProfileStats {
	dates := map[string]bool{}
	for _, l := range s.ListLogs(ctx) {
		dates[l.Date] = true
	}

	monthPrefix := now.Format("2006-01")
	var stats ProfileStats
	for d := range dates {
		stats.TotalWorkoutDays++
		if strings.HasPrefix(d, monthPrefix) {
			stats.ThisMonth++
		}
	}
	return stats
}
