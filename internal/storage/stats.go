package storage

import (
	"sort"

	"github.com/claude/liftlog/internal/models"
)

// SessionStats holds the derived metrics for one workout log.
type SessionStats struct {
	Volume        float64
	CompletedSets int
	PRs           []string
}

// computeStats derives volume, completed-set count, and personal records for
// a candidate log against its history. The caller must exclude any log
// sharing the candidate's identity from history, otherwise a re-saved
// session would compare against itself and lose its PRs.
func computeStats(candidate models.WorkoutLog, history []models.WorkoutLog) SessionStats {
	var stats SessionStats

	for exID, sets := range candidate.Exercises {
		var currentMax float64
		for _, set := range sets {
			if !isValidSet(set) {
				continue
			}
			stats.Volume += set.Weight * float64(set.Reps)
			stats.CompletedSets++
			if set.Weight > currentMax {
				currentMax = set.Weight
			}
		}

		// Strictly greater: matching a previous max is not a new record.
		if currentMax > 0 && currentMax > historicalMax(history, exID) {
			stats.PRs = append(stats.PRs, exID)
		}
	}

	sort.Strings(stats.PRs)
	return stats
}

// isValidSet reports whether a set counts toward volume and records. A
// completed set with zero weight or zero reps is a data-entry artifact and
// contributes nothing.
func isValidSet(s models.SetRecord) bool {
	return s.Completed && s.Weight > 0 && s.Reps > 0
}

// maxValidWeight returns the heaviest valid set, or 0 if none qualify.
func maxValidWeight(sets []models.SetRecord) float64 {
	var max float64
	for _, s := range sets {
		if isValidSet(s) && s.Weight > max {
			max = s.Weight
		}
	}
	return max
}

// historicalMax returns the heaviest valid weight ever logged for the
// exercise across history, or 0 if the exercise never appears.
func historicalMax(history []models.WorkoutLog, exerciseID string) float64 {
	var max float64
	for _, log := range history {
		if w := maxValidWeight(log.Exercises[exerciseID]); w > max {
			max = w
		}
	}
	return max
}
