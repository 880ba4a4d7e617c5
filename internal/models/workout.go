package models

// SetRecord is one performed set of an exercise. RPE is an optional 1-10
// effort rating; it is carried through persistence but has no effect on
// derived stats.
type SetRecord struct {
	Reps      int      `json:"reps"`
	Weight    float64  `json:"weight"`
	RPE       *float64 `json:"rpe,omitempty"`
	Completed bool     `json:"completed"`
}

// WorkoutLog is the saved record of one workout session. At most one log
// exists per (Date, DayID) pair. TotalVolume, TotalSets, and PRs are derived
// fields recomputed in full on every save; they are never patched in place.
type WorkoutLog struct {
	Date        string                 `json:"date"` // calendar date, YYYY-MM-DD
	DayID       string                 `json:"dayId"`
	StartTime   int64                  `json:"startTime,omitempty"` // ms since epoch
	EndTime     int64                  `json:"endTime,omitempty"`
	Duration    int                    `json:"duration,omitempty"` // seconds
	TotalVolume float64                `json:"totalVolume"`
	TotalSets   int                    `json:"totalSets"`
	PRs         []string               `json:"prs,omitempty"` // exercise ids with a new max weight
	Exercises   map[string][]SetRecord `json:"exercises"`
}

// LogRef identifies a log for deletion. StartTime, when set, takes precedence
// over the composite (Date, DayID, Duration) match.
type LogRef struct {
	Date      string `json:"date"`
	DayID     string `json:"dayId"`
	StartTime int64  `json:"startTime,omitempty"`
	Duration  int    `json:"duration,omitempty"`
}

// SessionMarker is the single in-progress workout indicator. At most one
// exists at a time; it is cleared when a workout is finished or abandoned.
type SessionMarker struct {
	DayID     string `json:"dayId"`
	StartTime int64  `json:"startTime"` // ms since epoch
}
