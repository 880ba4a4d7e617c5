package coach

import (
	"fmt"

	"github.com/claude/liftlog/internal/models"
)

// sessionSummary is the compressed view of one log sent to the model:
// date plus completed-set counts per exercise. Raw set data stays local.
type sessionSummary struct {
	Date      string   `json:"date"`
	Exercises []string `json:"exercises"`
}

func summarizeLogs(logs []models.WorkoutLog) []sessionSummary {
	summaries := make([]sessionSummary, 0, len(logs))
	for _, l := range logs {
		s := sessionSummary{Date: l.Date}
		for exID, sets := range l.Exercises {
			var completed int
			for _, set := range sets {
				if set.Completed {
					completed++
				}
			}
			if completed > 0 {
				s.Exercises = append(s.Exercises, fmt.Sprintf("%s: %d sets", exID, completed))
			}
		}
		summaries = append(summaries, s)
	}
	return summaries
}

type daySummary struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Exercises []string `json:"exercises"`
}

func summarizeProgram(program []models.WorkoutDay) []daySummary {
	days := make([]daySummary, 0, len(program))
	for _, d := range program {
		s := daySummary{ID: d.ID, Name: d.Name}
		for _, ex := range d.Exercises {
			s.Exercises = append(s.Exercises, fmt.Sprintf("%s (%s @ %s)", ex.Name, ex.TargetSets, ex.TargetWeight))
		}
		days = append(days, s)
	}
	return days
}
