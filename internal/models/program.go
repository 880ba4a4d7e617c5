package models

// Exercise is one movement in a workout day. TargetSets and TargetWeight are
// free-form display strings (e.g. "3x6-10", "40 kg").
type Exercise struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	TargetSets   string `json:"targetSets"`
	TargetWeight string `json:"targetWeight"`
}

// WorkoutDay is a named unit of the program with an ordered exercise list.
type WorkoutDay struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Exercises []Exercise `json:"exercises"`
}

// Settings holds user preferences. Rest durations are in seconds; zero values
// mean "use the default" (90s between sets, 120s between exercises).
type Settings struct {
	RestBetweenSets      int    `json:"restBetweenSets,omitempty"`
	RestBetweenExercises int    `json:"restBetweenExercises,omitempty"`
	MembershipStartDate  string `json:"membershipStartDate,omitempty"` // YYYY-MM-DD
	MembershipEndDate    string `json:"membershipEndDate,omitempty"`
}

// DefaultProgram returns the seed program used when no program has been saved.
func DefaultProgram() []WorkoutDay {
	return []WorkoutDay{
		{
			ID:   "routine-a",
			Name: "Routine A (Chest, Shoulders & Biceps)",
			Exercises: []Exercise{
				{ID: "clr-a", Name: "Cable Lateral Raise", TargetSets: "2x6-10", TargetWeight: "17.5 kg"},
				{ID: "idp", Name: "Incline Dumbbell Press", TargetSets: "3x6-10", TargetWeight: "40 kg"},
				{ID: "pf", Name: "Pec Fly", TargetSets: "2x6-10", TargetWeight: "80 kg"},
				{ID: "sohp", Name: "Smith Machine OHP", TargetSets: "3x6-10", TargetWeight: "27.5 kg"},
				{ID: "lr", Name: "Lateral Raise", TargetSets: "2x8-12", TargetWeight: "12.5 kg"},
				{ID: "idc", Name: "Incline Dumbbell Curl", TargetSets: "2x6-10", TargetWeight: "12.5 kg"},
				{ID: "bc", Name: "Barbell Curl", TargetSets: "3x6-10", TargetWeight: "15 kg"},
			},
		},
		{
			ID:   "routine-b",
			Name: "Routine B (Back & Triceps)",
			Exercises: []Exercise{
				{ID: "lpd", Name: "Lat Pulldown", TargetSets: "2x6-10", TargetWeight: "95 kg"},
				{ID: "br", Name: "Barbell Row", TargetSets: "3x6-10", TargetWeight: "90 kg"},
				{ID: "sr", Name: "Seated Row", TargetSets: "2x6-10", TargetWeight: "90 kg"},
				{ID: "po", Name: "Pull-over", TargetSets: "3x8-12", TargetWeight: "50 kg"},
				{ID: "fp", Name: "Facepull", TargetSets: "2x8-12", TargetWeight: "47.5 kg"},
				{ID: "pd", Name: "Triceps Pushdown", TargetSets: "2x6-10", TargetWeight: "60 kg"},
				{ID: "jmp", Name: "JM Press", TargetSets: "3x6-10", TargetWeight: "15 kg"},
			},
		},
		{
			ID:   "sq-day",
			Name: "Legs (Squat Focus)",
			Exercises: []Exercise{
				{ID: "sq", Name: "Squat", TargetSets: "5x5", TargetWeight: "60 kg"},
				{ID: "dl", Name: "Deadlift", TargetSets: "3x5", TargetWeight: "100 kg"},
				{ID: "bp-raw", Name: "Bench Press", TargetSets: "5x5", TargetWeight: "60 kg"},
				{ID: "ohp-raw", Name: "Overhead Press", TargetSets: "5x5", TargetWeight: "40 kg"},
			},
		},
	}
}
