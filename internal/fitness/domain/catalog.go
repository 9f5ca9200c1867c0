package domain

// Weekdays are the configured plan days for a weekly plan.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// EmptyWeek returns a plan for the given week with no exercises scheduled.
func EmptyWeek(weekOf string) WeeklyPlan {
	workouts := make([]DayWorkout, 0, len(Weekdays))
	for _, day := range Weekdays {
		workouts = append(workouts, DayWorkout{Day: day, Exercises: []Exercise{}})
	}
	return WeeklyPlan{WeekOf: weekOf, Workouts: workouts}
}

// DefaultCatalog is the built-in exercise library offered by the planner.
// METS values follow the compendium figures for moderate-effort execution;
// entries without a measured value carry zero and contribute no calories.
func DefaultCatalog() []Exercise {
	return []Exercise{
		{ID: "cat-push-ups", Name: "Push-ups", Category: "Bodyweight", METSValue: 3.8, Reps: 10},
		{ID: "cat-squats", Name: "Squats", Category: "Bodyweight", METSValue: 5.0, Reps: 10},
		{ID: "cat-bench-press", Name: "Bench Press", Category: "Strength", METSValue: 3.5, Reps: 10},
		{ID: "cat-deadlift", Name: "Deadlift", Category: "Strength", METSValue: 6.0, Reps: 10},
		{ID: "cat-pull-ups", Name: "Pull-ups", Category: "Bodyweight", METSValue: 8.0, Reps: 10},
		{ID: "cat-bicep-curls", Name: "Bicep Curls", Category: "Strength", METSValue: 3.5, Reps: 10},
		{ID: "cat-shoulder-press", Name: "Shoulder Press", Category: "Strength", METSValue: 3.5, Reps: 10},
		{ID: "cat-lunges", Name: "Lunges", Category: "Bodyweight", METSValue: 4.0, Reps: 10},
		{ID: "cat-plank", Name: "Plank", Category: "Core", METSValue: 3.3, Reps: 10},
		{ID: "cat-leg-press", Name: "Leg Press", Category: "Strength", METSValue: 5.0, Reps: 10},
	}
}
