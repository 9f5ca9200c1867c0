// Package calories estimates energy expenditure from metabolic intensity.
package calories

import (
	"math"

	"github.com/fitplan-app/fitplan-backend/internal/fitness/domain"
)

const (
	// Oxygen uptake at rest: 3.5 mL O2 per kg of body weight per minute.
	restingVO2 = 3.5
	// Dividing by 200 converts METS x kg x VO2 into kcal per minute.
	kcalDivisor = 200.0
	// Assumed pace of one repetition, in seconds.
	secondsPerRep = 3.0
)

// Estimate returns the estimated calories burned, rounded to the nearest
// whole calorie. It is a total function: missing or non-positive intensity,
// weight, or duration yields 0 rather than an error, since many catalog
// entries lack METS data.
func Estimate(mets, bodyWeightKg, durationMinutes float64) int {
	if mets <= 0 || bodyWeightKg <= 0 || durationMinutes <= 0 {
		return 0
	}
	return int(math.Round(mets * bodyWeightKg * restingVO2 / kcalDivisor * durationMinutes))
}

// RepDuration converts a repetition count into an elapsed-duration estimate
// in minutes, assuming three seconds per repetition.
func RepDuration(reps int) float64 {
	if reps <= 0 {
		return 0
	}
	return float64(reps) * secondsPerRep / 60
}

// ForExercise estimates the calories for one catalog exercise performed at
// its target rep count by a user of the given body weight.
func ForExercise(ex domain.Exercise, bodyWeightKg float64) int {
	return Estimate(ex.METSValue, bodyWeightKg, RepDuration(ex.Reps))
}
