package calories

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fitplan-app/fitplan-backend/internal/fitness/domain"
)

func TestEstimate(t *testing.T) {
	t.Run("computes rounded kcal from METS, weight and duration", func(t *testing.T) {
		// 5 x 70 x 3.5 / 200 x 0.5 = 30.625 -> 31
		assert.Equal(t, 31, Estimate(5, 70, 0.5))
	})

	t.Run("known catalog values", func(t *testing.T) {
		assert.Equal(t, 98, Estimate(8, 70, 10))
		assert.Equal(t, 110, Estimate(3.5, 60, 30))
		assert.Equal(t, 223, Estimate(6, 85, 25))
	})

	t.Run("returns 0 for missing or non-positive intensity", func(t *testing.T) {
		assert.Equal(t, 0, Estimate(0, 70, 10))
		assert.Equal(t, 0, Estimate(-1, 70, 10))
	})

	t.Run("returns 0 for non-positive duration or weight", func(t *testing.T) {
		assert.Equal(t, 0, Estimate(5, 70, 0))
		assert.Equal(t, 0, Estimate(5, 70, -3))
		assert.Equal(t, 0, Estimate(5, 0, 10))
		assert.Equal(t, 0, Estimate(5, -70, 10))
	})
}

func TestRepDuration(t *testing.T) {
	assert.Equal(t, 0.5, RepDuration(10))
	assert.Equal(t, 0.0, RepDuration(0))
	assert.Equal(t, 0.0, RepDuration(-5))
	assert.InDelta(t, 0.6, RepDuration(12), 1e-9)
}

func TestForExercise(t *testing.T) {
	pushUps := domain.Exercise{ID: "ex-1", Name: "Push-ups", METSValue: 3.8, Reps: 10}
	squats := domain.Exercise{ID: "ex-2", Name: "Squats", METSValue: 5.0, Reps: 12}
	noMETS := domain.Exercise{ID: "ex-3", Name: "Mystery Move", Reps: 20}

	assert.Equal(t, 2, ForExercise(pushUps, 70))
	assert.Equal(t, 4, ForExercise(squats, 70))
	assert.Equal(t, 0, ForExercise(noMETS, 70))
}
