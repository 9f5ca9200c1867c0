package http

import "github.com/fitplan-app/fitplan-backend/internal/fitness/domain"

type registerReq struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     domain.Role `json:"role"`
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type navigateReq struct {
	Screen string `json:"screen"`
}

type startWorkoutReq struct {
	Workout domain.DayWorkout `json:"workout"`
}

type completeExerciseReq struct {
	ExerciseID string `json:"exerciseId"`
}

type navigateExerciseReq struct {
	Index int `json:"index"`
}

type finishWorkoutReq struct {
	FullyCompleted bool `json:"fullyCompleted"`
}

type viewUserReq struct {
	Email string `json:"email"`
}

type profileEditReq struct {
	Profile            domain.UserProfile `json:"profile"`
	NewPassword        string             `json:"newPassword,omitempty"`
	ConfirmNewPassword string             `json:"confirmNewPassword,omitempty"`
}

type updatePlanReq struct {
	Plan domain.WeeklyPlan `json:"plan"`
}
