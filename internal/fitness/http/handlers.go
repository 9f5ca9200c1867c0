package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fitplan-app/fitplan-backend/internal/fitness/directory"
	"github.com/fitplan-app/fitplan-backend/internal/fitness/domain"
	"github.com/fitplan-app/fitplan-backend/internal/fitness/service"
)

// Handler exposes the application controller over HTTP. Each route invokes
// exactly one core operation; screens validate their own input format, the
// core owns email-uniqueness and password rules.
type Handler struct {
	app *service.AppService
}

func NewHandler(app *service.AppService) *Handler {
	return &Handler{app: app}
}

func (h *Handler) register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, email and password are required"})
		return
	}
	if req.Role == "" {
		req.Role = domain.RoleUser
	}

	profile, err := h.app.Register(req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"profile": profile})
}

func (h *Handler) login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	profile, err := h.app.Login(req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

func (h *Handler) logout(c *gin.Context) {
	if err := h.app.Logout(); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) state(c *gin.Context) {
	c.JSON(http.StatusOK, h.app.State())
}

func (h *Handler) navigate(c *gin.Context) {
	var req navigateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.app.Navigate(service.Screen(req.Screen)); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.app.State())
}

func (h *Handler) profile(c *gin.Context) {
	profile, err := h.app.Profile()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

func (h *Handler) viewOwnProfile(c *gin.Context) {
	if err := h.app.ViewOwnProfile(); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.app.State())
}

func (h *Handler) saveProfile(c *gin.Context) {
	var req profileEditReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	state := h.app.State()
	if state.SessionProfile == nil {
		writeError(c, domain.ErrNotLoggedIn)
		return
	}

	edit := directory.ProfileEdit{
		EditorRole:         state.SessionProfile.Role,
		Edited:             req.Profile,
		NewPassword:        req.NewPassword,
		ConfirmNewPassword: req.ConfirmNewPassword,
	}

	result, err := h.app.SaveProfileEdit(edit)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profile":   result.SessionProfile,
		"viewed":    result.ViewedProfile,
		"screen":    h.app.State().Screen,
		"directory": len(result.Directory),
	})
}

func (h *Handler) adminUsers(c *gin.Context) {
	users, err := h.app.Directory()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

func (h *Handler) adminDashboard(c *gin.Context) {
	if err := h.app.OpenAdminDashboard(); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.app.State())
}

func (h *Handler) adminViewUser(c *gin.Context) {
	var req viewUserReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
		return
	}

	profile, err := h.app.ViewUser(req.Email)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

func (h *Handler) getPlan(c *gin.Context) {
	weekOf := c.Query("weekOf")
	if weekOf == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "weekOf is required"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"plan": h.app.Plans(weekOf), "catalog": domain.DefaultCatalog()})
}

func (h *Handler) updatePlan(c *gin.Context) {
	var req updatePlanReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Plan.WeekOf == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "plan with weekOf is required"})
		return
	}

	h.app.UpdatePlans(req.Plan)
	c.JSON(http.StatusOK, gin.H{"plan": req.Plan})
}

func (h *Handler) startWorkout(c *gin.Context) {
	var req startWorkoutReq
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Workout.Exercises) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "workout with exercises is required"})
		return
	}

	snap, err := h.app.StartWorkout(req.Workout)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"session": snap})
}

func (h *Handler) currentWorkout(c *gin.Context) {
	snap, err := h.app.CurrentSession()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": snap})
}

func (h *Handler) completeExercise(c *gin.Context) {
	var req completeExerciseReq
	if err := c.ShouldBindJSON(&req); err != nil || req.ExerciseID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "exerciseId is required"})
		return
	}

	snap, err := h.app.CompleteExercise(req.ExerciseID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"session": snap})
}

func (h *Handler) navigateExercise(c *gin.Context) {
	var req navigateExerciseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	snap, err := h.app.NavigateExercise(req.Index)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"session": snap})
}

func (h *Handler) finishWorkout(c *gin.Context) {
	var req finishWorkoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	record, err := h.app.FinishWorkout(req.FullyCompleted)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"record": record})
}

// writeError maps domain errors to HTTP statuses. Every core failure is
// recoverable and surfaces as an inline message, never a crash.
func writeError(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrEmailExists), errors.Is(err, domain.ErrSessionActive):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrNotLoggedIn):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrNotAdmin):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrProfileNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrPasswordMismatch), errors.Is(err, domain.ErrPasswordTooShort):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrSessionNotActive), errors.Is(err, domain.ErrIndexOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
