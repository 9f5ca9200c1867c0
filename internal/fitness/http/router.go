package http

import "github.com/gin-gonic/gin"

// Register attaches the fitness routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/auth/register", h.register)
	rg.POST("/auth/login", h.login)
	rg.POST("/auth/logout", h.logout)

	rg.GET("/state", h.state)
	rg.POST("/navigate", h.navigate)

	rg.GET("/profile", h.profile)
	rg.PUT("/profile", h.saveProfile)
	rg.POST("/profile/view-own", h.viewOwnProfile)

	rg.GET("/admin/users", h.adminUsers)
	rg.POST("/admin/dashboard", h.adminDashboard)
	rg.POST("/admin/users/view", h.adminViewUser)

	rg.GET("/plans", h.getPlan)
	rg.PUT("/plans", h.updatePlan)

	rg.POST("/workouts/start", h.startWorkout)
	rg.GET("/workouts/current", h.currentWorkout)
	rg.POST("/workouts/current/complete", h.completeExercise)
	rg.POST("/workouts/current/navigate", h.navigateExercise)
	rg.POST("/workouts/current/finish", h.finishWorkout)
}
