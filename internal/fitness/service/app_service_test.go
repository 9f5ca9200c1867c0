package service

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitplan-app/fitplan-backend/internal/fitness/directory"
	"github.com/fitplan-app/fitplan-backend/internal/fitness/domain"
	"github.com/fitplan-app/fitplan-backend/internal/fitness/repository"
)

func setupApp(t *testing.T) (*AppService, *repository.StateRepository) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	require.NoError(t, client.Ping(context.Background()).Err())

	repo := repository.NewStateRepository(client)
	app := NewAppService(repo)
	require.NoError(t, app.Load())
	return app, repo
}

func twoExerciseWorkout() domain.DayWorkout {
	return domain.DayWorkout{
		Day: "Monday",
		Exercises: []domain.Exercise{
			{ID: "ex-push", Name: "Push-ups", Category: "Bodyweight", METSValue: 3.8, Reps: 10},
			{ID: "ex-squat", Name: "Squats", Category: "Bodyweight", METSValue: 5.0, Reps: 12},
		},
	}
}

func TestAppService_InitialScreen(t *testing.T) {
	t.Run("starts at login with no persisted session", func(t *testing.T) {
		app, _ := setupApp(t)
		assert.Equal(t, ScreenLogin, app.State().Screen)
	})

	t.Run("resumes at planner when a session was persisted", func(t *testing.T) {
		app, repo := setupApp(t)
		_, err := app.Register("Test User", "test@example.com", "password123", domain.RoleUser)
		require.NoError(t, err)
		_, err = app.Login("test@example.com", "password123")
		require.NoError(t, err)

		restarted := NewAppService(repo)
		require.NoError(t, restarted.Load())
		assert.Equal(t, ScreenPlanner, restarted.State().Screen)
		require.NotNil(t, restarted.State().SessionProfile)
		assert.Equal(t, "test@example.com", restarted.State().SessionProfile.Email)
	})
}

func TestAppService_RegisterAndLogin(t *testing.T) {
	app, repo := setupApp(t)

	profile, err := app.Register("Test User", "test@example.com", "password123", domain.RoleUser)
	require.NoError(t, err)

	// Registration persists the directory but does not log in.
	assert.Equal(t, ScreenLogin, app.State().Screen)
	assert.Nil(t, app.State().SessionProfile)

	dir, err := repo.LoadDirectory()
	require.NoError(t, err)
	require.Len(t, dir, 1)
	assert.Equal(t, profile, dir[0])

	_, err = app.Register("Other", "test@example.com", "password456", domain.RoleUser)
	assert.ErrorIs(t, err, domain.ErrEmailExists)

	_, err = app.Login("test@example.com", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	logged, err := app.Login("test@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, profile, logged)
	assert.Equal(t, ScreenPlanner, app.State().Screen)

	persisted, err := repo.LoadSessionProfile()
	require.NoError(t, err)
	assert.Equal(t, dir[0], *persisted)
}

func TestAppService_Logout(t *testing.T) {
	app, repo := setupApp(t)
	_, err := app.Register("Test User", "test@example.com", "password123", domain.RoleUser)
	require.NoError(t, err)
	_, err = app.Login("test@example.com", "password123")
	require.NoError(t, err)

	require.NoError(t, app.Logout())
	assert.Equal(t, ScreenLogin, app.State().Screen)
	assert.Nil(t, app.State().SessionProfile)

	// Only the session pointer is cleared, never the directory entry.
	_, err = repo.LoadSessionProfile()
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
	dir, err := repo.LoadDirectory()
	require.NoError(t, err)
	assert.Len(t, dir, 1)
}

func TestAppService_EndToEndWorkout(t *testing.T) {
	app, repo := setupApp(t)

	// Register with defaults, then log in.
	registered, err := app.Register("Test User", "test@example.com", "password123", domain.RoleUser)
	require.NoError(t, err)
	assert.Equal(t, domain.GenderOther, registered.Gender)
	assert.Equal(t, 0.0, registered.Weight)

	_, err = app.Login("test@example.com", "password123")
	require.NoError(t, err)

	// Set body weight via a profile edit; calorie estimates need it.
	require.NoError(t, app.ViewOwnProfile())
	edited := registered
	edited.Weight = 70
	_, err = app.SaveProfileEdit(directory.ProfileEdit{EditorRole: domain.RoleUser, Edited: edited})
	require.NoError(t, err)
	assert.Equal(t, ScreenPlanner, app.State().Screen)

	// Run the session.
	snap, err := app.StartWorkout(twoExerciseWorkout())
	require.NoError(t, err)
	assert.Equal(t, ScreenWorkout, app.State().Screen)
	assert.Len(t, snap.Exercises, 2)

	_, err = app.StartWorkout(twoExerciseWorkout())
	assert.ErrorIs(t, err, domain.ErrSessionActive)

	snap, err = app.CompleteExercise("ex-push")
	require.NoError(t, err)
	assert.Equal(t, 1, snap.CurrentIndex)
	snap, err = app.CompleteExercise("ex-squat")
	require.NoError(t, err)
	assert.Len(t, snap.CompletedIDs, 2)
	assert.Equal(t, 6, snap.TotalCalories)

	record, err := app.FinishWorkout(true)
	require.NoError(t, err)
	assert.Equal(t, ScreenPlanner, app.State().Screen)
	assert.Equal(t, 6, record.CaloriesBurned)
	require.Len(t, record.ExercisesPerformed, 2)
	assert.Equal(t, 2, record.ExercisesPerformed[0].Calories)
	assert.Equal(t, 4, record.ExercisesPerformed[1].Calories)

	// Session profile and directory entry share the appended history.
	persisted, err := repo.LoadSessionProfile()
	require.NoError(t, err)
	dir, err := repo.LoadDirectory()
	require.NoError(t, err)
	require.Len(t, dir, 1)
	require.Len(t, persisted.WorkoutHistory, 1)
	assert.Equal(t, persisted.WorkoutHistory, dir[0].WorkoutHistory)
}

func TestAppService_AbandonWorkout(t *testing.T) {
	app, _ := setupApp(t)
	_, err := app.Register("Test User", "test@example.com", "password123", domain.RoleUser)
	require.NoError(t, err)
	_, err = app.Login("test@example.com", "password123")
	require.NoError(t, err)

	_, err = app.StartWorkout(twoExerciseWorkout())
	require.NoError(t, err)

	record, err := app.FinishWorkout(false)
	require.NoError(t, err)
	assert.Empty(t, record.ExercisesPerformed)
	assert.Equal(t, 0, record.CaloriesBurned)
	assert.Equal(t, ScreenPlanner, app.State().Screen)

	// The abandoned session is still recorded in history.
	profile, err := app.Profile()
	require.NoError(t, err)
	assert.Len(t, profile.WorkoutHistory, 1)
}

func TestAppService_AdminWorkflow(t *testing.T) {
	app, _ := setupApp(t)
	_, err := app.Register("Admin User", "admin@example.com", "adminpw", domain.RoleAdmin)
	require.NoError(t, err)
	_, err = app.Register("Plain User", "user@example.com", "userpw12", domain.RoleUser)
	require.NoError(t, err)

	_, err = app.Login("admin@example.com", "adminpw")
	require.NoError(t, err)

	require.NoError(t, app.OpenAdminDashboard())
	assert.Equal(t, ScreenAdminDashboard, app.State().Screen)

	users, err := app.Directory()
	require.NoError(t, err)
	assert.Len(t, users, 2)

	viewed, err := app.ViewUser("user@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Plain User", viewed.Name)
	assert.Equal(t, ScreenProfile, app.State().Screen)

	// Admin edits the other user; the admin's own session stays put.
	edited := viewed
	edited.MembershipType = domain.MembershipPremium
	result, err := app.SaveProfileEdit(directory.ProfileEdit{EditorRole: domain.RoleAdmin, Edited: edited})
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", result.SessionProfile.Email)
	require.NotNil(t, result.ViewedProfile)
	assert.Equal(t, domain.MembershipPremium, result.ViewedProfile.MembershipType)
	assert.Equal(t, ScreenAdminDashboard, app.State().Screen)

	_, err = app.ViewUser("ghost@example.com")
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestAppService_AdminGuards(t *testing.T) {
	app, _ := setupApp(t)
	_, err := app.Register("Plain User", "user@example.com", "userpw12", domain.RoleUser)
	require.NoError(t, err)
	_, err = app.Login("user@example.com", "userpw12")
	require.NoError(t, err)

	assert.ErrorIs(t, app.OpenAdminDashboard(), domain.ErrNotAdmin)
	_, err = app.Directory()
	assert.ErrorIs(t, err, domain.ErrNotAdmin)
	_, err = app.ViewUser("user@example.com")
	assert.ErrorIs(t, err, domain.ErrNotAdmin)
}

func TestAppService_Plans(t *testing.T) {
	app, _ := setupApp(t)

	empty := app.Plans("2024-06-10")
	assert.Equal(t, "2024-06-10", empty.WeekOf)
	assert.Len(t, empty.Workouts, len(domain.Weekdays))
	for _, w := range empty.Workouts {
		assert.Empty(t, w.Exercises)
	}

	plan := domain.EmptyWeek("2024-06-10")
	plan.Workouts[0].Exercises = twoExerciseWorkout().Exercises
	app.UpdatePlans(plan)

	stored := app.Plans("2024-06-10")
	assert.Len(t, stored.Workouts[0].Exercises, 2)

	plan.Workouts[0].Exercises = plan.Workouts[0].Exercises[:1]
	app.UpdatePlans(plan)
	assert.Len(t, app.Plans("2024-06-10").Workouts[0].Exercises, 1)
}

func TestAppService_Navigate(t *testing.T) {
	app, _ := setupApp(t)

	assert.ErrorIs(t, app.Navigate(ScreenBooking), domain.ErrNotLoggedIn)

	_, err := app.Register("Test User", "test@example.com", "password123", domain.RoleUser)
	require.NoError(t, err)
	_, err = app.Login("test@example.com", "password123")
	require.NoError(t, err)

	require.NoError(t, app.Navigate(ScreenBooking))
	assert.Equal(t, ScreenBooking, app.State().Screen)

	require.NoError(t, app.Navigate(ScreenTrainingHistory))
	assert.Equal(t, ScreenTrainingHistory, app.State().Screen)

	assert.Error(t, app.Navigate(Screen("nonsense")))
}
