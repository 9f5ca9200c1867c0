// Package service orchestrates screen transitions and delegates the core
// operations to the session engine and the directory reconciler.
package service

import (
	"errors"
	"log"
	"sync"

	"github.com/fitplan-app/fitplan-backend/internal/fitness/directory"
	"github.com/fitplan-app/fitplan-backend/internal/fitness/domain"
	"github.com/fitplan-app/fitplan-backend/internal/fitness/repository"
	"github.com/fitplan-app/fitplan-backend/internal/fitness/session"
)

// Screen identifies one application screen. The controller holds exactly one
// current value; transition methods replace it rather than mutating strings
// in handlers.
type Screen string

const (
	ScreenLogin           Screen = "login"
	ScreenRegistration    Screen = "registration"
	ScreenPlanner         Screen = "planner"
	ScreenWorkout         Screen = "workout"
	ScreenProfile         Screen = "profile"
	ScreenAdminDashboard  Screen = "adminDashboard"
	ScreenBooking         Screen = "booking"
	ScreenRoutines        Screen = "routines"
	ScreenCreateRoutine   Screen = "createRoutine"
	ScreenTrainingHistory Screen = "trainingHistory"
)

// staticScreens are informational screens reachable by plain navigation.
var staticScreens = map[Screen]bool{
	ScreenPlanner:         true,
	ScreenBooking:         true,
	ScreenRoutines:        true,
	ScreenCreateRoutine:   true,
	ScreenTrainingHistory: true,
}

// AppService owns the current session pointer: which profile is logged in
// and which profile, possibly another user's, is on the profile screen.
// Directory writes all go through the reconciler; every mutation persists
// the computed session-profile/directory pair before returning.
type AppService struct {
	mu sync.Mutex

	repo   *repository.StateRepository
	engine *session.Engine

	screen         Screen
	sessionProfile *domain.UserProfile
	viewedProfile  *domain.UserProfile
	dir            []domain.UserProfile
	plans          []domain.WeeklyPlan

	// Screen to return to after a profile save.
	returnScreen Screen
}

// NewAppService creates the controller in its pre-load state.
func NewAppService(repo *repository.StateRepository) *AppService {
	return &AppService{
		repo:         repo,
		engine:       session.NewEngine(),
		screen:       ScreenLogin,
		returnScreen: ScreenPlanner,
	}
}

// Load restores persisted state at startup, reconciles the session profile
// with the directory, and picks the initial screen.
func (s *AppService) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir, err := s.repo.LoadDirectory()
	if err != nil {
		return err
	}

	profile, err := s.repo.LoadSessionProfile()
	if err != nil && !errors.Is(err, domain.ErrProfileNotFound) {
		return err
	}

	profile, dir = directory.ReconcileOnLoad(profile, dir)
	s.sessionProfile = profile
	s.dir = dir

	if profile != nil {
		if err := s.repo.SaveBoth(*profile, dir); err != nil {
			return err
		}
		s.screen = ScreenPlanner
		log.Printf("Restored session for %s", profile.Email)
	} else {
		if err := s.repo.SaveDirectory(dir); err != nil {
			return err
		}
		s.screen = ScreenLogin
	}

	return nil
}

// Register creates an account and returns the user to the login screen.
// It does not log the new account in.
func (s *AppService) Register(name, email, password string, role domain.Role) (domain.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile, dir, err := directory.Register(s.dir, name, email, password, role)
	if err != nil {
		return domain.UserProfile{}, err
	}

	if err := s.repo.SaveDirectory(dir); err != nil {
		return domain.UserProfile{}, err
	}

	s.dir = dir
	s.screen = ScreenLogin
	return profile, nil
}

// Login authenticates against the directory, persists the session profile,
// and moves to the planner.
func (s *AppService) Login(email, password string) (domain.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile, err := directory.Authenticate(s.dir, email, password)
	if err != nil {
		return domain.UserProfile{}, err
	}

	if err := s.repo.SaveSessionProfile(profile); err != nil {
		return domain.UserProfile{}, err
	}

	s.sessionProfile = &profile
	s.viewedProfile = nil
	s.screen = ScreenPlanner
	return profile, nil
}

// Logout clears only the session pointer; the directory entry stays.
func (s *AppService) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.ClearSessionProfile(); err != nil {
		return err
	}

	s.sessionProfile = nil
	s.viewedProfile = nil
	s.screen = ScreenLogin
	return nil
}

// StartWorkout begins a timed session for the given day workout.
func (s *AppService) StartWorkout(workout domain.DayWorkout) (session.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sessionProfile == nil {
		return session.Snapshot{}, domain.ErrNotLoggedIn
	}

	if _, err := s.engine.Start(workout, s.sessionProfile.Weight); err != nil {
		return session.Snapshot{}, err
	}

	s.screen = ScreenWorkout
	return s.engine.Snapshot(), nil
}

// CompleteExercise marks one exercise done in the active session.
func (s *AppService) CompleteExercise(exerciseID string) (session.Snapshot, error) {
	if err := s.engine.MarkComplete(exerciseID); err != nil {
		return session.Snapshot{}, err
	}
	return s.engine.Snapshot(), nil
}

// NavigateExercise moves the session's current exercise pointer.
func (s *AppService) NavigateExercise(index int) (session.Snapshot, error) {
	if err := s.engine.Navigate(index); err != nil {
		return session.Snapshot{}, err
	}
	return s.engine.Snapshot(), nil
}

// CurrentSession returns the active session view.
func (s *AppService) CurrentSession() (session.Snapshot, error) {
	if s.engine.State() != session.StateInProgress {
		return session.Snapshot{}, domain.ErrSessionNotActive
	}
	return s.engine.Snapshot(), nil
}

// FinishWorkout terminates the session, applies the resulting record to the
// profile and directory in one reconciler step, persists both values, and
// returns to the planner. fullyCompleted=false is the early-exit path.
func (s *AppService) FinishWorkout(fullyCompleted bool) (domain.WorkoutRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sessionProfile == nil {
		return domain.WorkoutRecord{}, domain.ErrNotLoggedIn
	}

	record, err := s.engine.Finish(fullyCompleted)
	if err != nil {
		return domain.WorkoutRecord{}, err
	}

	updated, dir := directory.ApplyWorkoutCompletion(*s.sessionProfile, record, s.dir)
	if err := s.repo.SaveBoth(updated, dir); err != nil {
		return domain.WorkoutRecord{}, err
	}

	s.sessionProfile = &updated
	s.dir = dir
	s.screen = ScreenPlanner
	return record, nil
}

// ViewOwnProfile clears the viewed pointer so the session profile is the
// one edited, and opens the profile screen.
func (s *AppService) ViewOwnProfile() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sessionProfile == nil {
		return domain.ErrNotLoggedIn
	}

	s.viewedProfile = nil
	s.returnScreen = ScreenPlanner
	s.screen = ScreenProfile
	return nil
}

// OpenAdminDashboard shows the roster to an admin.
func (s *AppService) OpenAdminDashboard() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sessionProfile == nil {
		return domain.ErrNotLoggedIn
	}
	if s.sessionProfile.Role != domain.RoleAdmin {
		return domain.ErrNotAdmin
	}

	s.screen = ScreenAdminDashboard
	return nil
}

// ViewUser sets the viewed pointer to another user's directory entry and
// opens the profile screen on it.
func (s *AppService) ViewUser(email string) (domain.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sessionProfile == nil {
		return domain.UserProfile{}, domain.ErrNotLoggedIn
	}
	if s.sessionProfile.Role != domain.RoleAdmin {
		return domain.UserProfile{}, domain.ErrNotAdmin
	}

	for i := range s.dir {
		if s.dir[i].Email == email {
			viewed := s.dir[i]
			s.viewedProfile = &viewed
			s.returnScreen = ScreenAdminDashboard
			s.screen = ScreenProfile
			return viewed, nil
		}
	}

	return domain.UserProfile{}, domain.ErrProfileNotFound
}

// SaveProfileEdit runs the reconciliation rule for a profile save, persists
// the resulting pair, and returns to the screen the edit started from.
func (s *AppService) SaveProfileEdit(edit directory.ProfileEdit) (directory.EditResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sessionProfile == nil {
		return directory.EditResult{}, domain.ErrNotLoggedIn
	}

	result, err := directory.ApplyProfileEdit(edit, s.viewedProfile, *s.sessionProfile, s.dir)
	if err != nil {
		return directory.EditResult{}, err
	}

	if err := s.repo.SaveBoth(result.SessionProfile, result.Directory); err != nil {
		return directory.EditResult{}, err
	}

	s.sessionProfile = &result.SessionProfile
	s.viewedProfile = result.ViewedProfile
	s.dir = result.Directory
	s.screen = s.returnScreen
	return result, nil
}

// Navigate moves among screens that carry no core logic.
func (s *AppService) Navigate(target Screen) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !staticScreens[target] {
		return errors.New("unknown screen: " + string(target))
	}
	if s.sessionProfile == nil {
		return domain.ErrNotLoggedIn
	}

	s.screen = target
	return nil
}

// Plans returns the in-memory weekly plans. When none exist for the given
// week the caller receives an empty week; plans are never persisted.
func (s *AppService) Plans(weekOf string) domain.WeeklyPlan {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, plan := range s.plans {
		if plan.WeekOf == weekOf {
			return plan
		}
	}
	return domain.EmptyWeek(weekOf)
}

// UpdatePlans replaces or appends the plan for its week.
func (s *AppService) UpdatePlans(plan domain.WeeklyPlan) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.plans {
		if s.plans[i].WeekOf == plan.WeekOf {
			s.plans[i] = plan
			return
		}
	}
	s.plans = append(s.plans, plan)
}

// Directory returns the roster for the admin dashboard.
func (s *AppService) Directory() ([]domain.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sessionProfile == nil {
		return nil, domain.ErrNotLoggedIn
	}
	if s.sessionProfile.Role != domain.RoleAdmin {
		return nil, domain.ErrNotAdmin
	}

	dir := make([]domain.UserProfile, len(s.dir))
	copy(dir, s.dir)
	return dir, nil
}

// AppState is the controller's externally visible state.
type AppState struct {
	Screen         Screen              `json:"screen"`
	SessionProfile *domain.UserProfile `json:"sessionProfile,omitempty"`
	ViewedProfile  *domain.UserProfile `json:"viewedProfile,omitempty"`
}

// State reports the current screen and profiles.
func (s *AppService) State() AppState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return AppState{
		Screen:         s.screen,
		SessionProfile: s.sessionProfile,
		ViewedProfile:  s.viewedProfile,
	}
}

// Profile returns the profile the profile screen should show: the viewed
// one when an admin inspects another user, else the session profile.
func (s *AppService) Profile() (domain.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.viewedProfile != nil {
		return *s.viewedProfile, nil
	}
	if s.sessionProfile == nil {
		return domain.UserProfile{}, domain.ErrNotLoggedIn
	}
	return *s.sessionProfile, nil
}
