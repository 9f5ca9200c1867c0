// Package directory keeps the logged-in profile and the roster of all known
// users consistent. All operations are pure: they take the current directory
// and return updated copies; callers own persistence.
package directory

import (
	"github.com/fitplan-app/fitplan-backend/internal/fitness/domain"
)

const minPasswordLength = 6

// Register creates a profile with registration defaults and appends it to
// the directory. The email must not already be registered.
func Register(dir []domain.UserProfile, name, email, password string, role domain.Role) (domain.UserProfile, []domain.UserProfile, error) {
	if _, ok := findByEmail(dir, email); ok {
		return domain.UserProfile{}, dir, domain.ErrEmailExists
	}

	profile := domain.NewUserProfile(name, email, password, role)
	updated := make([]domain.UserProfile, 0, len(dir)+1)
	updated = append(updated, dir...)
	updated = append(updated, profile)
	return profile, updated, nil
}

// Authenticate looks a profile up by email and requires an exact password
// match. Unknown email and wrong password report the same generic error so
// the response does not leak which emails are registered.
func Authenticate(dir []domain.UserProfile, email, password string) (domain.UserProfile, error) {
	i, ok := findByEmail(dir, email)
	if !ok || dir[i].Password != password {
		return domain.UserProfile{}, domain.ErrInvalidCredentials
	}
	return dir[i], nil
}

// ReconcileOnLoad restores the directory invariant at startup: a persisted
// session profile absent from the loaded directory is appended to it, and a
// profile persisted under an older schema gets the registration defaults for
// fields it is missing.
func ReconcileOnLoad(sessionProfile *domain.UserProfile, dir []domain.UserProfile) (*domain.UserProfile, []domain.UserProfile) {
	if sessionProfile == nil {
		return nil, dir
	}

	p := *sessionProfile
	if p.Role == "" {
		p.Role = domain.RoleUser
	}
	if p.MembershipType == "" {
		p.MembershipType = domain.MembershipTrial
	}
	if p.WorkoutHistory == nil {
		p.WorkoutHistory = []domain.WorkoutRecord{}
	}
	if p.FitnessGoals == nil {
		p.FitnessGoals = []string{}
	}

	if i, ok := findByEmail(dir, p.Email); ok {
		updated := replaceAt(dir, i, p)
		return &p, updated
	}

	updated := make([]domain.UserProfile, 0, len(dir)+1)
	updated = append(updated, dir...)
	updated = append(updated, p)
	return &p, updated
}

// ApplyWorkoutCompletion appends the record to the session profile's history
// and replaces the matching directory entry, so profile and directory leave
// the call in sync.
func ApplyWorkoutCompletion(sessionProfile domain.UserProfile, record domain.WorkoutRecord, dir []domain.UserProfile) (domain.UserProfile, []domain.UserProfile) {
	updated := sessionProfile
	history := make([]domain.WorkoutRecord, 0, len(sessionProfile.WorkoutHistory)+1)
	history = append(history, sessionProfile.WorkoutHistory...)
	history = append(history, record)
	updated.WorkoutHistory = history

	if i, ok := findByEmail(dir, sessionProfile.Email); ok {
		return updated, replaceAt(dir, i, updated)
	}

	newDir := make([]domain.UserProfile, 0, len(dir)+1)
	newDir = append(newDir, dir...)
	newDir = append(newDir, updated)
	return updated, newDir
}

// ProfileEdit is one submitted edit. Edited carries the full profile as the
// editing screen assembled it; NewPassword is empty when unchanged.
type ProfileEdit struct {
	EditorRole         domain.Role
	Edited             domain.UserProfile
	NewPassword        string
	ConfirmNewPassword string
}

// EditResult carries the reconciled outputs of a profile edit. Callers must
// persist SessionProfile and Directory together.
type EditResult struct {
	SessionProfile domain.UserProfile
	ViewedProfile  *domain.UserProfile
	Directory      []domain.UserProfile
}

// ApplyProfileEdit is the single reconciliation rule for profile saves.
// When the editor is viewing someone else's profile (admin workflow), only
// that directory entry and the viewed pointer change. Otherwise the session
// profile, its directory entry, and a self-referencing viewed pointer all
// update together. Email, role, and membership type submitted by non-admins
// are discarded in favor of the stored values.
func ApplyProfileEdit(edit ProfileEdit, viewedProfile *domain.UserProfile, sessionProfile domain.UserProfile, dir []domain.UserProfile) (EditResult, error) {
	editingOther := viewedProfile != nil && viewedProfile.Email != sessionProfile.Email

	base := sessionProfile
	if editingOther {
		base = *viewedProfile
	}

	merged := edit.Edited
	if edit.EditorRole != domain.RoleAdmin {
		merged.Email = base.Email
		merged.Role = base.Role
		merged.MembershipType = base.MembershipType
	}

	switch {
	case edit.NewPassword == "":
		merged.Password = base.Password
	case edit.NewPassword != edit.ConfirmNewPassword:
		return EditResult{}, domain.ErrPasswordMismatch
	case len(edit.NewPassword) < minPasswordLength:
		return EditResult{}, domain.ErrPasswordTooShort
	default:
		merged.Password = edit.NewPassword
	}

	if editingOther {
		updatedDir := dir
		if i, ok := findByEmail(dir, viewedProfile.Email); ok {
			updatedDir = replaceAt(dir, i, merged)
		}
		return EditResult{
			SessionProfile: sessionProfile,
			ViewedProfile:  &merged,
			Directory:      updatedDir,
		}, nil
	}

	updatedDir := dir
	if i, ok := findByEmail(dir, sessionProfile.Email); ok {
		updatedDir = replaceAt(dir, i, merged)
	}

	updatedViewed := viewedProfile
	if viewedProfile != nil && viewedProfile.Email == sessionProfile.Email {
		updatedViewed = &merged
	}

	return EditResult{
		SessionProfile: merged,
		ViewedProfile:  updatedViewed,
		Directory:      updatedDir,
	}, nil
}

func findByEmail(dir []domain.UserProfile, email string) (int, bool) {
	for i := range dir {
		if dir[i].Email == email {
			return i, true
		}
	}
	return 0, false
}

func replaceAt(dir []domain.UserProfile, i int, p domain.UserProfile) []domain.UserProfile {
	updated := make([]domain.UserProfile, len(dir))
	copy(updated, dir)
	updated[i] = p
	return updated
}
