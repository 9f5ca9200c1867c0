package domain

import "time"

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very-active"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type MembershipType string

const (
	MembershipTrial   MembershipType = "trial"
	MembershipBasic   MembershipType = "basic"
	MembershipPremium MembershipType = "premium"
)

// UserProfile is one registered account. Email is the unique key within the
// user directory; the JSON field names match the persisted wire format.
type UserProfile struct {
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	Password       string          `json:"password,omitempty"`
	Age            int             `json:"age"`
	Gender         Gender          `json:"gender"`
	Weight         float64         `json:"weight"`
	Height         float64         `json:"height"`
	ActivityLevel  ActivityLevel   `json:"activityLevel"`
	FitnessGoals   []string        `json:"fitnessGoals"`
	Role           Role            `json:"role"`
	MembershipType MembershipType  `json:"membershipType"`
	WorkoutHistory []WorkoutRecord `json:"workoutHistory"`
}

// NewUserProfile builds a freshly registered profile with attribute defaults.
func NewUserProfile(name, email, password string, role Role) UserProfile {
	return UserProfile{
		Name:           name,
		Email:          email,
		Password:       password,
		Age:            0,
		Gender:         GenderOther,
		Weight:         0,
		Height:         0,
		ActivityLevel:  ActivitySedentary,
		FitnessGoals:   []string{},
		Role:           role,
		MembershipType: MembershipTrial,
		WorkoutHistory: []WorkoutRecord{},
	}
}

// Exercise is a catalog definition. METSValue may be zero for entries without
// intensity data; calorie estimation degrades to zero for those.
type Exercise struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	METSValue float64 `json:"metsValue,omitempty"`
	VideoURL  string  `json:"youtubeUrl,omitempty"`
	Reps      int     `json:"reps"`
	Weight    float64 `json:"weight"`
}

// DayWorkout is the plan for one weekday.
type DayWorkout struct {
	Day       string     `json:"day"`
	Exercises []Exercise `json:"exercises"`
}

// WeeklyPlan is held in session memory only; it is never persisted.
type WeeklyPlan struct {
	WeekOf   string       `json:"weekOf"`
	Workouts []DayWorkout `json:"workouts"`
}

// PerformedExercise is a snapshot of one exercise as actually executed,
// with its own duration and calorie breakdown for traceability.
type PerformedExercise struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Reps      int     `json:"reps"`
	Weight    float64 `json:"weight"`
	Duration  float64 `json:"duration"`
	Calories  int     `json:"calories"`
	METSValue float64 `json:"metsValue,omitempty"`
}

// WorkoutRecord is one terminated session. Created once, appended to the
// owning profile's WorkoutHistory, never mutated afterward. CaloriesBurned
// equals the sum of the exercise calorie values at the moment of recording.
type WorkoutRecord struct {
	Date               time.Time           `json:"date"`
	Duration           int                 `json:"duration"`
	ExercisesPerformed []PerformedExercise `json:"exercisesPerformed"`
	CaloriesBurned     int                 `json:"caloriesBurned,omitempty"`
}
