// Package session tracks progress through one timed workout session.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fitplan-app/fitplan-backend/internal/fitness/calories"
	"github.com/fitplan-app/fitplan-backend/internal/fitness/domain"
)

type State string

const (
	StateNotStarted State = "not_started"
	StateInProgress State = "in_progress"
	StateFinished   State = "finished"
	StateAbandoned  State = "abandoned"
)

// Engine tracks one workout session: the exercise list fixed at start, the
// set of completed exercise ids, elapsed wall-clock seconds, and a current
// index used for display only. The per-second ticker goroutine is the only
// background task; all other operations are synchronous.
type Engine struct {
	mu           sync.Mutex
	sessionID    string
	workout      domain.DayWorkout
	bodyWeightKg float64
	completed    map[string]bool
	currentIndex int
	elapsedSec   int
	state        State
	stop         chan struct{}
}

func NewEngine() *Engine {
	return &Engine{
		state:     StateNotStarted,
		completed: make(map[string]bool),
	}
}

// Start initializes session state and starts the elapsed-time clock.
// Starting while a session is in progress is rejected.
func (e *Engine) Start(workout domain.DayWorkout, bodyWeightKg float64) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == StateInProgress {
		return "", domain.ErrSessionActive
	}

	e.sessionID = uuid.New().String()
	e.workout = workout
	e.bodyWeightKg = bodyWeightKg
	e.completed = make(map[string]bool)
	e.currentIndex = 0
	e.elapsedSec = 0
	e.state = StateInProgress
	e.stop = make(chan struct{})

	go e.run(e.stop)

	return e.sessionID, nil
}

// run advances the clock once per second until the session terminates.
func (e *Engine) run(stop <-chan struct{}) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			e.Tick()
		}
	}
}

// Tick advances the elapsed clock by one second while the session is in
// progress. Ticks after termination are ignored.
func (e *Engine) Tick() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == StateInProgress {
		e.elapsedSec++
	}
}

// MarkComplete records an exercise as completed. Completing an already
// completed exercise is a no-op. When the completed exercise is the current
// one and a next exercise exists, the current index auto-advances.
func (e *Engine) MarkComplete(exerciseID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StateInProgress {
		return domain.ErrSessionNotActive
	}
	if e.completed[exerciseID] {
		return nil
	}

	e.completed[exerciseID] = true

	if e.currentIndex < len(e.workout.Exercises)-1 &&
		e.workout.Exercises[e.currentIndex].ID == exerciseID {
		e.currentIndex++
	}

	return nil
}

// Navigate moves the current index to any valid exercise regardless of
// completion state. Out-of-range indices leave the session unchanged.
func (e *Engine) Navigate(index int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StateInProgress {
		return domain.ErrSessionNotActive
	}
	if index < 0 || index >= len(e.workout.Exercises) {
		return domain.ErrIndexOutOfRange
	}

	e.currentIndex = index
	return nil
}

// DisplayedTotalCalories sums the calorie estimates of completed exercises
// only. It is recomputed on demand; the completion set drives it.
func (e *Engine) DisplayedTotalCalories() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.completedCaloriesLocked()
}

func (e *Engine) completedCaloriesLocked() int {
	total := 0
	for _, ex := range e.workout.Exercises {
		if e.completed[ex.ID] {
			total += calories.ForExercise(ex, e.bodyWeightKg)
		}
	}
	return total
}

// Finish terminates the session and builds its WorkoutRecord. The clock is
// stopped exactly once; no ticks land after this returns. When
// fullyCompleted is true the record credits every exercise in the plan
// (the finish action is only reachable once all are marked); on early exit
// only exercises in the completed set are credited.
func (e *Engine) Finish(fullyCompleted bool) (domain.WorkoutRecord, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StateInProgress {
		return domain.WorkoutRecord{}, domain.ErrSessionNotActive
	}

	close(e.stop)
	if fullyCompleted {
		e.state = StateFinished
	} else {
		e.state = StateAbandoned
	}

	performed := make([]domain.PerformedExercise, 0, len(e.workout.Exercises))
	total := 0
	for _, ex := range e.workout.Exercises {
		if !fullyCompleted && !e.completed[ex.ID] {
			continue
		}
		duration := calories.RepDuration(ex.Reps)
		burned := calories.Estimate(ex.METSValue, e.bodyWeightKg, duration)
		performed = append(performed, domain.PerformedExercise{
			ID:        ex.ID,
			Name:      ex.Name,
			Category:  ex.Category,
			Reps:      ex.Reps,
			Weight:    ex.Weight,
			Duration:  duration,
			Calories:  burned,
			METSValue: ex.METSValue,
		})
		total += burned
	}

	record := domain.WorkoutRecord{
		Date:               time.Now().UTC(),
		Duration:           e.elapsedSec / 60,
		ExercisesPerformed: performed,
		CaloriesBurned:     total,
	}

	return record, nil
}

// State reports the current lifecycle state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Snapshot is the read-only view of an in-progress session.
type Snapshot struct {
	SessionID      string            `json:"sessionId"`
	Day            string            `json:"day"`
	Exercises      []domain.Exercise `json:"exercises"`
	CompletedIDs   []string          `json:"completedIds"`
	CurrentIndex   int               `json:"currentIndex"`
	ElapsedSeconds int               `json:"elapsedSeconds"`
	State          State             `json:"state"`
	TotalCalories  int               `json:"totalCalories"`
}

// Snapshot returns the current session view for display.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	completedIDs := make([]string, 0, len(e.completed))
	for _, ex := range e.workout.Exercises {
		if e.completed[ex.ID] {
			completedIDs = append(completedIDs, ex.ID)
		}
	}

	return Snapshot{
		SessionID:      e.sessionID,
		Day:            e.workout.Day,
		Exercises:      e.workout.Exercises,
		CompletedIDs:   completedIDs,
		CurrentIndex:   e.currentIndex,
		ElapsedSeconds: e.elapsedSec,
		State:          e.state,
		TotalCalories:  e.completedCaloriesLocked(),
	}
}
