package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrUsernameTaken = errors.New("username taken")
	ErrInvalidUpdate = errors.New("invalid update")
	ErrInvalidRecord = errors.New("invalid record")
)

// Store is the record store used by the API layer. Both Memory and Postgres implement it.
type Store interface {
	// users
	CreateUser(ctx context.Context, user User) (*User, error)
	GetUser(ctx context.Context, id int) (*User, error)
	GetUserByUsername(ctx context.Context, username string) (*User, error)
	UpdateUser(ctx context.Context, id int, update UserUpdate) (*User, error)
	UpdatePasswordHash(ctx context.Context, id int, passwordHash string) error

	// exercise catalog
	ListExercises(ctx context.Context) ([]Exercise, error)
	GetExercise(ctx context.Context, id int) (*Exercise, error)
	CreateExercise(ctx context.Context, exercise Exercise) (*Exercise, error)

	// workouts
	ListWorkoutsForUser(ctx context.Context, userID int) ([]Workout, error)
	GetWorkout(ctx context.Context, id int) (*Workout, error)
	CreateWorkout(ctx context.Context, workout Workout) (*Workout, error)
	UpdateWorkout(ctx context.Context, id int, update WorkoutUpdate) (*Workout, error)
	DeleteWorkout(ctx context.Context, id int) error
	// ReplaceWorkout applies the update and swaps all exercises and sets of the workout for content.
	// Either everything is written or nothing is.
	ReplaceWorkout(ctx context.Context, id int, update WorkoutUpdate, content []WorkoutContent) (*Workout, error)

	// workout exercises and sets
	ListWorkoutExercises(ctx context.Context, workoutID int) ([]WorkoutExercise, error)
	CreateWorkoutExercise(ctx context.Context, we WorkoutExercise) (*WorkoutExercise, error)
	DeleteWorkoutExercises(ctx context.Context, workoutID int) error
	ListExerciseSets(ctx context.Context, workoutExerciseID int) ([]ExerciseSet, error)
	CreateExerciseSet(ctx context.Context, set ExerciseSet) (*ExerciseSet, error)
	UpdateExerciseSet(ctx context.Context, id int, update ExerciseSetUpdate) (*ExerciseSet, error)

	// coach conversations
	GetConversation(ctx context.Context, userID int) (*Conversation, error)
	SaveConversation(ctx context.Context, userID int, messages []Message, now time.Time) (*Conversation, error)

	Close() error
}

// UserUpdate is a partial profile update; nil fields are left untouched.
// The password is changed only via UpdatePasswordHash.
type UserUpdate struct {
	FirstName    *string `json:"firstName"`
	LastName     *string `json:"lastName"`
	Email        *string `json:"email"`
	Height       *int    `json:"height"`
	Weight       *int    `json:"weight"`
	Goals        *string `json:"goals"`
	ProfileImage *string `json:"profileImage"`
}

func (u UserUpdate) Validate() error {
	if u.Email != nil && *u.Email != "" && !strings.Contains(*u.Email, "@") {
		return fmt.Errorf("%w: email [%s] not valid", ErrInvalidUpdate, *u.Email)
	}
	if u.Height != nil && *u.Height < 0 {
		return fmt.Errorf("%w: height must not be negative", ErrInvalidUpdate)
	}
	if u.Weight != nil && *u.Weight < 0 {
		return fmt.Errorf("%w: weight must not be negative", ErrInvalidUpdate)
	}
	return nil
}

func (u UserUpdate) apply(user *User) {
	if u.FirstName != nil {
		user.FirstName = u.FirstName
	}
	if u.LastName != nil {
		user.LastName = u.LastName
	}
	if u.Email != nil {
		user.Email = u.Email
	}
	if u.Height != nil {
		user.Height = u.Height
	}
	if u.Weight != nil {
		user.Weight = u.Weight
	}
	if u.Goals != nil {
		user.Goals = u.Goals
	}
	if u.ProfileImage != nil {
		user.ProfileImage = u.ProfileImage
	}
}

type WorkoutUpdate struct {
	Name            *string    `json:"name"`
	Notes           *string    `json:"notes"`
	Type            *string    `json:"type"`
	Date            *time.Time `json:"date"`
	Completed       *bool      `json:"completed"`
	DurationMinutes *int       `json:"durationMinutes"`
}

func (u WorkoutUpdate) Validate() error {
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		return fmt.Errorf("%w: name must not be blank", ErrInvalidUpdate)
	}
	if u.Date != nil && u.Date.IsZero() {
		return fmt.Errorf("%w: date must be set", ErrInvalidUpdate)
	}
	if u.DurationMinutes != nil && *u.DurationMinutes < 0 {
		return fmt.Errorf("%w: duration must not be negative", ErrInvalidUpdate)
	}
	return nil
}

func (u WorkoutUpdate) apply(w *Workout) {
	if u.Name != nil {
		w.Name = *u.Name
	}
	if u.Notes != nil {
		w.Notes = u.Notes
	}
	if u.Type != nil {
		w.Type = u.Type
	}
	if u.Date != nil {
		w.Date = *u.Date
	}
	if u.Completed != nil {
		w.Completed = *u.Completed
	}
	if u.DurationMinutes != nil {
		w.DurationMinutes = u.DurationMinutes
	}
}

type ExerciseSetUpdate struct {
	Reps            *int  `json:"reps"`
	Weight          *int  `json:"weight"`
	DurationSeconds *int  `json:"durationSeconds"`
	DistanceMeters  *int  `json:"distanceMeters"`
	Completed       *bool `json:"completed"`
}

func (u ExerciseSetUpdate) Validate() error {
	for name, v := range map[string]*int{
		"reps":            u.Reps,
		"weight":          u.Weight,
		"durationSeconds": u.DurationSeconds,
		"distanceMeters":  u.DistanceMeters,
	} {
		if v != nil && *v < 0 {
			return fmt.Errorf("%w: %s must not be negative", ErrInvalidUpdate, name)
		}
	}
	return nil
}

func (u ExerciseSetUpdate) apply(s *ExerciseSet) {
	if u.Reps != nil {
		s.Reps = u.Reps
	}
	if u.Weight != nil {
		s.Weight = u.Weight
	}
	if u.DurationSeconds != nil {
		s.DurationSeconds = u.DurationSeconds
	}
	if u.DistanceMeters != nil {
		s.DistanceMeters = u.DistanceMeters
	}
	if u.Completed != nil {
		s.Completed = *u.Completed
	}
}

// WorkoutContent is one exercise of a workout with its sets. The position in the
// content slice is the exercise order.
type WorkoutContent struct {
	ExerciseID int
	Sets       []ExerciseSet
}

func validateContent(content []WorkoutContent) error {
	for _, c := range content {
		used := make(map[int]bool, len(c.Sets))
		for _, set := range c.Sets {
			if set.SetNumber <= 0 {
				return fmt.Errorf("%w: exercise %d has a set without a number", ErrInvalidRecord, c.ExerciseID)
			}
			if used[set.SetNumber] {
				return fmt.Errorf("%w: set number %d already used", ErrInvalidRecord, set.SetNumber)
			}
			used[set.SetNumber] = true
		}
	}
	return nil
}

func validateWorkout(w Workout) error {
	if w.UserID <= 0 {
		return fmt.Errorf("%w: workout user id missing", ErrInvalidRecord)
	}
	if strings.TrimSpace(w.Name) == "" {
		return fmt.Errorf("%w: workout name missing", ErrInvalidRecord)
	}
	if w.Date.IsZero() {
		return fmt.Errorf("%w: workout date missing", ErrInvalidRecord)
	}
	return nil
}

func validateExercise(e Exercise) error {
	if strings.TrimSpace(e.Name) == "" || strings.TrimSpace(e.Type) == "" {
		return fmt.Errorf("%w: exercise name and type are required", ErrInvalidRecord)
	}
	return nil
}
