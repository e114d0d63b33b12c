package store

import "time"

type User struct {
	ID           int     `json:"id"`
	Username     string  `json:"username"`
	PasswordHash string  `json:"-"`
	FirstName    *string `json:"firstName"`
	LastName     *string `json:"lastName"`
	Email        *string `json:"email"`
	Height       *int    `json:"height"` // cm
	Weight       *int    `json:"weight"` // kg
	Goals        *string `json:"goals"`
	ProfileImage *string `json:"profileImage"`
}

// Exercise is an entry of the shared exercise catalog.
type Exercise struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Equipment   *string `json:"equipment"`
	MuscleGroup *string `json:"muscleGroup"`
	Description *string `json:"description"`
}

type Workout struct {
	ID              int       `json:"id"`
	UserID          int       `json:"userId"`
	Name            string    `json:"name"`
	Notes           *string   `json:"notes"`
	Type            *string   `json:"type"`
	Date            time.Time `json:"date"`
	Completed       bool      `json:"completed"`
	DurationMinutes *int      `json:"durationMinutes"`
}

// WorkoutExercise links a workout to a catalog exercise. Order is 1-based.
type WorkoutExercise struct {
	ID         int `json:"id"`
	WorkoutID  int `json:"workoutId"`
	ExerciseID int `json:"exerciseId"`
	Order      int `json:"order"`
}

// ExerciseSet is one logged set. A nil Reps or Weight means not recorded.
type ExerciseSet struct {
	ID                int  `json:"id"`
	WorkoutExerciseID int  `json:"workoutExerciseId"`
	SetNumber         int  `json:"setNumber"`
	Reps              *int `json:"reps"`
	Weight            *int `json:"weight"` // kg
	DurationSeconds   *int `json:"durationSeconds"`
	DistanceMeters    *int `json:"distanceMeters"`
	Completed         bool `json:"completed"`
}

// Volume returns weight*reps, and false when either is missing.
func (s ExerciseSet) Volume() (int, bool) {
	if s.Weight == nil || s.Reps == nil {
		return 0, false
	}
	return *s.Weight * *s.Reps, true
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Conversation is the coach chat history of a single user.
type Conversation struct {
	ID        int       `json:"id"`
	UserID    int       `json:"userId"`
	Timestamp time.Time `json:"timestamp"`
	Messages  []Message `json:"messages"`
}

func IntPtr(i int) *int {
	return &i
}

func StrPtr(s string) *string {
	return &s
}
