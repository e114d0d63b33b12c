package store

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

var _ Store = (*Memory)(nil)

// Memory is an in-process record store. Each entity kind lives in its own id-keyed map
// with a monotonic id counter; deletes cascade explicitly from workout down to sets.
type Memory struct {
	mu sync.RWMutex

	users            map[int]User
	exercises        map[int]Exercise
	workouts         map[int]Workout
	workoutExercises map[int]WorkoutExercise
	exerciseSets     map[int]ExerciseSet
	conversations    map[int]Conversation

	lastUserID            int
	lastExerciseID        int
	lastWorkoutID         int
	lastWorkoutExerciseID int
	lastExerciseSetID     int
	lastConversationID    int
}

// NewMemory returns an empty store with the default exercise catalog loaded.
func NewMemory() *Memory {
	m := &Memory{
		users:            make(map[int]User),
		exercises:        make(map[int]Exercise),
		workouts:         make(map[int]Workout),
		workoutExercises: make(map[int]WorkoutExercise),
		exerciseSets:     make(map[int]ExerciseSet),
		conversations:    make(map[int]Conversation),
	}
	for _, e := range DefaultExercises() {
		m.lastExerciseID++
		e.ID = m.lastExerciseID
		m.exercises[e.ID] = e
	}
	return m
}

func (m *Memory) Close() error {
	return nil
}

func (m *Memory) CreateUser(_ context.Context, user User) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if strings.TrimSpace(user.Username) == "" {
		return nil, fmt.Errorf("%w: username missing", ErrInvalidRecord)
	}
	if _, found := m.findUserByUsername(user.Username); found {
		return nil, ErrUsernameTaken
	}

	m.lastUserID++
	user.ID = m.lastUserID
	m.users[user.ID] = user
	return &user, nil
}

func (m *Memory) GetUser(_ context.Context, id int) (*User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[id]
	if !ok {
		return nil, fmt.Errorf("user %d: %w", id, ErrNotFound)
	}
	return &user, nil
}

func (m *Memory) GetUserByUsername(_ context.Context, username string) (*User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.findUserByUsername(username)
	if !ok {
		return nil, fmt.Errorf("user [%s]: %w", username, ErrNotFound)
	}
	return &user, nil
}

// usernames are case insensitive
func (m *Memory) findUserByUsername(username string) (User, bool) {
	for _, u := range m.users {
		if strings.EqualFold(u.Username, username) {
			return u, true
		}
	}
	return User{}, false
}

func (m *Memory) UpdateUser(_ context.Context, id int, update UserUpdate) (*User, error) {
	if err := update.Validate(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[id]
	if !ok {
		return nil, fmt.Errorf("user %d: %w", id, ErrNotFound)
	}
	update.apply(&user)
	m.users[id] = user
	return &user, nil
}

func (m *Memory) UpdatePasswordHash(_ context.Context, id int, passwordHash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[id]
	if !ok {
		return fmt.Errorf("user %d: %w", id, ErrNotFound)
	}
	user.PasswordHash = passwordHash
	m.users[id] = user
	return nil
}

func (m *Memory) ListExercises(_ context.Context) ([]Exercise, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	exercises := make([]Exercise, 0, len(m.exercises))
	for _, e := range m.exercises {
		exercises = append(exercises, e)
	}
	sort.Slice(exercises, func(i, j int) bool {
		return exercises[i].ID < exercises[j].ID
	})
	return exercises, nil
}

func (m *Memory) GetExercise(_ context.Context, id int) (*Exercise, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.exercises[id]
	if !ok {
		return nil, fmt.Errorf("exercise %d: %w", id, ErrNotFound)
	}
	return &e, nil
}

func (m *Memory) CreateExercise(_ context.Context, exercise Exercise) (*Exercise, error) {
	if err := validateExercise(exercise); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.lastExerciseID++
	exercise.ID = m.lastExerciseID
	m.exercises[exercise.ID] = exercise
	return &exercise, nil
}

// ListWorkoutsForUser returns the user's workouts, most recent first.
func (m *Memory) ListWorkoutsForUser(_ context.Context, userID int) ([]Workout, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var workouts []Workout
	for _, w := range m.workouts {
		if w.UserID == userID {
			workouts = append(workouts, w)
		}
	}
	sort.Slice(workouts, func(i, j int) bool {
		if workouts[i].Date.Equal(workouts[j].Date) {
			return workouts[i].ID > workouts[j].ID
		}
		return workouts[i].Date.After(workouts[j].Date)
	})
	return workouts, nil
}

func (m *Memory) GetWorkout(_ context.Context, id int) (*Workout, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	w, ok := m.workouts[id]
	if !ok {
		return nil, fmt.Errorf("workout %d: %w", id, ErrNotFound)
	}
	return &w, nil
}

func (m *Memory) CreateWorkout(_ context.Context, workout Workout) (*Workout, error) {
	if err := validateWorkout(workout); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[workout.UserID]; !ok {
		return nil, fmt.Errorf("user %d: %w", workout.UserID, ErrNotFound)
	}

	m.lastWorkoutID++
	workout.ID = m.lastWorkoutID
	m.workouts[workout.ID] = workout
	return &workout, nil
}

func (m *Memory) UpdateWorkout(_ context.Context, id int, update WorkoutUpdate) (*Workout, error) {
	if err := update.Validate(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	w, ok := m.workouts[id]
	if !ok {
		return nil, fmt.Errorf("workout %d: %w", id, ErrNotFound)
	}
	update.apply(&w)
	m.workouts[id] = w
	return &w, nil
}

// DeleteWorkout removes the workout together with its workout exercises and their sets.
func (m *Memory) DeleteWorkout(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.workouts[id]; !ok {
		return fmt.Errorf("workout %d: %w", id, ErrNotFound)
	}
	m.deleteWorkoutExercises(id)
	delete(m.workouts, id)
	return nil
}

func (m *Memory) ReplaceWorkout(_ context.Context, id int, update WorkoutUpdate, content []WorkoutContent) (*Workout, error) {
	if err := update.Validate(); err != nil {
		return nil, err
	}
	if err := validateContent(content); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	w, ok := m.workouts[id]
	if !ok {
		return nil, fmt.Errorf("workout %d: %w", id, ErrNotFound)
	}
	// nothing is touched before every exercise is known
	for _, c := range content {
		if _, ok := m.exercises[c.ExerciseID]; !ok {
			return nil, fmt.Errorf("%w: exercise %d not in catalog", ErrInvalidRecord, c.ExerciseID)
		}
	}

	update.apply(&w)
	m.workouts[id] = w
	m.deleteWorkoutExercises(id)
	for i, c := range content {
		m.lastWorkoutExerciseID++
		we := WorkoutExercise{ID: m.lastWorkoutExerciseID, WorkoutID: id, ExerciseID: c.ExerciseID, Order: i + 1}
		m.workoutExercises[we.ID] = we
		for _, set := range c.Sets {
			m.lastExerciseSetID++
			set.ID = m.lastExerciseSetID
			set.WorkoutExerciseID = we.ID
			m.exerciseSets[set.ID] = set
		}
	}
	return &w, nil
}

func (m *Memory) ListWorkoutExercises(_ context.Context, workoutID int) ([]WorkoutExercise, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var wes []WorkoutExercise
	for _, we := range m.workoutExercises {
		if we.WorkoutID == workoutID {
			wes = append(wes, we)
		}
	}
	sort.Slice(wes, func(i, j int) bool {
		if wes[i].Order == wes[j].Order {
			return wes[i].ID < wes[j].ID
		}
		return wes[i].Order < wes[j].Order
	})
	return wes, nil
}

func (m *Memory) CreateWorkoutExercise(_ context.Context, we WorkoutExercise) (*WorkoutExercise, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.workouts[we.WorkoutID]; !ok {
		return nil, fmt.Errorf("workout %d: %w", we.WorkoutID, ErrNotFound)
	}
	if _, ok := m.exercises[we.ExerciseID]; !ok {
		return nil, fmt.Errorf("exercise %d: %w", we.ExerciseID, ErrNotFound)
	}
	for _, existing := range m.workoutExercises {
		if existing.WorkoutID == we.WorkoutID && existing.Order == we.Order {
			return nil, fmt.Errorf("%w: order %d already used in workout %d", ErrInvalidRecord, we.Order, we.WorkoutID)
		}
	}

	m.lastWorkoutExerciseID++
	we.ID = m.lastWorkoutExerciseID
	m.workoutExercises[we.ID] = we
	return &we, nil
}

// DeleteWorkoutExercises removes all exercises of a workout and their sets. The workout stays.
func (m *Memory) DeleteWorkoutExercises(_ context.Context, workoutID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.deleteWorkoutExercises(workoutID)
	return nil
}

// callers hold the write lock
func (m *Memory) deleteWorkoutExercises(workoutID int) {
	for id, we := range m.workoutExercises {
		if we.WorkoutID != workoutID {
			continue
		}
		m.deleteExerciseSets(id)
		delete(m.workoutExercises, id)
	}
}

// callers hold the write lock
func (m *Memory) deleteExerciseSets(workoutExerciseID int) {
	for id, s := range m.exerciseSets {
		if s.WorkoutExerciseID == workoutExerciseID {
			delete(m.exerciseSets, id)
		}
	}
}

func (m *Memory) ListExerciseSets(_ context.Context, workoutExerciseID int) ([]ExerciseSet, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var sets []ExerciseSet
	for _, s := range m.exerciseSets {
		if s.WorkoutExerciseID == workoutExerciseID {
			sets = append(sets, s)
		}
	}
	sort.Slice(sets, func(i, j int) bool {
		return sets[i].SetNumber < sets[j].SetNumber
	})
	return sets, nil
}

func (m *Memory) CreateExerciseSet(_ context.Context, set ExerciseSet) (*ExerciseSet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.workoutExercises[set.WorkoutExerciseID]; !ok {
		return nil, fmt.Errorf("workout exercise %d: %w", set.WorkoutExerciseID, ErrNotFound)
	}
	for _, existing := range m.exerciseSets {
		if existing.WorkoutExerciseID == set.WorkoutExerciseID && existing.SetNumber == set.SetNumber {
			return nil, fmt.Errorf("%w: set number %d already used", ErrInvalidRecord, set.SetNumber)
		}
	}

	m.lastExerciseSetID++
	set.ID = m.lastExerciseSetID
	m.exerciseSets[set.ID] = set
	return &set, nil
}

func (m *Memory) UpdateExerciseSet(_ context.Context, id int, update ExerciseSetUpdate) (*ExerciseSet, error) {
	if err := update.Validate(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.exerciseSets[id]
	if !ok {
		return nil, fmt.Errorf("exercise set %d: %w", id, ErrNotFound)
	}
	update.apply(&s)
	m.exerciseSets[id] = s
	return &s, nil
}

func (m *Memory) GetConversation(_ context.Context, userID int) (*Conversation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, c := range m.conversations {
		if c.UserID == userID {
			c.Messages = append([]Message(nil), c.Messages...)
			return &c, nil
		}
	}
	return nil, fmt.Errorf("conversation of user %d: %w", userID, ErrNotFound)
}

// SaveConversation replaces the user's messages, creating the conversation if needed.
func (m *Memory) SaveConversation(_ context.Context, userID int, messages []Message, now time.Time) (*Conversation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	messages = append([]Message(nil), messages...)
	for id, c := range m.conversations {
		if c.UserID != userID {
			continue
		}
		c.Messages = messages
		c.Timestamp = now
		m.conversations[id] = c
		return &c, nil
	}

	m.lastConversationID++
	c := Conversation{
		ID:        m.lastConversationID,
		UserID:    userID,
		Timestamp: now,
		Messages:  messages,
	}
	m.conversations[c.ID] = c
	return &c, nil
}
