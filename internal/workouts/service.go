package workouts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/fittrack/internal/store"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=workouts_test

type workoutStore interface {
	ListExercises(ctx context.Context) ([]store.Exercise, error)
	GetExercise(ctx context.Context, id int) (*store.Exercise, error)
	CreateExercise(ctx context.Context, exercise store.Exercise) (*store.Exercise, error)

	ListWorkoutsForUser(ctx context.Context, userID int) ([]store.Workout, error)
	GetWorkout(ctx context.Context, id int) (*store.Workout, error)
	CreateWorkout(ctx context.Context, workout store.Workout) (*store.Workout, error)
	DeleteWorkout(ctx context.Context, id int) error
	ReplaceWorkout(ctx context.Context, id int, update store.WorkoutUpdate, content []store.WorkoutContent) (*store.Workout, error)

	ListWorkoutExercises(ctx context.Context, workoutID int) ([]store.WorkoutExercise, error)
	CreateWorkoutExercise(ctx context.Context, we store.WorkoutExercise) (*store.WorkoutExercise, error)
	ListExerciseSets(ctx context.Context, workoutExerciseID int) ([]store.ExerciseSet, error)
	CreateExerciseSet(ctx context.Context, set store.ExerciseSet) (*store.ExerciseSet, error)
}

type WorkoutInput struct {
	Name            string    `json:"name"`
	Notes           *string   `json:"notes"`
	Type            *string   `json:"type"`
	Date            time.Time `json:"date"`
	Completed       bool      `json:"completed"`
	DurationMinutes *int      `json:"durationMinutes"`
}

type ExerciseRef struct {
	ID int `json:"id"`
}

type SetInput struct {
	SetNumber       int  `json:"setNumber"`
	Reps            *int `json:"reps"`
	Weight          *int `json:"weight"`
	DurationSeconds *int `json:"durationSeconds"`
	DistanceMeters  *int `json:"distanceMeters"`
	Completed       bool `json:"completed"`
}

type ExerciseInput struct {
	Exercise ExerciseRef `json:"exercise"`
	Sets     []SetInput  `json:"sets"`
}

// SaveRequest is the body of both create and replace. Exercises are stored in the given order.
type SaveRequest struct {
	Workout   WorkoutInput    `json:"workout"`
	Exercises []ExerciseInput `json:"exercises"`
}

func (r SaveRequest) Validate() error {
	if strings.TrimSpace(r.Workout.Name) == "" {
		return fmt.Errorf("%w: workout name missing", store.ErrInvalidRecord)
	}
	if r.Workout.Date.IsZero() {
		return fmt.Errorf("%w: workout date missing", store.ErrInvalidRecord)
	}
	if r.Workout.DurationMinutes != nil && *r.Workout.DurationMinutes < 0 {
		return fmt.Errorf("%w: duration must not be negative", store.ErrInvalidRecord)
	}
	for i, e := range r.Exercises {
		if e.Exercise.ID <= 0 {
			return fmt.Errorf("%w: exercise %d has no id", store.ErrInvalidRecord, i+1)
		}
		used := make(map[int]bool, len(e.Sets))
		for j, s := range e.Sets {
			for _, v := range []*int{s.Reps, s.Weight, s.DurationSeconds, s.DistanceMeters} {
				if v != nil && *v < 0 {
					return fmt.Errorf("%w: exercise %d has a negative set value", store.ErrInvalidRecord, i+1)
				}
			}
			n := s.number(j)
			if used[n] {
				return fmt.Errorf("%w: exercise %d uses set number %d twice", store.ErrInvalidRecord, i+1, n)
			}
			used[n] = true
		}
	}
	return nil
}

// number is the explicit set number, or the position when none was given.
func (s SetInput) number(position int) int {
	if s.SetNumber > 0 {
		return s.SetNumber
	}
	return position + 1
}

func (s SetInput) record(workoutExerciseID, position int) store.ExerciseSet {
	return store.ExerciseSet{
		WorkoutExerciseID: workoutExerciseID,
		SetNumber:         s.number(position),
		Reps:              s.Reps,
		Weight:            s.Weight,
		DurationSeconds:   s.DurationSeconds,
		DistanceMeters:    s.DistanceMeters,
		Completed:         s.Completed,
	}
}

type ExerciseDetail struct {
	WorkoutExerciseID int                 `json:"workoutExerciseId"`
	Order             int                 `json:"order"`
	Exercise          store.Exercise      `json:"exercise"`
	Sets              []store.ExerciseSet `json:"sets"`
}

type Detail struct {
	Workout   store.Workout    `json:"workout"`
	Exercises []ExerciseDetail `json:"exercises"`
}

type Service struct {
	store   workoutStore
	metrics *metrics.Manager
}

func NewService(store workoutStore, metricsManager *metrics.Manager) *Service {
	return &Service{
		store:   store,
		metrics: metricsManager,
	}
}

func (s *Service) ListExercises(ctx context.Context) ([]store.Exercise, error) {
	return s.store.ListExercises(ctx)
}

func (s *Service) CreateExercise(ctx context.Context, exercise store.Exercise) (*store.Exercise, error) {
	exercise.ID = 0
	return s.store.CreateExercise(ctx, exercise)
}

func (s *Service) List(ctx context.Context, userID int) ([]store.Workout, error) {
	return s.store.ListWorkoutsForUser(ctx, userID)
}

// owned returns the workout, or store.ErrNotFound when it belongs to someone else.
func (s *Service) owned(ctx context.Context, userID, workoutID int) (*store.Workout, error) {
	workout, err := s.store.GetWorkout(ctx, workoutID)
	if err != nil {
		return nil, err
	}
	if workout.UserID != userID {
		return nil, fmt.Errorf("workout %d of user %d: %w", workoutID, userID, store.ErrNotFound)
	}
	return workout, nil
}

// Get returns the workout with its exercises in order, each with its sets.
// Exercises no longer in the catalog are left out.
func (s *Service) Get(ctx context.Context, userID, workoutID int) (_ *Detail, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workouts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID), attribute.Int("workout.id", workoutID))

	workout, err := s.owned(ctx, userID, workoutID)
	if err != nil {
		return nil, err
	}

	wes, err := s.store.ListWorkoutExercises(ctx, workoutID)
	if err != nil {
		return nil, fmt.Errorf("list exercises of workout %d: %w", workoutID, err)
	}

	detail := &Detail{
		Workout:   *workout,
		Exercises: []ExerciseDetail{},
	}
	for _, we := range wes {
		exercise, err := s.store.GetExercise(ctx, we.ExerciseID)
		if errors.Is(err, store.ErrNotFound) {
			log.Debugf("workout %d references missing exercise %d", workoutID, we.ExerciseID)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("get exercise %d: %w", we.ExerciseID, err)
		}

		sets, err := s.store.ListExerciseSets(ctx, we.ID)
		if err != nil {
			return nil, fmt.Errorf("list sets of workout exercise %d: %w", we.ID, err)
		}
		if sets == nil {
			sets = []store.ExerciseSet{}
		}

		detail.Exercises = append(detail.Exercises, ExerciseDetail{
			WorkoutExerciseID: we.ID,
			Order:             we.Order,
			Exercise:          *exercise,
			Sets:              sets,
		})
	}
	return detail, nil
}

// Create stores the workout followed by its exercises and sets. If a nested record fails,
// the partially written workout is removed again.
func (s *Service) Create(ctx context.Context, userID int, req SaveRequest) (_ *store.Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workouts.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID), attribute.Int("exercises.count", len(req.Exercises)))

	if err := req.Validate(); err != nil {
		return nil, err
	}

	workout, err := s.store.CreateWorkout(ctx, store.Workout{
		UserID:          userID,
		Name:            strings.TrimSpace(req.Workout.Name),
		Notes:           req.Workout.Notes,
		Type:            req.Workout.Type,
		Date:            req.Workout.Date,
		Completed:       req.Workout.Completed,
		DurationMinutes: req.Workout.DurationMinutes,
	})
	if err != nil {
		return nil, fmt.Errorf("create workout: %w", err)
	}

	if err := s.createExercises(ctx, workout.ID, req.Exercises); err != nil {
		if delErr := s.store.DeleteWorkout(ctx, workout.ID); delErr != nil {
			log.Errorf("remove partially saved workout %d: %s", workout.ID, delErr)
		}
		return nil, err
	}

	s.metrics.CounterWorkoutsLogged.Inc()
	return workout, nil
}

// Replace overwrites the workout fields and swaps all of its exercises and sets for the given ones.
// A rejected request leaves the stored workout as it was.
func (s *Service) Replace(ctx context.Context, userID, workoutID int, req SaveRequest) (_ *store.Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workouts.replace")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID), attribute.Int("workout.id", workoutID))

	if _, err := s.owned(ctx, userID, workoutID); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	content := make([]store.WorkoutContent, 0, len(req.Exercises))
	for _, e := range req.Exercises {
		if _, err := s.store.GetExercise(ctx, e.Exercise.ID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, fmt.Errorf("%w: exercise %d not in catalog", store.ErrInvalidRecord, e.Exercise.ID)
			}
			return nil, fmt.Errorf("get exercise %d: %w", e.Exercise.ID, err)
		}

		sets := make([]store.ExerciseSet, 0, len(e.Sets))
		for j, set := range e.Sets {
			sets = append(sets, set.record(0, j))
		}
		content = append(content, store.WorkoutContent{ExerciseID: e.Exercise.ID, Sets: sets})
	}

	name := strings.TrimSpace(req.Workout.Name)
	workout, err := s.store.ReplaceWorkout(ctx, workoutID, store.WorkoutUpdate{
		Name:            &name,
		Notes:           req.Workout.Notes,
		Type:            req.Workout.Type,
		Date:            &req.Workout.Date,
		Completed:       &req.Workout.Completed,
		DurationMinutes: req.Workout.DurationMinutes,
	}, content)
	if err != nil {
		return nil, fmt.Errorf("replace workout %d: %w", workoutID, err)
	}
	return workout, nil
}

func (s *Service) createExercises(ctx context.Context, workoutID int, exercises []ExerciseInput) error {
	for i, e := range exercises {
		we, err := s.store.CreateWorkoutExercise(ctx, store.WorkoutExercise{
			WorkoutID:  workoutID,
			ExerciseID: e.Exercise.ID,
			Order:      i + 1,
		})
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("%w: exercise %d not in catalog", store.ErrInvalidRecord, e.Exercise.ID)
		}
		if err != nil {
			return fmt.Errorf("add exercise %d to workout %d: %w", e.Exercise.ID, workoutID, err)
		}

		for j, set := range e.Sets {
			if _, err := s.store.CreateExerciseSet(ctx, set.record(we.ID, j)); err != nil {
				return fmt.Errorf("add set %d of exercise %d: %w", set.number(j), e.Exercise.ID, err)
			}
		}
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, userID, workoutID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workouts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID), attribute.Int("workout.id", workoutID))

	if _, err := s.owned(ctx, userID, workoutID); err != nil {
		return err
	}
	return s.store.DeleteWorkout(ctx, workoutID)
}
