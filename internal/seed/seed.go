// Package seed fills a record store with a demo user and a generated training history.
package seed

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/fittrack/internal/store"
	"github.com/2beens/fittrack/pkg"

	"github.com/brianvoe/gofakeit/v6"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=seed_test

type recordStore interface {
	CreateUser(ctx context.Context, user store.User) (*store.User, error)
	ListExercises(ctx context.Context) ([]store.Exercise, error)
	CreateWorkout(ctx context.Context, workout store.Workout) (*store.Workout, error)
	CreateWorkoutExercise(ctx context.Context, we store.WorkoutExercise) (*store.WorkoutExercise, error)
	CreateExerciseSet(ctx context.Context, set store.ExerciseSet) (*store.ExerciseSet, error)
}

// DaysBetweenWorkouts is the gap between two generated workouts.
const DaysBetweenWorkouts = 2

type split struct {
	name   string
	groups []string
}

var splits = []split{
	{name: "Push day", groups: []string{"Chest", "Shoulders", "Arms"}},
	{name: "Pull day", groups: []string{"Back", "Arms"}},
	{name: "Leg day", groups: []string{"Legs", "Core"}},
}

// starting weight in kg by equipment; bodyweight exercises log reps only
var baseWeight = map[string]int{
	"Barbell":  60,
	"Dumbbell": 12,
	"Machine":  45,
}

type Params struct {
	Username string
	Password string
	Workouts int
	// Until is the date of the last generated workout.
	Until time.Time
	// Seed makes the generated data reproducible; 0 picks a random one.
	Seed int64
}

type Result struct {
	User     *store.User
	Workouts int
	Sets     int
}

// Run creates the user and Workouts workouts, every DaysBetweenWorkouts days up to Until,
// rotating push/pull/leg splits with slowly increasing weights.
func Run(ctx context.Context, s recordStore, params Params) (*Result, error) {
	if strings.TrimSpace(params.Username) == "" || params.Password == "" {
		return nil, errors.New("username and password are required")
	}
	if params.Workouts <= 0 {
		return nil, fmt.Errorf("invalid workouts count: %d", params.Workouts)
	}

	faker := gofakeit.New(params.Seed)

	passwordHash, err := pkg.HashPassword(params.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user, err := s.CreateUser(ctx, store.User{
		Username:     params.Username,
		PasswordHash: passwordHash,
		FirstName:    store.StrPtr(faker.FirstName()),
		LastName:     store.StrPtr(faker.LastName()),
		Email:        store.StrPtr(faker.Email()),
		Height:       store.IntPtr(faker.Number(160, 200)),
		Weight:       store.IntPtr(faker.Number(55, 110)),
		Goals:        store.StrPtr(faker.Sentence(8)),
	})
	if err != nil {
		return nil, fmt.Errorf("create user [%s]: %w", params.Username, err)
	}

	exercises, err := s.ListExercises(ctx)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	byGroup := map[string][]store.Exercise{}
	for _, e := range exercises {
		if e.MuscleGroup != nil {
			byGroup[*e.MuscleGroup] = append(byGroup[*e.MuscleGroup], e)
		}
	}

	res := &Result{User: user}
	first := params.Until.AddDate(0, 0, -DaysBetweenWorkouts*(params.Workouts-1))
	for i := 0; i < params.Workouts; i++ {
		sp := splits[i%len(splits)]
		date := first.AddDate(0, 0, DaysBetweenWorkouts*i)
		// every full rotation adds a little weight
		progression := i / len(splits)

		var notes *string
		if faker.Bool() {
			notes = store.StrPtr(faker.Sentence(6))
		}
		workout, err := s.CreateWorkout(ctx, store.Workout{
			UserID:          user.ID,
			Name:            sp.name,
			Notes:           notes,
			Type:            store.StrPtr("strength"),
			Date:            date,
			Completed:       true,
			DurationMinutes: store.IntPtr(faker.Number(35, 90)),
		})
		if err != nil {
			return nil, fmt.Errorf("create workout %d: %w", i+1, err)
		}
		res.Workouts++

		order := 0
		for _, group := range sp.groups {
			candidates := byGroup[group]
			if len(candidates) == 0 {
				continue
			}
			exercise := candidates[faker.Number(0, len(candidates)-1)]
			order++
			we, err := s.CreateWorkoutExercise(ctx, store.WorkoutExercise{
				WorkoutID:  workout.ID,
				ExerciseID: exercise.ID,
				Order:      order,
			})
			if err != nil {
				return nil, fmt.Errorf("add %s to workout %d: %w", exercise.Name, workout.ID, err)
			}

			setsCount := faker.Number(3, 5)
			for setNumber := 1; setNumber <= setsCount; setNumber++ {
				if _, err := s.CreateExerciseSet(ctx, generateSet(faker, exercise, we.ID, setNumber, progression)); err != nil {
					return nil, fmt.Errorf("add set %d of %s: %w", setNumber, exercise.Name, err)
				}
				res.Sets++
			}
		}
	}

	log.Infof("seeded user [%s] with %d workouts and %d sets", user.Username, res.Workouts, res.Sets)
	return res, nil
}

func generateSet(faker *gofakeit.Faker, exercise store.Exercise, workoutExerciseID, setNumber, progression int) store.ExerciseSet {
	set := store.ExerciseSet{
		WorkoutExerciseID: workoutExerciseID,
		SetNumber:         setNumber,
		Completed:         true,
	}

	if exercise.MuscleGroup != nil && *exercise.MuscleGroup == "Core" {
		set.DurationSeconds = store.IntPtr(faker.Number(30, 90))
		return set
	}

	set.Reps = store.IntPtr(faker.Number(5, 12))
	if exercise.Equipment != nil {
		if base, ok := baseWeight[*exercise.Equipment]; ok {
			set.Weight = store.IntPtr(base + 2*progression)
		}
	}
	return set
}
