package stats

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/2beens/fittrack/internal/store"
)

// exerciseEntry is one exercise performed in a workout.
type exerciseEntry struct {
	workout         store.Workout
	workoutExercise store.WorkoutExercise
}

// setEntry is one logged set, flattened together with its workout and workout exercise.
type setEntry struct {
	exerciseEntry
	set store.ExerciseSet
}

func (e setEntry) exerciseID() int {
	return e.workoutExercise.ExerciseID
}

func (e setEntry) workoutDate() time.Time {
	return e.workout.Date
}

// sortedByDate returns a copy of workouts ordered by date, ties broken by id in the same direction.
func sortedByDate(workouts []store.Workout, descending bool) []store.Workout {
	sorted := make([]store.Workout, len(workouts))
	copy(sorted, workouts)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if descending {
			a, b = b, a
		}
		if a.Date.Equal(b.Date) {
			return a.ID < b.ID
		}
		return a.Date.Before(b.Date)
	})
	return sorted
}

// exerciseEntries expands workouts, in the given order, into their exercises ordered by Order.
func (a *Analyzer) exerciseEntries(ctx context.Context, workouts []store.Workout) ([]exerciseEntry, error) {
	var entries []exerciseEntry
	for _, w := range workouts {
		wes, err := a.store.ListWorkoutExercises(ctx, w.ID)
		if err != nil {
			return nil, fmt.Errorf("list exercises of workout %d: %w", w.ID, err)
		}
		sort.SliceStable(wes, func(i, j int) bool {
			return wes[i].Order < wes[j].Order
		})
		for _, we := range wes {
			entries = append(entries, exerciseEntry{workout: w, workoutExercise: we})
		}
	}
	return entries, nil
}

// setEntries flattens workouts, in the given order, into (workout, exercise, set) entries:
// exercises by Order, sets by SetNumber.
func (a *Analyzer) setEntries(ctx context.Context, workouts []store.Workout) ([]setEntry, error) {
	exercises, err := a.exerciseEntries(ctx, workouts)
	if err != nil {
		return nil, err
	}

	var entries []setEntry
	for _, ee := range exercises {
		sets, err := a.store.ListExerciseSets(ctx, ee.workoutExercise.ID)
		if err != nil {
			return nil, fmt.Errorf("list sets of workout exercise %d: %w", ee.workoutExercise.ID, err)
		}
		sort.SliceStable(sets, func(i, j int) bool {
			return sets[i].SetNumber < sets[j].SetNumber
		})
		for _, s := range sets {
			entries = append(entries, setEntry{exerciseEntry: ee, set: s})
		}
	}
	return entries, nil
}

// countPersonalRecords replays entries in chronological order. A set beats the running max of its
// exercise only when it is completed, heavier, and from a workout dated after the one holding the max.
// The running max moves on every heavier weight, and the first weight of an exercise is never a record.
func countPersonalRecords(entries []setEntry) int {
	type best struct {
		weight int
		date   time.Time
	}

	records := 0
	maxes := make(map[int]best)
	for _, e := range entries {
		if !e.set.Completed || e.set.Weight == nil || *e.set.Weight <= 0 {
			continue
		}
		weight := *e.set.Weight

		current, seen := maxes[e.exerciseID()]
		if seen && weight <= current.weight {
			continue
		}
		if seen && e.workoutDate().After(current.date) {
			records++
		}
		maxes[e.exerciseID()] = best{weight: weight, date: e.workoutDate()}
	}
	return records
}

func totalVolume(entries []setEntry) int {
	total := 0
	for _, e := range entries {
		if v, ok := e.set.Volume(); ok {
			total += v
		}
	}
	return total
}

// progressTotals sums weight, reps and volume per workout id.
func progressTotals(entries []setEntry) map[int]ProgressPoint {
	totals := make(map[int]ProgressPoint)
	for _, e := range entries {
		p := totals[e.workout.ID]
		if e.set.Weight != nil {
			p.Weight += *e.set.Weight
		}
		if e.set.Reps != nil {
			p.Reps += *e.set.Reps
		}
		if v, ok := e.set.Volume(); ok {
			p.Volume += v
		}
		totals[e.workout.ID] = p
	}
	return totals
}

func countSince(workouts []store.Workout, since time.Time) int {
	count := 0
	for _, w := range workouts {
		if !w.Date.Before(since) {
			count++
		}
	}
	return count
}

func countActiveDays(workouts []store.Workout, loc *time.Location) int {
	days := make(map[string]struct{})
	for _, w := range workouts {
		days[w.Date.In(loc).Format(time.DateOnly)] = struct{}{}
	}
	return len(days)
}
