package stats

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fittrack/internal/store"
	"github.com/2beens/fittrack/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=stats_test

type recordStore interface {
	ListWorkoutsForUser(ctx context.Context, userID int) ([]store.Workout, error)
	ListWorkoutExercises(ctx context.Context, workoutID int) ([]store.WorkoutExercise, error)
	ListExerciseSets(ctx context.Context, workoutExerciseID int) ([]store.ExerciseSet, error)
	GetExercise(ctx context.Context, exerciseID int) (*store.Exercise, error)
}

const (
	NoMuscleGroup       = "None"
	progressSeriesLimit = 10
	statsWindow         = 7 * 24 * time.Hour
	summaryWindow       = 28 * 24 * time.Hour
	summaryWindowWeeks  = 4
)

type UserStats struct {
	WorkoutsThisWeek int    `json:"workoutsThisWeek"`
	PersonalRecords  int    `json:"personalRecords"`
	ActiveDays       int    `json:"activeDays"`
	TotalWeight      string `json:"totalWeight"`
}

type WorkoutSummary struct {
	TotalWorkouts     int            `json:"totalWorkouts"`
	MostTrainedMuscle string         `json:"mostTrainedMuscle"`
	LastWorkout       *store.Workout `json:"lastWorkout"`
	WeeklyAverage     float64        `json:"weeklyAverage"`
}

type ProgressPoint struct {
	Date   string `json:"date"`
	Weight int    `json:"weight"`
	Reps   int    `json:"reps"`
	Volume int    `json:"volume"`
}

// Analyzer derives stats from a user's workout history. It keeps no state between calls.
type Analyzer struct {
	store recordStore
	loc   *time.Location
}

// NewAnalyzer creates an analyzer; calendar days, weeks, months and years are taken in loc (UTC if nil).
func NewAnalyzer(store recordStore, loc *time.Location) *Analyzer {
	if loc == nil {
		loc = time.UTC
	}
	return &Analyzer{
		store: store,
		loc:   loc,
	}
}

func (a *Analyzer) workouts(ctx context.Context, userID int) ([]store.Workout, error) {
	workouts, err := a.store.ListWorkoutsForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list workouts of user %d: %w", userID, err)
	}

	// only the user's own workouts count, whatever the store returns
	own := workouts[:0:0]
	for _, w := range workouts {
		if w.UserID == userID {
			own = append(own, w)
		}
	}
	return own, nil
}

// FilterWorkoutsByPeriod returns the user's workouts dated at or after the start of the period, most recent first.
// An unknown period name falls back to all workouts.
func (a *Analyzer) FilterWorkoutsByPeriod(ctx context.Context, userID int, period string, now time.Time) (_ []store.Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "stats.filterWorkoutsByPeriod")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	p, ok := ParsePeriod(period)
	if !ok {
		log.Debugf("stats: unknown period [%s], using [%s]", period, PeriodAll)
	}
	span.SetAttributes(
		attribute.Int("user.id", userID),
		attribute.String("period", string(p)),
	)

	workouts, err := a.workouts(ctx, userID)
	if err != nil {
		return nil, err
	}

	sorted := sortedByDate(workouts, true)
	start, bounded := p.Start(now, a.loc)
	if !bounded {
		return sorted, nil
	}

	filtered := make([]store.Workout, 0, len(sorted))
	for _, w := range sorted {
		if !w.Date.Before(start) {
			filtered = append(filtered, w)
		}
	}
	return filtered, nil
}

// RecentWorkouts returns at most limit of the user's workouts, most recent first.
func (a *Analyzer) RecentWorkouts(ctx context.Context, userID int, limit int) (_ []store.Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "stats.recentWorkouts")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID), attribute.Int("limit", limit))

	workouts, err := a.workouts(ctx, userID)
	if err != nil {
		return nil, err
	}

	sorted := sortedByDate(workouts, true)
	if limit >= 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted, nil
}

func (a *Analyzer) UserStats(ctx context.Context, userID int, now time.Time) (_ *UserStats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "stats.userStats")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	workouts, err := a.workouts(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries, err := a.setEntries(ctx, sortedByDate(workouts, false))
	if err != nil {
		return nil, err
	}

	stats := &UserStats{
		WorkoutsThisWeek: countSince(workouts, now.Add(-statsWindow)),
		PersonalRecords:  countPersonalRecords(entries),
		ActiveDays:       countActiveDays(workouts, a.loc),
		TotalWeight:      FormatTotalWeight(totalVolume(entries)),
	}
	span.SetAttributes(attribute.Int("sets.count", len(entries)))
	return stats, nil
}

func (a *Analyzer) WorkoutSummary(ctx context.Context, userID int, now time.Time) (_ *WorkoutSummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "stats.workoutSummary")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	workouts, err := a.workouts(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary := &WorkoutSummary{
		TotalWorkouts:     len(workouts),
		MostTrainedMuscle: NoMuscleGroup,
		WeeklyAverage:     roundToTenth(float64(countSince(workouts, now.Add(-summaryWindow))) / summaryWindowWeeks),
	}
	if len(workouts) == 0 {
		return summary, nil
	}

	latest := sortedByDate(workouts, true)[0]
	summary.LastWorkout = &latest

	summary.MostTrainedMuscle, err = a.mostTrainedMuscle(ctx, sortedByDate(workouts, false))
	if err != nil {
		return nil, err
	}
	return summary, nil
}

// mostTrainedMuscle tallies each workout exercise once under its muscle group, in the order of
// the given workouts and exercise order. Ties go to the group reached first.
func (a *Analyzer) mostTrainedMuscle(ctx context.Context, workouts []store.Workout) (string, error) {
	entries, err := a.exerciseEntries(ctx, workouts)
	if err != nil {
		return "", err
	}

	muscleGroups := make(map[int]string)
	tally := make(map[string]int)
	var encountered []string
	for _, e := range entries {
		exerciseID := e.workoutExercise.ExerciseID
		group, known := muscleGroups[exerciseID]
		if !known {
			group, err = a.muscleGroup(ctx, exerciseID)
			if err != nil {
				return "", err
			}
			muscleGroups[exerciseID] = group
		}
		if group == "" {
			continue
		}
		if tally[group] == 0 {
			encountered = append(encountered, group)
		}
		tally[group]++
	}

	most, mostCount := NoMuscleGroup, 0
	for _, group := range encountered {
		if tally[group] > mostCount {
			most, mostCount = group, tally[group]
		}
	}
	return most, nil
}

// muscleGroup returns "" for exercises missing from the catalog or without a muscle group.
func (a *Analyzer) muscleGroup(ctx context.Context, exerciseID int) (string, error) {
	exercise, err := a.store.GetExercise(ctx, exerciseID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("get exercise %d: %w", exerciseID, err)
	}
	if exercise == nil || exercise.MuscleGroup == nil {
		return "", nil
	}
	return *exercise.MuscleGroup, nil
}

// ProgressSeries returns one point per workout for the user's most recent workouts, oldest first.
func (a *Analyzer) ProgressSeries(ctx context.Context, userID int) (_ []ProgressPoint, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "stats.progressSeries")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	workouts, err := a.workouts(ctx, userID)
	if err != nil {
		return nil, err
	}

	recent := sortedByDate(workouts, true)
	if len(recent) > progressSeriesLimit {
		recent = recent[:progressSeriesLimit]
	}
	for i, j := 0, len(recent)-1; i < j; i, j = i+1, j-1 {
		recent[i], recent[j] = recent[j], recent[i]
	}

	entries, err := a.setEntries(ctx, recent)
	if err != nil {
		return nil, err
	}
	totals := progressTotals(entries)

	points := make([]ProgressPoint, 0, len(recent))
	for _, w := range recent {
		p := totals[w.ID]
		p.Date = w.Date.In(a.loc).Format(progressDateLayout)
		points = append(points, p)
	}
	return points, nil
}
