package store

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

//go:embed schema.sql
var SchemaSQL string

var _ Store = (*Postgres)(nil)

// Postgres is the record store backed by a pgx pool.
type Postgres struct {
	db *pgxpool.Pool
}

func NewPostgres(db *pgxpool.Pool) *Postgres {
	return &Postgres{
		db: db,
	}
}

// Close is a no-op, the pool is owned and closed by the caller.
func (p *Postgres) Close() error {
	return nil
}

// Migrate creates missing tables and seeds the exercise catalog when it is empty.
func (p *Postgres) Migrate(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.store.migrate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, err := p.db.Exec(ctx, SchemaSQL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}

	var count int
	if err := p.db.QueryRow(ctx, `SELECT COUNT(*) FROM exercise`).Scan(&count); err != nil {
		return fmt.Errorf("count exercises: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, e := range DefaultExercises() {
		if _, err := p.CreateExercise(ctx, e); err != nil {
			return fmt.Errorf("seed exercise [%s]: %w", e.Name, err)
		}
	}
	return nil
}

const userColumns = `id, username, password_hash, first_name, last_name, email, height, weight, goals, profile_image`

func scanUser(row pgx.Row) (*User, error) {
	var u User
	if err := row.Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.FirstName, &u.LastName,
		&u.Email, &u.Height, &u.Weight, &u.Goals, &u.ProfileImage,
	); err != nil {
		return nil, err
	}
	return &u, nil
}

func (p *Postgres) CreateUser(ctx context.Context, user User) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.store.createUser")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = p.db.QueryRow(
		ctx,
		`INSERT INTO users
				(username, password_hash, first_name, last_name, email, height, weight, goals, profile_image)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING id;`,
		user.Username, user.PasswordHash, user.FirstName, user.LastName,
		user.Email, user.Height, user.Weight, user.Goals, user.ProfileImage,
	).Scan(&user.ID)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	span.SetAttributes(attribute.Int("user.id", user.ID))
	return &user, nil
}

func (p *Postgres) GetUser(ctx context.Context, id int) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.store.getUser")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	user, err := scanUser(p.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		if pkg.IsNoRowsError(err) {
			return nil, fmt.Errorf("user %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return user, nil
}

func (p *Postgres) GetUserByUsername(ctx context.Context, username string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.store.getUserByUsername")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	user, err := scanUser(p.db.QueryRow(
		ctx,
		`SELECT `+userColumns+` FROM users WHERE lower(username) = lower($1)`,
		username,
	))
	if err != nil {
		if pkg.IsNoRowsError(err) {
			return nil, fmt.Errorf("user [%s]: %w", username, ErrNotFound)
		}
		return nil, err
	}
	return user, nil
}

func (p *Postgres) UpdateUser(ctx context.Context, id int, update UserUpdate) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.store.updateUser")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	if err := update.Validate(); err != nil {
		return nil, err
	}

	user, err := scanUser(p.db.QueryRow(
		ctx,
		`UPDATE users SET
				first_name = COALESCE($2, first_name),
				last_name = COALESCE($3, last_name),
				email = COALESCE($4, email),
				height = COALESCE($5, height),
				weight = COALESCE($6, weight),
				goals = COALESCE($7, goals),
				profile_image = COALESCE($8, profile_image)
			WHERE id = $1
			RETURNING `+userColumns,
		id, update.FirstName, update.LastName, update.Email,
		update.Height, update.Weight, update.Goals, update.ProfileImage,
	))
	if err != nil {
		if pkg.IsNoRowsError(err) {
			return nil, fmt.Errorf("user %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return user, nil
}

func (p *Postgres) UpdatePasswordHash(ctx context.Context, id int, passwordHash string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.store.updatePasswordHash")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := p.db.Exec(ctx, `UPDATE users SET password_hash = $1 WHERE id = $2`, passwordHash, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %d: %w", id, ErrNotFound)
	}
	return nil
}

const exerciseColumns = `id, name, type, equipment, muscle_group, description`

func scanExercise(row pgx.Row) (*Exercise, error) {
	var e Exercise
	if err := row.Scan(&e.ID, &e.Name, &e.Type, &e.Equipment, &e.MuscleGroup, &e.Description); err != nil {
		return nil, err
	}
	return &e, nil
}

func (p *Postgres) ListExercises(ctx context.Context) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.store.listExercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := p.db.Query(ctx, `SELECT `+exerciseColumns+` FROM exercise ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exercises []Exercise
	for rows.Next() {
		e, err := scanExercise(rows)
		if err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		exercises = append(exercises, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("exercises.count", len(exercises)))
	return exercises, nil
}

func (p *Postgres) GetExercise(ctx context.Context, id int) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.store.getExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	e, err := scanExercise(p.db.QueryRow(ctx, `SELECT `+exerciseColumns+` FROM exercise WHERE id = $1`, id))
	if err != nil {
		if pkg.IsNoRowsError(err) {
			return nil, fmt.Errorf("exercise %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return e, nil
}

func (p *Postgres) CreateExercise(ctx context.Context, exercise Exercise) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.store.createExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := validateExercise(exercise); err != nil {
		return nil, err
	}

	err = p.db.QueryRow(
		ctx,
		`INSERT INTO exercise (name, type, equipment, muscle_group, description)
				VALUES ($1, $2, $3, $4, $5)
			RETURNING id;`,
		exercise.Name, exercise.Type, exercise.Equipment, exercise.MuscleGroup, exercise.Description,
	).Scan(&exercise.ID)
	if err != nil {
		return nil, err
	}
	return &exercise, nil
}

const workoutColumns = `id, user_id, name, notes, type, date, completed, duration_minutes`

func scanWorkout(row pgx.Row) (*Workout, error) {
	var w Workout
	if err := row.Scan(&w.ID, &w.UserID, &w.Name, &w.Notes, &w.Type, &w.Date, &w.Completed, &w.DurationMinutes); err != nil {
		return nil, err
	}
	return &w, nil
}

// ListWorkoutsForUser returns the user's workouts, most recent first.
func (p *Postgres) ListWorkoutsForUser(ctx context.Context, userID int) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.store.listWorkoutsForUser")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := p.db.Query(
		ctx,
		`SELECT `+workoutColumns+` FROM workout WHERE user_id = $1 ORDER BY date DESC, id DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var workouts []Workout
	for rows.Next() {
		w, err := scanWorkout(rows)
		if err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		workouts = append(workouts, *w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("workouts.count", len(workouts)))
	return workouts, nil
}

func (p *Postgres) GetWorkout(ctx context.Context, id int) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.store.getWorkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	w, err := scanWorkout(p.db.QueryRow(ctx, `SELECT `+workoutColumns+` FROM workout WHERE id = $1`, id))
	if err != nil {
		if pkg.IsNoRowsError(err) {
			return nil, fmt.Errorf("workout %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return w, nil
}

func (p *Postgres) CreateWorkout(ctx context.Context, workout Workout) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.store.createWorkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := validateWorkout(workout); err != nil {
		return nil, err
	}

	err = p.db.QueryRow(
		ctx,
		`INSERT INTO workout (user_id, name, notes, type, date, completed, duration_minutes)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id;`,
		workout.UserID, workout.Name, workout.Notes, workout.Type,
		workout.Date, workout.Completed, workout.DurationMinutes,
	).Scan(&workout.ID)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return nil, fmt.Errorf("user %d: %w", workout.UserID, ErrNotFound)
		}
		return nil, err
	}

	span.SetAttributes(attribute.Int("workout.id", workout.ID))
	return &workout, nil
}

const updateWorkoutQuery = `UPDATE workout SET
		name = COALESCE($2, name),
		notes = COALESCE($3, notes),
		type = COALESCE($4, type),
		date = COALESCE($5, date),
		completed = COALESCE($6, completed),
		duration_minutes = COALESCE($7, duration_minutes)
	WHERE id = $1
	RETURNING ` + workoutColumns

func (p *Postgres) UpdateWorkout(ctx context.Context, id int, update WorkoutUpdate) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.store.updateWorkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	if err := update.Validate(); err != nil {
		return nil, err
	}

	w, err := scanWorkout(p.db.QueryRow(
		ctx, updateWorkoutQuery,
		id, update.Name, update.Notes, update.Type, update.Date, update.Completed, update.DurationMinutes,
	))
	if err != nil {
		if pkg.IsNoRowsError(err) {
			return nil, fmt.Errorf("workout %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return w, nil
}

// DeleteWorkout removes the workout together with its workout exercises and their sets.
func (p *Postgres) DeleteWorkout(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.store.deleteWorkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	return pgx.BeginFunc(ctx, p.db, func(tx pgx.Tx) error {
		if err := deleteWorkoutExercises(ctx, tx, id); err != nil {
			return err
		}
		tag, err := tx.Exec(ctx, `DELETE FROM workout WHERE id = $1`, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("workout %d: %w", id, ErrNotFound)
		}
		return nil
	})
}

// ReplaceWorkout runs the update, the removal of old exercises and the inserts in one transaction.
func (p *Postgres) ReplaceWorkout(ctx context.Context, id int, update WorkoutUpdate, content []WorkoutContent) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.store.replaceWorkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id), attribute.Int("exercises.count", len(content)))

	if err := update.Validate(); err != nil {
		return nil, err
	}
	if err := validateContent(content); err != nil {
		return nil, err
	}

	var w *Workout
	err = pgx.BeginFunc(ctx, p.db, func(tx pgx.Tx) error {
		var err error
		w, err = scanWorkout(tx.QueryRow(
			ctx, updateWorkoutQuery,
			id, update.Name, update.Notes, update.Type, update.Date, update.Completed, update.DurationMinutes,
		))
		if err != nil {
			if pkg.IsNoRowsError(err) {
				return fmt.Errorf("workout %d: %w", id, ErrNotFound)
			}
			return err
		}

		if err := deleteWorkoutExercises(ctx, tx, id); err != nil {
			return err
		}

		for i, c := range content {
			var weID int
			if err := tx.QueryRow(
				ctx,
				`INSERT INTO workout_exercise (workout_id, exercise_id, position)
						VALUES ($1, $2, $3)
					RETURNING id;`,
				id, c.ExerciseID, i+1,
			).Scan(&weID); err != nil {
				if pkg.IsForeignKeyViolationError(err) {
					return fmt.Errorf("%w: exercise %d not in catalog", ErrInvalidRecord, c.ExerciseID)
				}
				return fmt.Errorf("add exercise %d: %w", c.ExerciseID, err)
			}

			for _, set := range c.Sets {
				if _, err := tx.Exec(
					ctx,
					`INSERT INTO exercise_set
							(workout_exercise_id, set_number, reps, weight, duration_seconds, distance_meters, completed)
						VALUES ($1, $2, $3, $4, $5, $6, $7)`,
					weID, set.SetNumber, set.Reps, set.Weight,
					set.DurationSeconds, set.DistanceMeters, set.Completed,
				); err != nil {
					return fmt.Errorf("add set %d of exercise %d: %w", set.SetNumber, c.ExerciseID, err)
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return w, nil
}

func deleteWorkoutExercises(ctx context.Context, tx pgx.Tx, workoutID int) error {
	if _, err := tx.Exec(
		ctx,
		`DELETE FROM exercise_set WHERE workout_exercise_id IN
			(SELECT id FROM workout_exercise WHERE workout_id = $1)`,
		workoutID,
	); err != nil {
		return fmt.Errorf("delete sets: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM workout_exercise WHERE workout_id = $1`, workoutID); err != nil {
		return fmt.Errorf("delete workout exercises: %w", err)
	}
	return nil
}

func (p *Postgres) ListWorkoutExercises(ctx context.Context, workoutID int) (_ []WorkoutExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.store.listWorkoutExercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout.id", workoutID))

	rows, err := p.db.Query(
		ctx,
		`SELECT id, workout_id, exercise_id, position FROM workout_exercise
			WHERE workout_id = $1 ORDER BY position, id`,
		workoutID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var wes []WorkoutExercise
	for rows.Next() {
		var we WorkoutExercise
		if err := rows.Scan(&we.ID, &we.WorkoutID, &we.ExerciseID, &we.Order); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		wes = append(wes, we)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return wes, nil
}

func (p *Postgres) CreateWorkoutExercise(ctx context.Context, we WorkoutExercise) (_ *WorkoutExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.store.createWorkoutExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = p.db.QueryRow(
		ctx,
		`INSERT INTO workout_exercise (workout_id, exercise_id, position)
				VALUES ($1, $2, $3)
			RETURNING id;`,
		we.WorkoutID, we.ExerciseID, we.Order,
	).Scan(&we.ID)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return nil, fmt.Errorf("workout %d or exercise %d: %w", we.WorkoutID, we.ExerciseID, ErrNotFound)
		}
		if pkg.IsUniqueViolationError(err) {
			return nil, fmt.Errorf("%w: order %d already used in workout %d", ErrInvalidRecord, we.Order, we.WorkoutID)
		}
		return nil, err
	}
	return &we, nil
}

// DeleteWorkoutExercises removes all exercises of a workout and their sets. The workout stays.
func (p *Postgres) DeleteWorkoutExercises(ctx context.Context, workoutID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.store.deleteWorkoutExercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout.id", workoutID))

	return pgx.BeginFunc(ctx, p.db, func(tx pgx.Tx) error {
		return deleteWorkoutExercises(ctx, tx, workoutID)
	})
}

const exerciseSetColumns = `id, workout_exercise_id, set_number, reps, weight, duration_seconds, distance_meters, completed`

func scanExerciseSet(row pgx.Row) (*ExerciseSet, error) {
	var s ExerciseSet
	if err := row.Scan(
		&s.ID, &s.WorkoutExerciseID, &s.SetNumber, &s.Reps, &s.Weight,
		&s.DurationSeconds, &s.DistanceMeters, &s.Completed,
	); err != nil {
		return nil, err
	}
	return &s, nil
}

func (p *Postgres) ListExerciseSets(ctx context.Context, workoutExerciseID int) (_ []ExerciseSet, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.store.listExerciseSets")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout_exercise.id", workoutExerciseID))

	rows, err := p.db.Query(
		ctx,
		`SELECT `+exerciseSetColumns+` FROM exercise_set WHERE workout_exercise_id = $1 ORDER BY set_number`,
		workoutExerciseID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sets []ExerciseSet
	for rows.Next() {
		s, err := scanExerciseSet(rows)
		if err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		sets = append(sets, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sets, nil
}

func (p *Postgres) CreateExerciseSet(ctx context.Context, set ExerciseSet) (_ *ExerciseSet, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.store.createExerciseSet")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = p.db.QueryRow(
		ctx,
		`INSERT INTO exercise_set
				(workout_exercise_id, set_number, reps, weight, duration_seconds, distance_meters, completed)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id;`,
		set.WorkoutExerciseID, set.SetNumber, set.Reps, set.Weight,
		set.DurationSeconds, set.DistanceMeters, set.Completed,
	).Scan(&set.ID)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return nil, fmt.Errorf("workout exercise %d: %w", set.WorkoutExerciseID, ErrNotFound)
		}
		if pkg.IsUniqueViolationError(err) {
			return nil, fmt.Errorf("%w: set number %d already used", ErrInvalidRecord, set.SetNumber)
		}
		return nil, err
	}
	return &set, nil
}

func (p *Postgres) UpdateExerciseSet(ctx context.Context, id int, update ExerciseSetUpdate) (_ *ExerciseSet, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.store.updateExerciseSet")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	if err := update.Validate(); err != nil {
		return nil, err
	}

	s, err := scanExerciseSet(p.db.QueryRow(
		ctx,
		`UPDATE exercise_set SET
				reps = COALESCE($2, reps),
				weight = COALESCE($3, weight),
				duration_seconds = COALESCE($4, duration_seconds),
				distance_meters = COALESCE($5, distance_meters),
				completed = COALESCE($6, completed)
			WHERE id = $1
			RETURNING `+exerciseSetColumns,
		id, update.Reps, update.Weight, update.DurationSeconds, update.DistanceMeters, update.Completed,
	))
	if err != nil {
		if pkg.IsNoRowsError(err) {
			return nil, fmt.Errorf("exercise set %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return s, nil
}

func (p *Postgres) GetConversation(ctx context.Context, userID int) (_ *Conversation, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.store.getConversation")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	var (
		c            Conversation
		messagesJson []byte
	)
	err = p.db.QueryRow(
		ctx,
		`SELECT id, user_id, timestamp, messages FROM coach_conversation WHERE user_id = $1`,
		userID,
	).Scan(&c.ID, &c.UserID, &c.Timestamp, &messagesJson)
	if err != nil {
		if pkg.IsNoRowsError(err) {
			return nil, fmt.Errorf("conversation of user %d: %w", userID, ErrNotFound)
		}
		return nil, err
	}

	if err := json.Unmarshal(messagesJson, &c.Messages); err != nil {
		return nil, fmt.Errorf("unmarshal messages: %w", err)
	}
	return &c, nil
}

// SaveConversation replaces the user's messages, creating the conversation if needed.
func (p *Postgres) SaveConversation(ctx context.Context, userID int, messages []Message, now time.Time) (_ *Conversation, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.store.saveConversation")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user.id", userID),
		attribute.Int("messages.count", len(messages)),
	)

	if messages == nil {
		messages = []Message{}
	}
	messagesJson, err := json.Marshal(messages)
	if err != nil {
		return nil, fmt.Errorf("marshal messages: %w", err)
	}

	c := Conversation{
		UserID:    userID,
		Timestamp: now,
		Messages:  messages,
	}
	err = p.db.QueryRow(
		ctx,
		`INSERT INTO coach_conversation (user_id, timestamp, messages)
				VALUES ($1, $2, $3)
			ON CONFLICT (user_id) DO UPDATE SET timestamp = EXCLUDED.timestamp, messages = EXCLUDED.messages
			RETURNING id;`,
		userID, now, messagesJson,
	).Scan(&c.ID)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return nil, fmt.Errorf("user %d: %w", userID, ErrNotFound)
		}
		return nil, err
	}
	return &c, nil
}

// IsNotFound reports whether err is, or wraps, ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
