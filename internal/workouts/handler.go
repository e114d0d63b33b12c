package workouts

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/store"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type CreateWorkoutResponse struct {
	Workout *store.Workout `json:"workout"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/exercises", handler.HandleListExercises).Methods("GET", "OPTIONS").Name("exercises-list")
	router.HandleFunc("/exercises", handler.HandleCreateExercise).Methods("POST").Name("exercises-create")
	router.HandleFunc("/workouts", handler.HandleList).Methods("GET", "OPTIONS").Name("workouts-list")
	router.HandleFunc("/workouts", handler.HandleCreate).Methods("POST").Name("workouts-create")
	// numeric ids only, so /workouts/history and /workouts/summary stay with the stats handler
	router.HandleFunc("/workouts/{id:[0-9]+}", handler.HandleGet).Methods("GET", "OPTIONS").Name("workouts-get")
	router.HandleFunc("/workouts/{id:[0-9]+}", handler.HandleReplace).Methods("PUT").Name("workouts-replace")
	router.HandleFunc("/workouts/{id:[0-9]+}", handler.HandleDelete).Methods("DELETE").Name("workouts-delete")
}

func isJSON(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), pkg.ContentType.JSON)
}

func workoutID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func writeError(w http.ResponseWriter, err error, message string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		http.Error(w, "workout not found", http.StatusNotFound)
	case errors.Is(err, store.ErrInvalidRecord), errors.Is(err, store.ErrInvalidUpdate):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, message, http.StatusInternalServerError)
	}
}

func (handler *Handler) HandleListExercises(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.exercises")
	defer span.End()

	exercises, err := handler.service.ListExercises(ctx)
	if err != nil {
		log.Errorf("list exercises: %s", err)
		http.Error(w, "failed to fetch exercises", http.StatusInternalServerError)
		return
	}
	if exercises == nil {
		exercises = []store.Exercise{}
	}

	pkg.WriteJSON(w, http.StatusOK, exercises)
}

func (handler *Handler) HandleCreateExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.newExercise")
	defer span.End()

	if !isJSON(r) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var exercise store.Exercise
	if err := json.NewDecoder(r.Body).Decode(&exercise); err != nil {
		log.Errorf("new exercise, unmarshal json params: %s", err)
		http.Error(w, "invalid exercise data", http.StatusBadRequest)
		return
	}

	created, err := handler.service.CreateExercise(ctx, exercise)
	if err != nil {
		if errors.Is(err, store.ErrInvalidRecord) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("failed to add new exercise [%s]: %s", exercise.Name, err)
		http.Error(w, "failed to create exercise", http.StatusInternalServerError)
		return
	}

	log.Debugf("new exercise added: [%s]: %d", created.Name, created.ID)
	pkg.WriteJSON(w, http.StatusCreated, created)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	workouts, err := handler.service.List(ctx, userID)
	if err != nil {
		log.Errorf("list workouts of user %d: %s", userID, err)
		http.Error(w, "failed to fetch workouts", http.StatusInternalServerError)
		return
	}
	if workouts == nil {
		workouts = []store.Workout{}
	}

	pkg.WriteJSON(w, http.StatusOK, workouts)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.get")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	id, ok := workoutID(r)
	if !ok {
		http.Error(w, "error, id invalid", http.StatusBadRequest)
		return
	}

	detail, err := handler.service.Get(ctx, userID, id)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Errorf("get workout %d: %s", id, err)
		}
		writeError(w, err, "failed to fetch workout")
		return
	}

	pkg.WriteJSON(w, http.StatusOK, detail)
}

func (handler *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.create")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	if !isJSON(r) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("new workout, unmarshal json params: %s", err)
		http.Error(w, "invalid workout data", http.StatusBadRequest)
		return
	}

	workout, err := handler.service.Create(ctx, userID, req)
	if err != nil {
		log.Errorf("failed to create workout [%s] for user %d: %s", req.Workout.Name, userID, err)
		writeError(w, err, "failed to create workout")
		return
	}

	log.Debugf("workout %d logged by user %d with %d exercises", workout.ID, userID, len(req.Exercises))
	pkg.WriteJSON(w, http.StatusCreated, CreateWorkoutResponse{Workout: workout})
}

func (handler *Handler) HandleReplace(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.replace")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	id, ok := workoutID(r)
	if !ok {
		http.Error(w, "error, id invalid", http.StatusBadRequest)
		return
	}
	if !isJSON(r) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("update workout %d, unmarshal json params: %s", id, err)
		http.Error(w, "invalid workout data", http.StatusBadRequest)
		return
	}

	if _, err := handler.service.Replace(ctx, userID, id, req); err != nil {
		log.Errorf("failed to update workout %d: %s", id, err)
		writeError(w, err, "failed to update workout")
		return
	}

	pkg.WriteJSONMessage(w, http.StatusOK, "Workout updated successfully")
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.delete")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	id, ok := workoutID(r)
	if !ok {
		http.Error(w, "error, id invalid", http.StatusBadRequest)
		return
	}

	if err := handler.service.Delete(ctx, userID, id); err != nil {
		log.Errorf("failed to delete workout %d: %s", id, err)
		writeError(w, err, "workout not deleted")
		return
	}

	pkg.WriteJSONMessage(w, http.StatusOK, "Workout deleted")
}
