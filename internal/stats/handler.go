package stats

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/store"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

const dashboardRecentWorkouts = 5

type userGetter interface {
	GetUser(ctx context.Context, id int) (*store.User, error)
}

type Handler struct {
	analyzer *Analyzer
	users    userGetter
	metrics  *metrics.Manager
	now      func() time.Time
}

func NewHandler(analyzer *Analyzer, users userGetter, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		analyzer: analyzer,
		users:    users,
		metrics:  metricsManager,
		now:      time.Now,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/workouts/history", handler.HandleHistory).Methods("GET", "OPTIONS").Name("workouts-history")
	router.HandleFunc("/workouts/summary", handler.HandleSummary).Methods("GET", "OPTIONS").Name("workouts-summary")
	router.HandleFunc("/progress", handler.HandleProgress).Methods("GET", "OPTIONS").Name("progress")
	router.HandleFunc("/stats", handler.HandleStats).Methods("GET", "OPTIONS").Name("stats")
	router.HandleFunc("/dashboard", handler.HandleDashboard).Methods("GET", "OPTIONS").Name("dashboard")
}

func (handler *Handler) observe(view string) func() {
	timer := prometheus.NewTimer(handler.metrics.HistogramStatsDuration.WithLabelValues(view))
	return func() {
		timer.ObserveDuration()
	}
}

func (handler *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.history")
	defer span.End()
	defer handler.observe("history")()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	workouts, err := handler.analyzer.FilterWorkoutsByPeriod(ctx, userID, r.URL.Query().Get("period"), handler.now())
	if err != nil {
		log.Errorf("get workout history for user %d: %s", userID, err)
		http.Error(w, "failed to fetch workout history", http.StatusInternalServerError)
		return
	}
	if workouts == nil {
		workouts = []store.Workout{}
	}

	pkg.WriteJSON(w, http.StatusOK, workouts)
}

func (handler *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.summary")
	defer span.End()
	defer handler.observe("summary")()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	summary, err := handler.analyzer.WorkoutSummary(ctx, userID, handler.now())
	if err != nil {
		log.Errorf("get workout summary for user %d: %s", userID, err)
		http.Error(w, "failed to fetch workout summary", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, summary)
}

func (handler *Handler) HandleProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.progress")
	defer span.End()
	defer handler.observe("progress")()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	points, err := handler.analyzer.ProgressSeries(ctx, userID)
	if err != nil {
		log.Errorf("get progress data for user %d: %s", userID, err)
		http.Error(w, "failed to fetch progress data", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, points)
}

func (handler *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.stats")
	defer span.End()
	defer handler.observe("stats")()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	stats, err := handler.analyzer.UserStats(ctx, userID, handler.now())
	if err != nil {
		log.Errorf("get stats for user %d: %s", userID, err)
		http.Error(w, "failed to fetch stats", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, stats)
}

type DashboardResponse struct {
	User           *store.User     `json:"user"`
	Stats          *UserStats      `json:"stats"`
	RecentWorkouts []store.Workout `json:"recentWorkouts"`
	LastWorkout    *store.Workout  `json:"lastWorkout"`
	ProgressData   []ProgressPoint `json:"progressData"`
}

func (handler *Handler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.dashboard")
	defer span.End()
	defer handler.observe("dashboard")()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	user, err := handler.users.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		log.Errorf("dashboard, get user %d: %s", userID, err)
		http.Error(w, "failed to fetch dashboard data", http.StatusInternalServerError)
		return
	}

	stats, err := handler.analyzer.UserStats(ctx, userID, handler.now())
	if err != nil {
		log.Errorf("dashboard, get stats for user %d: %s", userID, err)
		http.Error(w, "failed to fetch dashboard data", http.StatusInternalServerError)
		return
	}

	recent, err := handler.analyzer.RecentWorkouts(ctx, userID, dashboardRecentWorkouts)
	if err != nil {
		log.Errorf("dashboard, get recent workouts for user %d: %s", userID, err)
		http.Error(w, "failed to fetch dashboard data", http.StatusInternalServerError)
		return
	}

	progress, err := handler.analyzer.ProgressSeries(ctx, userID)
	if err != nil {
		log.Errorf("dashboard, get progress data for user %d: %s", userID, err)
		http.Error(w, "failed to fetch dashboard data", http.StatusInternalServerError)
		return
	}

	resp := DashboardResponse{
		User:           user,
		Stats:          stats,
		RecentWorkouts: recent,
		ProgressData:   progress,
	}
	if resp.RecentWorkouts == nil {
		resp.RecentWorkouts = []store.Workout{}
	}
	if len(recent) > 0 {
		resp.LastWorkout = &recent[0]
	}

	pkg.WriteJSON(w, http.StatusOK, resp)
}
