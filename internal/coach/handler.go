package coach

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/store"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=coach_test

const contextWorkouts = 5

type conversationStore interface {
	GetConversation(ctx context.Context, userID int) (*store.Conversation, error)
	SaveConversation(ctx context.Context, userID int, messages []store.Message, now time.Time) (*store.Conversation, error)
}

type workoutHistory interface {
	RecentWorkouts(ctx context.Context, userID int, limit int) ([]store.Workout, error)
}

type MessageRequest struct {
	Content string `json:"content"`
}

type MessageResponse struct {
	Message store.Message `json:"message"`
}

type Handler struct {
	conversations conversationStore
	history       workoutHistory
	responder     Responder
	metrics       *metrics.Manager
}

func NewHandler(
	conversations conversationStore,
	history workoutHistory,
	responder Responder,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		conversations: conversations,
		history:       history,
		responder:     responder,
		metrics:       metricsManager,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/ai/conversation", handler.HandleConversation).Methods("GET", "OPTIONS").Name("ai-conversation")
	router.HandleFunc("/ai/message", handler.HandleMessage).Methods("POST", "OPTIONS").Name("ai-message")
	router.HandleFunc("/ai/conversation/reset", handler.HandleReset).Methods("POST", "OPTIONS").Name("ai-conversation-reset")
}

// HandleConversation returns the user's conversation, starting one with a welcome message on first use.
func (handler *Handler) HandleConversation(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.coach.conversation")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	conversation, err := handler.conversations.GetConversation(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		welcome := []store.Message{{Role: store.RoleAssistant, Content: WelcomeMessage}}
		conversation, err = handler.conversations.SaveConversation(ctx, userID, welcome, time.Now())
	}
	if err != nil {
		log.Errorf("get conversation of user %d: %s", userID, err)
		http.Error(w, "failed to fetch conversation", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, conversation)
}

func (handler *Handler) HandleMessage(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.coach.message")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req MessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Content) == "" {
		http.Error(w, "message content is required", http.StatusBadRequest)
		return
	}

	var messages []store.Message
	conversation, err := handler.conversations.GetConversation(ctx, userID)
	switch {
	case err == nil:
		messages = conversation.Messages
	case !errors.Is(err, store.ErrNotFound):
		log.Errorf("coach message, get conversation of user %d: %s", userID, err)
		http.Error(w, "failed to process message", http.StatusInternalServerError)
		return
	}
	messages = append(messages, store.Message{Role: store.RoleUser, Content: req.Content})

	recent, err := handler.history.RecentWorkouts(ctx, userID, contextWorkouts)
	if err != nil {
		log.Errorf("coach message, recent workouts of user %d: %s", userID, err)
		http.Error(w, "failed to process message", http.StatusInternalServerError)
		return
	}

	reply, err := handler.responder.Reply(ctx, req.Content, recent)
	if err != nil {
		log.Errorf("coach message, reply to user %d: %s", userID, err)
		http.Error(w, "failed to process message", http.StatusInternalServerError)
		return
	}
	answer := store.Message{Role: store.RoleAssistant, Content: reply}
	messages = append(messages, answer)

	if _, err := handler.conversations.SaveConversation(ctx, userID, messages, time.Now()); err != nil {
		log.Errorf("coach message, save conversation of user %d: %s", userID, err)
		http.Error(w, "failed to process message", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterCoachMessages.Inc()
	pkg.WriteJSON(w, http.StatusOK, MessageResponse{Message: answer})
}

func (handler *Handler) HandleReset(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.coach.reset")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	if _, err := handler.conversations.GetConversation(ctx, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.Error(w, "conversation not found", http.StatusNotFound)
			return
		}
		log.Errorf("reset conversation of user %d: %s", userID, err)
		http.Error(w, "failed to reset conversation", http.StatusInternalServerError)
		return
	}

	welcome := []store.Message{{Role: store.RoleAssistant, Content: WelcomeBackMessage}}
	if _, err := handler.conversations.SaveConversation(ctx, userID, welcome, time.Now()); err != nil {
		log.Errorf("reset conversation of user %d: %s", userID, err)
		http.Error(w, "failed to reset conversation", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONMessage(w, http.StatusOK, "Conversation reset successfully")
}
