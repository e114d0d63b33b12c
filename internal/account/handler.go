package account

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/store"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=account_test

const minPasswordLength = 6

type userStore interface {
	CreateUser(ctx context.Context, user store.User) (*store.User, error)
	GetUser(ctx context.Context, id int) (*store.User, error)
	GetUserByUsername(ctx context.Context, username string) (*store.User, error)
	UpdateUser(ctx context.Context, id int, update store.UserUpdate) (*store.User, error)
	UpdatePasswordHash(ctx context.Context, id int, passwordHash string) error
}

type sessions interface {
	Login(ctx context.Context, userID int, createdAt time.Time) (string, error)
	Logout(ctx context.Context, token string) error
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Credentials
	store.UserUpdate
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type LoginResponse struct {
	User  *store.User `json:"user"`
	Token string      `json:"token"`
}

type Handler struct {
	users    userStore
	sessions sessions
	metrics  *metrics.Manager
}

func NewHandler(users userStore, sessions sessions, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		users:    users,
		sessions: sessions,
		metrics:  metricsManager,
	}
}

// SetupRoutes registers the routes that need no session.
func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/register", handler.HandleRegister).Methods("POST", "OPTIONS").Name("register")
	router.HandleFunc("/login", handler.HandleLogin).Methods("POST", "OPTIONS").Name("login")
}

// SetupUserRoutes registers the routes of the logged in user.
func (handler *Handler) SetupUserRoutes(router *mux.Router) {
	router.HandleFunc("/logout", handler.HandleLogout).Methods("POST", "OPTIONS").Name("logout")
	router.HandleFunc("/user", handler.HandleGetUser).Methods("GET", "OPTIONS").Name("user")
	router.HandleFunc("/user/profile", handler.HandleUpdateProfile).Methods("PATCH", "OPTIONS").Name("user-profile")
	router.HandleFunc("/user/change-password", handler.HandleChangePassword).Methods("POST", "OPTIONS").Name("user-change-password")
}

func decodeJSON(r *http.Request, v any) error {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), pkg.ContentType.JSON) {
		return errors.New("invalid content type")
	}
	return json.NewDecoder(r.Body).Decode(v)
}

func (handler *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.account.register")
	defer span.End()

	var req RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		log.Errorf("register, unmarshal json params: %s", err)
		http.Error(w, "invalid registration data", http.StatusBadRequest)
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" {
		http.Error(w, "username missing", http.StatusBadRequest)
		return
	}
	if utf8.RuneCountInString(req.Password) < minPasswordLength {
		http.Error(w, "password too short", http.StatusBadRequest)
		return
	}
	if err := req.UserUpdate.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	passwordHash, err := pkg.HashPassword(req.Password)
	if err != nil {
		log.Errorf("register [%s], hash password: %s", req.Username, err)
		http.Error(w, "registration failed", http.StatusInternalServerError)
		return
	}

	u := req.UserUpdate
	user, err := handler.users.CreateUser(ctx, store.User{
		Username:     req.Username,
		PasswordHash: passwordHash,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Email:        u.Email,
		Height:       u.Height,
		Weight:       u.Weight,
		Goals:        u.Goals,
		ProfileImage: u.ProfileImage,
	})
	if err != nil {
		if errors.Is(err, store.ErrUsernameTaken) {
			http.Error(w, "username already exists", http.StatusConflict)
			return
		}
		log.Errorf("register [%s]: %s", req.Username, err)
		http.Error(w, "registration failed", http.StatusInternalServerError)
		return
	}

	token, err := handler.sessions.Login(ctx, user.ID, time.Now())
	if err != nil {
		log.Errorf("register [%s], open session: %s", req.Username, err)
		http.Error(w, "registration failed", http.StatusInternalServerError)
		return
	}

	log.Infof("new user registered: [%s] %d", user.Username, user.ID)
	pkg.WriteJSON(w, http.StatusCreated, LoginResponse{User: user, Token: token})
}

func (handler *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.account.login")
	defer span.End()

	var creds Credentials
	if err := decodeJSON(r, &creds); err != nil {
		log.Errorf("login, unmarshal json params: %s", err)
		http.Error(w, "invalid login data", http.StatusBadRequest)
		return
	}
	if creds.Username == "" || creds.Password == "" {
		http.Error(w, "error, username or password empty", http.StatusBadRequest)
		return
	}

	user, err := handler.users.GetUserByUsername(ctx, strings.TrimSpace(creds.Username))
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		log.Errorf("login [%s], get user: %s", creds.Username, err)
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}
	if err != nil || !pkg.CheckPasswordHash(creds.Password, user.PasswordHash) {
		handler.metrics.CounterLogins.WithLabelValues("failure").Inc()
		log.Debugf("login [%s]: %s", creds.Username, auth.ErrWrongPassword)
		http.Error(w, "invalid username or password", http.StatusUnauthorized)
		return
	}

	token, err := handler.sessions.Login(ctx, user.ID, time.Now())
	if err != nil {
		log.Errorf("login [%s], open session: %s", creds.Username, err)
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterLogins.WithLabelValues("success").Inc()
	pkg.WriteJSON(w, http.StatusOK, LoginResponse{User: user, Token: token})
}

func (handler *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.account.logout")
	defer span.End()

	token := r.Header.Get(auth.TokenHeader)
	if token == "" {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	if err := handler.sessions.Logout(ctx, token); err != nil {
		if errors.Is(err, auth.ErrSessionNotFound) {
			http.Error(w, "no can do", http.StatusUnauthorized)
			return
		}
		log.Errorf("logout: %s", err)
		http.Error(w, "logout failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONMessage(w, http.StatusOK, "logged out")
}

func (handler *Handler) HandleGetUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.account.user")
	defer span.End()

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
		log.Errorf("get user %d: %s", userID, err)
		http.Error(w, "failed to fetch user", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, user)
}

func (handler *Handler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.account.profile")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	// unknown fields, the password among them, are ignored
	var update store.UserUpdate
	if err := decodeJSON(r, &update); err != nil {
		log.Errorf("update profile of user %d, unmarshal json params: %s", userID, err)
		http.Error(w, "invalid profile data", http.StatusBadRequest)
		return
	}

	user, err := handler.users.UpdateUser(ctx, userID, update)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrInvalidUpdate):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, store.ErrNotFound):
			http.Error(w, "unauthorized", http.StatusUnauthorized)
		default:
			log.Errorf("update profile of user %d: %s", userID, err)
			http.Error(w, "failed to update profile", http.StatusInternalServerError)
		}
		return
	}

	pkg.WriteJSON(w, http.StatusOK, user)
}

func (handler *Handler) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.account.changePassword")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req ChangePasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		log.Errorf("change password of user %d, unmarshal json params: %s", userID, err)
		http.Error(w, "invalid password data", http.StatusBadRequest)
		return
	}
	if utf8.RuneCountInString(req.NewPassword) < minPasswordLength {
		http.Error(w, "password too short", http.StatusBadRequest)
		return
	}

	if err := handler.changePassword(ctx, userID, req); err != nil {
		if errors.Is(err, auth.ErrWrongPassword) {
			http.Error(w, "Current password is incorrect", http.StatusBadRequest)
			return
		}
		log.Errorf("change password of user %d: %s", userID, err)
		http.Error(w, "failed to change password", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONMessage(w, http.StatusOK, "Password updated successfully")
}

func (handler *Handler) changePassword(ctx context.Context, userID int, req ChangePasswordRequest) error {
	user, err := handler.users.GetUser(ctx, userID)
	if err != nil {
		return err
	}
	if !pkg.CheckPasswordHash(req.CurrentPassword, user.PasswordHash) {
		return auth.ErrWrongPassword
	}

	passwordHash, err := pkg.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	return handler.users.UpdatePasswordHash(ctx, userID, passwordHash)
}
