package account_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/2beens/fittrack/internal/account"
	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/store"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/pkg"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	pkg.PasswordHashCost = bcrypt.MinCost
	goleak.VerifyTestMain(m)
}

type fixture struct {
	store    *store.Memory
	sessions *Mocksessions
	metrics  *metrics.Manager
	router   *mux.Router
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	m := store.NewMemory()
	sessionsMock := NewMocksessions(ctrl)
	metricsManager := metrics.NewTestManager()

	handler := account.NewHandler(m, sessionsMock, metricsManager)
	router := mux.NewRouter()
	handler.SetupRoutes(router)
	handler.SetupUserRoutes(router)

	return &fixture{
		store:    m,
		sessions: sessionsMock,
		metrics:  metricsManager,
		router:   router,
	}
}

func (f *fixture) do(t *testing.T, method, target, body string, userID int) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(method, target, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if userID > 0 {
		req = req.WithContext(auth.ContextWithUserID(req.Context(), userID))
	}
	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)
	return rr
}

func (f *fixture) addUser(t *testing.T, username, password string) *store.User {
	t.Helper()
	hash, err := pkg.HashPassword(password)
	require.NoError(t, err)
	user, err := f.store.CreateUser(context.Background(), store.User{Username: username, PasswordHash: hash})
	require.NoError(t, err)
	return user
}

func TestHandleRegister(t *testing.T) {
	f := newFixture(t)
	f.sessions.EXPECT().Login(gomock.Any(), 1, gomock.Any()).Return("new-token", nil)

	rr := f.do(t, http.MethodPost, "/register", `{"username": "serj", "password": "secret123", "firstName": "Serj", "height": 187}`, 0)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var resp account.LoginResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "new-token", resp.Token)
	require.NotNil(t, resp.User)
	assert.Equal(t, "serj", resp.User.Username)
	assert.Equal(t, 187, *resp.User.Height)
	assert.NotContains(t, rr.Body.String(), "secret123")

	stored, err := f.store.GetUserByUsername(context.Background(), "serj")
	require.NoError(t, err)
	assert.True(t, pkg.CheckPasswordHash("secret123", stored.PasswordHash))

	// case insensitive duplicate
	rr = f.do(t, http.MethodPost, "/register", `{"username": "SERJ", "password": "secret123"}`, 0)
	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestHandleRegister_Invalid(t *testing.T) {
	f := newFixture(t)

	for _, body := range []string{
		`{"username": "", "password": "secret123"}`,
		`{"username": "serj", "password": "123"}`,
		`{"username": "serj", "password": "secret123", "email": "nope"}`,
		`{"username": `,
	} {
		rr := f.do(t, http.MethodPost, "/register", body, 0)
		assert.Equal(t, http.StatusBadRequest, rr.Code, body)
	}
}

func TestHandleLogin(t *testing.T) {
	f := newFixture(t)
	user := f.addUser(t, "serj", "secret123")

	f.sessions.EXPECT().Login(gomock.Any(), user.ID, gomock.Any()).Return("tkn", nil)
	rr := f.do(t, http.MethodPost, "/login", `{"username": "serj", "password": "secret123"}`, 0)
	require.Equal(t, http.StatusOK, rr.Code)
	var resp account.LoginResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "tkn", resp.Token)
	assert.Equal(t, user.ID, resp.User.ID)

	rr = f.do(t, http.MethodPost, "/login", `{"username": "serj", "password": "wrong-pass"}`, 0)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	rr = f.do(t, http.MethodPost, "/login", `{"username": "nobody", "password": "secret123"}`, 0)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	rr = f.do(t, http.MethodPost, "/login", `{"username": "serj"}`, 0)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.CounterLogins.WithLabelValues("success")))
	assert.Equal(t, 2.0, testutil.ToFloat64(f.metrics.CounterLogins.WithLabelValues("failure")))
}

func TestHandleLogin_SessionFailure(t *testing.T) {
	f := newFixture(t)
	user := f.addUser(t, "serj", "secret123")

	f.sessions.EXPECT().Login(gomock.Any(), user.ID, gomock.Any()).Return("", errors.New("redis down"))
	rr := f.do(t, http.MethodPost, "/login", `{"username": "serj", "password": "secret123"}`, 0)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestHandleLogout(t *testing.T) {
	f := newFixture(t)

	req, err := http.NewRequest(http.MethodPost, "/logout", nil)
	require.NoError(t, err)
	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	f.sessions.EXPECT().Logout(gomock.Any(), "tkn").Return(nil)
	req.Header.Set(auth.TokenHeader, "tkn")
	rr = httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)

	f.sessions.EXPECT().Logout(gomock.Any(), "tkn").Return(auth.ErrSessionNotFound)
	rr = httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestHandleGetUserAndProfile(t *testing.T) {
	f := newFixture(t)
	user := f.addUser(t, "serj", "secret123")

	assert.Equal(t, http.StatusUnauthorized, f.do(t, http.MethodGet, "/user", "", 0).Code)
	assert.Equal(t, http.StatusUnauthorized, f.do(t, http.MethodGet, "/user", "", user.ID+1).Code)

	rr := f.do(t, http.MethodPatch, "/user/profile", `{"goals": "first pull-up", "weight": 82, "password": "hijack"}`, user.ID)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = f.do(t, http.MethodGet, "/user", "", user.ID)
	require.Equal(t, http.StatusOK, rr.Code)
	var got store.User
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "first pull-up", *got.Goals)
	assert.Equal(t, 82, *got.Weight)

	// password is not touched by a profile update
	stored, err := f.store.GetUser(context.Background(), user.ID)
	require.NoError(t, err)
	assert.True(t, pkg.CheckPasswordHash("secret123", stored.PasswordHash))

	rr = f.do(t, http.MethodPatch, "/user/profile", `{"height": -1}`, user.ID)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandleChangePassword(t *testing.T) {
	f := newFixture(t)
	user := f.addUser(t, "serj", "secret123")

	rr := f.do(t, http.MethodPost, "/user/change-password", `{"currentPassword": "wrong-one", "newPassword": "secret456"}`, user.ID)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Current password is incorrect")

	rr = f.do(t, http.MethodPost, "/user/change-password", `{"currentPassword": "secret123", "newPassword": "456"}`, user.ID)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = f.do(t, http.MethodPost, "/user/change-password", `{"currentPassword": "secret123", "newPassword": "secret456"}`, user.ID)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message": "Password updated successfully"}`, rr.Body.String())

	stored, err := f.store.GetUser(context.Background(), user.ID)
	require.NoError(t, err)
	assert.True(t, pkg.CheckPasswordHash("secret456", stored.PasswordHash))
	assert.False(t, pkg.CheckPasswordHash("secret123", stored.PasswordHash))
}

func TestHandleChangePassword_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	usersMock := NewMockuserStore(ctrl)
	handler := account.NewHandler(usersMock, NewMocksessions(ctrl), metrics.NewTestManager())
	router := mux.NewRouter()
	handler.SetupUserRoutes(router)

	hash, err := pkg.HashPassword("secret123")
	require.NoError(t, err)
	usersMock.EXPECT().GetUser(gomock.Any(), 4).Return(&store.User{ID: 4, Username: "serj", PasswordHash: hash}, nil)
	usersMock.EXPECT().UpdatePasswordHash(gomock.Any(), 4, gomock.Any()).Return(errors.New("db gone"))

	req, err := http.NewRequest(http.MethodPost, "/user/change-password", strings.NewReader(`{"currentPassword": "secret123", "newPassword": "secret456"}`))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req = req.WithContext(auth.ContextWithUserID(req.Context(), 4))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
