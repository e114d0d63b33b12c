package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/pkg"

	"github.com/go-redis/redis/v8"
	"github.com/robfig/cron"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultTTL       = 24 * 7 * time.Hour
	CleanupSchedule  = "@every 8h"
	sessionKeyPrefix = "fittrack-session||"
	tokensSetKey     = "fittrack-sessions"
	tokenLength      = 35
)

var (
	ErrWrongPassword   = errors.New("wrong password")
	ErrSessionNotFound = errors.New("session not found")
)

// Session is what is stored under a token: the owner and the login time.
type Session struct {
	UserID    int
	CreatedAt time.Time
}

func (s Session) encode() string {
	return fmt.Sprintf("%d:%d", s.UserID, s.CreatedAt.Unix())
}

func decodeSession(val string) (Session, error) {
	userIDStr, createdAtStr, found := strings.Cut(val, ":")
	if !found {
		return Session{}, fmt.Errorf("malformed session value [%s]", val)
	}
	userID, err := strconv.Atoi(userIDStr)
	if err != nil {
		return Session{}, fmt.Errorf("session user id: %w", err)
	}
	createdAtUnix, err := strconv.ParseInt(createdAtStr, 10, 64)
	if err != nil {
		return Session{}, fmt.Errorf("session created at: %w", err)
	}
	return Session{
		UserID:    userID,
		CreatedAt: time.Unix(createdAtUnix, 0),
	}, nil
}

type Service struct {
	redisClient *redis.Client
	ttl         time.Duration
	metrics     *metrics.Manager
	// ability to inject random string generator func for tokens (for unit and dev testing)
	RandStringFunc func(s int) (string, error)
}

func NewService(
	ttl time.Duration,
	redisClient *redis.Client,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		ttl:            ttl,
		redisClient:    redisClient,
		metrics:        metricsManager,
		RandStringFunc: pkg.GenerateRandomString,
	}
}

// Login opens a session for the user and returns its token.
func (as *Service) Login(ctx context.Context, userID int, createdAt time.Time) (string, error) {
	token, err := as.RandStringFunc(tokenLength)
	if err != nil {
		return "", err
	}

	session := Session{UserID: userID, CreatedAt: createdAt}
	if err := as.redisClient.Set(ctx, sessionKeyPrefix+token, session.encode(), as.ttl).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}

	// add token to list of sessions
	if err := as.redisClient.SAdd(ctx, tokensSetKey, token).Err(); err != nil {
		return "", fmt.Errorf("register session token: %w", err)
	}

	return token, nil
}

func (as *Service) Logout(ctx context.Context, token string) error {
	sessionKey := sessionKeyPrefix + token
	deleted, err := as.redisClient.Del(ctx, sessionKey).Result()
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	// remove token from the list of sessions
	if err := as.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
		return fmt.Errorf("unregister session token: %w", err)
	}

	if deleted == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// ScanAndClean runs through all known sessions and removes those older than the TTL,
// as well as tokens whose session key is already gone. Returns the number of removed sessions.
func (as *Service) ScanAndClean(ctx context.Context, now time.Time) (int, error) {
	sessionTokens, err := as.redisClient.SMembers(ctx, tokensSetKey).Result()
	if err != nil {
		return 0, fmt.Errorf("get sessions: %w", err)
	}
	if len(sessionTokens) == 0 {
		log.Debugln("auth service, scan and clean abort, no sessions")
		return 0, nil
	}

	log.Debugf("auth service, scan and clean [%d sessions] start ...", len(sessionTokens))
	var toRemove []string
	for _, token := range sessionTokens {
		val, err := as.redisClient.Get(ctx, sessionKeyPrefix+token).Result()
		if errors.Is(err, redis.Nil) {
			toRemove = append(toRemove, token)
			continue
		}
		if err != nil {
			log.Errorf("auth service, scan and clean token %s: %s", token, err)
			continue
		}

		session, err := decodeSession(val)
		if err != nil {
			log.Errorf("auth service, scan and clean token %s: %s", token, err)
			toRemove = append(toRemove, token)
			continue
		}
		if now.Sub(session.CreatedAt) > as.ttl {
			log.Debugf("auth service, will clean the session of user %d", session.UserID)
			toRemove = append(toRemove, token)
		}
	}

	removed := 0
	for _, token := range toRemove {
		if err := as.redisClient.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
			log.Errorf("auth service, clean token %s: %s", token, err)
			continue
		}
		if err := as.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
			log.Errorf("auth service, clean token %s: %s", token, err)
			continue
		}
		removed++
	}

	as.metrics.CounterSessionsCleaned.Add(float64(removed))
	return removed, nil
}

// ScheduleCleanup registers ScanAndClean on the given cron scheduler.
func (as *Service) ScheduleCleanup(c *cron.Cron) error {
	return c.AddFunc(CleanupSchedule, func() {
		removed, err := as.ScanAndClean(context.Background(), time.Now())
		if err != nil {
			log.Errorf("scheduled session cleanup: %s", err)
			return
		}
		log.Infof("scheduled session cleanup removed %d sessions", removed)
	})
}
