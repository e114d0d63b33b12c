package auth

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

type LoginChecker struct {
	ttl         time.Duration
	redisClient *redis.Client
	now         func() time.Time
}

func NewLoginChecker(ttl time.Duration, redisClient *redis.Client) *LoginChecker {
	return &LoginChecker{
		ttl:         ttl,
		redisClient: redisClient,
		now:         time.Now,
	}
}

// UserID returns the owner of a live session, or ErrSessionNotFound.
func (lc *LoginChecker) UserID(ctx context.Context, token string) (int, error) {
	if token == "" {
		return 0, ErrSessionNotFound
	}

	val, err := lc.redisClient.Get(ctx, sessionKeyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return 0, ErrSessionNotFound
	}
	if err != nil {
		return 0, err
	}

	session, err := decodeSession(val)
	if err != nil {
		return 0, err
	}
	if lc.now().Sub(session.CreatedAt) > lc.ttl {
		return 0, ErrSessionNotFound
	}
	return session.UserID, nil
}
