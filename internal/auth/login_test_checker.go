package auth

import "context"

// LoginTestChecker is an in-memory Checker for tests and local runs without redis.
type LoginTestChecker struct {
	Sessions map[string]int
}

func NewLoginTestChecker() *LoginTestChecker {
	return &LoginTestChecker{
		Sessions: map[string]int{},
	}
}

func (c *LoginTestChecker) UserID(_ context.Context, token string) (int, error) {
	userID, ok := c.Sessions[token]
	if !ok {
		return 0, ErrSessionNotFound
	}
	return userID, nil
}
