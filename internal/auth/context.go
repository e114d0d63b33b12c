package auth

import "context"

type userIDKey struct{}

// ContextWithUserID returns a copy of ctx carrying the id of the logged in user.
func ContextWithUserID(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// UserIDFromContext returns the logged in user id set by the auth middleware.
func UserIDFromContext(ctx context.Context) (int, bool) {
	userID, ok := ctx.Value(userIDKey{}).(int)
	return userID, ok && userID > 0
}

// TokenHeader carries the session token on authenticated requests.
const TokenHeader = "X-Fittrack-Token"
