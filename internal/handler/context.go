package handlers

import (
	"context"

	"ideagen/internal/models"
)

type contextKey string

const userKey contextKey = "user"

// WithUser attaches the authenticated user to the request context.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userKey).(*models.User)
	return user, ok
}
