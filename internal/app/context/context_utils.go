package context

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	appErrors "github.com/celerysoft/scholar-tool-manager/internal/app/errors"
)

type key string

const userUIDKey key = "userUID"

func WithUserUID(ctx context.Context, userUID *uuid.UUID) context.Context {
	return context.WithValue(ctx, userUIDKey, userUID)
}

// UserUID returns the authenticated caller identity placed into the context by
// the auth middleware, or nil when the request is unauthenticated.
func UserUID(ctx context.Context) *uuid.UUID {
	val := ctx.Value(userUIDKey)
	userUID, ok := val.(*uuid.UUID)
	if !ok {
		return nil
	}
	return userUID
}

func GetContextError(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		var errMsg string
		var errCode int

		switch err {
		case context.Canceled:
			errMsg, errCode = "Request canceled", http.StatusInternalServerError
		case context.DeadlineExceeded:
			errMsg, errCode = "Timeout exceeded", http.StatusInternalServerError
		default:
			errMsg, errCode = "Context error", http.StatusInternalServerError
		}
		return appErrors.NewWithCode(err, errMsg, errCode)
	}
	return nil
}
