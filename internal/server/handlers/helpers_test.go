package handlers

import (
	"context"
	"io"
	"log/slog"
	"net/http"
)

// setupTestLogger returns a logger that discards output
func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// asUser attaches the identity that AuthMiddleware would put into
// the request context
func asUser(r *http.Request, userID, username string) *http.Request {
	ctx := context.WithValue(r.Context(), UserIDKey, userID)
	ctx = context.WithValue(ctx, UsernameKey, username)
	return r.WithContext(ctx)
}
