package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/teamsync/internal/client/storage"
	"github.com/iudanet/teamsync/pkg/api"
)

func (c *Cli) runLogout(ctx context.Context) error {
	session, err := c.sessions.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			c.io.Println("Not logged in.")
			return nil
		}
		return fmt.Errorf("failed to load session: %w", err)
	}

	// Отзыв refresh токена на сервере - best effort: локальная
	// сессия удаляется даже если сервер недоступен.
	c.api.SetToken(session.AccessToken)
	if err := c.api.Logout(ctx, api.LogoutRequest{RefreshToken: session.RefreshToken}); err != nil {
		c.io.Printf("Warning: server logout failed: %v\n", err)
	}

	if err := c.sessions.DeleteSession(ctx); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	c.io.Println("✓ Logged out")

	return nil
}
