package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/teamsync/internal/client/storage"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Status ===")
	c.io.Println()

	session, err := c.sessions.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			c.io.Println("Not logged in.")
			c.io.Println("Run 'teamsync login' to sign in.")
			return nil
		}
		return fmt.Errorf("failed to load session: %w", err)
	}

	c.io.Printf("Logged in as: %s\n", session.Username)

	expiresAt := time.Unix(session.ExpiresAt, 0)
	if session.Expired(time.Now()) {
		c.io.Printf("Access token: expired at %s (will refresh on next request)\n", formatTime(expiresAt))
	} else {
		c.io.Printf("Access token: valid until %s\n", formatTime(expiresAt))
	}

	return nil
}
