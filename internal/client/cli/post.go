package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/iudanet/teamsync/pkg/api"
)

func (c *Cli) runPost(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("missing arguments. Usage: teamsync post <room-id> <text>")
	}
	roomID := args[0]
	body := strings.TrimSpace(strings.Join(args[1:], " "))
	if body == "" {
		return fmt.Errorf("message text must not be empty")
	}

	if _, err := c.ensureSession(ctx); err != nil {
		return err
	}

	msg, err := c.api.PostMessage(ctx, roomID, api.PostMessageRequest{Body: body})
	if err != nil {
		return err
	}

	c.io.Println("✓ Message posted")
	c.io.Printf("ID: %s\n", msg.ID)

	return nil
}
