package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/iudanet/teamsync/pkg/api"
)

func (c *Cli) runMessages(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand. Usage: teamsync messages <list|edit|delete>")
	}

	switch args[0] {
	case "list":
		return c.listMessages(ctx, args[1:])
	case "edit":
		return c.editMessage(ctx, args[1:])
	case "delete":
		return c.deleteMessage(ctx, args[1:])
	default:
		return fmt.Errorf("unknown messages subcommand: %s", args[0])
	}
}

// listMessages читает локальную реплику и работает без сети
func (c *Cli) listMessages(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("missing room ID. Usage: teamsync messages list <room-id>")
	}
	roomID := args[0]

	messages, err := c.replica.GetRoomMessages(ctx, roomID)
	if err != nil {
		return fmt.Errorf("failed to read local replica: %w", err)
	}

	c.io.Println("=== Messages ===")
	c.io.Println()

	if len(messages) == 0 {
		c.io.Println("No messages in local replica.")
		c.io.Println("Run 'teamsync sync <workspace-id>' to pull them from the server.")
		return nil
	}

	for _, msg := range messages {
		c.io.Printf("[%s] %s: %s\n", formatTime(msg.CreatedAt), msg.AuthorID, msg.Body)
	}
	c.io.Println()
	c.io.Printf("Total: %d\n", len(messages))

	return nil
}

func (c *Cli) editMessage(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("missing arguments. Usage: teamsync messages edit <message-id> <text>")
	}
	messageID := args[0]
	body := strings.TrimSpace(strings.Join(args[1:], " "))
	if body == "" {
		return fmt.Errorf("message text must not be empty")
	}

	if _, err := c.ensureSession(ctx); err != nil {
		return err
	}

	if _, err := c.api.EditMessage(ctx, messageID, api.EditMessageRequest{Body: body}); err != nil {
		return err
	}

	c.io.Println("✓ Message updated")

	return nil
}

func (c *Cli) deleteMessage(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("missing message ID. Usage: teamsync messages delete <message-id>")
	}
	messageID := args[0]

	if _, err := c.ensureSession(ctx); err != nil {
		return err
	}

	if err := c.api.DeleteMessage(ctx, messageID); err != nil {
		return err
	}

	c.io.Println("✓ Message deleted")

	return nil
}
