package cli

import (
	"context"
	"fmt"
)

const notificationsLimit = 50

func (c *Cli) runNotifications(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return c.listNotifications(ctx, false)
	}

	switch args[0] {
	case "list":
		unreadOnly := len(args) > 1 && args[1] == "unread"
		return c.listNotifications(ctx, unreadOnly)
	case "read":
		return c.markNotificationRead(ctx, args[1:])
	case "read-all":
		return c.markAllNotificationsRead(ctx)
	default:
		return fmt.Errorf("unknown notifications subcommand: %s", args[0])
	}
}

func (c *Cli) listNotifications(ctx context.Context, unreadOnly bool) error {
	if _, err := c.ensureSession(ctx); err != nil {
		return err
	}

	notifications, err := c.api.ListNotifications(ctx, unreadOnly, notificationsLimit)
	if err != nil {
		return err
	}

	c.io.Println("=== Notifications ===")
	c.io.Println()

	if len(notifications) == 0 {
		c.io.Println("No notifications.")
		return nil
	}

	for _, n := range notifications {
		marker := "*"
		if n.Read {
			marker = " "
		}
		c.io.Printf("[%s] %s  %s  (%s) %s\n", marker, formatTime(n.CreatedAt), n.ID, n.Kind, n.Body)
	}
	c.io.Println()
	c.io.Printf("Total: %d\n", len(notifications))

	return nil
}

func (c *Cli) markNotificationRead(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("missing notification ID. Usage: teamsync notifications read <notification-id>")
	}
	notificationID := args[0]

	if _, err := c.ensureSession(ctx); err != nil {
		return err
	}

	if err := c.api.MarkNotificationRead(ctx, notificationID); err != nil {
		return err
	}

	c.io.Println("✓ Notification marked as read")

	return nil
}

func (c *Cli) markAllNotificationsRead(ctx context.Context) error {
	if _, err := c.ensureSession(ctx); err != nil {
		return err
	}

	resp, err := c.api.MarkAllNotificationsRead(ctx)
	if err != nil {
		return err
	}

	c.io.Printf("✓ Marked %d notifications as read\n", resp.Updated)

	return nil
}
