package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/iudanet/teamsync/pkg/api"
)

func (c *Cli) runRooms(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand. Usage: teamsync rooms <list|create>")
	}

	switch args[0] {
	case "list":
		return c.listRooms(ctx, args[1:])
	case "create":
		return c.createRoom(ctx, args[1:])
	default:
		return fmt.Errorf("unknown rooms subcommand: %s", args[0])
	}
}

func (c *Cli) listRooms(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("missing workspace ID. Usage: teamsync rooms list <workspace-id>")
	}
	workspaceID := args[0]

	if _, err := c.ensureSession(ctx); err != nil {
		return err
	}

	rooms, err := c.api.ListRooms(ctx, workspaceID)
	if err != nil {
		return err
	}

	c.io.Println("=== Rooms ===")
	c.io.Println()

	if len(rooms) == 0 {
		c.io.Println("No rooms yet.")
		c.io.Println("Use 'teamsync rooms create <workspace-id> <name>' to create one.")
		return nil
	}

	for _, room := range rooms {
		if room.Topic != "" {
			c.io.Printf("%s  #%s - %s\n", room.ID, room.Name, room.Topic)
		} else {
			c.io.Printf("%s  #%s\n", room.ID, room.Name)
		}
	}
	c.io.Println()
	c.io.Printf("Total: %d\n", len(rooms))

	return nil
}

func (c *Cli) createRoom(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("missing arguments. Usage: teamsync rooms create <workspace-id> <name> [topic]")
	}
	workspaceID := args[0]
	name := args[1]
	topic := strings.TrimSpace(strings.Join(args[2:], " "))

	if _, err := c.ensureSession(ctx); err != nil {
		return err
	}

	room, err := c.api.CreateRoom(ctx, workspaceID, api.CreateRoomRequest{
		Name:  name,
		Topic: topic,
	})
	if err != nil {
		return err
	}

	c.io.Printf("✓ Room created: #%s\n", room.Name)
	c.io.Printf("ID: %s\n", room.ID)

	return nil
}
