package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/iudanet/teamsync/pkg/api"
)

func (c *Cli) runWorkspaces(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand. Usage: teamsync workspaces <list|create|members|add-member>")
	}

	switch args[0] {
	case "list":
		return c.listWorkspaces(ctx)
	case "create":
		return c.createWorkspace(ctx, args[1:])
	case "members":
		return c.listMembers(ctx, args[1:])
	case "add-member":
		return c.addMember(ctx, args[1:])
	default:
		return fmt.Errorf("unknown workspaces subcommand: %s", args[0])
	}
}

func (c *Cli) listWorkspaces(ctx context.Context) error {
	if _, err := c.ensureSession(ctx); err != nil {
		return err
	}

	workspaces, err := c.api.ListWorkspaces(ctx)
	if err != nil {
		return err
	}

	c.io.Println("=== Workspaces ===")
	c.io.Println()

	if len(workspaces) == 0 {
		c.io.Println("No workspaces yet.")
		c.io.Println("Use 'teamsync workspaces create <name>' to create one.")
		return nil
	}

	for _, ws := range workspaces {
		c.io.Printf("%s  %s  (created %s)\n", ws.ID, ws.Name, formatTime(ws.CreatedAt))
	}
	c.io.Println()
	c.io.Printf("Total: %d\n", len(workspaces))

	return nil
}

func (c *Cli) createWorkspace(ctx context.Context, args []string) error {
	name := strings.TrimSpace(strings.Join(args, " "))
	if name == "" {
		return fmt.Errorf("missing workspace name. Usage: teamsync workspaces create <name>")
	}

	if _, err := c.ensureSession(ctx); err != nil {
		return err
	}

	ws, err := c.api.CreateWorkspace(ctx, api.CreateWorkspaceRequest{Name: name})
	if err != nil {
		return err
	}

	c.io.Printf("✓ Workspace created: %s\n", ws.Name)
	c.io.Printf("ID: %s\n", ws.ID)

	return nil
}

func (c *Cli) listMembers(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("missing workspace ID. Usage: teamsync workspaces members <workspace-id>")
	}
	workspaceID := args[0]

	if _, err := c.ensureSession(ctx); err != nil {
		return err
	}

	members, err := c.api.ListMembers(ctx, workspaceID)
	if err != nil {
		return err
	}

	c.io.Println("=== Members ===")
	c.io.Println()

	for _, m := range members {
		c.io.Printf("%s  %s  [%s]\n", m.UserID, m.Username, m.Role)
	}
	c.io.Println()
	c.io.Printf("Total: %d\n", len(members))

	return nil
}

func (c *Cli) addMember(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("missing arguments. Usage: teamsync workspaces add-member <workspace-id> <username> [role]")
	}
	workspaceID := args[0]
	username := args[1]

	role := ""
	if len(args) > 2 {
		role = args[2]
	}

	if _, err := c.ensureSession(ctx); err != nil {
		return err
	}

	member, err := c.api.AddMember(ctx, workspaceID, api.AddMemberRequest{
		Username: username,
		Role:     role,
	})
	if err != nil {
		return err
	}

	c.io.Printf("✓ Added %s as %s\n", member.Username, member.Role)

	return nil
}
