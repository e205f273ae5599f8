package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runSync(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("missing workspace ID. Usage: teamsync sync <workspace-id>")
	}
	workspaceID := args[0]

	if _, err := c.ensureSession(ctx); err != nil {
		return err
	}

	c.io.Printf("Syncing workspace %s...\n", workspaceID)

	result, err := c.syncSvc.Run(ctx, workspaceID)
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Sync completed")
	c.io.Printf("Pages:   %d\n", result.Pages)
	c.io.Printf("Pulled:  %d\n", result.Pulled)
	c.io.Printf("Applied: %d\n", result.Applied)
	c.io.Printf("Deleted: %d\n", result.Deleted)

	return nil
}
