package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/iudanet/teamsync/pkg/api"
)

func (c *Cli) runTasks(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand. Usage: teamsync tasks <list|create|status|assign|delete>")
	}

	switch args[0] {
	case "list":
		return c.listTasks(ctx, args[1:])
	case "create":
		return c.createTask(ctx, args[1:])
	case "status":
		return c.setTaskStatus(ctx, args[1:])
	case "assign":
		return c.assignTask(ctx, args[1:])
	case "delete":
		return c.deleteTask(ctx, args[1:])
	default:
		return fmt.Errorf("unknown tasks subcommand: %s", args[0])
	}
}

// listTasks читает локальную реплику и работает без сети
func (c *Cli) listTasks(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("missing workspace ID. Usage: teamsync tasks list <workspace-id>")
	}
	workspaceID := args[0]

	tasks, err := c.replica.GetWorkspaceTasks(ctx, workspaceID)
	if err != nil {
		return fmt.Errorf("failed to read local replica: %w", err)
	}

	c.io.Println("=== Tasks ===")
	c.io.Println()

	if len(tasks) == 0 {
		c.io.Println("No tasks in local replica.")
		c.io.Println("Run 'teamsync sync <workspace-id>' to pull them from the server.")
		return nil
	}

	for _, task := range tasks {
		line := fmt.Sprintf("[%s] %s  %s", task.Status, task.ID, task.Title)
		if task.AssigneeID != "" {
			line += fmt.Sprintf(" (assignee: %s)", task.AssigneeID)
		}
		c.io.Println(line)
	}
	c.io.Println()
	c.io.Printf("Total: %d\n", len(tasks))

	return nil
}

func (c *Cli) createTask(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("missing arguments. Usage: teamsync tasks create <workspace-id> <title>")
	}
	workspaceID := args[0]
	title := strings.TrimSpace(strings.Join(args[1:], " "))
	if title == "" {
		return fmt.Errorf("task title must not be empty")
	}

	if _, err := c.ensureSession(ctx); err != nil {
		return err
	}

	task, err := c.api.CreateTask(ctx, workspaceID, api.CreateTaskRequest{Title: title})
	if err != nil {
		return err
	}

	c.io.Printf("✓ Task created: %s\n", task.Title)
	c.io.Printf("ID: %s\n", task.ID)

	return nil
}

func (c *Cli) setTaskStatus(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("missing arguments. Usage: teamsync tasks status <task-id> <todo|in_progress|done>")
	}
	taskID := args[0]
	status := args[1]

	if _, err := c.ensureSession(ctx); err != nil {
		return err
	}

	task, err := c.api.UpdateTask(ctx, taskID, api.UpdateTaskRequest{Status: &status})
	if err != nil {
		return err
	}

	c.io.Printf("✓ Task status: %s\n", task.Status)

	return nil
}

func (c *Cli) assignTask(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("missing arguments. Usage: teamsync tasks assign <task-id> <user-id>")
	}
	taskID := args[0]
	assigneeID := args[1]

	if _, err := c.ensureSession(ctx); err != nil {
		return err
	}

	task, err := c.api.UpdateTask(ctx, taskID, api.UpdateTaskRequest{AssigneeID: &assigneeID})
	if err != nil {
		return err
	}

	c.io.Printf("✓ Task assigned to %s\n", task.AssigneeID)

	return nil
}

func (c *Cli) deleteTask(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("missing task ID. Usage: teamsync tasks delete <task-id>")
	}
	taskID := args[0]

	if _, err := c.ensureSession(ctx); err != nil {
		return err
	}

	if err := c.api.DeleteTask(ctx, taskID); err != nil {
		return err
	}

	c.io.Println("✓ Task deleted")

	return nil
}
