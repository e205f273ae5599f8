package cli

import (
	"context"
	"fmt"
)

// Run выполняет команду клиента. Неизвестная команда печатает
// справку и возвращает ошибку.
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "register":
		return c.runRegister(ctx)
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "workspaces":
		return c.runWorkspaces(ctx, args)
	case "rooms":
		return c.runRooms(ctx, args)
	case "post":
		return c.runPost(ctx, args)
	case "messages":
		return c.runMessages(ctx, args)
	case "tasks":
		return c.runTasks(ctx, args)
	case "sync":
		return c.runSync(ctx, args)
	case "notifications":
		return c.runNotifications(ctx, args)
	default:
		PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}
