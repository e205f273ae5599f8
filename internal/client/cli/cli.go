// Package cli реализует команды консольного клиента TeamSync:
// аутентификацию, работу с workspace, комнатами, сообщениями и
// задачами, синхронизацию локальной реплики и уведомления.
package cli

import (
	"fmt"

	"github.com/iudanet/teamsync/internal/client/iocli"
	"github.com/iudanet/teamsync/internal/client/storage"
	"github.com/iudanet/teamsync/internal/client/sync"
)

// Cli держит зависимости команд клиента
type Cli struct {
	api      API
	sessions storage.SessionStorage
	replica  storage.ReplicaStorage
	syncSvc  sync.Service
	io       iocli.IO
}

// New создает CLI с заданными зависимостями
func New(apiClient API, sessions storage.SessionStorage, replica storage.ReplicaStorage, syncService sync.Service, io iocli.IO) *Cli {
	return &Cli{
		api:      apiClient,
		sessions: sessions,
		replica:  replica,
		syncSvc:  syncService,
		io:       io,
	}
}

func PrintUsage() {
	fmt.Println("TeamSync Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  teamsync [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -version        Show version information")
	fmt.Println("  -server URL     Server URL (default: http://localhost:8080)")
	fmt.Println("  -db PATH        Path to local database (default: teamsync-client.db)")
	fmt.Println("  -v              Verbose logging")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  register                                    Register new user")
	fmt.Println("  login                                       Login to server")
	fmt.Println("  logout                                      Logout and drop the saved session")
	fmt.Println("  status                                      Show authentication status")
	fmt.Println("  workspaces list                             List your workspaces")
	fmt.Println("  workspaces create <name>                    Create workspace")
	fmt.Println("  workspaces members <workspace-id>           List workspace members")
	fmt.Println("  workspaces add-member <workspace-id> <username> [role]")
	fmt.Println("                                              Add member to workspace")
	fmt.Println("  rooms list <workspace-id>                   List rooms")
	fmt.Println("  rooms create <workspace-id> <name> [topic]  Create room")
	fmt.Println("  post <room-id> <text>                       Post message to room")
	fmt.Println("  messages list <room-id>                     Show room messages (local replica)")
	fmt.Println("  messages edit <message-id> <text>           Edit own message")
	fmt.Println("  messages delete <message-id>                Delete own message")
	fmt.Println("  tasks list <workspace-id>                   Show workspace tasks (local replica)")
	fmt.Println("  tasks create <workspace-id> <title>         Create task")
	fmt.Println("  tasks status <task-id> <status>             Set status: todo, in_progress, done")
	fmt.Println("  tasks assign <task-id> <user-id>            Assign task to user")
	fmt.Println("  tasks delete <task-id>                      Delete task")
	fmt.Println("  sync <workspace-id>                         Pull workspace changes into local replica")
	fmt.Println("  notifications list [unread]                 List notifications")
	fmt.Println("  notifications read <notification-id>        Mark notification read")
	fmt.Println("  notifications read-all                      Mark all notifications read")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  teamsync register")
	fmt.Println("  teamsync login")
	fmt.Println("  teamsync workspaces create 'backend team'")
	fmt.Println("  teamsync post 2f3a9c1e-5b7d-4e88-9f01-6c2d8a4b7e51 'deploy is done'")
	fmt.Println("  teamsync sync 52b2bd27-913e-47e2-b083-8f1c2a3d4e5f")
	fmt.Println("  teamsync --server https://teamsync.example.com login")
}
