package cli

import (
	"context"

	"github.com/iudanet/teamsync/pkg/api"
)

//go:generate moq -out api_mock.go . API

// API описывает серверные операции, используемые командами CLI.
// Реализуется клиентом internal/client/api.
type API interface {
	// SetToken устанавливает access token для последующих запросов
	SetToken(token string)

	// Register регистрирует нового пользователя
	Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error)

	// Login выполняет аутентификацию пользователя
	Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error)

	// Refresh ротирует пару токенов по refresh token
	Refresh(ctx context.Context, req api.RefreshRequest) (*api.TokenResponse, error)

	// Logout отзывает refresh token на сервере
	Logout(ctx context.Context, req api.LogoutRequest) error

	// CreateWorkspace создает новый workspace
	CreateWorkspace(ctx context.Context, req api.CreateWorkspaceRequest) (*api.Workspace, error)

	// ListWorkspaces возвращает workspace пользователя
	ListWorkspaces(ctx context.Context) ([]api.Workspace, error)

	// AddMember добавляет участника в workspace по username
	AddMember(ctx context.Context, workspaceID string, req api.AddMemberRequest) (*api.Member, error)

	// ListMembers возвращает участников workspace
	ListMembers(ctx context.Context, workspaceID string) ([]api.Member, error)

	// CreateRoom создает комнату в workspace
	CreateRoom(ctx context.Context, workspaceID string, req api.CreateRoomRequest) (*api.Room, error)

	// ListRooms возвращает комнаты workspace
	ListRooms(ctx context.Context, workspaceID string) ([]api.Room, error)

	// PostMessage отправляет сообщение в комнату
	PostMessage(ctx context.Context, roomID string, req api.PostMessageRequest) (*api.Message, error)

	// EditMessage правит текст собственного сообщения
	EditMessage(ctx context.Context, messageID string, req api.EditMessageRequest) (*api.Message, error)

	// DeleteMessage удаляет собственное сообщение
	DeleteMessage(ctx context.Context, messageID string) error

	// CreateTask создает задачу в workspace
	CreateTask(ctx context.Context, workspaceID string, req api.CreateTaskRequest) (*api.Task, error)

	// UpdateTask частично обновляет задачу
	UpdateTask(ctx context.Context, taskID string, req api.UpdateTaskRequest) (*api.Task, error)

	// DeleteTask удаляет задачу
	DeleteTask(ctx context.Context, taskID string) error

	// ListNotifications возвращает уведомления пользователя
	ListNotifications(ctx context.Context, unreadOnly bool, limit int) ([]api.Notification, error)

	// MarkNotificationRead помечает уведомление прочитанным
	MarkNotificationRead(ctx context.Context, notificationID string) error

	// MarkAllNotificationsRead помечает все уведомления прочитанными
	MarkAllNotificationsRead(ctx context.Context) (*api.MarkAllReadResponse, error)
}
