package handlers

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/teamsync/internal/models"
	"github.com/iudanet/teamsync/internal/server/storage"
)

// snippetLen максимальная длина сниппета уведомления (в рунах)
const snippetLen = 120

// Notifier рассылает уведомления по событиям workspace.
// Рассылка best-effort: ошибки записи логируются и никогда не
// проваливают запрос, который ее вызвал.
type Notifier struct {
	logger        *slog.Logger
	notifications storage.NotificationStorage
	workspaces    storage.WorkspaceStorage
}

// NewNotifier создает рассыльщик уведомлений
func NewNotifier(logger *slog.Logger, notifications storage.NotificationStorage, workspaces storage.WorkspaceStorage) *Notifier {
	return &Notifier{
		logger:        logger,
		notifications: notifications,
		workspaces:    workspaces,
	}
}

// MessagePosted уведомляет всех участников workspace кроме автора
// о новом сообщении
func (n *Notifier) MessagePosted(ctx context.Context, message *models.Message) {
	members, err := n.workspaces.GetMembers(ctx, message.WorkspaceID)
	if err != nil {
		n.logger.ErrorContext(ctx, "notification fan-out: failed to get members",
			slog.String("workspace_id", message.WorkspaceID),
			slog.Any("error", err))
		return
	}

	now := time.Now()
	batch := make([]*models.Notification, 0, len(members))
	for _, m := range members {
		if m.UserID == message.AuthorID {
			continue
		}
		batch = append(batch, &models.Notification{
			ID:          uuid.New().String(),
			WorkspaceID: message.WorkspaceID,
			UserID:      m.UserID,
			Kind:        models.NotificationKindMessage,
			RefID:       message.ID,
			Body:        snippet(message.Body),
			CreatedAt:   now,
		})
	}

	if err := n.notifications.CreateNotifications(ctx, batch); err != nil {
		n.logger.ErrorContext(ctx, "notification fan-out: failed to create notifications",
			slog.String("message_id", message.ID),
			slog.Any("error", err))
		return
	}

	n.logger.DebugContext(ctx, "message notifications created",
		slog.String("message_id", message.ID),
		slog.Int("count", len(batch)))
}

// TaskAssigned уведомляет исполнителя о назначенной задаче.
// Самоназначение уведомления не создает.
func (n *Notifier) TaskAssigned(ctx context.Context, task *models.Task, actorID string) {
	if task.AssigneeID == "" || task.AssigneeID == actorID {
		return
	}

	notification := &models.Notification{
		ID:          uuid.New().String(),
		WorkspaceID: task.WorkspaceID,
		UserID:      task.AssigneeID,
		Kind:        models.NotificationKindTask,
		RefID:       task.ID,
		Body:        snippet(task.Title),
		CreatedAt:   time.Now(),
	}

	if err := n.notifications.CreateNotifications(ctx, []*models.Notification{notification}); err != nil {
		n.logger.ErrorContext(ctx, "notification fan-out: failed to create notification",
			slog.String("task_id", task.ID),
			slog.Any("error", err))
		return
	}

	n.logger.DebugContext(ctx, "task notification created",
		slog.String("task_id", task.ID),
		slog.String("assignee_id", task.AssigneeID))
}

// snippet обрезает текст до snippetLen рун
func snippet(text string) string {
	runes := []rune(text)
	if len(runes) <= snippetLen {
		return text
	}
	return string(runes[:snippetLen])
}
