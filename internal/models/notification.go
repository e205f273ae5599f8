package models

import "time"

// NotificationKind константы типов уведомлений
const (
	NotificationKindMessage = "message"
	NotificationKindTask    = "task"
)

// Notification представляет уведомление пользователя.
// Создается сервером при событиях в workspace (новое сообщение,
// назначение задачи) без какой-либо оценки релевантности.
type Notification struct {
	CreatedAt   time.Time `json:"created_at"`   // время создания
	ID          string    `json:"id"`           // UUID уведомления
	WorkspaceID string    `json:"workspace_id"` // ID workspace
	UserID      string    `json:"user_id"`      // ID получателя
	Kind        string    `json:"kind"`         // message | task
	RefID       string    `json:"ref_id"`       // ID сообщения или задачи
	Body        string    `json:"body"`         // короткий текст (сниппет)
	Read        bool      `json:"read"`         // прочитано ли
}
