package api

import "time"

// Notification представляет уведомление пользователя в API
type Notification struct {
	CreatedAt   time.Time `json:"created_at"`
	ID          string    `json:"id"`
	WorkspaceID string    `json:"workspace_id"`
	Kind        string    `json:"kind"`   // message | task
	RefID       string    `json:"ref_id"` // ID сообщения или задачи
	Body        string    `json:"body"`   // короткий сниппет
	Read        bool      `json:"read"`
}

// MarkAllReadResponse представляет ответ на массовое прочтение
type MarkAllReadResponse struct {
	Updated int `json:"updated"` // сколько уведомлений помечено
}
