package models

import "time"

// Room представляет канал общения внутри workspace
type Room struct {
	CreatedAt   time.Time `json:"created_at"`   // время создания
	ID          string    `json:"id"`           // UUID комнаты
	WorkspaceID string    `json:"workspace_id"` // ID workspace
	Name        string    `json:"name"`         // имя комнаты
	Topic       string    `json:"topic"`        // описание/тема (опционально)
	CreatedBy   string    `json:"created_by"`   // ID пользователя-создателя
}
