package models

import "time"

// Workspace представляет рабочее пространство команды.
// Все комнаты, сообщения и задачи принадлежат ровно одному workspace.
type Workspace struct {
	CreatedAt time.Time `json:"created_at"` // время создания
	ID        string    `json:"id"`         // UUID workspace
	Name      string    `json:"name"`       // отображаемое имя
	CreatedBy string    `json:"created_by"` // ID пользователя-создателя
}

// Role константы ролей участника workspace
const (
	RoleOwner  = "owner"
	RoleMember = "member"
)

// Membership связывает пользователя с workspace и его ролью
type Membership struct {
	JoinedAt    time.Time `json:"joined_at"`    // время вступления
	WorkspaceID string    `json:"workspace_id"` // ID workspace
	UserID      string    `json:"user_id"`      // ID пользователя
	Username    string    `json:"username"`     // username (денормализовано для списков)
	Role        string    `json:"role"`         // owner или member
}
