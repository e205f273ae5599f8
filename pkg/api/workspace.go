package api

import "time"

// CreateWorkspaceRequest представляет запрос на создание workspace
type CreateWorkspaceRequest struct {
	Name string `json:"name"` // отображаемое имя
}

// Workspace представляет workspace в API
type Workspace struct {
	CreatedAt time.Time `json:"created_at"`
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedBy string    `json:"created_by"`
}

// AddMemberRequest представляет запрос на добавление участника.
// Участник добавляется по username; роль по умолчанию - member.
type AddMemberRequest struct {
	Username string `json:"username"`
	Role     string `json:"role,omitempty"` // owner или member
}

// Member представляет участника workspace
type Member struct {
	JoinedAt time.Time `json:"joined_at"`
	UserID   string    `json:"user_id"`
	Username string    `json:"username"`
	Role     string    `json:"role"`
}

// CreateRoomRequest представляет запрос на создание комнаты
type CreateRoomRequest struct {
	Name  string `json:"name"`
	Topic string `json:"topic,omitempty"`
}

// Room представляет комнату в API
type Room struct {
	CreatedAt   time.Time `json:"created_at"`
	ID          string    `json:"id"`
	WorkspaceID string    `json:"workspace_id"`
	Name        string    `json:"name"`
	Topic       string    `json:"topic"`
	CreatedBy   string    `json:"created_by"`
}
