package api

import "time"

// PostMessageRequest представляет запрос на отправку сообщения
type PostMessageRequest struct {
	Body string `json:"body"` // текст сообщения
}

// EditMessageRequest представляет запрос на правку сообщения
type EditMessageRequest struct {
	Body string `json:"body"` // новый текст
}

// Message представляет сообщение в API
type Message struct {
	CreatedAt   time.Time `json:"created_at"`
	ID          string    `json:"id"`
	WorkspaceID string    `json:"workspace_id"`
	RoomID      string    `json:"room_id"`
	AuthorID    string    `json:"author_id"`
	Body        string    `json:"body"`
	ChangedAt   int64     `json:"changed_at"` // unix микросекунды последней мутации
}

// MessagePage представляет страницу истории комнаты.
// NextCursor == nil означает, что дальше страниц нет.
type MessagePage struct {
	NextCursor *string   `json:"next_cursor"` // курсор следующей страницы или null
	Messages   []Message `json:"messages"`
}

// CreateTaskRequest представляет запрос на создание задачи
type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	AssigneeID  string `json:"assignee_id,omitempty"` // ID исполнителя
}

// UpdateTaskRequest представляет частичное обновление задачи.
// nil-поля не меняются.
type UpdateTaskRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"` // todo | in_progress | done
	AssigneeID  *string `json:"assignee_id,omitempty"`
}

// Task представляет задачу в API
type Task struct {
	CreatedAt   time.Time `json:"created_at"`
	ID          string    `json:"id"`
	WorkspaceID string    `json:"workspace_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	AssigneeID  string    `json:"assignee_id"`
	CreatedBy   string    `json:"created_by"`
	ChangedAt   int64     `json:"changed_at"` // unix микросекунды последней мутации
}
