package models

import "time"

// TaskStatus константы статусов задачи
const (
	TaskStatusTodo       = "todo"
	TaskStatusInProgress = "in_progress"
	TaskStatusDone       = "done"
)

// Task представляет задачу в workspace.
// Как и Message, несет ChangedAt для ленты изменений.
type Task struct {
	CreatedAt   time.Time `json:"created_at"`   // время создания
	ID          string    `json:"id"`           // UUID задачи
	WorkspaceID string    `json:"workspace_id"` // ID workspace
	Title       string    `json:"title"`        // заголовок
	Description string    `json:"description"`  // описание (опционально)
	Status      string    `json:"status"`       // todo | in_progress | done
	AssigneeID  string    `json:"assignee_id"`  // ID исполнителя (пустой = не назначен)
	CreatedBy   string    `json:"created_by"`   // ID пользователя-создателя
	ChangedAt   int64     `json:"changed_at"`   // unix микросекунды последней мутации
	Deleted     bool      `json:"deleted"`      // флаг soft delete (true = tombstone)
}
