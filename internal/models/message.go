package models

import "time"

// Message представляет сообщение в комнате.
// ChangedAt обновляется при каждой мутации (создание, правка, удаление)
// и служит ключом упорядочивания в ленте изменений workspace.
type Message struct {
	CreatedAt   time.Time `json:"created_at"`   // время создания
	ID          string    `json:"id"`           // UUID сообщения
	WorkspaceID string    `json:"workspace_id"` // ID workspace
	RoomID      string    `json:"room_id"`      // ID комнаты
	AuthorID    string    `json:"author_id"`    // ID автора
	Body        string    `json:"body"`         // текст сообщения (пустой у tombstone)
	ChangedAt   int64     `json:"changed_at"`   // unix микросекунды последней мутации
	Deleted     bool      `json:"deleted"`      // флаг soft delete (true = tombstone)
}
