package api

// SyncResponse представляет одну страницу ленты изменений workspace.
// Живые записи разложены по типам, удаленные приходят списками ID.
// NextCursor == nil означает, что клиент догнал ленту.
type SyncResponse struct {
	NextCursor        *string   `json:"next_cursor"`        // курсор следующей страницы или null
	Messages          []Message `json:"messages"`           // живые сообщения
	MessageTombstones []string  `json:"message_tombstones"` // ID удаленных сообщений
	Tasks             []Task    `json:"tasks"`              // живые задачи
	TaskTombstones    []string  `json:"task_tombstones"`    // ID удаленных задач
}

// TombstoneEvent представляет payload SSE события об удалении
type TombstoneEvent struct {
	ID string `json:"id"` // ID удаленной записи
}
