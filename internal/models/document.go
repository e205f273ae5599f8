package models

import "time"

// ContextDocument представляет документ базы знаний workspace.
// Embedding заполняется при сохранении и используется для поиска
// по косинусной близости; наружу (в API) эмбеддинг не отдается.
type ContextDocument struct {
	CreatedAt   time.Time `json:"created_at"` // время создания
	UpdatedAt   time.Time `json:"updated_at"` // время последнего обновления
	ID          string    `json:"id"`         // UUID документа
	WorkspaceID string    `json:"workspace_id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	CreatedBy   string    `json:"created_by"`
	Embedding   []float32 `json:"-"` // вектор содержимого
}
