package api

import "time"

// CreateDocumentRequest представляет запрос на сохранение документа
// базы знаний. Embedding считается на сервере из content.
type CreateDocumentRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Document представляет документ базы знаний в API.
// Embedding наружу не отдается.
type Document struct {
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	ID          string    `json:"id"`
	WorkspaceID string    `json:"workspace_id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	CreatedBy   string    `json:"created_by"`
}

// QueryRequest представляет поисковый запрос по базе знаний
type QueryRequest struct {
	Query string `json:"query"`
	TopK  int    `json:"top_k,omitempty"` // сколько документов вернуть
}

// QueryHit представляет один найденный документ со score
type QueryHit struct {
	Document Document `json:"document"`
	Score    float64  `json:"score"` // косинусная близость к запросу
}

// QueryResponse представляет результат поиска
type QueryResponse struct {
	Hits []QueryHit `json:"hits"` // по убыванию score
}
