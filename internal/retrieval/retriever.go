package retrieval

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/iudanet/teamsync/internal/models"
)

// Result - документ с его score относительно запроса
type Result struct {
	Document *models.ContextDocument // документ
	Score    float64                 // косинусная близость к запросу
}

// Retriever ранжирует документы workspace по близости к запросу.
type Retriever struct {
	embedder Embedder
}

// NewRetriever создает retriever поверх векторизатора
func NewRetriever(embedder Embedder) *Retriever {
	return &Retriever{embedder: embedder}
}

// Embedder возвращает векторизатор, которым заполняются embedding'и
// документов при сохранении
func (r *Retriever) Embedder() Embedder {
	return r.embedder
}

// Rank возвращает topK документов, отсортированных по убыванию score.
// При равных score порядок детерминирован: по возрастанию ID документа.
// topK <= 0 дает пустой результат.
func (r *Retriever) Rank(ctx context.Context, docs []*models.ContextDocument, query string, topK int) ([]Result, error) {
	if topK <= 0 || len(docs) == 0 {
		return []Result{}, nil
	}

	queryVec, err := r.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	results := make([]Result, 0, len(docs))
	for _, doc := range docs {
		results = append(results, Result{
			Document: doc,
			Score:    Cosine(queryVec, doc.Embedding),
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Document.ID < results[j].Document.ID
	})

	if len(results) > topK {
		results = results[:topK]
	}
	return results, nil
}

// Cosine считает косинусную близость двух векторов.
// Разная размерность или нулевая норма дают 0.
func Cosine(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
