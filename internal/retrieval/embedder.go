// Package retrieval реализует локальный поиск по базе знаний workspace:
// детерминированная векторизация текста и ранжирование документов
// по косинусной близости. Внешних embedding-провайдеров нет - вектор
// целиком определяется текстом, поэтому одинаковый текст всегда дает
// одинаковый вектор на любом узле.
package retrieval

import (
	"context"
	"hash/fnv"
	"math"
	"strings"
	"unicode"
)

// DefaultDims - размерность вектора по умолчанию
const DefaultDims = 256

// Embedder превращает текст в вектор фиксированной размерности.
// Реализации с внешним провайдером обязаны уважать ctx; локальный
// векторизатор его игнорирует.
type Embedder interface {
	// Embed возвращает вектор текста
	Embed(ctx context.Context, text string) ([]float32, error)
	// Dims возвращает размерность векторов
	Dims() int
}

// HashingEmbedder - hashing-векторизатор: каждый токен через FNV-1a
// попадает в одну из dims корзин, итоговый вектор L2-нормируется.
type HashingEmbedder struct {
	dims int
}

// NewHashingEmbedder создает векторизатор заданной размерности.
// dims <= 0 означает DefaultDims.
func NewHashingEmbedder(dims int) *HashingEmbedder {
	if dims <= 0 {
		dims = DefaultDims
	}
	return &HashingEmbedder{dims: dims}
}

// Dims возвращает размерность векторов
func (e *HashingEmbedder) Dims() int {
	return e.dims
}

// Embed токенизирует текст, хеширует токены по корзинам и нормирует
// результат. Пустой текст дает нулевой вектор. Детерминирован:
// одинаковый текст всегда дает одинаковый вектор, ошибок не бывает.
func (e *HashingEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	vec := make([]float32, e.dims)

	for _, token := range tokenize(text) {
		h := fnv.New32a()
		_, _ = h.Write([]byte(token))
		vec[int(h.Sum32()%uint32(e.dims))]++
	}

	return normalize(vec), nil
}

// tokenize разбивает текст на токены: lowercase, сплит по всему,
// что не буква и не цифра
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// normalize приводит вектор к единичной L2-норме.
// Нулевой вектор остается нулевым.
func normalize(vec []float32) []float32 {
	var sum float64
	for _, v := range vec {
		sum += float64(v) * float64(v)
	}
	if sum == 0 {
		return vec
	}

	norm := math.Sqrt(sum)
	for i := range vec {
		vec[i] = float32(float64(vec[i]) / norm)
	}
	return vec
}
