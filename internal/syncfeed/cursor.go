// Package syncfeed реализует инкрементальную синхронизацию workspace:
// непрозрачные курсоры, источники изменений и движок слияния,
// отдающий изменения детерминированными страницами.
//
// Курсор принадлежит клиенту: сервер не хранит позиций чтения,
// клиент сохраняет next_cursor из каждого ответа и предъявляет его
// в следующем запросе.
package syncfeed

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

// Position идентифицирует запись в ленте изменений workspace:
// ключ упорядочивания (unix-микросекунды последней мутации) плюс
// UUID записи как tie-break при равных timestamp'ах.
type Position struct {
	ID        string
	ChangedAt int64
}

// Less возвращает true, если p строго раньше q в композитном
// порядке (changed_at, id). Сравнение ID - лексикографическое,
// одинаковое в Go и в SQL.
func (p Position) Less(q Position) bool {
	if p.ChangedAt != q.ChangedAt {
		return p.ChangedAt < q.ChangedAt
	}
	return p.ID < q.ID
}

// EncodeCursor кодирует позицию в непрозрачный токен курсора.
// Формат: base64url("<changed_at>:<id>") без padding.
func EncodeCursor(p Position) string {
	raw := fmt.Sprintf("%d:%s", p.ChangedAt, p.ID)
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// DecodeCursor разбирает токен курсора. Любой некорректный токен
// (пустой, битый base64, нет разделителя, нечисловой timestamp,
// пустой id) трактуется как отсутствие курсора: возвращается
// ok=false без ошибки. Паники и error исключены намеренно -
// сломанный курсор означает "читать с начала".
func DecodeCursor(s string) (Position, bool) {
	if s == "" {
		return Position{}, false
	}

	raw, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return Position{}, false
	}

	tsPart, id, found := strings.Cut(string(raw), ":")
	if !found || id == "" {
		return Position{}, false
	}

	ts, err := strconv.ParseInt(tsPart, 10, 64)
	if err != nil {
		return Position{}, false
	}

	return Position{ChangedAt: ts, ID: id}, true
}
