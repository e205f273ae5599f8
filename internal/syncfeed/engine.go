package syncfeed

import (
	"context"
	"fmt"

	"github.com/iudanet/teamsync/internal/models"
)

// Engine сливает ленты всех зарегистрированных источников в один
// детерминированный постраничный поток изменений workspace.
type Engine struct {
	sources []Source
}

// NewEngine создает движок слияния. Порядок источников фиксирует
// приоритет: при полностью совпавших позициях (changed_at, id)
// побеждает источник, зарегистрированный раньше.
func NewEngine(sources ...Source) *Engine {
	return &Engine{sources: sources}
}

// Page результат одного вызова Sync: живые записи и tombstone'ы,
// разложенные по видам, плюс курсор продолжения. NextCursor пустой,
// когда изменений больше нет (на границе API отдается как null).
type Page struct {
	Messages          []*models.Message
	MessageTombstones []string
	Tasks             []*models.Task
	TaskTombstones    []string
	NextCursor        string
}

// Changes возвращает до limit изменений workspace после cursor в
// едином слитом порядке (changed_at, id), вторым значением - курсор
// продолжения ("" если изменений больше нет).
//
// Алгоритм за один проход:
//  1. битый или пустой cursor = читать с начала;
//  2. у каждого источника запрашивается limit+1 кандидатов с одним
//     и тем же фильтром позиции;
//  3. k-way merge по (changed_at, id); при равных позициях побеждает
//     источник, зарегистрированный раньше;
//  4. результат обрезается до limit записей;
//  5. если всего получено меньше limit+1 кандидатов, данных больше
//     нет и курсор продолжения пустой; иначе это позиция последней
//     выданной записи.
//
// Ошибка любого источника прерывает весь вызов: частичных слияний
// не бывает. limit валидируется на границе API, не здесь.
func (e *Engine) Changes(ctx context.Context, workspaceID, cursor string, limit int) ([]Record, string, error) {
	var after *Position
	if p, ok := DecodeCursor(cursor); ok {
		after = &p
	}

	fetched := make([][]Record, len(e.sources))
	total := 0
	for i, src := range e.sources {
		records, err := src.FetchSince(ctx, workspaceID, after, limit+1)
		if err != nil {
			return nil, "", fmt.Errorf("fetch %s changes: %w", src.Kind(), err)
		}
		fetched[i] = records
		total += len(records)
	}

	heads := make([]int, len(fetched))
	var merged []Record
	for len(merged) < limit {
		best := -1
		for i := range fetched {
			if heads[i] >= len(fetched[i]) {
				continue
			}
			// Строгое Less: при равных позициях best остается на
			// источнике с меньшим индексом
			if best == -1 || fetched[i][heads[i]].Position.Less(fetched[best][heads[best]].Position) {
				best = i
			}
		}
		if best == -1 {
			break
		}
		merged = append(merged, fetched[best][heads[best]])
		heads[best]++
	}

	next := ""
	if total > limit && len(merged) > 0 {
		next = EncodeCursor(merged[len(merged)-1].Position)
	}
	return merged, next, nil
}

// Sync возвращает страницу изменений workspace после cursor,
// разложенную по видам записей. Полный обход до пустого NextCursor
// выдает каждое изменение ровно один раз, без потерь и дублей,
// при любом pageLimit.
func (e *Engine) Sync(ctx context.Context, workspaceID, cursor string, pageLimit int) (*Page, error) {
	records, next, err := e.Changes(ctx, workspaceID, cursor, pageLimit)
	if err != nil {
		return nil, err
	}

	page := &Page{
		NextCursor:        next,
		Messages:          []*models.Message{},
		MessageTombstones: []string{},
		Tasks:             []*models.Task{},
		TaskTombstones:    []string{},
	}
	for _, r := range records {
		switch r.Kind {
		case KindMessage:
			if r.Deleted {
				page.MessageTombstones = append(page.MessageTombstones, r.Position.ID)
			} else {
				page.Messages = append(page.Messages, r.Message)
			}
		case KindTask:
			if r.Deleted {
				page.TaskTombstones = append(page.TaskTombstones, r.Position.ID)
			} else {
				page.Tasks = append(page.Tasks, r.Task)
			}
		}
	}
	return page, nil
}
