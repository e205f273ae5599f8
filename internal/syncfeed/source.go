package syncfeed

import (
	"context"

	"github.com/iudanet/teamsync/internal/models"
)

// Kind вид источника изменений
type Kind string

// Зарегистрированные виды источников
const (
	KindMessage Kind = "message"
	KindTask    Kind = "task"
)

// Record одна запись ленты изменений: живой объект или tombstone.
// У живой записи заполнено ровно одно из полей Message/Task
// (согласно Kind); у tombstone оба nil - от удаленной записи
// остаются только позиция и вид.
type Record struct {
	Message  *models.Message
	Task     *models.Task
	Position Position
	Kind     Kind
	Deleted  bool
}

// Source один источник изменений workspace.
//
// Контракт FetchSince, обязательный для каждой реализации:
//   - возвращает до limit записей с позицией строго больше after
//     (changed_at > after.ChangedAt ИЛИ changed_at == after.ChangedAt
//     И id > after.ID); after == nil означает "с начала";
//   - записи отсортированы по возрастанию (changed_at, id);
//   - удаленные записи возвращаются как tombstone с позицией на
//     момент удаления, без payload;
//   - чтение чистое: состояние не мутируется, позиции не двигаются;
//   - workspaceID уже авторизован вызывающим, membership здесь
//     не перепроверяется.
type Source interface {
	Kind() Kind
	FetchSince(ctx context.Context, workspaceID string, after *Position, limit int) ([]Record, error)
}

// MessageFeed узкий интерфейс хранилища для источника сообщений
type MessageFeed interface {
	// GetMessagesSince возвращает сообщения workspace (включая
	// удаленные) с позицией строго больше after, по возрастанию
	// (changed_at, id), не более limit штук
	GetMessagesSince(ctx context.Context, workspaceID string, after *Position, limit int) ([]*models.Message, error)
}

// TaskFeed узкий интерфейс хранилища для источника задач
type TaskFeed interface {
	// GetTasksSince возвращает задачи workspace (включая удаленные)
	// с позицией строго больше after, по возрастанию (changed_at, id),
	// не более limit штук
	GetTasksSince(ctx context.Context, workspaceID string, after *Position, limit int) ([]*models.Task, error)
}

type messageSource struct {
	feed MessageFeed
}

// NewMessageSource оборачивает хранилище сообщений в Source.
func NewMessageSource(feed MessageFeed) Source {
	return &messageSource{feed: feed}
}

func (s *messageSource) Kind() Kind { return KindMessage }

func (s *messageSource) FetchSince(ctx context.Context, workspaceID string, after *Position, limit int) ([]Record, error) {
	messages, err := s.feed.GetMessagesSince(ctx, workspaceID, after, limit)
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(messages))
	for _, m := range messages {
		r := Record{
			Kind:     KindMessage,
			Position: Position{ChangedAt: m.ChangedAt, ID: m.ID},
			Deleted:  m.Deleted,
		}
		if !m.Deleted {
			r.Message = m
		}
		records = append(records, r)
	}
	return records, nil
}

type taskSource struct {
	feed TaskFeed
}

// NewTaskSource оборачивает хранилище задач в Source.
func NewTaskSource(feed TaskFeed) Source {
	return &taskSource{feed: feed}
}

func (s *taskSource) Kind() Kind { return KindTask }

func (s *taskSource) FetchSince(ctx context.Context, workspaceID string, after *Position, limit int) ([]Record, error) {
	tasks, err := s.feed.GetTasksSince(ctx, workspaceID, after, limit)
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(tasks))
	for _, t := range tasks {
		r := Record{
			Kind:     KindTask,
			Position: Position{ChangedAt: t.ChangedAt, ID: t.ID},
			Deleted:  t.Deleted,
		}
		if !t.Deleted {
			r.Task = t
		}
		records = append(records, r)
	}
	return records, nil
}
