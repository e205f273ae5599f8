// Package hlc реализует гибридные часы для ключей упорядочивания
// ленты изменений: физическое время в unix-микросекундах, принудительно
// строго монотонное в рамках процесса. Два последовательных вызова
// никогда не возвращают одинаковое или убывающее значение, даже при
// переводе системных часов назад.
package hlc

import (
	"sync"
	"time"
)

// Clock выдает строго монотонные unix-микросекундные timestamp'ы.
type Clock struct {
	now  func() time.Time // источник времени (подменяется в тестах)
	last int64            // последний выданный timestamp
	mu   sync.Mutex       // мьютекс для потокобезопасности
}

// New создает часы на системном времени.
func New() *Clock {
	return &Clock{now: time.Now}
}

// NewWithNow создает часы с заданным источником времени.
// Используется для тестирования.
func NewWithNow(now func() time.Time) *Clock {
	return &Clock{now: now}
}

// Tick возвращает следующий timestamp: текущее время в микросекундах,
// но не меньше чем last+1. Используется при каждой мутации
// (создание, правка, удаление) записей ленты.
func (c *Clock) Tick() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	ts := c.now().UnixMicro()
	if ts <= c.last {
		ts = c.last + 1
	}
	c.last = ts
	return ts
}

// Observe подтягивает часы к уже существующему timestamp'у.
// Вызывается при старте сервера со значением MAX(changed_at) из БД,
// чтобы после рестарта с отстающими часами монотонность сохранилась.
func (c *Clock) Observe(ts int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ts > c.last {
		c.last = ts
	}
}

// Last возвращает последний выданный timestamp без изменения состояния.
func (c *Clock) Last() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.last
}
