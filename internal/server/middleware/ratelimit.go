package middleware

import (
	"log/slog"
	"net/http"
	"sync"
	"time"
)

// bucketIdleTTL время простоя, после которого bucket клиента удаляется
const bucketIdleTTL = 3 * time.Minute

// RateLimiter ограничивает частоту запросов по ключу (IP клиента):
// token bucket с непрерывным пополнением rps токенов в секунду
// до потолка burst.
type RateLimiter struct {
	buckets  map[string]*bucket
	logger   *slog.Logger
	cleanupC chan struct{}
	rps      float64
	burst    float64
	mu       sync.RWMutex
}

// bucket представляет bucket для конкретного IP/ключа
type bucket struct {
	lastSeen time.Time
	tokens   float64
	mu       sync.Mutex
}

// NewRateLimiter создает новый rate limiter
// rps - скорость пополнения токенов, burst - максимум накопленных
func NewRateLimiter(rps float64, burst int, logger *slog.Logger) *RateLimiter {
	rl := &RateLimiter{
		buckets:  make(map[string]*bucket),
		rps:      rps,
		burst:    float64(burst),
		logger:   logger,
		cleanupC: make(chan struct{}),
	}

	// Запускаем периодическую очистку старых buckets
	go rl.cleanupLoop()

	return rl
}

// cleanupLoop периодически удаляет неактивные buckets для экономии памяти
func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(bucketIdleTTL)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanupOldBuckets()
		case <-rl.cleanupC:
			return
		}
	}
}

// cleanupOldBuckets удаляет buckets, не использовавшиеся дольше bucketIdleTTL
func (rl *RateLimiter) cleanupOldBuckets() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	for key, b := range rl.buckets {
		b.mu.Lock()
		if now.Sub(b.lastSeen) > bucketIdleTTL {
			delete(rl.buckets, key)
		}
		b.mu.Unlock()
	}
}

// Stop останавливает cleanup goroutine
func (rl *RateLimiter) Stop() {
	close(rl.cleanupC)
}

// Allow проверяет, разрешен ли запрос для данного ключа (обычно IP адрес)
func (rl *RateLimiter) Allow(key string) bool {
	b := rl.getBucket(key)

	b.mu.Lock()
	defer b.mu.Unlock()

	// Пополняем токены за прошедшее с последнего запроса время
	now := time.Now()
	elapsed := now.Sub(b.lastSeen).Seconds()
	b.tokens = min(b.tokens+elapsed*rl.rps, rl.burst)
	b.lastSeen = now

	if b.tokens >= 1 {
		b.tokens--
		return true
	}
	return false
}

// getBucket возвращает bucket ключа, создавая его при первом запросе
func (rl *RateLimiter) getBucket(key string) *bucket {
	rl.mu.RLock()
	b, ok := rl.buckets[key]
	rl.mu.RUnlock()
	if ok {
		return b
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()
	// Перепроверяем под write lock: bucket мог создать другой запрос
	if b, ok = rl.buckets[key]; ok {
		return b
	}
	b = &bucket{tokens: rl.burst, lastSeen: time.Now()}
	rl.buckets[key] = b
	return b
}

// Middleware создает middleware для ограничения частоты запросов.
// Превышение лимита дает 429 с JSON ошибкой
func (rl *RateLimiter) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Используем IP адрес как ключ
			key := getClientIP(r)

			if !rl.Allow(key) {
				rl.logger.Warn("Rate limit exceeded",
					"ip", key,
					"method", r.Method,
					"path", r.URL.Path,
				)

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(`{"error":"rate limit exceeded, please try again later"}`))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// getClientIP извлекает IP адрес клиента из запроса
// Проверяет заголовки X-Forwarded-For и X-Real-IP для прокси
func getClientIP(r *http.Request) string {
	// Проверяем X-Forwarded-For (для прокси/load balancers)
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		// Берем первый IP из списка (реальный клиент)
		for idx := 0; idx < len(xff); idx++ {
			if xff[idx] == ',' {
				return xff[:idx]
			}
		}
		return xff
	}

	// Проверяем X-Real-IP
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	// Используем RemoteAddr
	return r.RemoteAddr
}
