package middleware

import (
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru"
)

type rateWindow struct {
	start time.Time
	count int
}

// RateLimiter - фиксированное окно на ключ (IP). Ключи живут в LRU,
// чтобы память не росла от случайных адресов.
type RateLimiter struct {
	mu     sync.Mutex
	cache  *lru.Cache
	limit  int
	window time.Duration
	now    func() time.Time
}

func NewRateLimiter(limit int, window time.Duration, size int) (*RateLimiter, error) {
	if size <= 0 {
		size = 1024
	}
	cache, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &RateLimiter{
		cache:  cache,
		limit:  limit,
		window: window,
		now:    time.Now,
	}, nil
}

// WithClock подменяет часы (для тестов)
func (l *RateLimiter) WithClock(now func() time.Time) *RateLimiter {
	l.now = now
	return l
}

// Allow засчитывает попытку и говорит, укладывается ли она в лимит.
// limit <= 0 отключает ограничение.
func (l *RateLimiter) Allow(key string) bool {
	if l.limit <= 0 {
		return true
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if val, ok := l.cache.Get(key); ok {
		w := val.(*rateWindow)
		if now.Sub(w.start) < l.window {
			if w.count >= l.limit {
				return false
			}
			w.count++
			return true
		}
	}

	l.cache.Add(key, &rateWindow{start: now, count: 1})
	return true
}
