// Package ratelimit реализует token bucket для ограничения частоты вызовов.
//
// Limiter хранит именованные buckets. Отказ не является ошибкой:
// вызывающая сторона просто пропускает вызов.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Policy параметры bucket: емкость и интервал пополнения одного токена
type Policy struct {
	MaxTokens int
	Refill    time.Duration
}

// Предустановленные политики для исходящих вызовов
var (
	RemoteRead  = Policy{MaxTokens: 30, Refill: 333 * time.Millisecond}
	RemoteWrite = Policy{MaxTokens: 10, Refill: 1000 * time.Millisecond}
	Auth        = Policy{MaxTokens: 5, Refill: 12000 * time.Millisecond}
	EventLog    = Policy{MaxTokens: 20, Refill: 500 * time.Millisecond}
)

// bucket представляет bucket для конкретного ключа
type bucket struct {
	lastRefill time.Time
	tokens     int
}

// Limiter набор buckets, разделяемый всеми вызывающими.
// Экземпляр принадлежит владельцу (движку синхронизации, серверу),
// глобального состояния нет.
type Limiter struct {
	buckets map[string]*bucket
	now     func() time.Time
	mu      sync.Mutex
}

// Option настраивает Limiter
type Option func(*Limiter)

// WithClock подменяет источник времени (для тестов)
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) {
		l.now = now
	}
}

// New создает пустой Limiter
func New(opts ...Option) *Limiter {
	l := &Limiter{
		buckets: make(map[string]*bucket),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Allow проверяет, можно ли выполнить вызов для ключа.
// Первый вызов создает bucket с maxTokens-1 токенами (сам вызов допускается).
// Далее за каждый полный интервал refill добавляется токен, но не больше maxTokens.
// Момент пополнения сдвигается, только если прошел хотя бы один интервал.
func (l *Limiter) Allow(key string, maxTokens int, refill time.Duration) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	b, exists := l.buckets[key]
	if !exists {
		if maxTokens < 1 {
			return false
		}
		l.buckets[key] = &bucket{
			tokens:     maxTokens - 1,
			lastRefill: now,
		}
		return true
	}

	// Пополняем токены на основе прошедшего времени
	if refill > 0 {
		if intervals := int(now.Sub(b.lastRefill) / refill); intervals > 0 {
			b.tokens = min(maxTokens, b.tokens+intervals)
			b.lastRefill = now
		}
	}

	if b.tokens >= 1 {
		b.tokens--
		return true
	}

	return false
}

// AllowPolicy то же, что Allow, с параметрами из Policy
func (l *Limiter) AllowPolicy(key string, p Policy) bool {
	return l.Allow(key, p.MaxTokens, p.Refill)
}

// Tokens возвращает текущее число токенов bucket без пополнения.
// Второе значение false, если bucket еще не создан.
func (l *Limiter) Tokens(key string) (int, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[key]
	if !ok {
		return 0, false
	}
	return b.tokens, true
}

// Sweep удаляет buckets, которые не пополнялись дольше idle.
// Возвращает количество удаленных buckets.
func (l *Limiter) Sweep(idle time.Duration) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	removed := 0
	for key, b := range l.buckets {
		if now.Sub(b.lastRefill) > idle {
			delete(l.buckets, key)
			removed++
		}
	}
	return removed
}

// StartJanitor периодически вызывает Sweep до отмены контекста.
// Нужен долгоживущим процессам с неограниченным набором ключей (IP адреса).
func (l *Limiter) StartJanitor(ctx context.Context, every, idle time.Duration) {
	go func() {
		ticker := time.NewTicker(every)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				l.Sweep(idle)
			case <-ctx.Done():
				return
			}
		}
	}()
}
