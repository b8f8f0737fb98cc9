// Package retry повторяет операции с экспоненциальной задержкой и jitter.
package retry

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"
)

// ErrOffline сетевой вызов не дошел до сервера (нет соединения)
var ErrOffline = errors.New("remote store is unreachable")

// Коды ошибок, которые считаются временными
var transientCodes = map[string]struct{}{
	"unavailable":        {},
	"deadline-exceeded":  {},
	"resource-exhausted": {},
	"aborted":            {},
	"internal":           {},
	"cancelled":          {},
}

// HTTP статусы, которые считаются временными
var transientStatuses = map[int]struct{}{
	429: {},
	502: {},
	503: {},
}

// Options параметры повторов
type Options struct {
	// ShouldRetry решает, стоит ли повторять после ошибки. По умолчанию IsRetryable.
	ShouldRetry func(error) bool
	// Sleep ожидание между попытками. По умолчанию учитывает отмену контекста.
	Sleep func(ctx context.Context, d time.Duration) error
	// Jitter случайная добавка к задержке
	Jitter func() time.Duration
	// OnRetry вызывается перед каждым повтором
	OnRetry func(attempt int, delay time.Duration, err error)
	// MaxRetries число повторов после первой попытки.
	// 0 означает значение по умолчанию (3), отрицательное значение отключает повторы.
	MaxRetries int
	BaseDelay  time.Duration
	MaxDelay   time.Duration
}

// Remote параметры для вызовов удаленного хранилища
func Remote() Options {
	return Options{
		MaxRetries: 3,
		BaseDelay:  1000 * time.Millisecond,
		MaxDelay:   8000 * time.Millisecond,
	}
}

type coder interface {
	Code() string
}

type statusCoder interface {
	StatusCode() int
}

// IsRetryable сообщает, является ли ошибка временной
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrOffline) {
		return true
	}

	var c coder
	if errors.As(err, &c) {
		if _, ok := transientCodes[c.Code()]; ok {
			return true
		}
	}

	var s statusCoder
	if errors.As(err, &s) {
		if _, ok := transientStatuses[s.StatusCode()]; ok {
			return true
		}
	}

	return false
}

// Do выполняет fn, повторяя при временных ошибках.
// После исчерпания попыток или отмены контекста возвращает последнюю ошибку fn без изменений.
func Do(ctx context.Context, opts Options, fn func(ctx context.Context) error) error {
	_, err := DoValue(ctx, opts, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
	return err
}

// DoValue как Do, но возвращает значение операции
func DoValue[T any](ctx context.Context, opts Options, fn func(ctx context.Context) (T, error)) (T, error) {
	opts = opts.withDefaults()

	var lastErr error
	for attempt := 0; ; attempt++ {
		value, err := fn(ctx)
		if err == nil {
			return value, nil
		}
		lastErr = err

		if attempt >= opts.MaxRetries || !opts.ShouldRetry(err) {
			var zero T
			return zero, lastErr
		}

		delay := opts.delay(attempt)
		if opts.OnRetry != nil {
			opts.OnRetry(attempt+1, delay, err)
		}

		// при отмене контекста возвращается ошибка операции, а не ctx.Err()
		if opts.Sleep(ctx, delay) != nil {
			var zero T
			return zero, lastErr
		}
	}
}

// delay вычисляет задержку: min(base * 2^attempt + jitter, max)
func (o Options) delay(attempt int) time.Duration {
	d := o.BaseDelay
	for i := 0; i < attempt && d < o.MaxDelay; i++ {
		d *= 2
	}
	d += o.Jitter()
	if d > o.MaxDelay {
		d = o.MaxDelay
	}
	return d
}

func (o Options) withDefaults() Options {
	if o.ShouldRetry == nil {
		o.ShouldRetry = IsRetryable
	}
	if o.Sleep == nil {
		o.Sleep = sleepContext
	}
	if o.Jitter == nil {
		o.Jitter = defaultJitter
	}
	// нулевые значения берутся из Remote(), отрицательное MaxRetries отключает повторы
	def := Remote()
	switch {
	case o.MaxRetries == 0:
		o.MaxRetries = def.MaxRetries
	case o.MaxRetries < 0:
		o.MaxRetries = 0
	}
	if o.BaseDelay <= 0 {
		o.BaseDelay = def.BaseDelay
	}
	if o.MaxDelay <= 0 {
		o.MaxDelay = def.MaxDelay
	}
	return o
}

func defaultJitter() time.Duration {
	return time.Duration(rand.Int64N(int64(500 * time.Millisecond)))
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
