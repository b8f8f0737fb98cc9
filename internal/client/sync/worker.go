package sync

import (
	"context"
	gosync "sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/iudanet/lingosync/internal/models"
)

// job фоновая отправка одного ключа
type job struct {
	userID string
	key    models.SyncKey
}

// Stats снимок счетчиков движка синхронизации
type Stats struct {
	LastErrorAt time.Time
	LastError   string
	Enqueued    uint64
	Dropped     uint64
	Completed   uint64
	Noop        uint64
	Skipped     uint64
	RateLimited uint64
	Failed      uint64
	Pending     int
}

// Run обрабатывает очередь отправок до отмены контекста.
// Задания, оставшиеся в очереди после отмены, отбрасываются:
// локальные значения уже сохранены и уйдут со следующей полной отправкой.
func (s *Service) Run(ctx context.Context) error {
	s.logger.Debug("sync worker started", "workers", s.cfg.Workers, "queue_size", s.cfg.QueueSize)

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < s.cfg.Workers; i++ {
		g.Go(func() error {
			for {
				select {
				case j := <-s.queue:
					s.metrics.queueDepth.Dec()
					s.SyncKeyToCloud(gctx, j.userID, j.key)
					s.pending.done()
				case <-gctx.Done():
					return nil
				}
			}
		})
	}
	_ = g.Wait()

	s.drain()
	s.logger.Debug("sync worker stopped")

	return ctx.Err()
}

// Flush ждет, пока все поставленные задания будут обработаны
func (s *Service) Flush(ctx context.Context) error {
	return s.pending.wait(ctx)
}

// Stats возвращает снимок счетчиков
func (s *Service) Stats() Stats {
	st := s.stats.snapshot()
	st.Pending = s.pending.count()
	return st
}

// enqueue ставит задание в очередь без блокировки.
// Переполненная очередь отбрасывает задание.
func (s *Service) enqueue(j job) bool {
	s.pending.add()

	select {
	case s.queue <- j:
		s.metrics.queueDepth.Inc()
		s.stats.enqueued()
		return true
	default:
		s.pending.done()
		s.metrics.dropped.Inc()
		s.stats.dropped()
		s.logger.Warn("sync queue is full, dropping upload", "key", j.key)
		return false
	}
}

// drain отбрасывает задания, оставшиеся в очереди
func (s *Service) drain() {
	for {
		select {
		case j := <-s.queue:
			s.metrics.queueDepth.Dec()
			s.metrics.dropped.Inc()
			s.stats.dropped()
			s.pending.done()
			s.logger.Debug("dropping queued upload on shutdown", "key", j.key)
		default:
			return
		}
	}
}

// tracker считает незавершенные задания для Flush
type tracker struct {
	idle    chan struct{} // закрыт, когда pending == 0
	pending int
	mu      gosync.Mutex
}

func newTracker() *tracker {
	idle := make(chan struct{})
	close(idle)
	return &tracker{idle: idle}
}

func (t *tracker) add() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.pending == 0 {
		t.idle = make(chan struct{})
	}
	t.pending++
}

func (t *tracker) done() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.pending--
	if t.pending == 0 {
		close(t.idle)
	}
}

func (t *tracker) count() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pending
}

func (t *tracker) wait(ctx context.Context) error {
	t.mu.Lock()
	idle := t.idle
	t.mu.Unlock()

	select {
	case <-idle:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// statsCounter счетчики для Stats
type statsCounter struct {
	st Stats
	mu gosync.Mutex
}

func (c *statsCounter) record(res *Result, now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch res.Outcome {
	case OutcomeCompleted:
		c.st.Completed++
	case OutcomeNoop:
		c.st.Noop++
	case OutcomeSkipped:
		c.st.Skipped++
	case OutcomeRateLimited:
		c.st.RateLimited++
	case OutcomeFailed:
		c.st.Failed++
		if res.Err != nil {
			c.st.LastError = res.Err.Error()
			c.st.LastErrorAt = now
		}
	}
}

func (c *statsCounter) enqueued() {
	c.mu.Lock()
	c.st.Enqueued++
	c.mu.Unlock()
}

func (c *statsCounter) dropped() {
	c.mu.Lock()
	c.st.Dropped++
	c.mu.Unlock()
}

func (c *statsCounter) snapshot() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.st
}
