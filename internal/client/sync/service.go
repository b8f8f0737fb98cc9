// Package sync синхронизирует локальный прогресс ученика с удаленным документом.
//
// Все операции выполняются по принципу best-effort: сбой сети, отказ
// ограничителя частоты или ошибка сервера фиксируются в Result, логах и
// метриках, но не возвращаются вызывающей стороне. Единственная ошибка,
// которую видит код приложения, это сбой локальной записи в SaveAndSync.
package sync

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"time"

	"github.com/iudanet/lingosync/internal/client/api"
	"github.com/iudanet/lingosync/internal/client/storage"
	"github.com/iudanet/lingosync/internal/models"
	"github.com/iudanet/lingosync/internal/ratelimit"
	"github.com/iudanet/lingosync/internal/retry"
	"github.com/iudanet/lingosync/internal/validation"
)

// Ключи ограничителя частоты
const (
	bucketRemoteRead  = "remote:read"
	bucketRemoteWrite = "remote:write"
)

// bucketRemoteWriteKey отдельный bucket на каждый ключ,
// чтобы частые записи одного ключа не забирали токены у остальных
func bucketRemoteWriteKey(key models.SyncKey) string {
	return bucketRemoteWrite + ":" + string(key)
}

// Имена операций в metadata storage
const (
	metaUpload   = "upload"
	metaDownload = "download"
)

//go:generate moq -out remote_mock.go . Remote

// Remote удаленное хранилище документов прогресса
type Remote interface {
	// GetProgress возвращает поля документа пользователя
	// или api.ErrDocumentNotFound, если документа нет
	GetProgress(ctx context.Context, userID string) (map[string]json.RawMessage, error)

	// MergeProgress записывает поля, не трогая остальные поля документа
	MergeProgress(ctx context.Context, userID string, fields map[string]json.RawMessage) error
}

//go:generate moq -out identity_mock.go . Identity

// Identity источник текущего пользователя
type Identity interface {
	UserID(ctx context.Context) (string, bool)
}

// Config параметры движка синхронизации
type Config struct {
	Retry       retry.Options
	ReadPolicy  ratelimit.Policy
	WritePolicy ratelimit.Policy
	// QueueSize емкость очереди фоновых загрузок
	QueueSize int
	// Workers число обработчиков очереди
	Workers int
}

// DefaultConfig возвращает параметры по умолчанию
func DefaultConfig() Config {
	return Config{
		Retry:       retry.Remote(),
		ReadPolicy:  ratelimit.RemoteRead,
		WritePolicy: ratelimit.RemoteWrite,
		QueueSize:   64,
		Workers:     1,
	}
}

// Option настраивает Service
type Option func(*Service)

// WithLimiter задает ограничитель частоты (например, общий для нескольких сервисов)
func WithLimiter(l *ratelimit.Limiter) Option {
	return func(s *Service) {
		s.limiter = l
	}
}

// WithMetrics задает метрики
func WithMetrics(m *Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// Service handles synchronization between client and server
type Service struct {
	local    storage.ProgressStorage
	meta     storage.MetadataStorage
	remote   Remote
	identity Identity
	limiter  *ratelimit.Limiter
	metrics  *Metrics
	logger   *slog.Logger
	now      func() time.Time
	queue    chan job
	pending  *tracker
	stats    *statsCounter
	cfg      Config
}

// NewService creates a new sync service
func NewService(
	cfg Config,
	local storage.ProgressStorage,
	meta storage.MetadataStorage,
	remote Remote,
	identity Identity,
	logger *slog.Logger,
	opts ...Option,
) *Service {
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = DefaultConfig().QueueSize
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	// пустая политика отклоняла бы каждый вызов
	if cfg.ReadPolicy.MaxTokens <= 0 || cfg.ReadPolicy.Refill <= 0 {
		cfg.ReadPolicy = ratelimit.RemoteRead
	}
	if cfg.WritePolicy.MaxTokens <= 0 || cfg.WritePolicy.Refill <= 0 {
		cfg.WritePolicy = ratelimit.RemoteWrite
	}

	s := &Service{
		cfg:      cfg,
		local:    local,
		meta:     meta,
		remote:   remote,
		identity: identity,
		logger:   logger,
		now:      time.Now,
		queue:    make(chan job, cfg.QueueSize),
		pending:  newTracker(),
		stats:    &statsCounter{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.limiter == nil {
		s.limiter = ratelimit.New()
	}
	if s.metrics == nil {
		s.metrics = NewMetrics(nil)
	}

	return s
}

// SyncToCloud отправляет все локальные записи одним частичным обновлением документа
func (s *Service) SyncToCloud(ctx context.Context, userID string) *Result {
	res, start := s.begin(OpUploadAll)
	defer s.finish(res, start, "user_id", userID)

	if userID == "" {
		res.Outcome = OutcomeSkipped
		return res
	}

	fields := make(map[string]json.RawMessage)
	for _, key := range models.AllSyncKeys() {
		raw, state := s.readLocal(ctx, key)
		if state == localCorrupt {
			res.Skipped++
		}
		if state != localPresent {
			continue
		}
		if s.oversized(key, raw) {
			res.Skipped++
			continue
		}
		fields[string(key)] = raw
		res.Keys = append(res.Keys, key)
	}

	if len(fields) == 0 {
		res.Outcome = OutcomeNoop
		return res
	}

	if !s.limiter.AllowPolicy(bucketRemoteWrite, s.cfg.WritePolicy) {
		res.Outcome = OutcomeRateLimited
		return res
	}

	err := retry.Do(ctx, s.retryOptions(OpUploadAll), func(ctx context.Context) error {
		return s.remote.MergeProgress(ctx, userID, fields)
	})
	if err != nil {
		res.Outcome = OutcomeFailed
		res.Err = err
		return res
	}

	res.Outcome = OutcomeCompleted
	s.saveSyncTime(ctx, metaUpload)
	return res
}

// SyncFromCloud загружает документ и сливает каждое известное поле с локальной версией
func (s *Service) SyncFromCloud(ctx context.Context, userID string) *Result {
	res, start := s.begin(OpDownload)
	defer s.finish(res, start, "user_id", userID)

	if userID == "" {
		res.Outcome = OutcomeSkipped
		return res
	}

	if !s.limiter.AllowPolicy(bucketRemoteRead, s.cfg.ReadPolicy) {
		res.Outcome = OutcomeRateLimited
		return res
	}

	doc, err := retry.DoValue(ctx, s.retryOptions(OpDownload), func(ctx context.Context) (map[string]json.RawMessage, error) {
		return s.remote.GetProgress(ctx, userID)
	})
	if err != nil {
		if errors.Is(err, api.ErrDocumentNotFound) {
			res.Outcome = OutcomeNoop
			return res
		}
		res.Outcome = OutcomeFailed
		res.Err = err
		return res
	}

	if len(doc) == 0 {
		res.Outcome = OutcomeNoop
		return res
	}

	// Детерминированный порядок для логов и тестов
	for _, name := range slices.Sorted(maps.Keys(doc)) {
		key, ok := models.ParseSyncKey(name)
		if !ok {
			s.logger.Debug("skipping unknown remote field", "key", name)
			res.Skipped++
			continue
		}

		switch s.mergeKey(ctx, key, doc[name]) {
		case keyAdopted:
			res.Adopted++
			res.Keys = append(res.Keys, key)
		case keyMerged:
			res.Merged++
			res.Keys = append(res.Keys, key)
		default:
			res.Skipped++
		}
	}

	res.Outcome = OutcomeCompleted
	s.saveSyncTime(ctx, metaDownload)
	return res
}

// SyncKeyToCloud отправляет одну запись
func (s *Service) SyncKeyToCloud(ctx context.Context, userID string, key models.SyncKey) *Result {
	res, start := s.begin(OpUploadOne)
	defer s.finish(res, start, "user_id", userID, "key", key)

	if userID == "" || !key.Valid() {
		res.Outcome = OutcomeSkipped
		return res
	}

	raw, state := s.readLocal(ctx, key)
	if state == localPresent && s.oversized(key, raw) {
		state = localCorrupt
	}
	if state != localPresent {
		res.Outcome = OutcomeNoop
		if state == localCorrupt {
			res.Skipped++
		}
		return res
	}

	if !s.limiter.AllowPolicy(bucketRemoteWriteKey(key), s.cfg.WritePolicy) {
		res.Outcome = OutcomeRateLimited
		return res
	}

	fields := map[string]json.RawMessage{string(key): raw}
	err := retry.Do(ctx, s.retryOptions(OpUploadOne), func(ctx context.Context) error {
		return s.remote.MergeProgress(ctx, userID, fields)
	})
	if err != nil {
		res.Outcome = OutcomeFailed
		res.Err = err
		return res
	}

	res.Keys = []models.SyncKey{key}
	res.Outcome = OutcomeCompleted
	s.saveSyncTime(ctx, metaUpload)
	return res
}

// SaveAndSync записывает значение локально и ставит отправку ключа в очередь.
// Возвращает ошибку только если не удалась локальная запись.
// Отправка выполняется обработчиком очереди (Run) без ожидания.
func (s *Service) SaveAndSync(ctx context.Context, key string, value []byte) error {
	if err := s.local.Set(ctx, key, value); err != nil {
		return fmt.Errorf("failed to save %q locally: %w", key, err)
	}

	syncKey, ok := models.ParseSyncKey(key)
	if !ok {
		return nil
	}

	userID, ok := s.identity.UserID(ctx)
	if !ok {
		return nil
	}

	s.enqueue(job{userID: userID, key: syncKey})
	return nil
}

// LastSyncTimes возвращает время последней успешной отправки и загрузки
func (s *Service) LastSyncTimes(ctx context.Context) (upload, download time.Time, err error) {
	upload, err = s.meta.GetSyncTime(ctx, metaUpload)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	download, err = s.meta.GetSyncTime(ctx, metaDownload)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return upload, download, nil
}

type keyAction int

const (
	keySkipped keyAction = iota
	keyAdopted
	keyMerged
)

// mergeKey применяет удаленное значение одного ключа к локальному хранилищу
func (s *Service) mergeKey(ctx context.Context, key models.SyncKey, remoteRaw json.RawMessage) keyAction {
	remoteRec, err := models.Decode(key, remoteRaw)
	if err != nil {
		s.logger.Warn("skipping undecodable remote value", "key", key, "error", err)
		return keySkipped
	}

	localRaw, err := s.local.Get(ctx, string(key))
	switch {
	case errors.Is(err, storage.ErrKeyNotFound):
		return s.adopt(ctx, key, remoteRaw)
	case err != nil:
		// Не перезаписываем значение, которое не смогли прочитать
		s.logger.Warn("failed to read local value", "key", key, "error", err)
		return keySkipped
	}

	localRec, err := models.Decode(key, localRaw)
	if err != nil {
		// Испорченное локальное значение считается отсутствующим
		s.logger.Warn("local value is corrupt, adopting remote", "key", key, "error", err)
		return s.adopt(ctx, key, remoteRaw)
	}

	merged, err := models.Merge(localRec, remoteRec)
	if err != nil {
		s.logger.Warn("failed to merge", "key", key, "error", err)
		return keySkipped
	}

	data, err := models.Encode(merged)
	if err != nil {
		s.logger.Warn("failed to encode merged value", "key", key, "error", err)
		return keySkipped
	}

	if err := s.local.Set(ctx, string(key), data); err != nil {
		s.logger.Warn("failed to save merged value", "key", key, "error", err)
		return keySkipped
	}

	return keyMerged
}

func (s *Service) adopt(ctx context.Context, key models.SyncKey, remoteRaw json.RawMessage) keyAction {
	if err := s.local.Set(ctx, string(key), remoteRaw); err != nil {
		s.logger.Warn("failed to save remote value", "key", key, "error", err)
		return keySkipped
	}
	return keyAdopted
}

type localState int

const (
	localMissing localState = iota
	localCorrupt
	localPresent
)

// readLocal возвращает локальное значение, пригодное для отправки.
// Значение отправляется как есть, декодирование только проверяет его.
func (s *Service) readLocal(ctx context.Context, key models.SyncKey) (json.RawMessage, localState) {
	raw, err := s.local.Get(ctx, string(key))
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return nil, localMissing
		}
		s.logger.Warn("failed to read local value", "key", key, "error", err)
		return nil, localCorrupt
	}

	if _, err := models.Decode(key, raw); err != nil {
		if errors.Is(err, models.ErrNullRecord) {
			return nil, localMissing
		}
		s.logger.Warn("skipping corrupt local value", "key", key, "error", err)
		return nil, localCorrupt
	}

	return json.RawMessage(raw), localPresent
}

// oversized сообщает, что запись больше, чем примет сервер.
// Такая запись остается только локальной и не мешает отправке остальных.
func (s *Service) oversized(key models.SyncKey, raw json.RawMessage) bool {
	if len(raw) <= validation.MaxValueSize {
		return false
	}
	s.logger.Warn("local record is too large to upload",
		"key", key,
		"size", len(raw),
		"limit", validation.MaxValueSize)
	return true
}

func (s *Service) retryOptions(op Operation) retry.Options {
	opts := s.cfg.Retry
	opts.OnRetry = func(attempt int, delay time.Duration, err error) {
		s.metrics.retries.WithLabelValues(string(op)).Inc()
		s.logger.Debug("retrying remote call",
			"operation", op,
			"attempt", attempt,
			"delay", delay,
			"error", err)
	}
	return opts
}

func (s *Service) saveSyncTime(ctx context.Context, operation string) {
	if err := s.meta.SaveSyncTime(ctx, operation, s.now()); err != nil {
		// Не прерываем синхронизацию из-за ошибки сохранения времени
		s.logger.Warn("failed to save sync time", "operation", operation, "error", err)
	}
}

func (s *Service) begin(op Operation) (*Result, time.Time) {
	return &Result{Operation: op}, s.now()
}

// finish фиксирует итог операции в логах, статистике и метриках
func (s *Service) finish(res *Result, start time.Time, attrs ...any) {
	res.Duration = s.now().Sub(start)
	s.stats.record(res, s.now())
	s.metrics.observe(res)

	attrs = append(attrs,
		"operation", res.Operation,
		"outcome", res.Outcome,
		"keys", len(res.Keys),
		"duration", res.Duration)

	switch res.Outcome {
	case OutcomeFailed:
		s.logger.Warn("sync failed", append(attrs, "error", res.Err)...)
	case OutcomeRateLimited:
		s.logger.Warn("sync rate limited", attrs...)
	case OutcomeCompleted:
		s.logger.Info("sync completed",
			append(attrs, "adopted", res.Adopted, "merged", res.Merged, "skipped", res.Skipped)...)
	default:
		s.logger.Debug("sync skipped", attrs...)
	}
}
