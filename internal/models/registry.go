package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrUnknownKey ключ не входит в перечисление SyncKey
	ErrUnknownKey = errors.New("unknown sync key")

	// ErrNullRecord значение записи равно JSON null и считается отсутствующим
	ErrNullRecord = errors.New("record is null")

	// ErrMalformedRecord значение записи не соответствует схеме ключа
	ErrMalformedRecord = errors.New("malformed record")

	// ErrKeyMismatch попытка слить записи разных ключей
	ErrKeyMismatch = errors.New("records belong to different sync keys")
)

// Названия стратегий слияния
const (
	StrategyMonotonic   = "monotonic-max"
	StrategyDateScoped  = "date-scoped"
	StrategyStatistics  = "largest-count-wins"
	StrategyAppendOnly  = "append-only-union"
	StrategySetUnion    = "set-union"
	StrategyTimestamped = "newest-timestamp-per-item"
	StrategyNested      = "nested-category-union"
	StrategyPresence    = "local-if-present"
)

type registryEntry struct {
	newRecord func() Record
	strategy  string
}

// registry фиксированное соответствие ключа, варианта записи и стратегии
var registry = map[SyncKey]registryEntry{
	KeyStreak:           {func() Record { return new(Streak) }, StrategyMonotonic},
	KeyXP:               {func() Record { return new(XP) }, StrategyDateScoped},
	KeyBadges:           {func() Record { return new(Badges) }, StrategySetUnion},
	KeyDifficultWords:   {func() Record { return new(DifficultWords) }, StrategyAppendOnly},
	KeySavedWords:       {func() Record { return new(SavedWords) }, StrategyAppendOnly},
	KeyQuizStats:        {func() Record { return new(QuizStats) }, StrategyStatistics},
	KeyDailyGoal:        {func() Record { return new(DailyGoal) }, StrategyPresence},
	KeyLearningProgress: {func() Record { return new(LearningProgress) }, StrategyNested},
	KeySpacedRepetition: {func() Record { return new(SpacedRepetition) }, StrategyTimestamped},
	KeyLastLevel:        {func() Record { return new(LastLevel) }, StrategyPresence},
	KeyPathProgress:     {func() Record { return new(PathProgress) }, StrategySetUnion},
	KeyPlacementLevel:   {func() Record { return new(PlacementLevel) }, StrategyPresence},
	KeyCompletedStories: {func() Record { return new(CompletedStories) }, StrategySetUnion},
}

// Decode разбирает сериализованное значение записи в вариант для ключа.
func Decode(key SyncKey, data []byte) (Record, error) {
	entry, ok := registry[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, ErrNullRecord
	}

	rec := entry.newRecord()
	if err := json.Unmarshal(trimmed, rec); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedRecord, key, err)
	}

	return rec, nil
}

// Encode сериализует запись.
func Encode(rec Record) ([]byte, error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s record: %w", rec.Key(), err)
	}
	return data, nil
}

// Merge сливает локальную и удаленную версии одной записи.
// Результат становится новой локальной версией.
func Merge(local, remote Record) (Record, error) {
	if local == nil || remote == nil {
		return nil, fmt.Errorf("merge requires both records: %w", ErrNullRecord)
	}
	if local.Key() != remote.Key() {
		return nil, fmt.Errorf("%w: %s vs %s", ErrKeyMismatch, local.Key(), remote.Key())
	}
	return local.merge(remote), nil
}

// MergeJSON декодирует обе версии, сливает их и возвращает сериализованный результат.
func MergeJSON(key SyncKey, local, remote []byte) ([]byte, error) {
	localRec, err := Decode(key, local)
	if err != nil {
		return nil, fmt.Errorf("failed to decode local %s: %w", key, err)
	}
	remoteRec, err := Decode(key, remote)
	if err != nil {
		return nil, fmt.Errorf("failed to decode remote %s: %w", key, err)
	}

	merged, err := Merge(localRec, remoteRec)
	if err != nil {
		return nil, err
	}

	return Encode(merged)
}
