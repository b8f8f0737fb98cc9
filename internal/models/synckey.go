package models

// SyncKey идентификатор синхронизируемой записи прогресса.
// Перечисление закрытое и одинаковое на всех устройствах и на сервере:
// добавление ключа требует варианта Record и стратегии слияния в registry.
type SyncKey string

const (
	KeyStreak           SyncKey = "streak"
	KeyXP               SyncKey = "xp"
	KeyBadges           SyncKey = "badges"
	KeyDifficultWords   SyncKey = "difficultWords"
	KeySavedWords       SyncKey = "savedWords"
	KeyQuizStats        SyncKey = "quizStats"
	KeyDailyGoal        SyncKey = "dailyGoal"
	KeyLearningProgress SyncKey = "learningProgress"
	KeySpacedRepetition SyncKey = "spacedRepetition"
	KeyLastLevel        SyncKey = "lastLevel"
	KeyPathProgress     SyncKey = "pathProgress"
	KeyPlacementLevel   SyncKey = "placementLevel"
	KeyCompletedStories SyncKey = "completedStories"
)

// syncKeys фиксированный порядок обхода ключей при выгрузке
var syncKeys = []SyncKey{
	KeyStreak,
	KeyXP,
	KeyBadges,
	KeyDifficultWords,
	KeySavedWords,
	KeyQuizStats,
	KeyDailyGoal,
	KeyLearningProgress,
	KeySpacedRepetition,
	KeyLastLevel,
	KeyPathProgress,
	KeyPlacementLevel,
	KeyCompletedStories,
}

// AllSyncKeys возвращает копию полного перечисления ключей.
func AllSyncKeys() []SyncKey {
	out := make([]SyncKey, len(syncKeys))
	copy(out, syncKeys)
	return out
}

// ParseSyncKey проверяет, что строка является известным ключом синхронизации.
func ParseSyncKey(s string) (SyncKey, bool) {
	k := SyncKey(s)
	if !k.Valid() {
		return "", false
	}
	return k, true
}

// Valid сообщает, входит ли ключ в перечисление.
func (k SyncKey) Valid() bool {
	_, ok := registry[k]
	return ok
}

// Strategy возвращает имя правила слияния для ключа.
func (k SyncKey) Strategy() string {
	entry, ok := registry[k]
	if !ok {
		return ""
	}
	return entry.strategy
}

func (k SyncKey) String() string {
	return string(k)
}
