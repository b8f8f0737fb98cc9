package models

import (
	"encoding/json"

	"github.com/iudanet/lingosync/internal/crdt"
)

// Streak серия дней занятий.
// Длины серий никогда не уменьшаются при слиянии.
type Streak struct {
	LastActiveDate string `json:"lastActiveDate,omitempty"` // дата последнего занятия
	CurrentStreak  int    `json:"currentStreak"`            // текущая серия в днях
	LongestStreak  int    `json:"longestStreak"`            // рекордная серия в днях
}

func (s *Streak) Key() SyncKey { return KeyStreak }

func (s *Streak) merge(other Record) Record {
	r, ok := other.(*Streak)
	if !ok {
		return s
	}
	return &Streak{
		CurrentStreak:  crdt.MaxInt(s.CurrentStreak, r.CurrentStreak),
		LongestStreak:  crdt.MaxInt(s.LongestStreak, r.LongestStreak),
		LastActiveDate: crdt.LaterDate(s.LastActiveDate, r.LastActiveDate),
	}
}

// XP опыт пользователя: общий счетчик, счетчик за день и история начислений.
type XP struct {
	TodayDate string            `json:"todayDate,omitempty"` // день, к которому относится TodayXP
	History   []json.RawMessage `json:"history,omitempty"`   // append-only история начислений
	TotalXP   int               `json:"totalXP"`             // опыт за все время
	TodayXP   int               `json:"todayXP"`             // опыт за день TodayDate
}

func (x *XP) Key() SyncKey { return KeyXP }

func (x *XP) merge(other Record) Record {
	r, ok := other.(*XP)
	if !ok {
		return x
	}

	out := &XP{
		TotalXP:   crdt.MaxInt(x.TotalXP, r.TotalXP),
		TodayDate: crdt.LaterDate(x.TodayDate, r.TodayDate),
		History:   crdt.UnionByIdentity(x.History, r.History),
	}

	// Счетчик за день относится к конкретной дате: за более старый день
	// он устарел целиком и не суммируется.
	switch crdt.CompareDates(x.TodayDate, r.TodayDate) {
	case 0:
		out.TodayXP = crdt.MaxInt(x.TodayXP, r.TodayXP)
	case 1:
		out.TodayXP = x.TodayXP
	default:
		out.TodayXP = r.TodayXP
	}

	return out
}

// QuizStats накопленная статистика ответов.
// Реплика с большим TotalAnswered считается авторитетной для всей группы:
// обе реплики могут содержать общую историю, поэтому счетчики не складываются.
type QuizStats struct {
	ByCategory    map[string]json.RawMessage `json:"byCategory,omitempty"`
	TotalAnswered int                        `json:"totalAnswered"`
	TotalCorrect  int                        `json:"totalCorrect"`
	BestStreak    int                        `json:"bestStreak,omitempty"`
}

func (q *QuizStats) Key() SyncKey { return KeyQuizStats }

func (q *QuizStats) merge(other Record) Record {
	r, ok := other.(*QuizStats)
	if !ok {
		return q
	}
	if r.TotalAnswered > q.TotalAnswered {
		return r
	}
	return q
}
