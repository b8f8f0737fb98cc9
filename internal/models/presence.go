package models

import "encoding/json"

// Записи без собственной семантики слияния: при конфликте побеждает
// локальная версия, если она есть (а при слиянии она всегда есть).

// DailyGoal дневная цель по опыту.
type DailyGoal struct {
	SetAt string `json:"setAt,omitempty"`
	Goal  int    `json:"goal"`
}

func (d *DailyGoal) Key() SyncKey { return KeyDailyGoal }

func (d *DailyGoal) merge(Record) Record { return d }

// LastLevel последний открытый уровень. Форма значения не фиксирована.
type LastLevel struct {
	Value json.RawMessage
}

func (l *LastLevel) Key() SyncKey { return KeyLastLevel }

func (l *LastLevel) merge(Record) Record { return l }

func (l LastLevel) MarshalJSON() ([]byte, error) { return rawOrNull(l.Value), nil }

func (l *LastLevel) UnmarshalJSON(data []byte) error {
	l.Value = append(json.RawMessage(nil), data...)
	return nil
}

// PlacementLevel результат входного тестирования.
type PlacementLevel struct {
	Value json.RawMessage
}

func (p *PlacementLevel) Key() SyncKey { return KeyPlacementLevel }

func (p *PlacementLevel) merge(Record) Record { return p }

func (p PlacementLevel) MarshalJSON() ([]byte, error) { return rawOrNull(p.Value), nil }

func (p *PlacementLevel) UnmarshalJSON(data []byte) error {
	p.Value = append(json.RawMessage(nil), data...)
	return nil
}

func rawOrNull(raw json.RawMessage) []byte {
	if len(raw) == 0 {
		return []byte("null")
	}
	return raw
}
