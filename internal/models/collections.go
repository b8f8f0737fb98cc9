package models

import (
	"encoding/json"

	"github.com/iudanet/lingosync/internal/crdt"
)

// Badges флаги открытых достижений: badgeID -> открыт.
type Badges map[string]bool

func (b *Badges) Key() SyncKey { return KeyBadges }

func (b *Badges) merge(other Record) Record {
	r, ok := other.(*Badges)
	if !ok {
		return b
	}
	out := Badges(crdt.UnionFlags(*b, *r))
	return &out
}

// DifficultWords слова, отмеченные для повторения.
// Элементы произвольной формы, идентичность по полю id.
type DifficultWords []json.RawMessage

func (d *DifficultWords) Key() SyncKey { return KeyDifficultWords }

func (d *DifficultWords) merge(other Record) Record {
	r, ok := other.(*DifficultWords)
	if !ok {
		return d
	}
	out := DifficultWords(crdt.UnionByIdentity(*d, *r))
	return &out
}

// SavedWords сохраненные (избранные) слова.
type SavedWords []json.RawMessage

func (s *SavedWords) Key() SyncKey { return KeySavedWords }

func (s *SavedWords) merge(other Record) Record {
	r, ok := other.(*SavedWords)
	if !ok {
		return s
	}
	out := SavedWords(crdt.UnionByIdentity(*s, *r))
	return &out
}

// CompletedStories идентификаторы прочитанных историй.
type CompletedStories []string

func (c *CompletedStories) Key() SyncKey { return KeyCompletedStories }

func (c *CompletedStories) merge(other Record) Record {
	r, ok := other.(*CompletedStories)
	if !ok {
		return c
	}
	out := CompletedStories(crdt.UnionStrings(*c, *r))
	return &out
}

// PathProgress прохождение учебного пути.
// Пройденные узлы объединяются как множество, текущий узел берется
// локальный, если он задан.
type PathProgress struct {
	CurrentNode    string   `json:"currentNode,omitempty"`
	CompletedNodes []string `json:"completedNodes"`
}

func (p *PathProgress) Key() SyncKey { return KeyPathProgress }

func (p *PathProgress) merge(other Record) Record {
	r, ok := other.(*PathProgress)
	if !ok {
		return p
	}
	out := &PathProgress{
		CurrentNode:    p.CurrentNode,
		CompletedNodes: crdt.UnionStrings(p.CompletedNodes, r.CompletedNodes),
	}
	if out.CurrentNode == "" {
		out.CurrentNode = r.CurrentNode
	}
	return out
}

// spacedRepetitionTimestamp поле с временем последнего повторения карточки
const spacedRepetitionTimestamp = "lastReviewed"

// SpacedRepetition расписание интервальных повторений: itemID -> состояние карточки.
// Каждая карточка сливается независимо по времени последнего повторения.
type SpacedRepetition map[string]json.RawMessage

func (s *SpacedRepetition) Key() SyncKey { return KeySpacedRepetition }

func (s *SpacedRepetition) merge(other Record) Record {
	r, ok := other.(*SpacedRepetition)
	if !ok || len(*r) == 0 {
		return s
	}

	out := make(SpacedRepetition, len(*s)+len(*r))
	for id, item := range *s {
		out[id] = item
	}
	for id, remoteItem := range *r {
		localItem, exists := out[id]
		if !exists {
			out[id] = remoteItem
			continue
		}
		out[id] = crdt.NewerByTimestamp(localItem, remoteItem, spacedRepetitionTimestamp)
	}

	return &out
}
