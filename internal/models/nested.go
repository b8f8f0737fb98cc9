package models

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/iudanet/lingosync/internal/crdt"
)

// itemsToReviewField список элементов к повторению внутри learningProgress
const itemsToReviewField = "itemsToReview"

// LearningProgress общий прогресс обучения по категориям
// (словарь, грамматика и т.д.) плюс список элементов к повторению.
//
// В JSON это один объект: каждое поле кроме itemsToReview - категория.
type LearningProgress struct {
	Categories    map[string]json.RawMessage
	ItemsToReview []json.RawMessage
}

func (p *LearningProgress) Key() SyncKey { return KeyLearningProgress }

// UnmarshalJSON разбирает плоский объект на категории и itemsToReview.
func (p *LearningProgress) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	p.Categories = nil
	p.ItemsToReview = nil

	for name, raw := range fields {
		if name == itemsToReviewField {
			if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
				continue
			}
			if err := json.Unmarshal(raw, &p.ItemsToReview); err != nil {
				return fmt.Errorf("%s: %w", itemsToReviewField, err)
			}
			continue
		}
		if p.Categories == nil {
			p.Categories = make(map[string]json.RawMessage, len(fields))
		}
		p.Categories[name] = raw
	}

	return nil
}

// MarshalJSON собирает категории и itemsToReview обратно в плоский объект.
func (p LearningProgress) MarshalJSON() ([]byte, error) {
	fields := make(map[string]json.RawMessage, len(p.Categories)+1)
	for name, raw := range p.Categories {
		fields[name] = raw
	}
	if p.ItemsToReview != nil {
		items, err := json.Marshal(p.ItemsToReview)
		if err != nil {
			return nil, err
		}
		fields[itemsToReviewField] = items
	}
	return json.Marshal(fields)
}

func (p *LearningProgress) merge(other Record) Record {
	r, ok := other.(*LearningProgress)
	if !ok {
		return p
	}
	return &LearningProgress{
		Categories:    mergeCategories(p.Categories, r.Categories),
		ItemsToReview: crdt.UnionByIdentity(p.ItemsToReview, r.ItemsToReview),
	}
}

// mergeCategories объединяет каждую категорию по внутренним ключам.
// При совпадении внутреннего ключа побеждает локальная запись.
func mergeCategories(local, remote map[string]json.RawMessage) map[string]json.RawMessage {
	if len(remote) == 0 {
		return local
	}

	out := make(map[string]json.RawMessage, len(local)+len(remote))
	for name, localRaw := range local {
		remoteRaw, ok := remote[name]
		if !ok {
			out[name] = localRaw
			continue
		}
		out[name] = mergeCategory(localRaw, remoteRaw)
	}
	for name, remoteRaw := range remote {
		if _, ok := local[name]; !ok {
			out[name] = remoteRaw
		}
	}

	return out
}

func mergeCategory(localRaw, remoteRaw json.RawMessage) json.RawMessage {
	if !crdt.IsObject(localRaw) || !crdt.IsObject(remoteRaw) {
		return localRaw
	}

	var localEntries, remoteEntries map[string]json.RawMessage
	if err := json.Unmarshal(localRaw, &localEntries); err != nil {
		return localRaw
	}
	if err := json.Unmarshal(remoteRaw, &remoteEntries); err != nil {
		return localRaw
	}

	added := 0
	for k := range remoteEntries {
		if _, ok := localEntries[k]; !ok {
			added++
		}
	}
	if added == 0 {
		return localRaw
	}

	merged, err := json.Marshal(crdt.UnionMaps(localEntries, remoteEntries))
	if err != nil {
		return localRaw
	}
	return merged
}
