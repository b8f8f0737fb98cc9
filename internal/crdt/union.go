package crdt

import (
	"bytes"
	"encoding/json"

	"github.com/tidwall/gjson"
)

// IdentityField имя поля, по которому элементы коллекций считаются одинаковыми
const IdentityField = "id"

// MaxInt возвращает большее из двух значений.
func MaxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// UnionByIdentity объединяет две append-only коллекции.
// Сначала идут все локальные элементы в исходном порядке, затем удаленные
// элементы, которых еще нет в результате. Идентичность элемента определяется
// полем "id", а если его нет - структурным равенством.
func UnionByIdentity(local, remote []json.RawMessage) []json.RawMessage {
	if len(remote) == 0 {
		return local
	}

	seen := make(map[string]struct{}, len(local)+len(remote))
	out := make([]json.RawMessage, 0, len(local)+len(remote))

	for _, item := range local {
		seen[Identity(item)] = struct{}{}
		out = append(out, item)
	}

	for _, item := range remote {
		id := Identity(item)
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, item)
	}

	return out
}

// Identity возвращает ключ идентичности элемента коллекции.
func Identity(item json.RawMessage) string {
	if id := gjson.GetBytes(item, IdentityField); id.Exists() && id.Type != gjson.Null {
		// Raw сохраняет различие между "1" и 1
		return "id:" + id.Raw
	}
	return "v:" + canonical(item)
}

// canonical приводит JSON к каноническому виду: ключи объектов сортируются
// encoding/json, пробелы удаляются. Невалидный JSON сравнивается побайтно.
func canonical(item json.RawMessage) string {
	var v any
	dec := json.NewDecoder(bytes.NewReader(item))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return string(item)
	}
	out, err := json.Marshal(v)
	if err != nil {
		return string(item)
	}
	return string(out)
}

// UnionStrings объединяет два множества строк, сохраняя локальный порядок.
func UnionStrings(local, remote []string) []string {
	if len(remote) == 0 {
		return local
	}

	seen := make(map[string]struct{}, len(local)+len(remote))
	out := make([]string, 0, len(local)+len(remote))

	for _, s := range local {
		seen[s] = struct{}{}
		out = append(out, s)
	}
	for _, s := range remote {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}

	return out
}

// UnionFlags объединяет флаги членства: флаг установлен, если он установлен
// хотя бы на одной стороне.
func UnionFlags(local, remote map[string]bool) map[string]bool {
	if len(remote) == 0 {
		return local
	}

	out := make(map[string]bool, len(local)+len(remote))
	for k, v := range local {
		out[k] = v
	}
	for k, v := range remote {
		out[k] = out[k] || v
	}

	return out
}

// UnionMaps объединяет два отображения по ключам.
// При совпадении ключа побеждает локальное значение.
func UnionMaps(local, remote map[string]json.RawMessage) map[string]json.RawMessage {
	if len(remote) == 0 {
		return local
	}

	out := make(map[string]json.RawMessage, len(local)+len(remote))
	for k, v := range remote {
		out[k] = v
	}
	for k, v := range local {
		out[k] = v
	}

	return out
}

// IsObject сообщает, является ли значение JSON объектом.
func IsObject(raw json.RawMessage) bool {
	return gjson.ParseBytes(raw).IsObject()
}
