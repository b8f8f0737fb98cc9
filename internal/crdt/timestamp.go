package crdt

import (
	"encoding/json"
	"time"

	"github.com/tidwall/gjson"
)

// ReviewedAt извлекает метку времени из поля field элемента.
// Поддерживаются числа (миллисекунды Unix) и строки в форматах ParseDate.
func ReviewedAt(item json.RawMessage, field string) (time.Time, bool) {
	v := gjson.GetBytes(item, field)
	switch v.Type {
	case gjson.Number:
		return time.UnixMilli(v.Int()), true
	case gjson.String:
		return ParseDate(v.Str)
	default:
		return time.Time{}, false
	}
}

// NewerByTimestamp выбирает одну из двух версий элемента по полю field.
// Удаленная версия побеждает, только если у нее есть сравнимая метка
// времени и она строго новее локальной (или у локальной метки нет).
// При равенстве, а также когда у удаленной версии метки нет, остается локальная.
func NewerByTimestamp(local, remote json.RawMessage, field string) json.RawMessage {
	remoteAt, ok := ReviewedAt(remote, field)
	if !ok {
		return local
	}
	localAt, ok := ReviewedAt(local, field)
	if !ok || remoteAt.After(localAt) {
		return remote
	}
	return local
}
