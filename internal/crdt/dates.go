package crdt

import (
	"strings"
	"time"
)

// dateLayouts форматы дат, которые встречаются в записях прогресса
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	time.RFC3339,
	"Mon Jan 02 2006",
}

// ParseDate разбирает дату в одном из поддерживаемых форматов.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// CompareDates сравнивает две даты "по состоянию на".
// Возвращает -1, если a раньше b, 0 при равенстве и 1, если a позже.
// Пустая дата старше любой непустой. Если дату не удалось разобрать,
// значения сравниваются как строки.
func CompareDates(a, b string) int {
	if a == b {
		return 0
	}
	if a == "" {
		return -1
	}
	if b == "" {
		return 1
	}

	ta, okA := ParseDate(a)
	tb, okB := ParseDate(b)
	if okA && okB {
		switch {
		case ta.Before(tb):
			return -1
		case ta.After(tb):
			return 1
		}
	}

	return strings.Compare(a, b)
}

// LaterDate возвращает более позднюю из двух дат.
func LaterDate(a, b string) string {
	if CompareDates(b, a) > 0 {
		return b
	}
	return a
}
