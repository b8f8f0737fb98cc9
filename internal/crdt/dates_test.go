package crdt

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCompareDates(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{name: "equal", a: "2026-02-10", b: "2026-02-10", want: 0},
		{name: "iso older", a: "2026-02-09", b: "2026-02-10", want: -1},
		{name: "iso newer", a: "2026-02-10", b: "2026-02-09", want: 1},
		{name: "empty is older", a: "", b: "2026-02-09", want: -1},
		{name: "empty is older reversed", a: "2026-02-09", b: "", want: 1},
		{name: "date string format", a: "Tue Feb 10 2026", b: "Mon Feb 09 2026", want: 1},
		{name: "month boundary not lexicographic", a: "Sat Jan 31 2026", b: "Sun Feb 01 2026", want: -1},
		{name: "rfc3339", a: "2026-02-10T08:00:00Z", b: "2026-02-10T07:00:00Z", want: 1},
		{name: "unparseable falls back to strings", a: "b", b: "a", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CompareDates(tt.a, tt.b))
		})
	}
}

func TestLaterDate(t *testing.T) {
	assert.Equal(t, "2026-02-10", LaterDate("2026-02-10", "2026-02-09"))
	assert.Equal(t, "2026-02-10", LaterDate("2026-02-09", "2026-02-10"))
	assert.Equal(t, "2026-02-10", LaterDate("", "2026-02-10"))
	assert.Equal(t, "", LaterDate("", ""))
}

func TestReviewedAt(t *testing.T) {
	at, ok := ReviewedAt(json.RawMessage(`{"lastReviewed":1760000000000}`), "lastReviewed")
	assert.True(t, ok)
	assert.Equal(t, time.UnixMilli(1760000000000), at)

	at, ok = ReviewedAt(json.RawMessage(`{"lastReviewed":"2026-02-10T10:00:00Z"}`), "lastReviewed")
	assert.True(t, ok)
	assert.Equal(t, 2026, at.Year())

	_, ok = ReviewedAt(json.RawMessage(`{"interval":3}`), "lastReviewed")
	assert.False(t, ok)

	_, ok = ReviewedAt(json.RawMessage(`{"lastReviewed":null}`), "lastReviewed")
	assert.False(t, ok)
}

func TestNewerByTimestamp(t *testing.T) {
	older := json.RawMessage(`{"lastReviewed":100,"box":1}`)
	newer := json.RawMessage(`{"lastReviewed":200,"box":2}`)
	tie := json.RawMessage(`{"lastReviewed":100,"box":9}`)
	undated := json.RawMessage(`{"box":5}`)

	tests := []struct {
		name   string
		local  json.RawMessage
		remote json.RawMessage
		want   json.RawMessage
	}{
		{name: "remote newer wins", local: older, remote: newer, want: newer},
		{name: "local newer stays", local: newer, remote: older, want: newer},
		{name: "tie keeps local", local: older, remote: tie, want: older},
		{name: "remote without timestamp keeps local", local: older, remote: undated, want: older},
		{name: "local without timestamp loses to dated remote", local: undated, remote: older, want: older},
		{name: "both undated keeps local", local: undated, remote: json.RawMessage(`{"box":6}`), want: undated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewerByTimestamp(tt.local, tt.remote, "lastReviewed")
			assert.Equal(t, string(tt.want), string(got))
			assert.Equal(t, string(got), string(NewerByTimestamp(got, tt.remote, "lastReviewed")))
		})
	}
}
