package api

import (
	"encoding/json"
	"time"
)

// ProgressDocument представляет документ прогресса пользователя на сервере.
// Fields хранит значения по имени записи (SyncKey) в виде сырого JSON.
type ProgressDocument struct {
	UpdatedAt time.Time                  `json:"updated_at"`
	Fields    map[string]json.RawMessage `json:"fields"`
	UserID    string                     `json:"user_id"`
}

// MergeProgressRequest представляет запрос на частичную запись документа.
// Поля, отсутствующие в запросе, на сервере не изменяются.
type MergeProgressRequest struct {
	Fields map[string]json.RawMessage `json:"fields"`
}

// MergeProgressResponse представляет ответ на частичную запись документа
type MergeProgressResponse struct {
	UpdatedAt     time.Time `json:"updated_at"`
	UpdatedFields int       `json:"updated_fields"`
}
