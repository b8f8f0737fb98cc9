package api

// Коды ошибок удаленного хранилища. Клиент классифицирует ошибки по коду
// (повторять запрос или нет), поэтому значения являются частью протокола.
const (
	CodeUnavailable       = "unavailable"
	CodeDeadlineExceeded  = "deadline-exceeded"
	CodeResourceExhausted = "resource-exhausted"
	CodeAborted           = "aborted"
	CodeInternal          = "internal"
	CodeCancelled         = "cancelled"
	CodePermissionDenied  = "permission-denied"
	CodeInvalidArgument   = "invalid-argument"
	CodeNotFound          = "not-found"
	CodeUnauthenticated   = "unauthenticated"
	// CodeUnknown ответ без кода, который нельзя отнести ни к одному из известных
	CodeUnknown = "unknown"
)

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // текст HTTP статуса
	Code    string `json:"code"`              // машиночитаемый код ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}
