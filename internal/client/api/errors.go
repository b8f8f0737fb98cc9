package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/iudanet/lingosync/pkg/api"
)

// ErrDocumentNotFound на сервере еще нет документа прогресса пользователя
var ErrDocumentNotFound = errors.New("progress document not found")

// StatusError ответ сервера с кодом, отличным от 2xx
type StatusError struct {
	ErrCode string // машиночитаемый код (pkg/api Code*)
	Message string
	Status  int
}

// Error implements error
func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server error (%d %s): %s", e.Status, e.ErrCode, e.Message)
	}
	return fmt.Sprintf("server error (%d %s)", e.Status, e.ErrCode)
}

// Code возвращает код ошибки. Используется retry для классификации.
func (e *StatusError) Code() string {
	return e.ErrCode
}

// StatusCode HTTP статус ответа
func (e *StatusError) StatusCode() int {
	return e.Status
}

// codeForStatus код по умолчанию, когда сервер не прислал тело ошибки
func codeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return api.CodeInvalidArgument
	case http.StatusUnauthorized:
		return api.CodeUnauthenticated
	case http.StatusForbidden:
		return api.CodePermissionDenied
	case http.StatusNotFound:
		return api.CodeNotFound
	case http.StatusConflict:
		return api.CodeAborted
	case http.StatusTooManyRequests:
		return api.CodeResourceExhausted
	case http.StatusServiceUnavailable, http.StatusBadGateway:
		return api.CodeUnavailable
	case http.StatusGatewayTimeout:
		return api.CodeDeadlineExceeded
	case http.StatusInternalServerError:
		return api.CodeInternal
	default:
		// 405, 413, 422, 501 и прочие не считаются временными
		return api.CodeUnknown
	}
}
