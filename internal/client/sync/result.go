package sync

import (
	"time"

	"github.com/iudanet/lingosync/internal/models"
)

// Operation вид операции синхронизации
type Operation string

const (
	OpUploadAll Operation = "upload_all"
	OpDownload  Operation = "download"
	OpUploadOne Operation = "upload_one"
)

// Outcome итог операции. Ни один итог не является ошибкой для вызывающей стороны.
type Outcome string

const (
	// OutcomeCompleted удаленный вызов выполнен
	OutcomeCompleted Outcome = "completed"
	// OutcomeNoop нечего отправлять или документа на сервере нет
	OutcomeNoop Outcome = "noop"
	// OutcomeSkipped нет пользователя или ключ не синхронизируется
	OutcomeSkipped Outcome = "skipped"
	// OutcomeRateLimited вызов отклонен ограничителем частоты
	OutcomeRateLimited Outcome = "rate_limited"
	// OutcomeFailed удаленный вызов не удался (после повторов или без них)
	OutcomeFailed Outcome = "failed"
)

// Result contains sync operation results
type Result struct {
	Err       error            // ошибка удаленного вызова при OutcomeFailed
	Operation Operation        // вид операции
	Outcome   Outcome          // итог
	Keys      []models.SyncKey // отправленные или обработанные ключи
	Adopted   int              // ключей принято с сервера как есть (локального значения не было)
	Merged    int              // ключей слито с локальным значением
	Skipped   int              // ключей пропущено (неизвестные, испорченные, ошибки записи)
	Duration  time.Duration
}

// OK сообщает, что операция завершилась без сбоя
func (r *Result) OK() bool {
	return r.Outcome != OutcomeFailed
}
