package models

// Record закрытое объединение типизированных записей прогресса.
// Каждому SyncKey соответствует ровно один вариант со своей схемой
// и своим правилом слияния. Вне пакета новые варианты объявить нельзя.
type Record interface {
	// Key возвращает ключ синхронизации варианта
	Key() SyncKey

	// merge сливает текущую (локальную) версию с удаленной версией того же ключа.
	// Входные значения не изменяются.
	merge(remote Record) Record
}
