package validation

import (
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/google/uuid"
)

// FieldNamePattern определяет допустимый формат имени поля документа прогресса
// Латинская буква, затем буквы, цифры или нижнее подчеркивание (_)
// Длина: 1-64 символа
var FieldNamePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]{0,63}$`)

const (
	// MaxFieldNameLen максимальная длина имени поля
	MaxFieldNameLen = 64
	// MaxValueSize максимальный размер значения поля в байтах.
	// Клиент не отправляет записи больше этого размера.
	MaxValueSize = 1 << 20
	// MaxFieldsPerRequest максимальное число полей в одной записи
	MaxFieldsPerRequest = 64
	// MaxRequestSize ограничение тела запроса частичной записи.
	// Вмещает все синхронизируемые ключи максимального размера.
	MaxRequestSize = 16 << 20
)

// ValidateFieldName проверяет имя поля документа прогресса
func ValidateFieldName(name string) error {
	if name == "" {
		return fmt.Errorf("field name cannot be empty")
	}

	if len(name) > MaxFieldNameLen {
		return fmt.Errorf("field name must not exceed %d characters", MaxFieldNameLen)
	}

	if !FieldNamePattern.MatchString(name) {
		return fmt.Errorf("field name %q must start with a letter and contain only letters, numbers, and underscores", name)
	}

	return nil
}

// ValidateFieldValue проверяет значение поля: непустой JSON, не null, в пределах размера
func ValidateFieldValue(name string, value []byte) error {
	if len(value) == 0 {
		return fmt.Errorf("field %q has empty value", name)
	}

	if len(value) > MaxValueSize {
		return fmt.Errorf("field %q exceeds %d bytes", name, MaxValueSize)
	}

	if !json.Valid(value) {
		return fmt.Errorf("field %q is not valid JSON", name)
	}

	if string(value) == "null" {
		return fmt.Errorf("field %q is null", name)
	}

	return nil
}

// ValidateFields проверяет набор полей частичной записи
func ValidateFields(fields map[string]json.RawMessage) error {
	if len(fields) == 0 {
		return fmt.Errorf("no fields to write")
	}

	if len(fields) > MaxFieldsPerRequest {
		return fmt.Errorf("too many fields: %d (max %d)", len(fields), MaxFieldsPerRequest)
	}

	for name, value := range fields {
		if err := ValidateFieldName(name); err != nil {
			return err
		}
		if err := ValidateFieldValue(name, value); err != nil {
			return err
		}
	}

	return nil
}

// ValidateUserID проверяет, что идентификатор пользователя является UUID
func ValidateUserID(userID string) error {
	if userID == "" {
		return fmt.Errorf("user id cannot be empty")
	}

	if _, err := uuid.Parse(userID); err != nil {
		return fmt.Errorf("user id must be a UUID: %w", err)
	}

	return nil
}
