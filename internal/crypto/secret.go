package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/argon2"
)

// Параметры Argon2id для хеширования секрета устройства
const (
	// Argon2Time - количество итераций (time cost)
	Argon2Time = 1
	// Argon2Memory - объем памяти в KB (64MB = 64*1024 KB)
	Argon2Memory = 64 * 1024
	// Argon2Threads - количество параллельных потоков
	Argon2Threads = 4
	// Argon2KeyLen - длина выходного хеша в байтах
	Argon2KeyLen = 32
	// SaltSize - размер соли в байтах
	SaltSize = 32
	// SecretSize - размер секрета устройства в байтах
	SecretSize = 32
)

// ErrSecretMismatch возвращается, когда секрет не совпадает с сохраненным хешем
var ErrSecretMismatch = errors.New("device secret mismatch")

// GenerateSalt генерирует криптографически случайную соль
func GenerateSalt() ([]byte, error) {
	return randomBytes(SaltSize)
}

// GenerateSecret генерирует секрет устройства в URL-safe Base64.
// Секрет выдается клиенту один раз при анонимной регистрации.
func GenerateSecret() (string, error) {
	b, err := randomBytes(SecretSize)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// HashSecret хеширует секрет устройства через Argon2id со свежей солью.
// Возвращает хеш и соль в Base64 для хранения в БД.
func HashSecret(secret string) (hash, salt string, err error) {
	if secret == "" {
		return "", "", fmt.Errorf("secret cannot be empty")
	}

	saltBytes, err := GenerateSalt()
	if err != nil {
		return "", "", err
	}

	key := argon2.IDKey([]byte(secret), saltBytes, Argon2Time, Argon2Memory, Argon2Threads, Argon2KeyLen)

	return base64.StdEncoding.EncodeToString(key), base64.StdEncoding.EncodeToString(saltBytes), nil
}

// VerifySecret проверяет секрет устройства по сохраненным хешу и соли.
// Сравнение выполняется за постоянное время.
func VerifySecret(secret, hash, salt string) error {
	if secret == "" {
		return fmt.Errorf("secret cannot be empty")
	}

	saltBytes, err := base64.StdEncoding.DecodeString(salt)
	if err != nil {
		return fmt.Errorf("failed to decode salt: %w", err)
	}
	if len(saltBytes) != SaltSize {
		return fmt.Errorf("salt must be %d bytes, got %d", SaltSize, len(saltBytes))
	}

	expected, err := base64.StdEncoding.DecodeString(hash)
	if err != nil {
		return fmt.Errorf("failed to decode hash: %w", err)
	}

	computed := argon2.IDKey([]byte(secret), saltBytes, Argon2Time, Argon2Memory, Argon2Threads, Argon2KeyLen)
	if subtle.ConstantTimeCompare(computed, expected) != 1 {
		return ErrSecretMismatch
	}

	return nil
}

func randomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("failed to read random bytes: %w", err)
	}
	return b, nil
}
