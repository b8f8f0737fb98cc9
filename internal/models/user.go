package models

import "time"

// User представляет пользователя (устройство, вошедшее анонимно) на сервере
type User struct {
	CreatedAt  time.Time  `json:"created_at"`  // время создания
	LastSeen   *time.Time `json:"last_seen"`   // время последней выдачи токена
	ID         string     `json:"id"`          // UUID пользователя
	SecretHash string     `json:"secret_hash"` // argon2id хеш секрета устройства (base64)
	SecretSalt string     `json:"secret_salt"` // соль для хеша (base64)
}
