package models

import "time"

// User представляет пользователя в системе
type User struct {
	CreatedAt    time.Time `json:"created_at"` // время создания
	ID           string    `json:"id"`         // UUID пользователя
	Username     string    `json:"username"`   // уникальный username
	PasswordHash string    `json:"-"`          // hex(argon2id) хеш пароля
	PasswordSalt string    `json:"-"`          // base64 encoded salt (32 bytes)
}

// RefreshToken представляет refresh token пользователя
type RefreshToken struct {
	ExpiresAt time.Time `json:"expires_at"` // время истечения
	CreatedAt time.Time `json:"created_at"` // время создания
	Token     string    `json:"token"`      // значение токена (base64, 32 bytes)
	UserID    string    `json:"user_id"`    // ID пользователя
}
