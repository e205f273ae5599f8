package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/argon2"
)

// Параметры Argon2id для хеширования паролей
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
)

// GenerateSalt генерирует криптографически случайную соль указанного размера
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	_, err := rand.Read(salt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	return salt, nil
}

// GenerateSaltBase64 генерирует криптографически случайную соль и возвращает ее в Base64
func GenerateSaltBase64() (string, error) {
	salt, err := GenerateSalt()
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(salt), nil
}

// HashPassword хеширует пароль через Argon2id с заданной солью.
// Возвращает hex-encoded строку для хранения в БД.
func HashPassword(password string, salt []byte) (string, error) {
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}
	if len(salt) != SaltSize {
		return "", fmt.Errorf("salt must be %d bytes, got %d", SaltSize, len(salt))
	}

	key := argon2.IDKey([]byte(password), salt, Argon2Time, Argon2Memory, Argon2Threads, Argon2KeyLen)
	return hex.EncodeToString(key), nil
}

// HashPasswordBase64Salt хеширует пароль с Base64-кодированной солью
func HashPasswordBase64Salt(password, saltBase64 string) (string, error) {
	salt, err := base64.StdEncoding.DecodeString(saltBase64)
	if err != nil {
		return "", fmt.Errorf("failed to decode salt: %w", err)
	}
	return HashPassword(password, salt)
}

// VerifyPassword проверяет пароль против сохраненного хеша.
// Сравнение за константное время.
func VerifyPassword(password, saltBase64, storedHash string) error {
	if storedHash == "" {
		return fmt.Errorf("stored hash cannot be empty")
	}

	computed, err := HashPasswordBase64Salt(password, saltBase64)
	if err != nil {
		return fmt.Errorf("failed to compute password hash: %w", err)
	}

	if subtle.ConstantTimeCompare([]byte(computed), []byte(storedHash)) != 1 {
		return fmt.Errorf("invalid password")
	}
	return nil
}
