// Package config загружает конфигурацию сервера: дефолты,
// опциональный teamsync.yaml, переменные окружения TEAMSYNC_*.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config описывает полную конфигурацию сервера
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Sync      SyncConfig      `mapstructure:"sync"`
	Events    EventsConfig    `mapstructure:"events"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Log       LogConfig       `mapstructure:"log"`
}

// ServerConfig - настройки HTTP сервера
type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`             // адрес listen, например :8080
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"` // таймаут graceful shutdown
}

// StorageConfig - настройки хранилища
type StorageConfig struct {
	Path string `mapstructure:"path"` // путь к файлу SQLite
}

// AuthConfig - настройки аутентификации
type AuthConfig struct {
	JWTSecret  string        `mapstructure:"jwt_secret"`  // секрет подписи JWT (обязателен)
	AccessTTL  time.Duration `mapstructure:"access_ttl"`  // время жизни access token
	RefreshTTL time.Duration `mapstructure:"refresh_ttl"` // время жизни refresh token
}

// SyncConfig - настройки ленты изменений
type SyncConfig struct {
	DefaultLimit int `mapstructure:"default_limit"` // размер страницы без параметра limit
	MaxLimit     int `mapstructure:"max_limit"`     // потолок limit
}

// EventsConfig - настройки SSE
type EventsConfig struct {
	PollInterval time.Duration `mapstructure:"poll_interval"` // период опроса ленты
}

// RateLimitConfig - настройки rate limiter
type RateLimitConfig struct {
	RPS   float64 `mapstructure:"rps"`   // запросов в секунду на клиента
	Burst int     `mapstructure:"burst"` // размер burst
}

// LogConfig - настройки логирования
type LogConfig struct {
	Level      string `mapstructure:"level"`        // debug | info | warn | error
	File       string `mapstructure:"file"`         // путь к файлу лога; пусто = stdout
	MaxSizeMB  int    `mapstructure:"max_size_mb"`  // размер файла до ротации
	MaxBackups int    `mapstructure:"max_backups"`  // сколько старых файлов хранить
	MaxAgeDays int    `mapstructure:"max_age_days"` // сколько дней хранить
}

// Load читает конфигурацию: дефолты -> файл (если есть) -> env.
// configPath может быть пустым, тогда teamsync.yaml ищется в
// текущей директории.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("TEAMSYNC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("teamsync")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		// Отсутствие файла при поиске не ошибка: работаем на
		// дефолтах и env. Явно заданный файл обязан читаться.
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

// Validate проверяет обязательные поля и осмысленность значений
func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return errors.New("auth.jwt_secret is required")
	}
	if c.Server.Addr == "" {
		return errors.New("server.addr is required")
	}
	if c.Sync.DefaultLimit <= 0 || c.Sync.MaxLimit <= 0 {
		return errors.New("sync limits must be positive")
	}
	if c.Sync.DefaultLimit > c.Sync.MaxLimit {
		return errors.New("sync.default_limit must not exceed sync.max_limit")
	}
	if c.Events.PollInterval <= 0 {
		return errors.New("events.poll_interval must be positive")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("storage.path", "teamsync.db")
	// Пустые дефолты регистрируют ключи, иначе Unmarshal
	// не увидит значения, пришедшие только из env
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("log.file", "")
	v.SetDefault("auth.access_ttl", 15*time.Minute)
	v.SetDefault("auth.refresh_ttl", 720*time.Hour)
	v.SetDefault("sync.default_limit", 100)
	v.SetDefault("sync.max_limit", 500)
	v.SetDefault("events.poll_interval", 2*time.Second)
	v.SetDefault("ratelimit.rps", 10.0)
	v.SetDefault("ratelimit.burst", 20)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.max_size_mb", 100)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 28)
}
