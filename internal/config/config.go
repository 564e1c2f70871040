package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Бэкенды блокировки бронирований
const (
	LockBackendMemory = "memory"
	LockBackendRedis  = "redis"
)

// ErrInvalidConfig возвращается, когда конфигурация не проходит валидацию
var ErrInvalidConfig = errors.New("invalid config")

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Calendar  CalendarConfig  `toml:"calendar"`
	Booking   BookingConfig   `toml:"booking"`
	Redis     RedisConfig     `toml:"redis"`
	Database  DatabaseConfig  `toml:"database"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int    `toml:"http_port"`
	APIKey          string `toml:"api_key"`
	ReadTimeout     int    `toml:"read_timeout"`
	WriteTimeout    int    `toml:"write_timeout"`
	IdleTimeout     int    `toml:"idle_timeout"`
	ShutdownTimeout int    `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig настройки Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// CalendarConfig настройки Google Calendar
type CalendarConfig struct {
	CalendarID  string `toml:"calendar_id"`
	ClientEmail string `toml:"client_email"`
	PrivateKey  string `toml:"private_key"`
	// Endpoint переопределяет базовый URL API (пусто - боевой)
	Endpoint string `toml:"endpoint"`
	Timeout  int    `toml:"timeout"`
}

// BookingConfig настройки защиты от двойного бронирования
type BookingConfig struct {
	LockBackend string `toml:"lock_backend"`
	LockTTL     int    `toml:"lock_ttl"`
	// LockWait в миллисекундах
	LockWait int `toml:"lock_wait"`
}

// RedisConfig настройки Redis для распределенной блокировки
type RedisConfig struct {
	URL string `toml:"url"`
}

// DatabaseConfig настройки журнала встреч в Postgres
type DatabaseConfig struct {
	Enabled         bool   `toml:"enabled"`
	URL             string `toml:"url"`
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// RateLimitConfig ограничение запросов к защищенным эндпоинтам на клиента
type RateLimitConfig struct {
	Enabled           bool    `toml:"enabled"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
	Burst             int     `toml:"burst"`
	// доверять X-Forwarded-For / X-Real-IP, только если сервис стоит за прокси
	TrustProxy bool `toml:"trust_proxy"`
}

// DSN возвращает строку подключения к Postgres
func (c DatabaseConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        3000,
			ReadTimeout:     15,
			WriteTimeout:    30,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "meeting-service",
		},
		Calendar: CalendarConfig{
			CalendarID: "primary",
			Timeout:    10,
		},
		Booking: BookingConfig{
			LockBackend: LockBackendMemory,
			LockTTL:     30,
			LockWait:    5000,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		RateLimit: RateLimitConfig{
			Enabled:           true,
			RequestsPerSecond: 5,
			Burst:             10,
		},
	}
}

// Load читает конфигурацию из TOML файла, затем применяет .env и переменные окружения.
// Отсутствующий файл не ошибка: используются значения по умолчанию.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, cfg); err != nil {
				return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to stat config file %s: %w", path, err)
		}
	}

	// .env не обязателен; уже выставленные переменные окружения не перезаписываются
	_ = godotenv.Load()

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv("PORT"); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: PORT=%q is not a number", ErrInvalidConfig, v)
		}
		c.Server.HTTPPort = port
	}
	setString(&c.Server.APIKey, "API_KEY")
	setString(&c.Calendar.CalendarID, "CALENDAR_ID")
	setString(&c.Calendar.ClientEmail, "GOOGLE_CLIENT_EMAIL")
	setString(&c.Calendar.PrivateKey, "GOOGLE_PRIVATE_KEY")
	setString(&c.Redis.URL, "REDIS_URL")
	setString(&c.Logs.Level, "LOG_LEVEL")
	if v, ok := os.LookupEnv("DATABASE_URL"); ok && v != "" {
		c.Database.URL = v
		c.Database.Enabled = true
	}

	// Ключ из env обычно приходит с экранированными переводами строк
	c.Calendar.PrivateKey = strings.ReplaceAll(c.Calendar.PrivateKey, `\n`, "\n")
	return nil
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	if c.Server.APIKey == "" {
		return fmt.Errorf("%w: API_KEY is required", ErrInvalidConfig)
	}
	if c.Calendar.ClientEmail == "" || c.Calendar.PrivateKey == "" {
		return fmt.Errorf("%w: GOOGLE_CLIENT_EMAIL and GOOGLE_PRIVATE_KEY are required", ErrInvalidConfig)
	}
	if c.Calendar.CalendarID == "" {
		return fmt.Errorf("%w: calendar id is empty", ErrInvalidConfig)
	}
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: invalid http port %d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Calendar.Timeout <= 0 {
		return fmt.Errorf("%w: calendar timeout must be positive", ErrInvalidConfig)
	}

	switch c.Booking.LockBackend {
	case LockBackendMemory:
	case LockBackendRedis:
		if c.Redis.URL == "" {
			return fmt.Errorf("%w: redis url is required for redis lock backend", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown lock backend %q", ErrInvalidConfig, c.Booking.LockBackend)
	}

	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("%w: rate limit requires positive rps and burst", ErrInvalidConfig)
	}
	return nil
}
