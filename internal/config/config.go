package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса
type Config struct {
	Server      ServerConfig      `toml:"server"`
	ParkingCore ParkingCoreConfig `toml:"parkingcore"`
	Database    DatabaseConfig    `toml:"database"`
	Logs        LogsConfig        `toml:"logs"`
	Metrics     MetricsConfig     `toml:"metrics"`
	Sync        SyncConfig        `toml:"sync"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// ParkingCoreConfig настройки клиента ParkingCore
type ParkingCoreConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // seconds

	// ServiceToken сервисный токен для фонового обновления бронирований.
	// Пользовательские запросы идут с токеном вызывающего.
	ServiceToken string `toml:"service_token"`

	// QuoteCacheTTL время жизни закэшированных котировок, секунды
	QuoteCacheTTL int `toml:"quote_cache_ttl"`
}

// DatabaseConfig настройки локального зеркала бронирований
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // seconds
}

// DSN возвращает строку подключения к PostgreSQL.
// Переменная окружения DATABASE_URL имеет приоритет над конфигом.
func (d DatabaseConfig) DSN() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// SyncConfig настройки фонового обновления бронирований
type SyncConfig struct {
	Enabled  bool   `toml:"enabled"`
	Schedule string `toml:"schedule"` // cron выражение
}

// Load читает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		ParkingCore: ParkingCoreConfig{
			Timeout:       10,
			QuoteCacheTTL: 30,
		},
		Database: DatabaseConfig{
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path: "/metrics",
		},
		Sync: SyncConfig{
			Schedule: "@every 5m",
		},
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if cfg.ParkingCore.URL == "" {
		return nil, fmt.Errorf("config: parkingcore.url is required")
	}

	return cfg, nil
}
