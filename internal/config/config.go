package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config конфигурация шлюза
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	ClinicAPI ClinicAPIConfig `toml:"clinic_api"`
	Database  DatabaseConfig  `toml:"database"`
	Redis     RedisConfig     `toml:"redis"`
	Calendar  CalendarConfig  `toml:"calendar"`
	Sessions  SessionsConfig  `toml:"sessions"`
}

// ServerConfig параметры HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// ClinicAPIConfig адрес бэкенда клиники (таймаут в секундах)
type ClinicAPIConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// DatabaseConfig хранилище сессий; при Enabled = false сессии живут в памяти процесса
type DatabaseConfig struct {
	Enabled         bool   `toml:"enabled"`
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

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// RedisConfig кэш каталога услуг (TTL в секундах)
type RedisConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	Key      string `toml:"key"`
	TTL      int    `toml:"ttl"`
}

// CalendarConfig отображение расписания врача
// Titles: язык -> ключ подписи -> текст
type CalendarConfig struct {
	Timezone        string                       `toml:"timezone"`
	DefaultLanguage string                       `toml:"default_language"`
	PrimaryColor    string                       `toml:"primary_color"`
	SecondaryColor  string                       `toml:"secondary_color"`
	Titles          map[string]map[string]string `toml:"titles"`
}

// Location часовой пояс недели календаря
func (c CalendarConfig) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

// SessionsConfig очистка неактивных сессий (в минутах); 0 отключает очистку
type SessionsConfig struct {
	IdleTTL         int `toml:"idle_ttl"`
	CleanupInterval int `toml:"cleanup_interval"`
}

// Load читает конфигурацию из TOML файла и переопределяет секреты из окружения
// Файл .env необязателен
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	cfg.setDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyEnv переопределяет значения переменными окружения
func (c *Config) applyEnv() error {
	overrideString(&c.ClinicAPI.URL, "CLINIC_API_URL")
	overrideString(&c.Database.Host, "DB_HOST")
	overrideString(&c.Database.User, "DB_USER")
	overrideString(&c.Database.Password, "DB_PASSWORD")
	overrideString(&c.Database.DBName, "DB_NAME")
	overrideString(&c.Redis.Addr, "REDIS_ADDR")
	overrideString(&c.Redis.Password, "REDIS_PASSWORD")
	overrideString(&c.Logs.Level, "LOG_LEVEL")

	if err := overrideInt(&c.Server.HTTPPort, "HTTP_PORT"); err != nil {
		return err
	}
	return overrideInt(&c.Database.Port, "DB_PORT")
}

func (c *Config) setDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "dental-scheduling"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.ClinicAPI.Timeout == 0 {
		c.ClinicAPI.Timeout = 10
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Redis.TTL == 0 {
		c.Redis.TTL = 300
	}
	if c.Calendar.DefaultLanguage == "" {
		c.Calendar.DefaultLanguage = "en"
	}
}

func (c *Config) validate() error {
	if c.ClinicAPI.URL == "" {
		return errors.New("clinic_api.url is required")
	}
	if c.Database.Enabled && (c.Database.Host == "" || c.Database.DBName == "") {
		return errors.New("database.host and database.dbname are required when database is enabled")
	}
	if c.Redis.Enabled && c.Redis.Addr == "" {
		return errors.New("redis.addr is required when redis is enabled")
	}
	if _, err := c.Calendar.Location(); err != nil {
		return fmt.Errorf("invalid calendar.timezone %q: %w", c.Calendar.Timezone, err)
	}
	return nil
}

func overrideString(target *string, key string) {
	if value := os.Getenv(key); value != "" {
		*target = value
	}
}

func overrideInt(target *int, key string) error {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*target = parsed
	return nil
}
