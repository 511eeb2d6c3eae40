// Package config provides configuration loading and management using koanf.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	DefaultServerPort     = 8080
	DefaultMaxRequestSize = 1 << 20

	DefaultLogFileMaxSizeMB  = 100
	DefaultLogFileMaxBackups = 3
	DefaultLogFileMaxAgeDays = 28
)

// Config is the root configuration structure.
type Config struct {
	App     AppConfig     `koanf:"app"     validate:"required"`
	Server  ServerConfig  `koanf:"server"  validate:"required"`
	Log     LogConfig     `koanf:"log"     validate:"required"`
	Storage StorageConfig `koanf:"storage" validate:"required"`
	Lock    LockConfig    `koanf:"lock"    validate:"required"`
	Email   EmailConfig   `koanf:"email"   validate:"required"`
	CORS    CORSConfig    `koanf:"cors"`
	Metrics MetricsConfig `koanf:"metrics"`
	Swagger SwaggerConfig `koanf:"swagger"`
}

type AppConfig struct {
	Name        string `koanf:"name"        validate:"required"`
	Version     string `koanf:"version"     validate:"required"`
	Environment string `koanf:"environment" validate:"required,oneof=local dev qa prod test"`
}

type ServerConfig struct {
	Port            int           `koanf:"port"             validate:"required,min=1,max=65535"`
	Host            string        `koanf:"host"             validate:"required"`
	ReadTimeout     time.Duration `koanf:"read_timeout"     validate:"required,min=1s"`
	WriteTimeout    time.Duration `koanf:"write_timeout"    validate:"required,min=1s"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"     validate:"required,min=1s"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"required,min=1s"`
	MaxRequestSize  int64         `koanf:"max_request_size" validate:"required,min=1"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type LogConfig struct {
	Level  string        `koanf:"level"  validate:"required,oneof=trace debug info warn error"`
	Format string        `koanf:"format" validate:"required,oneof=json text pretty"`
	File   LogFileConfig `koanf:"file"`
}

type LogFileConfig struct {
	Enabled    bool   `koanf:"enabled"`
	Path       string `koanf:"path"        validate:"required_if=Enabled true"`
	Level      string `koanf:"level"       validate:"omitempty,oneof=trace debug info warn error"`
	MaxSizeMB  int    `koanf:"max_size"    validate:"omitempty,min=1,max=1024"`
	MaxBackups int    `koanf:"max_backups" validate:"omitempty,min=0,max=100"`
	MaxAgeDays int    `koanf:"max_age"     validate:"omitempty,min=0,max=365"`
	Compress   bool   `koanf:"compress"`
}

// StorageConfig selects the quote store backend.
type StorageConfig struct {
	Driver   string         `koanf:"driver"   validate:"required,oneof=memory sqlite dynamodb"`
	SQLite   SQLiteConfig   `koanf:"sqlite"`
	DynamoDB DynamoDBConfig `koanf:"dynamodb"`
}

type SQLiteConfig struct {
	Path string `koanf:"path"`
}

type DynamoDBConfig struct {
	Region          string `koanf:"region"`
	Endpoint        string `koanf:"endpoint"          validate:"omitempty,url"`
	Table           string `koanf:"table"`
	AccessKeyID     string `koanf:"access_key_id"`
	SecretAccessKey string `koanf:"secret_access_key"`
}

// LockConfig selects how reference allocation is serialized.
type LockConfig struct {
	Driver  string        `koanf:"driver"  validate:"required,oneof=local redis"`
	Timeout time.Duration `koanf:"timeout" validate:"required,min=1ms"`
	Redis   RedisConfig   `koanf:"redis"`
}

type RedisConfig struct {
	Addr     string        `koanf:"addr"`
	Password string        `koanf:"password"`
	DB       int           `koanf:"db"       validate:"min=0,max=15"`
	TTL      time.Duration `koanf:"ttl"`
}

// EmailConfig selects the new-quote notifier.
type EmailConfig struct {
	Driver string     `koanf:"driver" validate:"required,oneof=log smtp"`
	From   string     `koanf:"from"   validate:"omitempty,email"`
	To     []string   `koanf:"to"     validate:"dive,email"`
	SMTP   SMTPConfig `koanf:"smtp"`
}

type SMTPConfig struct {
	Host     string        `koanf:"host"`
	Port     int           `koanf:"port"     validate:"omitempty,min=1,max=65535"`
	Username string        `koanf:"username"`
	Password string        `koanf:"password"`
	Timeout  time.Duration `koanf:"timeout"`
}

type CORSConfig struct {
	Origins []string `koanf:"origins"`
}

type MetricsConfig struct {
	Enabled bool   `koanf:"enabled"`
	Path    string `koanf:"path"    validate:"required_if=Enabled true"`
}

type SwaggerConfig struct {
	Enabled bool `koanf:"enabled"`
}

func defaults() map[string]any {
	return map[string]any{
		"app.name":        "quote-service",
		"app.version":     "dev",
		"app.environment": "local",

		"server.port":             DefaultServerPort,
		"server.host":             "0.0.0.0",
		"server.read_timeout":     "30s",
		"server.write_timeout":    "30s",
		"server.idle_timeout":     "120s",
		"server.shutdown_timeout": "10s",
		"server.max_request_size": DefaultMaxRequestSize,

		"log.level":            "info",
		"log.format":           "json",
		"log.file.enabled":     false,
		"log.file.path":        "logs/quote-service.log",
		"log.file.max_size":    DefaultLogFileMaxSizeMB,
		"log.file.max_backups": DefaultLogFileMaxBackups,
		"log.file.max_age":     DefaultLogFileMaxAgeDays,
		"log.file.compress":    true,

		"storage.driver":          "memory",
		"storage.sqlite.path":     "data/quotes.db",
		"storage.dynamodb.region": "us-east-1",
		"storage.dynamodb.table":  "quotes",

		"lock.driver":     "local",
		"lock.timeout":    "5s",
		"lock.redis.addr": "localhost:6379",
		"lock.redis.db":   0,
		"lock.redis.ttl":  "10s",

		"email.driver":       "log",
		"email.from":         "quotes@example.com",
		"email.smtp.port":    587,
		"email.smtp.timeout": "10s",

		"metrics.enabled": true,
		"metrics.path":    "/metrics",

		"swagger.enabled": true,
	}
}

// Load reads configuration in order of increasing precedence:
// defaults, configs/base.yaml, configs/<profile>.yaml, APP_* env vars.
// Env vars map APP_STORAGE_DRIVER to storage.driver.
func Load(profile string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if err := loadFileIfExists(k, "configs/base.yaml"); err != nil {
		return nil, fmt.Errorf("loading base config: %w", err)
	}

	if profile != "" {
		profilePath := fmt.Sprintf("configs/%s.yaml", profile)
		if err := loadFileIfExists(k, profilePath); err != nil {
			return nil, fmt.Errorf("loading profile config %q: %w", profile, err)
		}
	}

	err := k.Load(env.ProviderWithValue("APP_", ".", envKeyValue), nil)
	if err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return &cfg, nil
}

// listKeys are the slice settings whose env values are comma-separated.
var listKeys = map[string]struct{}{
	"cors.origins": {},
	"email.to":     {},
}

// envKeyValue maps APP_CORS_ORIGINS to cors.origins and splits list values.
func envKeyValue(key, value string) (string, any) {
	k := strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(key, "APP_")), "_", ".")
	if _, ok := listKeys[k]; !ok {
		return k, value
	}

	items := make([]string, 0, strings.Count(value, ",")+1)
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return k, items
}

// loadFileIfExists loads a YAML config file if it exists.
func loadFileIfExists(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return k.Load(file.Provider(path), yaml.Parser())
}
