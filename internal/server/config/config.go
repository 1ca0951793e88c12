// Package config собирает конфигурацию сервера из дефолтов,
// переменных окружения и флагов командной строки (в этом порядке,
// каждый следующий слой перекрывает предыдущий).
package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config содержит runtime настройки сервера
type Config struct {
	// Addr - адрес и порт HTTP сервера
	Addr string
	// DBPath - путь к файлу базы SQLite
	DBPath string
	// JWTSecret - HMAC секрет для подписи токенов (HS256)
	JWTSecret string
	// AccessTokenTTL - время жизни токена сессии
	AccessTokenTTL time.Duration
	// Seed - создавать ли демо-пользователя с примерами сделок
	Seed bool
	// LogLevel - уровень логирования: debug, info, warn, error
	LogLevel string
}

// loadDefaults заполняет Config дефолтами для разработки.
// JWT секрет по умолчанию небезопасен, в проде обязателен свой.
func (c *Config) loadDefaults() {
	c.Addr = ":8080"
	c.DBPath = "tradeify.db"
	c.JWTSecret = "dev-secret-change-me"
	c.AccessTokenTTL = 12 * time.Hour
	c.Seed = true
	c.LogLevel = "info"
}

// loadEnv перекрывает значения из переменных окружения
func (c *Config) loadEnv() error {
	if v := os.Getenv("TRADEIFY_ADDR"); v != "" {
		c.Addr = v
	}
	if v := os.Getenv("TRADEIFY_DB_PATH"); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv("TRADEIFY_JWT_SECRET"); v != "" {
		c.JWTSecret = v
	}
	if v := os.Getenv("TRADEIFY_TOKEN_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid TRADEIFY_TOKEN_TTL: %w", err)
		}
		c.AccessTokenTTL = d
	}
	if v := os.Getenv("TRADEIFY_SEED"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid TRADEIFY_SEED: %w", err)
		}
		c.Seed = b
	}
	if v := os.Getenv("TRADEIFY_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	return nil
}

// parseFlags перекрывает значения флагами командной строки
func (c *Config) parseFlags(args []string) error {
	fs := flag.NewFlagSet("tradeify-server", flag.ContinueOnError)

	fs.StringVar(&c.Addr, "a", c.Addr, "address and port to run server")
	fs.StringVar(&c.DBPath, "d", c.DBPath, "path to SQLite database file")
	fs.StringVar(&c.JWTSecret, "s", c.JWTSecret, "JWT signing secret")
	fs.DurationVar(&c.AccessTokenTTL, "t", c.AccessTokenTTL, "session token lifetime")
	fs.BoolVar(&c.Seed, "seed", c.Seed, "seed demo user with sample trades")
	fs.StringVar(&c.LogLevel, "l", c.LogLevel, "log level: debug, info, warn, error")

	return fs.Parse(args)
}

// Load собирает Config: дефолты, затем env, затем флаги
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.loadDefaults()
	if err := cfg.loadEnv(); err != nil {
		return nil, err
	}
	if err := cfg.parseFlags(args); err != nil {
		return nil, err
	}
	return cfg, nil
}
