package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Store backends selectable through ZOO_STORE.
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreRedis    = "redis"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr            string        `env:"ZOO_ADDR" envDefault:":8080"`
	LogLevel        string        `env:"ZOO_LOG_LEVEL" envDefault:"info"`
	Store           string        `env:"ZOO_STORE" envDefault:"memory"`
	KeeperKey       string        `env:"ZOO_KEEPER_SIGNING_KEY"`
	ShutdownTimeout time.Duration `env:"ZOO_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	ReadTimeout     time.Duration `env:"ZOO_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout    time.Duration `env:"ZOO_WRITE_TIMEOUT" envDefault:"15s"`
	IdleTimeout     time.Duration `env:"ZOO_IDLE_TIMEOUT" envDefault:"60s"`
	OTelEndpoint    string        `env:"OTEL_ENDPOINT"`

	Database DatabaseConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
}

// DatabaseConfig configures the Postgres gateway. Driver is "pgx" or "postgres" (lib/pq).
type DatabaseConfig struct {
	URL          string        `env:"DATABASE_URL"`
	Driver       string        `env:"DATABASE_DRIVER" envDefault:"pgx"`
	MaxOpenConns int           `env:"DATABASE_MAX_OPEN_CONNS" envDefault:"10"`
	MaxIdleConns int           `env:"DATABASE_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLife  time.Duration `env:"DATABASE_CONN_MAX_LIFETIME" envDefault:"30m"`
}

// RedisConfig configures the Redis client. An empty URL disables Redis.
type RedisConfig struct {
	URL          string        `env:"REDIS_URL"`
	PoolSize     int           `env:"REDIS_POOL_SIZE" envDefault:"10"`
	MinIdleConns int           `env:"REDIS_MIN_IDLE_CONNS" envDefault:"2"`
	DialTimeout  time.Duration `env:"REDIS_DIAL_TIMEOUT" envDefault:"5s"`
	ReadTimeout  time.Duration `env:"REDIS_READ_TIMEOUT" envDefault:"3s"`
	WriteTimeout time.Duration `env:"REDIS_WRITE_TIMEOUT" envDefault:"3s"`
	// ConnectAttempts bounds startup pings while the server waits for Redis.
	ConnectAttempts int           `env:"REDIS_CONNECT_ATTEMPTS" envDefault:"3"`
	ConnectBackoff  time.Duration `env:"REDIS_CONNECT_BACKOFF" envDefault:"500ms"`
}

// KafkaConfig configures the audit producer. No brokers means audit events
// are only logged.
type KafkaConfig struct {
	Brokers    []string      `env:"KAFKA_BROKERS" envSeparator:","`
	AuditTopic string        `env:"KAFKA_AUDIT_TOPIC" envDefault:"zoo.audit"`
	Linger     time.Duration `env:"KAFKA_LINGER" envDefault:"10ms"`
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() (Server, error) {
	var cfg Server
	if err := env.Parse(&cfg); err != nil {
		return Server{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Server{}, err
	}
	return cfg, nil
}

// Validate checks cross-field requirements the env tags cannot express.
func (c Server) Validate() error {
	switch c.Store {
	case StoreMemory:
	case StorePostgres:
		if c.Database.URL == "" {
			return fmt.Errorf("ZOO_STORE=postgres requires DATABASE_URL")
		}
		if c.Database.Driver != "pgx" && c.Database.Driver != "postgres" {
			return fmt.Errorf("unsupported DATABASE_DRIVER %q", c.Database.Driver)
		}
	case StoreRedis:
		if c.Redis.URL == "" {
			return fmt.Errorf("ZOO_STORE=redis requires REDIS_URL")
		}
	default:
		return fmt.Errorf("unsupported ZOO_STORE %q", c.Store)
	}
	return nil
}

// Level maps LogLevel onto slog levels. Unknown values fall back to info.
func (c Server) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
