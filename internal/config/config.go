package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr        string        `env:"HTTP_ADDR" envDefault:":8080"`
	GRPCEnabled     bool          `env:"GRPC_ENABLED" envDefault:"true"`
	GRPCAddr        string        `env:"GRPC_ADDR" envDefault:":9090"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`

	JWTSecret string        `env:"JWT_SECRET"`
	JWTTTL    time.Duration `env:"JWT_TTL" envDefault:"1h"`

	NATSEnabled       bool   `env:"NATS_ENABLED" envDefault:"false"`
	NATSURL           string `env:"NATS_URL" envDefault:"nats://127.0.0.1:4222"`
	NATSSubjectPrefix string `env:"NATS_SUBJECT_PREFIX" envDefault:"phylax"`

	OutboxInterval time.Duration `env:"OUTBOX_POLL_INTERVAL" envDefault:"1s"`
	OutboxBatch    int           `env:"OUTBOX_BATCH_SIZE" envDefault:"50"`
	OutboxCapacity int           `env:"OUTBOX_CAPACITY" envDefault:"10000"`

	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"20"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"40"`
}

// Load reads the gateway configuration. A .env file in the working directory is
// applied first when present; real environment variables win over it.
func Load() (Config, error) {
	cfg, err := load()
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate(true)
}

// LoadCLI is Load without the JWT secret requirement.
func LoadCLI() (Config, error) {
	cfg, err := load()
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate(false)
}

func load() (Config, error) {
	var cfg Config
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return cfg, fmt.Errorf("load .env: %w", err)
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func (c Config) Validate(requireJWT bool) error {
	if requireJWT && c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be positive")
	}
	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
		return fmt.Errorf("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}
	if c.OutboxBatch <= 0 || c.OutboxCapacity <= 0 {
		return fmt.Errorf("OUTBOX_BATCH_SIZE and OUTBOX_CAPACITY must be positive")
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// ParseLevel maps debug, info, warn and error to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("LOG_LEVEL %q is not one of debug, info, warn, error", s)
	}
}

// NewLogger returns the JSON logger the binaries share.
func (c Config) NewLogger() *slog.Logger {
	level, _ := ParseLevel(c.LogLevel)
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
