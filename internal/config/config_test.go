package config

import (
	"log/slog"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTPAddr != ":8080" || cfg.JWTTTL != time.Hour || cfg.NATSEnabled || cfg.NATSSubjectPrefix != "phylax" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if !cfg.GRPCEnabled || cfg.GRPCAddr != ":9090" {
		t.Fatalf("unexpected grpc defaults: %+v", cfg)
	}
	if cfg.RateLimitRPS != 20 || cfg.RateLimitBurst != 40 || cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("unexpected limits: %+v", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("HTTP_ADDR", ":9000")
	t.Setenv("JWT_TTL", "15m")
	t.Setenv("NATS_ENABLED", "true")
	t.Setenv("NATS_URL", "nats://bus:4222")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("GRPC_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTPAddr != ":9000" || cfg.JWTTTL != 15*time.Minute || !cfg.NATSEnabled || cfg.NATSURL != "nats://bus:4222" || cfg.GRPCEnabled {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error without JWT_SECRET")
	}
	if _, err := LoadCLI(); err != nil {
		t.Fatalf("cli config should not need a secret: %v", err)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")

	t.Setenv("JWT_TTL", "soon")
	if _, err := Load(); err == nil {
		t.Fatalf("expected parse error for JWT_TTL")
	}
	t.Setenv("JWT_TTL", "1h")

	t.Setenv("LOG_LEVEL", "loud")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for LOG_LEVEL")
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{"debug": slog.LevelDebug, "INFO": slog.LevelInfo, "warn": slog.LevelWarn, "error": slog.LevelError}
	for in, want := range cases {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Fatalf("ParseLevel(%q) = %v, %v", in, got, err)
		}
	}
}
