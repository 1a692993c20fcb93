package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/nats-io/nats.go"

	natspub "github.com/phylax/contracts/events/nats"
	"github.com/phylax/contracts/internal/config"
	"github.com/phylax/contracts/schema"
)

// worker subscribes to every topic and reports events that break their contract.
func main() {
	cfg, err := config.LoadCLI()
	if err != nil {
		slog.Error("config error", slog.Any("error", err))
		os.Exit(1)
	}
	logger := cfg.NewLogger()
	if cfg.NATSURL == "" {
		logger.Error("config error", slog.Any("error", errors.New("NATS_URL is required")))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	nc, err := nats.Connect(cfg.NATSURL, nats.Name("phylax-contract-audit"), nats.MaxReconnects(-1))
	if err != nil {
		logger.Error("nats error", slog.Any("error", err))
		os.Exit(1)
	}
	defer nc.Drain()

	var seen, rejected atomic.Int64
	sub, err := natspub.Subscribe(nc, cfg.NATSSubjectPrefix, func(msg *nats.Msg) {
		seen.Add(1)
		evt, _, err := natspub.Check(msg)
		if err == nil {
			return
		}
		rejected.Add(1)
		attrs := []any{
			slog.String("subject", msg.Subject),
			slog.String("id", evt.ID),
			slog.String("type", string(evt.Type)),
		}
		if cve, ok := schema.AsValidationError(err); ok {
			attrs = append(attrs,
				slog.String("entity", cve.Entity),
				slog.String("field", cve.Field),
				slog.String("reason", cve.Reason))
		} else {
			attrs = append(attrs, slog.Any("error", err))
		}
		logger.Warn("contract violation", attrs...)
	})
	if err != nil {
		logger.Error("subscribe error", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("contract audit running", slog.String("subject", sub.Subject))

	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			logger.Info("contract audit stopped", slog.Int64("seen", seen.Load()), slog.Int64("rejected", rejected.Load()))
			return
		case <-ticker.C:
			logger.Info("contract audit", slog.Int64("seen", seen.Load()), slog.Int64("rejected", rejected.Load()))
		}
	}
}
