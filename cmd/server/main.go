package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nats-io/nats.go"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	"github.com/phylax/contracts/events"
	natspub "github.com/phylax/contracts/events/nats"
	"github.com/phylax/contracts/internal/auth"
	"github.com/phylax/contracts/internal/config"
	"github.com/phylax/contracts/internal/outbox"
	"github.com/phylax/contracts/internal/transport/grpcapi"
	"github.com/phylax/contracts/internal/transport/httpapi"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config error", slog.Any("error", err))
		os.Exit(1)
	}
	logger := cfg.NewLogger()
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var publisher events.Publisher = events.NoopPublisher{}
	if cfg.NATSEnabled {
		natsPublisher, err := natspub.New(cfg.NATSURL, cfg.NATSSubjectPrefix,
			nats.Name("phylax-contract-gateway"),
			nats.MaxReconnects(-1),
		)
		if err != nil {
			logger.Error("nats error", slog.Any("error", err))
			os.Exit(1)
		}
		publisher = natsPublisher
	}
	defer publisher.Close()

	queue := outbox.NewMemory(cfg.OutboxCapacity)
	worker := outbox.NewWorker(queue, publisher, outbox.WorkerOptions{
		PollInterval: cfg.OutboxInterval,
		BatchSize:    cfg.OutboxBatch,
		DrainTimeout: cfg.ShutdownTimeout,
		Logger:       logger,
	})

	authenticator := auth.New(cfg.JWTSecret, cfg.JWTTTL)
	httpServer := &http.Server{
		Addr: cfg.HTTPAddr,
		Handler: httpapi.NewServer(queue, authenticator, httpapi.Options{
			RateLimitRPS:   cfg.RateLimitRPS,
			RateLimitBurst: cfg.RateLimitBurst,
			Logger:         logger,
		}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	var grpcServer *grpc.Server
	var grpcListener net.Listener
	if cfg.GRPCEnabled {
		grpcListener, err = net.Listen("tcp", cfg.GRPCAddr)
		if err != nil {
			logger.Error("grpc listen error", slog.Any("error", err))
			os.Exit(1)
		}
		grpcServer = grpcapi.NewServer(queue, authenticator, logger)
	}

	g, ctx := errgroup.WithContext(ctx)

	// The worker outlives the listeners so it can drain what they accepted.
	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	workerDone := make(chan struct{})

	g.Go(func() error {
		logger.Info("http listening", slog.String("addr", cfg.HTTPAddr))
		err := httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	if grpcServer != nil {
		g.Go(func() error {
			logger.Info("grpc listening", slog.String("addr", cfg.GRPCAddr))
			err := grpcServer.Serve(grpcListener)
			if err != nil && !errors.Is(err, grpc.ErrServerStopped) {
				return err
			}
			return nil
		})
	}

	g.Go(func() error {
		logger.Info("outbox worker running",
			slog.Duration("interval", cfg.OutboxInterval),
			slog.Int("batch", cfg.OutboxBatch),
			slog.Bool("nats", cfg.NATSEnabled))
		defer close(workerDone)
		err := worker.Start(workerCtx)
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil
		}
		return err
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		_ = httpServer.Shutdown(shutdownCtx)
		if grpcServer != nil {
			grpcServer.GracefulStop()
		}
		stopWorker()
		<-workerDone
		if left := queue.Len(); left > 0 {
			logger.Warn("events dropped on shutdown", slog.Int("count", left))
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("server error", slog.Any("error", err))
		os.Exit(1)
	}
}
