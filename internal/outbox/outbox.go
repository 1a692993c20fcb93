// Package outbox queues validated events between the gateway and the bus so that
// request handling never waits on the broker.
package outbox

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/phylax/contracts/events"
)

var ErrFull = errors.New("outbox is full")

type Store interface {
	FetchPending(ctx context.Context, limit int) ([]events.Event, error)
	MarkPublished(ctx context.Context, ids []string) error
}

// Memory is an in-process Store bounded by capacity. Events stay pending until
// marked published, so a failed publish is retried on the next poll.
type Memory struct {
	mu       sync.Mutex
	pending  []events.Event
	capacity int
}

func NewMemory(capacity int) *Memory {
	return &Memory{capacity: capacity}
}

func (m *Memory) Append(ctx context.Context, evt events.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.capacity > 0 && len(m.pending) >= m.capacity {
		return ErrFull
	}
	m.pending = append(m.pending, evt)
	return nil
}

func (m *Memory) FetchPending(ctx context.Context, limit int) ([]events.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if limit <= 0 || limit > len(m.pending) {
		limit = len(m.pending)
	}
	return append([]events.Event(nil), m.pending[:limit]...), nil
}

func (m *Memory) MarkPublished(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	done := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		done[id] = struct{}{}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.pending[:0]
	for _, evt := range m.pending {
		if _, ok := done[evt.ID]; !ok {
			kept = append(kept, evt)
		}
	}
	clear(m.pending[len(kept):])
	m.pending = kept
	return nil
}

func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.pending)
}

// Worker moves pending events from a Store to a Publisher. Flush calls are
// serialized, so an event is never fetched by two batches at once.
type Worker struct {
	store        Store
	publisher    events.Publisher
	pollInterval time.Duration
	batchSize    int
	drainTimeout time.Duration
	logger       *slog.Logger

	mu sync.Mutex
}

type WorkerOptions struct {
	PollInterval time.Duration
	BatchSize    int
	// DrainTimeout bounds the final flush Start runs once its context is done.
	DrainTimeout time.Duration
	Logger       *slog.Logger
}

func NewWorker(store Store, publisher events.Publisher, opts WorkerOptions) *Worker {
	w := &Worker{
		store:        store,
		publisher:    publisher,
		pollInterval: opts.PollInterval,
		batchSize:    opts.BatchSize,
		drainTimeout: opts.DrainTimeout,
		logger:       opts.Logger,
	}
	if w.logger == nil {
		w.logger = slog.Default()
	}
	if w.pollInterval <= 0 {
		w.pollInterval = time.Second
	}
	if w.batchSize <= 0 {
		w.batchSize = 50
	}
	if w.drainTimeout <= 0 {
		w.drainTimeout = 5 * time.Second
	}
	return w
}

// Start polls until ctx is done, drains what is still pending within the
// drain timeout, then returns ctx.Err().
func (w *Worker) Start(ctx context.Context) error {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.drain()
			return ctx.Err()
		case <-ticker.C:
			if _, err := w.Flush(ctx); err != nil {
				w.logger.Error("outbox fetch failed", slog.Any("error", err))
			}
		}
	}
}

func (w *Worker) drain() {
	ctx, cancel := context.WithTimeout(context.Background(), w.drainTimeout)
	defer cancel()
	for ctx.Err() == nil {
		n, err := w.Flush(ctx)
		if err != nil {
			w.logger.Error("outbox drain failed", slog.Any("error", err))
			return
		}
		if n == 0 {
			return
		}
	}
}

// Flush publishes one batch and reports how many events went out.
func (w *Worker) Flush(ctx context.Context) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	evts, err := w.store.FetchPending(ctx, w.batchSize)
	if err != nil {
		return 0, err
	}
	if len(evts) == 0 {
		return 0, nil
	}
	published := make([]string, 0, len(evts))
	for _, evt := range evts {
		if err := w.publisher.Publish(ctx, evt); err != nil {
			w.logger.Warn("publish failed",
				slog.String("id", evt.ID),
				slog.String("type", string(evt.Type)),
				slog.String("topic", evt.Topic),
				slog.Any("error", err))
			continue
		}
		published = append(published, evt.ID)
	}
	if err := w.store.MarkPublished(ctx, published); err != nil {
		w.logger.Error("mark published failed", slog.Any("error", err))
		return 0, err
	}
	return len(published), nil
}
