package outbox

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/phylax/contracts/events"
)

type flakyPublisher struct {
	mu       sync.Mutex
	failIDs  map[string]bool
	received []events.Event
}

func (p *flakyPublisher) Publish(ctx context.Context, evt events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.failIDs[evt.ID] {
		delete(p.failIDs, evt.ID)
		return errors.New("broker unavailable")
	}
	p.received = append(p.received, evt)
	return nil
}

func (p *flakyPublisher) Close() error { return nil }

func (p *flakyPublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.received)
}

func quietLogger() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func TestMemoryCapacity(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(2)
	for _, id := range []string{"e1", "e2"} {
		if err := m.Append(ctx, events.Event{ID: id}); err != nil {
			t.Fatalf("append %s: %v", id, err)
		}
	}
	if err := m.Append(ctx, events.Event{ID: "e3"}); !errors.Is(err, ErrFull) {
		t.Fatalf("expected ErrFull, got %v", err)
	}
	if err := m.MarkPublished(ctx, []string{"e1"}); err != nil {
		t.Fatalf("mark: %v", err)
	}
	pending, _ := m.FetchPending(ctx, 10)
	if len(pending) != 1 || pending[0].ID != "e2" {
		t.Fatalf("unexpected pending %+v", pending)
	}
}

func TestFlushRetriesFailedEvents(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(0)
	for _, id := range []string{"e1", "e2", "e3"} {
		_ = m.Append(ctx, events.Event{ID: id, Type: events.MissionCreated, Topic: events.Topics.MissionEvents})
	}
	pub := &flakyPublisher{failIDs: map[string]bool{"e2": true}}
	w := NewWorker(m, pub, WorkerOptions{BatchSize: 10, Logger: quietLogger()})

	n, err := w.Flush(ctx)
	if err != nil || n != 2 {
		t.Fatalf("first flush = %d, %v", n, err)
	}
	if m.Len() != 1 {
		t.Fatalf("expected the failed event to stay pending, got %d", m.Len())
	}
	n, err = w.Flush(ctx)
	if err != nil || n != 1 || m.Len() != 0 {
		t.Fatalf("second flush = %d, %v (pending %d)", n, err, m.Len())
	}
	if pub.received[2].ID != "e2" {
		t.Fatalf("unexpected publish order %+v", pub.received)
	}
}

func TestFlushBatchSize(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(0)
	for _, id := range []string{"e1", "e2", "e3"} {
		_ = m.Append(ctx, events.Event{ID: id})
	}
	w := NewWorker(m, &flakyPublisher{}, WorkerOptions{BatchSize: 2, Logger: quietLogger()})
	if n, _ := w.Flush(ctx); n != 2 || m.Len() != 1 {
		t.Fatalf("expected one batch of 2, got %d (pending %d)", n, m.Len())
	}
}

func TestStartStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	m := NewMemory(0)
	_ = m.Append(ctx, events.Event{ID: "e1"})
	pub := &flakyPublisher{}
	w := NewWorker(m, pub, WorkerOptions{PollInterval: 5 * time.Millisecond, Logger: quietLogger()})

	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	deadline := time.Now().Add(2 * time.Second)
	for pub.count() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	cancel()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if pub.count() != 1 {
		t.Fatalf("expected the event published, got %d", pub.count())
	}
}

// slowPublisher holds every publish until release is closed.
type slowPublisher struct {
	flakyPublisher
	entered chan struct{}
	release chan struct{}
}

func (p *slowPublisher) Publish(ctx context.Context, evt events.Event) error {
	select {
	case p.entered <- struct{}{}:
	default:
	}
	<-p.release
	return p.flakyPublisher.Publish(ctx, evt)
}

func TestConcurrentFlushPublishesOnce(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(0)
	_ = m.Append(ctx, events.Event{ID: "e1"})
	pub := &slowPublisher{entered: make(chan struct{}, 1), release: make(chan struct{})}
	w := NewWorker(m, pub, WorkerOptions{Logger: quietLogger()})

	var wg sync.WaitGroup
	counts := make([]int, 2)
	for i := range counts {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			counts[i], _ = w.Flush(ctx)
		}(i)
	}
	<-pub.entered
	// Give the second Flush time to reach the store while the first is mid-publish.
	time.Sleep(20 * time.Millisecond)
	close(pub.release)
	wg.Wait()

	if got := pub.count(); got != 1 {
		t.Fatalf("event published %d times", got)
	}
	if counts[0]+counts[1] != 1 {
		t.Fatalf("flush counts = %v", counts)
	}
	if m.Len() != 0 {
		t.Fatalf("expected nothing pending, got %d", m.Len())
	}
}

func TestStartDrainsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	m := NewMemory(0)
	for _, id := range []string{"e1", "e2", "e3"} {
		_ = m.Append(ctx, events.Event{ID: id})
	}
	pub := &flakyPublisher{}
	// The ticker never fires, so only the drain can publish.
	w := NewWorker(m, pub, WorkerOptions{PollInterval: time.Hour, BatchSize: 2, Logger: quietLogger()})

	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()
	cancel()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if pub.count() != 3 || m.Len() != 0 {
		t.Fatalf("drain published %d, pending %d", pub.count(), m.Len())
	}
}
