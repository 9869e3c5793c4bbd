package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/commerce-api/internal/core/ports"
)

type recordingWriter struct {
	mu      sync.Mutex
	written []ports.Snapshot
	fail    map[string]bool
}

func (w *recordingWriter) Write(_ context.Context, snap ports.Snapshot) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.fail[snap.Kind] {
		return errors.New("sink unavailable")
	}
	w.written = append(w.written, snap)
	return nil
}

func (w *recordingWriter) last(kind string) (ports.Snapshot, int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	var (
		found ports.Snapshot
		n     int
	)
	for _, s := range w.written {
		if s.Kind == kind {
			found = s
			n++
		}
	}
	return found, n
}

func snap(kind string, n int) ports.Snapshot {
	recs := make([]any, n)
	for i := range recs {
		recs[i] = i
	}
	return ports.Snapshot{Kind: kind, Records: recs, TakenAt: time.Now()}
}

func TestShardIndex_IsDeterministic(t *testing.T) {
	d := NewDispatcher(4, &recordingWriter{}, zerolog.Nop())
	for _, kind := range []string{"products", "users", "carts", "orders"} {
		first := d.shardIndex(kind)
		if first < 0 || first >= 4 {
			t.Fatalf("index out of range for %s: %d", kind, first)
		}
		if again := d.shardIndex(kind); again != first {
			t.Errorf("%s mapped to %d then %d", kind, first, again)
		}
	}
}

func TestNewDispatcher_DefaultsWorkerCount(t *testing.T) {
	d := NewDispatcher(0, &recordingWriter{}, zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Errorf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
}

func TestEnqueue_CoalescesPendingSnapshotsOfAKind(t *testing.T) {
	w := &recordingWriter{}
	d := NewDispatcher(1, w, zerolog.Nop())

	// Not started: everything stays pending.
	d.Enqueue(snap("users", 1))
	d.Enqueue(snap("users", 2))
	d.Enqueue(snap("carts", 1))

	if got := len(d.workers[0].pending); got != 2 {
		t.Fatalf("expected 2 pending kinds, got %d", got)
	}

	ctx, cancel := context.WithCancel(context.Background())
	d.Start(ctx)
	cancel()
	d.Wait()

	users, n := w.last("users")
	if n != 1 || len(users.Records) != 2 {
		t.Errorf("expected a single users write holding 2 records, got %d writes, last=%+v", n, users)
	}
	if _, n := w.last("carts"); n != 1 {
		t.Errorf("expected one carts write, got %d", n)
	}
}

func TestStart_WritesEnqueuedSnapshots(t *testing.T) {
	w := &recordingWriter{}
	d := NewDispatcher(2, w, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Enqueue(snap("orders", 3))

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if _, n := w.last("orders"); n > 0 {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("snapshot was never written")
}

func TestFlush_FailureDoesNotBlockOtherKinds(t *testing.T) {
	w := &recordingWriter{fail: map[string]bool{"users": true}}
	d := NewDispatcher(1, w, zerolog.Nop())

	d.Enqueue(snap("users", 1))
	d.Enqueue(snap("products", 1))
	d.flush(context.Background(), 0, d.workers[0])

	if _, n := w.last("products"); n != 1 {
		t.Errorf("expected products written despite users failure, got %d", n)
	}
	if len(d.workers[0].pending) != 0 {
		t.Errorf("expected pending drained, got %d", len(d.workers[0].pending))
	}
}
