package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/commerce-api/internal/core/ports"
	"github.com/99minutos/commerce-api/internal/pkg/metrics"
)

const (
	defaultWorkers = 2
	flushTimeout   = 10 * time.Second
)

// Dispatcher persists collection snapshots behind the request path. Each
// collection kind is pinned to one worker by hashing its name, so writes of a
// kind never race each other. A worker keeps only the newest pending snapshot
// per kind: every snapshot is the full collection, so an older one that has
// not been written yet is superseded rather than queued.
type Dispatcher struct {
	workers []*worker
	writer  ports.SnapshotWriter
	log     zerolog.Logger
	wg      sync.WaitGroup
}

type worker struct {
	mu      sync.Mutex
	pending map[string]ports.Snapshot
	order   []string
	wake    chan struct{}
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, writer ports.SnapshotWriter, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]*worker, numWorkers),
		writer:  writer,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = &worker{
			pending: make(map[string]ports.Snapshot),
			wake:    make(chan struct{}, 1),
		}
	}
	return d
}

// Start launches all worker goroutines. When ctx is cancelled each worker
// writes whatever is still pending and exits; Wait blocks until they have.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, w := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, w)
	}
}

// Wait blocks until every worker has drained and stopped.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// Enqueue hands a snapshot to the worker responsible for its kind. It never
// blocks on I/O, which makes it safe to call while a collection lock is held.
func (d *Dispatcher) Enqueue(snap ports.Snapshot) {
	idx := d.shardIndex(snap.Kind)
	w := d.workers[idx]

	w.mu.Lock()
	if _, ok := w.pending[snap.Kind]; !ok {
		w.order = append(w.order, snap.Kind)
	}
	w.pending[snap.Kind] = snap
	depth := len(w.pending)
	w.mu.Unlock()

	metrics.SnapshotQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(depth))

	select {
	case w.wake <- struct{}{}:
	default:
	}
}

// shardIndex maps a collection kind deterministically to a worker index.
func (d *Dispatcher) shardIndex(kind string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(kind))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, w *worker) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), flushTimeout)
			d.flush(flushCtx, id, w)
			cancel()
			return
		case <-w.wake:
			d.flush(ctx, id, w)
		}
	}
}

// flush writes every pending snapshot of w in the order its kinds first
// became pending.
func (d *Dispatcher) flush(ctx context.Context, id int, w *worker) {
	w.mu.Lock()
	batch := make([]ports.Snapshot, 0, len(w.order))
	for _, kind := range w.order {
		batch = append(batch, w.pending[kind])
	}
	w.pending = make(map[string]ports.Snapshot)
	w.order = nil
	w.mu.Unlock()

	metrics.SnapshotQueueDepth.WithLabelValues(strconv.Itoa(id)).Set(0)

	for _, snap := range batch {
		start := time.Now()
		err := d.writer.Write(ctx, snap)
		metrics.SnapshotWriteDuration.WithLabelValues(snap.Kind).Observe(time.Since(start).Seconds())
		if err != nil {
			metrics.SnapshotErrorsTotal.WithLabelValues(snap.Kind).Inc()
			d.log.Error().Err(err).
				Str("kind", snap.Kind).
				Int("records", len(snap.Records)).
				Int("worker_id", id).
				Msg("snapshot write failed")
			continue
		}
		metrics.SnapshotsWrittenTotal.WithLabelValues(snap.Kind).Inc()
		d.log.Debug().
			Str("kind", snap.Kind).
			Int("records", len(snap.Records)).
			Int("worker_id", id).
			Msg("snapshot written")
	}
}
