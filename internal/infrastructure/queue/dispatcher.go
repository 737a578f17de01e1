package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/eventhub/account-service/internal/api/metrics"
	"github.com/eventhub/account-service/internal/core/domain"
	"github.com/eventhub/account-service/internal/core/ports"
)

const (
	defaultWorkers      = 4
	channelBuffer       = 256
	defaultWriteTimeout = 5 * time.Second
)

// Dispatcher writes authentication events to the audit log from a fixed set
// of workers. Events for the same identity always land on the same worker, so
// they are written in the order they were recorded.
type Dispatcher struct {
	workers      []chan domain.AuthEvent
	log          ports.AuditLog
	logger       zerolog.Logger
	writeTimeout time.Duration
	drainTimeout time.Duration
	wg           sync.WaitGroup
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, log ports.AuditLog, logger zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers:      make([]chan domain.AuthEvent, numWorkers),
		log:          log,
		logger:       logger,
		writeTimeout: defaultWriteTimeout,
		drainTimeout: defaultWriteTimeout,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.AuthEvent, channelBuffer)
	}
	return d
}

var _ ports.AuthEventSink = (*Dispatcher)(nil)

// Start launches all worker goroutines. When ctx is cancelled each worker
// flushes what is already buffered before it returns.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
}

// Wait blocks until every worker has returned.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// Record hands the event to its worker without blocking. When the worker's
// channel is full the event is dropped.
func (d *Dispatcher) Record(event domain.AuthEvent) {
	idx := d.shardIndex(shardKey(event))
	select {
	case d.workers[idx] <- event:
		metrics.AuditQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	default:
		metrics.AuditEventsDroppedTotal.WithLabelValues("queue_full").Inc()
		d.logger.Warn().
			Str("event_type", event.Type).
			Int("worker_id", idx).
			Msg("audit queue full, event dropped")
	}
}

// shardKey prefers the identity key and falls back to the email, which is all
// a failed login for an unknown user carries.
func shardKey(event domain.AuthEvent) string {
	if event.IdentityKey != "" {
		return event.IdentityKey
	}
	return event.Email
}

// shardIndex maps a key deterministically to a worker index.
func (d *Dispatcher) shardIndex(key string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.AuthEvent) {
	defer d.wg.Done()
	// Writes already taken off the queue finish under their own deadline.
	base := context.WithoutCancel(ctx)
	label := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			d.drain(base, id, ch)
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			metrics.AuditQueueDepth.WithLabelValues(label).Set(float64(len(ch)))
			d.write(base, id, event)
		}
	}
}

// drain writes the events still buffered in ch under a fresh deadline. Events
// left once the deadline passes are counted as dropped.
func (d *Dispatcher) drain(ctx context.Context, id int, ch <-chan domain.AuthEvent) {
	drainCtx, cancel := context.WithTimeout(ctx, d.drainTimeout)
	defer cancel()

	label := strconv.Itoa(id)
	dropped := 0
	for {
		select {
		case event, ok := <-ch:
			if !ok {
				return
			}
			metrics.AuditQueueDepth.WithLabelValues(label).Set(float64(len(ch)))
			if drainCtx.Err() != nil {
				dropped++
				metrics.AuditEventsDroppedTotal.WithLabelValues("shutdown").Inc()
				continue
			}
			d.write(drainCtx, id, event)
		default:
			if dropped > 0 {
				d.logger.Warn().
					Int("worker_id", id).
					Int("dropped", dropped).
					Msg("audit events dropped at shutdown")
			}
			return
		}
	}
}

func (d *Dispatcher) write(ctx context.Context, id int, event domain.AuthEvent) {
	writeCtx, cancel := context.WithTimeout(ctx, d.writeTimeout)
	defer cancel()

	start := time.Now()
	err := d.log.Log(writeCtx, event)
	metrics.AuditWriteDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.AuditEventsDroppedTotal.WithLabelValues("write_failed").Inc()
		d.logger.Warn().Err(err).
			Str("event_type", event.Type).
			Int("worker_id", id).
			Msg("audit write failed")
	}
}
