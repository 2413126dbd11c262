package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/taskhive/task-system/internal/api/metrics"
	"github.com/taskhive/task-system/internal/core/domain"
	"github.com/taskhive/task-system/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes task activity events to a fixed set of workers using
// consistent hashing on the task ID, guaranteeing per-task ordering of the
// audit trail.
type Dispatcher struct {
	workers []chan domain.TaskActivity
	service ports.ActivityService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.ActivityService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.TaskActivity, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.TaskActivity, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends an event to the worker responsible for its task. The call
// is non-blocking up to channelBuffer capacity; beyond that the event is
// dropped with a warning rather than stalling the request.
func (d *Dispatcher) Enqueue(entry domain.TaskActivity) {
	idx := d.shardIndex(entry.TaskID)
	select {
	case d.workers[idx] <- entry:
		metrics.ActivityQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	default:
		d.log.Warn().Str("task_id", entry.TaskID).Int("worker_id", idx).Msg("activity queue full, event dropped")
	}
}

// shardIndex maps a task ID deterministically to a worker index.
func (d *Dispatcher) shardIndex(taskID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(taskID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.TaskActivity) {
	worker := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case entry, ok := <-ch:
			if !ok {
				return
			}
			metrics.ActivityQueueDepth.WithLabelValues(worker).Set(float64(len(ch)))
			if err := d.service.Process(ctx, entry); err != nil {
				metrics.ActivityEventsTotal.WithLabelValues("error").Inc()
				d.log.Error().Err(err).
					Str("task_id", entry.TaskID).
					Int("worker_id", id).
					Msg("activity processing failed")
				continue
			}
			metrics.ActivityEventsTotal.WithLabelValues("recorded").Inc()
		}
	}
}
