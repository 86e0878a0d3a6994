package audit

import (
	"context"
	"sync"

	"github.com/BruksfildServices01/land-broker/internal/logging"
)

type Event struct {
	UserID   string
	Action   string
	Entity   string
	EntityID string
	Metadata any
}

// Sink persists events.
type Sink interface {
	Log(ctx context.Context, ev Event) error
}

// Dispatcher writes events asynchronously so a slow or failing audit store
// never affects the request that produced them.
type Dispatcher struct {
	sink  Sink
	log   logging.Logger
	queue chan Event

	closeOnce sync.Once
	done      chan struct{}
}

const defaultQueueSize = 100

func NewDispatcher(sink Sink, log logging.Logger) *Dispatcher {
	return newDispatcher(sink, log, defaultQueueSize)
}

func newDispatcher(sink Sink, log logging.Logger, size int) *Dispatcher {
	d := &Dispatcher{
		sink:  sink,
		log:   log,
		queue: make(chan Event, size),
		done:  make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for ev := range d.queue {
		if err := d.sink.Log(context.Background(), ev); err != nil {
			d.log.Error(context.Background(), "audit write failed",
				"action", ev.Action, "entity", ev.Entity, "error", err)
		}
	}
}

// Dispatch never blocks. When the queue is full the event is dropped.
func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		d.log.Warn(context.Background(), "audit queue full, dropping event",
			"action", ev.Action, "entity", ev.Entity)
	}
}

// Close stops accepting events and waits until queued ones are written or
// ctx ends. Dispatch must not be called after Close.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.closeOnce.Do(func() { close(d.queue) })

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
