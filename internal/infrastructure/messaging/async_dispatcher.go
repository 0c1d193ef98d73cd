package messaging

import (
	"context"
	"errors"
	"sync"
	"time"

	"inspection_billing/internal/domain/entities"
	"inspection_billing/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const (
	defaultAsyncBuffer  = 256
	defaultAsyncTimeout = 10 * time.Second
)

var (
	ErrDispatchQueueFull = errors.New("automation dispatch queue is full")
	ErrDispatcherStopped = errors.New("automation dispatcher stopped")
)

// AsyncDispatcher queues automation events and hands them to the wrapped
// dispatcher from a single background worker, in the order they were queued.
// Dispatch never waits on the wrapped dispatcher.
type AsyncDispatcher struct {
	next    interfaces.IAutomationDispatcher
	events  chan entities.AutomationEvent
	timeout time.Duration
	log     *zap.Logger

	mu      sync.RWMutex
	stopped bool
	done    chan struct{}
}

var _ interfaces.IAutomationDispatcher = (*AsyncDispatcher)(nil)

// NewAsyncDispatcher starts the worker. Each event gets its own timeout,
// detached from the request that fired it.
func NewAsyncDispatcher(next interfaces.IAutomationDispatcher, buffer int, timeout time.Duration, log *zap.Logger) *AsyncDispatcher {
	if buffer <= 0 {
		buffer = defaultAsyncBuffer
	}
	if timeout <= 0 {
		timeout = defaultAsyncTimeout
	}
	d := &AsyncDispatcher{
		next:    next,
		events:  make(chan entities.AutomationEvent, buffer),
		timeout: timeout,
		log:     log,
		done:    make(chan struct{}),
	}
	go d.run()
	return d
}

func (d *AsyncDispatcher) Dispatch(_ context.Context, event entities.AutomationEvent) error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.stopped {
		return ErrDispatcherStopped
	}
	select {
	case d.events <- event:
		return nil
	default:
		return ErrDispatchQueueFull
	}
}

// Stop rejects new events and waits until the queued ones are handed over or
// ctx is done.
func (d *AsyncDispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	if !d.stopped {
		d.stopped = true
		close(d.events)
	}
	d.mu.Unlock()

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *AsyncDispatcher) run() {
	defer close(d.done)
	for event := range d.events {
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		err := d.next.Dispatch(ctx, event)
		cancel()
		if err != nil {
			d.log.Error("[automation][async] dispatch failed",
				zap.String("event", string(event.Name)),
				zap.String("event_id", event.ID),
				zap.String("inspection_id", event.InspectionID),
				zap.Error(err))
		}
	}
}
