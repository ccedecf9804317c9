// Package memqueue provides the bounded in-process notification queue that
// decouples order submission from notification delivery.
package memqueue

import (
	"errors"
	"sync"

	"kirana/internal/core/ports"
)

// ErrQueueFull is returned by Enqueue when the queue is at capacity. The
// notification is dropped; delivery is at-most-once.
var ErrQueueFull = errors.New("notification queue is full")

// ErrQueueClosed is returned by Enqueue after Close.
var ErrQueueClosed = errors.New("notification queue is closed")

// Queue is a bounded, non-blocking notification queue backed by a channel.
// Enqueue never blocks the caller; the worker drains via Dequeue.
type Queue struct {
	ch     chan ports.Notification
	mu     sync.Mutex
	closed bool
}

// New creates a queue with the given capacity.
func New(capacity int) *Queue {
	return &Queue{
		ch: make(chan ports.Notification, capacity),
	}
}

// Enqueue hands a notification to the worker without blocking. Returns
// ErrQueueFull when the worker has fallen behind by more than the queue
// capacity, ErrQueueClosed after Close.
func (q *Queue) Enqueue(n ports.Notification) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return ErrQueueClosed
	}

	select {
	case q.ch <- n:
		return nil
	default:
		return ErrQueueFull
	}
}

// Dequeue returns the channel the worker receives from. The channel is closed
// by Close, which ends the worker's range loop.
func (q *Queue) Dequeue() <-chan ports.Notification {
	return q.ch
}

// Close stops the queue. Pending notifications remain readable; further
// Enqueue calls fail with ErrQueueClosed.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if !q.closed {
		q.closed = true
		close(q.ch)
	}
}
