package multiagent

import (
	"context"
	"time"

	"github.com/agentfleet/agentfleet/pkg/models"
)

// queueItem is one element of the fan-in queue: a forwarded event, a node
// failure, or a completion sentinel carrying the node's terminal result.
type queueItem struct {
	event    any
	err      error
	sentinel bool
	nodeID   string
	result   *models.NodeResult
}

// eventQueue is the bounded fan-in channel merging concurrently executing
// nodes into one ordered stream. Producers block when the queue is full,
// which backpressures node goroutines against a slow consumer.
type eventQueue struct {
	items chan queueItem
	done  chan struct{}
}

const defaultQueueCapacity = 256

func newEventQueue(capacity int) *eventQueue {
	if capacity <= 0 {
		capacity = defaultQueueCapacity
	}
	return &eventQueue{
		items: make(chan queueItem, capacity),
		done:  make(chan struct{}),
	}
}

// put enqueues an item, blocking until there is room. Returns false when the
// queue was shut down or the context ended; the producer should stop.
func (q *eventQueue) put(ctx context.Context, item queueItem) bool {
	select {
	case q.items <- item:
		return true
	case <-q.done:
		return false
	case <-ctx.Done():
		return false
	}
}

// poll dequeues one item, waiting at most wait. The short timeout lets the
// merger re-check cancellation and deadlines between items.
func (q *eventQueue) poll(ctx context.Context, wait time.Duration) (queueItem, bool) {
	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case item := <-q.items:
		return item, true
	case <-timer.C:
		return queueItem{}, false
	case <-ctx.Done():
		return queueItem{}, false
	}
}

// shutdown releases any blocked producers. Items already queued remain
// readable; producers racing shutdown may still land one item each.
func (q *eventQueue) shutdown() {
	select {
	case <-q.done:
	default:
		close(q.done)
	}
}
