package platform

import (
	"context"
	"sync"

	"github.com/go-drift/genui/pkg/errors"
)

// Looper is the single UI-thread event queue. Callbacks may be posted from
// any goroutine and run in FIFO order on whichever goroutine drains the queue.
type Looper struct {
	mu     sync.Mutex
	queue  []func()
	wake   chan struct{}
	closed bool
}

// NewLooper creates an empty looper.
func NewLooper() *Looper {
	return &Looper{wake: make(chan struct{}, 1)}
}

// Post enqueues fn. It returns false if fn is nil or the looper is closed.
func (l *Looper) Post(fn func()) bool {
	if fn == nil {
		return false
	}
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return false
	}
	l.queue = append(l.queue, fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
	return true
}

// Len returns the number of queued callbacks.
func (l *Looper) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.queue)
}

// RunPending runs queued callbacks until the queue is empty, including any
// callbacks posted while draining. It returns the number of callbacks run.
func (l *Looper) RunPending() int {
	ran := 0
	for {
		fn, ok := l.next()
		if !ok {
			return ran
		}
		l.run(fn)
		ran++
	}
}

// Run drains the queue as callbacks arrive until ctx is done or the looper is closed.
func (l *Looper) Run(ctx context.Context) error {
	for {
		l.RunPending()

		l.mu.Lock()
		closed := l.closed && len(l.queue) == 0
		l.mu.Unlock()
		if closed {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.wake:
		}
	}
}

// Close stops accepting callbacks. Callbacks already queued still run.
func (l *Looper) Close() {
	l.mu.Lock()
	l.closed = true
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

func (l *Looper) next() (func(), bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.queue) == 0 {
		return nil, false
	}
	fn := l.queue[0]
	l.queue[0] = nil
	l.queue = l.queue[1:]
	return fn, true
}

func (l *Looper) run(fn func()) {
	defer errors.Recover("platform.Looper")
	fn()
}
