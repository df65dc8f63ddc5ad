package worker

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
)

var (
	ErrPoolStopped     = errors.New("worker pool stopped")
	ErrInvalidCapacity = errors.New("invalid worker capacity")
)

// Func processes one unit path. Review errors are not returned here: the
// session converts read failures into findings, so a task cannot fail.
type Func func(path string)

// Pool is a bounded worker pool that fans reviewable units out to a fixed
// number of goroutines. Each unit is processed whole by exactly one worker,
// which keeps per-file finding order line-ascending even under parallelism;
// only the interleaving across files is nondeterministic.
type Pool struct {
	capacity  int
	tasks     chan string
	wg        sync.WaitGroup
	stopped   atomic.Bool
	active    atomic.Int32
	processed atomic.Int64
}

// NewPool creates a pool with the given worker count and queue size. A
// negative queue size defaults to twice the capacity.
func NewPool(capacity, queueSize int) (*Pool, error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if queueSize < 0 {
		queueSize = capacity * 2
	}
	return &Pool{
		capacity: capacity,
		tasks:    make(chan string, queueSize),
	}, nil
}

// Start launches the workers. Workers drain the queue until it is closed or
// the context is canceled.
func (p *Pool) Start(ctx context.Context, fn Func) {
	for i := 0; i < p.capacity; i++ {
		p.wg.Add(1)
		go p.worker(ctx, fn)
	}
}

// Submit enqueues one unit path, blocking while the queue is full.
func (p *Pool) Submit(ctx context.Context, path string) error {
	if p.stopped.Load() {
		return ErrPoolStopped
	}
	select {
	case p.tasks <- path:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Wait closes the queue and blocks until every submitted unit is processed.
func (p *Pool) Wait() {
	if p.stopped.Swap(true) {
		return
	}
	close(p.tasks)
	p.wg.Wait()
}

// Active returns the number of workers currently processing a unit.
func (p *Pool) Active() int { return int(p.active.Load()) }

// Processed returns the number of units processed so far.
func (p *Pool) Processed() int64 { return p.processed.Load() }

func (p *Pool) worker(ctx context.Context, fn Func) {
	defer p.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case path, ok := <-p.tasks:
			if !ok {
				return
			}
			p.active.Add(1)
			fn(path)
			p.active.Add(-1)
			p.processed.Add(1)
		}
	}
}
