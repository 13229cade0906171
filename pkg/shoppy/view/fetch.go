package view

import (
	"context"
	"sync"

	"go.uber.org/atomic"
)

// Result is the outcome of one fetch.
type Result[T any] struct {
	Value T
	Err   error
}

// Fetch runs one screen-local request at a time on a goroutine and hands the
// result back to the UI loop through Poll.
//
// Each Start supersedes the previous request: its context is cancelled and
// its result, should it still arrive, is dropped. After Cancel no result is
// ever delivered again.
type Fetch[T any] struct {
	mu         sync.Mutex
	cancel     context.CancelFunc
	results    chan generationResult[T]
	generation *atomic.Int64
	cancelled  *atomic.Bool
	pending    *atomic.Bool
}

type generationResult[T any] struct {
	generation int64
	result     Result[T]
}

// NewFetch creates an idle Fetch.
func NewFetch[T any]() *Fetch[T] {
	return &Fetch[T]{
		generation: atomic.NewInt64(0),
		cancelled:  atomic.NewBool(false),
		pending:    atomic.NewBool(false),
	}
}

// Start issues fn with a context derived from parent.
// It is a no-op once the fetch has been cancelled.
func (f *Fetch[T]) Start(parent context.Context, fn func(ctx context.Context) (T, error)) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.cancelled.Load() {
		return
	}
	if f.cancel != nil {
		f.cancel()
	}

	ctx, cancel := context.WithCancel(parent)
	generation := f.generation.Inc()
	results := make(chan generationResult[T], 1)

	f.cancel = cancel
	f.results = results
	f.pending.Store(true)

	go func() {
		value, err := fn(ctx)
		results <- generationResult[T]{generation: generation, result: Result[T]{Value: value, Err: err}}
	}()
}

// Poll returns the result of the current request once it has completed.
// It never blocks and reports each result at most once.
func (f *Fetch[T]) Poll() (Result[T], bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.cancelled.Load() || f.results == nil {
		return Result[T]{}, false
	}

	select {
	case r := <-f.results:
		if r.generation != f.generation.Load() {
			return Result[T]{}, false
		}
		f.results = nil
		f.pending.Store(false)
		if f.cancel != nil {
			f.cancel()
			f.cancel = nil
		}
		return r.result, true
	default:
		return Result[T]{}, false
	}
}

// Pending reports whether a request is in flight and not yet polled.
func (f *Fetch[T]) Pending() bool {
	return f.pending.Load() && !f.cancelled.Load()
}

// Cancel aborts the in-flight request and drops any late result.
// Call it when the owning screen goes away.
func (f *Fetch[T]) Cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.cancelled.Store(true)
	f.pending.Store(false)
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
	f.results = nil
}

// Cancelled reports whether Cancel has been called.
func (f *Fetch[T]) Cancelled() bool {
	return f.cancelled.Load()
}
