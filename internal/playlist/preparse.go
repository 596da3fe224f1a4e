package playlist

import (
	"context"
	"sync"
	"time"
)

// Preparser is the contract for the external metadata/subitem-discovery
// collaborator that runs after insertion. It is intentionally
// fire-and-forget from the playlist's point of view: Preparse must not
// block the caller, and any cancellation is the preparser's own concern.
type Preparser interface {
	// Preparse schedules background work for item. recursive mirrors
	// PreparseRecursive: whether a discovered subtree should itself be
	// preparsed.
	Preparse(item *Item, recursive bool)
}

// workerPool is the built-in Preparser constructed by New when a
// preparseMode other than Disabled is requested and no external Preparser
// has been wired in via SetPreparser. It runs a bounded number of
// goroutines, each individual preparse bounded by a timeout.
type workerPool struct {
	mu      sync.Mutex
	sem     chan struct{}
	timeout time.Duration
	wg      sync.WaitGroup

	// fetch is overridable in tests; by default it's a no-op that merely
	// simulates the latency of a real metadata fetch.
	fetch func(ctx context.Context, item *Item, recursive bool)
}

func newWorkerPool(threads int, timeoutMillis int) *workerPool {
	if threads <= 0 {
		threads = 1
	}
	wp := &workerPool{
		sem:     make(chan struct{}, threads),
		timeout: time.Duration(timeoutMillis) * time.Millisecond,
	}
	wp.fetch = wp.defaultFetch
	return wp
}

func (wp *workerPool) defaultFetch(ctx context.Context, item *Item, recursive bool) {
	// The built-in pool has no real network/filesystem collaborator to
	// call; it exists so PreparseEnabled/Recursive have an observable
	// effect (RefCount bump + release) even when the daemon hasn't wired
	// in internal/preparser.Pool. A real deployment always overrides
	// SetPreparser.
	held := item.hold()
	defer held.release()
	select {
	case <-ctx.Done():
	case <-time.After(0):
	}
}

// Preparse implements Preparser. It is fire-and-forget: the calling
// mutator never blocks on it and never observes its result directly.
func (wp *workerPool) Preparse(item *Item, recursive bool) {
	held := item.hold()
	wp.wg.Add(1)
	go func() {
		defer wp.wg.Done()
		defer held.release()

		wp.sem <- struct{}{}
		defer func() { <-wp.sem }()

		ctx := context.Background()
		var cancel context.CancelFunc
		if wp.timeout > 0 {
			ctx, cancel = context.WithTimeout(ctx, wp.timeout)
			defer cancel()
		}
		wp.fetch(ctx, item, recursive)
	}()
}

// Wait blocks until every dispatched preparse has completed. Chiefly for
// tests; production callers rely on the preparser reporting back
// asynchronously via player/sink callbacks instead of waiting.
func (wp *workerPool) Wait() {
	wp.wg.Wait()
}
