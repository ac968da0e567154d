package cache

import (
	"context"
	"sync"
	"time"

	"github.com/azacreation/adminsdk/pkg/errors"
)

// FetchFunc loads the fresh value for a query.
type FetchFunc[T any] func(ctx context.Context) (T, error)

// Query is one cached fetch keyed in a Store. A query serves its
// cached value until it is invalidated (or its poll interval fires),
// then refetches on the next read. A disabled query holds no value
// and performs no requests until it is enabled; the first enable
// triggers an immediate fetch.
type Query[T any] struct {
	store    *Store
	key      Key
	fetch    FetchFunc[T]
	interval time.Duration

	mu       sync.Mutex
	enabled  bool
	hasValue bool
	stale    bool
	value    T

	pollStop chan struct{}
	pollOnce sync.Once
}

// QueryOption configures a Query.
type QueryOption func(*queryConfig)

type queryConfig struct {
	interval time.Duration
	disabled bool
}

// WithPollInterval makes the query refetch on a fixed interval,
// independent of mutation-driven invalidation. Used for
// operationally volatile collections (orders poll at 30s).
func WithPollInterval(interval time.Duration) QueryOption {
	return func(c *queryConfig) { c.interval = interval }
}

// Disabled creates the query inactive: no fetches until Enable. Used
// for tabs that are not visible yet.
func Disabled() QueryOption {
	return func(c *queryConfig) { c.disabled = true }
}

// NewQuery registers a cached query under its key.
func NewQuery[T any](store *Store, key Key, fetch FetchFunc[T], opts ...QueryOption) *Query[T] {
	config := &queryConfig{}
	for _, opt := range opts {
		opt(config)
	}

	q := &Query[T]{
		store:    store,
		key:      key,
		fetch:    fetch,
		interval: config.interval,
		enabled:  !config.disabled,
	}
	store.register(key, q)
	return q
}

// Key returns the query's cache key.
func (q *Query[T]) Key() Key {
	return q.key
}

// Get returns the cached value, fetching first when the cache is
// empty or stale. Concurrent readers during a fetch wait and then
// see the single replaced value.
func (q *Query[T]) Get(ctx context.Context) (T, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	var zero T
	if !q.enabled {
		return zero, errors.Newf(errors.ErrCodeInternal, "query %q is not active", string(q.key))
	}

	if q.hasValue && !q.stale {
		return q.value, nil
	}
	return q.refreshLocked(ctx)
}

func (q *Query[T]) refreshLocked(ctx context.Context) (T, error) {
	value, err := q.fetch(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	q.value = value
	q.hasValue = true
	q.stale = false
	return value, nil
}

// Enable activates a lazily created query and performs the immediate
// first fetch. Enabling an already active query is a plain Get.
func (q *Query[T]) Enable(ctx context.Context) (T, error) {
	q.mu.Lock()
	q.enabled = true
	q.mu.Unlock()
	return q.Get(ctx)
}

// Enabled reports whether the query is active.
func (q *Query[T]) Enabled() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.enabled
}

// Invalidate marks the cached value stale; the next Get refetches.
func (q *Query[T]) Invalidate() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.stale = true
}

// Stale reports whether the cached value has been invalidated.
func (q *Query[T]) Stale() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.stale
}

// HasValue reports whether the query holds a cached value.
func (q *Query[T]) HasValue() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.hasValue
}

// StartPolling begins interval-driven refreshes for queries built
// with WithPollInterval. Refresh failures keep the previous value;
// the next tick tries again. No-op without an interval.
func (q *Query[T]) StartPolling(ctx context.Context) {
	if q.interval <= 0 {
		return
	}
	q.pollOnce.Do(func() {
		q.pollStop = make(chan struct{})
		go q.pollLoop(ctx)
	})
}

func (q *Query[T]) pollLoop(ctx context.Context) {
	ticker := time.NewTicker(q.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			q.mu.Lock()
			if q.enabled {
				q.refreshLocked(ctx)
			}
			q.mu.Unlock()
		case <-q.pollStop:
			return
		case <-ctx.Done():
			return
		}
	}
}

// Close stops polling and removes the query from its store.
func (q *Query[T]) Close() {
	if q.pollStop != nil {
		select {
		case <-q.pollStop:
		default:
			close(q.pollStop)
		}
	}
	q.store.unregister(q.key)
}
