// Package participation serves an author's conference participations and certificates
// through a stale-while-revalidate cache.
package participation

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/singleflight"

	"github.com/umputun/confdesk/pkg/metrics"
)

// EventRecorder receives cache events, see metrics.Cache* for names
type EventRecorder interface {
	CacheEvent(cache, event string)
}

// LoadFunc fetches a fresh value of a key
type LoadFunc[K comparable, V any] func(ctx context.Context, key K) (V, error)

// CacheOpts tunes a Cache
type CacheOpts struct {
	Name   string           // used in logs and metrics
	TTL    time.Duration    // age after which an entry is stale
	Now    func() time.Time // clock, time.Now if nil
	Events EventRecorder    // optional
}

// Cache is a stale-while-revalidate cache. A fresh entry is returned as is. A stale entry is
// returned immediately and replaced by a single background refresh; a failed refresh keeps it.
// Only the first load of a key blocks the caller and only that load can return an error.
type Cache[K comparable, V any] struct {
	opts CacheOpts
	load LoadFunc[K, V]

	mu         sync.Mutex
	entries    map[K]entry[V]
	refreshing map[K]bool
	group      singleflight.Group

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

type entry[V any] struct {
	value     V
	fetchedAt time.Time
	gen       uint64 // bumped on every write, refreshes started on an older gen are discarded
}

// NewCache makes a cache. Close must be called to stop background refreshes.
func NewCache[K comparable, V any](load LoadFunc[K, V], opts CacheOpts) *Cache[K, V] {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.TTL <= 0 {
		opts.TTL = 5 * time.Minute
	}
	if opts.Name == "" {
		opts.Name = "cache"
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Cache[K, V]{
		opts:       opts,
		load:       load,
		entries:    map[K]entry[V]{},
		refreshing: map[K]bool{},
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Get returns the value of key, loading it on first access
func (c *Cache[K, V]) Get(ctx context.Context, key K) (V, error) {
	c.mu.Lock()
	if e, ok := c.entries[key]; ok {
		if c.opts.Now().Sub(e.fetchedAt) < c.opts.TTL {
			c.mu.Unlock()
			c.event(metrics.CacheHit)
			return e.value, nil
		}
		c.refreshLocked(key, e.gen)
		c.mu.Unlock()
		c.event(metrics.CacheStale)
		return e.value, nil
	}
	c.mu.Unlock()

	c.event(metrics.CacheMiss)
	// the load is shared by all waiters, it outlives the caller and stops with the cache only
	resCh := c.group.DoChan(fmt.Sprint(key), func() (any, error) {
		loadCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
		defer cancel()
		stop := context.AfterFunc(c.ctx, cancel)
		defer stop()

		v, err := c.load(loadCtx, key)
		if err != nil {
			return v, err
		}
		c.Set(key, v)
		return v, nil
	})

	var zero V
	select {
	case <-ctx.Done():
		return zero, fmt.Errorf("load %s %v: %w", c.opts.Name, key, ctx.Err())
	case res := <-resCh:
		if res.Err != nil {
			return zero, fmt.Errorf("load %s %v: %w", c.opts.Name, key, res.Err)
		}
		return res.Val.(V), nil
	}
}

// Set stores v as a fresh value of key
func (c *Cache[K, V]) Set(key K, v V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry[V]{value: v, fetchedAt: c.opts.Now(), gen: c.entries[key].gen + 1}
}

// Update replaces the cached value of key with fn(value) and marks it fresh.
// Returns false and does nothing if key is not cached.
func (c *Cache[K, V]) Update(key K, fn func(V) V) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return false
	}
	c.entries[key] = entry[V]{value: fn(e.value), fetchedAt: c.opts.Now(), gen: e.gen + 1}
	return true
}

// Close cancels running refreshes and waits for them to finish
func (c *Cache[K, V]) Close() {
	c.cancel()
	c.wg.Wait()
}

// refreshLocked starts a background refresh of key unless one is running already, requires c.mu
func (c *Cache[K, V]) refreshLocked(key K, gen uint64) {
	if c.refreshing[key] || c.ctx.Err() != nil {
		return
	}
	c.refreshing[key] = true
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		v, err := c.load(c.ctx, key)

		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.refreshing, key)
		if err != nil {
			// stale value stays visible
			lgr.Printf("[WARN] background refresh of %s %v failed: %v", c.opts.Name, key, err)
			c.event(metrics.CacheRefreshError)
			return
		}
		cur, ok := c.entries[key]
		if !ok || cur.gen != gen {
			lgr.Printf("[DEBUG] discard outdated refresh of %s %v", c.opts.Name, key)
			return
		}
		c.entries[key] = entry[V]{value: v, fetchedAt: c.opts.Now(), gen: gen + 1}
		c.event(metrics.CacheRefresh)
	}()
}

func (c *Cache[K, V]) event(name string) {
	if c.opts.Events != nil {
		c.opts.Events.CacheEvent(c.opts.Name, name)
	}
}
