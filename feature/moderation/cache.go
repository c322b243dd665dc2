package moderation

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// LoadFunc loads the snapshot of a request.
type LoadFunc func(ctx context.Context, id string) (*Snapshot, error)

type cacheEntry struct {
	snapshot *Snapshot
	built    time.Time
}

// SnapshotCache keeps loaded snapshots for a TTL, keyed by request id.
// Concurrent misses for the same id share one load.
type SnapshotCache struct {
	ttl     time.Duration
	now     func() time.Time
	mu      sync.RWMutex
	entries map[string]cacheEntry
	sf      singleflight.Group
}

// NewSnapshotCache creates a cache. A zero TTL disables caching but still
// coalesces concurrent loads.
func NewSnapshotCache(ttl time.Duration) *SnapshotCache {
	return &SnapshotCache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]cacheEntry),
	}
}

func (c *SnapshotCache) fresh(id string) (*Snapshot, bool) {
	if c.ttl == 0 {
		return nil, false
	}
	c.mu.RLock()
	entry, ok := c.entries[id]
	c.mu.RUnlock()
	if !ok || c.now().Sub(entry.built) > c.ttl {
		return nil, false
	}
	return entry.snapshot, true
}

// GetOrLoad returns a copy of the cached snapshot for id, loading it when it
// is missing or expired. Errors are not cached.
func (c *SnapshotCache) GetOrLoad(ctx context.Context, id string, load LoadFunc) (*Snapshot, error) {
	if snap, ok := c.fresh(id); ok {
		return snap.Clone(), nil
	}

	// The load is shared, so it must outlive the caller that started it.
	loadCtx := context.WithoutCancel(ctx)
	ch := c.sf.DoChan(id, func() (any, error) {
		// Another caller may have filled the entry while we waited.
		if snap, ok := c.fresh(id); ok {
			return snap, nil
		}

		snap, err := load(loadCtx, id)
		if err != nil {
			return nil, err
		}

		if c.ttl > 0 {
			c.mu.Lock()
			c.entries[id] = cacheEntry{snapshot: snap, built: c.now()}
			c.mu.Unlock()
		}
		return snap, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*Snapshot).Clone(), nil
	}
}

// Invalidate drops the cached snapshot for id.
func (c *SnapshotCache) Invalidate(id string) {
	c.mu.Lock()
	delete(c.entries, id)
	c.mu.Unlock()
}

// Len returns the number of cached snapshots, expired ones included.
func (c *SnapshotCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
